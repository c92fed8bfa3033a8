// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"github.com/spf13/viper"

	"github.com/invowk/newtype/internal/issue"
	"github.com/invowk/newtype/pkg/cueutil"
)

const (
	// AppName is the application name.
	AppName = "newtype"
	// ConfigFileName is the name of the config file (without extension).
	ConfigFileName = "newtype"
	// ConfigFileExt is the config file extension.
	ConfigFileExt = "cue"
	// EnvPrefix prefixes the environment variables that override keys.
	EnvPrefix = "NEWTYPE"
)

// Keys lists every configuration key, in display order.
var Keys = []string{"gen.output", "gen.header", "gen.witnesses", "log.level", "ui.color_scheme"}

//go:embed config_schema.cue
var configSchema string

// Schema returns the embedded CUE schema of the configuration file.
func Schema() string { return configSchema }

// ConfigDir returns the newtype configuration directory, below
// os.UserConfigDir().
//
//nolint:revive // ConfigDir is more descriptive than Dir for external callers
func ConfigDir() (string, error) {
	if configDirOverride != "" {
		return configDirOverride, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}
	return filepath.Join(dir, AppName), nil
}

// FileName returns the config file name, "newtype.cue".
func FileName() string { return ConfigFileName + "." + ConfigFileExt }

// Locate returns the config file opts resolve to, or "" when no file exists
// and the defaults apply. An explicit ConfigFilePath must exist.
func Locate(opts LoadOptions) (string, error) {
	if err := opts.Validate(); err != nil {
		return "", err
	}
	if opts.ConfigFilePath != "" {
		if !fileExists(string(opts.ConfigFilePath)) {
			return "", issue.NewErrorContext().
				WithOperation("load configuration").
				WithResource(opts.ConfigFilePath.String()).
				WithSuggestion("Verify the file path is correct").
				WithSuggestion("Use 'newtype config init' to create a configuration file").
				WithIssue(issue.ConfigLoadFailedId).
				Wrap(fmt.Errorf("config file not found: %s", opts.ConfigFilePath)).
				BuildError()
		}
		return string(opts.ConfigFilePath), nil
	}

	cfgDir, err := configDirWithOverride(string(opts.ConfigDirPath))
	if err != nil {
		return "", err
	}
	if p := filepath.Join(cfgDir, FileName()); fileExists(p) {
		return p, nil
	}
	if p := filepath.Join(string(opts.WorkDir), FileName()); fileExists(p) {
		return p, nil
	}
	return "", nil
}

// newViper returns a Viper instance carrying the defaults and the
// NEWTYPE_* environment overrides.
func newViper() *viper.Viper {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("gen.output", defaults.Gen.Output)
	v.SetDefault("gen.header", defaults.Gen.Header)
	v.SetDefault("gen.witnesses", defaults.Gen.Witnesses)
	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("ui.color_scheme", defaults.UI.ColorScheme)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// loadWithOptions performs option-driven config loading without mutating
// package-level state.
func loadWithOptions(ctx context.Context, opts LoadOptions) (*Config, string, error) {
	select {
	case <-ctx.Done():
		return nil, "", fmt.Errorf("load config canceled: %w", ctx.Err())
	default:
	}

	v := newViper()
	path, err := Locate(opts)
	if err != nil {
		return nil, "", err
	}
	if path != "" {
		if err := loadCUEIntoViper(v, path); err != nil {
			return nil, "", issue.NewErrorContext().
				WithOperation("load configuration").
				WithResource(path).
				WithSuggestion("Check that the file contains valid CUE syntax").
				WithSuggestion("Verify the configuration values match the expected schema").
				WithSuggestion("Run 'newtype config init' in an empty directory to see a valid file").
				WithIssue(issue.ConfigLoadFailedId).
				Wrap(err).
				BuildError()
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, "", fmt.Errorf("failed to parse config: %w", err)
	}

	// Environment overrides bypass the CUE schema.
	if err := cfg.Validate(); err != nil {
		return nil, "", issue.NewErrorContext().
			WithOperation("validate configuration").
			WithResource(path).
			WithSuggestion("Check the " + EnvPrefix + "_* environment variables").
			Wrap(err).
			BuildError()
	}
	return &cfg, path, nil
}

// configDirWithOverride resolves the configuration directory, honoring
// explicit provider options before platform defaults.
func configDirWithOverride(configDirPath string) (string, error) {
	if configDirPath != "" {
		return configDirPath, nil
	}
	return ConfigDir()
}

// loadCUEIntoViper parses a CUE file, validates it against the #Config schema,
// and merges its contents into Viper.
//
// It does not use cueutil.ParseAndDecode: the file decodes into a map for
// Viper, with Concrete(false) because every field is optional.
func loadCUEIntoViper(v *viper.Viper, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := cueutil.CheckFileSize(data, cueutil.DefaultMaxFileSize, path); err != nil {
		return err
	}

	ctx := cuecontext.New()
	schemaValue := ctx.CompileString(configSchema)
	if schemaValue.Err() != nil {
		return fmt.Errorf("internal error: failed to compile config schema: %w", schemaValue.Err())
	}

	userValue := ctx.CompileBytes(data, cue.Filename(path))
	if userValue.Err() != nil {
		return cueutil.FormatError(userValue.Err(), path)
	}

	unified := schemaValue.LookupPath(cue.ParsePath("#Config")).Unify(userValue)
	if err := unified.Validate(cue.Concrete(false)); err != nil {
		return cueutil.FormatError(err, path)
	}

	var configMap map[string]any
	if err := unified.Decode(&configMap); err != nil {
		return cueutil.FormatError(err, path)
	}

	// Merging keeps the defaults and the environment overrides.
	if err := v.MergeConfigMap(configMap); err != nil {
		return fmt.Errorf("failed to merge config: %w", err)
	}
	return nil
}

// fileExists checks if a file exists and is not a directory
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false
	}
	return err == nil && !info.IsDir()
}

// CreateDefaultConfig writes the default configuration to dir, or to
// ConfigDir() when dir is empty. An existing file is left alone; created
// reports whether a file was written.
func CreateDefaultConfig(dir string) (path string, created bool, err error) {
	if dir == "" {
		if dir, err = ConfigDir(); err != nil {
			return "", false, err
		}
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", false, fmt.Errorf("failed to create config directory: %w", err)
	}

	path = filepath.Join(dir, FileName())
	if fileExists(path) {
		return path, false, nil
	}
	if err := os.WriteFile(path, []byte(GenerateCUE(DefaultConfig())), 0o644); err != nil {
		return "", false, fmt.Errorf("failed to write config file: %w", err)
	}
	return path, true, nil
}

// GenerateCUE generates a CUE representation of the configuration
func GenerateCUE(cfg *Config) string {
	var sb strings.Builder

	sb.WriteString("// newtype configuration file\n")
	sb.WriteString("// Every key can be overridden with a NEWTYPE_* environment variable.\n\n")

	sb.WriteString("gen: {\n")
	fmt.Fprintf(&sb, "\toutput:    %q\n", cfg.Gen.Output)
	fmt.Fprintf(&sb, "\theader:    %q\n", cfg.Gen.Header)
	fmt.Fprintf(&sb, "\twitnesses: %v\n", cfg.Gen.Witnesses)
	sb.WriteString("}\n")

	sb.WriteString("\nlog: {\n")
	fmt.Fprintf(&sb, "\tlevel: %q\n", cfg.Log.Level)
	sb.WriteString("}\n")

	sb.WriteString("\nui: {\n")
	fmt.Fprintf(&sb, "\tcolor_scheme: %q\n", cfg.UI.ColorScheme)
	sb.WriteString("}\n")

	return sb.String()
}

// Settings returns cfg as a key to value map over Keys.
func Settings(cfg *Config) map[string]string {
	return map[string]string{
		"gen.output":      cfg.Gen.Output.String(),
		"gen.header":      cfg.Gen.Header,
		"gen.witnesses":   fmt.Sprint(cfg.Gen.Witnesses),
		"log.level":       cfg.Log.Level.String(),
		"ui.color_scheme": cfg.UI.ColorScheme.String(),
	}
}

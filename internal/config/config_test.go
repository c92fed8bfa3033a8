// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/invowk/newtype/internal/issue"
	"github.com/invowk/newtype/pkg/cueutil"
	"github.com/invowk/newtype/pkg/types"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()

	path := filepath.Join(dir, FileName())
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

// isolated returns options that never look at the real user configuration.
func isolated(t *testing.T) LoadOptions {
	t.Helper()
	return LoadOptions{
		ConfigDirPath: types.FilesystemPath(t.TempDir()),
		WorkDir:       types.FilesystemPath(t.TempDir()),
	}
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	if cfg.Gen.Output != DefaultOutput {
		t.Errorf("Gen.Output = %q, want %q", cfg.Gen.Output, DefaultOutput)
	}
	if !cfg.Gen.Witnesses {
		t.Error("Gen.Witnesses should default to true")
	}
	if cfg.Gen.Header != "" {
		t.Errorf("Gen.Header = %q, want empty", cfg.Gen.Header)
	}
	if cfg.Log.Level != LogLevelInfo {
		t.Errorf("Log.Level = %q, want info", cfg.Log.Level)
	}
	if cfg.UI.ColorScheme != ColorSchemeAuto {
		t.Errorf("UI.ColorScheme = %q, want auto", cfg.UI.ColorScheme)
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Parallel()

	cfg, path, err := loadWithOptions(context.Background(), isolated(t))
	if err != nil {
		t.Fatalf("loadWithOptions() error = %v", err)
	}
	if path != "" {
		t.Errorf("path = %q, want none", path)
	}
	if *cfg != *DefaultConfig() {
		t.Errorf("cfg = %+v, want defaults", cfg)
	}
}

func TestLoadLookupOrder(t *testing.T) {
	t.Parallel()

	opts := isolated(t)
	local := writeConfig(t, string(opts.WorkDir), `gen: output: "local_gen.go"`)

	cfg, path, err := loadWithOptions(context.Background(), opts)
	if err != nil {
		t.Fatalf("loadWithOptions() error = %v", err)
	}
	if path != local || cfg.Gen.Output != "local_gen.go" {
		t.Errorf("got %q from %q, want local file", cfg.Gen.Output, path)
	}

	user := writeConfig(t, string(opts.ConfigDirPath), `gen: output: "user_gen.go"`)
	cfg, path, err = loadWithOptions(context.Background(), opts)
	if err != nil {
		t.Fatalf("loadWithOptions() error = %v", err)
	}
	if path != user || cfg.Gen.Output != "user_gen.go" {
		t.Errorf("got %q from %q, want user file", cfg.Gen.Output, path)
	}
}

func TestLoadFullFile(t *testing.T) {
	t.Parallel()

	opts := isolated(t)
	writeConfig(t, string(opts.ConfigDirPath), `
gen: {
	output:    "zz_newtypes.go"
	header:    "SPDX-License-Identifier: MPL-2.0"
	witnesses: false
}
log: level: "warn"
ui: color_scheme: "light"
`)
	cfg, _, err := loadWithOptions(context.Background(), opts)
	if err != nil {
		t.Fatalf("loadWithOptions() error = %v", err)
	}
	want := Config{
		Gen: GenConfig{Output: "zz_newtypes.go", Header: "SPDX-License-Identifier: MPL-2.0", Witnesses: false},
		Log: LogConfig{Level: LogLevelWarn},
		UI:  UIConfig{ColorScheme: ColorSchemeLight},
	}
	if *cfg != want {
		t.Errorf("cfg = %+v, want %+v", *cfg, want)
	}
}

func TestLoadSchemaErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"unknown key", `gen: outdir: "x"`, "outdir"},
		{"bad level", `log: level: "trace"`, "log.level"},
		{"wrong type", `gen: witnesses: "yes"`, "gen.witnesses"},
		{"syntax", `gen: {`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			opts := isolated(t)
			writeConfig(t, string(opts.ConfigDirPath), tt.content)
			_, _, err := loadWithOptions(context.Background(), opts)
			if err == nil {
				t.Fatal("loadWithOptions() succeeded, want error")
			}
			var ae *issue.ActionableError
			if !errors.As(err, &ae) || ae.Operation != "load configuration" {
				t.Errorf("error = %v, want ActionableError for load configuration", err)
			}
			if tt.want != "" && !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}

	opts := isolated(t)
	writeConfig(t, string(opts.ConfigDirPath), `ui: color_scheme: "neon"`)
	_, _, err := loadWithOptions(context.Background(), opts)
	if !errors.Is(err, cueutil.ErrValidation) {
		t.Errorf("error = %v, want cueutil.ErrValidation", err)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	t.Parallel()

	opts := isolated(t)
	opts.ConfigFilePath = types.FilesystemPath(filepath.Join(t.TempDir(), "missing.cue"))
	_, _, err := loadWithOptions(context.Background(), opts)
	var ae *issue.ActionableError
	if !errors.As(err, &ae) {
		t.Fatalf("error = %v, want ActionableError", err)
	}
	if ae.Issue != issue.ConfigLoadFailedId {
		t.Errorf("Issue = %v, want ConfigLoadFailedId", ae.Issue)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("NEWTYPE_GEN_WITNESSES", "false")
	t.Setenv("NEWTYPE_LOG_LEVEL", "debug")

	opts := isolated(t)
	writeConfig(t, string(opts.ConfigDirPath), `log: level: "error"`)
	cfg, _, err := loadWithOptions(context.Background(), opts)
	if err != nil {
		t.Fatalf("loadWithOptions() error = %v", err)
	}
	if cfg.Gen.Witnesses {
		t.Error("NEWTYPE_GEN_WITNESSES=false was ignored")
	}
	if cfg.Log.Level != LogLevelDebug {
		t.Errorf("Log.Level = %q, want the environment value debug", cfg.Log.Level)
	}

	t.Setenv("NEWTYPE_UI_COLOR_SCHEME", "neon")
	if _, _, err := loadWithOptions(context.Background(), opts); !errors.Is(err, ErrInvalidColorScheme) {
		t.Errorf("error = %v, want ErrInvalidColorScheme", err)
	}
}

func TestGenerateCUERoundTrip(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Gen.Header = "line one\nline two"
	cfg.UI.ColorScheme = ColorSchemeDark

	opts := isolated(t)
	writeConfig(t, string(opts.ConfigDirPath), GenerateCUE(cfg))
	got, _, err := loadWithOptions(context.Background(), opts)
	if err != nil {
		t.Fatalf("generated CUE does not load: %v", err)
	}
	if *got != *cfg {
		t.Errorf("loaded %+v, want %+v", *got, *cfg)
	}
}

func TestCreateDefaultConfig(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "nested")
	path, created, err := CreateDefaultConfig(dir)
	if err != nil || !created {
		t.Fatalf("CreateDefaultConfig() = %q, %v, %v", path, created, err)
	}
	if filepath.Base(path) != "newtype.cue" {
		t.Errorf("path = %q", path)
	}

	if err := os.WriteFile(path, []byte("// edited\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, created, err = CreateDefaultConfig(dir)
	if err != nil || created {
		t.Fatalf("second CreateDefaultConfig() created = %v, err = %v", created, err)
	}
	data, _ := os.ReadFile(path)
	if string(data) != "// edited\n" {
		t.Error("existing file was overwritten")
	}
}

func TestSettings(t *testing.T) {
	t.Parallel()

	s := Settings(DefaultConfig())
	if len(s) != len(Keys) {
		t.Fatalf("Settings has %d keys, Keys has %d", len(s), len(Keys))
	}
	for _, k := range Keys {
		if _, ok := s[k]; !ok {
			t.Errorf("Settings lacks %s", k)
		}
	}
	if s["gen.witnesses"] != "true" {
		t.Errorf("gen.witnesses = %q", s["gen.witnesses"])
	}
}

func TestConfigDirOverride(t *testing.T) {
	SetConfigDirOverride("/tmp/newtype-test")
	t.Cleanup(Reset)

	dir, err := ConfigDir()
	if err != nil || dir != "/tmp/newtype-test" {
		t.Errorf("ConfigDir() = %q, %v", dir, err)
	}
}

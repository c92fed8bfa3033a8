// SPDX-License-Identifier: MPL-2.0

package newtypelint

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
)

// ExceptionConfig holds the exception rules loaded from TOML.
type ExceptionConfig struct {
	Settings   Settings    `toml:"settings"`
	Exceptions []Exception `toml:"exceptions"`
}

// Settings configures global analyzer behavior.
type Settings struct {
	// ExcludePaths lists path substrings that cause files to be skipped.
	ExcludePaths []string `toml:"exclude_paths"`
	// Disable lists diagnostic categories that are never reported.
	Disable []string `toml:"disable"`
}

// Exception silences findings about one declaration.
type Exception struct {
	// Pattern is a dot-separated qualified name such as "units.Label" or
	// "units.*". Each segment is a filepath.Match pattern; * matches any
	// single segment.
	Pattern string `toml:"pattern"`
	// Category limits the exception to one diagnostic category. Empty
	// matches every category.
	Category string `toml:"category"`
	// Reason documents why the finding is intentional.
	Reason string `toml:"reason"`
}

// loadConfig reads and parses the exceptions TOML file. An empty path or a
// missing file yields an empty config.
func loadConfig(path string) (*ExceptionConfig, error) {
	if path == "" {
		return &ExceptionConfig{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &ExceptionConfig{}, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg ExceptionConfig
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, fmt.Errorf("parsing config TOML: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("parsing config TOML: unknown key %s", undecoded[0])
	}
	for _, cat := range cfg.Settings.Disable {
		if !slices.Contains(Categories, cat) {
			return nil, fmt.Errorf("config: unknown category %q in settings.disable", cat)
		}
	}
	for i, exc := range cfg.Exceptions {
		if exc.Category != "" && !slices.Contains(Categories, exc.Category) {
			return nil, fmt.Errorf("config: exceptions[%d]: unknown category %q", i, exc.Category)
		}
	}
	return &cfg, nil
}

// isDisabled reports whether category is switched off.
func (c *ExceptionConfig) isDisabled(category string) bool {
	return slices.Contains(c.Settings.Disable, category)
}

// isExcepted reports whether any of the qualified names is covered by an
// exception for category.
func (c *ExceptionConfig) isExcepted(category string, names ...string) bool {
	for _, exc := range c.Exceptions {
		if exc.Category != "" && exc.Category != category {
			continue
		}
		for _, name := range names {
			if name != "" && matchPattern(exc.Pattern, name) {
				return true
			}
		}
	}
	return false
}

// isExcludedPath reports whether filePath contains any exclude_paths entry.
func (c *ExceptionConfig) isExcludedPath(filePath string) bool {
	for _, ep := range c.Settings.ExcludePaths {
		if strings.Contains(filePath, ep) {
			return true
		}
	}
	return false
}

// matchPattern matches a glob-style pattern against a qualified name.
//
// Examples:
//   - "units.Label" matches "units.Label"
//   - "units.*" matches "units.Label", "units.labelTag"
//   - "*.Label" matches "units.Label", "geo.Label"
func matchPattern(pattern, name string) bool {
	patParts := strings.Split(pattern, ".")
	nameParts := strings.Split(name, ".")

	if len(patParts) != len(nameParts) {
		return false
	}

	for i, pp := range patParts {
		if pp == "*" {
			continue
		}
		matched, err := filepath.Match(pp, nameParts[i])
		if err != nil || !matched {
			return false
		}
	}
	return true
}

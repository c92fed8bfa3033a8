// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"testing"
)

func TestFilesystemPath_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		path    FilesystemPath
		wantErr bool
	}{
		{"declaration file", FilesystemPath("newtypes.cue"), false},
		{"nested generated file", FilesystemPath("internal/units/newtypes_gen.go"), false},
		{"windows style", FilesystemPath("C:\\work\\newtypes.toml"), false},
		{"dot path", FilesystemPath("."), false},
		{"empty is invalid", FilesystemPath(""), true},
		{"whitespace only is invalid", FilesystemPath("  \t"), true},
		{"NUL byte is invalid", FilesystemPath("new\x00types.cue"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.path.Validate()
			if !tt.wantErr {
				if err != nil {
					t.Errorf("FilesystemPath(%q).Validate() = %v", tt.path, err)
				}
				return
			}
			if !errors.Is(err, ErrInvalidFilesystemPath) {
				t.Errorf("error should wrap ErrInvalidFilesystemPath, got: %v", err)
			}
			var fpErr *InvalidFilesystemPathError
			if !errors.As(err, &fpErr) || fpErr.Value != tt.path {
				t.Errorf("error should be *InvalidFilesystemPathError for %q, got: %T", tt.path, err)
			}
			if ok, errs := tt.path.IsValid(); ok || len(errs) != 1 {
				t.Errorf("IsValid() = %v, %v", ok, errs)
			}
		})
	}
}

func TestFilesystemPath_ExtBase(t *testing.T) {
	t.Parallel()

	p := FilesystemPath("decl/NewTypes.YAML")
	if got := p.Ext(); got != ".yaml" {
		t.Errorf("Ext() = %q, want .yaml", got)
	}
	if got := p.Base(); got != "NewTypes.YAML" {
		t.Errorf("Base() = %q", got)
	}
	if got := p.String(); got != "decl/NewTypes.YAML" {
		t.Errorf("String() = %q", got)
	}
}

// SPDX-License-Identifier: MPL-2.0

package decl

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invowk/newtype/pkg/cueutil"
	"github.com/invowk/newtype/pkg/types"
)

var sources = map[Format]string{
	FormatCUE: `
"package": "units"
imports: ["time"]
newtypes: [{
	name:       "Meters"
	underlying: "int32"
	derive: ["Equality", "Ordering"]
	doc:        "Meters is a length in meters."
}, {
	name:       "Timeout"
	underlying: "time.Duration"
}]
`,
	FormatTOML: `
package = "units"
imports = ["time"]

[[newtypes]]
name = "Meters"
underlying = "int32"
derive = ["Equality", "Ordering"]
doc = "Meters is a length in meters."

[[newtypes]]
name = "Timeout"
underlying = "time.Duration"
`,
	FormatYAML: `
package: units
imports: [time]
newtypes:
  - name: Meters
    underlying: int32
    derive: [Equality, Ordering]
    doc: Meters is a length in meters.
  - name: Timeout
    underlying: time.Duration
`,
	FormatJSON: `{
  "package": "units",
  "imports": ["time"],
  "newtypes": [
    {"name": "Meters", "underlying": "int32", "derive": ["Equality", "Ordering"], "doc": "Meters is a length in meters."},
    {"name": "Timeout", "underlying": "time.Duration"}
  ]
}`,
}

func TestParseFormats(t *testing.T) {
	t.Parallel()

	want := []Newtype{
		{Name: "Meters", Underlying: "int32", Derive: []CapabilityName{"Equality", "Ordering"}, Doc: "Meters is a length in meters."},
		{Name: "Timeout", Underlying: "time.Duration"},
	}
	for format, src := range sources {
		t.Run(string(format), func(t *testing.T) {
			t.Parallel()

			f, err := Parse([]byte(src), format, "newtypes."+string(format))
			require.NoError(t, err)
			assert.Equal(t, PackageName("units"), f.Package)
			assert.Equal(t, []ImportPath{"time"}, f.Imports)
			require.Len(t, f.Newtypes, 2)
			for i := range want {
				assert.Equal(t, want[i].Name, f.Newtypes[i].Name)
				assert.Equal(t, want[i].Underlying, f.Newtypes[i].Underlying)
				assert.Equal(t, want[i].Doc, f.Newtypes[i].Doc)
				assert.ElementsMatch(t, want[i].Derive, f.Newtypes[i].Derive)
			}
			require.NoError(t, f.Validate())
		})
	}
}

func TestParseSchemaViolations(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		format Format
		src    string
	}{
		{"cue lower-case capability", FormatCUE, `"package": "u", newtypes: [{name: "M", underlying: "int", derive: ["equality"]}]`},
		{"cue unknown field", FormatCUE, `"package": "u", newtypes: [{name: "M", underlying: "int", kind: "alias"}]`},
		{"cue empty newtypes", FormatCUE, `"package": "u", newtypes: []`},
		{"yaml unknown capability", FormatYAML, "package: u\nnewtypes:\n  - name: M\n    underlying: int\n    derive: [Sortable]\n"},
		{"yaml missing package", FormatYAML, "newtypes:\n  - name: M\n    underlying: int\n"},
		{"json empty underlying", FormatJSON, `{"package": "u", "newtypes": [{"name": "M", "underlying": ""}]}`},
		{"toml blank name", FormatTOML, "package = \"u\"\n[[newtypes]]\nname = \"_\"\nunderlying = \"int\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Parse([]byte(tt.src), tt.format, "decl")
			require.ErrorIs(t, err, cueutil.ErrValidation)
		})
	}
}

func TestParseDecodeErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		format Format
		src    string
	}{
		{"toml unknown field", FormatTOML, "package = \"u\"\nextra = 1\n"},
		{"toml syntax", FormatTOML, "package = \n"},
		{"yaml unknown field", FormatYAML, "package: u\nextra: 1\n"},
		{"json unknown field", FormatJSON, `{"package": "u", "extra": 1}`},
		{"json syntax", FormatJSON, `{"package": `},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Parse([]byte(tt.src), tt.format, "decl")
			require.ErrorIs(t, err, ErrParse)
			var perr *ParseError
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, tt.format, perr.Format)
		})
	}

	_, err := Parse([]byte("x"), "ini", "decl")
	require.ErrorIs(t, err, ErrInvalidFormat)
}

func TestFormatOf(t *testing.T) {
	t.Parallel()

	tests := map[types.FilesystemPath]Format{
		"newtypes.cue":      FormatCUE,
		"dir/newtypes.toml": FormatTOML,
		"newtypes.yaml":     FormatYAML,
		"NEWTYPES.YML":      FormatYAML,
		"a/b/newtypes.json": FormatJSON,
	}
	for path, want := range tests {
		got, err := FormatOf(path)
		require.NoError(t, err, path)
		assert.Equal(t, want, got, path)
	}

	_, err := FormatOf("newtypes.ini")
	require.ErrorIs(t, err, ErrInvalidFormat)
}

func TestLoadAndFind(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	_, err := Find(types.FilesystemPath(dir))
	require.ErrorIs(t, err, ErrNotFound)

	yamlPath := filepath.Join(dir, "newtypes.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte(sources[FormatYAML]), 0o644))
	found, err := Find(types.FilesystemPath(dir))
	require.NoError(t, err)
	assert.Equal(t, types.FilesystemPath(yamlPath), found)

	cuePath := filepath.Join(dir, "newtypes.cue")
	require.NoError(t, os.WriteFile(cuePath, []byte(sources[FormatCUE]), 0o644))
	found, err = Find(types.FilesystemPath(dir))
	require.NoError(t, err)
	assert.Equal(t, types.FilesystemPath(cuePath), found)

	f, err := Load(found)
	require.NoError(t, err)
	assert.Equal(t, found, f.Path)
	assert.Len(t, f.Newtypes, 2)

	_, err = Load(types.FilesystemPath(filepath.Join(dir, "missing.cue")))
	require.Error(t, err)
	_, err = Load("")
	require.ErrorIs(t, err, types.ErrInvalidFilesystemPath)
}

func TestSchemaIsEmbedded(t *testing.T) {
	t.Parallel()

	assert.Contains(t, Schema(), "#Declarations")
}

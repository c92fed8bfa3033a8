// SPDX-License-Identifier: MPL-2.0

package decl

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/invowk/newtype/pkg/cueutil"
	"github.com/invowk/newtype/pkg/fspath"
	"github.com/invowk/newtype/pkg/types"
)

const (
	// FormatCUE is the CUE declaration format.
	FormatCUE Format = "cue"
	// FormatTOML is the TOML declaration format.
	FormatTOML Format = "toml"
	// FormatYAML is the YAML declaration format.
	FormatYAML Format = "yaml"
	// FormatJSON is the JSON declaration format.
	FormatJSON Format = "json"

	schemaPath = "#Declarations"
)

var (
	//go:embed decl_schema.cue
	schema string

	// ErrNotFound is returned by Find when a directory holds no
	// declaration file.
	ErrNotFound = errors.New("no declaration file found")

	// ErrParse is the sentinel error wrapped by ParseError.
	ErrParse = errors.New("cannot parse declarations")

	// ErrInvalidFormat is the sentinel error wrapped by InvalidFormatError.
	ErrInvalidFormat = errors.New("invalid declaration format")

	// FileNames lists the declaration file names Find looks for, in order.
	FileNames = []string{"newtypes.cue", "newtypes.toml", "newtypes.yaml", "newtypes.yml", "newtypes.json"}
)

type (
	// Format is the encoding of a declaration file.
	Format string

	// ParseError is returned when a TOML, YAML or JSON file cannot be
	// decoded at all. Schema violations are reported as
	// *cueutil.ValidationError instead.
	ParseError struct {
		Path   string
		Format Format
		Err    error
	}

	// InvalidFormatError is returned for unknown formats and extensions.
	InvalidFormatError struct {
		Value Format
	}
)

// Schema returns the embedded CUE schema of declaration files.
func Schema() string { return schema }

// String returns the string representation of the Format.
func (f Format) String() string { return string(f) }

// Validate returns an error if the format is unknown.
func (f Format) Validate() error {
	switch f {
	case FormatCUE, FormatTOML, FormatYAML, FormatJSON:
		return nil
	default:
		return &InvalidFormatError{Value: f}
	}
}

// Error implements the error interface.
func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid declaration format %q (expected cue, toml, yaml or json)", e.Value)
}

// Unwrap returns ErrInvalidFormat for errors.Is() compatibility.
func (e *InvalidFormatError) Unwrap() error { return ErrInvalidFormat }

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: invalid %s: %v", e.Path, strings.ToUpper(string(e.Format)), e.Err)
}

// Unwrap returns the decoder error. errors.Is(err, ErrParse) also matches.
func (e *ParseError) Unwrap() []error { return []error{ErrParse, e.Err} }

// FormatOf returns the format implied by the extension of path.
func FormatOf(path types.FilesystemPath) (Format, error) {
	switch ext := path.Ext(); ext {
	case ".cue":
		return FormatCUE, nil
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", &InvalidFormatError{Value: Format(strings.TrimPrefix(ext, "."))}
	}
}

// Find returns the first of FileNames present in dir.
func Find(dir types.FilesystemPath) (types.FilesystemPath, error) {
	for _, name := range FileNames {
		p := fspath.JoinStr(dir, name)
		ok, err := fspath.Exists(p)
		if err != nil {
			return "", err
		}
		if ok {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w in %s (looked for %s)", ErrNotFound, dir, strings.Join(FileNames, ", "))
}

// Load reads, decodes and schema-checks the declaration file at path. The
// returned File still needs Validate and CheckRequirements.
func Load(path types.FilesystemPath) (*File, error) {
	if err := path.Validate(); err != nil {
		return nil, err
	}
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := fspath.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading declarations: %w", err)
	}
	f, err := Parse(data, format, path.String())
	if err != nil {
		return nil, err
	}
	f.Path = path
	return f, nil
}

// Parse decodes data in the given format and checks it against the schema.
// filename is used in error messages only.
func Parse(data []byte, format Format, filename string) (*File, error) {
	if err := format.Validate(); err != nil {
		return nil, err
	}
	opts := []cueutil.Option{cueutil.WithFilename(filename)}

	if format == FormatCUE {
		res, err := cueutil.ParseAndDecode[File]([]byte(schema), data, schemaPath, opts...)
		if err != nil {
			return nil, err
		}
		return res.Value, nil
	}

	if err := cueutil.CheckFileSize(data, cueutil.DefaultMaxFileSize, filename); err != nil {
		return nil, err
	}
	var f File
	if err := decode(data, format, &f); err != nil {
		return nil, &ParseError{Path: filename, Format: format, Err: err}
	}
	if err := cueutil.ValidateValue([]byte(schema), &f, schemaPath, opts...); err != nil {
		return nil, err
	}
	return &f, nil
}

func decode(data []byte, format Format, f *File) error {
	r := bytes.NewReader(data)
	switch format {
	case FormatTOML:
		return toml.NewDecoder(r).DisallowUnknownFields().Decode(f)
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(f); err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		return nil
	default:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		return dec.Decode(f)
	}
}

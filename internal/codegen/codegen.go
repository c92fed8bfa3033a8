// SPDX-License-Identifier: MPL-2.0

package codegen

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"go/format"
	"strings"
	"text/template"

	"github.com/invowk/newtype/pkg/decl"
)

// RuntimeImport is the import path of the package generated code uses.
const RuntimeImport = "github.com/invowk/newtype/pkg/newtype"

var (
	//go:embed newtypes.go.tmpl
	fileTemplate string

	tmpl = template.Must(template.New("newtypes").Funcs(template.FuncMap{
		"comment": comment,
	}).Parse(fileTemplate))

	// ErrInvalidDeclarations is returned when Generate is handed a file
	// that does not validate.
	ErrInvalidDeclarations = errors.New("invalid declarations")
)

type (
	// Options tunes the generated file.
	Options struct {
		// Package overrides the package clause of the declarations.
		Package decl.PackageName
		// Witnesses enables the compile-time witness declarations.
		Witnesses bool
		// Header is emitted as comment lines above the generated-code
		// notice, e.g. a license identifier.
		Header string
		// Source names the declaration file in the output.
		Source string
	}

	// Warning is a non-fatal finding made while generating.
	Warning struct {
		Newtype decl.TypeName
		Message string
	}

	// Result is a generated file.
	Result struct {
		Source   []byte
		Warnings []Warning
	}

	fileData struct {
		Header       []string
		Source       string
		Package      decl.PackageName
		Runtime      string
		StdImports   []string
		OtherImports []string
		Newtypes     []newtypeData
	}

	newtypeData struct {
		Name       decl.TypeName
		Tag        string
		Underlying string
		Derives    string
		Doc        []string
		Markers    []string
		Witnesses  []string
	}
)

func (w Warning) String() string {
	if w.Newtype == "" {
		return w.Message
	}
	return fmt.Sprintf("%s: %s", w.Newtype, w.Message)
}

// DefaultOptions returns the options used when no configuration applies.
func DefaultOptions() Options {
	return Options{Witnesses: true}
}

// Generate validates f and renders it. The output is gofmt-formatted.
func Generate(f *decl.File, opts Options) (*Result, error) {
	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDeclarations, err)
	}

	data := fileData{
		Header:  headerLines(opts.Header),
		Source:  opts.Source,
		Package: f.Package,
		Runtime: RuntimeImport,
	}
	if opts.Package != "" {
		if err := opts.Package.Validate(); err != nil {
			return nil, err
		}
		data.Package = opts.Package
	}
	warnings, used := checkImports(f)
	data.StdImports, data.OtherImports = groupImports(used)

	res := &Result{}
	for _, nt := range f.Newtypes {
		nd, warnings, err := newtypeOf(nt, opts.Witnesses)
		if err != nil {
			return nil, err
		}
		data.Newtypes = append(data.Newtypes, nd)
		res.Warnings = append(res.Warnings, warnings...)
	}
	res.Warnings = append(res.Warnings, warnings...)

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("rendering %s: %w", f.Package, err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("formatting generated code: %w", err)
	}
	res.Source = src
	return res, nil
}

func newtypeOf(nt decl.Newtype, witnesses bool) (newtypeData, []Warning, error) {
	expr, err := nt.Underlying.Expr()
	if err != nil {
		return newtypeData{}, nil, err
	}
	caps, err := nt.Capabilities()
	if err != nil {
		return newtypeData{}, nil, err
	}

	nd := newtypeData{
		Name:       nt.Name,
		Tag:        decl.TagName(nt.Name),
		Underlying: exprString(expr),
		Markers:    markers(nt.Derive),
		Doc:        nt.Doc.CommentLines(),
	}
	if len(nd.Doc) == 0 {
		nd.Doc = []string{fmt.Sprintf("// %s is a newtype over %s.", nt.Name, nd.Underlying)}
	}
	if len(nd.Markers) == 0 {
		nd.Derives = "derives no capabilities"
	} else {
		nd.Derives = "derives " + list(nd.Markers) + " for " + nt.Name.String()
	}

	var warnings []Warning
	if witnesses {
		var msgs []string
		_, resolved := nt.Underlying.Resolve()
		nd.Witnesses, msgs = witnessesOf(caps, expr, nd.Tag, resolved)
		for _, m := range msgs {
			warnings = append(warnings, Warning{Newtype: nt.Name, Message: m})
		}
	}
	return nd, warnings, nil
}

func headerLines(header string) []string {
	header = strings.Trim(header, "\n")
	if strings.TrimSpace(header) == "" {
		return nil
	}
	return strings.Split(header, "\n")
}

func comment(line string) string {
	line = strings.TrimRight(line, " \t")
	if line == "" {
		return "//"
	}
	return "// " + line
}

// list joins names as "A", "A and B" or "A, B and C".
func list(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	default:
		return strings.Join(names[:len(names)-1], ", ") + " and " + names[len(names)-1]
	}
}

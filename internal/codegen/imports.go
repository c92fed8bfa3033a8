// SPDX-License-Identifier: MPL-2.0

package codegen

import (
	"fmt"
	"go/ast"
	"slices"
	"strings"

	"github.com/invowk/newtype/pkg/decl"
)

// groupImports splits imports into standard library paths and the rest,
// each sorted and without duplicates. The runtime package is always
// imported by the template.
func groupImports(imports []decl.ImportPath) (std, other []string) {
	for _, imp := range imports {
		p := string(imp)
		if p == RuntimeImport {
			continue
		}
		first, _, _ := strings.Cut(p, "/")
		if strings.Contains(first, ".") {
			other = append(other, p)
		} else {
			std = append(std, p)
		}
	}
	slices.Sort(std)
	slices.Sort(other)
	return slices.Compact(std), slices.Compact(other)
}

// assumedName guesses the package name of an import path the way goimports
// does: the last element, skipping a major version suffix, with a "go-"
// prefix and anything after the first non-identifier character removed.
func assumedName(path string) string {
	elems := strings.Split(path, "/")
	name := elems[len(elems)-1]
	if len(elems) > 1 && isMajorVersion(name) {
		name = elems[len(elems)-2]
	}
	name = strings.TrimPrefix(name, "go-")
	if i := strings.IndexFunc(name, func(r rune) bool {
		return !(r == '_' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9')
	}); i >= 0 {
		name = name[:i]
	}
	return name
}

func isMajorVersion(s string) bool {
	if len(s) < 2 || s[0] != 'v' {
		return false
	}
	for _, r := range s[1:] {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// checkImports warns about qualified identifiers whose package is not
// imported and about imports no underlying type refers to. It returns the
// imports that are used; the rest are left out of the generated file.
func checkImports(f *decl.File) ([]Warning, []decl.ImportPath) {
	imported := make(map[string]string)
	for _, imp := range f.Imports {
		imported[assumedName(string(imp))] = string(imp)
	}

	used := make(map[string]bool)
	var warnings []Warning
	for _, nt := range f.Newtypes {
		expr, err := nt.Underlying.Expr()
		if err != nil {
			continue
		}
		for _, q := range qualifiers(expr) {
			if _, ok := imported[q]; ok {
				used[q] = true
				continue
			}
			warnings = append(warnings, Warning{
				Newtype: nt.Name,
				Message: fmt.Sprintf("package %s is not in imports", q),
			})
		}
	}
	var kept []decl.ImportPath
	for _, imp := range f.Imports {
		p := string(imp)
		switch {
		case p == RuntimeImport:
		case used[assumedName(p)]:
			kept = append(kept, imp)
		default:
			warnings = append(warnings, Warning{Message: fmt.Sprintf("import %q is not used by any underlying type and was left out", p)})
		}
	}
	return warnings, kept
}

// qualifiers returns the package names expr refers to, in order of
// appearance and without repeats.
func qualifiers(expr ast.Expr) []string {
	var out []string
	ast.Inspect(expr, func(n ast.Node) bool {
		sel, ok := n.(*ast.SelectorExpr)
		if !ok {
			return true
		}
		if id, ok := sel.X.(*ast.Ident); ok && !slices.Contains(out, id.Name) {
			out = append(out, id.Name)
		}
		return false
	})
	return out
}

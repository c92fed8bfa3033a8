// SPDX-License-Identifier: MPL-2.0

package codegen

import (
	"fmt"
	"go/ast"
	"go/types"
	"strings"

	"github.com/invowk/newtype/pkg/decl"
	"github.com/invowk/newtype/pkg/newtype"
)

// markers returns the marker types a tag embeds for derive, in declaration
// order. Leaves already covered by a listed bundle are left out, as are
// repeats.
func markers(derive []decl.CapabilityName) []string {
	var covered newtype.Set
	for _, d := range derive {
		if _, s, ok := bundle(string(d)); ok {
			covered = covered.Union(s)
		}
	}

	var out []string
	seen := make(map[string]bool)
	for _, d := range derive {
		name, _, ok := bundle(string(d))
		if !ok {
			c, err := newtype.ParseCapability(string(d))
			if err != nil || covered.Has(c) {
				continue
			}
			name = c.String()
		}
		if seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, name)
	}
	return out
}

func bundle(name string) (string, newtype.Set, bool) {
	for _, b := range newtype.BundleNames() {
		if strings.EqualFold(b, name) {
			s, _ := newtype.Bundle(b)
			return b, s, true
		}
	}
	return "", 0, false
}

// methodForms names the capabilities a named type may also meet through a
// method, which the value-form witness would reject.
var methodForms = map[newtype.Capability]string{
	newtype.CapEquality: "Equal",
	newtype.CapThreeWay: "Compare",
}

// witnessesOf returns one witness type per capability, plus a message for
// each capability no witness could be written for. resolved reports
// whether the underlying type is built from predeclared types only.
func witnessesOf(caps newtype.Set, expr ast.Expr, tag string, resolved bool) ([]string, []string) {
	u := exprString(expr)
	var out, skipped []string
	for c := range caps.All() {
		if method, ok := methodForms[c]; ok && !resolved {
			skipped = append(skipped, fmt.Sprintf("no %s witness: %s may provide it through its %s method, checked when the package is initialized", c, u, method))
			continue
		}
		if c != newtype.CapIterable {
			out = append(out, fmt.Sprintf("newtype.Assert%s[%s, %s]", c, u, tag))
			continue
		}
		switch e := unparen(expr).(type) {
		case *ast.ArrayType:
			if e.Len == nil {
				out = append(out, fmt.Sprintf("newtype.AssertIterable[%s, %s, %s]", exprString(e.Elt), u, tag))
				continue
			}
		case *ast.MapType:
			out = append(out, fmt.Sprintf("newtype.AssertIterableMap[%s, %s, %s, %s]",
				exprString(e.Key), exprString(e.Value), u, tag))
			continue
		}
		skipped = append(skipped, fmt.Sprintf("no %s witness: the element types of %s are not visible", c, u))
	}
	return out, skipped
}

func unparen(expr ast.Expr) ast.Expr {
	for {
		p, ok := expr.(*ast.ParenExpr)
		if !ok {
			return expr
		}
		expr = p.X
	}
}

func exprString(expr ast.Expr) string {
	return types.ExprString(expr)
}

// SPDX-License-Identifier: MPL-2.0

package decl

import (
	"errors"
	"fmt"
	"go/ast"
	"strings"

	"github.com/invowk/newtype/internal/dag"
)

// ErrCyclicNewtype is the sentinel error wrapped by CyclicNewtypeError.
var ErrCyclicNewtype = errors.New("cyclic newtype")

// CyclicNewtypeError is returned when declared newtypes refer to each other
// through their underlying types. Go rejects the generated aliases as
// recursive. Cycle starts and ends with the same name.
type CyclicNewtypeError struct {
	Cycle []TypeName
}

// Error implements the error interface.
func (e *CyclicNewtypeError) Error() string {
	parts := make([]string, len(e.Cycle))
	for i, n := range e.Cycle {
		parts[i] = string(n)
	}
	if len(e.Cycle) == 2 {
		return fmt.Sprintf("newtype %s refers to itself in its underlying type", e.Cycle[0])
	}
	return "newtypes refer to each other in their underlying types: " + strings.Join(parts, " -> ")
}

// Unwrap returns ErrCyclicNewtype for errors.Is() compatibility.
func (e *CyclicNewtypeError) Unwrap() error { return ErrCyclicNewtype }

// References returns the declared newtypes that n's underlying type names,
// in order of first use.
func (f *File) References(n Newtype) []TypeName {
	expr, err := n.Underlying.Expr()
	if err != nil {
		return nil
	}
	declared := make(map[string]bool, len(f.Newtypes))
	for _, nt := range f.Newtypes {
		declared[string(nt.Name)] = true
	}

	var refs []TypeName
	seen := make(map[string]bool)
	ast.Inspect(expr, func(node ast.Node) bool {
		switch x := node.(type) {
		case *ast.SelectorExpr:
			// pkg.Name never refers to a declaration in this file.
			return false
		case *ast.Field:
			// Skip field and parameter names; only the type matters.
			ast.Inspect(x.Type, func(inner ast.Node) bool {
				return collectRef(inner, declared, seen, &refs)
			})
			return false
		default:
			return collectRef(node, declared, seen, &refs)
		}
	})
	return refs
}

func collectRef(node ast.Node, declared, seen map[string]bool, refs *[]TypeName) bool {
	switch x := node.(type) {
	case *ast.SelectorExpr:
		return false
	case *ast.Ident:
		if declared[x.Name] && !seen[x.Name] {
			seen[x.Name] = true
			*refs = append(*refs, TypeName(x.Name))
		}
	}
	return true
}

// checkCycles reports newtypes whose underlying types refer back to them.
func (f *File) checkCycles() error {
	g := dag.New[TypeName]()
	for _, nt := range f.Newtypes {
		g.AddNode(nt.Name)
		for _, ref := range f.References(nt) {
			g.AddEdge(nt.Name, ref)
		}
	}
	_, err := g.Sort()
	var ce *dag.CycleError[TypeName]
	if errors.As(err, &ce) {
		return &CyclicNewtypeError{Cycle: ce.Cycle}
	}
	return err
}

// SPDX-License-Identifier: MPL-2.0

package newtypelint

import (
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"testing"
)

const requirementSrc = `package p

type Point struct{ Coords []int }

func (p Point) Equal(o Point) bool { return len(p.Coords) == len(o.Coords) }

type Version struct{ Parts []int }

func (v Version) Compare(o Version) int { return len(v.Parts) - len(o.Parts) }

type Celsius float64

type Token struct{ raw []byte }

func (t *Token) Scan(state any, verb rune) error { return nil }

type Icon struct{ Pixels []byte }
`

func checkSource(t *testing.T) *types.Package {
	t.Helper()
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, "p.go", requirementSrc, 0)
	if err != nil {
		t.Fatal(err)
	}
	var conf types.Config
	pkg, err := conf.Check("p", fset, []*ast.File{f}, nil)
	if err != nil {
		t.Fatal(err)
	}
	return pkg
}

func TestRequirements(t *testing.T) {
	t.Parallel()

	pkg := checkSource(t)
	named := func(name string) types.Type { return pkg.Scope().Lookup(name).Type() }
	byName := make(map[string]capability)
	for _, c := range capabilities {
		byName[c.name] = c
	}

	tests := []struct {
		capability string
		typ        types.Type
		want       bool
	}{
		{"Equality", types.Typ[types.Int32], true},
		{"Equality", named("Point"), true},
		{"Equality", named("Icon"), false},
		{"BaseEquality", named("Point"), false},
		{"Relational", named("Celsius"), true},
		{"Relational", types.Typ[types.Complex128], false},
		{"ThreeWay", named("Version"), true},
		{"ThreeWay", types.Typ[types.Bool], false},
		{"Addable", types.Typ[types.String], true},
		{"Subtractable", types.Typ[types.String], false},
		{"Divisible", types.Typ[types.Complex64], true},
		{"Incrementable", types.Typ[types.Complex64], false},
		{"Incrementable", named("Celsius"), true},
		{"Hashable", types.NewSlice(types.Typ[types.Byte]), false},
		{"Hashable", types.NewPointer(named("Icon")), true},
		{"Readable", named("Token"), true},
		{"Readable", types.NewSlice(types.Typ[types.Byte]), true},
		{"Readable", named("Icon"), false},
		{"Iterable", types.NewMap(types.Typ[types.String], types.Typ[types.Int]), true},
		{"Iterable", types.NewArray(types.Typ[types.Int], 3), false},
		{"Printable", named("Icon"), true},
		{"Indirect", types.NewChan(types.SendRecv, types.Typ[types.Int]), true},
	}
	for _, tt := range tests {
		c, ok := byName[tt.capability]
		if !ok {
			t.Fatalf("unknown capability %s", tt.capability)
		}
		if got := c.satisfied(tt.typ); got != tt.want {
			t.Errorf("%s satisfied by %s = %v, want %v", tt.capability, tt.typ, got, tt.want)
		}
	}
}

func TestCapabilitiesCoverRuntimeMarkers(t *testing.T) {
	t.Parallel()

	seen := make(map[string]bool)
	for _, c := range capabilities {
		if seen[c.method] {
			t.Errorf("marker method %s listed twice", c.method)
		}
		seen[c.method] = true
		if c.requirement == "" || c.satisfied == nil {
			t.Errorf("capability %s is incomplete", c.name)
		}
	}
	if len(capabilities) != 14 {
		t.Errorf("got %d capabilities, want 14", len(capabilities))
	}
}

// SPDX-License-Identifier: MPL-2.0

package decl

import (
	"errors"
	"fmt"
	"go/ast"
	"go/token"
	"math"
	"reflect"
	"strconv"
)

// maxChanElemSize is the largest channel element size Go accepts.
const maxChanElemSize = 1<<16 - 1

// errUnresolved marks type expressions that refer to named types, which
// only the compiler can check.
var errUnresolved = errors.New("type not resolvable without type-checking")

var predeclared = map[string]reflect.Type{
	"bool":       reflect.TypeFor[bool](),
	"string":     reflect.TypeFor[string](),
	"int":        reflect.TypeFor[int](),
	"int8":       reflect.TypeFor[int8](),
	"int16":      reflect.TypeFor[int16](),
	"int32":      reflect.TypeFor[int32](),
	"int64":      reflect.TypeFor[int64](),
	"uint":       reflect.TypeFor[uint](),
	"uint8":      reflect.TypeFor[uint8](),
	"uint16":     reflect.TypeFor[uint16](),
	"uint32":     reflect.TypeFor[uint32](),
	"uint64":     reflect.TypeFor[uint64](),
	"uintptr":    reflect.TypeFor[uintptr](),
	"float32":    reflect.TypeFor[float32](),
	"float64":    reflect.TypeFor[float64](),
	"complex64":  reflect.TypeFor[complex64](),
	"complex128": reflect.TypeFor[complex128](),
	"byte":       reflect.TypeFor[byte](),
	"rune":       reflect.TypeFor[rune](),
	"any":        reflect.TypeFor[any](),
	"error":      reflect.TypeFor[error](),
}

// resolveType builds the reflect.Type of a type expression made only of
// predeclared types, pointers, slices, arrays, maps and channels.
func resolveType(expr ast.Expr) (reflect.Type, error) {
	switch e := expr.(type) {
	case *ast.Ident:
		if t, ok := predeclared[e.Name]; ok {
			return t, nil
		}
		return nil, errUnresolved
	case *ast.ParenExpr:
		return resolveType(e.X)
	case *ast.StarExpr:
		t, err := resolveType(e.X)
		if err != nil {
			return nil, err
		}
		return reflect.PointerTo(t), nil
	case *ast.ArrayType:
		elem, err := resolveType(e.Elt)
		if err != nil {
			return nil, err
		}
		if e.Len == nil {
			return reflect.SliceOf(elem), nil
		}
		lit, ok := e.Len.(*ast.BasicLit)
		if !ok || lit.Kind != token.INT {
			return nil, errUnresolved
		}
		n, err := strconv.ParseInt(lit.Value, 0, 64)
		if err != nil || n < 0 || n > math.MaxInt {
			return nil, fmt.Errorf("invalid array length %s", lit.Value)
		}
		if elem.Size() > 0 && uint64(n) > uint64(^uintptr(0)/elem.Size()) {
			return nil, fmt.Errorf("array length %s is too large for element type %s", lit.Value, elem)
		}
		return reflect.ArrayOf(int(n), elem), nil
	case *ast.MapType:
		key, err := resolveType(e.Key)
		if err != nil {
			return nil, err
		}
		val, err := resolveType(e.Value)
		if err != nil {
			return nil, err
		}
		if !key.Comparable() {
			return nil, fmt.Errorf("invalid map key type %s", key)
		}
		return reflect.MapOf(key, val), nil
	case *ast.ChanType:
		elem, err := resolveType(e.Value)
		if err != nil {
			return nil, err
		}
		if elem.Size() > maxChanElemSize {
			return nil, fmt.Errorf("channel element type %s is too large", elem)
		}
		dir := reflect.BothDir
		switch e.Dir {
		case ast.SEND:
			dir = reflect.SendDir
		case ast.RECV:
			dir = reflect.RecvDir
		}
		return reflect.ChanOf(dir, elem), nil
	default:
		return nil, errUnresolved
	}
}

// Resolve returns the reflect.Type of u when it is built only from
// predeclared types, pointers, slices, arrays, maps and channels. It
// reports false for named types and for invalid expressions.
func (u Underlying) Resolve() (reflect.Type, bool) {
	expr, err := u.Expr()
	if err != nil {
		return nil, false
	}
	t, err := resolveType(expr)
	if err != nil {
		return nil, false
	}
	return t, true
}

// SPDX-License-Identifier: MPL-2.0

package decl

import (
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"

	"golang.org/x/mod/module"

	"github.com/invowk/newtype/pkg/newtype"
)

var (
	// ErrInvalidTypeName is the sentinel error wrapped by InvalidTypeNameError.
	ErrInvalidTypeName = errors.New("invalid type name")

	// ErrInvalidPackageName is the sentinel error wrapped by InvalidPackageNameError.
	ErrInvalidPackageName = errors.New("invalid package name")

	// ErrInvalidImportPath is the sentinel error wrapped by InvalidImportPathError.
	ErrInvalidImportPath = errors.New("invalid import path")

	// ErrInvalidUnderlying is the sentinel error wrapped by InvalidUnderlyingError.
	ErrInvalidUnderlying = errors.New("invalid underlying type")
)

type (
	// TypeName is the Go identifier of a declared newtype, e.g. "Meters".
	TypeName string

	// PackageName is the Go package clause of the generated file.
	PackageName string

	// ImportPath is a Go import path needed by an underlying type.
	ImportPath string

	// Underlying is a Go type expression, e.g. "int32", "[]string" or
	// "map[string]time.Duration".
	Underlying string

	// CapabilityName is a capability or bundle name as written in derive.
	CapabilityName string

	// InvalidTypeNameError is returned when a TypeName is not a usable Go
	// identifier.
	InvalidTypeNameError struct {
		Value TypeName
	}

	// InvalidPackageNameError is returned when a PackageName is not a
	// usable Go identifier.
	InvalidPackageNameError struct {
		Value PackageName
	}

	// InvalidImportPathError is returned when an ImportPath is malformed.
	InvalidImportPathError struct {
		Value ImportPath
		Err   error
	}

	// InvalidUnderlyingError is returned when an Underlying value is not a
	// Go type expression.
	InvalidUnderlyingError struct {
		Value  Underlying
		Reason string
	}
)

func isIdentifier(s string) bool {
	return s != "_" && token.IsIdentifier(s)
}

// String returns the string representation of the TypeName.
func (n TypeName) String() string { return string(n) }

// Validate returns an error if the name is not a Go identifier.
func (n TypeName) Validate() error {
	if !isIdentifier(string(n)) {
		return &InvalidTypeNameError{Value: n}
	}
	return nil
}

// IsExported reports whether the name starts with an upper-case letter.
func (n TypeName) IsExported() bool { return token.IsExported(string(n)) }

// Error implements the error interface.
func (e *InvalidTypeNameError) Error() string {
	return fmt.Sprintf("invalid type name %q: must be a Go identifier", e.Value)
}

// Unwrap returns ErrInvalidTypeName for errors.Is() compatibility.
func (e *InvalidTypeNameError) Unwrap() error { return ErrInvalidTypeName }

// String returns the string representation of the PackageName.
func (p PackageName) String() string { return string(p) }

// Validate returns an error if the name is not a Go identifier.
func (p PackageName) Validate() error {
	if !isIdentifier(string(p)) {
		return &InvalidPackageNameError{Value: p}
	}
	return nil
}

// Error implements the error interface.
func (e *InvalidPackageNameError) Error() string {
	return fmt.Sprintf("invalid package name %q: must be a Go identifier", e.Value)
}

// Unwrap returns ErrInvalidPackageName for errors.Is() compatibility.
func (e *InvalidPackageNameError) Unwrap() error { return ErrInvalidPackageName }

// String returns the string representation of the ImportPath.
func (p ImportPath) String() string { return string(p) }

// Validate checks the path with the module import path rules.
func (p ImportPath) Validate() error {
	if err := module.CheckImportPath(string(p)); err != nil {
		return &InvalidImportPathError{Value: p, Err: err}
	}
	return nil
}

// Error implements the error interface.
func (e *InvalidImportPathError) Error() string {
	return fmt.Sprintf("invalid import path %q: %v", e.Value, e.Err)
}

// Unwrap returns ErrInvalidImportPath for errors.Is() compatibility.
func (e *InvalidImportPathError) Unwrap() error { return ErrInvalidImportPath }

// String returns the string representation of the Underlying.
func (u Underlying) String() string { return string(u) }

// Expr parses the type expression.
func (u Underlying) Expr() (ast.Expr, error) {
	expr, err := parser.ParseExpr(string(u))
	if err != nil {
		return nil, &InvalidUnderlyingError{Value: u, Reason: err.Error()}
	}
	if !isTypeExpr(expr) {
		return nil, &InvalidUnderlyingError{Value: u, Reason: "not a type expression"}
	}
	return expr, nil
}

// Validate returns an error if the value is not a Go type expression.
func (u Underlying) Validate() error {
	_, err := u.Expr()
	return err
}

// Error implements the error interface.
func (e *InvalidUnderlyingError) Error() string {
	return fmt.Sprintf("invalid underlying type %q: %s", e.Value, e.Reason)
}

// Unwrap returns ErrInvalidUnderlying for errors.Is() compatibility.
func (e *InvalidUnderlyingError) Unwrap() error { return ErrInvalidUnderlying }

// isTypeExpr reports whether expr can only denote a type.
func isTypeExpr(expr ast.Expr) bool {
	switch e := expr.(type) {
	case *ast.Ident:
		return true
	case *ast.SelectorExpr:
		_, ok := e.X.(*ast.Ident)
		return ok
	case *ast.ParenExpr:
		return isTypeExpr(e.X)
	case *ast.StarExpr:
		return isTypeExpr(e.X)
	case *ast.ArrayType:
		if _, ok := e.Len.(*ast.Ellipsis); ok {
			return false
		}
		return isTypeExpr(e.Elt)
	case *ast.MapType:
		return isTypeExpr(e.Key) && isTypeExpr(e.Value)
	case *ast.ChanType:
		return isTypeExpr(e.Value)
	case *ast.FuncType, *ast.StructType, *ast.InterfaceType:
		return true
	case *ast.IndexExpr:
		return isTypeExpr(e.X) && isTypeExpr(e.Index)
	case *ast.IndexListExpr:
		if !isTypeExpr(e.X) {
			return false
		}
		for _, idx := range e.Indices {
			if !isTypeExpr(idx) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// String returns the string representation of the CapabilityName.
func (c CapabilityName) String() string { return string(c) }

// Set resolves the name to the capabilities it stands for.
func (c CapabilityName) Set() (newtype.Set, error) {
	return newtype.ParseCapabilities(string(c))
}

// Validate returns an error if the name is neither a capability nor a
// bundle.
func (c CapabilityName) Validate() error {
	_, err := c.Set()
	return err
}

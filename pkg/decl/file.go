// SPDX-License-Identifier: MPL-2.0

package decl

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/invowk/newtype/pkg/newtype"
	"github.com/invowk/newtype/pkg/types"
)

var (
	// ErrDuplicateNewtype is the sentinel error wrapped by DuplicateNewtypeError.
	ErrDuplicateNewtype = errors.New("duplicate newtype")

	// ErrDuplicateCapability is the sentinel error wrapped by DuplicateCapabilityError.
	ErrDuplicateCapability = errors.New("duplicate capability")
)

type (
	// File is a decoded declaration file.
	File struct {
		Package  PackageName  `json:"package" toml:"package" yaml:"package"`
		Imports  []ImportPath `json:"imports,omitempty" toml:"imports,omitempty" yaml:"imports,omitempty"`
		Newtypes []Newtype    `json:"newtypes" toml:"newtypes" yaml:"newtypes"`

		// Path is the file the declarations were loaded from, if any.
		Path types.FilesystemPath `json:"-" toml:"-" yaml:"-"`
	}

	// Newtype is one declared newtype.
	Newtype struct {
		Name       TypeName         `json:"name" toml:"name" yaml:"name"`
		Underlying Underlying       `json:"underlying" toml:"underlying" yaml:"underlying"`
		Derive     []CapabilityName `json:"derive,omitempty" toml:"derive,omitempty" yaml:"derive,omitempty"`
		Doc        types.DocText    `json:"doc,omitempty" toml:"doc,omitempty" yaml:"doc,omitempty"`
	}

	// NewtypeError attributes an error to one declaration.
	NewtypeError struct {
		Index int
		Name  TypeName
		Err   error
	}

	// DuplicateNewtypeError is returned when two declarations share a name
	// or would share a generated tag name.
	DuplicateNewtypeError struct {
		Name  TypeName
		Other TypeName
	}

	// DuplicateCapabilityError is returned when derive lists a name twice.
	DuplicateCapabilityError struct {
		Name CapabilityName
	}
)

// Error implements the error interface.
func (e *NewtypeError) Error() string {
	return fmt.Sprintf("newtypes[%d] (%s): %v", e.Index, e.Name, e.Err)
}

// Unwrap returns the wrapped error.
func (e *NewtypeError) Unwrap() error { return e.Err }

// Error implements the error interface.
func (e *DuplicateNewtypeError) Error() string {
	if e.Name == e.Other {
		return fmt.Sprintf("newtype %s is declared more than once", e.Name)
	}
	return fmt.Sprintf("newtypes %s and %s would share the tag %s", e.Other, e.Name, TagName(e.Name))
}

// Unwrap returns ErrDuplicateNewtype for errors.Is() compatibility.
func (e *DuplicateNewtypeError) Unwrap() error { return ErrDuplicateNewtype }

// Error implements the error interface.
func (e *DuplicateCapabilityError) Error() string {
	return fmt.Sprintf("capability %s is listed more than once", e.Name)
}

// Unwrap returns ErrDuplicateCapability for errors.Is() compatibility.
func (e *DuplicateCapabilityError) Unwrap() error { return ErrDuplicateCapability }

// Validate checks the package name, the imports and every declaration.
// All errors are returned joined.
func (f *File) Validate() error {
	var errs []error
	if err := f.Package.Validate(); err != nil {
		errs = append(errs, err)
	}
	for _, imp := range f.Imports {
		if err := imp.Validate(); err != nil {
			errs = append(errs, err)
		}
	}

	byTag := make(map[string]TypeName, len(f.Newtypes))
	for i, nt := range f.Newtypes {
		if err := nt.Validate(); err != nil {
			errs = append(errs, &NewtypeError{Index: i, Name: nt.Name, Err: err})
			continue
		}
		tag := TagName(nt.Name)
		if other, dup := byTag[tag]; dup {
			errs = append(errs, &NewtypeError{Index: i, Name: nt.Name, Err: &DuplicateNewtypeError{Name: nt.Name, Other: other}})
			continue
		}
		byTag[tag] = nt.Name
	}
	if len(errs) == 0 {
		errs = append(errs, f.checkCycles())
	}
	return errors.Join(errs...)
}

// CheckRequirements verifies, for every declaration whose underlying type
// is built from predeclared types only, that the type meets the
// requirements of the derived capabilities. Other declarations are checked
// by the compiler through the generated witnesses.
func (f *File) CheckRequirements() error {
	var errs []error
	for i, nt := range f.Newtypes {
		if err := nt.CheckRequirements(); err != nil {
			errs = append(errs, &NewtypeError{Index: i, Name: nt.Name, Err: err})
		}
	}
	return errors.Join(errs...)
}

// Lookup returns the declaration named name.
func (f *File) Lookup(name TypeName) (Newtype, bool) {
	for _, nt := range f.Newtypes {
		if nt.Name == name {
			return nt, true
		}
	}
	return Newtype{}, false
}

// Validate checks one declaration.
func (n Newtype) Validate() error {
	var errs []error
	if err := n.Name.Validate(); err != nil {
		errs = append(errs, err)
	}
	if err := n.Underlying.Validate(); err != nil {
		errs = append(errs, err)
	}
	if err := n.Doc.Validate(); err != nil {
		errs = append(errs, err)
	}

	seen := make(map[string]bool, len(n.Derive))
	for _, c := range n.Derive {
		if err := c.Validate(); err != nil {
			errs = append(errs, err)
			continue
		}
		key := strings.ToLower(string(c))
		if seen[key] {
			errs = append(errs, &DuplicateCapabilityError{Name: c})
		}
		seen[key] = true
	}
	return errors.Join(errs...)
}

// Capabilities resolves derive into the set of leaf capabilities.
func (n Newtype) Capabilities() (newtype.Set, error) {
	var s newtype.Set
	var errs []error
	for _, c := range n.Derive {
		cs, err := c.Set()
		if err != nil {
			errs = append(errs, err)
			continue
		}
		s = s.Union(cs)
	}
	return s, errors.Join(errs...)
}

// CheckRequirements checks the capability requirements against the
// underlying type when it can be resolved without type-checking.
func (n Newtype) CheckRequirements() error {
	caps, err := n.Capabilities()
	if err != nil {
		return err
	}
	expr, err := n.Underlying.Expr()
	if err != nil {
		return err
	}
	t, err := resolveType(expr)
	if errors.Is(err, errUnresolved) {
		return nil
	}
	if err != nil {
		return &InvalidUnderlyingError{Value: n.Underlying, Reason: err.Error()}
	}
	return caps.Check(t)
}

// TagName returns the name of the generated tag type for a newtype:
// "Meters" gives "metersTag" and "HTTPCode" gives "httpCodeTag".
func TagName(name TypeName) string {
	r := []rune(string(name))
	upper := 0
	for upper < len(r) && unicode.IsUpper(r[upper]) {
		upper++
	}
	switch {
	case upper == 0:
	case upper == len(r) || upper == 1:
		for i := range upper {
			r[i] = unicode.ToLower(r[i])
		}
	default:
		// Keep the last capital of an initialism: it starts the next word.
		for i := range upper - 1 {
			r[i] = unicode.ToLower(r[i])
		}
	}
	return string(r) + "Tag"
}

// Flatten expands joined errors into one error per problem, so each can be
// reported on its own line. A NewtypeError holding several problems becomes
// one NewtypeError per problem.
func Flatten(err error) []error {
	if err == nil {
		return nil
	}
	switch e := err.(type) {
	case *ParseError:
		return []error{err}
	case *NewtypeError:
		inner := Flatten(e.Err)
		if len(inner) <= 1 {
			return []error{err}
		}
		out := make([]error, len(inner))
		for i, ie := range inner {
			out[i] = &NewtypeError{Index: e.Index, Name: e.Name, Err: ie}
		}
		return out
	case interface{ Unwrap() []error }:
		var out []error
		for _, ie := range e.Unwrap() {
			out = append(out, Flatten(ie)...)
		}
		return out
	default:
		return []error{err}
	}
}

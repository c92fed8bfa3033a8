// SPDX-License-Identifier: MPL-2.0

package newtype

import (
	"errors"
	"fmt"
	"reflect"
)

// Def describes a validated newtype declaration. It is zero-size; every
// method recomputes what it needs from T and Tag.
//
// Package-level definitions are the intended use:
//
//	var MetersDef = newtype.MustDefine[int32, metersTag]()
type Def[T any, Tag any] struct{}

// Define validates that T meets the requirement of every capability Tag
// derives and that no marker is embedded ambiguously. All violations are
// returned joined.
func Define[T any, Tag any]() (Def[T, Tag], error) {
	var d Def[T, Tag]
	if err := d.Validate(); err != nil {
		return d, fmt.Errorf("define %s: %w", d, err)
	}
	return d, nil
}

// MustDefine is like Define but panics on error.
func MustDefine[T any, Tag any]() Def[T, Tag] {
	d, err := Define[T, Tag]()
	if err != nil {
		panic(err)
	}
	return d
}

// New wraps value.
func (Def[T, Tag]) New(value T) Type[T, Tag] {
	return Type[T, Tag]{value: value}
}

// Build constructs the wrapped value in place by passing a pointer to a
// zero T to init.
func (Def[T, Tag]) Build(init func(*T)) Type[T, Tag] {
	var n Type[T, Tag]
	if init != nil {
		init(&n.value)
	}
	return n
}

// Zero returns the newtype wrapping the zero value of T.
func (Def[T, Tag]) Zero() Type[T, Tag] {
	return Type[T, Tag]{}
}

// Capabilities returns the capabilities Tag derives.
func (Def[T, Tag]) Capabilities() Set {
	s, _ := CapabilitiesOf[Tag]()
	return s
}

// Name returns the name of the tag type.
func (Def[T, Tag]) Name() string {
	return tagName[Tag]()
}

// Underlying returns the reflect.Type of T.
func (Def[T, Tag]) Underlying() reflect.Type {
	return reflect.TypeFor[T]()
}

// String renders the definition as "metersTag(int32) {Equality, Addable}".
func (d Def[T, Tag]) String() string {
	return fmt.Sprintf("%s(%s) %s", d.Name(), typeString(d.Underlying()), d.Capabilities())
}

// Validate returns the joined requirement and ambiguity errors, or nil.
func (d Def[T, Tag]) Validate() error {
	s, ambErr := CapabilitiesOf[Tag]()
	return errors.Join(ambErr, s.Check(d.Underlying()))
}

// IsValid returns whether the definition is valid, and a list of
// validation errors if it is not.
func (d Def[T, Tag]) IsValid() (bool, []error) {
	err := d.Validate()
	if err == nil {
		return true, nil
	}
	return false, flatten(err)
}

// flatten expands joined errors into their components.
func flatten(err error) []error {
	if err == nil {
		return nil
	}
	if j, ok := err.(interface{ Unwrap() []error }); ok {
		var out []error
		for _, e := range j.Unwrap() {
			out = append(out, flatten(e)...)
		}
		return out
	}
	return []error{err}
}

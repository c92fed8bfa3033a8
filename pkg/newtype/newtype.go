// SPDX-License-Identifier: MPL-2.0

package newtype

import (
	"fmt"
	"reflect"
)

// Type is a nominal wrapper around exactly one value of T. Two
// instantiations with different Tag types are unrelated types.
//
// The zero-size leading field makes Type incomparable, so the built-in ==
// operator and map-key use are only available through the Equality and
// Hashable capabilities. It adds nothing to the size of the value.
type Type[T any, Tag any] struct {
	_     [0]func()
	value T
}

// New wraps value in a Type[T, Tag]. The value is copied; no validation
// beyond T's own construction takes place.
func New[T any, Tag any](value T) Type[T, Tag] {
	return Type[T, Tag]{value: value}
}

// Unwrap returns a copy of the wrapped value.
func (n Type[T, Tag]) Unwrap() T {
	return n.value
}

// Format implements fmt.Formatter. Newtypes whose tag embeds Printable
// forward the verb and flags to the wrapped value; all others render as
// <TagName> so that their contents never reach logs by accident.
func (n Type[T, Tag]) Format(f fmt.State, verb rune) {
	if derives[Tag, PrintableTag]() {
		fmt.Fprintf(f, fmt.FormatString(f, verb), n.value)
		return
	}
	fmt.Fprintf(f, "<%s>", tagName[Tag]())
}

// derives reports whether the zero value of Tag satisfies the capability
// constraint C.
func derives[Tag any, C any]() bool {
	_, ok := any(*new(Tag)).(C)
	return ok
}

// tagName returns the short name of Tag for placeholders and diagnostics.
func tagName[Tag any]() string {
	t := reflect.TypeFor[Tag]()
	if name := t.Name(); name != "" {
		return name
	}
	return t.String()
}

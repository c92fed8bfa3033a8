// SPDX-License-Identifier: MPL-2.0

package newtype

import (
	"errors"
	"iter"
	"math/bits"
	"reflect"
	"strings"
)

// Set is a set of leaf capabilities. The zero Set is empty.
type Set uint32

// NewSet returns the set holding caps. Invalid capabilities are ignored.
func NewSet(caps ...Capability) Set {
	var s Set
	for _, c := range caps {
		s = s.With(c)
	}
	return s
}

func bit(c Capability) Set {
	if !c.valid() {
		return 0
	}
	return 1 << c
}

// With returns s with c added.
func (s Set) With(c Capability) Set { return s | bit(c) }

// Without returns s with c removed.
func (s Set) Without(c Capability) Set { return s &^ bit(c) }

// Has reports whether c is in s.
func (s Set) Has(c Capability) bool {
	b := bit(c)
	return b != 0 && s&b == b
}

// HasAll reports whether every capability in caps is in s.
func (s Set) HasAll(caps ...Capability) bool {
	for _, c := range caps {
		if !s.Has(c) {
			return false
		}
	}
	return true
}

// SubsetOf reports whether every capability of s is also in other.
func (s Set) SubsetOf(other Set) bool { return s&^other == 0 }

// ProperSubsetOf reports whether s is a subset of other and not equal to it.
func (s Set) ProperSubsetOf(other Set) bool { return s != other && s.SubsetOf(other) }

// Union returns the capabilities in s or other.
func (s Set) Union(other Set) Set { return s | other }

// Intersect returns the capabilities in both s and other.
func (s Set) Intersect(other Set) Set { return s & other }

// Len returns the number of capabilities in s.
func (s Set) Len() int { return bits.OnesCount32(uint32(s)) }

// IsEmpty reports whether s holds no capability.
func (s Set) IsEmpty() bool { return s == 0 }

// All iterates the capabilities of s in declaration order.
func (s Set) All() iter.Seq[Capability] {
	return func(yield func(Capability) bool) {
		for c := CapEquality; c <= CapIndirect; c++ {
			if s.Has(c) && !yield(c) {
				return
			}
		}
	}
}

// Slice returns the capabilities of s in declaration order.
func (s Set) Slice() []Capability {
	caps := make([]Capability, 0, s.Len())
	for c := range s.All() {
		caps = append(caps, c)
	}
	return caps
}

// String renders s as "{Equality, Relational}".
func (s Set) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	first := true
	for c := range s.All() {
		if !first {
			sb.WriteString(", ")
		}
		sb.WriteString(c.String())
		first = false
	}
	sb.WriteByte('}')
	return sb.String()
}

// Check verifies that the underlying type t meets the requirement of every
// capability in s. All violations are returned joined; each one is a
// *MissingRequirementError.
func (s Set) Check(t reflect.Type) error {
	var errs []error
	for c := range s.All() {
		if !c.SatisfiedBy(t) {
			errs = append(errs, &MissingRequirementError{
				Capability:  c,
				Underlying:  typeString(t),
				Requirement: c.Requirement(),
			})
		}
	}
	return errors.Join(errs...)
}

func typeString(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.String()
}

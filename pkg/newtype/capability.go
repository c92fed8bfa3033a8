// SPDX-License-Identifier: MPL-2.0

package newtype

import (
	"reflect"
	"slices"
	"strconv"
	"strings"
)

// Capability markers. A tag type derives a capability by embedding the
// marker; the marker contributes an unexported method that the operation's
// constraint requires.
type (
	// Equality grants Equal, NotEqual and EqualBy.
	Equality struct{}
	// BaseEquality grants EqualBase, comparison against a bare T.
	BaseEquality struct{}
	// Relational grants Less, LessEqual, Greater, GreaterEqual, Min and Max.
	Relational struct{}
	// ThreeWay grants Compare, CompareBy and Sort.
	ThreeWay struct{}
	// Addable grants Add, AddAssign and Sum.
	Addable struct{}
	// Subtractable grants Sub and SubAssign.
	Subtractable struct{}
	// Multipliable grants Mul and MulAssign.
	Multipliable struct{}
	// Divisible grants Div and DivAssign.
	Divisible struct{}
	// Incrementable grants Inc and Dec.
	Incrementable struct{}
	// Hashable grants Hash and KeyOf.
	Hashable struct{}
	// Printable grants String, Fprint and fmt verb forwarding.
	Printable struct{}
	// Readable grants Parse and Fscan.
	Readable struct{}
	// Iterable grants All, Values, Backward, Len, Entries and Keys.
	Iterable struct{}
	// Indirect grants Deref.
	Indirect struct{}

	// Ordering bundles Relational and ThreeWay.
	Ordering struct {
		Relational
		ThreeWay
	}

	// Arithmetic bundles Addable, Subtractable, Multipliable and Divisible.
	Arithmetic struct {
		Addable
		Subtractable
		Multipliable
		Divisible
	}
)

func (Equality) equality()           {}
func (BaseEquality) baseEquality()   {}
func (Relational) relational()       {}
func (ThreeWay) threeWay()           {}
func (Addable) addable()             {}
func (Subtractable) subtractable()   {}
func (Multipliable) multipliable()   {}
func (Divisible) divisible()         {}
func (Incrementable) incrementable() {}
func (Hashable) hashable()           {}
func (Printable) printable()         {}
func (Readable) readable()           {}
func (Iterable) iterable()           {}
func (Indirect) indirect()           {}

// Tag constraints. Only types embedding the matching marker satisfy them.
type (
	EqualityTag      interface{ equality() }
	BaseEqualityTag  interface{ baseEquality() }
	RelationalTag    interface{ relational() }
	ThreeWayTag      interface{ threeWay() }
	AddableTag       interface{ addable() }
	SubtractableTag  interface{ subtractable() }
	MultipliableTag  interface{ multipliable() }
	DivisibleTag     interface{ divisible() }
	IncrementableTag interface{ incrementable() }
	HashableTag      interface{ hashable() }
	PrintableTag     interface{ printable() }
	ReadableTag      interface{ readable() }
	IterableTag      interface{ iterable() }
	IndirectTag      interface{ indirect() }
)

// Capability identifies one leaf capability.
type Capability uint8

const (
	CapEquality Capability = iota + 1
	CapBaseEquality
	CapRelational
	CapThreeWay
	CapAddable
	CapSubtractable
	CapMultipliable
	CapDivisible
	CapIncrementable
	CapHashable
	CapPrintable
	CapReadable
	CapIterable
	CapIndirect

	capabilityCount = int(CapIndirect)
)

type capabilityInfo struct {
	name        string
	marker      reflect.Type
	constraint  reflect.Type
	requirement string
	operations  []string
	satisfied   func(reflect.Type) bool
}

var capabilityTable = [capabilityCount + 1]capabilityInfo{
	CapEquality: {
		name:        "Equality",
		marker:      reflect.TypeFor[Equality](),
		constraint:  reflect.TypeFor[EqualityTag](),
		requirement: "comparable or an Equal(T) bool method",
		operations:  []string{"Equal", "NotEqual", "EqualBy"},
		satisfied:   supportsEquality,
	},
	CapBaseEquality: {
		name:        "BaseEquality",
		marker:      reflect.TypeFor[BaseEquality](),
		constraint:  reflect.TypeFor[BaseEqualityTag](),
		requirement: "comparable",
		operations:  []string{"EqualBase"},
		satisfied:   isComparable,
	},
	CapRelational: {
		name:        "Relational",
		marker:      reflect.TypeFor[Relational](),
		constraint:  reflect.TypeFor[RelationalTag](),
		requirement: "cmp.Ordered",
		operations:  []string{"Less", "LessEqual", "Greater", "GreaterEqual", "Min", "Max"},
		satisfied:   isOrdered,
	},
	CapThreeWay: {
		name:        "ThreeWay",
		marker:      reflect.TypeFor[ThreeWay](),
		constraint:  reflect.TypeFor[ThreeWayTag](),
		requirement: "cmp.Ordered or a Compare(T) int method",
		operations:  []string{"Compare", "CompareBy", "Sort"},
		satisfied:   supportsThreeWay,
	},
	CapAddable: {
		name:        "Addable",
		marker:      reflect.TypeFor[Addable](),
		constraint:  reflect.TypeFor[AddableTag](),
		requirement: "integer, float, complex or string",
		operations:  []string{"Add", "AddAssign", "Sum"},
		satisfied:   isSummable,
	},
	CapSubtractable: {
		name:        "Subtractable",
		marker:      reflect.TypeFor[Subtractable](),
		constraint:  reflect.TypeFor[SubtractableTag](),
		requirement: "integer, float or complex",
		operations:  []string{"Sub", "SubAssign"},
		satisfied:   isNumber,
	},
	CapMultipliable: {
		name:        "Multipliable",
		marker:      reflect.TypeFor[Multipliable](),
		constraint:  reflect.TypeFor[MultipliableTag](),
		requirement: "integer, float or complex",
		operations:  []string{"Mul", "MulAssign"},
		satisfied:   isNumber,
	},
	CapDivisible: {
		name:        "Divisible",
		marker:      reflect.TypeFor[Divisible](),
		constraint:  reflect.TypeFor[DivisibleTag](),
		requirement: "integer, float or complex",
		operations:  []string{"Div", "DivAssign"},
		satisfied:   isNumber,
	},
	CapIncrementable: {
		name:        "Incrementable",
		marker:      reflect.TypeFor[Incrementable](),
		constraint:  reflect.TypeFor[IncrementableTag](),
		requirement: "integer or float",
		operations:  []string{"Inc", "Dec"},
		satisfied:   isSteppable,
	},
	CapHashable: {
		name:        "Hashable",
		marker:      reflect.TypeFor[Hashable](),
		constraint:  reflect.TypeFor[HashableTag](),
		requirement: "comparable",
		operations:  []string{"Hash", "KeyOf"},
		satisfied:   isComparable,
	},
	CapPrintable: {
		name:        "Printable",
		marker:      reflect.TypeFor[Printable](),
		constraint:  reflect.TypeFor[PrintableTag](),
		requirement: "any",
		operations:  []string{"String", "Fprint", "fmt verbs"},
		satisfied:   always,
	},
	CapReadable: {
		name:        "Readable",
		marker:      reflect.TypeFor[Readable](),
		constraint:  reflect.TypeFor[ReadableTag](),
		requirement: "a basic kind or *T implementing fmt.Scanner",
		operations:  []string{"Parse", "Fscan"},
		satisfied:   isScannable,
	},
	CapIterable: {
		name:        "Iterable",
		marker:      reflect.TypeFor[Iterable](),
		constraint:  reflect.TypeFor[IterableTag](),
		requirement: "a slice or map",
		operations:  []string{"All", "Values", "Backward", "Len", "Entries", "Keys"},
		satisfied:   isIterable,
	},
	CapIndirect: {
		name:        "Indirect",
		marker:      reflect.TypeFor[Indirect](),
		constraint:  reflect.TypeFor[IndirectTag](),
		requirement: "any",
		operations:  []string{"Deref"},
		satisfied:   always,
	},
}

// bundles maps bundle marker names to the leaf capabilities they embed.
var bundles = map[string]Set{
	"Ordering":   NewSet(CapRelational, CapThreeWay),
	"Arithmetic": NewSet(CapAddable, CapSubtractable, CapMultipliable, CapDivisible),
}

// KnownCapabilities returns every leaf capability in declaration order.
func KnownCapabilities() []Capability {
	caps := make([]Capability, 0, capabilityCount)
	for c := CapEquality; c <= CapIndirect; c++ {
		caps = append(caps, c)
	}
	return caps
}

// BundleNames returns the names of the bundle markers, sorted.
func BundleNames() []string {
	names := make([]string, 0, len(bundles))
	for name := range bundles {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Bundle returns the leaf capabilities of the named bundle marker.
func Bundle(name string) (Set, bool) {
	s, ok := bundles[name]
	return s, ok
}

// ParseCapability resolves a leaf capability by name. Matching ignores case.
func ParseCapability(name string) (Capability, error) {
	for c := CapEquality; c <= CapIndirect; c++ {
		if strings.EqualFold(capabilityTable[c].name, name) {
			return c, nil
		}
	}
	return 0, &InvalidCapabilityError{Value: name}
}

// ParseCapabilities resolves leaf and bundle names into a Set.
func ParseCapabilities(names ...string) (Set, error) {
	var s Set
	for _, name := range names {
		if b, ok := lookupBundle(name); ok {
			s = s.Union(b)
			continue
		}
		c, err := ParseCapability(name)
		if err != nil {
			return 0, err
		}
		s = s.With(c)
	}
	return s, nil
}

func lookupBundle(name string) (Set, bool) {
	for bundle, s := range bundles {
		if strings.EqualFold(bundle, name) {
			return s, true
		}
	}
	return 0, false
}

// String returns the marker name of the capability.
func (c Capability) String() string {
	if !c.valid() {
		return "Capability(" + strconv.Itoa(int(c)) + ")"
	}
	return capabilityTable[c].name
}

// Marker returns the qualified marker type name, e.g. "newtype.Relational".
func (c Capability) Marker() string {
	if !c.valid() {
		return ""
	}
	return "newtype." + capabilityTable[c].name
}

// Requirement describes what the underlying type must support.
func (c Capability) Requirement() string {
	if !c.valid() {
		return ""
	}
	return capabilityTable[c].requirement
}

// Operations lists the functions the capability grants.
func (c Capability) Operations() []string {
	if !c.valid() {
		return nil
	}
	return slices.Clone(capabilityTable[c].operations)
}

// SatisfiedBy reports whether the underlying type t meets the capability's
// requirement.
func (c Capability) SatisfiedBy(t reflect.Type) bool {
	if !c.valid() || t == nil {
		return false
	}
	return capabilityTable[c].satisfied(t)
}

// Validate returns an error if c is not a known capability.
func (c Capability) Validate() error {
	if !c.valid() {
		return &InvalidCapabilityError{Value: c.String()}
	}
	return nil
}

func (c Capability) valid() bool {
	return c >= CapEquality && c <= CapIndirect
}

// markerCapability maps a marker type back to its capability.
func markerCapability(t reflect.Type) (Capability, bool) {
	for c := CapEquality; c <= CapIndirect; c++ {
		if capabilityTable[c].marker == t {
			return c, true
		}
	}
	return 0, false
}

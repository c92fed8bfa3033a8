// SPDX-License-Identifier: MPL-2.0

package newtype

import (
	"errors"
	"reflect"
	"slices"
	"testing"
)

func TestParseCapability(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		value   string
		want    Capability
		wantErr bool
	}{
		{name: "exact name", value: "Relational", want: CapRelational},
		{name: "case insensitive", value: "threeway", want: CapThreeWay},
		{name: "last capability", value: "Indirect", want: CapIndirect},
		{name: "bundle is not a leaf", value: "Ordering", wantErr: true},
		{name: "unknown", value: "ImplicitConversion", wantErr: true},
		{name: "empty", value: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseCapability(tt.value)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidCapability) {
					t.Fatalf("ParseCapability(%q) error = %v, want ErrInvalidCapability", tt.value, err)
				}
				var ice *InvalidCapabilityError
				if !errors.As(err, &ice) || ice.Value != tt.value {
					t.Errorf("error is not *InvalidCapabilityError for %q: %v", tt.value, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseCapability(%q) error = %v", tt.value, err)
			}
			if got != tt.want {
				t.Errorf("ParseCapability(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestParseCapabilities(t *testing.T) {
	t.Parallel()

	got, err := ParseCapabilities("Equality", "ordering", "Arithmetic")
	if err != nil {
		t.Fatalf("ParseCapabilities() error = %v", err)
	}
	want := NewSet(CapEquality, CapRelational, CapThreeWay, CapAddable, CapSubtractable, CapMultipliable, CapDivisible)
	if got != want {
		t.Errorf("ParseCapabilities() = %v, want %v", got, want)
	}

	if _, err := ParseCapabilities("Equality", "Show"); !errors.Is(err, ErrInvalidCapability) {
		t.Errorf("ParseCapabilities(Show) error = %v, want ErrInvalidCapability", err)
	}
}

func TestCapabilityMetadata(t *testing.T) {
	t.Parallel()

	caps := KnownCapabilities()
	if len(caps) != 14 {
		t.Fatalf("KnownCapabilities() returned %d capabilities", len(caps))
	}
	for _, c := range caps {
		if err := c.Validate(); err != nil {
			t.Errorf("%v.Validate() = %v", c, err)
		}
		if c.Requirement() == "" || len(c.Operations()) == 0 {
			t.Errorf("%v has no requirement or operations", c)
		}
		parsed, err := ParseCapability(c.String())
		if err != nil || parsed != c {
			t.Errorf("ParseCapability(%v.String()) = %v, %v", c, parsed, err)
		}
	}

	if got := CapHashable.Marker(); got != "newtype.Hashable" {
		t.Errorf("Marker() = %q", got)
	}

	bad := Capability(99)
	if got := bad.String(); got != "Capability(99)" {
		t.Errorf("String() = %q", got)
	}
	if !errors.Is(bad.Validate(), ErrInvalidCapability) {
		t.Error("Capability(99).Validate() does not wrap ErrInvalidCapability")
	}
	if bad.SatisfiedBy(reflect.TypeFor[int]()) {
		t.Error("invalid capability satisfied")
	}
}

func TestBundles(t *testing.T) {
	t.Parallel()

	if got := BundleNames(); !slices.Equal(got, []string{"Arithmetic", "Ordering"}) {
		t.Errorf("BundleNames() = %v", got)
	}
	ordering, ok := Bundle("Ordering")
	if !ok || ordering != NewSet(CapRelational, CapThreeWay) {
		t.Errorf("Bundle(Ordering) = %v, %v", ordering, ok)
	}
	if _, ok := Bundle("Show"); ok {
		t.Error("Bundle(Show) found")
	}

	// The bundle markers must derive exactly what the bundle table says.
	if got, _ := CapabilitiesOf[Ordering](); got != ordering {
		t.Errorf("CapabilitiesOf[Ordering]() = %v", got)
	}
	arithmetic, _ := Bundle("Arithmetic")
	if got, _ := CapabilitiesOf[Arithmetic](); got != arithmetic {
		t.Errorf("CapabilitiesOf[Arithmetic]() = %v", got)
	}
}

func TestSatisfiedBy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		c    Capability
		t    reflect.Type
		want bool
	}{
		{CapEquality, reflect.TypeFor[int](), true},
		{CapEquality, reflect.TypeFor[[]int](), false},
		{CapEquality, reflect.TypeFor[point](), true},
		{CapBaseEquality, reflect.TypeFor[point](), false},
		{CapRelational, reflect.TypeFor[string](), true},
		{CapRelational, reflect.TypeFor[complex128](), false},
		{CapThreeWay, reflect.TypeFor[point](), true},
		{CapThreeWay, reflect.TypeFor[bool](), false},
		{CapAddable, reflect.TypeFor[string](), true},
		{CapSubtractable, reflect.TypeFor[string](), false},
		{CapMultipliable, reflect.TypeFor[complex64](), true},
		{CapDivisible, reflect.TypeFor[uint8](), true},
		{CapIncrementable, reflect.TypeFor[float32](), true},
		{CapIncrementable, reflect.TypeFor[complex64](), false},
		{CapHashable, reflect.TypeFor[[2]string](), true},
		{CapHashable, reflect.TypeFor[map[string]int](), false},
		{CapPrintable, reflect.TypeFor[func()](), true},
		{CapReadable, reflect.TypeFor[int64](), true},
		{CapReadable, reflect.TypeFor[[]byte](), true},
		{CapReadable, reflect.TypeFor[struct{}](), false},
		{CapIterable, reflect.TypeFor[[]int](), true},
		{CapIterable, reflect.TypeFor[map[int]int](), true},
		{CapIterable, reflect.TypeFor[string](), false},
		{CapIndirect, reflect.TypeFor[chan int](), true},
	}

	for _, tt := range tests {
		if got := tt.c.SatisfiedBy(tt.t); got != tt.want {
			t.Errorf("%v.SatisfiedBy(%v) = %v, want %v", tt.c, tt.t, got, tt.want)
		}
	}
}

func TestSet(t *testing.T) {
	t.Parallel()

	eqRel := NewSet(CapEquality, CapRelational)
	all := NewSet(KnownCapabilities()...)

	if got := eqRel.String(); got != "{Equality, Relational}" {
		t.Errorf("String() = %q", got)
	}
	if got := Set(0).String(); got != "{}" {
		t.Errorf("empty String() = %q", got)
	}
	if eqRel.Len() != 2 || all.Len() != 14 {
		t.Errorf("Len() = %d, %d", eqRel.Len(), all.Len())
	}
	if !eqRel.Has(CapEquality) || eqRel.Has(CapThreeWay) || eqRel.Has(Capability(0)) {
		t.Error("Has() mismatch")
	}
	if !eqRel.HasAll(CapEquality, CapRelational) || eqRel.HasAll(CapEquality, CapAddable) {
		t.Error("HasAll() mismatch")
	}
	if !eqRel.SubsetOf(all) || !eqRel.SubsetOf(eqRel) || all.SubsetOf(eqRel) {
		t.Error("SubsetOf() mismatch")
	}
	if !eqRel.ProperSubsetOf(all) || eqRel.ProperSubsetOf(eqRel) {
		t.Error("ProperSubsetOf() mismatch")
	}
	if got := eqRel.Union(NewSet(CapAddable)); got.Len() != 3 || !got.Has(CapAddable) {
		t.Errorf("Union() = %v", got)
	}
	if got := eqRel.Intersect(NewSet(CapRelational, CapHashable)); got != NewSet(CapRelational) {
		t.Errorf("Intersect() = %v", got)
	}
	if got := eqRel.Without(CapEquality); got != NewSet(CapRelational) {
		t.Errorf("Without() = %v", got)
	}
	if NewSet(Capability(0), Capability(99)) != 0 || !Set(0).IsEmpty() {
		t.Error("invalid capabilities were added")
	}
	if got := all.Slice(); !slices.Equal(got, KnownCapabilities()) {
		t.Errorf("Slice() = %v", got)
	}
}

func TestSetCheck(t *testing.T) {
	t.Parallel()

	s := NewSet(CapEquality, CapRelational, CapAddable)
	if err := s.Check(reflect.TypeFor[int32]()); err != nil {
		t.Errorf("Check(int32) = %v", err)
	}

	err := s.Check(reflect.TypeFor[[]int]())
	if !errors.Is(err, ErrMissingRequirement) {
		t.Fatalf("Check([]int) error = %v, want ErrMissingRequirement", err)
	}
	if got := len(flatten(err)); got != 3 {
		t.Errorf("Check([]int) returned %d errors, want 3", got)
	}
	var mre *MissingRequirementError
	if !errors.As(err, &mre) || mre.Capability != CapEquality || mre.Underlying != "[]int" {
		t.Errorf("first error = %+v", mre)
	}
}

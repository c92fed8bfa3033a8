// SPDX-License-Identifier: MPL-2.0

package decl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invowk/newtype/pkg/newtype"
)

func TestTypeName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value   TypeName
		wantErr bool
	}{
		{"Meters", false},
		{"meters", false},
		{"_hidden", false},
		{"Über", false},
		{"", true},
		{"_", true},
		{"1x", true},
		{"a-b", true},
		{"type", true},
	}
	for _, tt := range tests {
		t.Run(string(tt.value), func(t *testing.T) {
			t.Parallel()

			err := tt.value.Validate()
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidTypeName)
				return
			}
			require.NoError(t, err)
		})
	}

	assert.True(t, TypeName("Meters").IsExported())
	assert.False(t, TypeName("meters").IsExported())
}

func TestPackageName(t *testing.T) {
	t.Parallel()

	require.NoError(t, PackageName("units").Validate())
	require.ErrorIs(t, PackageName("").Validate(), ErrInvalidPackageName)
	require.ErrorIs(t, PackageName("func").Validate(), ErrInvalidPackageName)
}

func TestImportPath(t *testing.T) {
	t.Parallel()

	for _, p := range []ImportPath{"time", "net/netip", "github.com/google/uuid"} {
		require.NoError(t, p.Validate(), p)
	}
	for _, p := range []ImportPath{"", "/abs", "a//b", "with space"} {
		require.ErrorIs(t, p.Validate(), ErrInvalidImportPath, p)
	}
}

func TestUnderlying(t *testing.T) {
	t.Parallel()

	valid := []Underlying{
		"int32", "string", "[]byte", "[4]float64", "map[string]int",
		"*int", "chan<- int", "time.Duration", "func(int) error",
		"struct{ X, Y int }", "interface{ M() }", "atomic.Pointer[int]",
		"(int)",
	}
	for _, u := range valid {
		require.NoError(t, u.Validate(), u)
	}

	invalid := []Underlying{"", "1 + 2", "f(x)", "[...]int", "a.b.c", "int]"}
	for _, u := range invalid {
		require.ErrorIs(t, u.Validate(), ErrInvalidUnderlying, u)
	}
}

func TestCapabilityName(t *testing.T) {
	t.Parallel()

	s, err := CapabilityName("Ordering").Set()
	require.NoError(t, err)
	assert.Equal(t, newtype.NewSet(newtype.CapRelational, newtype.CapThreeWay), s)

	s, err = CapabilityName("hashable").Set()
	require.NoError(t, err)
	assert.Equal(t, newtype.NewSet(newtype.CapHashable), s)

	require.ErrorIs(t, CapabilityName("Sortable").Validate(), newtype.ErrInvalidCapability)
}

// SPDX-License-Identifier: MPL-2.0

package newtype

import (
	"cmp"
	"slices"
)

// Less reports whether a < b.
func Less[T cmp.Ordered, Tag RelationalTag](a, b Type[T, Tag]) bool {
	return a.value < b.value
}

// LessEqual reports whether a <= b.
func LessEqual[T cmp.Ordered, Tag RelationalTag](a, b Type[T, Tag]) bool {
	return a.value <= b.value
}

// Greater reports whether a > b.
func Greater[T cmp.Ordered, Tag RelationalTag](a, b Type[T, Tag]) bool {
	return a.value > b.value
}

// GreaterEqual reports whether a >= b.
func GreaterEqual[T cmp.Ordered, Tag RelationalTag](a, b Type[T, Tag]) bool {
	return a.value >= b.value
}

// Min returns the smaller of a and b, a when they are equal.
func Min[T cmp.Ordered, Tag RelationalTag](a, b Type[T, Tag]) Type[T, Tag] {
	if b.value < a.value {
		return b
	}
	return a
}

// Max returns the larger of a and b, a when they are equal.
func Max[T cmp.Ordered, Tag RelationalTag](a, b Type[T, Tag]) Type[T, Tag] {
	if b.value > a.value {
		return b
	}
	return a
}

// Compare returns -1, 0 or +1 following cmp.Compare, so NaN sorts before
// every other float.
func Compare[T cmp.Ordered, Tag ThreeWayTag](a, b Type[T, Tag]) int {
	return cmp.Compare(a.value, b.value)
}

// CompareBy is Compare for underlying types with a Compare method.
func CompareBy[T Comparer[T], Tag ThreeWayTag](a, b Type[T, Tag]) int {
	return a.value.Compare(b.value)
}

// Sort sorts s in ascending order.
func Sort[T cmp.Ordered, Tag ThreeWayTag](s []Type[T, Tag]) {
	slices.SortFunc(s, Compare[T, Tag])
}

// SPDX-License-Identifier: MPL-2.0

package newtype

// Equal reports whether a and b wrap equal values.
func Equal[T comparable, Tag EqualityTag](a, b Type[T, Tag]) bool {
	return a.value == b.value
}

// NotEqual reports whether a and b wrap different values.
func NotEqual[T comparable, Tag EqualityTag](a, b Type[T, Tag]) bool {
	return a.value != b.value
}

// EqualBy is Equal for underlying types that define an Equal method
// instead of supporting ==.
func EqualBy[T Equaler[T], Tag EqualityTag](a, b Type[T, Tag]) bool {
	return a.value.Equal(b.value)
}

// EqualBase compares n against a bare value of its underlying type.
func EqualBase[T comparable, Tag BaseEqualityTag](n Type[T, Tag], v T) bool {
	return n.value == v
}

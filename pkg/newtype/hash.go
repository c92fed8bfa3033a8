// SPDX-License-Identifier: MPL-2.0

package newtype

import (
	"fmt"
	"hash/maphash"
)

// Hash returns the hash of the wrapped value under seed. It equals
// maphash.Comparable(seed, n.Unwrap()); the tag does not take part.
func Hash[T comparable, Tag HashableTag](seed maphash.Seed, n Type[T, Tag]) uint64 {
	return maphash.Comparable(seed, n.value)
}

// Key is the comparable form of a Hashable newtype, usable as a map key
// or with ==. Keys of different tags are distinct types.
type Key[T comparable, Tag HashableTag] struct {
	value T
}

// KeyOf returns the map key for n.
func KeyOf[T comparable, Tag HashableTag](n Type[T, Tag]) Key[T, Tag] {
	return Key[T, Tag]{value: n.value}
}

// Newtype converts the key back into the newtype it was made from.
func (k Key[T, Tag]) Newtype() Type[T, Tag] {
	return Type[T, Tag]{value: k.value}
}

// Format renders the key exactly like its newtype.
func (k Key[T, Tag]) Format(f fmt.State, verb rune) {
	k.Newtype().Format(f, verb)
}

// SPDX-License-Identifier: MPL-2.0

package newtype

import (
	"iter"
	"maps"
	"slices"
)

// All iterates the index/element pairs of a slice newtype.
func All[E any, S ~[]E, Tag IterableTag](n Type[S, Tag]) iter.Seq2[int, E] {
	return slices.All(n.value)
}

// Values iterates the elements of a slice newtype.
func Values[E any, S ~[]E, Tag IterableTag](n Type[S, Tag]) iter.Seq[E] {
	return slices.Values(n.value)
}

// Backward iterates the index/element pairs of a slice newtype in reverse.
func Backward[E any, S ~[]E, Tag IterableTag](n Type[S, Tag]) iter.Seq2[int, E] {
	return slices.Backward(n.value)
}

// Len returns the number of elements of a slice newtype.
func Len[E any, S ~[]E, Tag IterableTag](n Type[S, Tag]) int {
	return len(n.value)
}

// Entries iterates the key/value pairs of a map newtype in unspecified
// order.
func Entries[K comparable, V any, M ~map[K]V, Tag IterableTag](n Type[M, Tag]) iter.Seq2[K, V] {
	return maps.All(n.value)
}

// Keys iterates the keys of a map newtype in unspecified order.
func Keys[K comparable, V any, M ~map[K]V, Tag IterableTag](n Type[M, Tag]) iter.Seq[K] {
	return maps.Keys(n.value)
}

// MapLen returns the number of entries of a map newtype.
func MapLen[K comparable, V any, M ~map[K]V, Tag IterableTag](n Type[M, Tag]) int {
	return len(n.value)
}

// SPDX-License-Identifier: MPL-2.0

package newtype

import "cmp"

// Witness types. Declaring a variable of one of these types checks, at the
// declaration, that T meets the capability's requirement and that Tag
// derives it:
//
//	var _ newtype.AssertRelational[int32, metersTag]
//
// All witnesses are zero-size.
type (
	AssertEquality[T comparable, Tag EqualityTag]                       struct{}
	AssertEqualityBy[T Equaler[T], Tag EqualityTag]                     struct{}
	AssertBaseEquality[T comparable, Tag BaseEqualityTag]               struct{}
	AssertRelational[T cmp.Ordered, Tag RelationalTag]                  struct{}
	AssertThreeWay[T cmp.Ordered, Tag ThreeWayTag]                      struct{}
	AssertThreeWayBy[T Comparer[T], Tag ThreeWayTag]                    struct{}
	AssertAddable[T Summable, Tag AddableTag]                           struct{}
	AssertSubtractable[T Number, Tag SubtractableTag]                   struct{}
	AssertMultipliable[T Number, Tag MultipliableTag]                   struct{}
	AssertDivisible[T Number, Tag DivisibleTag]                         struct{}
	AssertIncrementable[T Steppable, Tag IncrementableTag]              struct{}
	AssertHashable[T comparable, Tag HashableTag]                       struct{}
	AssertPrintable[T any, Tag PrintableTag]                            struct{}
	AssertReadable[T any, Tag ReadableTag]                              struct{}
	AssertIterable[E any, S ~[]E, Tag IterableTag]                      struct{}
	AssertIterableMap[K comparable, V any, M ~map[K]V, Tag IterableTag] struct{}
	AssertIndirect[T any, Tag IndirectTag]                              struct{}
)

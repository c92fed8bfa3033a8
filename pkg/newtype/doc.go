// SPDX-License-Identifier: MPL-2.0

// Package newtype provides strong type aliases: distinct nominal types that
// wrap a single value of an underlying type and forward only the operations
// the declaring code asked for.
//
// A newtype is an instantiation of Type[T, Tag]. T is the underlying value
// type; Tag is a marker type, usually an unexported empty struct, that makes
// the newtype distinct from every other newtype over T and lists its
// capabilities by embedding capability markers:
//
//	type metersTag struct {
//		newtype.Equality
//		newtype.Ordering
//		newtype.Addable
//	}
//
//	type Meters = newtype.Type[int32, metersTag]
//
//	var (
//		_ newtype.AssertEquality[int32, metersTag]
//		_ newtype.AssertRelational[int32, metersTag]
//		_ newtype.AssertAddable[int32, metersTag]
//	)
//
// Operations are package-level generic functions (Equal, Less, Add, Hash,
// String, ...). Their type parameter constraints require both the
// underlying type to support the operation and the tag to embed the
// marker, so an operation that was not requested fails to compile:
//
//	a, b := newtype.New[int32, metersTag](3), newtype.New[int32, metersTag](4)
//	newtype.Less(a, b)           // true
//	newtype.Add(a, b).Unwrap()   // 7
//	newtype.Mul(a, b)            // compile error: metersTag does not satisfy
//	                             // newtype.MultipliableTag (missing method multipliable)
//
// The Assert* witness types carry the same constraints and can be declared
// next to the alias, which moves the compile error from the first use to the
// declaration. Define and MustDefine perform the same checks with reflection
// for code that wants a fail-fast runtime guard or introspection.
//
// Type values cannot be compared with == and cannot be used as map keys;
// equality is the Equality capability and map keys are the Hashable
// capability (see KeyOf).
package newtype

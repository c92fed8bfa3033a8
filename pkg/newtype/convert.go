// SPDX-License-Identifier: MPL-2.0

package newtype

// Convert maps n into a newtype of another tag through f. It is the only
// way to move a value between tags; ToTag has to be named at the call:
//
//	feet := newtype.Convert[feetTag](meters, func(m int32) float64 { return float64(m) * 3.28084 })
func Convert[ToTag any, T any, Tag any, U any](n Type[T, Tag], f func(T) U) Type[U, ToTag] {
	return Type[U, ToTag]{value: f(n.value)}
}

// Retag rewraps the value of n, unchanged, under ToTag.
func Retag[ToTag any, T any, Tag any](n Type[T, Tag]) Type[T, ToTag] {
	return Type[T, ToTag]{value: n.value}
}

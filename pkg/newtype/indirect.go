// SPDX-License-Identifier: MPL-2.0

package newtype

// Deref returns a pointer to the value wrapped by *n. Writes through the
// pointer modify *n.
func Deref[T any, Tag IndirectTag](n *Type[T, Tag]) *T {
	return &n.value
}

// SPDX-License-Identifier: MPL-2.0

package newtype

import (
	"golang.org/x/exp/constraints"
)

type (
	// Number is satisfied by every integer, float and complex type.
	Number interface {
		constraints.Integer | constraints.Float | constraints.Complex
	}

	// Summable is satisfied by the types that support the + operator.
	Summable interface {
		Number | ~string
	}

	// Steppable is satisfied by the types that support ++ and --.
	Steppable interface {
		constraints.Integer | constraints.Float
	}

	// Equaler is satisfied by types that define their own equality.
	Equaler[T any] interface {
		Equal(T) bool
	}

	// Comparer is satisfied by types that define their own three-way
	// comparison, returning a negative number, zero or a positive number.
	Comparer[T any] interface {
		Compare(T) int
	}
)

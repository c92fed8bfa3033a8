// SPDX-License-Identifier: MPL-2.0

package newtype

// Add returns a + b.
func Add[T Summable, Tag AddableTag](a, b Type[T, Tag]) Type[T, Tag] {
	return Type[T, Tag]{value: a.value + b.value}
}

// AddAssign sets *dst to *dst + v and returns the new value.
func AddAssign[T Summable, Tag AddableTag](dst *Type[T, Tag], v Type[T, Tag]) Type[T, Tag] {
	dst.value += v.value
	return *dst
}

// Sum adds values in order. The sum of no values is the zero newtype.
func Sum[T Summable, Tag AddableTag](values ...Type[T, Tag]) Type[T, Tag] {
	var total T
	for _, v := range values {
		total += v.value
	}
	return Type[T, Tag]{value: total}
}

// Sub returns a - b.
func Sub[T Number, Tag SubtractableTag](a, b Type[T, Tag]) Type[T, Tag] {
	return Type[T, Tag]{value: a.value - b.value}
}

// SubAssign sets *dst to *dst - v and returns the new value.
func SubAssign[T Number, Tag SubtractableTag](dst *Type[T, Tag], v Type[T, Tag]) Type[T, Tag] {
	dst.value -= v.value
	return *dst
}

// Mul returns a * b.
func Mul[T Number, Tag MultipliableTag](a, b Type[T, Tag]) Type[T, Tag] {
	return Type[T, Tag]{value: a.value * b.value}
}

// MulAssign sets *dst to *dst * v and returns the new value.
func MulAssign[T Number, Tag MultipliableTag](dst *Type[T, Tag], v Type[T, Tag]) Type[T, Tag] {
	dst.value *= v.value
	return *dst
}

// Div returns a / b. Integer division by zero panics as it does for T.
func Div[T Number, Tag DivisibleTag](a, b Type[T, Tag]) Type[T, Tag] {
	return Type[T, Tag]{value: a.value / b.value}
}

// DivAssign sets *dst to *dst / v and returns the new value.
func DivAssign[T Number, Tag DivisibleTag](dst *Type[T, Tag], v Type[T, Tag]) Type[T, Tag] {
	dst.value /= v.value
	return *dst
}

// Inc increments *n and returns the new value.
func Inc[T Steppable, Tag IncrementableTag](n *Type[T, Tag]) Type[T, Tag] {
	n.value++
	return *n
}

// Dec decrements *n and returns the new value.
func Dec[T Steppable, Tag IncrementableTag](n *Type[T, Tag]) Type[T, Tag] {
	n.value--
	return *n
}

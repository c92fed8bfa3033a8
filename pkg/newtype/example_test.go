// SPDX-License-Identifier: MPL-2.0

package newtype_test

import (
	"fmt"

	"github.com/invowk/newtype/pkg/newtype"
)

type distanceTag struct {
	newtype.Equality
	newtype.Ordering
	newtype.Addable
	newtype.Printable
}

// Distance is a length in meters.
type Distance = newtype.Type[int32, distanceTag]

var (
	_ newtype.AssertEquality[int32, distanceTag]
	_ newtype.AssertRelational[int32, distanceTag]
	_ newtype.AssertAddable[int32, distanceTag]
)

func Example() {
	a := newtype.New[int32, distanceTag](3)
	b := newtype.New[int32, distanceTag](4)

	fmt.Println(newtype.Less(a, b))
	fmt.Println(newtype.Add(a, b))
	fmt.Println(newtype.Equal(a, a), newtype.NotEqual(a, b))
	// Output:
	// true
	// 7
	// true true
}

type secretTag struct{ newtype.Equality }

func ExampleType_Format() {
	token := newtype.New[string, secretTag]("hunter2")
	fmt.Printf("token=%v\n", token)
	// Output: token=<secretTag>
}

func ExampleDefine() {
	type listTag struct{ newtype.Relational }

	_, err := newtype.Define[[]string, listTag]()
	fmt.Println(err)
	// Output: define listTag([]string) {Relational}: capability Relational requires cmp.Ordered, but []string does not provide it
}

func ExampleKeyOf() {
	type userTag struct {
		newtype.Hashable
		newtype.Printable
	}

	visits := map[newtype.Key[string, userTag]]int{}
	for _, name := range []string{"ann", "bob", "ann"} {
		visits[newtype.KeyOf(newtype.New[string, userTag](name))]++
	}
	fmt.Println(visits[newtype.KeyOf(newtype.New[string, userTag]("ann"))])
	// Output: 2
}

func ExampleConvert() {
	type feetTag struct{ newtype.Printable }

	meters := newtype.New[int32, distanceTag](10)
	feet := newtype.Convert[feetTag](meters, func(m int32) float64 { return float64(m) * 3.28084 })
	fmt.Printf("%.1f\n", feet)
	// Output: 32.8
}

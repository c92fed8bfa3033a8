package unsupported

import "github.com/invowk/newtype/pkg/newtype"

type labelTag struct {
	newtype.Ordering
	newtype.Hashable
	newtype.Printable
}

type Label = newtype.Type[[]byte, labelTag] // want `newtype Label: capability Relational requires cmp\.Ordered, but \[\]byte does not provide it` `newtype Label: capability ThreeWay requires` `newtype Label: capability Hashable requires comparable, but \[\]byte does not provide it`

// LabelDef is covered by the Label declaration.
var LabelDef = newtype.MustDefine[[]byte, labelTag]()

type metersTag struct {
	newtype.Equality
	newtype.Ordering
	newtype.Arithmetic
	newtype.Incrementable
	newtype.Readable
}

type Meters = newtype.Type[int32, metersTag]

type nameTag struct {
	newtype.Equality
	newtype.Arithmetic
}

// Name is a defined type over the newtype.
type Name newtype.Type[string, nameTag] // want `newtype Name: capability Subtractable requires integer, float or complex, but string does not provide it` `capability Multipliable` `capability Divisible`

type iterTag struct {
	newtype.Iterable
}

var _ = newtype.MustDefine[float64, iterTag]() // want `newtype\.MustDefine\[float64, iterTag\]: capability Iterable requires a slice or map, but float64 does not provide it`

var _, _ = newtype.Define[map[string]int, iterTag]()

// Point supports Equality through its method.
type Point struct {
	Coords []int
}

func (p Point) Equal(o Point) bool { return len(p.Coords) == len(o.Coords) }

type pointTag struct {
	newtype.Equality
	newtype.Indirect
}

type Position = newtype.Type[Point, pointTag]

type scanTag struct {
	newtype.Readable
}

type Coords = newtype.Type[[]int, scanTag] // want `capability Readable requires a basic kind or \*T implementing fmt\.Scanner, but \[\]int does not provide it`

// Generic instances are left to the compiler.
func Generic[T any]() newtype.Def[T, iterTag] {
	return newtype.MustDefine[T, iterTag]()
}

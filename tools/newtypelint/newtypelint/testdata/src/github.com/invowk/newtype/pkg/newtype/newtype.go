// Package newtype is a minimal copy of the runtime package's exported
// surface for analyzer tests.
package newtype

type (
	Equality      struct{}
	BaseEquality  struct{}
	Relational    struct{}
	ThreeWay      struct{}
	Addable       struct{}
	Subtractable  struct{}
	Multipliable  struct{}
	Divisible     struct{}
	Incrementable struct{}
	Hashable      struct{}
	Printable     struct{}
	Readable      struct{}
	Iterable      struct{}
	Indirect      struct{}

	Ordering struct {
		Relational
		ThreeWay
	}

	Arithmetic struct {
		Addable
		Subtractable
		Multipliable
		Divisible
	}
)

func (Equality) equality()           {}
func (BaseEquality) baseEquality()   {}
func (Relational) relational()       {}
func (ThreeWay) threeWay()           {}
func (Addable) addable()             {}
func (Subtractable) subtractable()   {}
func (Multipliable) multipliable()   {}
func (Divisible) divisible()         {}
func (Incrementable) incrementable() {}
func (Hashable) hashable()           {}
func (Printable) printable()         {}
func (Readable) readable()           {}
func (Iterable) iterable()           {}
func (Indirect) indirect()           {}

type Type[T any, Tag any] struct {
	_     [0]func()
	value T
}

func New[T any, Tag any](value T) Type[T, Tag] { return Type[T, Tag]{value: value} }

func (n Type[T, Tag]) Unwrap() T { return n.value }

type Def[T any, Tag any] struct{}

func Define[T any, Tag any]() (Def[T, Tag], error) { return Def[T, Tag]{}, nil }

func MustDefine[T any, Tag any]() Def[T, Tag] { return Def[T, Tag]{} }

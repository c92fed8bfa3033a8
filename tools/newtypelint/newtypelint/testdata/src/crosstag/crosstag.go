package crosstag

import "github.com/invowk/newtype/pkg/newtype"

type metersTag struct{ newtype.Equality }

type feetTag struct{ newtype.Equality }

type (
	Meters = newtype.Type[int32, metersTag]
	Feet   = newtype.Type[int32, feetTag]
)

func Same(a, b Meters) bool {
	return a.Unwrap() == b.Unwrap()
}

func Mixed(m Meters, f Feet) bool {
	return m.Unwrap() == f.Unwrap() // want `m\.Unwrap\(\) == f\.Unwrap\(\) combines newtypes with different tags \(metersTag and feetTag\); convert explicitly with newtype\.Convert`
}

func Sum(m Meters, f *Feet) int32 {
	return (m.Unwrap()) + f.Unwrap() // want `combines newtypes with different tags \(metersTag and feetTag\)`
}

func Bare(m Meters, v int32) bool {
	return m.Unwrap() < v
}

type converter struct{}

func (converter) Less(f Feet, m Meters) bool {
	return f.Unwrap() < m.Unwrap() // want `\(feetTag and metersTag\)`
}

func Ignored(m Meters, f Feet) bool {
	//newtypelint:ignore legacy data mixes units
	return m.Unwrap() == f.Unwrap()
}

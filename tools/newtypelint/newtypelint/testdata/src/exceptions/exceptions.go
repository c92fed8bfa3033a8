package exceptions

import "github.com/invowk/newtype/pkg/newtype"

type labelTag struct {
	newtype.Relational
}

// Label is excepted by name.
type Label = newtype.Type[[]byte, labelTag]

type blobTag struct {
	newtype.Relational
	newtype.Hashable
}

// Blob has no exception.
type Blob = newtype.Type[[]byte, blobTag] // want `capability Relational` `capability Hashable`

type metersTag struct{ newtype.Equality }

type feetTag struct{ newtype.Equality }

// Cross-tag findings are disabled by the config.
func Mixed(m newtype.Type[int32, metersTag], f newtype.Type[int32, feetTag]) bool {
	return m.Unwrap() == f.Unwrap()
}

package ambiguous

import "github.com/invowk/newtype/pkg/newtype"

type extra struct {
	newtype.Relational
}

type sortTag struct { // want `tag sortTag embeds newtype\.Relational more than once at the same depth, so it does not derive Relational`
	newtype.Ordering
	extra
}

// The direct embedding is shallower and wins.
type fineTag struct {
	newtype.Ordering
	newtype.Relational
}

type left struct{ newtype.Arithmetic }
type right struct{ newtype.Arithmetic }

type mathTag struct { // want `newtype\.Addable` `newtype\.Subtractable` `newtype\.Multipliable` `newtype\.Divisible`
	left
	right
}

type ignoredTag struct { //newtypelint:ignore
	newtype.Ordering
	extra
}

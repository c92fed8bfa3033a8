// SPDX-License-Identifier: MPL-2.0

package newtype

import (
	"fmt"
	"io"
	"strings"
)

// String returns the textual form of the wrapped value, as fmt.Sprint
// renders it.
func String[T any, Tag PrintableTag](n Type[T, Tag]) string {
	return fmt.Sprint(n.value)
}

// Fprint writes the textual form of the wrapped value to w.
func Fprint[T any, Tag PrintableTag](w io.Writer, n Type[T, Tag]) (int, error) {
	return fmt.Fprint(w, n.value)
}

// Parse reads one value of T from s using fmt scanning rules. Surrounding
// space is allowed; anything else after the value is an error.
func Parse[T any, Tag ReadableTag](s string) (Type[T, Tag], error) {
	var n Type[T, Tag]
	r := strings.NewReader(s)
	if _, err := fmt.Fscan(r, &n.value); err != nil {
		return Type[T, Tag]{}, fmt.Errorf("parse %s: %w", tagName[Tag](), err)
	}
	if rest := strings.TrimSpace(s[len(s)-r.Len():]); rest != "" {
		return Type[T, Tag]{}, fmt.Errorf("parse %s: %w: %q", tagName[Tag](), ErrTrailingInput, rest)
	}
	return n, nil
}

// Fscan reads one value from r into *dst. On failure *dst is unchanged.
func Fscan[T any, Tag ReadableTag](r io.Reader, dst *Type[T, Tag]) error {
	var v T
	if _, err := fmt.Fscan(r, &v); err != nil {
		return fmt.Errorf("scan %s: %w", tagName[Tag](), err)
	}
	dst.value = v
	return nil
}

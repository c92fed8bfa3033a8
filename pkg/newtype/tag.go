// SPDX-License-Identifier: MPL-2.0

package newtype

import (
	"errors"
	"reflect"
	"slices"
)

// CapabilitiesOf returns the capabilities Tag derives. Markers that Go
// cannot promote because they are embedded ambiguously are reported as
// *AmbiguousCapabilityError and left out of the Set.
func CapabilitiesOf[Tag any]() (Set, error) {
	return inspectTag(reflect.TypeFor[Tag]())
}

func inspectTag(tag reflect.Type) (Set, error) {
	var s Set
	for _, c := range KnownCapabilities() {
		if tag.Implements(capabilityTable[c].constraint) {
			s = s.With(c)
		}
	}

	var errs []error
	for _, amb := range ambiguousMarkers(tag) {
		errs = append(errs, amb)
	}
	return s, errors.Join(errs...)
}

// embedding is one embedded type reached at the current depth, with every
// path that reaches it.
type embedding struct {
	typ   reflect.Type
	paths []string
}

// ambiguousMarkers walks the embedded fields of tag breadth-first, one
// depth at a time, following Go's selector rules: a marker is resolved at
// the shallowest depth where it occurs and is ambiguous if it is reached
// through more than one path at that depth.
func ambiguousMarkers(tag reflect.Type) []*AmbiguousCapabilityError {
	var found []*AmbiguousCapabilityError
	resolved := make(map[reflect.Type]bool)
	seen := make(map[reflect.Type]bool)

	current := []embedding{{typ: tag, paths: []string{""}}}
	for len(current) > 0 {
		current = consolidate(current, seen)

		var next []embedding
		markers := make(map[reflect.Type][]string)
		var order []reflect.Type

		for _, e := range current {
			if e.typ.Kind() != reflect.Struct {
				continue
			}
			for i := range e.typ.NumField() {
				f := e.typ.Field(i)
				if !f.Anonymous {
					continue
				}
				paths := make([]string, 0, len(e.paths))
				for _, p := range e.paths {
					if p == "" {
						paths = append(paths, f.Name)
					} else {
						paths = append(paths, p+"."+f.Name)
					}
				}
				ft := f.Type
				if ft.Kind() == reflect.Pointer {
					ft = ft.Elem()
				}
				if _, ok := markerCapability(ft); ok && !resolved[ft] {
					if _, dup := markers[ft]; !dup {
						order = append(order, ft)
					}
					markers[ft] = append(markers[ft], paths...)
				}
				next = append(next, embedding{typ: ft, paths: paths})
			}
		}

		for _, mt := range order {
			resolved[mt] = true
			paths := markers[mt]
			if len(paths) < 2 {
				continue
			}
			c, _ := markerCapability(mt)
			found = append(found, &AmbiguousCapabilityError{
				Capability: c,
				Tag:        typeString(tag),
				Paths:      paths,
			})
		}
		current = next
	}

	slices.SortFunc(found, func(a, b *AmbiguousCapabilityError) int {
		return int(a.Capability) - int(b.Capability)
	})
	return found
}

// consolidate merges entries of the same type found at one depth and drops
// types already visited at a shallower depth.
func consolidate(entries []embedding, seen map[reflect.Type]bool) []embedding {
	out := make([]embedding, 0, len(entries))
	index := make(map[reflect.Type]int)
	for _, e := range entries {
		if e.typ.Kind() == reflect.Pointer {
			e.typ = e.typ.Elem()
		}
		if seen[e.typ] {
			continue
		}
		if i, ok := index[e.typ]; ok {
			out[i].paths = append(out[i].paths, e.paths...)
			continue
		}
		index[e.typ] = len(out)
		out = append(out, e)
	}
	for _, e := range out {
		seen[e.typ] = true
	}
	return out
}

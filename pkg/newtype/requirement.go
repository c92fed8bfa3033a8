// SPDX-License-Identifier: MPL-2.0

package newtype

import (
	"fmt"
	"reflect"
)

var (
	boolType    = reflect.TypeFor[bool]()
	intType     = reflect.TypeFor[int]()
	scannerType = reflect.TypeFor[fmt.Scanner]()
)

func always(reflect.Type) bool { return true }

func isComparable(t reflect.Type) bool { return t.Comparable() }

func isInteger(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	default:
		return false
	}
}

func isFloat(t reflect.Type) bool {
	k := t.Kind()
	return k == reflect.Float32 || k == reflect.Float64
}

func isComplex(t reflect.Type) bool {
	k := t.Kind()
	return k == reflect.Complex64 || k == reflect.Complex128
}

func isString(t reflect.Type) bool { return t.Kind() == reflect.String }

func isNumber(t reflect.Type) bool { return isInteger(t) || isFloat(t) || isComplex(t) }

func isSummable(t reflect.Type) bool { return isNumber(t) || isString(t) }

func isSteppable(t reflect.Type) bool { return isInteger(t) || isFloat(t) }

func isOrdered(t reflect.Type) bool { return isInteger(t) || isFloat(t) || isString(t) }

func isIterable(t reflect.Type) bool {
	k := t.Kind()
	return k == reflect.Slice || k == reflect.Map
}

func supportsEquality(t reflect.Type) bool {
	return t.Comparable() || hasMethod(t, "Equal", boolType)
}

func supportsThreeWay(t reflect.Type) bool {
	return isOrdered(t) || hasMethod(t, "Compare", intType)
}

// isScannable mirrors what fmt.Sscan accepts: basic kinds, byte slices and
// types whose pointer implements fmt.Scanner.
func isScannable(t reflect.Type) bool {
	if reflect.PointerTo(t).Implements(scannerType) {
		return true
	}
	switch {
	case t.Kind() == reflect.Bool, isNumber(t), isString(t):
		return true
	case t.Kind() == reflect.Slice && t.Elem().Kind() == reflect.Uint8:
		return true
	default:
		return false
	}
}

// hasMethod reports whether t has a method name(t) out.
func hasMethod(t reflect.Type, name string, out reflect.Type) bool {
	m, ok := t.MethodByName(name)
	if !ok {
		return false
	}
	mt := m.Type
	// Interface method types carry no receiver.
	first := 1
	if t.Kind() == reflect.Interface {
		first = 0
	}
	return mt.NumIn() == first+1 && mt.In(first) == t &&
		mt.NumOut() == 1 && mt.Out(0) == out
}

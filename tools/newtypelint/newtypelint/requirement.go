// SPDX-License-Identifier: MPL-2.0

package newtypelint

import "go/types"

// capability describes one leaf capability of the runtime package: the
// unexported method its marker contributes and what the underlying type
// must support.
type capability struct {
	name        string
	method      string
	requirement string
	satisfied   func(types.Type) bool
}

// capabilities lists the leaf capabilities in declaration order.
var capabilities = []capability{
	{"Equality", "equality", "comparable or an Equal(T) bool method", supportsEquality},
	{"BaseEquality", "baseEquality", "comparable", types.Comparable},
	{"Relational", "relational", "cmp.Ordered", isOrdered},
	{"ThreeWay", "threeWay", "cmp.Ordered or a Compare(T) int method", supportsThreeWay},
	{"Addable", "addable", "integer, float, complex or string", isSummable},
	{"Subtractable", "subtractable", "integer, float or complex", isNumber},
	{"Multipliable", "multipliable", "integer, float or complex", isNumber},
	{"Divisible", "divisible", "integer, float or complex", isNumber},
	{"Incrementable", "incrementable", "integer or float", isSteppable},
	{"Hashable", "hashable", "comparable", types.Comparable},
	{"Printable", "printable", "any", always},
	{"Readable", "readable", "a basic kind or *T implementing fmt.Scanner", isScannable},
	{"Iterable", "iterable", "a slice or map", isIterable},
	{"Indirect", "indirect", "any", always},
}

func always(types.Type) bool { return true }

func basicInfo(t types.Type) types.BasicInfo {
	if b, ok := t.Underlying().(*types.Basic); ok {
		return b.Info()
	}
	return 0
}

func isOrdered(t types.Type) bool { return basicInfo(t)&types.IsOrdered != 0 }

func isNumber(t types.Type) bool { return basicInfo(t)&types.IsNumeric != 0 }

func isSummable(t types.Type) bool { return basicInfo(t)&(types.IsNumeric|types.IsString) != 0 }

func isSteppable(t types.Type) bool { return basicInfo(t)&(types.IsInteger|types.IsFloat) != 0 }

func isIterable(t types.Type) bool {
	switch t.Underlying().(type) {
	case *types.Slice, *types.Map:
		return true
	default:
		return false
	}
}

func supportsEquality(t types.Type) bool {
	return types.Comparable(t) || hasMethod(t, "Equal", types.Typ[types.Bool])
}

func supportsThreeWay(t types.Type) bool {
	return isOrdered(t) || hasMethod(t, "Compare", types.Typ[types.Int])
}

// isScannable mirrors what fmt.Sscan accepts: basic kinds, byte slices and
// types whose pointer has a Scan method.
func isScannable(t types.Type) bool {
	if types.NewMethodSet(types.NewPointer(t)).Lookup(nil, "Scan") != nil {
		return true
	}
	if basicInfo(t)&(types.IsBoolean|types.IsNumeric|types.IsString) != 0 {
		return true
	}
	if s, ok := t.Underlying().(*types.Slice); ok {
		return types.Identical(s.Elem(), types.Typ[types.Uint8])
	}
	return false
}

// hasMethod reports whether t has a method name(t) out.
func hasMethod(t types.Type, name string, out types.Type) bool {
	sel := types.NewMethodSet(t).Lookup(nil, name)
	if sel == nil {
		return false
	}
	sig, ok := sel.Type().(*types.Signature)
	if !ok {
		return false
	}
	return sig.Params().Len() == 1 && types.Identical(sig.Params().At(0).Type(), t) &&
		sig.Results().Len() == 1 && types.Identical(sig.Results().At(0).Type(), out)
}

// derives reports whether tag promotes the marker method of c.
func derives(tag types.Type, runtime *types.Package, c capability) bool {
	obj, _, _ := types.LookupFieldOrMethod(tag, false, runtime, c.method)
	_, ok := obj.(*types.Func)
	return ok
}

// ambiguous reports whether the marker method of c is reachable through
// more than one embedding at the shallowest depth, which keeps Go from
// promoting it.
func ambiguous(tag types.Type, runtime *types.Package, c capability) bool {
	obj, index, _ := types.LookupFieldOrMethod(tag, false, runtime, c.method)
	return obj == nil && index != nil
}

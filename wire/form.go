package wire

import "github.com/k0kubun/toon/value"

// Form classifies how a non-empty array is rendered on the wire (spec
// section 4.4).
type Form int

const (
	PrimitiveInline Form = iota
	ArrayOfArrays
	Tabular
	MixedExpanded
)

// DetectForm classifies a non-empty array, trying primitive-inline,
// array-of-arrays and tabular in that order. Callers must handle the
// empty-array case ([0]:) separately.
func DetectForm(elems []value.Value) Form {
	if allPrimitive(elems) {
		return PrimitiveInline
	}
	if allArraysOfPrimitives(elems) {
		return ArrayOfArrays
	}
	if cols, ok := TabularColumns(elems); ok && len(cols) > 0 {
		return Tabular
	}
	return MixedExpanded
}

func allPrimitive(elems []value.Value) bool {
	for _, e := range elems {
		if !e.Primitive() {
			return false
		}
	}
	return true
}

func allArraysOfPrimitives(elems []value.Value) bool {
	for _, e := range elems {
		inner, ok := e.AsArray()
		if !ok {
			return false
		}
		if !allPrimitive(inner) {
			return false
		}
	}
	return true
}

// TabularColumns returns the shared column order (the first object's
// insertion order) if elems qualifies as a tabular array per spec section
// 4.4: every element is an object, all objects share the same key set
// (same count and names), all their values are primitive, and the first
// object is non-empty.
func TabularColumns(elems []value.Value) ([]string, bool) {
	first, ok := elems[0].AsObject()
	if !ok || first.Len() == 0 {
		return nil, false
	}
	cols := first.Keys()
	colSet := make(map[string]struct{}, len(cols))
	for _, c := range cols {
		colSet[c] = struct{}{}
	}
	for _, e := range elems {
		obj, ok := e.AsObject()
		if !ok || obj.Len() != len(cols) {
			return nil, false
		}
		for _, k := range obj.Keys() {
			if _, ok := colSet[k]; !ok {
				return nil, false
			}
			v, _ := obj.Get(k)
			if !v.Primitive() {
				return nil, false
			}
		}
	}
	return cols, true
}

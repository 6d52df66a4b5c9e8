// Package value holds the tagged-union data model shared by the encoder
// and decoder: Null, Bool, Int, Float, Str, Array and Object. Object
// preserves insertion order, which is observable and part of the
// round-trip contract described in spec section 3.
package value

import "fmt"

// Kind discriminates the variant held by a Value.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindStr
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindStr:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Value is a tagged union over the six JSON-shaped variants plus Null.
// Only the field matching Kind is meaningful.
type Value struct {
	kind Kind
	b    bool
	i    int64
	f    float64
	s    string
	arr  []Value
	obj  *Object
}

// Null returns the null value.
func Null() Value { return Value{kind: KindNull} }

// Bool wraps a boolean.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Int wraps a signed 64-bit integer.
func Int(i int64) Value { return Value{kind: KindInt, i: i} }

// Float wraps a binary64. NaN and infinities are accepted here but the
// encoder renders them as the null token per spec section 3.
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }

// Str wraps a UTF-8 string.
func Str(s string) Value { return Value{kind: KindStr, s: s} }

// Array wraps an ordered sequence of values. The slice is taken by
// reference; callers should not mutate it afterward.
func Array(a []Value) Value { return Value{kind: KindArray, arr: a} }

// Obj wraps an *Object.
func Obj(o *Object) Value { return Value{kind: KindObject, obj: o} }

func (v Value) Kind() Kind { return v.kind }
func (v Value) IsNull() bool { return v.kind == KindNull }

// Primitive reports whether v is one of Null, Bool, Int, Float or Str —
// the variants the form detector and encoder treat as leaves.
func (v Value) Primitive() bool {
	switch v.kind {
	case KindNull, KindBool, KindInt, KindFloat, KindStr:
		return true
	default:
		return false
	}
}

// AsBool returns the wrapped boolean; the second result is false if v is not
// a Bool.
func (v Value) AsBool() (bool, bool) {
	if v.kind != KindBool {
		return false, false
	}
	return v.b, true
}

func (v Value) AsInt() (int64, bool) {
	if v.kind != KindInt {
		return 0, false
	}
	return v.i, true
}

func (v Value) AsFloat() (float64, bool) {
	if v.kind != KindFloat {
		return 0, false
	}
	return v.f, true
}

func (v Value) AsStr() (string, bool) {
	if v.kind != KindStr {
		return "", false
	}
	return v.s, true
}

func (v Value) AsArray() ([]Value, bool) {
	if v.kind != KindArray {
		return nil, false
	}
	return v.arr, true
}

func (v Value) AsObject() (*Object, bool) {
	if v.kind != KindObject {
		return nil, false
	}
	return v.obj, true
}

// NumericFloat widens Int/Float to a float64, for use by the numeric
// equality rule in spec section 3 ("equality between them compares
// numerically after widening Int to Float").
func (v Value) NumericFloat() (float64, bool) {
	switch v.kind {
	case KindInt:
		return float64(v.i), true
	case KindFloat:
		return v.f, true
	default:
		return 0, false
	}
}

// Equal implements the round-trip equality relation from spec section 8:
// structural equality for Null/Bool/Str/Array/Object, and numeric equality
// with Int/Float widening for the two numeric variants.
func Equal(a, b Value) bool {
	af, aIsNum := a.NumericFloat()
	bf, bIsNum := b.NumericFloat()
	if aIsNum && bIsNum {
		return af == bf
	}
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindNull:
		return true
	case KindBool:
		return a.b == b.b
	case KindStr:
		return a.s == b.s
	case KindArray:
		if len(a.arr) != len(b.arr) {
			return false
		}
		for i := range a.arr {
			if !Equal(a.arr[i], b.arr[i]) {
				return false
			}
		}
		return true
	case KindObject:
		return ObjectEqual(a.obj, b.obj)
	default:
		return false
	}
}

// ObjectEqual compares two objects by key set and per-key value equality,
// ignoring insertion order (order is part of the round-trip contract for
// encode output, but not part of the value-equality relation used for
// testing property 1 in spec section 8).
func ObjectEqual(a, b *Object) bool {
	if a.Len() != b.Len() {
		return false
	}
	for _, k := range a.Keys() {
		av, _ := a.Get(k)
		bv, ok := b.Get(k)
		if !ok || !Equal(av, bv) {
			return false
		}
	}
	return true
}

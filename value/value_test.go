package value_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/k0kubun/toon/value"
)

// valueComparer lets cmp.Diff compare two value.Value trees despite their
// unexported fields, using the same Int/Float widening rule as
// value.Equal (spec section 3).
var valueComparer = cmp.Comparer(func(a, b value.Value) bool {
	return value.Equal(a, b)
})

func TestObjectLastWriteWinsKeepsPosition(t *testing.T) {
	o := value.NewObject()
	o.Set("a", value.Int(1))
	o.Set("b", value.Int(2))
	o.Set("a", value.Int(3))

	if got, want := o.Keys(), []string{"a", "b"}; len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("Keys() = %v, want %v", got, want)
	}
	v, ok := o.Get("a")
	if !ok {
		t.Fatal("Get(a) missing")
	}
	if i, _ := v.AsInt(); i != 3 {
		t.Fatalf("Get(a) = %d, want 3", i)
	}
}

func TestEqualWidensIntFloat(t *testing.T) {
	if !value.Equal(value.Int(1), value.Float(1.0)) {
		t.Fatal("Int(1) should equal Float(1.0)")
	}
	if value.Equal(value.Int(1), value.Float(1.5)) {
		t.Fatal("Int(1) should not equal Float(1.5)")
	}
}

func TestObjectEqualIgnoresOrder(t *testing.T) {
	a := value.NewObject()
	a.Set("x", value.Int(1))
	a.Set("y", value.Int(2))

	b := value.NewObject()
	b.Set("y", value.Int(2))
	b.Set("x", value.Int(1))

	if !value.Equal(value.Obj(a), value.Obj(b)) {
		t.Fatal("objects with same entries in different order should be equal")
	}
}

func TestCmpDiffWidensIntFloatInsideArray(t *testing.T) {
	a := value.Array([]value.Value{value.Int(1), value.Str("x")})
	b := value.Array([]value.Value{value.Float(1.0), value.Str("x")})

	if diff := cmp.Diff(a, b, valueComparer); diff != "" {
		t.Fatalf("unexpected diff (-a +b):\n%s", diff)
	}
}

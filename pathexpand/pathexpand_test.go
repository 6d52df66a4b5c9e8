package pathexpand_test

import (
	"testing"

	"github.com/k0kubun/toon/pathexpand"
	"github.com/k0kubun/toon/toonerr"
	"github.com/k0kubun/toon/value"
)

func TestExpandSplitsDottedKeys(t *testing.T) {
	o := value.NewObject()
	o.Set("user.name", value.Str("Alice"))
	o.Set("user.age", value.Int(30))

	v, err := pathexpand.Expand(value.Obj(o), true)
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}
	obj, _ := v.AsObject()
	user, ok := obj.Get("user")
	if !ok {
		t.Fatal("expected user key")
	}
	userObj, _ := user.AsObject()
	name, _ := userObj.Get("name")
	if s, _ := name.AsStr(); s != "Alice" {
		t.Errorf("user.name = %q, want Alice", s)
	}
}

func TestExpandLeavesNonIdentifierSegmentLiteral(t *testing.T) {
	o := value.NewObject()
	o.Set("a.1b", value.Int(1))

	v, err := pathexpand.Expand(value.Obj(o), true)
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}
	obj, _ := v.AsObject()
	if _, ok := obj.Get("a.1b"); !ok {
		t.Fatal("expected literal key a.1b to survive unexpanded")
	}
}

func TestExpandConflictStrict(t *testing.T) {
	o := value.NewObject()
	o.Set("a", value.Int(1))
	o.Set("a.b", value.Int(2))

	_, err := pathexpand.Expand(value.Obj(o), true)
	if err == nil {
		t.Fatal("expected ExpansionConflict")
	}
	te, ok := err.(*toonerr.Error)
	if !ok || te.Kind != toonerr.ExpansionConflict {
		t.Fatalf("got %v, want ExpansionConflict", err)
	}
}

func TestExpandConflictNonStrictReplaces(t *testing.T) {
	o := value.NewObject()
	o.Set("a", value.Int(1))
	o.Set("a.b", value.Int(2))

	v, err := pathexpand.Expand(value.Obj(o), false)
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}
	obj, _ := v.AsObject()
	a, _ := obj.Get("a")
	aObj, ok := a.AsObject()
	if !ok {
		t.Fatal("expected a to become an object")
	}
	b, _ := aObj.Get("b")
	if i, _ := b.AsInt(); i != 2 {
		t.Errorf("a.b = %d, want 2", i)
	}
}

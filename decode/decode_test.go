package decode_test

import (
	"testing"

	"github.com/k0kubun/toon/decode"
	"github.com/k0kubun/toon/toonerr"
	"github.com/k0kubun/toon/value"
)

func mustDecode(t *testing.T, src string) value.Value {
	t.Helper()
	v, err := decode.Decode([]byte(src), decode.DefaultOptions())
	if err != nil {
		t.Fatalf("Decode(%q): %v", src, err)
	}
	return v
}

func TestDecodeSimpleObject(t *testing.T) {
	v := mustDecode(t, "name: Alice\nage: 30")
	obj, ok := v.AsObject()
	if !ok {
		t.Fatal("expected object")
	}
	name, _ := obj.Get("name")
	if s, _ := name.AsStr(); s != "Alice" {
		t.Errorf("name = %q, want Alice", s)
	}
	age, _ := obj.Get("age")
	if i, _ := age.AsInt(); i != 30 {
		t.Errorf("age = %d, want 30", i)
	}
}

func TestDecodeTabularArray(t *testing.T) {
	v := mustDecode(t, "users[2]{id,name}:\n  1,Alice\n  2,Bob")
	obj, _ := v.AsObject()
	users, _ := obj.Get("users")
	arr, _ := users.AsArray()
	if len(arr) != 2 {
		t.Fatalf("len = %d, want 2", len(arr))
	}
	row0, _ := arr[0].AsObject()
	id0, _ := row0.Get("id")
	if i, _ := id0.AsInt(); i != 1 {
		t.Errorf("row0.id = %d, want 1", i)
	}
}

func TestDecodePrimitiveInlineArray(t *testing.T) {
	v := mustDecode(t, "tags[3]: a,b,c")
	obj, _ := v.AsObject()
	tags, _ := obj.Get("tags")
	arr, _ := tags.AsArray()
	if len(arr) != 3 {
		t.Fatalf("len = %d, want 3", len(arr))
	}
	s, _ := arr[1].AsStr()
	if s != "b" {
		t.Errorf("arr[1] = %q, want b", s)
	}
}

func TestDecodeArrayOfArrays(t *testing.T) {
	v := mustDecode(t, "matrix[2]:\n  - [3]: 1,2,3\n  - [3]: 4,5,6")
	obj, _ := v.AsObject()
	matrix, _ := obj.Get("matrix")
	arr, _ := matrix.AsArray()
	if len(arr) != 2 {
		t.Fatalf("len = %d, want 2", len(arr))
	}
	row1, _ := arr[1].AsArray()
	if i, _ := row1[2].AsInt(); i != 6 {
		t.Errorf("arr[1][2] = %d, want 6", i)
	}
}

func TestDecodeMixedExpandedListWithObject(t *testing.T) {
	v := mustDecode(t, "items[2]:\n  - a: 1\n    b: 2\n  - loose")
	obj, _ := v.AsObject()
	items, _ := obj.Get("items")
	arr, _ := items.AsArray()
	if len(arr) != 2 {
		t.Fatalf("len = %d, want 2", len(arr))
	}
	first, _ := arr[0].AsObject()
	b, _ := first.Get("b")
	if i, _ := b.AsInt(); i != 2 {
		t.Errorf("arr[0].b = %d, want 2", i)
	}
	s, _ := arr[1].AsStr()
	if s != "loose" {
		t.Errorf("arr[1] = %q, want loose", s)
	}
}

func TestDecodeEmptyObject(t *testing.T) {
	v := mustDecode(t, "")
	obj, ok := v.AsObject()
	if !ok || obj.Len() != 0 {
		t.Fatalf("expected empty object, got %+v", v)
	}
}

func TestDecodeEmptyArray(t *testing.T) {
	v := mustDecode(t, "[0]:")
	arr, ok := v.AsArray()
	if !ok || len(arr) != 0 {
		t.Fatalf("expected empty array, got %+v", v)
	}
}

func TestDecodeRootPrimitive(t *testing.T) {
	v := mustDecode(t, "42")
	if i, ok := v.AsInt(); !ok || i != 42 {
		t.Fatalf("expected Int(42), got %+v", v)
	}
}

func TestDecodeLeadingZeroIsString(t *testing.T) {
	v := mustDecode(t, "n: 05")
	obj, _ := v.AsObject()
	n, _ := obj.Get("n")
	s, ok := n.AsStr()
	if !ok || s != "05" {
		t.Fatalf("n = %+v, want string \"05\"", n)
	}
}

func TestDecodeExponentFoldsToInt(t *testing.T) {
	v := mustDecode(t, "n: 1e3")
	obj, _ := v.AsObject()
	n, _ := obj.Get("n")
	i, ok := n.AsInt()
	if !ok || i != 1000 {
		t.Fatalf("n = %+v, want Int(1000)", n)
	}
}

func TestDecodeTabIndentationStrict(t *testing.T) {
	_, err := decode.Decode([]byte("a:\n\tb: 1"), decode.DefaultOptions())
	if err == nil {
		t.Fatal("expected error for tab indentation in strict mode")
	}
	te, ok := err.(*toonerr.Error)
	if !ok || te.Kind != toonerr.TabIndentation {
		t.Fatalf("got %v, want TabIndentation", err)
	}
}

func TestDecodeArrayLengthMismatchStrict(t *testing.T) {
	_, err := decode.Decode([]byte("tags[3]: a,b"), decode.DefaultOptions())
	if err == nil {
		t.Fatal("expected ArrayLengthMismatch")
	}
	te, ok := err.(*toonerr.Error)
	if !ok || te.Kind != toonerr.ArrayLengthMismatch {
		t.Fatalf("got %v, want ArrayLengthMismatch", err)
	}
}

func TestDecodeBlankLineInListArrayStrict(t *testing.T) {
	_, err := decode.Decode([]byte("items[2]:\n  - a\n\n  - b"), decode.DefaultOptions())
	if err == nil {
		t.Fatal("expected BlankLineInArray")
	}
	te, ok := err.(*toonerr.Error)
	if !ok || te.Kind != toonerr.BlankLineInArray {
		t.Fatalf("got %v, want BlankLineInArray", err)
	}
}

func TestDecodeBlankLineInTabularArrayStrict(t *testing.T) {
	_, err := decode.Decode([]byte("users[2]{id}:\n  1\n\n  2"), decode.DefaultOptions())
	if err == nil {
		t.Fatal("expected BlankLineInArray")
	}
	te, ok := err.(*toonerr.Error)
	if !ok || te.Kind != toonerr.BlankLineInArray {
		t.Fatalf("got %v, want BlankLineInArray", err)
	}
}

func TestDecodeBlankLineInArrayNonStrictSkips(t *testing.T) {
	opts := decode.DefaultOptions()
	opts.Strict = false
	v, err := decode.Decode([]byte("items[2]:\n  - a\n\n  - b"), opts)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	obj, _ := v.AsObject()
	items, _ := obj.Get("items")
	arr, _ := items.AsArray()
	if len(arr) != 2 {
		t.Fatalf("len = %d, want 2", len(arr))
	}
	s, _ := arr[1].AsStr()
	if s != "b" {
		t.Errorf("arr[1] = %q, want b", s)
	}
}

func TestDecodeMaxDepthExceeded(t *testing.T) {
	opts := decode.DefaultOptions()
	opts.MaxDepth = 1
	_, err := decode.Decode([]byte("a:\n  b:\n    c: 1"), opts)
	if err == nil {
		t.Fatal("expected NestingError")
	}
	te, ok := err.(*toonerr.Error)
	if !ok || te.Kind != toonerr.NestingError {
		t.Fatalf("got %v, want NestingError", err)
	}
}

func TestDecodeArrayLengthMismatchNonStrictPads(t *testing.T) {
	opts := decode.DefaultOptions()
	opts.Strict = false
	v, err := decode.Decode([]byte("tags[3]: a,b"), opts)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	obj, _ := v.AsObject()
	tags, _ := obj.Get("tags")
	arr, _ := tags.AsArray()
	if len(arr) != 3 {
		t.Fatalf("len = %d, want 3", len(arr))
	}
	if !arr[2].IsNull() {
		t.Errorf("arr[2] = %+v, want null padding", arr[2])
	}
}

package encode_test

import (
	"testing"

	"github.com/k0kubun/toon/encode"
	"github.com/k0kubun/toon/value"
)

func mustEncode(t *testing.T, v value.Value) string {
	t.Helper()
	b, err := encode.Encode(v, encode.DefaultOptions())
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	return string(b)
}

func TestEncodeSimpleObject(t *testing.T) {
	o := value.NewObject()
	o.Set("name", value.Str("Alice"))
	o.Set("age", value.Int(30))

	got := mustEncode(t, value.Obj(o))
	want := "name: Alice\nage: 30"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestEncodeTabularArray(t *testing.T) {
	u1 := value.NewObject()
	u1.Set("id", value.Int(1))
	u1.Set("name", value.Str("Alice"))
	u2 := value.NewObject()
	u2.Set("id", value.Int(2))
	u2.Set("name", value.Str("Bob"))

	root := value.NewObject()
	root.Set("users", value.Array([]value.Value{value.Obj(u1), value.Obj(u2)}))

	got := mustEncode(t, value.Obj(root))
	want := "users[2]{id,name}:\n  1,Alice\n  2,Bob"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestEncodePrimitiveInlineArray(t *testing.T) {
	root := value.NewObject()
	root.Set("tags", value.Array([]value.Value{value.Str("a"), value.Str("b"), value.Str("c")}))

	got := mustEncode(t, value.Obj(root))
	want := "tags[3]: a,b,c"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestEncodeArrayOfArrays(t *testing.T) {
	root := value.NewObject()
	root.Set("matrix", value.Array([]value.Value{
		value.Array([]value.Value{value.Int(1), value.Int(2), value.Int(3)}),
		value.Array([]value.Value{value.Int(4), value.Int(5), value.Int(6)}),
	}))

	got := mustEncode(t, value.Obj(root))
	want := "matrix[2]:\n  - [3]: 1,2,3\n  - [3]: 4,5,6"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestEncodeEmptyObject(t *testing.T) {
	got := mustEncode(t, value.Obj(value.NewObject()))
	if got != "" {
		t.Fatalf("got %q, want empty", got)
	}
}

func TestEncodeQuotesKeywordLikeString(t *testing.T) {
	root := value.NewObject()
	root.Set("s", value.Str("true"))

	got := mustEncode(t, value.Obj(root))
	want := `s: "true"`
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestEncodeEmptyArray(t *testing.T) {
	root := value.NewObject()
	root.Set("empty", value.Array(nil))

	got := mustEncode(t, value.Obj(root))
	want := "empty[0]:"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestEncodeMixedExpandedListWithObject(t *testing.T) {
	o1 := value.NewObject()
	o1.Set("id", value.Int(1))
	o1.Set("tags", value.Array([]value.Value{value.Str("x"), value.Str("y")}))

	root := value.NewObject()
	root.Set("items", value.Array([]value.Value{value.Obj(o1), value.Int(5)}))

	got := mustEncode(t, value.Obj(root))
	want := "items[2]:\n  - id: 1\n    tags[2]: x,y\n  - 5"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestEncodeRootArray(t *testing.T) {
	got := mustEncode(t, value.Array([]value.Value{value.Int(1), value.Int(2)}))
	want := "[2]: 1,2"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestEncodeRootPrimitive(t *testing.T) {
	got := mustEncode(t, value.Str("hello"))
	if got != "hello" {
		t.Fatalf("got %q, want hello", got)
	}
}

// Package toon is the ergonomic entry point for the codec: Marshal and
// Unmarshal work directly against Go values the way encoding/json does,
// converting through the value.Value tagged union (package value) that
// the encoder and decoder operate on. This wrapper is supplemented
// surface, not core: the core packages (value, wire, encode, decode,
// pathexpand) never import encoding/json.
package toon

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"

	"github.com/k0kubun/toon/decode"
	"github.com/k0kubun/toon/encode"
	"github.com/k0kubun/toon/pathexpand"
	"github.com/k0kubun/toon/value"
)

// Marshal converts v to its JSON-shaped representation via encoding/json,
// then encodes that as TOON using opts.
func Marshal(v any, opts encode.Options) ([]byte, error) {
	val, err := toValue(v)
	if err != nil {
		return nil, fmt.Errorf("toon: %w", err)
	}
	slog.Debug("toon.Marshal", "kind", val.Kind())
	return encode.Encode(val, opts)
}

// Unmarshal decodes TOON bytes and stores the result into v via
// encoding/json's Unmarshal, after an intermediate JSON-shaped round
// trip through value.Value. Path expansion (spec section 4.7) runs when
// opts.ExpandPaths is decode.PathExpansionSafe.
func Unmarshal(data []byte, v any, opts decode.Options) error {
	val, err := decode.Decode(data, opts)
	if err != nil {
		return err
	}
	if opts.ExpandPaths == decode.PathExpansionSafe {
		val, err = pathexpand.Expand(val, opts.Strict)
		if err != nil {
			return err
		}
	}
	slog.Debug("toon.Unmarshal", "kind", val.Kind())
	jsonBytes, err := fromValue(val)
	if err != nil {
		return fmt.Errorf("toon: %w", err)
	}
	return json.Unmarshal(jsonBytes, v)
}

// toValue converts an arbitrary Go value to value.Value by round-tripping
// through encoding/json, matching spec.md section 1's "the core accepts
// and emits an in-memory JSON-shaped value" boundary.
func toValue(v any) (value.Value, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return value.Value{}, err
	}
	var generic any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return value.Value{}, err
	}
	return fromGeneric(generic), nil
}

func fromGeneric(g any) value.Value {
	switch t := g.(type) {
	case nil:
		return value.Null()
	case bool:
		return value.Bool(t)
	case float64:
		return value.Float(t)
	case string:
		return value.Str(t)
	case []any:
		arr := make([]value.Value, len(t))
		for i, el := range t {
			arr[i] = fromGeneric(el)
		}
		return value.Array(arr)
	case map[string]any:
		obj := value.NewObject()
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			obj.Set(k, fromGeneric(t[k]))
		}
		return value.Obj(obj)
	default:
		return value.Null()
	}
}

// fromValue converts a decoded value.Value back into encoding/json bytes
// so the caller's json.Unmarshal can populate arbitrary struct targets.
func fromValue(v value.Value) ([]byte, error) {
	return json.Marshal(toGeneric(v))
}

func toGeneric(v value.Value) any {
	switch v.Kind() {
	case value.KindNull:
		return nil
	case value.KindBool:
		b, _ := v.AsBool()
		return b
	case value.KindInt:
		i, _ := v.AsInt()
		return i
	case value.KindFloat:
		f, _ := v.AsFloat()
		return f
	case value.KindStr:
		s, _ := v.AsStr()
		return s
	case value.KindArray:
		arr, _ := v.AsArray()
		out := make([]any, len(arr))
		for i, el := range arr {
			out[i] = toGeneric(el)
		}
		return out
	case value.KindObject:
		obj, _ := v.AsObject()
		out := make(map[string]any, obj.Len())
		for _, k := range obj.Keys() {
			val, _ := obj.Get(k)
			out[k] = toGeneric(val)
		}
		return out
	default:
		return nil
	}
}

// Package pathexpand implements the optional post-decode dotted-key
// expansion described in spec section 4.7: object keys containing '.'
// where every segment is a bare identifier are split and merged into a
// nested object chain.
package pathexpand

import (
	"strings"

	"github.com/k0kubun/toon/toonerr"
	"github.com/k0kubun/toon/value"
)

// Expand walks v recursively and, for every object it finds, explodes any
// key whose segments are all IdentifierSegments (spec section 9's
// glossary: `[A-Za-z_][A-Za-z0-9_]*`) into a nested chain merged with the
// object's other fields. strict controls the conflict policy from spec
// section 4.7: in strict mode a collision between an existing non-object
// node and a needed descent fails with ExpansionConflict; otherwise the
// later write wins and replaces the conflicting node.
func Expand(v value.Value, strict bool) (value.Value, error) {
	switch v.Kind() {
	case value.KindObject:
		obj, _ := v.AsObject()
		expanded, err := expandObject(obj, strict)
		if err != nil {
			return value.Value{}, err
		}
		return value.Obj(expanded), nil
	case value.KindArray:
		arr, _ := v.AsArray()
		out := make([]value.Value, len(arr))
		for i, el := range arr {
			ev, err := Expand(el, strict)
			if err != nil {
				return value.Value{}, err
			}
			out[i] = ev
		}
		return value.Array(out), nil
	default:
		return v, nil
	}
}

func expandObject(obj *value.Object, strict bool) (*value.Object, error) {
	out := value.NewObject()
	for _, key := range obj.Keys() {
		raw, _ := obj.Get(key)
		child, err := Expand(raw, strict)
		if err != nil {
			return nil, err
		}

		segs, ok := splitIdentifierPath(key)
		if !ok {
			out.Set(key, child)
			continue
		}
		if err := mergePath(out, segs, child, strict); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// splitIdentifierPath splits key on '.' and reports ok only if it has more
// than one segment and every segment is a bare identifier; a single
// segment (no dot) or any non-identifier segment leaves the key literal.
func splitIdentifierPath(key string) ([]string, bool) {
	if !strings.Contains(key, ".") {
		return nil, false
	}
	segs := strings.Split(key, ".")
	for _, s := range segs {
		if !isIdentifierSegment(s) {
			return nil, false
		}
	}
	return segs, true
}

func isIdentifierSegment(s string) bool {
	if s == "" {
		return false
	}
	if !((s[0] >= 'A' && s[0] <= 'Z') || (s[0] >= 'a' && s[0] <= 'z') || s[0] == '_') {
		return false
	}
	for i := 1; i < len(s); i++ {
		c := s[i]
		if !((c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || c == '_') {
			return false
		}
	}
	return true
}

// mergePath descends into dst creating/reusing nested objects for every
// segment but the last, then sets the leaf.
func mergePath(dst *value.Object, segs []string, leaf value.Value, strict bool) error {
	cur := dst
	for _, seg := range segs[:len(segs)-1] {
		existing, has := cur.Get(seg)
		if !has {
			next := value.NewObject()
			cur.Set(seg, value.Obj(next))
			cur = next
			continue
		}
		if existing.Kind() != value.KindObject {
			if strict {
				return toonerr.New(toonerr.ExpansionConflict, "path segment %q collides with a non-object value", seg)
			}
			next := value.NewObject()
			cur.Set(seg, value.Obj(next))
			cur = next
			continue
		}
		next, _ := existing.AsObject()
		cur = next
	}

	lastSeg := segs[len(segs)-1]
	if existing, has := cur.Get(lastSeg); has {
		existingIsObj := existing.Kind() == value.KindObject
		leafIsObj := leaf.Kind() == value.KindObject
		if existingIsObj != leafIsObj && strict {
			return toonerr.New(toonerr.ExpansionConflict, "path leaf %q collides on object-ness", lastSeg)
		}
	}
	cur.Set(lastSeg, leaf)
	return nil
}

// Package encode implements the TOON encoder (spec section 4.5): it walks
// a value.Value tree and emits indented lines per form and context.
package encode

import (
	"fmt"
	"strings"

	"github.com/k0kubun/toon/value"
	"github.com/k0kubun/toon/wire"
)

type encoder struct {
	opts Options
}

// Encode renders v as a TOON document. The returned bytes never end with a
// trailing newline (spec section 8, property 3) unless v is itself a
// string whose content ends in a newline, in which case the newline is
// inside the emitted quoted string.
func Encode(v value.Value, opts Options) ([]byte, error) {
	e := &encoder{opts: opts}

	var lines []string
	var err error
	switch v.Kind() {
	case value.KindObject:
		obj, _ := v.AsObject()
		if obj.Len() == 0 {
			return []byte{}, nil
		}
		lines, err = e.objectLines(obj, 0)
	case value.KindArray:
		arr, _ := v.AsArray()
		lines, err = e.arrayLines("", arr, 0)
	default:
		tok, terr := e.primitiveToken(v)
		if terr != nil {
			return nil, terr
		}
		lines = []string{tok}
	}
	if err != nil {
		return nil, err
	}
	return []byte(strings.Join(lines, "\n")), nil
}

func (e *encoder) indent(depth int) string {
	if depth <= 0 {
		return ""
	}
	return strings.Repeat(" ", depth*e.opts.Indent)
}

func (e *encoder) primitiveToken(v value.Value) (string, error) {
	switch v.Kind() {
	case value.KindNull:
		return "null", nil
	case value.KindBool:
		b, _ := v.AsBool()
		if b {
			return "true", nil
		}
		return "false", nil
	case value.KindInt:
		i, _ := v.AsInt()
		return wire.FormatInt(i), nil
	case value.KindFloat:
		f, _ := v.AsFloat()
		return wire.FormatFloat(f), nil
	case value.KindStr:
		s, _ := v.AsStr()
		return wire.EmitString(s, e.opts.Delimiter), nil
	default:
		return "", fmt.Errorf("encode: value of kind %s is not a primitive", v.Kind())
	}
}

// objectLines renders every field of obj at the given depth, in insertion
// order, following the Object production in spec section 4.5.
func (e *encoder) objectLines(obj *value.Object, depth int) ([]string, error) {
	var lines []string
	for _, key := range obj.Keys() {
		val, _ := obj.Get(key)
		keyTok := wire.EmitKey(key)

		switch val.Kind() {
		case value.KindArray:
			arr, _ := val.AsArray()
			arrLines, err := e.arrayLines(e.indent(depth)+keyTok, arr, depth)
			if err != nil {
				return nil, err
			}
			lines = append(lines, arrLines...)
		case value.KindObject:
			child, _ := val.AsObject()
			lines = append(lines, e.indent(depth)+keyTok+":")
			if child.Len() > 0 {
				childLines, err := e.objectLines(child, depth+1)
				if err != nil {
					return nil, err
				}
				lines = append(lines, childLines...)
			}
		default:
			tok, err := e.primitiveToken(val)
			if err != nil {
				return nil, err
			}
			lines = append(lines, e.indent(depth)+keyTok+": "+tok)
		}
	}
	return lines, nil
}

// arrayLines renders an array value whose header begins with prefix (which
// already includes any leading indentation and key token, or the "- "
// hyphen marker, or nothing for an unkeyed root array). Body lines, if
// any, are rendered at depth+1.
func (e *encoder) arrayLines(prefix string, arr []value.Value, depth int) ([]string, error) {
	n := len(arr)
	suffix := e.opts.Delimiter.HeaderSuffix()
	headerStart := fmt.Sprintf("%s[%d%s]", prefix, n, suffix)

	if n == 0 {
		return []string{headerStart + ":"}, nil
	}

	bodyIndent := e.indent(depth + 1)
	delim := string(e.opts.Delimiter.Byte())

	switch wire.DetectForm(arr) {
	case wire.PrimitiveInline:
		toks := make([]string, n)
		for i, el := range arr {
			tok, err := e.primitiveToken(el)
			if err != nil {
				return nil, err
			}
			toks[i] = tok
		}
		return []string{headerStart + ": " + strings.Join(toks, delim)}, nil

	case wire.Tabular:
		cols, _ := wire.TabularColumns(arr)
		fieldToks := make([]string, len(cols))
		for i, c := range cols {
			fieldToks[i] = wire.EmitKey(c)
		}
		lines := []string{headerStart + "{" + strings.Join(fieldToks, delim) + "}:"}
		for _, el := range arr {
			obj, _ := el.AsObject()
			rowToks := make([]string, len(cols))
			for i, c := range cols {
				v, ok := obj.Get(c)
				if !ok {
					rowToks[i] = "null"
					continue
				}
				tok, err := e.primitiveToken(v)
				if err != nil {
					return nil, err
				}
				rowToks[i] = tok
			}
			lines = append(lines, bodyIndent+strings.Join(rowToks, delim))
		}
		return lines, nil

	case wire.ArrayOfArrays:
		lines := []string{headerStart + ":"}
		for _, el := range arr {
			inner, _ := el.AsArray()
			innerLines, err := e.arrayLines(bodyIndent+"- ", inner, depth+1)
			if err != nil {
				return nil, err
			}
			lines = append(lines, innerLines...)
		}
		return lines, nil

	default: // MixedExpanded
		lines := []string{headerStart + ":"}
		for _, el := range arr {
			itemLines, err := e.listItemLines(el, depth+1)
			if err != nil {
				return nil, err
			}
			lines = append(lines, itemLines...)
		}
		return lines, nil
	}
}

// listItemLines renders a single "- " production (spec section 4.5, "List
// item") at the given depth.
func (e *encoder) listItemLines(v value.Value, depth int) ([]string, error) {
	switch v.Kind() {
	case value.KindArray:
		arr, _ := v.AsArray()
		return e.arrayLines(e.indent(depth)+"- ", arr, depth)

	case value.KindObject:
		obj, _ := v.AsObject()
		if obj.Len() == 0 {
			return []string{e.indent(depth) + "-"}, nil
		}
		// Encoding the object one level deeper gives exactly the
		// depth+1 placement for its remaining fields and depth+2
		// placement for any nested body (tabular rows, nested
		// object/array content) that spec section 4.5 requires for
		// the first field riding on the hyphen line; we then graft
		// that first line onto the hyphen.
		objLines, err := e.objectLines(obj, depth+1)
		if err != nil {
			return nil, err
		}
		childIndent := e.indent(depth + 1)
		hyphen := e.indent(depth) + "- " + strings.TrimPrefix(objLines[0], childIndent)
		lines := append([]string{hyphen}, objLines[1:]...)
		return lines, nil

	default:
		tok, err := e.primitiveToken(v)
		if err != nil {
			return nil, err
		}
		return []string{e.indent(depth) + "- " + tok}, nil
	}
}

// Package decode implements the TOON decoder (spec section 4.6): a
// recursive-descent reader over pre-tokenized, indentation-delimited lines
// that reconstructs a value.Value tree.
package decode

import (
	"strings"

	"github.com/k0kubun/toon/pathexpand"
	"github.com/k0kubun/toon/toonerr"
	"github.com/k0kubun/toon/value"
)

type decoder struct {
	lines []line
	opts  Options
}

// Decode parses data as a TOON document under opts.
func Decode(data []byte, opts Options) (value.Value, error) {
	lines, err := tokenizeLines(data, opts.Indent, opts.Strict)
	if err != nil {
		return value.Value{}, err
	}
	d := &decoder{lines: lines, opts: opts}

	idx := peekNonBlank(lines, 0)
	if idx >= len(lines) {
		return value.Obj(value.NewObject()), nil
	}

	first := lines[idx]
	if first.depth != 0 {
		return value.Value{}, toonerr.At(toonerr.UnexpectedIndent, first.lineNo, 1, "root line must not be indented")
	}

	var result value.Value
	var nextIdx int

	switch {
	case len(first.content) > 0 && first.content[0] == '[':
		hdr, herr := parseFieldHeader(first.content)
		if herr != nil {
			return value.Value{}, withPos(herr, first)
		}
		result, nextIdx, err = d.decodeArrayFromHeader(idx, 0, hdr)

	case !containsUnquotedColon(first.content) && peekNonBlank(lines, idx+1) >= len(lines):
		var perr error
		result, perr = parsePrimitiveToken(first.content)
		if perr != nil {
			return value.Value{}, withPos(perr, first)
		}
		nextIdx = idx + 1

	default:
		var obj *value.Object
		obj, nextIdx, err = d.decodeObjectAt(idx, 0)
		if err == nil {
			result = value.Obj(obj)
		}
	}
	if err != nil {
		return value.Value{}, err
	}

	if trailing := peekNonBlank(lines, nextIdx); trailing < len(lines) {
		return value.Value{}, toonerr.At(toonerr.NestingError, lines[trailing].lineNo, 1, "unexpected trailing content")
	}
	if opts.ExpandPaths == PathExpansionSafe {
		return pathexpand.Expand(result, opts.Strict)
	}
	return result, nil
}

func withPos(err error, ln line) error {
	if te, ok := err.(*toonerr.Error); ok {
		return toonerr.WithPos(te, ln.lineNo, 1)
	}
	return err
}

// checkDepth rejects nesting beyond opts.MaxDepth (spec section 9,
// "Cycle-safety"). MaxDepth of zero leaves the bound unenforced beyond Go's
// own stack limits.
func (d *decoder) checkDepth(depth, lineNo int) error {
	if d.opts.MaxDepth > 0 && depth > d.opts.MaxDepth {
		return toonerr.At(toonerr.NestingError, lineNo, 1, "nesting depth exceeds max depth %d", d.opts.MaxDepth)
	}
	return nil
}

// decodeObjectAt consumes every field line at exactly depth, starting at
// idx, and returns the object plus the index of the first line that is not
// part of it (the next non-blank line at another depth, or EOF). Blank lines
// between fields are skipped.
func (d *decoder) decodeObjectAt(idx, depth int) (*value.Object, int, error) {
	if err := d.checkDepth(depth, lineNoAt(d.lines, idx)); err != nil {
		return nil, idx, err
	}
	obj := value.NewObject()
	for {
		idx = peekNonBlank(d.lines, idx)
		if idx >= len(d.lines) || d.lines[idx].depth != depth {
			return obj, idx, nil
		}
		ln := d.lines[idx]
		hdr, err := parseFieldHeader(ln.content)
		if err != nil {
			return nil, idx, withPos(err, ln)
		}
		if !hdr.HasKey {
			return nil, idx, toonerr.At(toonerr.InvalidKey, ln.lineNo, 1, "object field missing key")
		}
		val, nextIdx, err := d.decodeFieldValue(idx, depth, hdr)
		if err != nil {
			return nil, idx, err
		}
		obj.Set(hdr.Key, val)
		idx = nextIdx
	}
}

// decodeFieldValue interprets the already-parsed header hdr for the line at
// idx (whose own depth is depth) and, if the value needs a body, consumes
// it starting at depth+1.
func (d *decoder) decodeFieldValue(idx, depth int, hdr *fieldHeader) (value.Value, int, error) {
	ln := d.lines[idx]

	if hdr.IsArray {
		return d.decodeArrayFromHeader(idx, depth, hdr)
	}

	if hdr.Inline != "" {
		v, err := parsePrimitiveToken(hdr.Inline)
		if err != nil {
			return value.Value{}, idx, withPos(err, ln)
		}
		return v, idx + 1, nil
	}

	next := peekNonBlank(d.lines, idx+1)
	if next < len(d.lines) && d.lines[next].depth == depth+1 {
		child, nextIdx, err := d.decodeObjectAt(next, depth+1)
		if err != nil {
			return value.Value{}, idx, err
		}
		return value.Obj(child), nextIdx, nil
	}
	return value.Obj(value.NewObject()), idx + 1, nil
}

// decodeArrayFromHeader consumes the body of an array whose header was
// already parsed into hdr from the line at idx; depth is that line's own
// depth (the body, if any, lives at depth+1).
func (d *decoder) decodeArrayFromHeader(idx, depth int, hdr *fieldHeader) (value.Value, int, error) {
	ln := d.lines[idx]
	if err := d.checkDepth(depth+1, ln.lineNo); err != nil {
		return value.Value{}, idx, err
	}
	n := hdr.ArrLen
	bodyDepth := depth + 1
	delimByte := hdr.Delim.Byte()

	if n == 0 {
		return value.Array(nil), idx + 1, nil
	}

	if hdr.Fields != nil {
		arr, nextIdx, err := d.decodeTabularRows(idx+1, bodyDepth, n, hdr.Fields, delimByte)
		if err != nil {
			return value.Value{}, idx, err
		}
		return value.Array(arr), nextIdx, nil
	}

	if hdr.Inline != "" {
		toks := splitRespectingQuotes(hdr.Inline, delimByte)
		if d.opts.Strict && len(toks) != n {
			return value.Value{}, idx, toonerr.At(toonerr.ArrayLengthMismatch, ln.lineNo, 1, "declared length %d, got %d values", n, len(toks))
		}
		arr := make([]value.Value, 0, len(toks))
		for _, t := range toks {
			v, err := parsePrimitiveToken(t)
			if err != nil {
				return value.Value{}, idx, withPos(err, ln)
			}
			arr = append(arr, v)
		}
		return value.Array(padOrTrim(arr, n)), idx + 1, nil
	}

	arr, nextIdx, err := d.decodeListItems(idx+1, bodyDepth, n)
	if err != nil {
		return value.Value{}, idx, err
	}
	return value.Array(arr), nextIdx, nil
}

// decodeTabularRows greedily collects rows at depth that match the tabular
// disambiguation rule (isTabularRow) until n rows are gathered or a
// non-matching line is reached.
func (d *decoder) decodeTabularRows(idx, depth, n int, fields []string, delimByte byte) ([]value.Value, int, error) {
	arr := make([]value.Value, 0, n)
	for len(arr) < n {
		if d.opts.Strict && idx < len(d.lines) && d.lines[idx].blank {
			return nil, idx, toonerr.At(toonerr.BlankLineInArray, d.lines[idx].lineNo, 1, "blank line inside array body")
		}
		peeked := peekNonBlank(d.lines, idx)
		if peeked >= len(d.lines) || d.lines[peeked].depth != depth {
			idx = peeked
			break
		}
		ln := d.lines[peeked]
		if !isTabularRow(ln.content, delimByte) {
			idx = peeked
			break
		}
		toks := splitRespectingQuotes(ln.content, delimByte)
		if d.opts.Strict && len(toks) != len(fields) {
			return nil, peeked, toonerr.At(toonerr.RowWidthMismatch, ln.lineNo, 1, "row has %d values, header declares %d fields", len(toks), len(fields))
		}
		toks = padOrTrimStrings(toks, len(fields))
		obj := value.NewObject()
		for i, f := range fields {
			v, err := parsePrimitiveToken(toks[i])
			if err != nil {
				return nil, peeked, withPos(err, ln)
			}
			obj.Set(f, v)
		}
		arr = append(arr, value.Obj(obj))
		idx = peeked + 1
	}
	if d.opts.Strict && len(arr) != n {
		return nil, idx, toonerr.At(toonerr.ArrayLengthMismatch, lineNoAt(d.lines, idx), 1, "declared length %d, got %d rows", n, len(arr))
	}
	return padOrTrim(arr, n), idx, nil
}

// decodeListItems greedily collects "- " items at depth (array-of-arrays
// entries or mixed-expanded entries) until n are gathered.
func (d *decoder) decodeListItems(idx, depth, n int) ([]value.Value, int, error) {
	arr := make([]value.Value, 0, n)
	for len(arr) < n {
		if d.opts.Strict && idx < len(d.lines) && d.lines[idx].blank {
			return nil, idx, toonerr.At(toonerr.BlankLineInArray, d.lines[idx].lineNo, 1, "blank line inside array body")
		}
		peeked := peekNonBlank(d.lines, idx)
		if peeked >= len(d.lines) || d.lines[peeked].depth != depth {
			idx = peeked
			break
		}
		ln := d.lines[peeked]
		if ln.content != "-" && !strings.HasPrefix(ln.content, "- ") {
			idx = peeked
			break
		}
		v, nextIdx, err := d.decodeListItem(peeked, depth)
		if err != nil {
			return nil, peeked, err
		}
		arr = append(arr, v)
		idx = nextIdx
	}
	if d.opts.Strict && len(arr) != n {
		return nil, idx, toonerr.At(toonerr.ArrayLengthMismatch, lineNoAt(d.lines, idx), 1, "declared length %d, got %d items", n, len(arr))
	}
	return padOrTrim(arr, n), idx, nil
}

// decodeListItem parses one "-" production at idx (whose own depth is
// depth). An object value's first field rides the hyphen line itself; this
// mirrors the encoder's depth+1 virtual-encoding trick in reverse by
// treating that field as though it lived at depth+1, so its own nested
// body (if any) naturally lands at depth+2.
func (d *decoder) decodeListItem(idx, depth int) (value.Value, int, error) {
	ln := d.lines[idx]
	rest := trimLeftSpace(strings.TrimPrefix(ln.content, "-"))

	if rest == "" {
		return value.Obj(value.NewObject()), idx + 1, nil
	}

	if rest[0] == '[' {
		hdr, err := parseFieldHeader(rest)
		if err != nil {
			return value.Value{}, idx, withPos(err, ln)
		}
		return d.decodeArrayFromHeader(idx, depth, hdr)
	}

	if containsUnquotedColon(rest) {
		hdr, err := parseFieldHeader(rest)
		if err != nil {
			return value.Value{}, idx, withPos(err, ln)
		}
		if !hdr.HasKey {
			return value.Value{}, idx, toonerr.At(toonerr.InvalidListItem, ln.lineNo, 1, "list item object field missing key")
		}
		fieldDepth := depth + 1
		firstVal, nextIdx, err := d.decodeFieldValue(idx, fieldDepth, hdr)
		if err != nil {
			return value.Value{}, idx, err
		}
		obj := value.NewObject()
		obj.Set(hdr.Key, firstVal)

		restIdx := peekNonBlank(d.lines, nextIdx)
		if restIdx < len(d.lines) && d.lines[restIdx].depth == fieldDepth {
			more, finalIdx, err := d.decodeObjectAt(restIdx, fieldDepth)
			if err != nil {
				return value.Value{}, idx, err
			}
			for _, k := range more.Keys() {
				v, _ := more.Get(k)
				obj.Set(k, v)
			}
			return value.Obj(obj), finalIdx, nil
		}
		return value.Obj(obj), nextIdx, nil
	}

	v, err := parsePrimitiveToken(rest)
	if err != nil {
		return value.Value{}, idx, withPos(err, ln)
	}
	return v, idx + 1, nil
}

func padOrTrim(arr []value.Value, n int) []value.Value {
	if len(arr) == n {
		return arr
	}
	if len(arr) > n {
		return arr[:n]
	}
	for len(arr) < n {
		arr = append(arr, value.Null())
	}
	return arr
}

func padOrTrimStrings(toks []string, n int) []string {
	if len(toks) == n {
		return toks
	}
	if len(toks) > n {
		return toks[:n]
	}
	for len(toks) < n {
		toks = append(toks, "null")
	}
	return toks
}

func lineNoAt(lines []line, idx int) int {
	if idx < len(lines) {
		return lines[idx].lineNo
	}
	if len(lines) == 0 {
		return 0
	}
	return lines[len(lines)-1].lineNo
}

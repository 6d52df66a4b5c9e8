package decode

import (
	"github.com/k0kubun/toon/toonerr"
	"github.com/k0kubun/toon/value"
	"github.com/k0kubun/toon/wire"
)

// parsePrimitiveToken parses a single token from a primitive position: a
// quoted string, the null/true/false literals, a number, or (unquoted and
// unrecognized) a verbatim string per spec section 4.2's "bare string"
// fallback.
func parsePrimitiveToken(tok string) (value.Value, error) {
	if tok == "" {
		return value.Str(""), nil
	}
	if tok[0] == '"' {
		if len(tok) < 2 || tok[len(tok)-1] != '"' {
			return value.Value{}, toonerr.New(toonerr.UnterminatedString, "unterminated quoted token %q", tok)
		}
		s, err := wire.Unescape(tok[1 : len(tok)-1])
		if err != nil {
			return value.Value{}, err
		}
		return value.Str(s), nil
	}
	switch tok {
	case "null":
		return value.Null(), nil
	case "true":
		return value.Bool(true), nil
	case "false":
		return value.Bool(false), nil
	}
	if i, f, isFloat, ok := wire.ParseNumber(tok); ok {
		if isFloat {
			return value.Float(f), nil
		}
		return value.Int(i), nil
	}
	return value.Str(tok), nil
}

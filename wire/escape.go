package wire

import (
	"strings"

	"github.com/k0kubun/toon/toonerr"
)

// Escape maps each occurrence of the five permitted special bytes to its
// two-character escape sequence (spec section 4.1) and passes every other
// byte through unchanged. No Unicode escapes are produced.
func Escape(s string) string {
	if !strings.ContainsAny(s, "\\\"\n\r\t") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 8)
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// Unescape walks s left to right, resolving the five permitted escape
// sequences and rejecting anything else. s is the interior of a
// double-quoted string token, with the surrounding quotes already
// stripped.
func Unescape(s string) (string, error) {
	if !strings.ContainsRune(s, '\\') {
		return s, nil
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' {
			b.WriteByte(c)
			continue
		}
		if i+1 >= len(s) {
			return "", toonerr.New(toonerr.UnterminatedString, "trailing backslash in quoted string")
		}
		i++
		switch s[i] {
		case '\\':
			b.WriteByte('\\')
		case '"':
			b.WriteByte('"')
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		default:
			return "", toonerr.New(toonerr.InvalidEscape, "invalid escape sequence \\%c", s[i])
		}
	}
	return b.String(), nil
}

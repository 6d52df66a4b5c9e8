package decode

import (
	"strconv"
	"strings"

	"github.com/k0kubun/toon/toonerr"
	"github.com/k0kubun/toon/wire"
)

// fieldHeader is the result of parsing one key-bearing (or key-less) line:
// an object field, a list item's array header, or a root array header.
type fieldHeader struct {
	Key     string
	HasKey  bool
	IsArray bool
	ArrLen  int
	Delim   wire.Delimiter
	Fields  []string // non-nil iff a {field,list} was present
	Inline  string   // same-line content after ':', "" if none
}

func isKeyHeadByte(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z') || b == '_'
}

func isKeyTailByte(b byte) bool {
	return isKeyHeadByte(b) || (b >= '0' && b <= '9') || b == '.'
}

// findClosingQuote returns the index in s of the unescaped '"' that closes
// the quote opened at s[start], or -1 if unterminated.
func findClosingQuote(s string, start int) int {
	for i := start + 1; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case '"':
			return i
		}
	}
	return -1
}

// parseKeyPrefix consumes an optional key token (quoted or bare) from the
// front of content, returning the remainder unconsumed.
func parseKeyPrefix(content string) (key string, hasKey bool, rest string, err error) {
	if content == "" {
		return "", false, content, nil
	}
	if content[0] == '"' {
		end := findClosingQuote(content, 0)
		if end == -1 {
			return "", false, "", toonerr.New(toonerr.UnterminatedString, "unterminated quoted key in %q", content)
		}
		k, uerr := wire.Unescape(content[1:end])
		if uerr != nil {
			return "", false, "", uerr
		}
		return k, true, content[end+1:], nil
	}
	if isKeyHeadByte(content[0]) {
		i := 1
		for i < len(content) && isKeyTailByte(content[i]) {
			i++
		}
		return content[:i], true, content[i:], nil
	}
	return "", false, content, nil
}

// parseArrayHeader parses an array header starting at rest[0] == '['. It
// returns the declared length, local delimiter, optional field list, and
// whatever trailing text follows the closing bracket/braces (the caller
// is responsible for finding the ':' in that tail).
func parseArrayHeader(rest string) (n int, delim wire.Delimiter, fields []string, tail string, err error) {
	closeIdx := strings.IndexByte(rest, ']')
	if closeIdx == -1 {
		return 0, 0, nil, "", toonerr.New(toonerr.InvalidArrayHeader, "array header missing ']' in %q", rest)
	}
	inner := rest[1:closeIdx]
	delimByte := byte(0)
	digits := inner
	if len(inner) > 0 {
		if last := inner[len(inner)-1]; last == '\t' || last == '|' {
			delimByte = last
			digits = inner[:len(inner)-1]
		}
	}
	if digits == "" || !allDigits(digits) {
		return 0, 0, nil, "", toonerr.New(toonerr.InvalidArrayHeader, "invalid array length %q", inner)
	}
	n, convErr := strconv.Atoi(digits)
	if convErr != nil {
		return 0, 0, nil, "", toonerr.New(toonerr.InvalidArrayHeader, "invalid array length %q", digits)
	}
	delim = wire.DelimiterFromHeaderByte(delimByte)

	after := rest[closeIdx+1:]
	if len(after) > 0 && after[0] == '{' {
		braceBody := after[1:]
		closeBrace := findUnquoted(braceBody, '}')
		if closeBrace == -1 {
			return 0, 0, nil, "", toonerr.New(toonerr.InvalidArrayHeader, "field list missing '}' in %q", rest)
		}
		fieldsStr := braceBody[:closeBrace]
		rawFields := splitRespectingQuotes(fieldsStr, delim.Byte())
		fields = make([]string, len(rawFields))
		for i, rf := range rawFields {
			k, _, trailing, kerr := parseKeyPrefix(rf)
			if kerr != nil {
				return 0, 0, nil, "", kerr
			}
			if trailing != "" {
				return 0, 0, nil, "", toonerr.New(toonerr.InvalidKey, "invalid field name %q", rf)
			}
			fields[i] = k
		}
		after = braceBody[closeBrace+1:]
	}
	return n, delim, fields, after, nil
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func trimLeftSpace(s string) string {
	i := 0
	for i < len(s) && s[i] == ' ' {
		i++
	}
	return s[i:]
}

// parseFieldHeader parses a full field-position line's content (an object
// entry, or a list item's hyphen remainder) into a fieldHeader.
func parseFieldHeader(content string) (*fieldHeader, error) {
	key, hasKey, rest, err := parseKeyPrefix(content)
	if err != nil {
		return nil, err
	}
	if len(rest) > 0 && rest[0] == '[' {
		n, delim, fields, tail, aerr := parseArrayHeader(rest)
		if aerr != nil {
			return nil, aerr
		}
		if len(tail) == 0 || tail[0] != ':' {
			return nil, toonerr.New(toonerr.MissingColon, "array header missing ':' in %q", content)
		}
		return &fieldHeader{
			Key: key, HasKey: hasKey, IsArray: true,
			ArrLen: n, Delim: delim, Fields: fields,
			Inline: trimLeftSpace(tail[1:]),
		}, nil
	}
	if len(rest) > 0 && rest[0] == ':' {
		return &fieldHeader{
			Key: key, HasKey: hasKey,
			Inline: trimLeftSpace(rest[1:]),
		}, nil
	}
	return nil, toonerr.New(toonerr.MissingColon, "expected ':' or array header in %q", content)
}

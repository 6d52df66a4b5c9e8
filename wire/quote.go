package wire

import "strings"

const specialBytes = ":\"\\[]{}\n\r\t"

// NeedsQuoting implements the quoting oracle of spec section 4.3 for a
// string value token under the given active delimiter.
func NeedsQuoting(s string, delim Delimiter) bool {
	if s == "" {
		return true
	}
	if s[0] == ' ' || s[0] == '\t' || s[len(s)-1] == ' ' || s[len(s)-1] == '\t' {
		return true
	}
	switch s {
	case "true", "false", "null":
		return true
	}
	if LooksLikeNumber(s) {
		return true
	}
	if s[0] == '-' {
		return true
	}
	if strings.ContainsAny(s, specialBytes) {
		return true
	}
	if strings.IndexByte(s, delim.Byte()) >= 0 {
		return true
	}
	return false
}

// IsBareKey reports whether key matches [A-Za-z_][A-Za-z0-9_.]* and may be
// emitted without quoting.
func IsBareKey(key string) bool {
	if key == "" {
		return false
	}
	if !isKeyHead(key[0]) {
		return false
	}
	for i := 1; i < len(key); i++ {
		if !isKeyTail(key[i]) {
			return false
		}
	}
	return true
}

func isKeyHead(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z') || b == '_'
}

func isKeyTail(b byte) bool {
	return isKeyHead(b) || (b >= '0' && b <= '9') || b == '.'
}

// QuoteString renders s as a double-quoted, escaped token.
func QuoteString(s string) string {
	return "\"" + Escape(s) + "\""
}

// EmitString renders s as a primitive token: quoted if the oracle requires
// it under delim, otherwise verbatim.
func EmitString(s string, delim Delimiter) string {
	if NeedsQuoting(s, delim) {
		return QuoteString(s)
	}
	return s
}

// EmitKey renders key as a token: bare if it matches the identifier
// grammar, otherwise quoted using the same escape codec as string values.
func EmitKey(key string) string {
	if IsBareKey(key) {
		return key
	}
	return QuoteString(key)
}

package decode

// findUnquoted returns the index of the first unquoted occurrence of
// target in s, or -1. '"' toggles quote state and '\\' escapes the next
// byte while inside quotes, matching the scan rule spec section 4.6
// prescribes for tabular disambiguation and header/field parsing.
func findUnquoted(s string, target byte) int {
	inQuotes := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if inQuotes {
			if c == '\\' {
				i++
				continue
			}
			if c == '"' {
				inQuotes = false
			}
			continue
		}
		if c == '"' {
			inQuotes = true
			continue
		}
		if c == target {
			return i
		}
	}
	return -1
}

// isTabularRow implements the critical disambiguation rule of spec section
// 4.6: at the expected row depth, a line is a tabular row (as opposed to
// the first line of an outer sibling key) iff it contains no unquoted ':',
// or it contains an unquoted delimiter that appears before any unquoted
// ':'.
func isTabularRow(content string, delim byte) bool {
	colonIdx := findUnquoted(content, ':')
	if colonIdx == -1 {
		return true
	}
	delimIdx := findUnquoted(content, delim)
	return delimIdx != -1 && delimIdx < colonIdx
}

// containsUnquotedColon reports whether content has a ':' outside any
// quoted string.
func containsUnquotedColon(content string) bool {
	return findUnquoted(content, ':') != -1
}

// splitRespectingQuotes splits s on delim, treating '"'-quoted runs as
// atomic and leaving their surrounding quotes intact for the caller's
// primitive-token parser to strip and unescape. Each returned field is
// trimmed of surrounding spaces.
func splitRespectingQuotes(s string, delim byte) []string {
	var fields []string
	start := 0
	inQuotes := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if inQuotes {
			if c == '\\' {
				i++
				continue
			}
			if c == '"' {
				inQuotes = false
			}
			continue
		}
		switch c {
		case '"':
			inQuotes = true
		case delim:
			fields = append(fields, trimSpaceTab(s[start:i]))
			start = i + 1
		}
	}
	fields = append(fields, trimSpaceTab(s[start:]))
	return fields
}

func trimSpaceTab(s string) string {
	i, j := 0, len(s)
	for i < j && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	for j > i && (s[j-1] == ' ' || s[j-1] == '\t') {
		j--
	}
	return s[i:j]
}

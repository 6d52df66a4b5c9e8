package decode

import (
	"strings"

	"github.com/k0kubun/toon/toonerr"
)

// line is one pre-tokenized input line: its indentation depth, its
// trimmed content, and its 1-based position for error reporting (spec
// section 4.6, "Line pre-tokenization").
type line struct {
	depth   int
	content string
	lineNo  int
	blank   bool
}

// tokenizeLines splits data on '\n' and computes, for each line, its
// indentation depth and right-trimmed content. In strict mode a tab byte
// in the indentation prefix fails with TabIndentation, and a leading-space
// count not divisible by indentSize fails with InvalidIndentation. Both
// checks are skipped for blank lines, whose depth is meaningless.
func tokenizeLines(data []byte, indentSize int, strict bool) ([]line, error) {
	raw := strings.Split(string(data), "\n")
	lines := make([]line, 0, len(raw))
	for i, text := range raw {
		lineNo := i + 1

		spaces := 0
		sawTab := false
		j := 0
		for j < len(text) && (text[j] == ' ' || text[j] == '\t') {
			if text[j] == '\t' {
				sawTab = true
			} else {
				spaces++
			}
			j++
		}
		content := strings.TrimRight(text[j:], " \t")

		if content == "" {
			lines = append(lines, line{lineNo: lineNo, blank: true})
			continue
		}

		if sawTab && strict {
			return nil, toonerr.At(toonerr.TabIndentation, lineNo, 1, "tab byte in indentation")
		}
		if indentSize > 0 && spaces%indentSize != 0 && strict {
			return nil, toonerr.At(toonerr.InvalidIndentation, lineNo, 1, "indentation of %d spaces is not a multiple of %d", spaces, indentSize)
		}

		depth := 0
		if indentSize > 0 {
			depth = spaces / indentSize
		}
		lines = append(lines, line{depth: depth, content: content, lineNo: lineNo})
	}
	return lines, nil
}

// peekNonBlank returns the index of the first non-blank line at or after
// idx, or len(lines) if none remain.
func peekNonBlank(lines []line, idx int) int {
	for idx < len(lines) && lines[idx].blank {
		idx++
	}
	return idx
}

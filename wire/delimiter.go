package wire

// Delimiter identifies the byte used to separate inline values inside an
// array scope. Comma is the default and its header suffix is empty; tab
// and pipe carry their byte as the header suffix (spec section 4.5).
type Delimiter int

const (
	Comma Delimiter = iota
	Tab
	Pipe
)

// Byte returns the delimiter's separator byte.
func (d Delimiter) Byte() byte {
	switch d {
	case Tab:
		return '\t'
	case Pipe:
		return '|'
	default:
		return ','
	}
}

// HeaderSuffix returns the byte emitted immediately after the decimal
// length inside an array header's brackets, or empty for comma.
func (d Delimiter) HeaderSuffix() string {
	switch d {
	case Tab:
		return "\t"
	case Pipe:
		return "|"
	default:
		return ""
	}
}

// DelimiterFromHeaderByte maps a header-suffix byte (or 0 for none) back to
// a Delimiter.
func DelimiterFromHeaderByte(b byte) Delimiter {
	switch b {
	case '\t':
		return Tab
	case '|':
		return Pipe
	default:
		return Comma
	}
}

// DetectDelimiter is a convenience outside the codec core (spec_full
// "supplemented features"): it guesses an array delimiter from a file
// extension, for cmd/toon to use when the user didn't pass --delimiter
// explicitly. It never affects decode semantics itself.
func DetectDelimiter(filename string) Delimiter {
	n := len(filename)
	switch {
	case n >= 4 && filename[n-4:] == ".tsv":
		return Tab
	case n >= 4 && filename[n-4:] == ".psv":
		return Pipe
	default:
		return Comma
	}
}

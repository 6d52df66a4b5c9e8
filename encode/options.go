package encode

import "github.com/k0kubun/toon/wire"

// KeyFolding mirrors spec section 6: reserved, Off is the only
// implemented effect.
type KeyFolding int

const (
	KeyFoldingOff KeyFolding = iota
	KeyFoldingSafe
)

// Options configures Encode. The zero value is not valid; use
// DefaultOptions to get spec-mandated defaults.
type Options struct {
	// Indent is the number of spaces per indentation level. Default 2.
	Indent int
	// Delimiter is the document's active inline delimiter. Default Comma.
	Delimiter wire.Delimiter
	// KeyFolding is reserved (spec section 6); Off is the only
	// implemented behavior.
	KeyFolding KeyFolding
	// FlattenDepth is reserved alongside KeyFolding as a bound on
	// key-folding depth. Encode does not read it.
	FlattenDepth int
}

// DefaultOptions returns the spec-mandated defaults: 2-space indent,
// comma delimiter, key folding off.
func DefaultOptions() Options {
	return Options{
		Indent:    2,
		Delimiter: wire.Comma,
	}
}

package decode

// PathExpansion mirrors spec section 6: off or safe.
type PathExpansion int

const (
	PathExpansionOff PathExpansion = iota
	PathExpansionSafe
)

// Options configures Decode. Use DefaultOptions for the spec-mandated
// defaults.
type Options struct {
	// Indent is the expected number of spaces per indentation level.
	// Default 2.
	Indent int
	// Strict enables all length/width/indentation/blank-line checks
	// (spec section 6). Default true.
	Strict bool
	// ExpandPaths enables post-decode dotted-key expansion (spec
	// section 4.7). Default off.
	ExpandPaths PathExpansion
	// MaxDepth bounds recursion depth to protect against adversarial
	// input (spec section 9, "Cycle-safety"). Zero means no explicit
	// bound is enforced beyond Go's own stack limits; DefaultOptions
	// sets a generous finite bound.
	MaxDepth int
}

// DefaultOptions returns the spec-mandated defaults: 2-space indent,
// strict mode on, path expansion off.
func DefaultOptions() Options {
	return Options{
		Indent:   2,
		Strict:   true,
		MaxDepth: 1000,
	}
}

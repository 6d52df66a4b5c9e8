// Package testutil loads the codec's YAML round-trip fixtures, the way
// parser/parser_test.go reads the teacher's own tests*.yml files.
package testutil

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/k0kubun/toon/util"
)

// Case is one named fixture: a JSON document and the TOON text it must
// encode to (and decode back from).
type Case struct {
	JSON string `yaml:"json"`
	TOON string `yaml:"toon"`
	// Delimiter overrides the default comma delimiter for this case; one
	// of "", "comma", "tab", "pipe".
	Delimiter string `yaml:"delimiter"`
	// DecodeOnly marks a case that only exercises decode: the TOON text
	// is not what encode(json) would itself produce (e.g. a
	// leading-zero string or an exponent literal that the encoder would
	// never emit, per spec section 8's "Decode-only" scenarios).
	DecodeOnly bool `yaml:"decode_only"`
}

// LoadCases reads a cases.yaml file into a name-sorted slice of (name,
// Case) pairs, using util.CanonicalMapIter for deterministic order.
func LoadCases(path string) ([]NamedCase, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("testutil: reading %s: %w", path, err)
	}
	var raw map[string]Case
	if err := yaml.Unmarshal(buf, &raw); err != nil {
		return nil, fmt.Errorf("testutil: parsing %s: %w", path, err)
	}

	var out []NamedCase
	for name, c := range util.CanonicalMapIter(raw) {
		out = append(out, NamedCase{Name: name, Case: c})
	}
	return out, nil
}

// NamedCase pairs a fixture's map key with its Case body.
type NamedCase struct {
	Name string
	Case Case
}

package util

import (
	"io"

	"github.com/k0kubun/pp/v3"
)

// Dump pretty-prints v to w, for cmd/toon's --debug flag, which passes the
// encoding/json-shaped Go value (maps, slices, primitives) it is working on.
func Dump(w io.Writer, v any) {
	printer := pp.New()
	printer.SetOutput(w)
	printer.Println(v)
}

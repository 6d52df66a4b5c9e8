package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/jessevdk/go-flags"
	"golang.org/x/term"
	"gopkg.in/yaml.v2"

	"github.com/k0kubun/toon"
	"github.com/k0kubun/toon/decode"
	"github.com/k0kubun/toon/encode"
	"github.com/k0kubun/toon/util"
	"github.com/k0kubun/toon/wire"
)

var version string

type cliOptions struct {
	Decode      bool   `short:"d" long:"decode" description:"Decode TOON from input into JSON, instead of encoding JSON into TOON"`
	Indent      int    `long:"indent" description:"Spaces per indentation level" value-name:"n" default:"2"`
	Delimiter   string `long:"delimiter" description:"Inline delimiter: comma, tab, or pipe (default comma)" value-name:"name"`
	Strict      bool   `long:"strict" description:"Enable strict decode validation"`
	Lenient     bool   `long:"lenient" description:"Disable strict decode validation"`
	ExpandPaths bool   `long:"expand-paths" description:"Expand dotted object keys into nested objects after decode"`
	Config      string `long:"config" description:"Load option presets from a YAML config file" value-name:"path"`
	File        string `short:"f" long:"file" description:"Read input from the file, rather than stdin" value-name:"filename" default:"-"`
	Debug       bool   `long:"debug" description:"Pretty-print the intermediate value tree to stderr"`
	Help        bool   `long:"help" description:"Show this help"`
	Version     bool   `long:"version" description:"Show this version"`
}

// configPreset mirrors the shape of a .toonrc.yaml file: encode/decode
// option overrides a user keeps around instead of retyping flags.
type configPreset struct {
	Indent      int    `yaml:"indent"`
	Delimiter   string `yaml:"delimiter"`
	Strict      *bool  `yaml:"strict"`
	ExpandPaths bool   `yaml:"expand_paths"`
}

// parseOptions returns parsed flags and the input filename ("-" for
// stdin), mirroring cmd/psqldef's parseOptions shape: flags.NewParser
// feeding a plain options struct, with --help/--version short-circuiting.
func parseOptions(args []string) (cliOptions, string) {
	var opts cliOptions
	parser := flags.NewParser(&opts, flags.None)
	parser.Usage = "[option...] [file]"
	rest, err := parser.ParseArgs(args)
	if err != nil {
		log.Fatal(err)
	}

	if opts.Help {
		parser.WriteHelp(os.Stdout)
		os.Exit(0)
	}
	if opts.Version {
		fmt.Println(version)
		os.Exit(0)
	}

	if opts.Config != "" {
		applyConfigPreset(&opts, opts.Config)
	}

	filename := opts.File
	if len(rest) > 0 {
		filename = rest[0]
	}
	return opts, filename
}

func applyConfigPreset(opts *cliOptions, path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("reading config %s: %v", path, err)
	}
	var preset configPreset
	if err := yaml.Unmarshal(data, &preset); err != nil {
		log.Fatalf("parsing config %s: %v", path, err)
	}
	if preset.Indent > 0 {
		opts.Indent = preset.Indent
	}
	if preset.Delimiter != "" {
		opts.Delimiter = preset.Delimiter
	}
	if preset.Strict != nil {
		opts.Strict = *preset.Strict
		opts.Lenient = !*preset.Strict
	}
	if preset.ExpandPaths {
		opts.ExpandPaths = true
	}
}

func delimiterByName(name string) wire.Delimiter {
	switch name {
	case "tab":
		return wire.Tab
	case "pipe":
		return wire.Pipe
	default:
		return wire.Comma
	}
}

func main() {
	util.InitSlog()

	opts, filename := parseOptions(os.Args[1:])

	var input []byte
	var err error
	if filename == "-" || filename == "" {
		input, err = io.ReadAll(os.Stdin)
	} else {
		input, err = os.ReadFile(filename)
	}
	if err != nil {
		log.Fatal(err)
	}

	delim := delimiterByName(opts.Delimiter)
	if opts.Delimiter == "" && filename != "-" && filename != "" {
		delim = wire.DetectDelimiter(filename)
	}

	if opts.Decode {
		runDecode(input, opts)
		return
	}
	runEncode(input, opts, delim)
}

func runDecode(input []byte, opts cliOptions) {
	dopts := decode.DefaultOptions()
	dopts.Indent = opts.Indent
	dopts.Strict = !opts.Lenient
	if opts.ExpandPaths {
		dopts.ExpandPaths = decode.PathExpansionSafe
	}
	slog.Debug("decoding", "indent", dopts.Indent, "strict", dopts.Strict)

	var generic any
	if err := toon.Unmarshal(input, &generic, dopts); err != nil {
		log.Fatal(err)
	}
	if opts.Debug {
		dumpDebug(generic)
	}
	out, err := json.Marshal(generic)
	if err != nil {
		log.Fatal(err)
	}
	os.Stdout.Write(out)
	fmt.Println()
}

func runEncode(input []byte, opts cliOptions, delim wire.Delimiter) {
	eopts := encode.DefaultOptions()
	eopts.Indent = opts.Indent
	eopts.Delimiter = delim
	slog.Debug("encoding", "indent", eopts.Indent, "delimiter", opts.Delimiter)

	var generic any
	if err := json.Unmarshal(input, &generic); err != nil {
		log.Fatal(err)
	}
	if opts.Debug {
		dumpDebug(generic)
	}
	out, err := toon.Marshal(generic, eopts)
	if err != nil {
		log.Fatal(err)
	}
	os.Stdout.Write(out)
	fmt.Println()
}

// dumpDebug pretty-prints the intermediate decoded/parsed value with pp
// when stderr is a terminal, falling back to a plain write for piped
// output (e.g. under a test harness or CI log). For a top-level array it
// also prints one summary line per element first, so a long root array
// doesn't bury its shape under a single pp tree.
func dumpDebug(v any) {
	if arr, ok := v.([]any); ok {
		rows := util.TransformSlice(arr, describeElement)
		for i, row := range rows {
			fmt.Fprintf(os.Stderr, "[%d] %s\n", i, row)
		}
	}
	if term.IsTerminal(int(os.Stderr.Fd())) {
		util.Dump(os.Stderr, v)
		return
	}
	fmt.Fprintf(os.Stderr, "%+v\n", v)
}

// describeElement gives a one-word type label for a decoded JSON element,
// used by dumpDebug's per-row array summary.
func describeElement(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "bool"
	case float64:
		return "number"
	case string:
		return "string"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return "unknown"
	}
}

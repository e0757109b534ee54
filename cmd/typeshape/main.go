package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/rs/zerolog"

	typeshape "github.com/ryzmae/typeshape"
	"github.com/ryzmae/typeshape/deep"
	"github.com/ryzmae/typeshape/jsonschema"

	json "github.com/goccy/go-json"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	sub := os.Args[1]
	switch sub {
	case "convert":
		convertCmd(os.Args[2:])
	case "jsonschema":
		jsonschemaCmd(os.Args[2:])
	case "keys":
		keysCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "typeshape CLI\n\nUsage:\n  typeshape convert -i schema.yaml -o schema.json\n  typeshape jsonschema -i schema.yaml -o out.json\n  typeshape keys -i schema.yaml\n\nNotes:\n  - Input/output formats are inferred from the file extension (.yaml/.yml/.json).")
}

func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
}

// commonFlags registers the flags every subcommand shares.
func commonFlags(fs *flag.FlagSet, in *string, verbose, debug *bool) {
	fs.StringVar(in, "i", "", "input descriptor document (.yaml/.yml/.json)")
	fs.BoolVar(verbose, "v", false, "enable verbose logs")
	fs.BoolVar(debug, "debug", false, "dump the decoded descriptor tree")
}

func convertCmd(args []string) {
	fs := flag.NewFlagSet("convert", flag.ExitOnError)
	var in, out string
	var verbose, debug bool
	commonFlags(fs, &in, &verbose, &debug)
	fs.StringVar(&out, "o", "", "output filename (.yaml/.yml/.json)")
	_ = fs.Parse(args)
	if in == "" || out == "" {
		fs.Usage()
		os.Exit(2)
	}
	log := newLogger(verbose)

	d := loadDescriptor(log, in, debug)
	var data []byte
	var err error
	switch ext(out) {
	case "yaml":
		data, err = typeshape.EncodeYAML(d)
	case "json":
		data, err = typeshape.EncodeJSONIndent(d)
	default:
		fatalf("unsupported output extension: %s", out)
	}
	if err != nil {
		fatalf("encode: %v", err)
	}
	writeOut(log, out, data)
}

func jsonschemaCmd(args []string) {
	fs := flag.NewFlagSet("jsonschema", flag.ExitOnError)
	var in, out string
	var verbose, debug bool
	commonFlags(fs, &in, &verbose, &debug)
	fs.StringVar(&out, "o", "", "output filename (defaults to stdout)")
	_ = fs.Parse(args)
	if in == "" {
		fs.Usage()
		os.Exit(2)
	}
	log := newLogger(verbose)

	d := loadDescriptor(log, in, debug)
	s, err := jsonschema.FromDescriptor(d)
	if err != nil {
		fatalf("jsonschema: %v", err)
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		fatalf("encode: %v", err)
	}
	if out == "" {
		fmt.Println(string(data))
		return
	}
	writeOut(log, out, data)
}

func keysCmd(args []string) {
	fs := flag.NewFlagSet("keys", flag.ExitOnError)
	var in string
	var verbose, debug bool
	commonFlags(fs, &in, &verbose, &debug)
	_ = fs.Parse(args)
	if in == "" {
		fs.Usage()
		os.Exit(2)
	}
	log := newLogger(verbose)

	d := loadDescriptor(log, in, debug)
	r, ok := d.(*typeshape.Record)
	if !ok {
		fatalf("keys: document root is %s, want record", d.Kind())
	}
	for _, k := range deep.Keys(r) {
		fmt.Println(k)
	}
}

func loadDescriptor(log zerolog.Logger, path string, debug bool) typeshape.Descriptor {
	data, err := os.ReadFile(path)
	if err != nil {
		fatalf("reading input: %v", err)
	}
	var d typeshape.Descriptor
	switch ext(path) {
	case "yaml":
		d, err = typeshape.DecodeYAML(data)
	case "json":
		d, err = typeshape.DecodeJSON(data)
	default:
		fatalf("unsupported input extension: %s", path)
	}
	if err != nil {
		fatalf("decoding %s: %v", path, err)
	}
	log.Debug().Str("input", path).Str("kind", d.Kind().String()).Msg("decoded descriptor")
	if debug {
		spew.Fdump(os.Stderr, d)
	}
	return d
}

func writeOut(log zerolog.Logger, out string, data []byte) {
	if dir := filepath.Dir(out); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			fatalf("creating output dir: %v", err)
		}
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		fatalf("writing output: %v", err)
	}
	log.Debug().Str("output", out).Int("bytes", len(data)).Msg("wrote document")
}

func ext(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml"
	case ".json":
		return "json"
	}
	return ""
}

func fatalf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}

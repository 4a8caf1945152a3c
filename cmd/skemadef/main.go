package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/reoring/skemadef/jsonschema"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	sub := os.Args[1]
	switch sub {
	case "dedup":
		dedupCmd(os.Args[2:])
	case "validate":
		validateCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "skemadef CLI\n\nUsage:\n  skemadef dedup -i schema.json [-o out.json] [-format json|yaml] [-no-dedup]\n  skemadef validate -schema schema.json -data doc.json")
}

// dedupCmd reads a schema document, extracts repeated object sub-schemas
// into $defs, and writes the rewritten document.
func dedupCmd(args []string) {
	fs := flag.NewFlagSet("dedup", flag.ExitOnError)
	var in string
	var out string
	var format string
	var noDedup bool
	fs.StringVar(&in, "i", "", "input schema file (json or yaml by extension)")
	fs.StringVar(&out, "o", "", "output filename (default stdout)")
	fs.StringVar(&format, "format", "json", "output format: json or yaml")
	fs.BoolVar(&noDedup, "no-dedup", false, "pass the document through unchanged")
	_ = fs.Parse(args)
	if in == "" {
		fs.Usage()
		os.Exit(2)
	}

	doc, err := readDocument(in)
	if err != nil {
		fatalf("reading %s: %v", in, err)
	}

	var opts []jsonschema.DefinitionOption
	if noDedup {
		opts = append(opts, jsonschema.NoDedup())
	}
	doc = jsonschema.Definition(doc, opts...)

	var data []byte
	switch format {
	case "json":
		data, err = jsonschema.EncodeJSON(doc)
	case "yaml":
		data, err = jsonschema.EncodeYAML(doc)
	default:
		fatalf("unknown format %q", format)
	}
	if err != nil {
		fatalf("encoding: %v", err)
	}
	if format == "json" {
		data = append(data, '\n')
	}

	if out == "" {
		_, _ = os.Stdout.Write(data)
		return
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		fatalf("writing output: %v", err)
	}
}

// validateCmd checks a JSON document against a schema and reports each
// violation on stderr.
func validateCmd(args []string) {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	var schemaPath string
	var dataPath string
	fs.StringVar(&schemaPath, "schema", "", "schema file (json or yaml by extension)")
	fs.StringVar(&dataPath, "data", "", "JSON document to validate")
	_ = fs.Parse(args)
	if schemaPath == "" || dataPath == "" {
		fs.Usage()
		os.Exit(2)
	}

	doc, err := readDocument(schemaPath)
	if err != nil {
		fatalf("reading %s: %v", schemaPath, err)
	}

	raw, err := os.ReadFile(dataPath)
	if err != nil {
		fatalf("reading %s: %v", dataPath, err)
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		fatalf("parsing %s: %v", dataPath, err)
	}

	if err := jsonschema.Validate(doc, v); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println("ok")
}

func readDocument(path string) (jsonschema.Value, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return jsonschema.Null(), err
	}
	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		return jsonschema.DecodeYAMLDocument(raw)
	}
	return jsonschema.DecodeDocument(raw)
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	j "github.com/goccy/go-json"
	"github.com/rs/zerolog"

	vs "github.com/reoring/valueschema"
	"github.com/reoring/valueschema/appliers"
	"github.com/reoring/valueschema/definition"
	"github.com/reoring/valueschema/i18n"
	js "github.com/reoring/valueschema/jsonschema"
	"github.com/reoring/valueschema/source"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "valueschema CLI\n\nUsage:\n  valueschema adjust -schema def.yaml [-in data.json|-] [-format json|yaml] [-collect] [-lang en|ja] [-v]\n  valueschema jsonschema -schema def.yaml\n  valueschema kinds")
}

// run executes one subcommand and returns the process exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		usage(stderr)
		return 2
	}
	switch args[0] {
	case "adjust":
		return adjustCmd(args[1:], stdin, stdout, stderr)
	case "jsonschema":
		return jsonSchemaCmd(args[1:], stdout, stderr)
	case "kinds":
		return kindsCmd(stdout)
	default:
		usage(stderr)
		return 2
	}
}

func newLogger(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).Level(level).With().Timestamp().Logger()
}

func adjustCmd(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("adjust", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var schemaPath, in, format, lang string
	var collect, verbose bool
	fs.StringVar(&schemaPath, "schema", "", "schema definition file (yaml or json)")
	fs.StringVar(&in, "in", "-", "input document, - for stdin")
	fs.StringVar(&format, "format", "", "input format: json or yaml (default: from -in extension, else json)")
	fs.BoolVar(&collect, "collect", false, "report every field error instead of stopping at the first")
	fs.StringVar(&lang, "lang", "en", "message language: en or ja")
	fs.BoolVar(&verbose, "v", false, "enable debug logs")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if schemaPath == "" {
		fs.Usage()
		return 2
	}

	logger := newLogger(stderr, verbose)
	if verbose {
		vs.SetLogger(logger)
		defer vs.SetLogger(zerolog.Nop())
	}
	i18n.SetLanguage(lang)
	defer i18n.SetLanguage("en")

	schemas, err := loadSchemas(schemaPath)
	if err != nil {
		logger.Error().Err(err).Msg("load schema")
		return 1
	}

	data, err := readInput(in, format, stdin)
	if err != nil {
		logger.Error().Err(err).Str("in", in).Msg("read input")
		return 1
	}

	var handlers []vs.ErrorHandler
	var errs vs.Errors
	if collect {
		handlers = append(handlers, vs.Collect(&errs))
	}
	out, err := vs.Adjust(data, schemas, handlers...)
	if err != nil {
		es, ok := vs.AsErrors(err)
		if !ok {
			logger.Error().Err(err).Msg("adjust")
			return 1
		}
		for _, e := range es {
			logger.Error().Str("cause", string(e.Cause)).Str("path", e.KeyStack.Pointer()).
				Interface("value", e.Value).Msg(i18n.T(string(e.Cause), nil))
		}
		return 1
	}
	logger.Debug().Int("fields", len(out)).Msg("adjusted")
	if err := writeJSON(stdout, out); err != nil {
		logger.Error().Err(err).Msg("write output")
		return 1
	}
	return 0
}

func jsonSchemaCmd(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("jsonschema", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var schemaPath string
	fs.StringVar(&schemaPath, "schema", "", "schema definition file (yaml or json)")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if schemaPath == "" {
		fs.Usage()
		return 2
	}
	logger := newLogger(stderr, false)

	schemas, err := loadSchemas(schemaPath)
	if err != nil {
		logger.Error().Err(err).Msg("load schema")
		return 1
	}
	if err := writeJSON(stdout, recordSchema(schemas)); err != nil {
		logger.Error().Err(err).Msg("write output")
		return 1
	}
	return 0
}

func kindsCmd(stdout io.Writer) int {
	for _, name := range vs.KindNames() {
		k, _ := vs.LookupKind(name)
		fmt.Fprintf(stdout, "%s\t%s\n", name, strings.Join(k.Features(), ","))
	}
	return 0
}

func loadSchemas(path string) (map[string]*vs.Schema, error) {
	doc, err := definition.Load(path)
	if err != nil {
		return nil, err
	}
	return doc.Build()
}

func readInput(in, format string, stdin io.Reader) (any, error) {
	var b []byte
	var err error
	if in == "-" {
		b, err = io.ReadAll(stdin)
	} else {
		b, err = os.ReadFile(in)
		if format == "" {
			format = filepath.Ext(in)
		}
	}
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(b))) == 0 {
		return nil, errors.New("empty input")
	}
	return source.Decode(format, b)
}

// recordSchema describes the top-level record: a field is required unless its schema has
// a default.
func recordSchema(schemas map[string]*vs.Schema) *js.Schema {
	out := &js.Schema{Type: "object", Properties: map[string]*js.Schema{}}
	for name, s := range schemas {
		out.Properties[name] = s.JSONSchema()
		if c, ok := vs.ConfigOf(s, appliers.IfUndefined); ok && !c.Set {
			out.Required = append(out.Required, name)
		}
	}
	sort.Strings(out.Required)
	return out
}

func writeJSON(w io.Writer, v any) error {
	b, err := j.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}

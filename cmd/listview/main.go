// Package main provides a command line tool resolving list view indicators of records
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/go-pkgz/listview"
	"github.com/go-pkgz/listview/i18n"
	"github.com/go-pkgz/listview/internal/render"
	"github.com/go-pkgz/listview/servicerequest"
)

// allow mocking os.Exit and outputs in tests
var (
	osExit           = os.Exit
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// envConfig holds defaults taken from the environment, flags override them
type envConfig struct {
	Lang    string `env:"LISTVIEW_LANG"   envDefault:"en-US"`
	Format  string `env:"LISTVIEW_FORMAT" envDefault:"text"`
	Debug   bool   `env:"LISTVIEW_DEBUG"`
	NoColor string `env:"NO_COLOR"`
}

type options struct {
	docType   string
	file      string
	lang      string
	format    string
	cancelled bool
	settings  bool
	noColor   bool
	debug     bool
}

func main() {
	var cfg envConfig
	if err := env.Parse(&cfg); err != nil {
		fmt.Fprintf(stdout, "parse env: %v\n", err)
		osExit(1)
		return
	}

	var opts options
	flag.StringVar(&opts.docType, "doctype", servicerequest.DocType, "document type")
	flag.StringVar(&opts.file, "file", "", "json or yaml file with records")
	flag.StringVar(&opts.lang, "lang", cfg.Lang, "display language")
	flag.StringVar(&opts.format, "format", cfg.Format, "output format: text, json or yaml")
	flag.BoolVar(&opts.cancelled, "cancelled", false, "include cancelled records")
	flag.BoolVar(&opts.settings, "settings", false, "print the list view settings of the doctype")
	flag.BoolVar(&opts.noColor, "no-color", cfg.NoColor != "", "disable colored output")
	flag.BoolVar(&opts.debug, "debug", cfg.Debug, "debug logging")
	helpFlag := flag.Bool("help", false, "show usage")
	versionFlag := flag.Bool("version", false, "print version")
	flag.Parse()

	// collect build info (version), new in go 1.24
	buildInfo := "dev"
	if info, ok := debug.ReadBuildInfo(); ok {
		if info.Main.Version != "" {
			buildInfo = info.Main.Version
		}
	}

	if *helpFlag {
		showUsage()
		osExit(0)
		return
	}
	if *versionFlag {
		fmt.Fprintf(stdout, "listview %s\n", buildInfo)
		osExit(0)
		return
	}

	if err := run(opts, flag.Args()); err != nil {
		fmt.Fprintf(stdout, "%v\n", err)
		osExit(1)
		return
	}
}

func run(opts options, statuses []string) error {
	level := slog.LevelInfo
	if opts.debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	switch opts.format {
	case "text", "json", "yaml":
	default:
		return fmt.Errorf("unknown format %q, want text, json or yaml", opts.format)
	}

	registry, err := newRegistry()
	if err != nil {
		return err
	}
	settings, ok := registry.Lookup(opts.docType)
	if !ok {
		return fmt.Errorf("unknown doctype %q, known: %s", opts.docType, strings.Join(registry.DocTypes(), ", "))
	}

	if opts.settings {
		format := opts.format
		if format == "text" {
			format = "yaml"
		}
		return encode(format, settings)
	}

	if opts.file == "" && len(statuses) == 0 {
		return fmt.Errorf("nothing to resolve, pass statuses or -file")
	}

	bundle, err := i18n.LoadEmbedded()
	if err != nil {
		return fmt.Errorf("load translations: %w", err)
	}
	tr := bundle.Translator(opts.lang)
	logger.Debug("translator", "requested", opts.lang, "locale", tr.Locale())

	view, err := listview.NewView(settings, tr)
	if err != nil {
		return err
	}

	colored := opts.format == "text" && !opts.noColor && render.Detect(stdout)
	r := render.New(stdout, colored)

	if opts.file != "" {
		records, err := readRecords(opts.file)
		if err != nil {
			return err
		}
		rows, err := view.Rows(records, opts.cancelled)
		if err != nil {
			return fmt.Errorf("%s: %w", opts.file, err)
		}
		logger.Debug("rows", "file", opts.file, "records", len(records), "listed", len(rows))
		for _, row := range rows {
			if row.Indicator.Color.IsZero() {
				logger.Debug("no indicator color", "name", row.Name, "label", row.Indicator.Label)
			}
		}
		if opts.format != "text" {
			return encode(opts.format, rows)
		}
		return r.Rows(tr.Translate(settings.DocType), settings.AddFields, rows)
	}

	indicators := make([]listview.Indicator, 0, len(statuses))
	for _, status := range statuses {
		ind := view.Resolve(listview.Record{settings.StatusField: status})
		if ind.Color.IsZero() {
			logger.Debug("no indicator color", "status", status)
		}
		indicators = append(indicators, ind)
	}
	if opts.format != "text" {
		return encode(opts.format, indicators)
	}
	for _, ind := range indicators {
		if _, err := fmt.Fprintf(stdout, "%s\t%s\n", r.Badge(ind), ind.Filter); err != nil {
			return fmt.Errorf("write indicator: %w", err)
		}
	}
	return nil
}

// newRegistry registers the list view settings of all known doctypes
func newRegistry() (*listview.Registry, error) {
	registry := listview.NewRegistry()
	if err := registry.Register(servicerequest.Settings()); err != nil {
		return nil, err
	}
	return registry, nil
}

// readRecords loads a json array or yaml sequence of records, picked by file extension
func readRecords(path string) ([]listview.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read records: %w", err)
	}

	var records []listview.Record
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &records)
	default:
		err = json.Unmarshal(data, &records)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse records %s: %w", path, err)
	}
	return records, nil
}

func encode(format string, v any) error {
	if format == "yaml" {
		enc := yaml.NewEncoder(stdout)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	}
	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

func showUsage() {
	fmt.Fprintf(stdout, "usage: listview [flags] [status...]\n")
	fmt.Fprintf(stdout, "  -doctype <name>   document type (default: %s)\n", servicerequest.DocType)
	fmt.Fprintf(stdout, "  -file <path>      json or yaml file with records\n")
	fmt.Fprintf(stdout, "  -lang <locale>    display language, env LISTVIEW_LANG (default: en-US)\n")
	fmt.Fprintf(stdout, "  -format <format>  text, json or yaml, env LISTVIEW_FORMAT (default: text)\n")
	fmt.Fprintf(stdout, "  -cancelled        include cancelled records\n")
	fmt.Fprintf(stdout, "  -settings         print the list view settings of the doctype\n")
	fmt.Fprintf(stdout, "  -no-color         disable colored output, env NO_COLOR\n")
	fmt.Fprintf(stdout, "  -debug            debug logging, env LISTVIEW_DEBUG\n")
	fmt.Fprintf(stdout, "  -version          print version\n")
}

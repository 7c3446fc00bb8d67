// Package generator provides a code generator for enum types. It reads Go source files and extracts enum values
// to generate a new type with text, sql, bson and yaml marshaling support. With indicator generation enabled it
// also maps every value to a list view indicator color, taken from the "enum:indicator" directive in the trailing
// comment of each constant.
package generator

import (
	"bytes"
	_ "embed"
	"fmt"
	"go/ast"
	"go/format"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"text/template"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/go-pkgz/listview"
)

var titleCaser = cases.Title(language.English)

// Generator holds the data needed for enum code generation
type Generator struct {
	Type      string                // the private type name (e.g., "status")
	Path      string                // output directory path
	values    map[string]int        // const values found
	meta      map[string]directives // trailing comment directives per const
	pkgName   string                // package name from source file
	typeFound bool                  // type declaration seen while parsing
	lowerCase bool                  // use lower case for marshal/unmarshal
	sql       bool                  // generate driver.Valuer and sql.Scanner
	bson      bool                  // generate bson value marshaling
	yaml      bool                  // generate yaml marshaling
	indicator bool                  // generate Color() from enum:indicator directives
}

// Value represents a single enum value
type Value struct {
	PrivateName string // e.g., "statusOnHold"
	PublicName  string // e.g., "StatusOnHold"
	Name        string // e.g., "On Hold"
	Index       int    // enum index value
	Indicator   string // e.g., "ColorYellow", empty unless indicator generation is on
}

// directives are the "enum:key=value" pairs of a const trailing comment
type directives map[string]string

// New creates a new Generator instance
func New(typeName, path string) (*Generator, error) {
	if typeName == "" {
		return nil, fmt.Errorf("type name is required")
	}
	if first, _ := utf8.DecodeRuneInString(typeName); !unicode.IsLower(first) {
		return nil, fmt.Errorf("type name %q is invalid, first letter must be lowercase (private)", typeName)
	}
	if !isValidGoIdentifier(typeName) {
		return nil, fmt.Errorf("type name %q is not a valid identifier", typeName)
	}

	return &Generator{
		Type:   typeName,
		Path:   path,
		values: make(map[string]int),
		meta:   make(map[string]directives),
	}, nil
}

// SetLowerCase sets the lower case flag for marshal/unmarshal values
func (g *Generator) SetLowerCase(lower bool) {
	g.lowerCase = lower
}

// SetGenerateSQL enables driver.Valuer and sql.Scanner methods
func (g *Generator) SetGenerateSQL(v bool) {
	g.sql = v
}

// SetGenerateBSON enables MarshalBSONValue and UnmarshalBSONValue methods
func (g *Generator) SetGenerateBSON(v bool) {
	g.bson = v
}

// SetGenerateYAML enables MarshalYAML and UnmarshalYAML methods
func (g *Generator) SetGenerateYAML(v bool) {
	g.yaml = v
}

// SetGenerateIndicator enables the Color method. Every value must carry an enum:indicator directive.
func (g *Generator) SetGenerateIndicator(v bool) {
	g.indicator = v
}

// Parse reads the source directory and extracts enum information. it looks for const values
// that start with the enum type name, for example if type is "status", it will find all const values
// that start with "status". The values map will contain the const name and its position in
// declaration order, for example: {"statusScheduled": 0, "statusActive": 1}
func (g *Generator) Parse(dir string) error {
	fset := token.NewFileSet()
	pkgs, err := parser.ParseDir(fset, dir, func(fi os.FileInfo) bool {
		return !strings.HasSuffix(fi.Name(), "_test.go")
	}, parser.ParseComments)
	if err != nil {
		return fmt.Errorf("failed to parse directory: %w", err)
	}

	// process each package
	for _, pkg := range pkgs {
		g.pkgName = pkg.Name
		for _, file := range pkg.Files {
			if err := g.parseFile(file); err != nil {
				return err
			}
		}
	}

	if !g.typeFound {
		return fmt.Errorf("type %s not found in %s", g.Type, dir)
	}
	if len(g.values) == 0 {
		return fmt.Errorf("no const values found for type %s", g.Type)
	}

	return nil
}

// parseFile processes a single file for enum declarations
func (g *Generator) parseFile(file *ast.File) error {
	var parseErr error

	parseConstBlock := func(decl *ast.GenDecl) {
		// extracts enum values from a const block
		for _, spec := range decl.Specs {
			vspec, ok := spec.(*ast.ValueSpec)
			if !ok || len(vspec.Names) == 0 {
				continue
			}

			// check if first name has our type prefix
			if !strings.HasPrefix(vspec.Names[0].Name, g.Type) {
				continue
			}

			meta, err := parseDirectives(vspec.Comment)
			if err != nil && parseErr == nil {
				parseErr = fmt.Errorf("const %s: %w", vspec.Names[0].Name, err)
			}

			// process all names in this const group
			for _, name := range vspec.Names {
				if name.Name == "_" { // skip placeholder values
					continue
				}
				g.values[name.Name] = len(g.values)
				g.meta[name.Name] = meta
			}
		}
	}

	ast.Inspect(file, func(n ast.Node) bool {
		decl, ok := n.(*ast.GenDecl)
		if !ok {
			return true
		}
		switch decl.Tok {
		case token.CONST:
			parseConstBlock(decl)
		case token.TYPE:
			for _, spec := range decl.Specs {
				if ts, ok := spec.(*ast.TypeSpec); ok && ts.Name.Name == g.Type {
					g.typeFound = true
				}
			}
		}
		return true
	})

	return parseErr
}

// parseDirectives extracts enum:key=value pairs from a trailing comment. Values may be
// double-quoted to include spaces, e.g. enum:name="On Hold" enum:indicator=yellow.
func parseDirectives(group *ast.CommentGroup) (directives, error) {
	res := directives{}
	if group == nil {
		return res, nil
	}

	text := strings.TrimSpace(group.Text())
	for {
		idx := strings.Index(text, "enum:")
		if idx < 0 {
			return res, nil
		}
		text = text[idx+len("enum:"):]

		key, rest, ok := strings.Cut(text, "=")
		if !ok || key == "" || strings.ContainsAny(key, " \t") {
			return nil, fmt.Errorf("malformed directive %q", "enum:"+text)
		}

		var value string
		if strings.HasPrefix(rest, `"`) {
			quoted, err := strconv.QuotedPrefix(rest)
			if err != nil {
				return nil, fmt.Errorf("directive %s: %w", key, err)
			}
			if value, err = strconv.Unquote(quoted); err != nil {
				return nil, fmt.Errorf("directive %s: %w", key, err)
			}
			text = rest[len(quoted):]
		} else {
			value, text, _ = strings.Cut(rest, " ")
		}
		res[key] = value
	}
}

// Generate creates the enum code file. it takes the const values found in Parse and creates
// a new type with text marshaling support. the generated code includes:
//   - exported type with private name and value fields (e.g., Status{name: "Active", value: 1})
//   - string representation (String method)
//   - text marshaling (MarshalText/UnmarshalText methods)
//   - optional sql, bson and yaml marshaling
//   - optional indicator color (Color method, exhaustive over all values)
//   - parsing functions (Parse/Must variants)
//   - exported const values (e.g., StatusActive)
//   - helper functions to get all values and names in declaration order
func (g *Generator) Generate() error {
	names := make([]string, 0, len(g.values))
	for name := range g.values {
		names = append(names, name)
	}
	// declaration order
	sort.Slice(names, func(i, j int) bool { return g.values[names[i]] < g.values[names[j]] })

	palette := make(map[string]bool)
	for _, n := range listview.ColorNames() {
		palette[n] = true
	}

	values := make([]Value, 0, len(names))
	seen := make(map[string]string, len(names))
	public := exportedName(g.Type)
	for _, privateName := range names {
		// strip type prefix to get just the value name part (e.g., "Active" from "statusActive")
		nameWithoutPrefix := strings.TrimPrefix(privateName, g.Type)
		meta := g.meta[privateName]

		name, ok := meta["name"]
		if !ok {
			name = titleCaser.String(nameWithoutPrefix)
			if g.lowerCase {
				name = strings.ToLower(name)
			}
		}
		if prev, dup := seen[name]; dup {
			return fmt.Errorf("%s and %s share the name %q", prev, privateName, name)
		}
		seen[name] = privateName

		v := Value{
			PrivateName: privateName,
			PublicName:  public + exportedName(nameWithoutPrefix),
			Name:        name,
			Index:       g.values[privateName],
		}

		if g.indicator {
			color, ok := meta["indicator"]
			if !ok {
				return fmt.Errorf("%s has no indicator color, add an enum:indicator directive", privateName)
			}
			if !palette[color] {
				return fmt.Errorf("%s: unknown indicator color %q, want one of %s",
					privateName, color, strings.Join(listview.ColorNames(), ", "))
			}
			v.Indicator = "Color" + exportedName(color)
		}
		values = append(values, v)
	}

	// determine output package name: use directory name if path is set
	pkgName := g.pkgName
	if g.Path != "" {
		dir := filepath.Base(g.Path)
		// ensure package name is a valid go identifier
		if !isValidGoIdentifier(dir) {
			pkgName = "enum" // fallback to a safe name
		} else {
			pkgName = dir
		}
	}

	// prepare template data
	data := struct {
		Type              string
		Public            string
		Values            []Value
		Package           string
		GenerateSQL       bool
		GenerateBSON      bool
		GenerateYAML      bool
		GenerateIndicator bool
	}{
		Type:              g.Type,
		Public:            public,
		Values:            values,
		Package:           pkgName,
		GenerateSQL:       g.sql,
		GenerateBSON:      g.bson,
		GenerateYAML:      g.yaml,
		GenerateIndicator: g.indicator,
	}

	// execute template
	var buf bytes.Buffer
	if err := enumTemplate.Execute(&buf, data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	// format generated code
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("failed to format source: %w", err)
	}

	// ensure output directory exists
	if g.Path != "" {
		if err := os.MkdirAll(g.Path, 0o700); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	// write generated code to file
	outputName := filepath.Join(g.Path, strings.ToLower(g.Type)+"_enum.go")
	if err := os.WriteFile(outputName, src, 0o600); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	return nil
}

// exportedName upper-cases the first letter, keeping the rest as is ("jobStatus" -> "JobStatus")
func exportedName(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// isValidGoIdentifier checks if a string is a valid Go identifier:
// - must start with a letter or underscore
// - can contain letters, digits, and underscores
func isValidGoIdentifier(s string) bool {
	if s == "" {
		return false
	}

	for i, c := range s {
		if i == 0 {
			if !unicode.IsLetter(c) && c != '_' {
				return false
			}
		} else {
			if !unicode.IsLetter(c) && !unicode.IsDigit(c) && c != '_' {
				return false
			}
		}
	}
	return true
}

//go:embed enum.go.tmpl
var tmplt string

// template for the generated enum code, creates:
// - exported type with name and value fields
// - String method for fmt.Stringer
// - Marshal/Unmarshal for text, sql, bson and yaml
// - Color method for list view indicators
// - Parse function with error handling
// - Must variant that panics on error
// - exported const values
// - Values, Names and Iter helper functions
var enumTemplate = template.Must(template.New("enum").Parse(tmplt))

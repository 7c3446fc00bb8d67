// Package filter implements list view filter conditions. A condition is the host's
// "field,operator,value" triple, for example "status,=,Active". Conditions are compiled
// into checked AIP-160 expressions and evaluated against record fields.
package filter

import (
	"fmt"
	"strconv"
	"strings"

	"go.einride.tech/aip/filtering"
	expr "google.golang.org/genproto/googleapis/api/expr/v1alpha1"
)

// FieldType describes a supported filter field type.
type FieldType string

const (
	FieldString FieldType = "string"
	FieldInt    FieldType = "int"
)

// Fields defines filterable fields and their types.
type Fields map[string]FieldType

var operators = map[string]bool{"=": true, "!=": true, "<": true, "<=": true, ">": true, ">=": true}

// Condition is a single filter triple applied by the host list view
type Condition struct {
	Field    string
	Operator string
	Value    string
}

// Equal makes an equality condition
func Equal(field, value string) Condition {
	return Condition{Field: field, Operator: "=", Value: value}
}

// Parse reads a condition from its "field,op,value" form. The value is everything after
// the second comma and is kept verbatim.
func Parse(s string) (Condition, error) {
	parts := strings.SplitN(s, ",", 3)
	if len(parts) != 3 {
		return Condition{}, fmt.Errorf("invalid condition %q: want field,op,value", s)
	}
	c := Condition{Field: parts[0], Operator: parts[1], Value: parts[2]}
	if err := c.validate(); err != nil {
		return Condition{}, err
	}
	return c, nil
}

// String returns the "field,op,value" form
func (c Condition) String() string {
	return c.Field + "," + c.Operator + "," + c.Value
}

// MarshalText implements encoding.TextMarshaler
func (c Condition) MarshalText() ([]byte, error) {
	if err := c.validate(); err != nil {
		return nil, err
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (c *Condition) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// AIP renders the condition as an AIP-160 comparison. Values of int fields are emitted
// as numbers, everything else as quoted strings.
func (c Condition) AIP(fields Fields) (string, error) {
	if err := c.validate(); err != nil {
		return "", err
	}
	kind, ok := fields[c.Field]
	if !ok {
		return "", fmt.Errorf("unknown filter field %q", c.Field)
	}
	switch kind {
	case FieldInt:
		if _, err := strconv.ParseInt(c.Value, 10, 64); err != nil {
			return "", fmt.Errorf("field %s: invalid int value %q", c.Field, c.Value)
		}
		return c.Field + " " + c.Operator + " " + c.Value, nil
	case FieldString:
		return c.Field + " " + c.Operator + " " + strconv.Quote(c.Value), nil
	default:
		return "", fmt.Errorf("unsupported field type for %s", c.Field)
	}
}

func (c Condition) validate() error {
	if strings.TrimSpace(c.Field) == "" {
		return fmt.Errorf("condition field is required")
	}
	if !operators[c.Operator] {
		return fmt.Errorf("unsupported operator %q", c.Operator)
	}
	return nil
}

// Compile joins conditions with AND and parses the result as a checked AIP-160 filter.
// An empty condition list compiles to a nil expression which matches everything.
func Compile(conds []Condition, fields Fields) (*expr.Expr, error) {
	if len(conds) == 0 {
		return nil, nil
	}

	terms := make([]string, 0, len(conds))
	for _, c := range conds {
		term, err := c.AIP(fields)
		if err != nil {
			return nil, err
		}
		terms = append(terms, term)
	}
	return ParseAIP(strings.Join(terms, " AND "), fields)
}

// ParseAIP parses an AIP-160 filter expression for the provided fields.
func ParseAIP(filterStr string, fields Fields) (*expr.Expr, error) {
	if strings.TrimSpace(filterStr) == "" {
		return nil, nil
	}

	decls, err := declarations(fields)
	if err != nil {
		return nil, err
	}

	filter, err := filtering.ParseFilterString(filterStr, decls)
	if err != nil {
		return nil, fmt.Errorf("parse filter: %w", err)
	}

	return filter.CheckedExpr.Expr, nil
}

// Or combines two compiled filters. A nil side matches everything, so the result is nil.
func Or(left, right *expr.Expr) *expr.Expr {
	if left == nil || right == nil {
		return nil
	}
	return &expr.Expr{
		ExprKind: &expr.Expr_CallExpr{
			CallExpr: &expr.Expr_Call{Function: "OR", Args: []*expr.Expr{left, right}},
		},
	}
}

func declarations(fields Fields) (*filtering.Declarations, error) {
	decls := []filtering.DeclarationOption{filtering.DeclareStandardFunctions()}
	for name, kind := range fields {
		switch kind {
		case FieldString:
			decls = append(decls, filtering.DeclareIdent(name, filtering.TypeString))
		case FieldInt:
			decls = append(decls, filtering.DeclareIdent(name, filtering.TypeInt))
		default:
			return nil, fmt.Errorf("unsupported field type for %s", name)
		}
	}

	return filtering.NewDeclarations(decls...)
}

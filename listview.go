// Package listview describes how records of a document type are shown in a host list view:
// the fields fetched per row, the base filters applied to every query and the status
// indicator (label, color, filter) rendered next to each row.
//
// Settings are registered per document type in an explicit Registry owned by the host.
// A Resolver turns a record into its Indicator, a View applies the settings to a set of
// records the way the host list does.
package listview

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-pkgz/listview/filter"
)

// standard host fields present on every document type
const (
	FieldName      = "name"
	FieldDocStatus = "docstatus"
)

// DocStatus is the host's submission state of a record
type DocStatus int

// submission states
const (
	DocStatusDraft     DocStatus = 0
	DocStatusSubmitted DocStatus = 1
	DocStatusCancelled DocStatus = 2
)

// Indicator is the status badge shown next to a list row. Color is zero when the status
// has no mapped color, the label and filter are always set.
type Indicator struct {
	Label  string           `json:"label" yaml:"label"`
	Color  Color            `json:"color,omitzero" yaml:"color,omitempty"`
	Filter filter.Condition `json:"filter" yaml:"filter"`
}

// Translator localizes display strings. Implementations must be total and return the
// input unchanged when no translation exists.
type Translator interface {
	Translate(msg string) string
}

// TranslatorFunc adapts a plain function to Translator
type TranslatorFunc func(msg string) string

// Translate calls f(msg)
func (f TranslatorFunc) Translate(msg string) string { return f(msg) }

// Untranslated returns every message unchanged
var Untranslated Translator = TranslatorFunc(func(msg string) string { return msg })

// ColorFunc maps a raw status value to its indicator color, ok is false for unmapped values
type ColorFunc func(status string) (c Color, ok bool)

// Settings is the list view configuration of one document type
type Settings struct {
	DocType                  string             `json:"doctype" yaml:"doctype"`
	AddFields                []string           `json:"add_fields" yaml:"add_fields"`
	Filters                  []filter.Condition `json:"filters" yaml:"filters"`
	HasIndicatorForCancelled bool               `json:"has_indicator_for_cancelled" yaml:"has_indicator_for_cancelled"`
	StatusField              string             `json:"status_field" yaml:"status_field"`
	FieldTypes               filter.Fields      `json:"-" yaml:"-"` // non-string fields used by filters
	Color                    ColorFunc          `json:"-" yaml:"-"`
}

// Validate checks the settings are complete
func (s Settings) Validate() error {
	if strings.TrimSpace(s.DocType) == "" {
		return fmt.Errorf("doctype is required")
	}
	if strings.TrimSpace(s.StatusField) == "" {
		return fmt.Errorf("%s: status field is required", s.DocType)
	}
	for i, f := range s.AddFields {
		if strings.TrimSpace(f) == "" {
			return fmt.Errorf("%s: add_fields[%d] is blank", s.DocType, i)
		}
	}
	if _, err := filter.Compile(s.Filters, s.filterFields()); err != nil {
		return fmt.Errorf("%s: invalid filters: %w", s.DocType, err)
	}
	return nil
}

// filterFields declares every field known to the settings. Fields are strings unless
// FieldTypes says otherwise, docstatus is always an int.
func (s Settings) filterFields() filter.Fields {
	res := filter.Fields{FieldName: filter.FieldString, FieldDocStatus: filter.FieldInt}
	if s.StatusField != "" {
		res[s.StatusField] = filter.FieldString
	}
	for _, f := range s.AddFields {
		res[f] = filter.FieldString
	}
	for _, c := range s.Filters {
		if _, ok := res[c.Field]; !ok {
			res[c.Field] = filter.FieldString
		}
	}
	for f, t := range s.FieldTypes {
		res[f] = t
	}
	return res
}

// Record is a single row as delivered by the host
type Record map[string]any

// Get returns the raw field value
func (r Record) Get(field string) (any, bool) {
	v, ok := r[field]
	return v, ok
}

// Str returns the field as a string, empty for missing or nil values
func (r Record) Str(field string) string {
	switch v := r[field].(type) {
	case nil:
		return ""
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

// DocStatus returns the submission state, draft for missing or unreadable values
func (r Record) DocStatus() DocStatus {
	switch v := r[FieldDocStatus].(type) {
	case DocStatus:
		return v
	case int:
		return DocStatus(v)
	case int64:
		return DocStatus(v)
	case float64:
		return DocStatus(v)
	case string:
		if n, err := strconv.Atoi(v); err == nil {
			return DocStatus(n)
		}
	}
	return DocStatusDraft
}

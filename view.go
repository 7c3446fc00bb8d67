package listview

import (
	"fmt"
	"strconv"

	expr "google.golang.org/genproto/googleapis/api/expr/v1alpha1"

	"github.com/go-pkgz/listview/filter"
)

// labelCancelled is the host's default indicator label of cancelled records
const labelCancelled = "Cancelled"

// Row is a record projected onto the fetched fields, with its indicator
type Row struct {
	Name      string         `json:"name" yaml:"name"`
	Fields    map[string]any `json:"fields" yaml:"fields"`
	Indicator Indicator      `json:"indicator" yaml:"indicator"`
}

// View applies list view settings to records
type View struct {
	settings      Settings
	resolver      *Resolver
	translate     Translator
	fields        filter.Fields
	base          *expr.Expr // settings filters
	withCancelled *expr.Expr // settings filters or docstatus = 2
}

// NewView validates the settings and compiles their filters
func NewView(s Settings, tr Translator) (*View, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if tr == nil {
		tr = Untranslated
	}

	fields := s.filterFields()
	base, err := filter.Compile(s.Filters, fields)
	if err != nil {
		return nil, fmt.Errorf("%s: compile filters: %w", s.DocType, err)
	}
	cancelled, err := filter.Compile([]filter.Condition{
		filter.Equal(FieldDocStatus, strconv.Itoa(int(DocStatusCancelled))),
	}, fields)
	if err != nil {
		return nil, fmt.Errorf("%s: compile cancelled filter: %w", s.DocType, err)
	}

	resolver, err := NewResolver(s, tr)
	if err != nil {
		return nil, err
	}

	return &View{
		settings:      s,
		resolver:      resolver,
		translate:     tr,
		fields:        fields,
		base:          base,
		withCancelled: filter.Or(base, cancelled),
	}, nil
}

// Settings returns the settings the view was built with
func (v *View) Settings() Settings {
	return v.settings
}

// Resolve returns the status indicator of a record
func (v *View) Resolve(rec Record) Indicator {
	return v.resolver.Resolve(rec)
}

// Rows keeps records matching the base filters and attaches indicators. With includeCancelled
// cancelled records are kept as well. Cancelled records get the status indicator only when the
// settings ask for it, otherwise the host's red "Cancelled" badge.
func (v *View) Rows(records []Record, includeCancelled bool) ([]Row, error) {
	cond := v.base
	if includeCancelled {
		cond = v.withCancelled
	}

	rows := make([]Row, 0, len(records))
	for i, rec := range records {
		ok, err := filter.Evaluate(cond, v.fieldResolver(rec))
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		if !ok {
			continue
		}
		rows = append(rows, Row{Name: rec.Str(FieldName), Fields: v.project(rec), Indicator: v.indicator(rec)})
	}
	return rows, nil
}

func (v *View) indicator(rec Record) Indicator {
	if rec.DocStatus() == DocStatusCancelled && !v.settings.HasIndicatorForCancelled {
		return Indicator{
			Label:  v.translate.Translate(labelCancelled),
			Color:  ColorRed,
			Filter: filter.Equal(FieldDocStatus, strconv.Itoa(int(DocStatusCancelled))),
		}
	}
	return v.resolver.Resolve(rec)
}

func (v *View) project(rec Record) map[string]any {
	res := make(map[string]any, len(v.settings.AddFields))
	for _, f := range v.settings.AddFields {
		if val, ok := rec.Get(f); ok {
			res[f] = val
		}
	}
	return res
}

// fieldResolver feeds record fields to filter evaluation, docstatus is normalized to int
func (v *View) fieldResolver(rec Record) filter.Resolver {
	return func(name string) (any, bool) {
		if name == FieldDocStatus {
			if _, ok := rec.Get(name); !ok {
				return nil, false
			}
			return int(rec.DocStatus()), true
		}
		val, ok := rec.Get(name)
		if !ok {
			return nil, false
		}
		if v.fields[name] == filter.FieldString {
			return rec.Str(name), true
		}
		return val, true
	}
}

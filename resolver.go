package listview

import (
	"fmt"

	"github.com/go-pkgz/listview/filter"
)

// Resolver builds status indicators for records of one document type.
// It holds no mutable state and can be shared.
type Resolver struct {
	field     string
	color     ColorFunc
	translate Translator
}

// NewResolver validates the settings and makes a resolver for them. A nil translator leaves
// labels untranslated.
func NewResolver(s Settings, tr Translator) (*Resolver, error) {
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("new resolver: %w", err)
	}
	if tr == nil {
		tr = Untranslated
	}
	return &Resolver{field: s.StatusField, color: s.Color, translate: tr}, nil
}

// Resolve returns the indicator of the record. The color is looked up with the raw status
// value and stays zero for statuses without a mapped color. The label is the translated
// status, the filter always carries the raw one.
func (r *Resolver) Resolve(rec Record) Indicator {
	raw := rec.Str(r.field)

	var c Color
	if r.color != nil {
		if mapped, ok := r.color(raw); ok {
			c = mapped
		}
	}

	return Indicator{
		Label:  r.translate.Translate(raw),
		Color:  c,
		Filter: filter.Equal(r.field, raw),
	}
}

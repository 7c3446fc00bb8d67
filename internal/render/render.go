// Package render prints list view rows to a terminal. Indicators are shown as colored
// badges using lipgloss. When disabled, badges are the plain label with no ANSI codes.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/go-pkgz/listview"
)

// palette maps indicator colors to ANSI 256 color codes
var palette = map[listview.Color]string{
	listview.ColorBlue:      "33",
	listview.ColorCyan:      "37",
	listview.ColorDarkgrey:  "240",
	listview.ColorGreen:     "34",
	listview.ColorGrey:      "245",
	listview.ColorLightblue: "117",
	listview.ColorOrange:    "208",
	listview.ColorPink:      "205",
	listview.ColorPurple:    "135",
	listview.ColorRed:       "196",
	listview.ColorYellow:    "220",
}

// Renderer writes rows with colored indicator badges
type Renderer struct {
	w       io.Writer
	enabled bool
	styles  map[listview.Color]lipgloss.Style
	header  lipgloss.Style
}

// New makes a renderer writing to w. Styling is off unless enabled is set.
func New(w io.Writer, enabled bool) *Renderer {
	r := &Renderer{w: w, enabled: enabled, styles: make(map[listview.Color]lipgloss.Style, len(palette))}
	if !enabled {
		return r
	}

	// force ANSI256 regardless of TTY detection, the caller decides on colors
	lr := lipgloss.NewRenderer(w)
	lr.SetColorProfile(termenv.ANSI256)
	for c, code := range palette {
		r.styles[c] = lr.NewStyle().Foreground(lipgloss.Color(code))
	}
	r.header = lr.NewStyle().Bold(true)
	return r
}

// Detect reports whether w is a terminal with color support
func Detect(w io.Writer) bool {
	return lipgloss.NewRenderer(w).ColorProfile() != termenv.Ascii
}

// Badge returns the indicator label styled with its color. Labels without color are
// returned as is.
func (r *Renderer) Badge(ind listview.Indicator) string {
	if !r.enabled || ind.Color.IsZero() {
		return ind.Label
	}
	style, ok := r.styles[ind.Color]
	if !ok {
		return ind.Label
	}
	return style.Render(ind.Label)
}

// Rows writes a header line with the doctype, then one line per row: the name, the badge
// and the remaining fields in the given order.
func (r *Renderer) Rows(docType string, fields []string, rows []listview.Row) error {
	title := fmt.Sprintf("%s (%d)", docType, len(rows))
	if r.enabled {
		title = r.header.Render(title)
	}
	if _, err := fmt.Fprintln(r.w, title); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, row := range rows {
		parts := []string{row.Name, r.Badge(row.Indicator)}
		for _, f := range fields {
			if f == listview.FieldName {
				continue
			}
			v, ok := row.Fields[f]
			if !ok || v == nil {
				continue
			}
			parts = append(parts, fmt.Sprintf("%s=%v", f, v))
		}
		if _, err := fmt.Fprintln(r.w, strings.Join(parts, "  ")); err != nil {
			return fmt.Errorf("write row %s: %w", row.Name, err)
		}
	}
	return nil
}

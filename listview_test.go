package listview

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/go-pkgz/listview/filter"
)

// taskSettings is a small doctype with a string keyed color table
func taskSettings() Settings {
	colors := map[string]Color{"Open": ColorOrange, "Closed": ColorGreen}
	return Settings{
		DocType:     "Task",
		AddFields:   []string{"name", "status", "priority"},
		Filters:     []filter.Condition{filter.Equal("docstatus", "1")},
		StatusField: "status",
		Color: func(status string) (Color, bool) {
			c, ok := colors[status]
			return c, ok
		},
	}
}

func TestColor(t *testing.T) {
	t.Run("palette", func(t *testing.T) {
		assert.Equal(t, []string{"blue", "cyan", "darkgrey", "green", "grey", "lightblue", "orange", "pink",
			"purple", "red", "yellow"}, ColorNames())
		for c := range ColorIter() {
			parsed, err := ParseColor(c.String())
			require.NoError(t, err)
			assert.Equal(t, c, parsed)
			assert.False(t, c.IsZero(), "palette color %s", c)
		}
	})

	t.Run("zero", func(t *testing.T) {
		assert.True(t, Color{}.IsZero())
		assert.Equal(t, "", Color{}.String())
		_, err := ParseColor("")
		assert.Error(t, err)
		_, err = ParseColor("Blue")
		assert.Error(t, err, "parsing is exact")
		assert.Panics(t, func() { MustColor("magenta") })
	})

	t.Run("yaml", func(t *testing.T) {
		data, err := yaml.Marshal(map[string]Color{"c": ColorLightblue})
		require.NoError(t, err)
		assert.Equal(t, "c: lightblue\n", string(data))

		var c Color
		require.NoError(t, yaml.Unmarshal([]byte("darkgrey"), &c))
		assert.Equal(t, ColorDarkgrey, c)
		assert.Error(t, yaml.Unmarshal([]byte("black"), &c))
	})
}

func TestIndicatorEncoding(t *testing.T) {
	colored := Indicator{Label: "Active", Color: ColorBlue, Filter: filter.Equal("status", "Active")}
	plain := Indicator{Label: "Pending", Filter: filter.Equal("status", "Pending")}

	t.Run("json", func(t *testing.T) {
		b, err := json.Marshal(colored)
		require.NoError(t, err)
		assert.Equal(t, `{"label":"Active","color":"blue","filter":"status,=,Active"}`, string(b))

		b, err = json.Marshal(plain)
		require.NoError(t, err)
		assert.Equal(t, `{"label":"Pending","filter":"status,=,Pending"}`, string(b), "absent color is omitted")

		var decoded Indicator
		require.NoError(t, json.Unmarshal([]byte(`{"label":"Active","color":"blue","filter":"status,=,Active"}`), &decoded))
		assert.Equal(t, colored, decoded)
	})

	t.Run("yaml", func(t *testing.T) {
		b, err := yaml.Marshal(plain)
		require.NoError(t, err)
		assert.Equal(t, "label: Pending\nfilter: status,=,Pending\n", string(b))

		var decoded Indicator
		require.NoError(t, yaml.Unmarshal([]byte("label: Active\ncolor: blue\nfilter: status,=,Active\n"), &decoded))
		assert.Equal(t, colored, decoded)
	})
}

func TestResolver(t *testing.T) {
	newResolver := func(t *testing.T, s Settings, tr Translator) *Resolver {
		t.Helper()
		r, err := NewResolver(s, tr)
		require.NoError(t, err)
		return r
	}

	t.Run("nil translator", func(t *testing.T) {
		ind := newResolver(t, taskSettings(), nil).Resolve(Record{"status": "Open"})
		assert.Equal(t, Indicator{Label: "Open", Color: ColorOrange, Filter: filter.Equal("status", "Open")}, ind)
	})

	t.Run("no color func", func(t *testing.T) {
		s := taskSettings()
		s.Color = nil
		ind := newResolver(t, s, nil).Resolve(Record{"status": "Open"})
		assert.True(t, ind.Color.IsZero())
		assert.Equal(t, "status,=,Open", ind.Filter.String())
	})

	t.Run("missing status", func(t *testing.T) {
		ind := newResolver(t, taskSettings(), nil).Resolve(Record{"name": "T-1"})
		assert.Equal(t, "", ind.Label)
		assert.True(t, ind.Color.IsZero())
		assert.Equal(t, "status,=,", ind.Filter.String())

		b, err := json.Marshal(ind)
		require.NoError(t, err)
		assert.Equal(t, `{"label":"","filter":"status,=,"}`, string(b))
	})

	t.Run("translator sees raw status", func(t *testing.T) {
		var seen []string
		tr := TranslatorFunc(func(msg string) string {
			seen = append(seen, msg)
			return "[" + msg + "]"
		})
		ind := newResolver(t, taskSettings(), tr).Resolve(Record{"status": "Closed"})
		assert.Equal(t, []string{"Closed"}, seen)
		assert.Equal(t, "[Closed]", ind.Label)
		assert.Equal(t, "Closed", ind.Filter.Value)
		assert.Equal(t, ColorGreen, ind.Color)
	})

	t.Run("invalid settings", func(t *testing.T) {
		s := taskSettings()
		s.StatusField = ""
		r, err := NewResolver(s, nil)
		require.Error(t, err)
		assert.Nil(t, r)
		assert.Contains(t, err.Error(), "status field is required")

		_, err = NewResolver(Settings{StatusField: "status"}, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "doctype is required")
	})
}

func TestRecord(t *testing.T) {
	rec := Record{"name": "T-1", "status": "Open", "qty": 3, "docstatus": float64(1), "nil": nil}

	assert.Equal(t, "T-1", rec.Str("name"))
	assert.Equal(t, "3", rec.Str("qty"))
	assert.Equal(t, "", rec.Str("nil"))
	assert.Equal(t, "", rec.Str("missing"))
	assert.Equal(t, "blue", Record{"c": ColorBlue}.Str("c"))
	assert.Equal(t, DocStatusSubmitted, rec.DocStatus())

	tests := []struct {
		value any
		want  DocStatus
	}{
		{0, DocStatusDraft},
		{int64(2), DocStatusCancelled},
		{"1", DocStatusSubmitted},
		{"x", DocStatusDraft},
		{DocStatusCancelled, DocStatusCancelled},
		{nil, DocStatusDraft},
	}
	for _, tc := range tests {
		t.Run(fmt.Sprintf("%v", tc.value), func(t *testing.T) {
			assert.Equal(t, tc.want, Record{"docstatus": tc.value}.DocStatus())
		})
	}
}

func TestSettingsValidate(t *testing.T) {
	require.NoError(t, taskSettings().Validate())

	tests := []struct {
		name   string
		modify func(s *Settings)
	}{
		{"no doctype", func(s *Settings) { s.DocType = " " }},
		{"no status field", func(s *Settings) { s.StatusField = "" }},
		{"blank add field", func(s *Settings) { s.AddFields = append(s.AddFields, "") }},
		{"non numeric docstatus", func(s *Settings) { s.Filters = []filter.Condition{filter.Equal("docstatus", "one")} }},
		{"bad field type", func(s *Settings) { s.FieldTypes = filter.Fields{"priority": "date"} }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := taskSettings()
			tc.modify(&s)
			assert.Error(t, s.Validate())
		})
	}
}

func TestRegistry(t *testing.T) {
	reg := NewRegistry()
	assert.Empty(t, reg.DocTypes())

	require.NoError(t, reg.Register(taskSettings()))
	other := taskSettings()
	other.DocType = "Issue"
	require.NoError(t, reg.Register(other))

	err := reg.Register(taskSettings())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Task is already registered")

	err = reg.Register(Settings{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "doctype is required")

	assert.Equal(t, []string{"Issue", "Task"}, reg.DocTypes())

	s, ok := reg.Lookup("Task")
	require.True(t, ok)
	assert.Equal(t, "Task", s.DocType)

	_, ok = reg.Lookup("Service Request")
	assert.False(t, ok)
}

func TestView(t *testing.T) {
	records := []Record{
		{"name": "T-1", "status": "Open", "docstatus": 1, "priority": "High", "owner": "admin"},
		{"name": "T-2", "status": "Closed", "docstatus": 2, "priority": "Low"},
		{"name": "T-3", "status": "Open", "docstatus": 0},
		{"name": "T-4", "status": "Blocked", "docstatus": DocStatusSubmitted},
	}

	t.Run("submitted only", func(t *testing.T) {
		v, err := NewView(taskSettings(), nil)
		require.NoError(t, err)

		rows, err := v.Rows(records, false)
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, Row{
			Name:      "T-1",
			Fields:    map[string]any{"name": "T-1", "status": "Open", "priority": "High"},
			Indicator: Indicator{Label: "Open", Color: ColorOrange, Filter: filter.Equal("status", "Open")},
		}, rows[0])
		assert.Equal(t, "T-4", rows[1].Name)
		assert.True(t, rows[1].Indicator.Color.IsZero())
	})

	t.Run("cancelled without own indicator", func(t *testing.T) {
		v, err := NewView(taskSettings(), TranslatorFunc(func(msg string) string {
			if msg == "Cancelled" {
				return "Storniert"
			}
			return msg
		}))
		require.NoError(t, err)

		rows, err := v.Rows(records, true)
		require.NoError(t, err)
		require.Len(t, rows, 3)
		assert.Equal(t, "T-2", rows[1].Name)
		assert.Equal(t, Indicator{Label: "Storniert", Color: ColorRed, Filter: filter.Equal("docstatus", "2")},
			rows[1].Indicator)
	})

	t.Run("cancelled with own indicator", func(t *testing.T) {
		s := taskSettings()
		s.HasIndicatorForCancelled = true
		v, err := NewView(s, nil)
		require.NoError(t, err)

		rows, err := v.Rows(records, true)
		require.NoError(t, err)
		require.Len(t, rows, 3)
		assert.Equal(t, Indicator{Label: "Closed", Color: ColorGreen, Filter: filter.Equal("status", "Closed")},
			rows[1].Indicator)
		assert.Equal(t, s.DocType, v.Settings().DocType)
	})

	t.Run("no filters", func(t *testing.T) {
		s := taskSettings()
		s.Filters = nil
		v, err := NewView(s, nil)
		require.NoError(t, err)
		rows, err := v.Rows(records, false)
		require.NoError(t, err)
		assert.Len(t, rows, 4)
	})

	t.Run("record without docstatus", func(t *testing.T) {
		v, err := NewView(taskSettings(), nil)
		require.NoError(t, err)
		_, err = v.Rows([]Record{{"name": "T-9", "status": "Open"}}, false)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "record 0")
	})

	t.Run("invalid settings", func(t *testing.T) {
		_, err := NewView(Settings{DocType: "Task"}, nil)
		assert.Error(t, err)
	})

	t.Run("resolve", func(t *testing.T) {
		v, err := NewView(taskSettings(), nil)
		require.NoError(t, err)
		assert.Equal(t, ColorGreen, v.Resolve(Record{"status": "Closed"}).Color)
	})
}

package listview

import (
	"fmt"
	"sort"
)

// Registry holds list view settings by document type. The host creates one and passes it
// where list views are built. It is not safe for concurrent registration.
type Registry struct {
	settings map[string]Settings
}

// NewRegistry makes an empty registry
func NewRegistry() *Registry {
	return &Registry{settings: make(map[string]Settings)}
}

// Register validates and adds settings. Registering the same document type twice is an error.
func (r *Registry) Register(s Settings) error {
	if err := s.Validate(); err != nil {
		return fmt.Errorf("register list view: %w", err)
	}
	if _, ok := r.settings[s.DocType]; ok {
		return fmt.Errorf("register list view: %s is already registered", s.DocType)
	}
	r.settings[s.DocType] = s
	return nil
}

// Lookup returns the settings of a document type
func (r *Registry) Lookup(docType string) (Settings, bool) {
	s, ok := r.settings[docType]
	return s, ok
}

// DocTypes returns registered document types, sorted
func (r *Registry) DocTypes() []string {
	res := make([]string, 0, len(r.settings))
	for dt := range r.settings {
		res = append(res, dt)
	}
	sort.Strings(res)
	return res
}

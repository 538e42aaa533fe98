package theme

import (
	"fmt"
	"slices"

	"github.com/samber/lo"
)

// NotFoundError is returned by Get when no theme is registered for an id.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("theme %q not found", e.ID)
}

// Registry maps page ids to their themes. It is populated when built and has
// no mutation methods.
type Registry struct {
	themes map[string]PageTheme
	ids    []string
}

// newRegistry builds a registry from the given themes.
// Panics on a duplicate id or an invalid palette.
func newRegistry(themes ...PageTheme) *Registry {
	r := &Registry{themes: make(map[string]PageTheme, len(themes))}
	for _, t := range themes {
		if _, exists := r.themes[t.ID]; exists {
			panic(fmt.Sprintf("theme: duplicate id %q", t.ID))
		}
		if err := t.Palette.Validate(); err != nil {
			panic(fmt.Sprintf("theme: %s: %v", t.ID, err))
		}
		r.themes[t.ID] = t
	}
	r.ids = lo.Keys(r.themes)
	slices.Sort(r.ids)
	return r
}

// Get returns the theme registered for id.
func (r *Registry) Get(id string) (PageTheme, error) {
	t, ok := r.themes[id]
	if !ok {
		return PageTheme{}, &NotFoundError{ID: id}
	}
	return t, nil
}

// IDs returns the registered ids in sorted order.
func (r *Registry) IDs() []string {
	return slices.Clone(r.ids)
}

// All returns every registered theme, ordered by id.
func (r *Registry) All() []PageTheme {
	return lo.Map(r.ids, func(id string, _ int) PageTheme {
		return r.themes[id]
	})
}

var defaultRegistry = newRegistry(
	homeTheme,
	auditWizardTheme,
	sentryTheme,
	radarTheme,
	auditsTheme,
)

// Get returns the site theme registered for id, or a *NotFoundError.
func Get(id string) (PageTheme, error) {
	return defaultRegistry.Get(id)
}

// IDs returns the ids of the site themes in sorted order.
func IDs() []string {
	return defaultRegistry.IDs()
}

// All returns the site themes, ordered by id.
func All() []PageTheme {
	return defaultRegistry.All()
}

package registry

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Source is a single city and the file holding its trip records.
type Source struct {
	City        string // lower-case lookup key, e.g. "new york city"
	DisplayName string
	Path        string
}

// Registry is an immutable city -> Source mapping.
type Registry struct {
	sources map[string]Source
	order   []string
}

// New builds a Registry from the given sources, preserving their order.
// City names are matched case-insensitively and must be unique.
func New(sources ...Source) (*Registry, error) {
	if len(sources) == 0 {
		return nil, fmt.Errorf("registry: no data sources defined")
	}

	r := &Registry{sources: make(map[string]Source, len(sources))}
	for _, src := range sources {
		key := normalize(src.City)
		if key == "" {
			return nil, fmt.Errorf("registry: source with empty city name")
		}
		if src.Path == "" {
			return nil, fmt.Errorf("registry: source %q has no file", key)
		}
		if _, dup := r.sources[key]; dup {
			return nil, fmt.Errorf("registry: duplicate source %q", key)
		}
		src.City = key
		if src.DisplayName == "" {
			src.DisplayName = cases.Title(language.English).String(key)
		}
		r.sources[key] = src
		r.order = append(r.order, key)
	}
	return r, nil
}

// Lookup returns the Source for a city name. Surrounding whitespace and
// letter case are ignored.
func (r *Registry) Lookup(city string) (Source, bool) {
	src, ok := r.sources[normalize(city)]
	return src, ok
}

// Cities lists the display names of all sources in declaration order.
func (r *Registry) Cities() []string {
	names := make([]string, 0, len(r.order))
	for _, key := range r.order {
		names = append(names, r.sources[key].DisplayName)
	}
	return names
}

func normalize(city string) string {
	return strings.ToLower(strings.TrimSpace(city))
}

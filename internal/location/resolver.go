package location

import (
	"strings"

	"skireis/internal/types"
)

// Resolver maps a free-text place name to a canonical city record.
type Resolver interface {
	// Resolve returns the matching city and true, or the zero value and
	// false when the name is unknown. A miss is an expected outcome for
	// free-text input, not an error.
	Resolve(name string) (types.CityCoordinate, bool)
}

// tableResolver implements Resolver over the static city table.
type tableResolver struct {
	entries []TableEntry
	byKey   map[string]types.CityCoordinate
}

// NewResolver creates a resolver over the embedded city table.
func NewResolver() (Resolver, error) {
	entries, err := loadTable()
	if err != nil {
		return nil, err
	}
	return NewResolverWithTable(entries), nil
}

// NewResolverWithTable creates a resolver over a custom table. This is
// useful for testing with a small fixed table.
func NewResolverWithTable(entries []TableEntry) Resolver {
	byKey := make(map[string]types.CityCoordinate, len(entries))
	for _, e := range entries {
		byKey[e.Key] = e.City()
	}
	return &tableResolver{
		entries: entries,
		byKey:   byKey,
	}
}

// Resolve normalizes the input, tries an exact key match, then falls back
// to a substring scan in table order: the first entry whose key contains
// the input or is contained in it wins. Table order is the tie-breaker for
// ambiguous short names, so inputs like "Amsterdam Centraal" still resolve
// via the "amsterdam" key.
func (r *tableResolver) Resolve(name string) (types.CityCoordinate, bool) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	if normalized == "" {
		return types.CityCoordinate{}, false
	}

	if city, ok := r.byKey[normalized]; ok {
		return city, true
	}

	for _, e := range r.entries {
		if strings.Contains(e.Key, normalized) || strings.Contains(normalized, e.Key) {
			return e.City(), true
		}
	}

	return types.CityCoordinate{}, false
}

// Package catalog implements the event catalog core: loading the event set
// through the cache, deriving filter facets from it, and evaluating the
// combined filter predicate that selects the visible subset.
//
// FacetIndex derivation and filter evaluation are pure functions over the
// full set. Facets are recomputed wholesale on every load, never patched
// incrementally; filtering re-evaluates the entire predicate over the entire
// set on every criterion change. Both are deliberate simplicity choices for
// catalogs of tens to low hundreds of records.
package catalog

import (
	"sort"

	"github.com/openevents/eventboard/internal/models"
)

// DeriveFacets computes the distinct non-empty country and event type values
// of the full set. Both lists are returned sorted lexicographically
// ascending, which is the ordering the presentation boundary relies on.
func DeriveFacets(events models.EventSet) models.Facets {
	countrySet := make(map[string]struct{})
	typeSet := make(map[string]struct{})

	for _, e := range events {
		if e.Country != "" {
			countrySet[e.Country] = struct{}{}
		}
		if e.EventType != "" {
			typeSet[e.EventType] = struct{}{}
		}
	}

	return models.Facets{
		Countries:  sortedKeys(countrySet),
		EventTypes: sortedKeys(typeSet),
	}
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

package catalog

import (
	"strings"

	"github.com/openevents/eventboard/internal/metrics"
	"github.com/openevents/eventboard/internal/models"
)

// ApplyFilter evaluates the combined predicate over the full set and returns
// the matching subsequence in original order, together with its count and the
// total count. A record is included iff all four criteria hold; each
// criterion is vacuously satisfied when its filter value is unset.
//
// The pass is stateless and unmemoized: identical inputs always produce
// identical results.
func ApplyFilter(events models.EventSet, state models.FilterState) models.FilteredResult {
	metrics.FilterEvaluations.Inc()

	query := strings.ToLower(state.Query)

	visible := make(models.EventSet, 0, len(events))
	for _, e := range events {
		if matches(e, query, state) {
			visible = append(visible, e)
		}
	}

	metrics.VisibleEvents.Set(float64(len(visible)))

	return models.FilteredResult{
		Visible:      visible,
		VisibleCount: len(visible),
		TotalCount:   len(events),
	}
}

// matches checks a single record against the filter state. query must already
// be lowercased. Categorical criteria are exact, case-sensitive matches; the
// free-text criterion is a case-insensitive substring match on title or
// description.
func matches(e models.EventRecord, query string, state models.FilterState) bool {
	if query != "" {
		title := strings.ToLower(e.Title)
		description := strings.ToLower(e.Description)
		if !strings.Contains(title, query) && !strings.Contains(description, query) {
			return false
		}
	}
	if state.Country != "" && e.Country != state.Country {
		return false
	}
	if state.EventType != "" && e.EventType != state.EventType {
		return false
	}
	if state.Participation != models.ParticipationAny && e.Participation != state.Participation {
		return false
	}
	return true
}

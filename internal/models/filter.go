package models

// FilterState holds the four independent, simultaneously optional filter
// criteria. The zero value means "no filter applied" for every criterion.
// FilterState is read fresh on each evaluation and never persisted.
type FilterState struct {
	// Query is matched case-insensitively as a substring of title or description.
	Query string
	// Country must equal the record's country exactly ("" = any).
	Country string
	// EventType must equal the record's event type exactly ("" = any).
	EventType string
	// Participation must equal the record's participation mode exactly
	// (ParticipationAny = any).
	Participation ParticipationMode
}

// Reset clears all four criteria back to "any".
func (f *FilterState) Reset() {
	*f = FilterState{}
}

// Facets holds the distinct filter values derived from the full event set.
// Both slices are sorted lexicographically ascending and contain no empty
// strings and no duplicates. Sorting is a presentation contract.
type Facets struct {
	Countries  []string `json:"countries"`
	EventTypes []string `json:"event_types"`
}

// FilteredResult is the outcome of one filter evaluation: the ordered
// subsequence of the full set that matches the current filter state, together
// with its count and the total count. It is derived on demand and never stored.
type FilteredResult struct {
	Visible      EventSet `json:"visible"`
	VisibleCount int      `json:"visible_count"`
	TotalCount   int      `json:"total_count"`
}

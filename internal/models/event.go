// Package models defines the core domain entities for the eventboard application.
// These models represent community events, the filter criteria a visitor can
// apply to them, and the derived views handed to the presentation boundary.
//
// Terminology:
//   - EventRecord: a single community event (edit-a-thon, meetup, conference, ...).
//   - EventSet: the full ordered set of events produced by one load. Filtering
//     always yields a stable subsequence of it.
//   - Facet: a distinct value of a categorical field (country, event type),
//     offered to the visitor as a filter option.
package models

import (
	"errors"
	"time"
)

// ParticipationMode describes how an event can be attended. The domain is
// closed (online, in-person, hybrid); values parsed from upstream data that
// fall outside it are carried through verbatim so the presentation layer can
// still show them, styled as a neutral category.
type ParticipationMode string

const (
	ParticipationOnline   ParticipationMode = "online"
	ParticipationInPerson ParticipationMode = "in-person"
	ParticipationHybrid   ParticipationMode = "hybrid"

	// ParticipationAny is the zero value, used in FilterState to mean
	// "no participation filter applied".
	ParticipationAny ParticipationMode = ""
)

// ParseParticipationMode maps a raw string onto the closed participation
// domain. The second return value reports whether the input was recognized;
// unrecognized input is returned as-is so callers can decide how to render it.
func ParseParticipationMode(s string) (ParticipationMode, bool) {
	switch ParticipationMode(s) {
	case ParticipationOnline, ParticipationInPerson, ParticipationHybrid:
		return ParticipationMode(s), true
	}
	return ParticipationMode(s), false
}

// Known reports whether the mode belongs to the closed participation domain.
func (m ParticipationMode) Known() bool {
	_, ok := ParseParticipationMode(string(m))
	return ok
}

// EventRecord represents a single community event. Records are immutable once
// loaded; all filtering and facet derivation works over the loaded set without
// mutating it.
//
// Country may hold the sentinel "Global" for events that are not tied to a
// single country. Location is optional and purely informational.
type EventRecord struct {
	ID            int64             `json:"id"`
	Title         string            `json:"title"`
	Description   string            `json:"description"`
	StartDate     time.Time         `json:"start_date"`
	EndDate       time.Time         `json:"end_date"`
	Country       string            `json:"country"`
	Location      string            `json:"location,omitempty"`
	EventType     string            `json:"event_type"`
	Participation ParticipationMode `json:"participation"`
	Link          string            `json:"link"`
	Organizer     string            `json:"organizer"`
}

// Validate checks the per-record invariants.
// ID uniqueness is a set-level property and is enforced by the loader.
func (e *EventRecord) Validate() error {
	if e.ID <= 0 {
		return errors.New("event ID must be positive")
	}
	if e.Title == "" {
		return errors.New("event title must not be empty")
	}
	if e.StartDate.IsZero() {
		return errors.New("event start date must be set")
	}
	if e.EndDate.Before(e.StartDate) {
		return errors.New("event end date must not be before start date")
	}
	return nil
}

// EventSet is an ordered sequence of event records. Insertion order is load
// order and is preserved through filtering.
type EventSet []EventRecord

package server

import (
	"time"

	"github.com/openevents/eventboard/internal/models"
)

// defaultBadgeClass styles event types outside the known set as a neutral
// category.
const defaultBadgeClass = "badge-default"

// eventTypeClasses maps known event types to their badge style. The facet
// domain is open, so unknown types fall back to the neutral badge with the
// raw value as its label.
var eventTypeClasses = map[string]string{
	"Competition": "badge-competition",
	"Workshop":    "badge-workshop",
	"Meetup":      "badge-meetup",
	"Conference":  "badge-conference",
	"Hackathon":   "badge-hackathon",
	"Training":    "badge-training",
}

// EventTypeBadgeClass returns the CSS class for an event type badge.
func EventTypeBadgeClass(eventType string) string {
	if class, ok := eventTypeClasses[eventType]; ok {
		return class
	}
	return defaultBadgeClass
}

// participationLabels maps the closed participation domain to display labels.
var participationLabels = map[models.ParticipationMode]string{
	models.ParticipationOnline:   "Online",
	models.ParticipationInPerson: "In person",
	models.ParticipationHybrid:   "Hybrid",
}

// ParticipationLabel returns the display label for a participation mode,
// falling back to the raw value for input outside the closed domain.
func ParticipationLabel(mode models.ParticipationMode) string {
	if label, ok := participationLabels[mode]; ok {
		return label
	}
	return string(mode)
}

// FormatDateRange renders an event's calendar span: single-day events show
// one date, multi-day events show both ends.
func FormatDateRange(start, end time.Time) string {
	const layout = "Jan 2, 2006"
	if start.Equal(end) {
		return start.Format(layout)
	}
	return start.Format(layout) + " – " + end.Format(layout)
}

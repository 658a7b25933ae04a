package source

import (
	"context"
	"time"

	"github.com/openevents/eventboard/internal/models"
)

// Static serves a built-in sample of community events. It stands in for a
// real upstream during development and demos. An optional delay simulates
// fetch latency so the loading state is visible.
type Static struct {
	delay time.Duration
}

// NewStatic creates a static source with the given artificial fetch delay.
func NewStatic(delay time.Duration) *Static {
	return &Static{delay: delay}
}

// Fetch returns a copy of the sample set after the configured delay.
func (s *Static) Fetch(ctx context.Context) (models.EventSet, error) {
	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	events := make(models.EventSet, len(sampleEvents))
	copy(events, sampleEvents)
	return events, nil
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// sampleEvents is the demo catalog: eight events spanning eight countries
// (including the "Global" sentinel) and six event types.
var sampleEvents = models.EventSet{
	{
		ID:            1,
		Title:         "WikiGap Challenge",
		Description:   "A worldwide writing contest to close the gender gap in online encyclopedias, with weekly themes and a jury-picked winner.",
		StartDate:     date(2026, time.March, 8),
		EndDate:       date(2026, time.April, 8),
		Country:       "Global",
		EventType:     "Competition",
		Participation: models.ParticipationOnline,
		Link:          "https://example.org/events/wikigap-challenge",
		Organizer:     "WikiGap Initiative",
	},
	{
		ID:            2,
		Title:         "Edit-a-thon Berlin",
		Description:   "Hands-on afternoon improving Wikipedia articles about Berlin's local history, guided by experienced editors.",
		StartDate:     date(2026, time.March, 14),
		EndDate:       date(2026, time.March, 14),
		Country:       "Germany",
		Location:      "WikiBär, Berlin",
		EventType:     "Workshop",
		Participation: models.ParticipationInPerson,
		Link:          "https://example.org/events/editathon-berlin",
		Organizer:     "Wikimedia Deutschland",
	},
	{
		ID:            3,
		Title:         "Open Knowledge NYC Meetup",
		Description:   "Monthly get-together of Wikipedia editors, librarians, and open data enthusiasts in New York City.",
		StartDate:     date(2026, time.March, 19),
		EndDate:       date(2026, time.March, 19),
		Country:       "United States",
		Location:      "Metropolitan New York Library Council",
		EventType:     "Meetup",
		Participation: models.ParticipationHybrid,
		Link:          "https://example.org/events/open-knowledge-nyc",
		Organizer:     "Wikimedia NYC",
	},
	{
		ID:            4,
		Title:         "ESEAP Community Conference",
		Description:   "Regional conference for free-knowledge communities across East and Southeast Asia and the Pacific.",
		StartDate:     date(2026, time.April, 24),
		EndDate:       date(2026, time.April, 26),
		Country:       "Singapore",
		Location:      "National Library Building",
		EventType:     "Conference",
		Participation: models.ParticipationHybrid,
		Link:          "https://example.org/events/eseap-conference",
		Organizer:     "ESEAP Hub",
	},
	{
		ID:            5,
		Title:         "Open Data Hackathon Paris",
		Description:   "Two-day hackathon building tools and visualizations on top of open cultural datasets.",
		StartDate:     date(2026, time.May, 9),
		EndDate:       date(2026, time.May, 10),
		Country:       "France",
		Location:      "Cité des Sciences, Paris",
		EventType:     "Hackathon",
		Participation: models.ParticipationInPerson,
		Link:          "https://example.org/events/open-data-hackathon-paris",
		Organizer:     "Open Knowledge France",
	},
	{
		ID:            6,
		Title:         "New Editor Training Series",
		Description:   "Four evening sessions teaching newcomers how to write, source, and publish their first encyclopedia articles.",
		StartDate:     date(2026, time.May, 5),
		EndDate:       date(2026, time.May, 26),
		Country:       "United Kingdom",
		EventType:     "Training",
		Participation: models.ParticipationOnline,
		Link:          "https://example.org/events/new-editor-training",
		Organizer:     "Wikimedia UK",
	},
	{
		ID:            7,
		Title:         "Amsterdam Open Culture Meetup",
		Description:   "Informal evening for GLAM professionals and volunteers sharing digitization and open licensing projects.",
		StartDate:     date(2026, time.June, 4),
		EndDate:       date(2026, time.June, 4),
		Country:       "Netherlands",
		Location:      "OBA Oosterdok, Amsterdam",
		EventType:     "Meetup",
		Participation: models.ParticipationInPerson,
		Link:          "https://example.org/events/amsterdam-open-culture",
		Organizer:     "Wikimedia Nederland",
	},
	{
		ID:            8,
		Title:         "Structured Data Workshop Toronto",
		Description:   "Full-day workshop on modelling heritage collections as linked open data, with remote participation available.",
		StartDate:     date(2026, time.June, 13),
		EndDate:       date(2026, time.June, 13),
		Country:       "Canada",
		Location:      "Toronto Reference Library",
		EventType:     "Workshop",
		Participation: models.ParticipationHybrid,
		Link:          "https://example.org/events/structured-data-toronto",
		Organizer:     "Wikimedia Canada",
	},
}

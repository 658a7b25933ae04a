package server

import (
	"github.com/openevents/eventboard/internal/models"
)

// eventCard is one rendered card on the index page.
type eventCard struct {
	Title       string
	Description string
	DateRange   string
	Country     string
	Location    string
	TypeLabel   string
	TypeClass   string
	ModeLabel   string
	Link        string
	Organizer   string
}

// participationOption is one entry of the fixed participation dropdown.
type participationOption struct {
	Value    string
	Label    string
	Selected bool
}

// pageData is the template model for the index page.
type pageData struct {
	Lifecycle      string
	ErrorMessage   string
	Facets         models.Facets
	Filters        models.FilterState
	Participations []participationOption
	Cards          []eventCard
	VisibleCount   int
	TotalCount     int
}

// buildPage maps the rendered snapshot and current filter state onto the
// template model.
func (s *Server) buildPage(view viewState, filters models.FilterState) pageData {
	data := pageData{
		Lifecycle:    view.lifecycle.String(),
		ErrorMessage: view.errMsg,
		Facets:       view.facets,
		Filters:      filters,
		VisibleCount: view.result.VisibleCount,
		TotalCount:   view.result.TotalCount,
	}

	for _, mode := range []models.ParticipationMode{
		models.ParticipationOnline,
		models.ParticipationInPerson,
		models.ParticipationHybrid,
	} {
		data.Participations = append(data.Participations, participationOption{
			Value:    string(mode),
			Label:    ParticipationLabel(mode),
			Selected: filters.Participation == mode,
		})
	}

	for _, e := range view.result.Visible {
		data.Cards = append(data.Cards, eventCard{
			Title:       e.Title,
			Description: e.Description,
			DateRange:   FormatDateRange(e.StartDate, e.EndDate),
			Country:     e.Country,
			Location:    e.Location,
			TypeLabel:   e.EventType,
			TypeClass:   EventTypeBadgeClass(e.EventType),
			ModeLabel:   ParticipationLabel(e.Participation),
			Link:        e.Link,
			Organizer:   e.Organizer,
		})
	}

	return data
}

const indexTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Community Events</title>
<style>
  body { font-family: system-ui, sans-serif; margin: 2rem auto; max-width: 64rem; color: #1a1a1a; }
  .filters { display: flex; flex-wrap: wrap; gap: .5rem; margin-bottom: 1rem; }
  .filters input, .filters select { padding: .4rem; }
  .counts { color: #555; margin-bottom: 1rem; }
  .cards { display: grid; grid-template-columns: repeat(auto-fill, minmax(18rem, 1fr)); gap: 1rem; }
  .card { border: 1px solid #ddd; border-radius: .5rem; padding: 1rem; }
  .card h2 { margin: 0 0 .3rem; font-size: 1.1rem; }
  .meta { color: #555; font-size: .85rem; margin: .2rem 0; }
  .badge { display: inline-block; border-radius: 1rem; padding: .1rem .6rem; font-size: .75rem; color: #fff; }
  .badge-competition { background: #b3412f; }
  .badge-workshop { background: #2f6db3; }
  .badge-meetup { background: #2f9e5f; }
  .badge-conference { background: #7a4fb3; }
  .badge-hackathon { background: #c2850e; }
  .badge-training { background: #3b8a8a; }
  .badge-default { background: #777; }
  .state { padding: 2rem; text-align: center; color: #555; }
  .state.error { color: #a33; }
</style>
</head>
<body>
<h1>Community Events</h1>
<form class="filters" method="get" action="/">
  <input type="search" name="q" placeholder="Search events…" value="{{.Filters.Query}}">
  <select name="country">
    <option value="">All countries</option>
    {{range .Facets.Countries}}<option value="{{.}}"{{if eq . $.Filters.Country}} selected{{end}}>{{.}}</option>{{end}}
  </select>
  <select name="type">
    <option value="">All types</option>
    {{range .Facets.EventTypes}}<option value="{{.}}"{{if eq . $.Filters.EventType}} selected{{end}}>{{.}}</option>{{end}}
  </select>
  <select name="participation">
    <option value="">Any participation</option>
    {{range .Participations}}<option value="{{.Value}}"{{if .Selected}} selected{{end}}>{{.Label}}</option>{{end}}
  </select>
  <button type="submit">Apply</button>
  <a href="/?clear"><button type="button">Clear filters</button></a>
  <button type="button" id="refresh">Refresh</button>
</form>

{{if eq .Lifecycle "loading"}}
<div class="state">Loading events…</div>
{{else if eq .Lifecycle "error"}}
<div class="state error">{{.ErrorMessage}}</div>
{{else}}
<div class="counts">Showing {{.VisibleCount}} of {{.TotalCount}} events</div>
{{if .Cards}}
<div class="cards">
  {{range .Cards}}
  <div class="card">
    <h2><a href="{{.Link}}">{{.Title}}</a></h2>
    <span class="badge {{.TypeClass}}">{{.TypeLabel}}</span>
    <span class="badge badge-default">{{.ModeLabel}}</span>
    <p class="meta">{{.DateRange}}</p>
    <p class="meta">{{.Country}}{{if .Location}} · {{.Location}}{{end}}</p>
    <p>{{.Description}}</p>
    <p class="meta">Organized by {{.Organizer}}</p>
  </div>
  {{end}}
</div>
{{else}}
<div class="state">No events match the current filters.</div>
{{end}}
{{end}}

<script>
document.getElementById("refresh").addEventListener("click", function () {
  fetch("/api/refresh", { method: "POST" }).finally(function () { location.reload(); });
});
</script>
</body>
</html>
`

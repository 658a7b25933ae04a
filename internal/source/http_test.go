package source

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/openevents/eventboard/internal/models"
)

const sampleJSON = `[
  {
    "id": 1,
    "title": "Edit-a-thon Berlin",
    "description": "Improving articles together",
    "start_date": "2026-03-14",
    "end_date": "2026-03-14",
    "country": "Germany",
    "location": "WikiBär, Berlin",
    "event_type": "Workshop",
    "participation": "in-person",
    "link": "https://example.org/events/1",
    "organizer": "Wikimedia Deutschland"
  },
  {
    "id": 2,
    "title": "Remote Mapping Party",
    "description": "Mapping villages from satellite imagery",
    "start_date": "2026-04-01",
    "end_date": "2026-04-02",
    "country": "Global",
    "event_type": "Mapathon",
    "participation": "virtual",
    "link": "https://example.org/events/2",
    "organizer": "Mapper Collective"
  },
  {
    "id": 3,
    "title": "Broken Record",
    "description": "",
    "start_date": "not-a-date",
    "end_date": "2026-04-02",
    "country": "France",
    "event_type": "Meetup",
    "participation": "online",
    "link": "",
    "organizer": ""
  }
]`

func TestHTTPFetch(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/events" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(sampleJSON))
	}))
	defer ts.Close()

	src := NewHTTP(ts.URL, 5*time.Second, 3, time.Millisecond)
	events, err := src.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}

	// The record with the unparseable date is skipped, the rest survive.
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}

	first := events[0]
	if first.ID != 1 || first.Country != "Germany" || first.EventType != "Workshop" {
		t.Errorf("unexpected first event: %+v", first)
	}
	if first.Participation != models.ParticipationInPerson {
		t.Errorf("participation = %q, want in-person", first.Participation)
	}
	if first.StartDate != time.Date(2026, time.March, 14, 0, 0, 0, 0, time.UTC) {
		t.Errorf("unexpected start date: %v", first.StartDate)
	}

	// Unrecognized participation values are carried through verbatim.
	second := events[1]
	if second.Participation != models.ParticipationMode("virtual") {
		t.Errorf("participation = %q, want raw value %q", second.Participation, "virtual")
	}
	if second.Participation.Known() {
		t.Error("virtual should not be a known participation mode")
	}
}

func TestHTTPFetchRetriesOn5xx(t *testing.T) {
	calls := 0
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			http.Error(w, "flaky", http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(`[]`))
	}))
	defer ts.Close()

	src := NewHTTP(ts.URL, 5*time.Second, 3, time.Millisecond)
	if _, err := src.Fetch(context.Background()); err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if calls != 2 {
		t.Errorf("upstream calls = %d, want 2 (one retry)", calls)
	}
}

func TestHTTPFetchExhaustsRetries(t *testing.T) {
	calls := 0
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	defer ts.Close()

	src := NewHTTP(ts.URL, 5*time.Second, 2, time.Millisecond)
	if _, err := src.Fetch(context.Background()); err == nil {
		t.Fatal("expected error after exhausting retries")
	}
	if calls != 2 {
		t.Errorf("upstream calls = %d, want 2", calls)
	}
}

func TestHTTPFetchRejectsClientError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer ts.Close()

	src := NewHTTP(ts.URL, 5*time.Second, 3, time.Millisecond)
	if _, err := src.Fetch(context.Background()); err == nil {
		t.Fatal("expected error on 404 response")
	}
}

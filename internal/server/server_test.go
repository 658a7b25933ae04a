package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/openevents/eventboard/internal/app"
	"github.com/openevents/eventboard/internal/cache"
	"github.com/openevents/eventboard/internal/models"
	"github.com/openevents/eventboard/internal/source"
)

type failingSource struct{}

func (failingSource) Fetch(ctx context.Context) (models.EventSet, error) {
	return nil, errors.New("upstream down")
}

func newTestServer(t *testing.T, src source.Source) *Server {
	t.Helper()
	srv := New(":0", 15*time.Second, 15*time.Second)
	application := app.New(cache.New(time.Minute), src, srv)
	srv.Bind(application)
	_ = application.Start(context.Background())
	return srv
}

func do(t *testing.T, srv *Server, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)
	return rec
}

func TestEventsEndpointFiltersByCountry(t *testing.T) {
	srv := newTestServer(t, source.NewStatic(0))

	rec := do(t, srv, http.MethodGet, "/api/events?country=Germany")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var result models.FilteredResult
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if result.VisibleCount != 1 || result.TotalCount != 8 {
		t.Errorf("counts %d/%d, want 1/8", result.VisibleCount, result.TotalCount)
	}
	if len(result.Visible) != 1 || result.Visible[0].ID != 2 {
		t.Errorf("unexpected visible events: %+v", result.Visible)
	}
}

func TestEventsEndpointSearch(t *testing.T) {
	srv := newTestServer(t, source.NewStatic(0))

	rec := do(t, srv, http.MethodGet, "/api/events?q=wiki")
	var result models.FilteredResult
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if result.VisibleCount != 3 {
		t.Errorf("VisibleCount = %d, want 3", result.VisibleCount)
	}
}

func TestEventsEndpointEmptyResultIsNotNull(t *testing.T) {
	srv := newTestServer(t, source.NewStatic(0))

	rec := do(t, srv, http.MethodGet, "/api/events?q=zzz-no-such-event")
	body := rec.Body.String()
	if strings.Contains(body, `"visible":null`) {
		t.Errorf("empty result must be [], not null: %s", body)
	}
}

func TestFacetsEndpoint(t *testing.T) {
	srv := newTestServer(t, source.NewStatic(0))

	rec := do(t, srv, http.MethodGet, "/api/facets")
	var facets models.Facets
	if err := json.NewDecoder(rec.Body).Decode(&facets); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(facets.Countries) != 8 || facets.Countries[0] != "Canada" {
		t.Errorf("unexpected countries: %v", facets.Countries)
	}
	if len(facets.EventTypes) != 6 || facets.EventTypes[0] != "Competition" {
		t.Errorf("unexpected event types: %v", facets.EventTypes)
	}
}

func TestRefreshEndpoint(t *testing.T) {
	srv := newTestServer(t, source.NewStatic(0))

	rec := do(t, srv, http.MethodPost, "/api/refresh")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var body map[string]int
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["total"] != 8 {
		t.Errorf("total = %d, want 8", body["total"])
	}
}

func TestIndexPageRendersCards(t *testing.T) {
	srv := newTestServer(t, source.NewStatic(0))

	rec := do(t, srv, http.MethodGet, "/")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Community Events") {
		t.Error("page missing heading")
	}
	if !strings.Contains(body, "Showing 8 of 8 events") {
		t.Error("page missing counts line")
	}
	if !strings.Contains(body, "WikiGap Challenge") {
		t.Error("page missing event card")
	}
	if !strings.Contains(body, "badge-workshop") {
		t.Error("page missing type badge class")
	}
}

func TestIndexPageNoResultsState(t *testing.T) {
	srv := newTestServer(t, source.NewStatic(0))

	rec := do(t, srv, http.MethodGet, "/?q=zzz-no-such-event")
	if !strings.Contains(rec.Body.String(), "No events match") {
		t.Error("page missing explicit no-results state")
	}
}

func TestIndexPageErrorState(t *testing.T) {
	srv := newTestServer(t, failingSource{})

	rec := do(t, srv, http.MethodGet, "/")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Could not load events") {
		t.Error("page missing error state")
	}
}

func TestEventsEndpointErrorState(t *testing.T) {
	srv := newTestServer(t, failingSource{})

	rec := do(t, srv, http.MethodGet, "/api/events")
	if rec.Code != http.StatusBadGateway {
		t.Errorf("status = %d, want 502", rec.Code)
	}
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer(t, source.NewStatic(0))

	rec := do(t, srv, http.MethodGet, "/health")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"status":"ok"`) {
		t.Errorf("unexpected health body: %s", rec.Body.String())
	}
}

func TestMetricsEndpoint(t *testing.T) {
	srv := newTestServer(t, source.NewStatic(0))

	rec := do(t, srv, http.MethodGet, "/metrics")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "eventboard_loads_total") {
		t.Error("metrics output missing eventboard collectors")
	}
}

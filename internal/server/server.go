// Package server is the HTTP presentation adapter. It implements app.Renderer
// by keeping a snapshot of the latest lifecycle, facet, and filter updates,
// and serves that snapshot as an HTML card page and a small JSON API.
package server

import (
	"context"
	"encoding/json"
	"html/template"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/openevents/eventboard/internal/app"
	"github.com/openevents/eventboard/internal/logger"
	"github.com/openevents/eventboard/internal/models"
)

// viewState is the rendered snapshot: the latest value of each outbound
// boundary update.
type viewState struct {
	lifecycle models.SignalKind
	errMsg    string
	facets    models.Facets
	result    models.FilteredResult
}

// Server hosts the catalog page and API. Bind must be called before Serve.
type Server struct {
	application *app.App
	tmpl        *template.Template
	router      chi.Router
	httpServer  *http.Server

	mu   sync.RWMutex
	view viewState
}

type errorResponse struct {
	Error string `json:"error"`
}

// New builds the router and HTTP server. The initial view state is "loading"
// until the first lifecycle signal arrives.
func New(addr string, readTimeout, writeTimeout time.Duration) *Server {
	s := &Server{
		tmpl: template.Must(template.New("index").Parse(indexTemplate)),
	}

	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)

	r.Get("/", s.handleIndex)
	r.Route("/api", func(r chi.Router) {
		r.Get("/events", s.handleEvents)
		r.Get("/facets", s.handleFacets)
		r.Post("/refresh", s.handleRefresh)
	})
	r.Get("/health", handleHealth)
	r.Handle("/metrics", promhttp.Handler())

	s.router = r
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}
	return s
}

// Bind attaches the application after construction. The server is the app's
// renderer, so the two reference each other; Bind breaks the cycle.
func (s *Server) Bind(a *app.App) {
	s.application = a
}

// Router exposes the chi router, used by tests.
func (s *Server) Router() http.Handler {
	return s.router
}

// Serve blocks on ListenAndServe.
func (s *Server) Serve() error {
	logger.Info("HTTP server listening on %s", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ─── app.Renderer ─────────────────────────────────────────────────────────────

// RenderSignal records the lifecycle transition.
func (s *Server) RenderSignal(sig models.Signal) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.view.lifecycle = sig.Kind
	if sig.Kind == models.SignalError {
		s.view.errMsg = sig.Message
	} else {
		s.view.errMsg = ""
	}
}

// RenderFacets records the sorted facet lists of the latest load.
func (s *Server) RenderFacets(facets models.Facets) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.view.facets = facets
}

// RenderFilter records the latest filter evaluation.
func (s *Server) RenderFilter(result models.FilteredResult) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.view.result = result
}

func (s *Server) snapshot() viewState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.view
}

// ─── Handlers ─────────────────────────────────────────────────────────────────

// applyFilters maps query parameters onto the inbound boundary events. The
// parameters fully define the filter state, so "clear" and absent parameters
// behave the same way a cleared form does.
func (s *Server) applyFilters(q url.Values) {
	if q.Has("clear") {
		s.application.OnClearFiltersRequested()
		return
	}
	s.application.OnSearchTextChanged(q.Get("q"))
	s.application.OnCountrySelected(q.Get("country"))
	s.application.OnTypeSelected(q.Get("type"))
	s.application.OnParticipationSelected(q.Get("participation"))
}

// handleIndex renders the card page for the current filter parameters.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.applyFilters(r.URL.Query())

	data := s.buildPage(s.snapshot(), s.application.Filters())
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tmpl.Execute(w, data); err != nil {
		logger.Error("Failed to render index page: %v", err)
	}
}

// handleEvents returns the filtered result as JSON.
func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	s.applyFilters(r.URL.Query())

	view := s.snapshot()
	if view.lifecycle == models.SignalError {
		writeError(w, http.StatusBadGateway, view.errMsg)
		return
	}
	result := view.result
	if result.Visible == nil {
		result.Visible = models.EventSet{}
	}
	writeJSON(w, http.StatusOK, result)
}

// handleFacets returns the sorted facet lists of the latest load.
func (s *Server) handleFacets(w http.ResponseWriter, r *http.Request) {
	facets := s.application.Facets()
	if facets.Countries == nil {
		facets.Countries = []string{}
	}
	if facets.EventTypes == nil {
		facets.EventTypes = []string{}
	}
	writeJSON(w, http.StatusOK, facets)
}

// handleRefresh forces a live fetch. The prior view survives in the app even
// when the refresh fails; the error is still surfaced to the caller.
func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	if err := s.application.OnRefreshRequested(r.Context()); err != nil {
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}

	view := s.snapshot()
	writeJSON(w, http.StatusOK, map[string]int{"total": view.result.TotalCount})
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

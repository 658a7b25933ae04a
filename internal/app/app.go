// Package app owns the application state of the event catalog: the loaded
// event set, the derived facets, and the current filter state. It accepts the
// inbound boundary events (search text changed, filter selected, refresh,
// clear) and drives a Renderer with lifecycle, facet, and filter updates.
//
// The state lives in one explicit App value constructed at startup; there are
// no package-level singletons.
package app

import (
	"context"
	"sync"

	"github.com/openevents/eventboard/internal/cache"
	"github.com/openevents/eventboard/internal/catalog"
	"github.com/openevents/eventboard/internal/logger"
	"github.com/openevents/eventboard/internal/models"
	"github.com/openevents/eventboard/internal/source"
)

// Renderer is the outbound presentation boundary. It must tolerate an empty
// FilteredResult (rendering an explicit "no results" state) and is invoked
// after every loader transition and every filter evaluation.
type Renderer interface {
	RenderSignal(models.Signal)
	RenderFacets(models.Facets)
	RenderFilter(models.FilteredResult)
}

// App holds the catalog state and dispatches boundary events. A mutex
// serializes the boundary events because HTTP presentation adapters invoke
// them from request goroutines; within one event the pipeline is synchronous.
type App struct {
	mu sync.Mutex

	loader   *catalog.Loader
	renderer Renderer

	events  models.EventSet
	facets  models.Facets
	filters models.FilterState
}

// New constructs the application state. Extra signal observers (metrics,
// notifiers) receive every lifecycle signal after the renderer.
func New(c *cache.Cache, src source.Source, renderer Renderer, observers ...func(models.Signal)) *App {
	a := &App{renderer: renderer}
	a.loader = catalog.NewLoader(c, src, func(sig models.Signal) {
		a.handleSignal(sig)
		for _, observe := range observers {
			observe(sig)
		}
	})
	return a
}

// handleSignal forwards lifecycle signals to the renderer and, on a
// successful load, recomputes facets and re-filters. Runs under a.mu, taken
// by the boundary event that triggered the load.
func (a *App) handleSignal(sig models.Signal) {
	a.renderer.RenderSignal(sig)

	if sig.Kind != models.SignalLoaded {
		return
	}

	a.events = sig.Events
	a.facets = catalog.DeriveFacets(a.events)
	a.renderer.RenderFacets(a.facets)
	a.refilter()
}

// refilter runs one full filter pass and pushes the result to the renderer.
func (a *App) refilter() {
	a.renderer.RenderFilter(catalog.ApplyFilter(a.events, a.filters))
}

// Start performs the initial load.
func (a *App) Start(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	_, err := a.loader.Load(ctx)
	return err
}

// OnSearchTextChanged updates the free-text criterion and re-filters.
func (a *App) OnSearchTextChanged(text string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.filters.Query = text
	a.refilter()
}

// OnCountrySelected updates the country criterion ("" = any) and re-filters.
func (a *App) OnCountrySelected(country string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.filters.Country = country
	a.refilter()
}

// OnTypeSelected updates the event type criterion ("" = any) and re-filters.
func (a *App) OnTypeSelected(eventType string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.filters.EventType = eventType
	a.refilter()
}

// OnParticipationSelected updates the participation criterion ("" = any) and
// re-filters. Unrecognized values are applied verbatim and simply match
// nothing from the closed domain.
func (a *App) OnParticipationSelected(mode string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.filters.Participation, _ = models.ParseParticipationMode(mode)
	a.refilter()
}

// OnRefreshRequested invalidates the cache and forces a live fetch. On
// failure the renderer has received the error signal (the page switches to
// its error state) but the previously loaded set stays in App — a failed
// fetch never overwrites it, only the invalidation mandated by refresh
// touches the cache.
func (a *App) OnRefreshRequested(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	_, err := a.loader.Refresh(ctx)
	if err != nil {
		logger.Warn("Refresh failed, keeping %d previously loaded events: %v", len(a.events), err)
	}
	return err
}

// OnClearFiltersRequested resets all four criteria and re-filters, yielding
// the full set in original order.
func (a *App) OnClearFiltersRequested() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.filters.Reset()
	a.refilter()
}

// Filters returns a copy of the current filter state.
func (a *App) Filters() models.FilterState {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.filters
}

// Facets returns the facets derived from the last successful load.
func (a *App) Facets() models.Facets {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.facets
}

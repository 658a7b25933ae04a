package catalog

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/openevents/eventboard/internal/cache"
	"github.com/openevents/eventboard/internal/logger"
	"github.com/openevents/eventboard/internal/metrics"
	"github.com/openevents/eventboard/internal/models"
	"github.com/openevents/eventboard/internal/source"
)

// Loader produces the current event set, consulting the cache before going to
// the data source. Every load operation gets a fresh operation ID that is
// carried on all of its lifecycle signals.
//
// Loader is not safe for concurrent use. If a refresh overlaps an in-flight
// load, both fetch independently and the last one to complete wins by
// overwriting the cache; callers should avoid triggering overlapping loads.
type Loader struct {
	cache  *cache.Cache
	source source.Source
	emit   func(models.Signal)
}

// NewLoader wires a cache, a source, and a signal sink. A nil emit is allowed
// and discards signals.
func NewLoader(c *cache.Cache, s source.Source, emit func(models.Signal)) *Loader {
	if emit == nil {
		emit = func(models.Signal) {}
	}
	return &Loader{
		cache:  c,
		source: s,
		emit:   emit,
	}
}

// Load returns the current event set. A valid cache entry is returned
// immediately with no upstream I/O; otherwise a live fetch runs, bracketed by
// loading/loaded lifecycle signals.
//
// On fetch failure the cache is left untouched, an error signal carrying a
// user-facing message is emitted, and the error is returned; callers must not
// proceed to facet or filter computation with a nil set.
func (l *Loader) Load(ctx context.Context) (models.EventSet, error) {
	opID := uuid.New().String()

	if events, ok := l.cache.Get(); ok {
		logger.Debug("Load %s: served %d events from cache", opID, len(events))
		metrics.LoadsTotal.WithLabelValues("hit").Inc()
		l.emit(models.LoadedSignal(opID, events))
		return events, nil
	}

	return l.fetch(ctx, opID)
}

// Refresh invalidates the cache and forces a live fetch even if a valid
// entry exists.
func (l *Loader) Refresh(ctx context.Context) (models.EventSet, error) {
	opID := uuid.New().String()
	logger.Info("Refresh %s: invalidating cache and refetching", opID)
	l.cache.Invalidate()
	return l.fetch(ctx, opID)
}

func (l *Loader) fetch(ctx context.Context, opID string) (models.EventSet, error) {
	l.emit(models.LoadingSignal(opID))

	events, err := l.source.Fetch(ctx)
	if err != nil {
		metrics.LoadsTotal.WithLabelValues("error").Inc()
		logger.Error("Load %s: fetch failed: %v", opID, err)
		l.emit(models.ErrorSignal(opID, fmt.Sprintf("Could not load events: %v", err)))
		return nil, fmt.Errorf("failed to load events: %w", err)
	}

	events = dropDuplicateIDs(opID, events)

	l.cache.Put(events)
	metrics.LoadsTotal.WithLabelValues("fetched").Inc()
	logger.Info("Load %s: fetched %d events", opID, len(events))
	l.emit(models.LoadedSignal(opID, events))
	return events, nil
}

// dropDuplicateIDs enforces ID uniqueness within a loaded set. The first
// occurrence wins; later ones are dropped with a warning.
func dropDuplicateIDs(opID string, events models.EventSet) models.EventSet {
	seen := make(map[int64]struct{}, len(events))
	result := events[:0:0]
	for _, e := range events {
		if _, dup := seen[e.ID]; dup {
			logger.Warn("Load %s: dropping duplicate event ID %d (%q)", opID, e.ID, e.Title)
			continue
		}
		seen[e.ID] = struct{}{}
		result = append(result, e)
	}
	return result
}

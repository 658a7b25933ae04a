// Package source provides the data sources the loader fetches event sets from.
// A source always returns the full event set; filtering never happens
// upstream. Three transports are available: a built-in static sample set, an
// HTTP JSON endpoint, and a Postgres table.
package source

import (
	"context"

	"github.com/openevents/eventboard/internal/models"
)

// Source is the fetch collaborator of the loader. Fetch either yields the
// full event set in upstream order or fails; partial results are not returned.
type Source interface {
	Fetch(ctx context.Context) (models.EventSet, error)
}

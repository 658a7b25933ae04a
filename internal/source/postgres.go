package source

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/openevents/eventboard/internal/logger"
	"github.com/openevents/eventboard/internal/models"
)

// Postgres fetches the event set from an events table. It uses pgx directly
// (no ORM) and always reads the full table; filtering stays local.
type Postgres struct {
	db *pgxpool.Pool
}

// NewPostgres connects a pgx pool for the given DSN.
func NewPostgres(ctx context.Context, dsn string) (*Postgres, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return &Postgres{db: pool}, nil
}

// Close releases the connection pool.
func (p *Postgres) Close() {
	p.db.Close()
}

// Fetch reads all events ordered by ID. Rows failing per-record validation
// are skipped with a warning.
func (p *Postgres) Fetch(ctx context.Context) (models.EventSet, error) {
	rows, err := p.db.Query(ctx,
		`SELECT id, title, description, start_date, end_date, country,
		        COALESCE(location, ''), event_type, participation, link, organizer
		 FROM events
		 ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}
	defer rows.Close()

	var events models.EventSet
	for rows.Next() {
		var e models.EventRecord
		var participation string
		if err := rows.Scan(&e.ID, &e.Title, &e.Description, &e.StartDate, &e.EndDate,
			&e.Country, &e.Location, &e.EventType, &participation, &e.Link, &e.Organizer); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		e.Participation, _ = models.ParseParticipationMode(participation)
		if err := e.Validate(); err != nil {
			logger.Warn("Skipping event %d from database: %v", e.ID, err)
			continue
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read events: %w", err)
	}

	return events, nil
}

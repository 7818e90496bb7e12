package db

import (
	"context"
	"database/sql"

	"github.com/lib/pq"

	"tierevents/models"
)

const eventColumns = `id, title, description, event_date, image_url, tier, created_at`

// EventStore reads the event catalog.
type EventStore struct {
	conn *sql.DB
}

func NewEventStore(conn *sql.DB) *EventStore {
	return &EventStore{conn: conn}
}

// ListAll returns the whole catalog, earliest event first.
func (s *EventStore) ListAll(ctx context.Context) ([]models.Event, error) {
	rows, err := s.conn.QueryContext(ctx, `SELECT `+eventColumns+` FROM events ORDER BY event_date ASC, id ASC`)
	if err != nil {
		return nil, err
	}
	return scanEvents(rows)
}

// ListByTiers returns only events gated at one of tiers, earliest first.
func (s *EventStore) ListByTiers(ctx context.Context, tiers []models.Tier) ([]models.Event, error) {
	names := make([]string, len(tiers))
	for i, t := range tiers {
		names[i] = string(t)
	}
	rows, err := s.conn.QueryContext(ctx,
		`SELECT `+eventColumns+` FROM events WHERE tier = ANY($1) ORDER BY event_date ASC, id ASC`,
		pq.Array(names))
	if err != nil {
		return nil, err
	}
	return scanEvents(rows)
}

// InsertIfAbsent adds e unless an event with the same id exists. Used by the seed command.
func (s *EventStore) InsertIfAbsent(ctx context.Context, e models.Event) (bool, error) {
	res, err := s.conn.ExecContext(ctx, `
		INSERT INTO events (`+eventColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO NOTHING
	`, e.ID, e.Title, e.Description, e.EventDate, e.ImageURL, e.Tier, e.CreatedAt)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func scanEvents(rows *sql.Rows) ([]models.Event, error) {
	defer rows.Close()

	events := []models.Event{}
	for rows.Next() {
		var e models.Event
		if err := rows.Scan(&e.ID, &e.Title, &e.Description, &e.EventDate, &e.ImageURL, &e.Tier, &e.CreatedAt); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return events, nil
}

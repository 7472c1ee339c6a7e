package postgres

import (
	"context"
	"time"

	"github.com/tendant/campus-content/pkg/campus"
)

const eventColumns = `id, title, description, date, time, location, category, featured, image`

func scanEvent(row rowScanner) (*campus.Event, error) {
	var e campus.Event
	err := row.Scan(&e.ID, &e.Title, &e.Description, &e.Date, &e.Time,
		&e.Location, &e.Category, &e.Featured, &e.Image)
	if err != nil {
		return nil, err
	}
	e.Date = e.Date.UTC()
	return &e, nil
}

func (r *Repository) ListEvents(ctx context.Context) ([]*campus.Event, error) {
	return queryList(ctx, r, "list events", scanEvent,
		`SELECT `+eventColumns+` FROM events ORDER BY date DESC, id DESC`)
}

func (r *Repository) ListFeaturedEvents(ctx context.Context) ([]*campus.Event, error) {
	return queryList(ctx, r, "list featured events", scanEvent,
		`SELECT `+eventColumns+` FROM events WHERE featured ORDER BY date DESC, id DESC`)
}

// ListUpcomingEvents cuts off at the repository clock, not the database NOW().
func (r *Repository) ListUpcomingEvents(ctx context.Context) ([]*campus.Event, error) {
	return queryList(ctx, r, "list upcoming events", scanEvent,
		`SELECT `+eventColumns+` FROM events WHERE date >= $1 ORDER BY date ASC, id ASC`, r.now().UTC())
}

func (r *Repository) GetEvent(ctx context.Context, id int64) (*campus.Event, error) {
	return queryOne(ctx, r, "get event", scanEvent,
		`SELECT `+eventColumns+` FROM events WHERE id = $1`, id)
}

func (r *Repository) CreateEvent(ctx context.Context, e *campus.Event) (*campus.Event, error) {
	query := `
		INSERT INTO events (title, description, date, time, location, category, featured, image)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + eventColumns

	return queryOne(ctx, r, "create event", scanEvent, query,
		e.Title, e.Description, e.Date.UTC().Truncate(time.Microsecond), e.Time,
		e.Location, e.Category, e.Featured, e.Image)
}

package database

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"

	"transit-ticketing/models"
)

// Journal appends ledger events to PostgreSQL. It is an audit trail only;
// the in-memory ledger stays authoritative.
type Journal struct {
	db *sql.DB
}

// NewJournal creates a journal over an open connection
func NewJournal(db *sql.DB) *Journal {
	return &Journal{db: db}
}

// Record inserts one event
func (j *Journal) Record(ctx context.Context, event models.LedgerEvent) error {
	_, err := j.db.ExecContext(ctx, `
		INSERT INTO ledger_events (id, kind, passenger_id, route, station, descriptor, success, error, recorded_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, event.ID.String(), string(event.Kind), event.PassengerID, event.Route, event.Station,
		event.Descriptor, event.Success, event.Error, event.At)
	if err != nil {
		return errors.Wrapf(err, "failed to record %s event %s", event.Kind, event.ID)
	}
	return nil
}

// Recent returns the latest events, newest first
func (j *Journal) Recent(ctx context.Context, limit int) ([]models.LedgerEvent, error) {
	rows, err := j.db.QueryContext(ctx, `
		SELECT id, kind, passenger_id, route, station, descriptor, success, error, recorded_at
		FROM ledger_events
		ORDER BY recorded_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query ledger events")
	}
	defer rows.Close()

	var events []models.LedgerEvent
	for rows.Next() {
		var event models.LedgerEvent
		var kind string

		err := rows.Scan(
			&event.ID, &kind, &event.PassengerID, &event.Route, &event.Station,
			&event.Descriptor, &event.Success, &event.Error, &event.At,
		)
		if err != nil {
			return nil, errors.Wrap(err, "failed to scan ledger event")
		}
		event.Kind = models.EventKind(kind)

		events = append(events, event)
	}

	return events, errors.Wrap(rows.Err(), "failed to read ledger events")
}

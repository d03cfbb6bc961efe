package database

import (
	"database/sql"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

const createLedgerEvents = `
	CREATE TABLE IF NOT EXISTS ledger_events (
		id           UUID PRIMARY KEY,
		kind         TEXT NOT NULL,
		passenger_id TEXT NOT NULL DEFAULT '',
		route        TEXT NOT NULL DEFAULT '',
		station      TEXT NOT NULL DEFAULT '',
		descriptor   TEXT NOT NULL DEFAULT '',
		success      BOOLEAN NOT NULL,
		error        TEXT NOT NULL DEFAULT '',
		recorded_at  TIMESTAMPTZ NOT NULL
	)
`

// RunMigrations ensures the journal table exists
func RunMigrations(db *sql.DB) error {
	log.Debug().Msg("Checking database schema...")

	if _, err := db.Exec(createLedgerEvents); err != nil {
		return errors.Wrap(err, "failed to create ledger_events")
	}

	log.Info().Msg("Database schema ready")
	return nil
}

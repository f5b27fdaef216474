package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	if err := migrateBackfillConfirmationStatus(db); err != nil {
		return fmt.Errorf("backfilling confirmation status: %w", err)
	}
	return nil
}

// migrateBackfillConfirmationStatus derives confirmation_status for rows
// written before the column existed. Those rows carry the default 'pending'
// while their scheduling_status already records the outcome.
func migrateBackfillConfirmationStatus(db *sql.DB) error {
	ctx := context.Background()
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting migration transaction: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	for _, outcome := range []string{"confirmed", "cancelled"} {
		if _, err := tx.ExecContext(ctx, `UPDATE maintenance_tasks
			SET confirmation_status = ?
			WHERE scheduling_status = ? AND confirmation_status = 'pending'`, outcome, outcome); err != nil {
			return fmt.Errorf("backfilling %s tasks: %w", outcome, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing confirmation backfill: %w", err)
	}
	committed = true
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS technicians (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		initials   TEXT NOT NULL DEFAULT '',
		color      TEXT NOT NULL DEFAULT '',
		sort_order INTEGER NOT NULL DEFAULT 0
	)`,

	`CREATE TABLE IF NOT EXISTS maintenance_tasks (
		id                  TEXT PRIMARY KEY,
		contact_person      TEXT NOT NULL,
		location            TEXT NOT NULL DEFAULT '',
		phone               TEXT NOT NULL DEFAULT '',
		email               TEXT NOT NULL DEFAULT '',
		scheduled_date      TEXT NOT NULL,
		maintenance_status  TEXT NOT NULL DEFAULT 'unplanned'
		                    CHECK(maintenance_status IN ('unplanned','not_answered','contacted','planned')),
		scheduling_status   TEXT NOT NULL DEFAULT 'not_contacted'
		                    CHECK(scheduling_status IN ('not_contacted','email_sent','email_confirmed','phone_called','confirmed','cancelled')),
		confirmation_status TEXT NOT NULL DEFAULT 'pending'
		                    CHECK(confirmation_status IN ('pending','tentative','confirmed','cancelled')),
		technician_id       TEXT,
		notes               TEXT NOT NULL DEFAULT ''
	)`,

	// Tables created before confirmation tracking lack the column.
	`ALTER TABLE maintenance_tasks ADD COLUMN confirmation_status TEXT NOT NULL DEFAULT 'pending'
		CHECK(confirmation_status IN ('pending','tentative','confirmed','cancelled'))`,

	`CREATE INDEX IF NOT EXISTS idx_tasks_scheduled_date ON maintenance_tasks(scheduled_date)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_technician ON maintenance_tasks(technician_id)`,

	`CREATE TABLE IF NOT EXISTS service_tickets (
		id             TEXT PRIMARY KEY,
		title          TEXT NOT NULL,
		contact_person TEXT NOT NULL DEFAULT '',
		location       TEXT NOT NULL DEFAULT '',
		phone          TEXT NOT NULL DEFAULT '',
		email          TEXT NOT NULL DEFAULT '',
		priority       TEXT NOT NULL DEFAULT 'medium'
		               CHECK(priority IN ('low','medium','high','urgent')),
		created_at     TEXT NOT NULL,
		description    TEXT NOT NULL DEFAULT ''
	)`,

	// Customer master data keeps the column names of the legacy owner table.
	`CREATE TABLE IF NOT EXISTS Tblanl_eigentuemer (
		AnlID          INTEGER PRIMARY KEY,
		EigentuemerNr  TEXT,
		Nachname       TEXT NOT NULL,
		Vorname        TEXT NOT NULL,
		Firma          TEXT,
		Titel          TEXT,
		Anrede         TEXT,
		Strasse        TEXT,
		HausNr         TEXT,
		PLZ            TEXT,
		Ort            TEXT,
		Ortsteil       TEXT,
		TelefonNr      TEXT,
		TelefonNrGesch TEXT,
		MobilNr        TEXT,
		Email          TEXT,
		Anmerkungen    TEXT
	)`,

	`CREATE INDEX IF NOT EXISTS idx_eigentuemer_ort ON Tblanl_eigentuemer(Ort)`,
}

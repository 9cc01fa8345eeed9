package database

import (
	"context"
	"database/sql"
)

// runMigrations creates the database schema if needed
func runMigrations(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS items (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT NOT NULL,
			price TEXT NOT NULL,
			description TEXT NOT NULL,
			create_date TEXT NOT NULL,
			priority TEXT NOT NULL DEFAULT 'NORMAL'
				CHECK (priority IN ('NORMAL', 'HIGH')),
			is_done BOOLEAN NOT NULL DEFAULT 0,
			category TEXT NOT NULL
				CHECK (category IN ('FOOD', 'SUPPLIES', 'BOOK'))
		)
	`)
	return err
}

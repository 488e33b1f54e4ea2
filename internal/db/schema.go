package db

import (
	"context"
	"database/sql"
	"fmt"
)

// schema lists the statements that create the tables if they are missing.
// Constraint names follow the Postgres defaults that the store maps back to fields.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id    SERIAL PRIMARY KEY,
		name  VARCHAR(80) NOT NULL,
		email VARCHAR(80) NOT NULL,
		CONSTRAINT users_name_key UNIQUE (name),
		CONSTRAINT users_email_key UNIQUE (email)
	)`,
	`CREATE TABLE IF NOT EXISTS equipment (
		id               SERIAL PRIMARY KEY,
		id_no            VARCHAR(120) NOT NULL,
		maker_model_type VARCHAR(255) NOT NULL,
		category         VARCHAR(120) NOT NULL,
		condition        VARCHAR(120) NOT NULL,
		deployment       VARCHAR(120) NOT NULL,
		quantity         INTEGER NOT NULL,
		location         VARCHAR(255) NOT NULL,
		date_received    VARCHAR(50) NOT NULL,
		description      TEXT,
		CONSTRAINT equipment_id_no_key UNIQUE (id_no)
	)`,
}

// EnsureSchema creates the users and equipment tables when absent.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for i, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("schema statement %d: %w", i+1, err)
		}
	}
	return nil
}

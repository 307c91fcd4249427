package database

import "context"

// Attendance and donation stay as JSONB documents on the member row, matching
// the year → month nested shape the aggregators consume.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS members (
		roll_no       integer PRIMARY KEY,
		name          text,
		last_name     text,
		phone_no      text,
		email         text,
		address       text,
		password_hash text,
		is_admin      boolean NOT NULL DEFAULT false,
		is_active     boolean NOT NULL DEFAULT true,
		attendance    jsonb NOT NULL DEFAULT '{}',
		donation      jsonb NOT NULL DEFAULT '{}',
		created_at    timestamptz NOT NULL DEFAULT NOW(),
		updated_at    timestamptz NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS expenses (
		id     integer PRIMARY KEY CHECK (id = 1),
		ledger jsonb NOT NULL DEFAULT '{}'
	)`,
	`INSERT INTO expenses (id) VALUES (1) ON CONFLICT (id) DO NOTHING`,
	`CREATE TABLE IF NOT EXISTS posts (
		id           uuid PRIMARY KEY,
		roll_no      integer NOT NULL,
		name         text,
		last_name    text,
		image_link   text,
		text_content text,
		upload_time  timestamptz NOT NULL DEFAULT NOW(),
		likes        jsonb NOT NULL DEFAULT '[]',
		comments     jsonb NOT NULL DEFAULT '[]'
	)`,
	`CREATE TABLE IF NOT EXISTS roster (
		day         text PRIMARY KEY,
		assignments jsonb NOT NULL DEFAULT '[]'
	)`,
}

// EnsureSchema creates the tables on startup when they do not exist yet.
func (db *DB) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := db.pool.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

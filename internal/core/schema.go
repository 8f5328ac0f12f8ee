// AngelaMos | 2026
// schema.go

package core

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// schemaStatements materialize the portal tables. Every statement is
// idempotent (IF NOT EXISTS) so EnsureSchema is safe on every process start.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		username      TEXT PRIMARY KEY,
		password_hash TEXT NOT NULL,
		role          TEXT NOT NULL DEFAULT 'client',
		created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS projects (
		project_id      BIGINT PRIMARY KEY,
		client_username TEXT NOT NULL REFERENCES users(username),
		name            TEXT NOT NULL,
		status          TEXT NOT NULL,
		milestone       TEXT NOT NULL DEFAULT '',
		last_updated    DATE NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS invoices (
		invoice_id BIGINT PRIMARY KEY,
		project_id BIGINT NOT NULL REFERENCES projects(project_id),
		amount     NUMERIC(12,2) NOT NULL CHECK (amount >= 0),
		status     TEXT NOT NULL DEFAULT 'Pending',
		due_date   DATE NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS messages (
		message_id BIGSERIAL PRIMARY KEY,
		project_id BIGINT NOT NULL REFERENCES projects(project_id),
		sender     TEXT NOT NULL REFERENCES users(username),
		content    TEXT NOT NULL,
		sent_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_messages_project_sent
		ON messages (project_id, sent_at)`,
	`CREATE TABLE IF NOT EXISTS expenses (
		expense_id  BIGINT PRIMARY KEY,
		project_id  BIGINT NOT NULL REFERENCES projects(project_id),
		description TEXT NOT NULL,
		amount      NUMERIC(12,2) NOT NULL CHECK (amount >= 0)
	)`,
	`CREATE TABLE IF NOT EXISTS refresh_tokens (
		id             TEXT PRIMARY KEY,
		username       TEXT NOT NULL REFERENCES users(username),
		token_hash     TEXT NOT NULL UNIQUE,
		family_id      TEXT NOT NULL,
		expires_at     TIMESTAMPTZ NOT NULL,
		created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		is_used        BOOLEAN NOT NULL DEFAULT FALSE,
		used_at        TIMESTAMPTZ,
		revoked_at     TIMESTAMPTZ,
		replaced_by_id TEXT,
		user_agent     TEXT NOT NULL DEFAULT '',
		ip_address     TEXT NOT NULL DEFAULT ''
	)`,
}

func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}

	return nil
}

// Seed inserts the baseline demonstration rows. Inserts are keyed on the
// primary key with ON CONFLICT DO NOTHING, so repeated seeding leaves the
// row set unchanged.
func Seed(ctx context.Context, db *sqlx.DB) error {
	passwordHash, err := HashPassword("pass123")
	if err != nil {
		return fmt.Errorf("seed: hash demo password: %w", err)
	}

	return InTx(ctx, db, func(tx *sqlx.Tx) error {
		userQuery := `
			INSERT INTO users (username, password_hash, role)
			VALUES ($1, $2, $3)
			ON CONFLICT (username) DO NOTHING`

		if _, err := tx.ExecContext(ctx, userQuery,
			"client1", passwordHash, "client",
		); err != nil {
			return fmt.Errorf("seed users: %w", err)
		}

		projectQuery := `
			INSERT INTO projects (
				project_id, client_username, name, status, milestone, last_updated
			) VALUES ($1, $2, $3, $4, $5, $6)
			ON CONFLICT (project_id) DO NOTHING`

		if _, err := tx.ExecContext(ctx, projectQuery,
			1, "client1", "Roofing Project", "In Progress",
			"Foundation Complete", "2025-04-20",
		); err != nil {
			return fmt.Errorf("seed projects: %w", err)
		}

		invoiceQuery := `
			INSERT INTO invoices (invoice_id, project_id, amount, status, due_date)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (invoice_id) DO NOTHING`

		if _, err := tx.ExecContext(ctx, invoiceQuery,
			1, 1, 5000.0, "Pending", "2025-05-01",
		); err != nil {
			return fmt.Errorf("seed invoices: %w", err)
		}

		expenseQuery := `
			INSERT INTO expenses (expense_id, project_id, description, amount)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (expense_id) DO NOTHING`

		if _, err := tx.ExecContext(ctx, expenseQuery,
			1, 1, "Roof Tiles", 1200.0,
		); err != nil {
			return fmt.Errorf("seed expenses: %w", err)
		}

		return nil
	})
}

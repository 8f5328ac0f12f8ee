// AngelaMos | 2026
// schema_test.go

package core

import (
	"strings"
	"testing"
)

// EnsureSchema runs unconditionally on every start, so each statement
// must be a no-op when its object already exists.
func TestSchemaStatements_Idempotent(t *testing.T) {
	for i, stmt := range schemaStatements {
		if !strings.Contains(stmt, "IF NOT EXISTS") {
			t.Fatalf("statement %d is not idempotent: %s", i, stmt)
		}
	}
}

func TestSchemaStatements_CoverPortalTables(t *testing.T) {
	tables := []string{
		"users", "projects", "invoices", "messages", "expenses",
		"refresh_tokens",
	}

	joined := strings.Join(schemaStatements, "\n")
	for _, table := range tables {
		if !strings.Contains(joined, "CREATE TABLE IF NOT EXISTS "+table) {
			t.Fatalf("schema is missing table %s", table)
		}
	}
}

func TestSchemaStatements_NoPlaintextPasswordColumn(t *testing.T) {
	joined := strings.Join(schemaStatements, "\n")
	if strings.Contains(joined, "password ") {
		t.Fatalf("users table must store password_hash, not a plaintext password")
	}
	if !strings.Contains(joined, "password_hash") {
		t.Fatalf("users table is missing password_hash")
	}
}

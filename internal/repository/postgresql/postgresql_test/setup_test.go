package postgresql_test

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/worklog-hq/attendance-backend-go/internal/pkg/database"
)

// schema mirrors the production tables. The partial unique index is what
// enforces one open record per employee per work day.
const schema = `
CREATE TABLE IF NOT EXISTS employees (
	id UUID PRIMARY KEY,
	full_name TEXT NOT NULL,
	email TEXT NOT NULL UNIQUE,
	password_hash TEXT,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS attendance_records (
	id UUID PRIMARY KEY,
	employee_id UUID NOT NULL REFERENCES employees(id),
	work_date DATE NOT NULL,
	check_in_time TIMESTAMPTZ NOT NULL,
	check_out_time TIMESTAMPTZ,
	total_hours NUMERIC(6,2),
	status TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE UNIQUE INDEX IF NOT EXISTS idx_attendance_open_per_day
	ON attendance_records (employee_id, work_date)
	WHERE check_out_time IS NULL;

CREATE TABLE IF NOT EXISTS refresh_tokens (
	id UUID PRIMARY KEY,
	employee_id UUID NOT NULL REFERENCES employees(id),
	token_hash TEXT NOT NULL UNIQUE,
	user_agent TEXT,
	ip_address TEXT,
	expires_at TIMESTAMPTZ NOT NULL,
	revoked_at TIMESTAMPTZ,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
`

// newTestDatabase connects to the database named by TEST_DATABASE_URL and
// applies the schema. Tests are skipped when the variable is unset.
func newTestDatabase(t *testing.T) *database.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping database tests")
	}

	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}
	t.Cleanup(db.Close)

	if _, err := db.Exec(context.Background(), schema); err != nil {
		t.Fatalf("failed to apply schema: %v", err)
	}

	truncateAllTables(t, db)
	return db
}

func truncateAllTables(t *testing.T, db *database.DB) {
	t.Helper()

	tables := []string{
		"refresh_tokens",
		"attendance_records",
		"employees",
	}

	for _, table := range tables {
		_, err := db.Exec(context.Background(), fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		if err != nil {
			t.Fatalf("failed to truncate table %s: %v", table, err)
		}
	}
}

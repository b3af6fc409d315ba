package db

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
)

// CreateTestPool connects to TEST_POSTGRESQL_URL with migrations applied.
// Tests are skipped when the variable is not set.
func CreateTestPool(t testing.TB) *pgxpool.Pool {
	connString := os.Getenv("TEST_POSTGRESQL_URL")
	if connString == "" {
		t.Skip("TEST_POSTGRESQL_URL is not set.")
	}
	migrationsPath := os.Getenv("TEST_MIGRATIONS_PATH")
	if migrationsPath == "" {
		panic("TEST_MIGRATIONS_PATH must be set.")
	}
	err := ApplyMigrations(migrationsPath, connString)
	if err != nil {
		panic(fmt.Sprintf("Could not apply DB migrations %v.", err))
	}

	pool, err := pgxpool.New(context.Background(), connString)
	if err != nil {
		panic("Could not connect to the database.")
	}
	return pool
}

func TruncateTables(pool *pgxpool.Pool) {
	_, err := pool.Exec(context.Background(), "TRUNCATE \"user\" RESTART IDENTITY")
	if err != nil {
		panic("Could not truncate DB tables.")
	}
}

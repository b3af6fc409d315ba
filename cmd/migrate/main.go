package main

import (
	"claon/internal/db"
	"flag"
	"fmt"
	"os"
)

func main() {
	migrationsPath := flag.String("path", envOr("MIGRATIONS_PATH", "migrations"), "directory with migration files")
	steps := flag.Int("steps", 1, "number of migrations to revert with down")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: migrate [-path dir] [-steps n] up|down\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	url := os.Getenv("POSTGRESQL_URL")
	if url == "" {
		fmt.Fprintln(os.Stderr, "error: POSTGRESQL_URL is not set")
		os.Exit(1)
	}

	var err error
	switch flag.Arg(0) {
	case "up":
		err = db.ApplyMigrations(*migrationsPath, url)
	case "down":
		err = db.RollbackMigrations(*migrationsPath, url, *steps)
	default:
		flag.Usage()
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Success")
}

func envOr(key string, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

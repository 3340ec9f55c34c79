package main

import (
	"fmt"
	"log/slog"
	"os"

	"resume-builder/internal/infrastructure/migration"

	flag "github.com/spf13/pflag"
)

func main() {
	var (
		databaseURL string
		down        int
	)
	flag.StringVar(&databaseURL, "database-url", os.Getenv("JOBS_DATABASE_URL"), "Postgres URL")
	flag.IntVar(&down, "down", 0, "roll back this many migrations instead of applying")
	flag.Parse()

	if databaseURL == "" {
		fmt.Fprintln(os.Stderr, "database URL is required (--database-url or JOBS_DATABASE_URL)")
		os.Exit(2)
	}

	var err error
	if down > 0 {
		err = migration.Down(databaseURL, down)
	} else {
		err = migration.Up(databaseURL)
	}
	if err != nil {
		slog.Error("migrate", "error", err)
		os.Exit(1)
	}
}

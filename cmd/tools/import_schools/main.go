// Command import_schools loads a medical school catalog JSON file into
// the medical_schools table.
//
// Usage:
//
//	go run cmd/tools/import_schools/main.go catalog.json
//
// Requires DATABASE_URL environment variable to be set.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync/atomic"

	"github.com/jonathan/activity-planner/internal/db"
	"golang.org/x/sync/errgroup"
)

// importWorkers bounds concurrent upserts against the pool
const importWorkers = 8

type catalogEntry struct {
	SchoolName        string `json:"school_name"`
	DegreeType        string `json:"degree_type"`
	ApplicationSystem string `json:"application_system"`
	MissionStatement  string `json:"mission_statement"`
	PrimaryCategory   string `json:"primary_category"`
}

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "Usage: import_schools <catalog.json>")
		os.Exit(1)
	}

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		fmt.Fprintln(os.Stderr, "ERROR: DATABASE_URL environment variable not set")
		os.Exit(1)
	}

	data, err := os.ReadFile(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Failed to read catalog: %v\n", err)
		os.Exit(1)
	}

	var entries []catalogEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Failed to parse catalog: %v\n", err)
		os.Exit(1)
	}
	if len(entries) == 0 {
		fmt.Println("Catalog is empty, nothing to import.")
		return
	}

	ctx := context.Background()
	database, err := db.Connect(ctx, dsn)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Failed to connect to database: %v\n", err)
		os.Exit(1)
	}
	defer database.Close()

	fmt.Printf("Importing %d schools...\n", len(entries))

	var imported, skipped atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(importWorkers)

	for _, entry := range entries {
		entry := entry
		if entry.SchoolName == "" {
			skipped.Add(1)
			continue
		}
		g.Go(func() error {
			school := db.MedicalSchool{
				SchoolName:        entry.SchoolName,
				DegreeType:        entry.DegreeType,
				ApplicationSystem: entry.ApplicationSystem,
				MissionStatement:  entry.MissionStatement,
				PrimaryCategory:   entry.PrimaryCategory,
			}
			if err := database.UpsertSchool(gctx, school); err != nil {
				return fmt.Errorf("failed to import %q: %w", entry.SchoolName, err)
			}
			imported.Add(1)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Imported: %d\n", imported.Load())
	if n := skipped.Load(); n > 0 {
		fmt.Printf("Skipped (no name): %d\n", n)
	}
	fmt.Println("Done.")
}

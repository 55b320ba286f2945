package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"normtest/adapters/postgres"
	"normtest/domain/core"
	"normtest/internal/migration"
	"normtest/models"
	"normtest/ports"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("Usage: migrate <database_url> [results_dir]")
	}

	databaseURL := os.Args[1]

	db, err := sqlx.Connect("postgres", databaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	runner := migration.NewRunner()
	if err := runner.Run(ctx, db); err != nil {
		log.Fatalf("Failed to migrate schema: %v", err)
	}
	log.Printf("Schema at version %s", runner.Version())

	if len(os.Args) < 3 {
		return
	}
	resultsDir := os.Args[2]
	repo := postgres.NewResultRepository(db)

	files, err := findResultFiles(resultsDir)
	if err != nil {
		log.Fatalf("Failed to find result files: %v", err)
	}
	log.Printf("Found %d result files to import from %s", len(files), resultsDir)

	migrated, skipped := 0, 0
	for _, file := range files {
		m, s, err := importFile(ctx, repo, file)
		if err != nil {
			log.Printf("Failed to import %s: %v", file, err)
		}
		migrated += m
		skipped += s
	}

	log.Printf("Import complete: %d migrated, %d skipped", migrated, skipped)
}

func findResultFiles(dir string) ([]string, error) {
	var files []string

	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() && strings.HasSuffix(path, ".json") {
			files = append(files, path)
		}
		return nil
	})

	return files, err
}

// importFile stores every record in a file produced by `normtest results
// --json` (an array) or holding a single record. Records already present
// are skipped, so re-running an import is harmless.
func importFile(ctx context.Context, repo ports.ResultRepository, path string) (migrated, skipped int, err error) {
	records, err := loadRecords(path)
	if err != nil {
		return 0, 0, err
	}

	for _, rec := range records {
		if rec.ID == "" {
			rec.ID = core.NewResultID()
		} else if _, err := repo.GetByID(ctx, rec.ID); err == nil {
			skipped++
			continue
		} else if !core.IsNotFoundError(err) {
			return migrated, skipped, err
		}
		if rec.CreatedAt.IsZero() {
			rec.CreatedAt = time.Now().UTC()
		}
		if rec.TestID == "" {
			log.Printf("Skipping record %s in %s: no test id", rec.ID, filepath.Base(path))
			skipped++
			continue
		}

		if err := repo.Save(ctx, rec); err != nil {
			return migrated, skipped, err
		}
		migrated++
	}
	return migrated, skipped, nil
}

func loadRecords(path string) ([]*models.ResultRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, nil
	}
	if data[0] == '[' {
		var records []*models.ResultRecord
		if err := json.Unmarshal(data, &records); err != nil {
			return nil, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
		}
		return records, nil
	}

	var record models.ResultRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	return []*models.ResultRecord{&record}, nil
}

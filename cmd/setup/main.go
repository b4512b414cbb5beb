/*
main.go - One-time dataset import

PURPOSE:
  Step one of the two-step launch. Reads the attrition CSV, cleans it, and
  populates the employees table. Safe to re-run: an already-populated store
  is left untouched.

COMMAND-LINE FLAGS:
  -csv     Path to the attrition dataset (default: WA_Fn-UseC_-HR-Employee-Attrition.csv)
  -db      SQLite database path (default: hr.db)

EXIT CODES:
  0  Imported, or store was already populated
  1  Dataset unreadable or malformed, or store unavailable

SEE ALSO:
  - ingest: Parsing and cleaning rules
  - cmd/server/main.go: The interactive process
*/
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/pulse/hr-insight/hr"
	"github.com/pulse/hr-insight/ingest"
	"github.com/pulse/hr-insight/store/sqlite"
)

func main() {
	csvPath := flag.String("csv", "WA_Fn-UseC_-HR-Employee-Attrition.csv", "Path to the attrition dataset")
	dbPath := flag.String("db", "hr.db", "SQLite database path")
	flag.Parse()

	log, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	f, err := os.Open(*csvPath)
	if err != nil {
		log.Fatal("failed to open dataset", zap.String("csv", *csvPath), zap.Error(err))
	}
	defer f.Close()

	records, err := ingest.ReadDataset(f)
	if err != nil {
		log.Fatal("failed to parse dataset", zap.String("csv", *csvPath), zap.Error(err))
	}
	log.Info("dataset parsed", zap.Int("records", len(records)))

	store, err := sqlite.New(*dbPath, log)
	if err != nil {
		log.Fatal("failed to open store", zap.String("db", *dbPath), zap.Error(err))
	}
	defer store.Close()

	ctx := context.Background()
	if err := ingest.Populate(ctx, store, records, log); err != nil {
		if errors.Is(err, hr.ErrAlreadyPopulated) {
			log.Info("nothing to do")
			return
		}
		log.Fatal("failed to populate store", zap.Error(err))
	}

	log.Info("setup complete", zap.String("db", *dbPath))
}

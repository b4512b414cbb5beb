package ingest

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/pulse/hr-insight/hr"
)

// PopulateStore is the store capability Populate needs: counting for the
// idempotency check and the atomic bulk import.
type PopulateStore interface {
	Count(ctx context.Context) (int, error)
	ImportBatch(ctx context.Context, records []hr.Employee) error
}

// Populate writes the dataset into an empty store.
// A store that already holds records is left untouched and
// hr.ErrAlreadyPopulated is returned; callers treat that as success.
func Populate(ctx context.Context, store PopulateStore, records []hr.Employee, log *zap.Logger) error {
	if log == nil {
		log = zap.NewNop()
	}

	count, err := store.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to check existing records: %w", err)
	}
	if count > 0 {
		log.Info("store already populated, skipping import", zap.Int("existing", count))
		return hr.ErrAlreadyPopulated
	}

	if err := store.ImportBatch(ctx, records); err != nil {
		return fmt.Errorf("failed to import dataset: %w", err)
	}

	log.Info("dataset populated", zap.Int("records", len(records)))
	return nil
}

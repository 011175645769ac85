package dataset

import (
	"context"
	"fmt"
	"log"
	"sync"

	"app/analytics"
)

// Provider supplies the dashboard dataset.
type Provider interface {
	Records(ctx context.Context) ([]analytics.Record, error)
}

// The dataset is loaded once at startup and read-only afterwards; handlers
// all share the same slice.
var (
	mu      sync.RWMutex
	records []analytics.Record
)

// Load fetches records from the provider and caches them for Records.
func Load(ctx context.Context, p Provider) error {
	recs, err := p.Records(ctx)
	if err != nil {
		return fmt.Errorf("loading dataset: %w", err)
	}
	mu.Lock()
	records = recs
	mu.Unlock()
	log.Printf("Loaded %d dataset records", len(recs))
	return nil
}

// Records returns the cached dataset.
func Records() []analytics.Record {
	mu.RLock()
	defer mu.RUnlock()
	return records
}

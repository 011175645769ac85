package dataset

import (
	"context"
	"math/rand"
	"time"

	"app/analytics"
)

// DefaultCategories are the part categories the synthetic dataset draws from.
var DefaultCategories = []string{"Filtro", "Aceite", "Bujía", "Correa", "Batería"}

// Synthetic generates one record per day over a calendar year, matching the
// demo data the dashboard originally shipped with: quantities of 1-19 units
// and inventory levels of 20-99. The same seed always produces the same
// dataset.
type Synthetic struct {
	Seed  int64
	Start time.Time
	Days  int
}

// NewSynthetic returns a generator for the 2023 demo year.
func NewSynthetic(seed int64) *Synthetic {
	return &Synthetic{
		Seed:  seed,
		Start: time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC),
		Days:  365,
	}
}

// Records implements Provider.
func (s *Synthetic) Records(context.Context) ([]analytics.Record, error) {
	rng := rand.New(rand.NewSource(s.Seed))
	recs := make([]analytics.Record, 0, s.Days)
	for i := 0; i < s.Days; i++ {
		recs = append(recs, analytics.Record{
			Date:           s.Start.AddDate(0, 0, i),
			Category:       DefaultCategories[rng.Intn(len(DefaultCategories))],
			QuantitySold:   1 + rng.Intn(19),
			InventoryLevel: 20 + rng.Intn(80),
		})
	}
	return recs, nil
}

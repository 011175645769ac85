package dataset

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"app/analytics"
)

// Postgres reads the dataset from the sales_records table.
type Postgres struct {
	Pool *pgxpool.Pool
}

// Records implements Provider.
func (p *Postgres) Records(ctx context.Context) ([]analytics.Record, error) {
	query := `
		SELECT sale_date, category, quantity_sold, inventory_level
		FROM sales_records
		ORDER BY sale_date
	`
	rows, err := p.Pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recs []analytics.Record
	for rows.Next() {
		var rec analytics.Record
		if err := rows.Scan(&rec.Date, &rec.Category, &rec.QuantitySold, &rec.InventoryLevel); err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}

package dataset

import (
	"context"
	"fmt"
	"log"

	"github.com/xuri/excelize/v2"

	"app/analytics"
)

// XLSX loads records from the first sheet of an Excel workbook. The sheet
// needs the same columns a CSV source would have.
type XLSX struct {
	Path string
}

// Records implements Provider.
func (p *XLSX) Records(ctx context.Context) ([]analytics.Record, error) {
	f, err := excelize.OpenFile(p.Path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("workbook has no rows")
	}

	keys, err := mapHeader(rows[0])
	if err != nil {
		return nil, err
	}

	var recs []analytics.Record
	for _, row := range rows[1:] {
		rec, err := parseRow(keys, row)
		if err != nil {
			log.Printf("Skipping worksheet row: %v", err)
			continue
		}
		recs = append(recs, rec)
	}
	return recs, nil
}

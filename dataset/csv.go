package dataset

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"

	"app/analytics"
)

// CSV loads records from a comma-separated file with date, category,
// quantity and inventory columns.
type CSV struct {
	Path string
}

// Records implements Provider.
func (p *CSV) Records(ctx context.Context) ([]analytics.Record, error) {
	f, err := os.Open(p.Path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readCSV(f)
}

func readCSV(r io.Reader) ([]analytics.Record, error) {
	reader := csv.NewReader(r)
	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	keys, err := mapHeader(headers)
	if err != nil {
		return nil, err
	}

	var recs []analytics.Record
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Printf("Skipping malformed CSV row: %v", err)
			continue
		}
		rec, err := parseRow(keys, row)
		if err != nil {
			log.Printf("Skipping CSV row: %v", err)
			continue
		}
		recs = append(recs, rec)
	}
	return recs, nil
}

package dataset

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"app/analytics"
)

// Canonical column keys for tabular sources.
const (
	colDate      = "date"
	colCategory  = "category"
	colQuantity  = "quantity_sold"
	colInventory = "inventory_level"
)

// headerAliases maps common spellings, including the original Spanish
// dashboard export, onto canonical column keys.
var headerAliases = map[string]string{
	"date":             colDate,
	"fecha":            colDate,
	"sale_date":        colDate,
	"category":         colCategory,
	"repuesto":         colCategory,
	"part_category":    colCategory,
	"quantity_sold":    colQuantity,
	"quantity":         colQuantity,
	"cantidad_vendida": colQuantity,
	"inventory_level":  colInventory,
	"inventory":        colInventory,
	"inventario":       colInventory,
}

// mapHeader resolves each column index to a canonical key. Unknown columns
// map to "" and are skipped; all four canonical columns must be present.
func mapHeader(headers []string) ([]string, error) {
	keys := make([]string, len(headers))
	seen := make(map[string]bool)
	for i, h := range headers {
		key := headerAliases[normalizeHeader(h)]
		keys[i] = key
		if key != "" {
			seen[key] = true
		}
	}
	for _, required := range []string{colDate, colCategory, colQuantity, colInventory} {
		if !seen[required] {
			return nil, fmt.Errorf("missing required column %q", required)
		}
	}
	return keys, nil
}

func normalizeHeader(h string) string {
	h = strings.ToLower(strings.TrimSpace(h))
	h = strings.ReplaceAll(h, " ", "_")
	h = strings.ReplaceAll(h, "-", "_")
	return h
}

// parseRow converts one data row into a Record. Callers skip rows that
// return an error.
func parseRow(keys []string, row []string) (analytics.Record, error) {
	var rec analytics.Record
	for i, val := range row {
		if i >= len(keys) || keys[i] == "" {
			continue
		}
		val = strings.TrimSpace(val)
		switch keys[i] {
		case colDate:
			d, err := parseDate(val)
			if err != nil {
				return rec, fmt.Errorf("invalid date %q", val)
			}
			rec.Date = d
		case colCategory:
			rec.Category = val
		case colQuantity:
			n, err := strconv.Atoi(val)
			if err != nil || n < 0 {
				return rec, fmt.Errorf("invalid quantity %q", val)
			}
			rec.QuantitySold = n
		case colInventory:
			n, err := strconv.Atoi(val)
			if err != nil || n < 0 {
				return rec, fmt.Errorf("invalid inventory %q", val)
			}
			rec.InventoryLevel = n
		}
	}
	if rec.Date.IsZero() || rec.Category == "" {
		return rec, fmt.Errorf("row missing date or category")
	}
	return rec, nil
}

// parseDate tries the formats tabular exports commonly use.
func parseDate(s string) (time.Time, error) {
	formats := []string{
		"2006-01-02",
		time.RFC3339,
		"2006-01-02 15:04:05",
		"02/01/2006",
	}
	var lastErr error
	for _, format := range formats {
		if t, err := time.Parse(format, s); err == nil {
			return t.UTC(), nil
		} else {
			lastErr = err
		}
	}
	return time.Time{}, lastErr
}

package analytics

import (
	"fmt"
	"time"
)

// Apply filters records by spec and computes the dashboard aggregates over
// the surviving subset. All predicates are conjunctive: a record passes only
// if its date, quantity, inventory and category all satisfy the spec.
//
// Apply is a pure function. Inputs are never mutated and the same inputs
// always produce the same outputs. Invalid constraints do not fail the call:
// the offending constraint is widened to its full range and a coded Warning
// is returned alongside the result.
func Apply(records []Record, spec FilterSpec) ([]Record, Aggregates, []Warning) {
	spec, warnings := sanitize(spec)
	allowed := categorySet(spec.Categories)

	filtered := make([]Record, 0, len(records))
	for _, rec := range records {
		if !matchesDate(rec.Date, spec.DateFrom, spec.DateTo) {
			continue
		}
		if !spec.Quantity.Contains(rec.QuantitySold) {
			continue
		}
		if !spec.Inventory.Contains(rec.InventoryLevel) {
			continue
		}
		if allowed != nil && !allowed[rec.Category] {
			continue
		}
		filtered = append(filtered, rec)
	}

	return filtered, Aggregate(filtered), warnings
}

// sanitize replaces invalid constraints with safe defaults and reports them.
func sanitize(spec FilterSpec) (FilterSpec, []Warning) {
	var warnings []Warning

	if !spec.DateFrom.IsZero() && !spec.DateTo.IsZero() && spec.DateFrom.After(spec.DateTo) {
		warnings = append(warnings, Warning{
			Code: WarnInvalidDateRange,
			Message: fmt.Sprintf("start date %s is after end date %s; date filter ignored",
				spec.DateFrom.Format("2006-01-02"), spec.DateTo.Format("2006-01-02")),
		})
		spec.DateFrom, spec.DateTo = time.Time{}, time.Time{}
	}

	if spec.Quantity.Min > spec.Quantity.Max {
		warnings = append(warnings, Warning{
			Code:    WarnInvalidQuantityRange,
			Message: "quantity range minimum exceeds maximum; quantity filter ignored",
		})
		spec.Quantity = FullRange()
	}

	if spec.Inventory.Min > spec.Inventory.Max {
		warnings = append(warnings, Warning{
			Code:    WarnInvalidInventoryRange,
			Message: "inventory range minimum exceeds maximum; inventory filter ignored",
		})
		spec.Inventory = FullRange()
	}

	if len(spec.Categories) == 0 {
		warnings = append(warnings, Warning{
			Code:    WarnEmptyCategories,
			Message: "no categories selected; showing all categories",
		})
	}

	return spec, warnings
}

// categorySet returns nil when the selection imposes no restriction.
func categorySet(categories []string) map[string]bool {
	if len(categories) == 0 {
		return nil
	}
	set := make(map[string]bool, len(categories))
	for _, cat := range categories {
		if cat == AllCategories {
			return nil
		}
		set[cat] = true
	}
	return set
}

// matchesDate compares calendar dates, ignoring any time-of-day component.
func matchesDate(d, from, to time.Time) bool {
	day := dateOnly(d)
	if !from.IsZero() && day.Before(dateOnly(from)) {
		return false
	}
	if !to.IsZero() && day.After(dateOnly(to)) {
		return false
	}
	return true
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

package analytics

import (
	"sort"
	"time"
)

// Aggregate computes every dashboard statistic over an already-filtered
// record set. Each aggregate is independent of the others. An empty input
// yields zero totals and nil TopCategory/MeanInventory rather than an error.
func Aggregate(records []Record) Aggregates {
	agg := Aggregates{
		QuantityByCategory:  []CategoryTotal{},
		InventoryByCategory: map[string]int{},
		MonthlyQuantity:     []MonthTotal{},
		TopDays:             []DayTotal{},
	}

	qtyByCat := make(map[string]int)
	invByCat := make(map[string]int)
	qtyByMonth := make(map[time.Time]int)
	qtyByDay := make(map[time.Time]int)

	for _, rec := range records {
		agg.TotalQuantitySold += rec.QuantitySold
		agg.TotalInventory += rec.InventoryLevel
		qtyByCat[rec.Category] += rec.QuantitySold
		invByCat[rec.Category] += rec.InventoryLevel
		qtyByMonth[monthOf(rec.Date)] += rec.QuantitySold
		qtyByDay[dateOnly(rec.Date)] += rec.QuantitySold
	}

	if len(records) > 0 {
		mean := float64(agg.TotalInventory) / float64(len(records))
		agg.MeanInventory = &mean
	}

	agg.QuantityByCategory = sortedCategoryTotals(qtyByCat)
	if len(agg.QuantityByCategory) > 0 {
		top := agg.QuantityByCategory[0].Category
		agg.TopCategory = &top
	}
	agg.InventoryByCategory = invByCat
	agg.MonthlyQuantity = monthlyTotals(qtyByMonth)
	agg.TopDays = topDays(qtyByDay, TopDaysLimit)

	return agg
}

// sortedCategoryTotals orders by summed quantity descending. Ties go to the
// lexicographically smaller category name so results are deterministic.
func sortedCategoryTotals(totals map[string]int) []CategoryTotal {
	out := make([]CategoryTotal, 0, len(totals))
	for cat, total := range totals {
		out = append(out, CategoryTotal{Category: cat, Total: total})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Total != out[j].Total {
			return out[i].Total > out[j].Total
		}
		return out[i].Category < out[j].Category
	})
	return out
}

func monthlyTotals(totals map[time.Time]int) []MonthTotal {
	out := make([]MonthTotal, 0, len(totals))
	for month, total := range totals {
		out = append(out, MonthTotal{Month: month, Total: total})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Month.Before(out[j].Month)
	})
	return out
}

// topDays returns the n highest-volume dates, quantity descending with ties
// broken by earlier date.
func topDays(totals map[time.Time]int, n int) []DayTotal {
	out := make([]DayTotal, 0, len(totals))
	for day, total := range totals {
		out = append(out, DayTotal{Date: day, Total: total})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Total != out[j].Total {
			return out[i].Total > out[j].Total
		}
		return out[i].Date.Before(out[j].Date)
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}

func monthOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

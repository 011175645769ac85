package analytics

import (
	"math"
	"time"
)

// AllCategories is the sentinel selection meaning "no category restriction".
// It matches the 'Todos' option the dashboard sidebar exposes.
const AllCategories = "Todos"

// TopDaysLimit is how many best-selling days the dashboard shows.
const TopDaysLimit = 5

// Record is one dated observation of a part category: how many units were
// sold that day and the inventory level on hand.
type Record struct {
	Date           time.Time `json:"date"`
	Category       string    `json:"category"`
	QuantitySold   int       `json:"quantitySold"`
	InventoryLevel int       `json:"inventoryLevel"`
}

// Range is an inclusive [Min, Max] bound on an integer measure.
type Range struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Contains reports whether v falls within the inclusive range.
func (r Range) Contains(v int) bool {
	return v >= r.Min && v <= r.Max
}

// FullRange places no restriction on a measure.
func FullRange() Range {
	return Range{Min: 0, Max: math.MaxInt}
}

// FilterSpec is the set of user-chosen constraints narrowing the dataset.
// Zero DateFrom/DateTo leave that side of the date window open. An empty
// Categories slice, or one containing AllCategories, selects every category.
type FilterSpec struct {
	DateFrom   time.Time `json:"dateFrom"`
	DateTo     time.Time `json:"dateTo"`
	Categories []string  `json:"categories"`
	Quantity   Range     `json:"quantity"`
	Inventory  Range     `json:"inventory"`
}

// Warning codes reported by Apply.
const (
	WarnInvalidDateRange      = "invalid_date_range"
	WarnInvalidQuantityRange  = "invalid_quantity_range"
	WarnInvalidInventoryRange = "invalid_inventory_range"
	WarnEmptyCategories       = "empty_categories"
)

// Warning is a non-fatal validation finding. Filtering always proceeds with
// a safe fallback for the offending constraint.
type Warning struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// CategoryTotal is one category's summed measure.
type CategoryTotal struct {
	Category string `json:"category"`
	Total    int    `json:"total"`
}

// MonthTotal is a calendar month's summed quantity. Month is the first day
// of the month at midnight UTC.
type MonthTotal struct {
	Month time.Time `json:"month"`
	Total int       `json:"total"`
}

// DayTotal is one date's summed quantity.
type DayTotal struct {
	Date  time.Time `json:"date"`
	Total int       `json:"total"`
}

// Aggregates is the derived, read-only view over a filtered record set.
//
// TopCategory and MeanInventory have no natural value over an empty set,
// so both are nil when no records survive the filter; every other field
// degrades to a zero value. QuantityByCategory is ordered by total
// descending, MonthlyQuantity chronologically, TopDays by total descending
// with earlier dates first on ties.
type Aggregates struct {
	TotalQuantitySold   int             `json:"totalQuantitySold"`
	TopCategory         *string         `json:"topCategory"`
	TotalInventory      int             `json:"totalInventory"`
	MeanInventory       *float64        `json:"meanInventory"`
	QuantityByCategory  []CategoryTotal `json:"quantityByCategory"`
	InventoryByCategory map[string]int  `json:"inventoryByCategory"`
	MonthlyQuantity     []MonthTotal    `json:"monthlyQuantity"`
	TopDays             []DayTotal      `json:"topDays"`
}

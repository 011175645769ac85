package models

import (
	"time"

	"github.com/golang-jwt/jwt/v4"

	"app/analytics"
)

// --- JWT & Auth ---

type JwtClaims struct {
	UserID string `json:"userId"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

// --- Dashboard payloads ---

// SalesGauge feeds the sales-target indicator on the dashboard.
type SalesGauge struct {
	Target   float64 `json:"target"`
	Value    float64 `json:"value"`
	Progress float64 `json:"progress"`
}

// DashboardSummary backs the KPI cards at the top of the dashboard.
// TopCategory and MeanInventory are null when no records match the filters.
type DashboardSummary struct {
	TotalQuantitySold int        `json:"totalQuantitySold"`
	TopCategory       *string    `json:"topCategory"`
	TotalInventory    int        `json:"totalInventory"`
	MeanInventory     *float64   `json:"meanInventory"`
	RecordCount       int        `json:"recordCount"`
	Gauge             SalesGauge `json:"gauge"`
}

// ChartData carries every chart series the dashboard renders.
type ChartData struct {
	QuantityByCategory  []analytics.CategoryTotal `json:"quantityByCategory"`
	MonthlyQuantity     []analytics.MonthTotal    `json:"monthlyQuantity"`
	InventoryByCategory map[string]int            `json:"inventoryByCategory"`
	TopDays             []analytics.DayTotal      `json:"topDays"`
}

// FilterOptions describes the bounds the sidebar widgets are built from.
type FilterOptions struct {
	Categories   []string  `json:"categories"`
	MinDate      time.Time `json:"minDate"`
	MaxDate      time.Time `json:"maxDate"`
	QuantityMin  int       `json:"quantityMin"`
	QuantityMax  int       `json:"quantityMax"`
	InventoryMin int       `json:"inventoryMin"`
	InventoryMax int       `json:"inventoryMax"`
}

// Pagination holds metadata for paginated responses.
type Pagination struct {
	TotalItems  int `json:"totalItems"`
	CurrentPage int `json:"currentPage"`
	PageSize    int `json:"pageSize"`
	TotalPages  int `json:"totalPages"`
}

// PaginatedRecordsResponse wraps one page of filtered records.
type PaginatedRecordsResponse struct {
	Items      []analytics.Record `json:"items"`
	Pagination Pagination         `json:"pagination"`
}

// InsightResponse is the AI-generated narrative for the current filters.
type InsightResponse struct {
	ReportName  string    `json:"reportName"`
	GeneratedAt time.Time `json:"generatedAt"`
	Summary     string    `json:"summary"`
	Highlights  []string  `json:"highlights"`
	Risks       []string  `json:"risks"`
}

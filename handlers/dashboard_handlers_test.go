package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"app/analytics"
	"app/config"
	"app/dataset"
)

type stubProvider struct {
	recs []analytics.Record
}

func (s stubProvider) Records(context.Context) ([]analytics.Record, error) {
	return s.recs, nil
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func loadTestDataset(t *testing.T) {
	t.Helper()
	recs := []analytics.Record{
		{Date: date(2023, time.January, 1), Category: "Filtro", QuantitySold: 5, InventoryLevel: 50},
		{Date: date(2023, time.January, 2), Category: "Aceite", QuantitySold: 10, InventoryLevel: 30},
	}
	require.NoError(t, dataset.Load(context.Background(), stubProvider{recs: recs}))
}

type summaryBody struct {
	Status string `json:"status"`
	Data   struct {
		TotalQuantitySold int      `json:"totalQuantitySold"`
		TopCategory       *string  `json:"topCategory"`
		TotalInventory    int      `json:"totalInventory"`
		MeanInventory     *float64 `json:"meanInventory"`
		RecordCount       int      `json:"recordCount"`
		Gauge             struct {
			Target   float64 `json:"target"`
			Value    float64 `json:"value"`
			Progress float64 `json:"progress"`
		} `json:"gauge"`
	} `json:"data"`
	Warnings []analytics.Warning `json:"warnings"`
}

func getSummary(t *testing.T, target string) summaryBody {
	t.Helper()
	app := fiber.New()
	app.Get("/summary", HandleGetDashboardSummary)

	resp, err := app.Test(httptest.NewRequest("GET", target, nil))
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body summaryBody
	require.NoError(t, json.Unmarshal(raw, &body))
	return body
}

func TestDashboardSummary(t *testing.T) {
	loadTestDataset(t)
	config.AppConfig.SalesTarget = 7000

	body := getSummary(t, "/summary")

	assert.Equal(t, "success", body.Status)
	assert.Equal(t, 15, body.Data.TotalQuantitySold)
	require.NotNil(t, body.Data.TopCategory)
	assert.Equal(t, "Aceite", *body.Data.TopCategory)
	assert.Equal(t, 80, body.Data.TotalInventory)
	require.NotNil(t, body.Data.MeanInventory)
	assert.InDelta(t, 40.0, *body.Data.MeanInventory, 1e-9)
	assert.Equal(t, 2, body.Data.RecordCount)
	assert.Equal(t, 7000.0, body.Data.Gauge.Target)
	assert.Equal(t, 15.0, body.Data.Gauge.Value)
	assert.Empty(t, body.Warnings)
}

func TestDashboardSummaryCategoryFilter(t *testing.T) {
	loadTestDataset(t)

	body := getSummary(t, "/summary?categories=Filtro")

	assert.Equal(t, 5, body.Data.TotalQuantitySold)
	assert.Equal(t, 1, body.Data.RecordCount)
}

func TestDashboardSummaryEmptyResult(t *testing.T) {
	loadTestDataset(t)

	body := getSummary(t, "/summary?qtyMin=11&qtyMax=20")

	assert.Equal(t, 0, body.Data.TotalQuantitySold)
	assert.Equal(t, 0, body.Data.RecordCount)
	assert.Nil(t, body.Data.TopCategory)
	assert.Nil(t, body.Data.MeanInventory)
}

func TestDashboardSummaryInvalidDateRangeWarns(t *testing.T) {
	loadTestDataset(t)

	body := getSummary(t, "/summary?dateFrom=2023-06-01&dateTo=2023-01-01")

	require.Len(t, body.Warnings, 1)
	assert.Equal(t, analytics.WarnInvalidDateRange, body.Warnings[0].Code)
	// The bad window is ignored rather than applied.
	assert.Equal(t, 2, body.Data.RecordCount)
}

func TestDashboardSummaryBadDateParam(t *testing.T) {
	loadTestDataset(t)

	app := fiber.New()
	app.Get("/summary", HandleGetDashboardSummary)

	resp, err := app.Test(httptest.NewRequest("GET", "/summary?dateFrom=not-a-date", nil))
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestChartData(t *testing.T) {
	loadTestDataset(t)

	app := fiber.New()
	app.Get("/charts", HandleGetChartData)

	resp, err := app.Test(httptest.NewRequest("GET", "/charts", nil))
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	var body struct {
		Data struct {
			QuantityByCategory  []analytics.CategoryTotal `json:"quantityByCategory"`
			MonthlyQuantity     []analytics.MonthTotal    `json:"monthlyQuantity"`
			InventoryByCategory map[string]int            `json:"inventoryByCategory"`
			TopDays             []analytics.DayTotal      `json:"topDays"`
		} `json:"data"`
	}
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &body))

	require.Len(t, body.Data.QuantityByCategory, 2)
	assert.Equal(t, "Aceite", body.Data.QuantityByCategory[0].Category)
	require.Len(t, body.Data.MonthlyQuantity, 1)
	assert.Equal(t, 15, body.Data.MonthlyQuantity[0].Total)
	assert.Equal(t, map[string]int{"Filtro": 50, "Aceite": 30}, body.Data.InventoryByCategory)
	assert.Len(t, body.Data.TopDays, 2)
}

func TestListRecordsPagination(t *testing.T) {
	loadTestDataset(t)

	app := fiber.New()
	app.Get("/records", HandleListRecords)

	resp, err := app.Test(httptest.NewRequest("GET", "/records?page=2&pageSize=1", nil))
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	var body struct {
		Data struct {
			Items      []analytics.Record `json:"items"`
			Pagination struct {
				TotalItems  int `json:"totalItems"`
				TotalPages  int `json:"totalPages"`
				CurrentPage int `json:"currentPage"`
			} `json:"pagination"`
		} `json:"data"`
	}
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &body))

	require.Len(t, body.Data.Items, 1)
	assert.Equal(t, "Aceite", body.Data.Items[0].Category)
	assert.Equal(t, 2, body.Data.Pagination.TotalItems)
	assert.Equal(t, 2, body.Data.Pagination.TotalPages)
	assert.Equal(t, 2, body.Data.Pagination.CurrentPage)
}

func TestFilterOptions(t *testing.T) {
	loadTestDataset(t)

	app := fiber.New()
	app.Get("/filters", HandleGetFilterOptions)

	resp, err := app.Test(httptest.NewRequest("GET", "/filters", nil))
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	var body struct {
		Data struct {
			Categories   []string  `json:"categories"`
			MinDate      time.Time `json:"minDate"`
			MaxDate      time.Time `json:"maxDate"`
			QuantityMin  int       `json:"quantityMin"`
			QuantityMax  int       `json:"quantityMax"`
			InventoryMin int       `json:"inventoryMin"`
			InventoryMax int       `json:"inventoryMax"`
		} `json:"data"`
	}
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &body))

	assert.Equal(t, []string{"Aceite", "Filtro"}, body.Data.Categories)
	assert.Equal(t, date(2023, time.January, 1), body.Data.MinDate)
	assert.Equal(t, date(2023, time.January, 2), body.Data.MaxDate)
	assert.Equal(t, 5, body.Data.QuantityMin)
	assert.Equal(t, 10, body.Data.QuantityMax)
	assert.Equal(t, 30, body.Data.InventoryMin)
	assert.Equal(t, 50, body.Data.InventoryMax)
}

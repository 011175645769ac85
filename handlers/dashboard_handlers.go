package handlers

import (
	"sort"

	"github.com/gofiber/fiber/v2"

	"app/analytics"
	"app/config"
	"app/dataset"
	"app/models"
	"app/utils"
)

// HandleGetDashboardSummary returns the KPI card values for the current
// filter selection, plus the sales-target gauge.
func HandleGetDashboardSummary(c *fiber.Ctx) error {
	spec, err := parseFilterSpec(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": err.Error()})
	}

	filtered, aggs, warnings := analytics.Apply(dataset.Records(), spec)

	target := config.AppConfig.SalesTarget
	gauge := models.SalesGauge{Target: target, Value: float64(aggs.TotalQuantitySold)}
	if target > 0 {
		gauge.Progress = gauge.Value / target
	}

	summary := models.DashboardSummary{
		TotalQuantitySold: aggs.TotalQuantitySold,
		TopCategory:       aggs.TopCategory,
		TotalInventory:    aggs.TotalInventory,
		MeanInventory:     aggs.MeanInventory,
		RecordCount:       len(filtered),
		Gauge:             gauge,
	}

	return respond(c, summary, warnings)
}

// HandleGetChartData returns every chart series for the current filter
// selection: quantity by category (descending), monthly quantity
// (chronological), inventory distribution and the top five days.
func HandleGetChartData(c *fiber.Ctx) error {
	spec, err := parseFilterSpec(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": err.Error()})
	}

	_, aggs, warnings := analytics.Apply(dataset.Records(), spec)

	data := models.ChartData{
		QuantityByCategory:  aggs.QuantityByCategory,
		MonthlyQuantity:     aggs.MonthlyQuantity,
		InventoryByCategory: aggs.InventoryByCategory,
		TopDays:             aggs.TopDays,
	}

	return respond(c, data, warnings)
}

// HandleListRecords returns a page of the filtered records for the table
// view at the bottom of the dashboard.
func HandleListRecords(c *fiber.Ctx) error {
	spec, err := parseFilterSpec(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": err.Error()})
	}

	page := c.QueryInt("page", 1)
	pageSize := c.QueryInt("pageSize", 50)

	filtered, _, warnings := analytics.Apply(dataset.Records(), spec)

	pagination := utils.CreatePagination(len(filtered), page, pageSize)
	start := (pagination.CurrentPage - 1) * pagination.PageSize
	if start > len(filtered) {
		start = len(filtered)
	}
	end := start + pagination.PageSize
	if end > len(filtered) {
		end = len(filtered)
	}

	response := models.PaginatedRecordsResponse{
		Items:      filtered[start:end],
		Pagination: pagination,
	}

	return respond(c, response, warnings)
}

// HandleGetFilterOptions returns the dataset bounds the sidebar widgets are
// initialized from: the category list, the date window and the quantity and
// inventory extents.
func HandleGetFilterOptions(c *fiber.Ctx) error {
	recs := dataset.Records()
	if len(recs) == 0 {
		return respond(c, models.FilterOptions{Categories: []string{}}, nil)
	}

	opts := models.FilterOptions{
		MinDate:      recs[0].Date,
		MaxDate:      recs[0].Date,
		QuantityMin:  recs[0].QuantitySold,
		QuantityMax:  recs[0].QuantitySold,
		InventoryMin: recs[0].InventoryLevel,
		InventoryMax: recs[0].InventoryLevel,
	}

	seen := make(map[string]bool)
	for _, rec := range recs {
		if !seen[rec.Category] {
			seen[rec.Category] = true
			opts.Categories = append(opts.Categories, rec.Category)
		}
		if rec.Date.Before(opts.MinDate) {
			opts.MinDate = rec.Date
		}
		if rec.Date.After(opts.MaxDate) {
			opts.MaxDate = rec.Date
		}
		if rec.QuantitySold < opts.QuantityMin {
			opts.QuantityMin = rec.QuantitySold
		}
		if rec.QuantitySold > opts.QuantityMax {
			opts.QuantityMax = rec.QuantitySold
		}
		if rec.InventoryLevel < opts.InventoryMin {
			opts.InventoryMin = rec.InventoryLevel
		}
		if rec.InventoryLevel > opts.InventoryMax {
			opts.InventoryMax = rec.InventoryLevel
		}
	}
	sort.Strings(opts.Categories)

	return respond(c, opts, nil)
}

package handlers

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"

	"app/analytics"
	"app/dataset"
)

// HandleExportRecords streams the filtered records as a downloadable CSV or
// XLSX file.
func HandleExportRecords(c *fiber.Ctx) error {
	spec, err := parseFilterSpec(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": err.Error()})
	}

	filtered, _, _ := analytics.Apply(dataset.Records(), spec)

	switch format := c.Query("format", "csv"); format {
	case "csv":
		return exportCSV(c, filtered)
	case "xlsx":
		return exportXLSX(c, filtered)
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "format must be csv or xlsx"})
	}
}

func exportCSV(c *fiber.Ctx, records []analytics.Record) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	_ = w.Write([]string{"date", "category", "quantity_sold", "inventory_level"})
	for _, rec := range records {
		_ = w.Write([]string{
			rec.Date.Format("2006-01-02"),
			rec.Category,
			strconv.Itoa(rec.QuantitySold),
			strconv.Itoa(rec.InventoryLevel),
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		log.Printf("Error writing CSV export: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to build export"})
	}

	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="filtered_records.csv"`)
	return c.Send(buf.Bytes())
}

func exportXLSX(c *fiber.Ctx, records []analytics.Record) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	if err := f.SetSheetRow(sheet, "A1", &[]interface{}{"Date", "Category", "Quantity Sold", "Inventory Level"}); err != nil {
		log.Printf("Error writing XLSX header: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to build export"})
	}
	for i, rec := range records {
		cell := fmt.Sprintf("A%d", i+2)
		row := []interface{}{rec.Date.Format("2006-01-02"), rec.Category, rec.QuantitySold, rec.InventoryLevel}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			log.Printf("Error writing XLSX row %d: %v", i+2, err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to build export"})
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		log.Printf("Error serializing XLSX export: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to build export"})
	}

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="filtered_records.xlsx"`)
	return c.Send(buf.Bytes())
}

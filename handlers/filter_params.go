package handlers

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"app/analytics"
)

// parseFilterSpec builds a FilterSpec from the query parameters every
// dashboard endpoint shares. Missing parameters leave the corresponding
// constraint open; an absent categories parameter selects all categories
// without the advisory an explicitly empty selection triggers.
func parseFilterSpec(c *fiber.Ctx) (analytics.FilterSpec, error) {
	spec := analytics.FilterSpec{
		Quantity:  analytics.FullRange(),
		Inventory: analytics.FullRange(),
	}

	if v := c.Query("dateFrom"); v != "" {
		t, err := parseQueryDate(v)
		if err != nil {
			return spec, fmt.Errorf("invalid dateFrom: %q", v)
		}
		spec.DateFrom = t
	}
	if v := c.Query("dateTo"); v != "" {
		t, err := parseQueryDate(v)
		if err != nil {
			return spec, fmt.Errorf("invalid dateTo: %q", v)
		}
		spec.DateTo = t
	}

	if raw, ok := c.Queries()["categories"]; ok {
		for _, cat := range strings.Split(raw, ",") {
			if cat = strings.TrimSpace(cat); cat != "" {
				spec.Categories = append(spec.Categories, cat)
			}
		}
	} else {
		spec.Categories = []string{analytics.AllCategories}
	}

	spec.Quantity.Min = c.QueryInt("qtyMin", 0)
	spec.Quantity.Max = c.QueryInt("qtyMax", math.MaxInt)
	spec.Inventory.Min = c.QueryInt("invMin", 0)
	spec.Inventory.Max = c.QueryInt("invMax", math.MaxInt)

	return spec, nil
}

// parseQueryDate accepts the formats dashboard clients send.
func parseQueryDate(s string) (time.Time, error) {
	formats := []string{
		"2006-01-02",
		time.RFC3339,
		"2006-01-02T15:04:05",
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

// respond wraps a payload in the standard success envelope, attaching any
// pipeline warnings so the presentation layer can surface them.
func respond(c *fiber.Ctx, data interface{}, warnings []analytics.Warning) error {
	payload := fiber.Map{"status": "success", "data": data}
	if len(warnings) > 0 {
		payload["warnings"] = warnings
	}
	return c.JSON(payload)
}

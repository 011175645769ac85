package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"app/analytics"
	"app/dataset"
	"app/models"
)

// HandleGenerateInsight asks Gemini for a short narrative over the
// aggregates of the current filter selection.
func HandleGenerateInsight(c *fiber.Ctx) error {
	spec, err := parseFilterSpec(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": err.Error()})
	}

	filtered, aggs, _ := analytics.Apply(dataset.Records(), spec)
	if len(filtered) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "No records match the current filters"})
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(os.Getenv("GEMINI_API_KEY")))
	if err != nil {
		log.Printf("Error creating Gemini client: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to connect to AI service"})
	}
	defer client.Close()

	model := client.GenerativeModel("gemini-2.5-flash-lite")
	resp, err := model.GenerateContent(ctx, genai.Text(constructInsightPrompt(len(filtered), aggs)))
	if err != nil {
		log.Printf("Error from Gemini API: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to generate insight from AI"})
	}

	insight, err := parseInsightResponse(resp)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": err.Error()})
	}

	return respond(c, insight, nil)
}

// constructInsightPrompt summarizes the aggregates for the Gemini API.
func constructInsightPrompt(recordCount int, aggs analytics.Aggregates) string {
	var data strings.Builder
	fmt.Fprintf(&data, "Records in selection: %d\n", recordCount)
	fmt.Fprintf(&data, "Total units sold: %d\n", aggs.TotalQuantitySold)
	fmt.Fprintf(&data, "Total inventory on hand: %d\n", aggs.TotalInventory)
	if aggs.MeanInventory != nil {
		fmt.Fprintf(&data, "Mean inventory per record: %.2f\n", *aggs.MeanInventory)
	}

	data.WriteString("Units sold by category:\n")
	for _, ct := range aggs.QuantityByCategory {
		fmt.Fprintf(&data, "- %s: %d\n", ct.Category, ct.Total)
	}

	data.WriteString("Units sold by month:\n")
	for _, mt := range aggs.MonthlyQuantity {
		fmt.Fprintf(&data, "- %s: %d\n", mt.Month.Format("2006-01"), mt.Total)
	}

	data.WriteString("Best-selling days:\n")
	for _, dt := range aggs.TopDays {
		fmt.Fprintf(&data, "- %s: %d\n", dt.Date.Format("2006-01-02"), dt.Total)
	}

	jsonFormat := `{"summary":"string","highlights":["string",...],"risks":["string",...]}`

	return fmt.Sprintf(`
        You are an expert retail data analyst. Summarize the sales and
        inventory situation of an auto-parts distributor from the figures
        below, in three to five sentences, then list the most notable
        positive findings and the most notable risks.

        **Today's Date:** %s

        **Aggregated figures for the operator's current filter selection:**
        %s

        **Required Output:**
        You must provide a single, minified JSON object with the following exact structure. Do not include any markdown formatting, backticks, or explanatory text before or after the JSON object.

        %s
    `, time.Now().Format("2006-01-02"), data.String(), jsonFormat)
}

func extractJSON(rawString string) string {
	start := strings.Index(rawString, "{")
	end := strings.LastIndex(rawString, "}")
	if start == -1 || end == -1 || end < start {
		return ""
	}
	return rawString[start : end+1]
}

// parseInsightResponse parses the JSON from Gemini into a structured response.
func parseInsightResponse(resp *genai.GenerateContentResponse) (*models.InsightResponse, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("no content received from AI")
	}

	var geminiText string
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			geminiText += string(txt)
		}
	}

	if geminiText == "" {
		return nil, fmt.Errorf("no text content received from AI")
	}

	jsonStr := extractJSON(geminiText)
	if jsonStr == "" {
		log.Printf("Could not extract JSON from Gemini response: %s", geminiText)
		return nil, fmt.Errorf("failed to parse AI response format")
	}

	var geminiJSON struct {
		Summary    string   `json:"summary"`
		Highlights []string `json:"highlights"`
		Risks      []string `json:"risks"`
	}
	if err := json.Unmarshal([]byte(jsonStr), &geminiJSON); err != nil {
		log.Printf("Error parsing Gemini JSON: %v\nRaw JSON: %s", err, jsonStr)
		return nil, fmt.Errorf("failed to parse AI insight data")
	}

	return &models.InsightResponse{
		ReportName:  "Sales & Inventory Insight",
		GeneratedAt: time.Now(),
		Summary:     geminiJSON.Summary,
		Highlights:  geminiJSON.Highlights,
		Risks:       geminiJSON.Risks,
	}, nil
}

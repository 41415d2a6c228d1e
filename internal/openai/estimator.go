package openai

import (
	"context"
	"fmt"
	"strings"
	"time"

	"nutrilog/internal/models"
	"nutrilog/internal/usecase"

	"github.com/google/uuid"
)

// nutrientPayload is the wire shape the model must return per nutrient.
type nutrientPayload struct {
	Code  string  `json:"code" validate:"required"`
	Value float64 `json:"value" validate:"min=0"`
	Unit  string  `json:"unit" validate:"required"`
}

type estimationPayload struct {
	Nutrients []nutrientPayload `json:"nutrients" validate:"required,dive"`
}

func buildNutrientReferenceTable() string {
	var table strings.Builder
	table.WriteString("| Code | Unit |\n")
	table.WriteString("|-----|-----|\n")
	for _, code := range models.AllNutrientCodes {
		table.WriteString(fmt.Sprintf("| %s | %s |\n", code, models.CanonicalNutrientUnits[code]))
	}
	return table.String()
}

// Estimate maps the slot's food entries onto the full nutrient code
// set. An empty slot short-circuits to zero amounts without calling the
// API, which is what clears a recomputed slot back to zero.
func (c *Client) Estimate(ctx context.Context, userID uuid.UUID, date time.Time, entries []models.FoodEntry) ([]usecase.EstimatedNutrient, error) {
	if len(entries) == 0 {
		return zeroEstimate(), nil
	}

	systemPrompt := fmt.Sprintf(`### General Request:
Estimate the total nutrient content of the listed food items for one meal.

### How to Act:
- Act as a nutrition analysis engine.
- Base estimates on typical nutrient databases for the named foods and quantities.
- When a quantity is vague, assume an average single serving.

### Nutrient Reference:
- Return exactly one entry per code below, using the listed unit:
%s

### Output Format:
The output must be a JSON object with the following structure:
- 'nutrients': an array with one object per nutrient code. Each object must include:
    - 'code': one of the codes from the reference table.
    - 'value': the estimated total amount as a non-negative number.
    - 'unit': the unit from the reference table.
Do not enclose the JSON in markdown code. Only return the JSON object.`, buildNutrientReferenceTable())

	var items strings.Builder
	items.WriteString("| Food | Amount | Servings | Note |\n")
	items.WriteString("|-----|-----|-----|-----|\n")
	for _, e := range entries {
		amount := "-"
		if e.AmountValue != nil && e.AmountUnit != nil {
			amount = fmt.Sprintf("%g %s", *e.AmountValue, *e.AmountUnit)
		}
		servings := "-"
		if e.ServingCount != nil {
			servings = fmt.Sprintf("%g", *e.ServingCount)
		}
		note := "-"
		if e.Note != nil && *e.Note != "" {
			note = *e.Note
		}
		items.WriteString(fmt.Sprintf("| %s | %s | %s | %s |\n", e.Name, amount, servings, note))
	}

	userPrompt := fmt.Sprintf(`Estimate the combined nutrients of this meal eaten on %s:

%s`, date.Format("2006-01-02"), items.String())

	var payload estimationPayload
	if err := c.chatJSON(ctx, systemPrompt, userPrompt, 2000, &payload); err != nil {
		return nil, err
	}
	if err := c.validate.Struct(&payload); err != nil {
		return nil, fmt.Errorf("estimation payload failed validation: %v", err)
	}

	return decodeEstimation(payload)
}

// decodeEstimation maps the raw payload onto the canonical nutrient
// set. Unknown codes, duplicates, and missing codes are rejected so a
// sloppy completion never reaches the summary tables.
func decodeEstimation(payload estimationPayload) ([]usecase.EstimatedNutrient, error) {
	seen := make(map[models.NutrientCode]bool)
	estimated := make([]usecase.EstimatedNutrient, 0, len(payload.Nutrients))
	for _, n := range payload.Nutrients {
		code, err := models.ParseNutrientCode(n.Code)
		if err != nil {
			return nil, err
		}
		if seen[code] {
			return nil, fmt.Errorf("duplicate nutrient code in estimation: %s", code)
		}
		seen[code] = true
		estimated = append(estimated, usecase.EstimatedNutrient{
			Code:   code,
			Value:  n.Value,
			Unit:   n.Unit,
			Source: models.NutrientSourceLLM,
		})
	}

	for _, code := range models.AllNutrientCodes {
		if !seen[code] {
			return nil, fmt.Errorf("estimation is missing nutrient code: %s", code)
		}
	}
	return estimated, nil
}

func zeroEstimate() []usecase.EstimatedNutrient {
	estimated := make([]usecase.EstimatedNutrient, 0, len(models.AllNutrientCodes))
	for _, code := range models.AllNutrientCodes {
		estimated = append(estimated, usecase.EstimatedNutrient{
			Code:   code,
			Value:  0,
			Unit:   models.CanonicalNutrientUnits[code],
			Source: models.NutrientSourceLLM,
		})
	}
	return estimated
}

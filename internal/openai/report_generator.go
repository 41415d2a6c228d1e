package openai

import (
	"context"
	"fmt"
	"strings"

	"nutrilog/internal/models"
	"nutrilog/internal/usecase"
)

type reportPayload struct {
	Summary           string   `json:"summary" validate:"required"`
	GoodPoints        []string `json:"good_points" validate:"required,min=1,dive,required"`
	ImprovementPoints []string `json:"improvement_points" validate:"required,min=1,dive,required"`
	TomorrowFocus     []string `json:"tomorrow_focus" validate:"required,min=1,dive,required"`
}

func formatNutrientRows(rows []models.DailySummaryNutrient) string {
	var table strings.Builder
	table.WriteString("| Nutrient | Amount | Unit |\n")
	table.WriteString("|-----|-----|-----|\n")
	for _, n := range rows {
		table.WriteString(fmt.Sprintf("| %s | %.2f | %s |\n", n.Code, n.Value, n.Unit))
	}
	return table.String()
}

func formatSnapshotRows(rows []models.SnapshotNutrient) string {
	var table strings.Builder
	table.WriteString("| Nutrient | Target | Unit |\n")
	table.WriteString("|-----|-----|-----|\n")
	for _, n := range rows {
		table.WriteString(fmt.Sprintf("| %s | %.2f | %s |\n", n.Code, n.Value, n.Unit))
	}
	return table.String()
}

func formatProfile(profile *models.UserProfile) string {
	var b strings.Builder
	if profile.Sex != "" {
		b.WriteString(fmt.Sprintf("- Sex: %s\n", profile.Sex))
	}
	if profile.Birthdate != nil {
		b.WriteString(fmt.Sprintf("- Birthdate: %s\n", profile.Birthdate.Format("2006-01-02")))
	}
	if profile.HeightCm != nil {
		b.WriteString(fmt.Sprintf("- Height: %.1f cm\n", *profile.HeightCm))
	}
	if profile.WeightKg != nil {
		b.WriteString(fmt.Sprintf("- Weight: %.1f kg\n", *profile.WeightKg))
	}
	if profile.MealsPerDay != nil {
		b.WriteString(fmt.Sprintf("- Meals per day: %d\n", *profile.MealsPerDay))
	}
	return b.String()
}

func (c *Client) GenerateDailyReport(ctx context.Context, input *usecase.ReportInput) (*usecase.GeneratedReport, error) {
	systemPrompt := `### General Request:
Write a daily nutrition review for the user based on their targets and what they actually ate.

### How to Act:
- Act as a supportive nutrition coach.
- Address the user as "you".
- Use simple, everyday language that anyone can understand.
- Be concrete: reference actual nutrients and amounts, not generalities.

### Output Format:
The output must be a JSON object with the following structure:
- 'summary': a short paragraph (2-4 sentences) reviewing the day.
- 'good_points': an array of short strings, things that went well.
- 'improvement_points': an array of short strings, things to improve.
- 'tomorrow_focus': an array of short strings, concrete focus points for tomorrow.
Every array must contain at least one item.
Do not enclose the JSON in markdown code. Only return the JSON object.`

	var meals strings.Builder
	for _, meal := range input.MealSummaries {
		slot := meal.MealType
		if meal.MealIndex != nil {
			slot = fmt.Sprintf("%s %d", meal.MealType, *meal.MealIndex)
		}
		meals.WriteString(fmt.Sprintf("#### %s\n", slot))
		for _, n := range meal.Nutrients {
			meals.WriteString(fmt.Sprintf("- %s: %.2f %s\n", n.Code, n.Value, n.Unit))
		}
	}

	userPrompt := fmt.Sprintf(`Review this day (%s).

### Profile:
%s
### Daily targets:
%s
### Daily totals:
%s
### Per-meal breakdown:
%s`,
		input.Date.Format("2006-01-02"),
		formatProfile(input.Profile),
		formatSnapshotRows(input.Snapshot.Nutrients),
		formatNutrientRows(input.DailySummary.Nutrients),
		meals.String())

	var payload reportPayload
	if err := c.chatJSON(ctx, systemPrompt, userPrompt, 2000, &payload); err != nil {
		return nil, err
	}
	if err := c.validate.Struct(&payload); err != nil {
		return nil, fmt.Errorf("report payload failed validation: %v", err)
	}

	return &usecase.GeneratedReport{
		Summary:           payload.Summary,
		GoodPoints:        payload.GoodPoints,
		ImprovementPoints: payload.ImprovementPoints,
		TomorrowFocus:     payload.TomorrowFocus,
	}, nil
}

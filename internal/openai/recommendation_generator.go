package openai

import (
	"context"
	"fmt"
	"strings"

	"nutrilog/internal/usecase"
)

type recommendedMealPayload struct {
	Title          string   `json:"title" validate:"required"`
	Description    string   `json:"description" validate:"required"`
	Ingredients    []string `json:"ingredients" validate:"required,min=3,dive,required"`
	NutritionFocus string   `json:"nutrition_focus" validate:"required"`
}

type recommendationPayload struct {
	Body  string                   `json:"body" validate:"required"`
	Tips  []string                 `json:"tips" validate:"required,min=2,max=5,dive,required"`
	Meals []recommendedMealPayload `json:"meals" validate:"required,len=3,dive"`
}

func (c *Client) GenerateMealRecommendation(ctx context.Context, input *usecase.RecommendationInput) (*usecase.GeneratedRecommendation, error) {
	systemPrompt := `### General Request:
Recommend meals for the user based on their recent daily nutrition reviews.

### How to Act:
- Act as a practical meal-planning coach.
- Address the user as "you".
- Suggest meals a home cook can actually prepare.
- Ground every suggestion in the patterns visible in the recent reviews.

### Output Format:
The output must be a JSON object with the following structure:
- 'body': a short paragraph explaining the overall recommendation.
- 'tips': an array of 2 to 5 short practical tips.
- 'meals': an array of exactly 3 meal ideas. Each object must include:
    - 'title': the meal name.
    - 'description': 1-2 sentences describing it.
    - 'ingredients': an array of at least 3 ingredient names.
    - 'nutrition_focus': the nutritional gap the meal addresses.
Do not enclose the JSON in markdown code. Only return the JSON object.`

	var reports strings.Builder
	for _, report := range input.Reports {
		reports.WriteString(fmt.Sprintf("#### %s\n", report.Date.Format("2006-01-02")))
		reports.WriteString(report.Summary + "\n")
		if len(report.ImprovementPoints) > 0 {
			reports.WriteString("Improvement points:\n")
			for _, p := range report.ImprovementPoints {
				reports.WriteString("- " + p + "\n")
			}
		}
	}

	userPrompt := fmt.Sprintf(`Recommend meals for this user.

### Profile:
%s
### Recent daily reviews (newest first):
%s`, formatProfile(input.Profile), reports.String())

	var payload recommendationPayload
	if err := c.chatJSON(ctx, systemPrompt, userPrompt, 2500, &payload); err != nil {
		return nil, err
	}
	if err := c.validate.Struct(&payload); err != nil {
		return nil, fmt.Errorf("recommendation payload failed validation: %v", err)
	}

	meals := make([]usecase.RecommendedMealIdea, 0, len(payload.Meals))
	for _, m := range payload.Meals {
		meals = append(meals, usecase.RecommendedMealIdea{
			Title:          m.Title,
			Description:    m.Description,
			Ingredients:    m.Ingredients,
			NutritionFocus: m.NutritionFocus,
		})
	}

	return &usecase.GeneratedRecommendation{
		Body:  payload.Body,
		Tips:  payload.Tips,
		Meals: meals,
	}, nil
}

package openai

import (
	"context"
	"strings"
	"testing"
	"time"

	"nutrilog/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestEstimate_EmptySlotShortCircuitsToZero(t *testing.T) {
	// No API key, no limiter: an empty slot must never reach the API.
	client := &Client{}

	estimated, err := client.Estimate(context.Background(), uuid.New(), time.Now().UTC(), nil)

	assert.NoError(t, err)
	assert.Len(t, estimated, len(models.AllNutrientCodes))
	for i, n := range estimated {
		assert.Equal(t, models.AllNutrientCodes[i], n.Code)
		assert.Zero(t, n.Value)
		assert.Equal(t, models.CanonicalNutrientUnits[n.Code], n.Unit)
		assert.Equal(t, models.NutrientSourceLLM, n.Source)
	}
}

func fullEstimationPayload() estimationPayload {
	var payload estimationPayload
	for _, code := range models.AllNutrientCodes {
		payload.Nutrients = append(payload.Nutrients, nutrientPayload{
			Code:  string(code),
			Value: 1,
			Unit:  models.CanonicalNutrientUnits[code],
		})
	}
	return payload
}

func TestDecodeEstimation_AcceptsFullNutrientSet(t *testing.T) {
	estimated, err := decodeEstimation(fullEstimationPayload())

	assert.NoError(t, err)
	assert.Len(t, estimated, len(models.AllNutrientCodes))
	for i, n := range estimated {
		assert.Equal(t, models.AllNutrientCodes[i], n.Code)
		assert.Equal(t, models.NutrientSourceLLM, n.Source)
	}
}

func TestDecodeEstimation_RejectsUnknownCode(t *testing.T) {
	payload := fullEstimationPayload()
	payload.Nutrients[0].Code = "caffeine"

	_, err := decodeEstimation(payload)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "caffeine")
}

func TestDecodeEstimation_RejectsDuplicateCode(t *testing.T) {
	payload := fullEstimationPayload()
	payload.Nutrients = append(payload.Nutrients, nutrientPayload{
		Code:  string(models.NutrientProtein),
		Value: 5,
		Unit:  "g",
	})

	_, err := decodeEstimation(payload)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate nutrient code")
}

func TestDecodeEstimation_RejectsMissingCode(t *testing.T) {
	payload := fullEstimationPayload()
	payload.Nutrients = payload.Nutrients[1:]

	_, err := decodeEstimation(payload)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "missing nutrient code")
}

func TestBuildNutrientReferenceTable(t *testing.T) {
	table := buildNutrientReferenceTable()

	for _, code := range models.AllNutrientCodes {
		assert.Contains(t, table, string(code))
	}
	assert.Equal(t, len(models.AllNutrientCodes)+2, strings.Count(table, "\n"))
}

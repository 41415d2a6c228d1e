package models

import "fmt"

// NutrientCode is the closed set of nutrients tracked by the pipeline.
type NutrientCode string

const (
	NutrientCarbohydrate   NutrientCode = "carbohydrate"
	NutrientFat            NutrientCode = "fat"
	NutrientProtein        NutrientCode = "protein"
	NutrientVitaminA       NutrientCode = "vitamin_a"
	NutrientVitaminBComplx NutrientCode = "vitamin_b_complex"
	NutrientVitaminC       NutrientCode = "vitamin_c"
	NutrientVitaminD       NutrientCode = "vitamin_d"
	NutrientVitaminE       NutrientCode = "vitamin_e"
	NutrientVitaminK       NutrientCode = "vitamin_k"
	NutrientCalcium        NutrientCode = "calcium"
	NutrientIron           NutrientCode = "iron"
	NutrientMagnesium      NutrientCode = "magnesium"
	NutrientZinc           NutrientCode = "zinc"
	NutrientSodium         NutrientCode = "sodium"
	NutrientPotassium      NutrientCode = "potassium"
	NutrientFiber          NutrientCode = "fiber"
	NutrientWater          NutrientCode = "water"
)

// AllNutrientCodes lists every code in canonical order.
var AllNutrientCodes = []NutrientCode{
	NutrientCarbohydrate,
	NutrientFat,
	NutrientProtein,
	NutrientVitaminA,
	NutrientVitaminBComplx,
	NutrientVitaminC,
	NutrientVitaminD,
	NutrientVitaminE,
	NutrientVitaminK,
	NutrientCalcium,
	NutrientIron,
	NutrientMagnesium,
	NutrientZinc,
	NutrientSodium,
	NutrientPotassium,
	NutrientFiber,
	NutrientWater,
}

// CanonicalNutrientUnits maps each code to the unit the estimator is
// expected to emit. The store records units but does not convert them.
var CanonicalNutrientUnits = map[NutrientCode]string{
	NutrientCarbohydrate:   "g",
	NutrientFat:            "g",
	NutrientProtein:        "g",
	NutrientVitaminA:       "µg",
	NutrientVitaminBComplx: "mg",
	NutrientVitaminC:       "mg",
	NutrientVitaminD:       "µg",
	NutrientVitaminE:       "mg",
	NutrientVitaminK:       "µg",
	NutrientCalcium:        "mg",
	NutrientIron:           "mg",
	NutrientMagnesium:      "mg",
	NutrientZinc:           "mg",
	NutrientSodium:         "mg",
	NutrientPotassium:      "mg",
	NutrientFiber:          "g",
	NutrientWater:          "ml",
}

func (c NutrientCode) IsValid() bool {
	_, ok := CanonicalNutrientUnits[c]
	return ok
}

func ParseNutrientCode(s string) (NutrientCode, error) {
	code := NutrientCode(s)
	if !code.IsValid() {
		return "", fmt.Errorf("unknown nutrient code: %q", s)
	}
	return code, nil
}

// NutrientSource tags the provenance of a nutrient amount.
type NutrientSource string

const (
	NutrientSourceLLM       NutrientSource = "llm"
	NutrientSourceManual    NutrientSource = "manual"
	NutrientSourceUserInput NutrientSource = "user_input"
)

func (s NutrientSource) IsValid() bool {
	switch s {
	case NutrientSourceLLM, NutrientSourceManual, NutrientSourceUserInput:
		return true
	}
	return false
}

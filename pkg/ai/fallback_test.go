package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFallbackSolutionDeterministic(t *testing.T) {
	a := FallbackSolution("Drought stress", "Wheat", "Rabi", "Punjab")
	b := FallbackSolution("Drought stress", "Wheat", "Rabi", "Punjab")
	assert.Equal(t, a, b)
	assert.NotEmpty(t, a)
}

func TestFallbackSolutionCategories(t *testing.T) {
	tests := []struct {
		name      string
		issueType string
		want      string
	}{
		{"rain", "heavy rain", "drainage channels"},
		{"flood", "field flooded", "drainage channels"},
		{"pest", "Pest infestation", "neem-based"},
		{"drought", "drought", "irrigation frequency"},
		{"water", "water shortage", "irrigation frequency"},
		{"nutrient", "nutrient problem", "soil testing"},
		{"deficiency", "nitrogen deficiency", "soil testing"},
		{"disease", "leaf disease", "fungicide"},
		{"generic", "stunted growth", "Monitor crop health"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := FallbackSolution(tc.issueType, "Rice", "Kharif", "Bihar")
			assert.Contains(t, got, tc.want)
			assert.Contains(t, got, "Rice")
			assert.Contains(t, got, "in Bihar")
		})
	}
}

func TestFallbackSolutionWithoutLocationOrCrop(t *testing.T) {
	got := FallbackSolution("pest", "", "", "")
	assert.Contains(t, got, "your crop")
	assert.Contains(t, got, "Consult local agricultural extension officers for specific guidance.")
}

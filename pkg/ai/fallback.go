// pkg/ai/fallback.go

package ai

import (
	"fmt"
	"strings"
)

// FallbackSolution is the rule-based generator used whenever the inference
// endpoint is unavailable. Same inputs, same text: callers rely on it being
// deterministic.
func FallbackSolution(issueType, cropName, season, location string) string {
	t := strings.ToLower(issueType)
	crop := cropName
	if crop == "" {
		crop = "your crop"
	}
	locationInfo := ""
	locationAdvice := " Consult local agricultural extension officers for specific guidance."
	if location != "" {
		locationInfo = " in " + location
		locationAdvice = fmt.Sprintf(" Consult local agricultural extension officers%s for region-specific guidance.", locationInfo)
	}

	switch {
	case strings.Contains(t, "rain") || strings.Contains(t, "flood"):
		return fmt.Sprintf("For heavy rainfall affecting %s%s: 1) Ensure proper drainage channels to prevent waterlogging - critical for your local soil type. 2) Postpone fertilizer application by 1-2 weeks until soil moisture normalizes. 3) Check for fungal diseases common in your region and apply preventive fungicides if needed. 4) Avoid walking on waterlogged fields to prevent soil compaction. Expected recovery: 5-7 days after water drains.%s", crop, locationInfo, locationAdvice)
	case strings.Contains(t, "pest"):
		return fmt.Sprintf("For pest infestation in %s%s: 1) Identify the specific pest - common pests vary by region and climate. 2) Use neem-based organic pesticides as first line of defense (effective in most climates). 3) For severe infestations, apply recommended chemical pesticides following local regulations and label instructions. 4) Implement integrated pest management practices including crop rotation suitable for your area. Recovery timeline: 7-10 days with proper treatment.%s", crop, locationInfo, locationAdvice)
	case strings.Contains(t, "drought") || strings.Contains(t, "water"):
		return fmt.Sprintf("For drought conditions affecting %s%s: 1) Increase irrigation frequency during early morning or late evening to minimize evaporation (adjust timing based on local temperature patterns). 2) Apply mulch around plants to retain soil moisture - use locally available materials. 3) Consider drip irrigation if available for water efficiency in your climate. 4) Monitor plants for stress symptoms specific to your region's weather patterns. Plants should recover within 3-5 days of adequate watering.%s", crop, locationInfo, locationAdvice)
	case strings.Contains(t, "nutrient") || strings.Contains(t, "deficiency"):
		return fmt.Sprintf("For nutrient deficiency in %s%s: 1) Conduct soil testing to identify specific nutrient deficiencies - soil composition varies significantly by region. 2) Apply balanced NPK fertilizer based on crop requirements and local soil characteristics. 3) For quick results, use foliar spray of micronutrients appropriate for your climate. 4) Improve soil health with organic matter like compost or vermicompost using locally available resources. Visible improvement expected in 7-14 days.%s", crop, locationInfo, locationAdvice)
	case strings.Contains(t, "disease") || strings.Contains(t, "fungal"):
		return fmt.Sprintf("For disease management in %s%s: 1) Remove and destroy infected plant parts immediately - disease spread varies with local humidity and temperature. 2) Apply appropriate fungicide or bactericide based on disease type and local climate conditions. 3) Improve air circulation by proper spacing and pruning suitable for your growing conditions. 4) Avoid overhead irrigation to reduce leaf wetness, especially during humid periods in your area. Treatment response: 5-10 days depending on disease severity and local weather.%s", crop, locationInfo, locationAdvice)
	default:
		return fmt.Sprintf("General recommendation for %s%s in %s season: 1) Monitor crop health daily for early detection of issues specific to your region. 2) Maintain optimal soil moisture through regular but controlled irrigation based on local rainfall patterns. 3) Follow recommended fertilization schedule adapted to your area's soil type and crop stage. 4) Practice good field hygiene and crop rotation suitable for your local conditions.%s", crop, locationInfo, season, locationAdvice)
	}
}

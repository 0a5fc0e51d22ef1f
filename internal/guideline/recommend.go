package guideline

import "github.com/abhisek/vaprisk/internal/assessment"

// Care recommendation blocks. The grouping is part of the published
// guideline: High and Moderate-High share the urgent block, Moderate has
// its own, and the remaining categories share the baseline block.
var (
	urgentBlock = []string{
		"Immediately initiate subglottic secretion drainage (for patients with ventilation ≥72h)",
		"Maintain head-of-bed elevation at 45° (or as close as possible if contraindicated)",
		"Use a closed endotracheal suctioning system; replace heat and moisture exchangers every 5-7 days",
		"Daily monitoring of body temperature, WBC count, and chest imaging changes",
	}
	moderateBlock = []string{
		"Closely monitor mechanical ventilation duration; prepare for subglottic drainage if ≥72h is expected",
		"Recheck WBC count and oxygenation index every 2 days",
		"Maintain head-of-bed elevation at 30-45°; avoid supine position",
	}
	baselineBlock = []string{
		"Routine mechanical ventilation care; replace heat and moisture exchangers weekly (if not contaminated)",
		"Monitor WBC count and chest imaging once weekly",
		"Immediately recheck relevant indicators if fever (≥38℃) occurs",
	}
)

// recommendationGroups maps each risk level to its block explicitly rather
// than deriving the group from the level name.
var recommendationGroups = map[assessment.RiskLevel][]string{
	assessment.LevelHigh:         urgentBlock,
	assessment.LevelModerateHigh: urgentBlock,
	assessment.LevelModerate:     moderateBlock,
	assessment.LevelLowModerate:  baselineBlock,
	assessment.LevelLow:          baselineBlock,
}

// RecommendationsFor returns the care recommendations for a risk level.
func RecommendationsFor(level assessment.RiskLevel) []string {
	if block, ok := recommendationGroups[level]; ok {
		return block
	}
	return baselineBlock
}

package scoring

import (
	"github.com/abhisek/vaprisk/internal/assessment"
	"github.com/abhisek/vaprisk/internal/patient"
)

// Band is one contiguous score range with its reference statistics and
// care recommendations. The texts are static clinical content.
type Band struct {
	Level            assessment.RiskLevel
	CaseControlRatio string
	Explanation      string
	Recommendations  []string
}

var bandLow = Band{
	Level:            assessment.LevelLow,
	CaseControlRatio: "Cases (8, 3.2%); Controls (242, 96.8%)",
	Explanation:      "Patient presents with minimal risk factors for VAP development",
	Recommendations: []string{
		"Routine mechanical ventilation care; replace heat and moisture exchangers weekly (if not contaminated)",
		"Monitor WBC count and chest imaging once weekly",
		"Immediately recheck relevant indicators if fever (≥38℃) occurs",
	},
}

var bandModerate = Band{
	Level:            assessment.LevelModerate,
	CaseControlRatio: "Cases (48, 31.5%); Controls (104, 68.5%)",
	Explanation:      "Patient has several risk factors that warrant closer monitoring",
	Recommendations: []string{
		"Closely monitor mechanical ventilation duration; prepare for subglottic drainage if ≥72h is expected",
		"Recheck WBC count and oxygenation index every 2 days",
		"Maintain head-of-bed elevation at 30-45°; avoid supine position",
		"Implement oral antiseptic rinses (chlorhexidine/povidone-iodine) as preventive measure",
	},
}

var bandHigh = Band{
	Level:            assessment.LevelHigh,
	CaseControlRatio: "Cases (156, 78.4%); Controls (43, 21.6%)",
	Explanation:      "Patient meets multiple high-risk criteria for VAP development",
	Recommendations: []string{
		"Immediately initiate subglottic secretion drainage (for patients with ventilation ≥72h)",
		"Maintain head-of-bed elevation at 45° (or as close as possible if contraindicated)",
		"Use a closed endotracheal suctioning system; replace heat and moisture exchangers every 5-7 days",
		"Daily monitoring of body temperature, WBC count, and chest imaging changes",
		"Consider rotating beds if feasible to reduce pulmonary complications",
	},
}

// Classify maps a score to its band. Bands are contiguous and tested in
// ascending order; the boundaries are closed at 5 and 12.
func Classify(score int) Band {
	switch {
	case score < 5:
		return bandLow
	case score <= 12:
		return bandModerate
	default:
		return bandHigh
	}
}

// Assess scores one patient and shapes the result into an Assessment.
func Assess(p patient.Parameters) (assessment.Assessment, error) {
	score, err := Score(p)
	if err != nil {
		return assessment.Assessment{}, err
	}
	band := Classify(score)
	a := assessment.New(assessment.EngineAdditive, band.Level, band.CaseControlRatio, band.Explanation, band.Recommendations)
	a.Score = &score
	return a, nil
}

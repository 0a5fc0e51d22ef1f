package assessment

import "github.com/google/uuid"

// RiskLevel is the risk category produced by an engine. The additive scorer
// uses the three coarse levels; the guideline tree additionally produces the
// two intermediate ones.
type RiskLevel string

const (
	LevelLow          RiskLevel = "low"
	LevelLowModerate  RiskLevel = "low-moderate"
	LevelModerate     RiskLevel = "moderate"
	LevelModerateHigh RiskLevel = "moderate-high"
	LevelHigh         RiskLevel = "high"
)

// AllLevels returns all risk levels ordered from lowest to highest.
func AllLevels() []RiskLevel {
	return []RiskLevel{LevelLow, LevelLowModerate, LevelModerate, LevelModerateHigh, LevelHigh}
}

// DisplayName returns a human-readable label for the risk level.
func (l RiskLevel) DisplayName() string {
	switch l {
	case LevelLow:
		return "Low Risk"
	case LevelLowModerate:
		return "Low-Moderate Risk"
	case LevelModerate:
		return "Moderate Risk"
	case LevelModerateHigh:
		return "Moderate-High Risk"
	case LevelHigh:
		return "High Risk"
	default:
		return string(l)
	}
}

// Engine identifies which rule engine produced an assessment.
type Engine string

const (
	EngineAdditive  Engine = "additive-score"
	EngineGuideline Engine = "guideline-tree"
)

// DisplayName returns a human-readable label for the engine.
func (e Engine) DisplayName() string {
	switch e {
	case EngineAdditive:
		return "Additive Risk Score"
	case EngineGuideline:
		return "Clinical Guideline Tree"
	default:
		return string(e)
	}
}

// Assessment is the result of one risk evaluation. Constructed fresh per
// evaluation and never mutated.
type Assessment struct {
	ID               uuid.UUID
	Engine           Engine
	Level            RiskLevel
	Score            *int // set only by the additive engine, always in [0,20]
	CaseControlRatio string
	Explanation      string
	Recommendations  []string
}

// New builds an Assessment with a fresh ID.
func New(engine Engine, level RiskLevel, ratio, explanation string, recommendations []string) Assessment {
	return Assessment{
		ID:               uuid.New(),
		Engine:           engine,
		Level:            level,
		CaseControlRatio: ratio,
		Explanation:      explanation,
		Recommendations:  recommendations,
	}
}

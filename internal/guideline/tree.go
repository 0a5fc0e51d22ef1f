package guideline

import "github.com/abhisek/vaprisk/internal/assessment"

// Findings holds the yes/no facts the guideline tree branches on. Only the
// facts on the active path are ever consulted; the wizard gathers them
// lazily through the Walker.
type Findings struct {
	ChestInfiltrates bool
	VentilationGe72  bool
	Fever            bool
	WBCAbnormal      bool
	OxygenationLow   bool // PaO2/FiO2 <= 300
	AgeOver65        bool
	Comorbidities    bool
}

// Outcome is one terminal of the tree with its reference statistics.
type Outcome struct {
	Level            assessment.RiskLevel
	CaseControlRatio string
	Explanation      string
}

var (
	outcomeNoInfiltrates = Outcome{
		Level:            assessment.LevelLow,
		CaseControlRatio: "Cases (8, 3.2%); Controls (242, 96.8%)",
		Explanation:      "No chest imaging infiltrates, which does not meet the core diagnostic criteria for VAP.",
	}
	outcomeDiagnostic = Outcome{
		Level:            assessment.LevelHigh,
		CaseControlRatio: "Cases (156, 78.4%); Controls (43, 21.6%)",
		Explanation:      "Chest imaging infiltrates + mechanical ventilation ≥72h + fever/WBC abnormality, meeting VAP diagnostic criteria.",
	}
	outcomeOxygenation = Outcome{
		Level:            assessment.LevelModerateHigh,
		CaseControlRatio: "Cases (72, 54.2%); Controls (61, 45.8%)",
		Explanation:      "Chest imaging infiltrates + mechanical ventilation ≥72h + abnormal oxygenation, indicating high VAP risk.",
	}
	outcomeProlongedOnly = Outcome{
		Level:            assessment.LevelModerate,
		CaseControlRatio: "Cases (35, 27.1%); Controls (94, 72.9%)",
		Explanation:      "Chest imaging infiltrates + mechanical ventilation ≥72h, but no other symptoms; close monitoring required.",
	}
	outcomeElderly = Outcome{
		Level:            assessment.LevelModerate,
		CaseControlRatio: "Cases (48, 31.5%); Controls (104, 68.5%)",
		Explanation:      "Chest imaging infiltrates + elderly/comorbidities; even with ventilation <72h, VAP vigilance is needed.",
	}
	outcomeInfiltratesOnly = Outcome{
		Level:            assessment.LevelLowModerate,
		CaseControlRatio: "Cases (22, 14.3%); Controls (132, 85.7%)",
		Explanation:      "Chest imaging infiltrates, but ventilation <72h + no elderly/comorbidities; low VAP risk.",
	}
)

// Evaluate walks the layered guideline tree over complete findings.
// The tree is acyclic; its terminals map onto five mutually exclusive
// risk categories.
func Evaluate(f Findings) Outcome {
	if !f.ChestInfiltrates {
		return outcomeNoInfiltrates
	}
	if f.VentilationGe72 {
		if f.Fever || f.WBCAbnormal {
			return outcomeDiagnostic
		}
		if f.OxygenationLow {
			return outcomeOxygenation
		}
		return outcomeProlongedOnly
	}
	if f.AgeOver65 || f.Comorbidities {
		return outcomeElderly
	}
	return outcomeInfiltratesOnly
}

// Assess evaluates the findings and shapes the result into an Assessment.
func Assess(f Findings) assessment.Assessment {
	out := Evaluate(f)
	return assessment.New(assessment.EngineGuideline, out.Level, out.CaseControlRatio, out.Explanation, RecommendationsFor(out.Level))
}

package guideline

// Gate is one yes/no question of the guideline tree.
type Gate string

const (
	GateChestInfiltrates Gate = "chest-infiltrates"
	GateVentilationGe72  Gate = "ventilation-ge-72h"
	GateFever            Gate = "fever"
	GateWBCAbnormal      Gate = "wbc-abnormal"
	GateOxygenationLow   Gate = "oxygenation-low"
	GateAgeOver65        Gate = "age-over-65"
	GateComorbidities    Gate = "comorbidities"
)

// Question returns the clinical question text for the gate.
func (g Gate) Question() string {
	switch g {
	case GateChestInfiltrates:
		return "Does chest imaging show new or persistent infiltrates?"
	case GateVentilationGe72:
		return "Is the duration of mechanical ventilation ≥72 hours?"
	case GateFever:
		return "Does the patient have a fever (body temperature ≥38℃)?"
	case GateWBCAbnormal:
		return "Is the white blood cell (WBC) count abnormal (<4 or >12 ×10⁹/L)?"
	case GateOxygenationLow:
		return "Is the oxygenation index (PaO₂/FiO₂) ≤300?"
	case GateAgeOver65:
		return "Is the patient aged ≥65 years?"
	case GateComorbidities:
		return "Does the patient have underlying comorbidities (e.g., diabetes, chronic lung disease)?"
	default:
		return string(g)
	}
}

// Walker steps through the tree one gate at a time so the wizard only asks
// the questions on the active path. Gates off the path are never requested.
type Walker struct {
	answers map[Gate]bool
}

// NewWalker starts a traversal with no facts gathered.
func NewWalker() *Walker {
	return &Walker{answers: make(map[Gate]bool)}
}

// Answer records the response to a gate.
func (w *Walker) Answer(g Gate, yes bool) {
	w.answers[g] = yes
}

// Next returns the next gate to ask, or the terminal outcome once the
// active path is fully answered. Exactly one of the returns is meaningful:
// ok=true means gate is the next question, ok=false means out is final.
func (w *Walker) Next() (gate Gate, out Outcome, ok bool) {
	infiltrates, have := w.answers[GateChestInfiltrates]
	if !have {
		return GateChestInfiltrates, Outcome{}, true
	}
	if !infiltrates {
		return "", w.evaluate(), false
	}

	ge72, have := w.answers[GateVentilationGe72]
	if !have {
		return GateVentilationGe72, Outcome{}, true
	}

	if ge72 {
		fever, have := w.answers[GateFever]
		if !have {
			return GateFever, Outcome{}, true
		}
		wbc, haveWBC := w.answers[GateWBCAbnormal]
		if !haveWBC {
			return GateWBCAbnormal, Outcome{}, true
		}
		if fever || wbc {
			return "", w.evaluate(), false
		}
		if _, have := w.answers[GateOxygenationLow]; !have {
			return GateOxygenationLow, Outcome{}, true
		}
		return "", w.evaluate(), false
	}

	if _, have := w.answers[GateAgeOver65]; !have {
		return GateAgeOver65, Outcome{}, true
	}
	if _, have := w.answers[GateComorbidities]; !have {
		return GateComorbidities, Outcome{}, true
	}
	return "", w.evaluate(), false
}

// Findings assembles the gathered facts; unanswered gates stay false, which
// is safe because Next only terminates once the active path is complete.
func (w *Walker) Findings() Findings {
	return Findings{
		ChestInfiltrates: w.answers[GateChestInfiltrates],
		VentilationGe72:  w.answers[GateVentilationGe72],
		Fever:            w.answers[GateFever],
		WBCAbnormal:      w.answers[GateWBCAbnormal],
		OxygenationLow:   w.answers[GateOxygenationLow],
		AgeOver65:        w.answers[GateAgeOver65],
		Comorbidities:    w.answers[GateComorbidities],
	}
}

func (w *Walker) evaluate() Outcome {
	return Evaluate(w.Findings())
}

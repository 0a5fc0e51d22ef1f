package wizard

import (
	"fmt"

	"github.com/abhisek/vaprisk/internal/patient"
)

// questionKind selects the input component for a question.
type questionKind int

const (
	kindNumeric questionKind = iota
	kindChoice
	kindYesNo
)

// question is one wizard step. Numeric questions may carry a validate func
// that rejects the value with a reason, re-asking the same question.
type question struct {
	id          string
	prompt      string
	kind        questionKind
	options     []string
	placeholder string
	validate    func(v int) string
}

// Choice answer encoding: the chosen option index. Yes/no encodes yes as 0.
const answerYes = 0

// additiveQuestions is the fixed elicitation order of the scored assessment.
func additiveQuestions() []question {
	return []question{
		{
			id:          "age",
			prompt:      "What is the patient's age (in years)?",
			kind:        kindNumeric,
			placeholder: "e.g. 67",
			validate: func(v int) string {
				if v < 18 {
					return "This tool is only for patients aged ≥18. Please re-enter."
				}
				return ""
			},
		},
		{
			id:      "route",
			prompt:  "Which intubation route is in use?",
			kind:    kindChoice,
			options: []string{"Orotracheal", "Nasotracheal"},
		},
		{
			id:          "duration",
			prompt:      "What is the duration of mechanical ventilation (hours)?",
			kind:        kindNumeric,
			placeholder: "e.g. 96",
		},
		{
			id:     "drainage",
			prompt: "Is subglottic secretion drainage used?",
			kind:   kindYesNo,
		},
		{
			id:          "elevation",
			prompt:      "What is the bed head elevation angle (degrees)?",
			kind:        kindNumeric,
			placeholder: "0-90",
			validate: func(v int) string {
				if v > 90 {
					return "Elevation angle must be between 0 and 90 degrees."
				}
				return ""
			},
		},
		{
			id:     "suction",
			prompt: "Is a closed endotracheal suctioning system used?",
			kind:   kindYesNo,
		},
		{
			id:      "antiseptic",
			prompt:  "Which oral antiseptic is used?",
			kind:    kindChoice,
			options: []string{"Chlorhexidine", "Povidone-iodine", "None"},
		},
		{
			id:     "fever",
			prompt: "Does the patient have fever?",
			kind:   kindYesNo,
		},
		{
			id:     "leukocytosis",
			prompt: "Does the patient have leukocytosis?",
			kind:   kindYesNo,
		},
		{
			id:     "radiograph",
			prompt: "Does chest radiograph show new infiltrates?",
			kind:   kindYesNo,
		},
	}
}

// ageQuestion is the eligibility gate asked before any guideline question.
func ageQuestion() question {
	return additiveQuestions()[0]
}

// routeOptions maps choice indices of the "route" question to its enum.
var routeOptions = []patient.IntubationRoute{
	patient.RouteOrotracheal,
	patient.RouteNasotracheal,
}

// antisepticOptions maps choice indices of the "antiseptic" question to its enum.
var antisepticOptions = []patient.OralAntiseptic{
	patient.AntisepticChlorhexidine,
	patient.AntisepticPovidoneIodine,
	patient.AntisepticNone,
}

// buildParameters assembles engine input from the recorded answers of the
// additive question sequence.
func buildParameters(answers map[string]int) (patient.Parameters, error) {
	route, ok := index(answers, "route", routeOptions)
	if !ok {
		return patient.Parameters{}, fmt.Errorf("intubation route answer out of range")
	}
	antiseptic, ok := index(answers, "antiseptic", antisepticOptions)
	if !ok {
		return patient.Parameters{}, fmt.Errorf("oral antiseptic answer out of range")
	}

	return patient.Parameters{
		Age:                       answers["age"],
		IntubationRoute:           route,
		VentilationDurationHours:  answers["duration"],
		SubglotticDrainageUsed:    answers["drainage"] == answerYes,
		BedHeadElevationDegrees:   answers["elevation"],
		ClosedSuctionSystemUsed:   answers["suction"] == answerYes,
		OralAntiseptic:            antiseptic,
		HasFever:                  answers["fever"] == answerYes,
		HasLeukocytosis:           answers["leukocytosis"] == answerYes,
		ChestRadiographInfiltrate: answers["radiograph"] == answerYes,
	}, nil
}

func index[T any](answers map[string]int, id string, options []T) (T, bool) {
	var zero T
	i, ok := answers[id]
	if !ok || i < 0 || i >= len(options) {
		return zero, false
	}
	return options[i], true
}

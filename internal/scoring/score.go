package scoring

import "github.com/abhisek/vaprisk/internal/patient"

// Score bounds. Every computed score is clamped into this range.
const (
	MinScore = 0
	MaxScore = 20
)

// Contribution weights for each factor. Risk factors add points,
// protective factors subtract them.
const (
	weightNasotracheal     = 3
	weightOrotracheal      = -2
	weightProlongedVent    = 3 // >72h
	weightIntermediateVent = 1 // 24h-72h inclusive
	weightDrainageUsed     = -2
	weightDrainageMissing  = 2
	weightElevationHigh    = -2 // >=45 degrees
	weightElevationLow     = 2  // <30 degrees
	weightClosedSuction    = -1
	weightOpenSuction      = 1
	weightAntiseptic       = -1
	weightFever            = 2
	weightLeukocytosis     = 2
	weightInfiltrates      = 3
)

// Score computes the additive VAP risk score for one patient, clamped to
// [MinScore, MaxScore]. Contributions are independent of each other except
// that subglottic drainage is only weighed when ventilation exceeds 72h.
// Returns *patient.InvalidParameterError when a categorical field holds a
// value outside its closed set.
func Score(p patient.Parameters) (int, error) {
	if !p.IntubationRoute.Valid() {
		return 0, &patient.InvalidParameterError{Field: "intubation_route", Value: string(p.IntubationRoute)}
	}
	if !p.OralAntiseptic.Valid() {
		return 0, &patient.InvalidParameterError{Field: "oral_antiseptic", Value: string(p.OralAntiseptic)}
	}

	score := 0

	switch p.IntubationRoute {
	case patient.RouteNasotracheal:
		score += weightNasotracheal
	case patient.RouteOrotracheal:
		score += weightOrotracheal
	}

	switch {
	case p.VentilationDurationHours > 72:
		score += weightProlongedVent
	case p.VentilationDurationHours >= 24:
		score += weightIntermediateVent
	}

	// Drainage is only indicated for prolonged ventilation.
	if p.VentilationDurationHours > 72 {
		if p.SubglotticDrainageUsed {
			score += weightDrainageUsed
		} else {
			score += weightDrainageMissing
		}
	}

	switch {
	case p.BedHeadElevationDegrees >= 45:
		score += weightElevationHigh
	case p.BedHeadElevationDegrees < 30:
		score += weightElevationLow
	}

	if p.ClosedSuctionSystemUsed {
		score += weightClosedSuction
	} else {
		score += weightOpenSuction
	}

	if p.OralAntiseptic != patient.AntisepticNone {
		score += weightAntiseptic
	}

	if p.HasFever {
		score += weightFever
	}
	if p.HasLeukocytosis {
		score += weightLeukocytosis
	}
	if p.ChestRadiographInfiltrate {
		score += weightInfiltrates
	}

	return clamp(score, MinScore, MaxScore), nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

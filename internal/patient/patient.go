package patient

// IntubationRoute is the route of endotracheal intubation.
type IntubationRoute string

const (
	RouteOrotracheal  IntubationRoute = "orotracheal"
	RouteNasotracheal IntubationRoute = "nasotracheal"
)

// ParseIntubationRoute converts a raw string into an IntubationRoute.
// Returns *InvalidParameterError for anything outside the closed set.
func ParseIntubationRoute(s string) (IntubationRoute, error) {
	switch IntubationRoute(s) {
	case RouteOrotracheal, RouteNasotracheal:
		return IntubationRoute(s), nil
	}
	return "", &InvalidParameterError{Field: "intubation_route", Value: s}
}

// Valid reports whether the route is one of the known values.
func (r IntubationRoute) Valid() bool {
	return r == RouteOrotracheal || r == RouteNasotracheal
}

// DisplayName returns a human-readable label for the route.
func (r IntubationRoute) DisplayName() string {
	switch r {
	case RouteOrotracheal:
		return "Orotracheal"
	case RouteNasotracheal:
		return "Nasotracheal"
	default:
		return string(r)
	}
}

// OralAntiseptic is the oral antiseptic in use, if any.
type OralAntiseptic string

const (
	AntisepticChlorhexidine  OralAntiseptic = "chlorhexidine"
	AntisepticPovidoneIodine OralAntiseptic = "povidone-iodine"
	AntisepticNone           OralAntiseptic = "none"
)

// ParseOralAntiseptic converts a raw string into an OralAntiseptic.
// Returns *InvalidParameterError for anything outside the closed set.
func ParseOralAntiseptic(s string) (OralAntiseptic, error) {
	switch OralAntiseptic(s) {
	case AntisepticChlorhexidine, AntisepticPovidoneIodine, AntisepticNone:
		return OralAntiseptic(s), nil
	}
	return "", &InvalidParameterError{Field: "oral_antiseptic", Value: s}
}

// Valid reports whether the antiseptic is one of the known values.
func (a OralAntiseptic) Valid() bool {
	return a == AntisepticChlorhexidine || a == AntisepticPovidoneIodine || a == AntisepticNone
}

// DisplayName returns a human-readable label for the antiseptic.
func (a OralAntiseptic) DisplayName() string {
	switch a {
	case AntisepticChlorhexidine:
		return "Chlorhexidine"
	case AntisepticPovidoneIodine:
		return "Povidone-iodine"
	case AntisepticNone:
		return "None"
	default:
		return string(a)
	}
}

// Parameters holds the clinical parameters of one ventilated patient.
// Built once by the collaborating input layer and never mutated afterwards.
// Numeric fields are accepted as-is; the age >=18 eligibility check belongs
// to the input layer, not the engines.
type Parameters struct {
	Age                       int
	IntubationRoute           IntubationRoute
	VentilationDurationHours  int
	SubglotticDrainageUsed    bool
	BedHeadElevationDegrees   int
	ClosedSuctionSystemUsed   bool
	OralAntiseptic            OralAntiseptic
	HasFever                  bool
	HasLeukocytosis           bool
	ChestRadiographInfiltrate bool
}

package patient

import "fmt"

// InvalidParameterError indicates a categorical field held a value outside
// its closed set. The engines return it instead of guessing a default.
type InvalidParameterError struct {
	Field string
	Value string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid value %q for parameter %q", e.Value, e.Field)
}

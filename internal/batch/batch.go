package batch

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/abhisek/vaprisk/internal/assessment"
	"github.com/abhisek/vaprisk/internal/scoring"
)

// Result pairs a 1-based patient identifier with either an assessment or
// the error that disqualified the record. Output order matches input order.
type Result struct {
	PatientID  int
	Age        int
	Duration   int
	Assessment *assessment.Assessment
	Err        error
}

// Load reads a batch file: a JSON array of patient records. The file must
// be a well-formed array; individual records are validated later so one bad
// record cannot sink the batch.
func Load(path string) ([]json.RawMessage, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read batch file: %w", err)
	}
	var records []json.RawMessage
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse batch file: expected a JSON array of patient records: %w", err)
	}
	return records, nil
}

// Run scores every record with the additive engine. Each record is
// independent: validation or enum failures produce an error entry for that
// patient identifier and the rest of the batch proceeds.
func Run(records []json.RawMessage) []Result {
	results := make([]Result, 0, len(records))
	for i, raw := range records {
		id := i + 1

		if err := validateRecord(raw); err != nil {
			results = append(results, Result{PatientID: id, Err: err})
			continue
		}

		var rec Record
		if err := json.Unmarshal(raw, &rec); err != nil {
			results = append(results, Result{PatientID: id, Err: fmt.Errorf("decode record: %w", err)})
			continue
		}

		params, err := rec.Parameters()
		if err != nil {
			results = append(results, Result{PatientID: id, Err: err})
			continue
		}

		a, err := scoring.Assess(params)
		if err != nil {
			results = append(results, Result{PatientID: id, Err: err})
			continue
		}

		results = append(results, Result{
			PatientID:  id,
			Age:        rec.Age,
			Duration:   rec.VentilationDuration,
			Assessment: &a,
		})
	}
	return results
}

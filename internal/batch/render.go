package batch

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Format selects the batch output rendering.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
)

// ParseFormat converts a raw string into a Format.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatTable, FormatJSON:
		return Format(s), nil
	}
	return "", fmt.Errorf("invalid format %q: must be table or json", s)
}

// jsonResult is the wire shape of one batch result.
type jsonResult struct {
	PatientID        int      `json:"patient_id"`
	Error            string   `json:"error,omitempty"`
	AssessmentID     string   `json:"assessment_id,omitempty"`
	Age              *int     `json:"age,omitempty"`
	Duration         *int     `json:"ventilation_duration_h,omitempty"`
	RiskScore        *int     `json:"risk_score,omitempty"`
	RiskLevel        string   `json:"risk_level,omitempty"`
	CaseControlRatio string   `json:"case_control_ratio,omitempty"`
	Explanation      string   `json:"explanation,omitempty"`
	Recommendations  []string `json:"recommendations,omitempty"`
}

// RenderJSON marshals the results as an indented JSON array.
func RenderJSON(results []Result) (string, error) {
	out := make([]jsonResult, 0, len(results))
	for _, r := range results {
		jr := jsonResult{PatientID: r.PatientID}
		if r.Err != nil {
			jr.Error = r.Err.Error()
		} else if r.Assessment != nil {
			age, duration := r.Age, r.Duration
			jr.AssessmentID = r.Assessment.ID.String()
			jr.Age = &age
			jr.Duration = &duration
			jr.RiskScore = r.Assessment.Score
			jr.RiskLevel = r.Assessment.Level.DisplayName()
			jr.CaseControlRatio = r.Assessment.CaseControlRatio
			jr.Explanation = r.Assessment.Explanation
			jr.Recommendations = r.Assessment.Recommendations
		}
		out = append(out, jr)
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal results: %w", err)
	}
	return string(data), nil
}

// RenderTable formats the results as a plain text report, one block per
// patient, in input order.
func RenderTable(results []Result) string {
	var b strings.Builder
	divider := strings.Repeat("-", 80)

	b.WriteString(divider + "\n")
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(&b, "Patient %d: invalid record: %v\n", r.PatientID, r.Err)
			b.WriteString(divider + "\n")
			continue
		}
		a := r.Assessment
		fmt.Fprintf(&b, "Patient %d:\n", r.PatientID)
		fmt.Fprintf(&b, "  Age: %d | Ventilation Duration: %dh\n", r.Age, r.Duration)
		if a.Score != nil {
			fmt.Fprintf(&b, "  Risk Score: %d/20 | Risk Level: %s\n", *a.Score, a.Level.DisplayName())
		} else {
			fmt.Fprintf(&b, "  Risk Level: %s\n", a.Level.DisplayName())
		}
		fmt.Fprintf(&b, "  Case/Control Ratio: %s\n", a.CaseControlRatio)
		fmt.Fprintf(&b, "  Rationale: %s\n", a.Explanation)
		b.WriteString("  Recommendations:\n")
		for _, rec := range a.Recommendations {
			fmt.Fprintf(&b, "    - %s\n", rec)
		}
		b.WriteString(divider + "\n")
	}
	return b.String()
}

package batch

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/vaprisk/internal/assessment"
	"github.com/abhisek/vaprisk/internal/patient"
)

const highRiskJSON = `{
	"age": 68,
	"intubation_route": "nasotracheal",
	"ventilation_duration_h": 96,
	"subglottic_drainage": false,
	"bed_head_elevation_deg": 25,
	"closed_suction_system": false,
	"oral_antiseptic": "none",
	"fever": true,
	"leukocytosis": true,
	"chest_radiograph": true
}`

const lowRiskJSON = `{
	"age": 52,
	"intubation_route": "orotracheal",
	"ventilation_duration_h": 48,
	"subglottic_drainage": false,
	"bed_head_elevation_deg": 45,
	"closed_suction_system": true,
	"oral_antiseptic": "chlorhexidine",
	"fever": false,
	"leukocytosis": false,
	"chest_radiograph": false
}`

const badRouteJSON = `{
	"age": 60,
	"intubation_route": "tracheostomy",
	"ventilation_duration_h": 10,
	"subglottic_drainage": false,
	"bed_head_elevation_deg": 30,
	"closed_suction_system": true,
	"oral_antiseptic": "none",
	"fever": false,
	"leukocytosis": false,
	"chest_radiograph": false
}`

func rawRecords(t *testing.T, docs ...string) []json.RawMessage {
	t.Helper()
	records := make([]json.RawMessage, 0, len(docs))
	for _, d := range docs {
		records = append(records, json.RawMessage(d))
	}
	return records
}

func TestRunScoresValidRecords(t *testing.T) {
	results := Run(rawRecords(t, highRiskJSON, lowRiskJSON))
	require.Len(t, results, 2)

	first := results[0]
	require.NoError(t, first.Err)
	require.NotNil(t, first.Assessment)
	assert.Equal(t, 1, first.PatientID)
	require.NotNil(t, first.Assessment.Score)
	assert.Equal(t, 18, *first.Assessment.Score)
	assert.Equal(t, assessment.LevelHigh, first.Assessment.Level)

	second := results[1]
	require.NoError(t, second.Err)
	require.NotNil(t, second.Assessment.Score)
	assert.Equal(t, 2, second.PatientID)
	assert.Equal(t, 0, *second.Assessment.Score)
	assert.Equal(t, assessment.LevelLow, second.Assessment.Level)
}

func TestRunIsolatesInvalidRecord(t *testing.T) {
	results := Run(rawRecords(t, highRiskJSON, badRouteJSON, lowRiskJSON))
	require.Len(t, results, 3)

	assert.NoError(t, results[0].Err)
	assert.NoError(t, results[2].Err)

	bad := results[1]
	assert.Equal(t, 2, bad.PatientID)
	require.Error(t, bad.Err)
	assert.Nil(t, bad.Assessment)

	var invalid *patient.InvalidParameterError
	require.True(t, errors.As(bad.Err, &invalid))
	assert.Equal(t, "intubation_route", invalid.Field)

	// Identifiers stay 1-based and in input order.
	for i, r := range results {
		assert.Equal(t, i+1, r.PatientID)
	}
}

func TestRunRejectsSchemaViolations(t *testing.T) {
	missingField := `{"age": 50}`
	wrongType := strings.Replace(highRiskJSON, `"fever": true`, `"fever": "yes"`, 1)

	results := Run(rawRecords(t, missingField, wrongType))
	require.Len(t, results, 2)
	assert.Error(t, results[0].Err)
	assert.Error(t, results[1].Err)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "patients.json")
	content := "[" + highRiskJSON + "," + lowRiskJSON + "]"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	records, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestLoadRejectsNonArray(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "patients.json")
	require.NoError(t, os.WriteFile(path, []byte(highRiskJSON), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestRenderTable(t *testing.T) {
	results := Run(rawRecords(t, highRiskJSON, badRouteJSON))
	out := RenderTable(results)

	assert.Contains(t, out, "Patient 1:")
	assert.Contains(t, out, "Risk Score: 18/20")
	assert.Contains(t, out, "High Risk")
	assert.Contains(t, out, "Patient 2: invalid record")
}

func TestRenderJSON(t *testing.T) {
	results := Run(rawRecords(t, lowRiskJSON, badRouteJSON))
	out, err := RenderJSON(results)
	require.NoError(t, err)

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	require.Len(t, decoded, 2)

	assert.Equal(t, float64(1), decoded[0]["patient_id"])
	assert.Equal(t, "Low Risk", decoded[0]["risk_level"])
	assert.NotEmpty(t, decoded[0]["assessment_id"])

	assert.Equal(t, float64(2), decoded[1]["patient_id"])
	assert.NotEmpty(t, decoded[1]["error"])
	assert.NotContains(t, decoded[1], "risk_level")
}

func TestRenderJSONKeepsZeroDuration(t *testing.T) {
	justIntubated := strings.Replace(lowRiskJSON, `"ventilation_duration_h": 48`, `"ventilation_duration_h": 0`, 1)

	results := Run(rawRecords(t, justIntubated))
	out, err := RenderJSON(results)
	require.NoError(t, err)

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	require.Len(t, decoded, 1)

	// A zero duration is a real value and must survive marshalling.
	duration, ok := decoded[0]["ventilation_duration_h"]
	require.True(t, ok)
	assert.Equal(t, float64(0), duration)
	assert.Equal(t, float64(52), decoded[0]["age"])
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"table", FormatTable, false},
		{"json", FormatJSON, false},
		{"csv", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFormat(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		assert.Equal(t, tt.want, got)
	}
}

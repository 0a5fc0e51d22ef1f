package batch

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/abhisek/vaprisk/internal/patient"
)

// Record is one patient entry in a batch input file. Field names follow the
// batch exchange format; enums stay raw strings so the engines can reject
// unknown values per record instead of failing the whole file.
type Record struct {
	Age                 int    `json:"age"`
	IntubationRoute     string `json:"intubation_route"`
	VentilationDuration int    `json:"ventilation_duration_h"`
	SubglotticDrainage  bool   `json:"subglottic_drainage"`
	BedHeadElevation    int    `json:"bed_head_elevation_deg"`
	ClosedSuctionSystem bool   `json:"closed_suction_system"`
	OralAntiseptic      string `json:"oral_antiseptic"`
	Fever               bool   `json:"fever"`
	Leukocytosis        bool   `json:"leukocytosis"`
	ChestRadiograph     bool   `json:"chest_radiograph"`
}

// Parameters converts the record into engine input, rejecting out-of-enum
// categorical values with *patient.InvalidParameterError.
func (r Record) Parameters() (patient.Parameters, error) {
	route, err := patient.ParseIntubationRoute(r.IntubationRoute)
	if err != nil {
		return patient.Parameters{}, err
	}
	antiseptic, err := patient.ParseOralAntiseptic(r.OralAntiseptic)
	if err != nil {
		return patient.Parameters{}, err
	}
	return patient.Parameters{
		Age:                       r.Age,
		IntubationRoute:           route,
		VentilationDurationHours:  r.VentilationDuration,
		SubglotticDrainageUsed:    r.SubglotticDrainage,
		BedHeadElevationDegrees:   r.BedHeadElevation,
		ClosedSuctionSystemUsed:   r.ClosedSuctionSystem,
		OralAntiseptic:            antiseptic,
		HasFever:                  r.Fever,
		HasLeukocytosis:           r.Leukocytosis,
		ChestRadiographInfiltrate: r.ChestRadiograph,
	}, nil
}

// recordSchema is the JSON Schema each batch record is validated against
// before decoding. Structural only: enum membership is the engines' call.
var recordSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"age":                    map[string]any{"type": "integer", "minimum": 0},
		"intubation_route":       map[string]any{"type": "string"},
		"ventilation_duration_h": map[string]any{"type": "integer", "minimum": 0},
		"subglottic_drainage":    map[string]any{"type": "boolean"},
		"bed_head_elevation_deg": map[string]any{"type": "integer"},
		"closed_suction_system":  map[string]any{"type": "boolean"},
		"oral_antiseptic":        map[string]any{"type": "string"},
		"fever":                  map[string]any{"type": "boolean"},
		"leukocytosis":           map[string]any{"type": "boolean"},
		"chest_radiograph":       map[string]any{"type": "boolean"},
	},
	"required": []any{
		"age", "intubation_route", "ventilation_duration_h", "subglottic_drainage",
		"bed_head_elevation_deg", "closed_suction_system", "oral_antiseptic",
		"fever", "leukocytosis", "chest_radiograph",
	},
	"additionalProperties": false,
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// compiledRecordSchema compiles the record schema once and caches it.
func compiledRecordSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value (any), not raw
		// bytes. Marshal then unmarshal to get a clean any representation.
		defBytes, err := json.Marshal(recordSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://patient-record.json"
		if err := c.AddResource(schemaURL, defParsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(schemaURL)
	})
	return compiledSchema, compileErr
}

// validateRecord checks one raw record against the schema.
func validateRecord(raw json.RawMessage) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	schema, err := compiledRecordSchema()
	if err != nil {
		return fmt.Errorf("compile record schema: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

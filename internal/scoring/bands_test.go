package scoring

import (
	"testing"

	"github.com/abhisek/vaprisk/internal/assessment"
)

func TestClassifyBoundaries(t *testing.T) {
	tests := []struct {
		score int
		want  assessment.RiskLevel
	}{
		{0, assessment.LevelLow},
		{4, assessment.LevelLow},
		{5, assessment.LevelModerate},
		{8, assessment.LevelModerate},
		{12, assessment.LevelModerate},
		{13, assessment.LevelHigh},
		{18, assessment.LevelHigh},
		{20, assessment.LevelHigh},
	}

	for _, tt := range tests {
		got := Classify(tt.score)
		if got.Level != tt.want {
			t.Errorf("Classify(%d).Level = %q, want %q", tt.score, got.Level, tt.want)
		}
	}
}

func TestBandsCarryStaticContent(t *testing.T) {
	low := Classify(0)
	if low.CaseControlRatio != "Cases (8, 3.2%); Controls (242, 96.8%)" {
		t.Errorf("low band ratio = %q", low.CaseControlRatio)
	}
	if len(low.Recommendations) != 3 {
		t.Errorf("low band has %d recommendations, want 3", len(low.Recommendations))
	}

	moderate := Classify(8)
	if len(moderate.Recommendations) != 4 {
		t.Errorf("moderate band has %d recommendations, want 4", len(moderate.Recommendations))
	}

	high := Classify(15)
	if high.CaseControlRatio != "Cases (156, 78.4%); Controls (43, 21.6%)" {
		t.Errorf("high band ratio = %q", high.CaseControlRatio)
	}
	if len(high.Recommendations) != 5 {
		t.Errorf("high band has %d recommendations, want 5", len(high.Recommendations))
	}
}

func TestAssessShapesResult(t *testing.T) {
	a, err := Assess(highRiskPatient())
	if err != nil {
		t.Fatalf("Assess() error = %v", err)
	}

	if a.Engine != assessment.EngineAdditive {
		t.Errorf("Engine = %q", a.Engine)
	}
	if a.Level != assessment.LevelHigh {
		t.Errorf("Level = %q, want high", a.Level)
	}
	if a.Score == nil || *a.Score != 18 {
		t.Errorf("Score = %v, want 18", a.Score)
	}
	if a.Explanation == "" || a.CaseControlRatio == "" || len(a.Recommendations) == 0 {
		t.Error("assessment is missing static band content")
	}
}

func TestAssessPropagatesInvalidParameter(t *testing.T) {
	p := highRiskPatient()
	p.IntubationRoute = "nasogastric"

	if _, err := Assess(p); err == nil {
		t.Fatal("expected error for invalid intubation route")
	}
}

package wizard

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/vaprisk/internal/assessment"
	"github.com/abhisek/vaprisk/internal/router"
	"github.com/abhisek/vaprisk/internal/screens/report"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

// typeNumber types the digits and submits, returning the command from enter.
func typeNumber(w *WizardScreen, digits string) tea.Cmd {
	for _, d := range digits {
		w.Update(keyPress(d))
	}
	_, cmd := w.Update(specialKey(tea.KeyEnter))
	return cmd
}

// pickOption moves the cursor down n times and submits.
func pickOption(w *WizardScreen, n int) tea.Cmd {
	for i := 0; i < n; i++ {
		w.Update(specialKey(tea.KeyDown))
	}
	_, cmd := w.Update(specialKey(tea.KeyEnter))
	return cmd
}

func TestGuidelineWizard_AgeGateThenRootQuestion(t *testing.T) {
	w := New(ModeGuideline)

	if w.current.id != "age" {
		t.Fatalf("first question = %q, want age", w.current.id)
	}

	// Under-age input keeps the wizard on the same question with a message.
	typeNumber(w, "17")
	if w.current.id != "age" {
		t.Fatalf("after rejected age, question = %q, want age", w.current.id)
	}
	if view := w.View(80, 24); !strings.Contains(view, "aged ≥18") {
		t.Error("expected the eligibility message after an under-age answer")
	}

	typeNumber(w, "70")
	if w.current.prompt != "Does chest imaging show new or persistent infiltrates?" {
		t.Errorf("after age, prompt = %q, want the chest imaging gate", w.current.prompt)
	}
}

func TestGuidelineWizard_NoInfiltratesFinishes(t *testing.T) {
	w := New(ModeGuideline)
	typeNumber(w, "70")

	// Answer "No" to the chest imaging gate; the tree is decided.
	cmd := pickOption(w, 1)
	if cmd == nil {
		t.Fatal("expected a report command once the tree path is complete")
	}

	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", cmd())
	}
	if _, ok := msg.Screen.(*report.ReportScreen); !ok {
		t.Fatalf("expected a report screen, got %T", msg.Screen)
	}
}

func TestGuidelineWizard_SymptomaticPathAsksBothLabGates(t *testing.T) {
	w := New(ModeGuideline)
	typeNumber(w, "70")

	pickOption(w, 0) // infiltrates: yes
	pickOption(w, 0) // ventilation >=72h: yes

	if !strings.Contains(w.current.prompt, "fever") {
		t.Fatalf("prompt = %q, want the fever gate", w.current.prompt)
	}
	cmd := pickOption(w, 0) // fever: yes
	if cmd != nil {
		t.Fatal("fever alone must not finish; WBC is asked regardless")
	}
	if !strings.Contains(w.current.prompt, "white blood cell") {
		t.Fatalf("prompt = %q, want the WBC gate", w.current.prompt)
	}

	cmd = pickOption(w, 0) // WBC abnormal: yes
	if cmd == nil {
		t.Fatal("expected a report command after the diagnostic terminal")
	}
}

func TestAdditiveWizard_FullRunScoresHighRisk(t *testing.T) {
	w := New(ModeAdditive)

	typeNumber(w, "68") // age
	pickOption(w, 1)    // route: nasotracheal
	typeNumber(w, "96") // ventilation duration
	pickOption(w, 1)    // subglottic drainage: no
	typeNumber(w, "25") // bed head elevation
	pickOption(w, 1)    // closed suction: no
	pickOption(w, 2)    // antiseptic: none
	pickOption(w, 0)    // fever: yes
	pickOption(w, 0)    // leukocytosis: yes

	// Last question: chest radiograph yes.
	cmd := pickOption(w, 0)
	if cmd == nil {
		t.Fatal("expected a report command after the last question")
	}
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", cmd())
	}
	_, ok = msg.Screen.(*report.ReportScreen)
	if !ok {
		t.Fatalf("expected a report screen, got %T", msg.Screen)
	}

	view := msg.Screen.View(80, 30)
	if !strings.Contains(view, assessment.LevelHigh.DisplayName()) {
		t.Error("expected a high risk report for the worst-case answers")
	}
	if !strings.Contains(view, "18/20") {
		t.Error("expected the score marker 18/20 on the chart")
	}
}

func TestAdditiveWizard_NonNumericInputReprompts(t *testing.T) {
	w := New(ModeAdditive)

	// Enter with nothing typed: Atoi fails and the question stays.
	cmd := typeNumber(w, "")
	if cmd != nil {
		t.Fatal("empty input must not advance")
	}
	if w.current.id != "age" {
		t.Fatalf("question = %q, want age", w.current.id)
	}
	if view := w.View(80, 24); !strings.Contains(view, "numeric value") {
		t.Error("expected the numeric re-prompt message")
	}
}

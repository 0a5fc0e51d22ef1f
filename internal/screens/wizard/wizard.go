package wizard

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/vaprisk/internal/assessment"
	"github.com/abhisek/vaprisk/internal/guideline"
	"github.com/abhisek/vaprisk/internal/router"
	"github.com/abhisek/vaprisk/internal/screen"
	"github.com/abhisek/vaprisk/internal/screens/report"
	"github.com/abhisek/vaprisk/internal/scoring"
	"github.com/abhisek/vaprisk/internal/ui/components"
	"github.com/abhisek/vaprisk/internal/ui/layout"
	"github.com/abhisek/vaprisk/internal/ui/theme"
)

// Mode selects which rule engine the wizard feeds.
type Mode int

const (
	// ModeAdditive asks the fixed ten questions of the weighted scorer.
	ModeAdditive Mode = iota
	// ModeGuideline asks only the questions on the active tree path.
	ModeGuideline
)

// WizardScreen elicits patient parameters one question at a time and hands
// the completed record to the selected engine.
type WizardScreen struct {
	mode Mode

	// additive state
	questions []question
	step      int
	answers   map[string]int

	// guideline state
	walker *guideline.Walker
	gate   guideline.Gate

	current question
	input   components.TextInput
	choice  components.Choice

	age      int
	errText  string
	finished bool
}

var _ screen.Screen = (*WizardScreen)(nil)
var _ screen.KeyHintProvider = (*WizardScreen)(nil)

// New creates a wizard for the given mode.
func New(mode Mode) *WizardScreen {
	w := &WizardScreen{
		mode:    mode,
		answers: make(map[string]int),
	}

	switch mode {
	case ModeAdditive:
		w.questions = additiveQuestions()
		w.setQuestion(w.questions[0])
	case ModeGuideline:
		w.walker = guideline.NewWalker()
		// Eligibility first, tree gates after.
		w.setQuestion(ageQuestion())
	}
	return w
}

func (w *WizardScreen) Title() string {
	switch w.mode {
	case ModeGuideline:
		return "Guideline Assessment"
	default:
		return "Scored Assessment"
	}
}

func (w *WizardScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{{Key: "Enter", Description: "Answer"}}
	if w.current.kind != kindNumeric {
		hints = append(hints, layout.KeyHint{Key: "↑↓", Description: "Select"})
	}
	hints = append(hints,
		layout.KeyHint{Key: "Esc", Description: "Back"},
		layout.KeyHint{Key: "Ctrl+C", Description: "Quit"},
	)
	return hints
}

func (w *WizardScreen) Init() tea.Cmd {
	if w.current.kind == kindNumeric {
		return w.input.Init()
	}
	return nil
}

func (w *WizardScreen) setQuestion(q question) {
	w.current = q
	w.errText = ""
	switch q.kind {
	case kindNumeric:
		w.input = components.NewTextInput(q.placeholder, true, 4)
	case kindChoice:
		w.choice = components.NewChoice(q.prompt, q.options)
	case kindYesNo:
		w.choice = components.NewYesNo(q.prompt)
	}
}

// setGate swaps the current question to the given tree gate.
func (w *WizardScreen) setGate(g guideline.Gate) {
	w.gate = g
	w.setQuestion(question{id: string(g), prompt: g.Question(), kind: kindYesNo})
}

func (w *WizardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if w.finished {
		return w, nil
	}

	switch w.current.kind {
	case kindNumeric:
		if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
			return w, w.submitNumeric()
		}
		var cmd tea.Cmd
		w.input, cmd = w.input.Update(msg)
		return w, cmd

	default:
		var cmd tea.Cmd
		w.choice, cmd = w.choice.Update(msg)
		if w.choice.Submitted {
			return w, w.submitChoice()
		}
		return w, cmd
	}
}

func (w *WizardScreen) submitNumeric() tea.Cmd {
	v, err := w.input.NumericValue()
	if err != nil {
		w.input.Reject("Invalid input. Please enter a numeric value.")
		return nil
	}
	if w.current.validate != nil {
		if reason := w.current.validate(v); reason != "" {
			w.input.Reject(reason)
			return nil
		}
	}
	w.input.ClearError()

	if w.current.id == "age" {
		w.age = v
	}
	w.answers[w.current.id] = v
	return w.advance()
}

func (w *WizardScreen) submitChoice() tea.Cmd {
	w.answers[w.current.id] = w.choice.ChosenIndex

	if w.mode == ModeGuideline && w.gate != "" {
		w.walker.Answer(w.gate, w.choice.Yes())
	}
	return w.advance()
}

// advance moves to the next question or finishes with an assessment.
func (w *WizardScreen) advance() tea.Cmd {
	switch w.mode {
	case ModeAdditive:
		w.step++
		if w.step < len(w.questions) {
			w.setQuestion(w.questions[w.step])
			return w.Init()
		}
		return w.finishAdditive()

	default:
		w.step++
		gate, _, ok := w.walker.Next()
		if ok {
			w.setGate(gate)
			return w.Init()
		}
		return w.finishGuideline()
	}
}

func (w *WizardScreen) finishAdditive() tea.Cmd {
	w.finished = true

	params, err := buildParameters(w.answers)
	if err != nil {
		w.errText = err.Error()
		return nil
	}
	a, err := scoring.Assess(params)
	if err != nil {
		w.errText = err.Error()
		return nil
	}

	summary := []string{
		fmt.Sprintf("Age: %d years", params.Age),
		fmt.Sprintf("Intubation Route: %s", params.IntubationRoute.DisplayName()),
		fmt.Sprintf("Ventilation Duration: %dh", params.VentilationDurationHours),
	}
	return pushReport(a, summary)
}

func (w *WizardScreen) finishGuideline() tea.Cmd {
	w.finished = true

	f := w.walker.Findings()
	a := guideline.Assess(f)
	summary := []string{
		fmt.Sprintf("Age: %d years", w.age),
		fmt.Sprintf("Ventilation ≥72h: %s", yesNo(f.VentilationGe72)),
		fmt.Sprintf("Chest Imaging Infiltrates: %s", yesNo(f.ChestInfiltrates)),
	}
	return pushReport(a, summary)
}

func pushReport(a assessment.Assessment, summary []string) tea.Cmd {
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: report.New(a, summary)}
	}
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

func (w *WizardScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString("\n")

	// Progress over the fixed sequence; the tree path length varies, so
	// guideline mode just counts answered questions.
	if w.mode == ModeAdditive {
		percent := float64(w.step) / float64(len(w.questions))
		bar := components.NewProgressBar(
			fmt.Sprintf("Question %d of %d", min(w.step+1, len(w.questions)), len(w.questions)),
			percent, false, min(width-8, 60))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	} else {
		label := fmt.Sprintf("Question %d", w.step+1)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Subtitle.Render(label)))
	}
	b.WriteString("\n\n\n")

	switch w.current.kind {
	case kindNumeric:
		prompt := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(w.current.prompt)
		block := prompt + "\n\n" + w.input.View()
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, block))
	default:
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, w.choice.View()))
	}

	if w.errText != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Error).Render(w.errText)))
	}

	return b.String()
}

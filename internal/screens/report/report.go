package report

import (
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/vaprisk/internal/assessment"
	"github.com/abhisek/vaprisk/internal/router"
	"github.com/abhisek/vaprisk/internal/screen"
	"github.com/abhisek/vaprisk/internal/ui/components"
	"github.com/abhisek/vaprisk/internal/ui/layout"
	"github.com/abhisek/vaprisk/internal/ui/theme"
)

// ReportScreen displays one completed risk assessment.
type ReportScreen struct {
	result  assessment.Assessment
	summary []string
}

var _ screen.Screen = (*ReportScreen)(nil)
var _ screen.KeyHintProvider = (*ReportScreen)(nil)

// New creates a ReportScreen for the given assessment. The summary lines
// recap the patient basics gathered by the wizard.
func New(result assessment.Assessment, summary []string) *ReportScreen {
	return &ReportScreen{result: result, summary: summary}
}

func (r *ReportScreen) Init() tea.Cmd {
	return nil
}

func (r *ReportScreen) Title() string {
	return "Assessment Report"
}

func (r *ReportScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "New assessment"},
		{Key: "Esc", Description: "Menu"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (r *ReportScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter":
			// Back to the strategy menu for the next patient.
			return r, func() tea.Msg { return router.PopToRootMsg{} }
		}
	}
	return r, nil
}

// levelColor maps risk levels onto the alert palette.
func levelColor(l assessment.RiskLevel) color.Color {
	switch l {
	case assessment.LevelHigh, assessment.LevelModerateHigh:
		return theme.RiskHigh
	case assessment.LevelModerate:
		return theme.RiskModerate
	default:
		return theme.RiskLow
	}
}

func (r *ReportScreen) View(width, height int) string {
	a := r.result
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Title.Render("VAP Risk Assessment Report")))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Subtitle.Render(a.Engine.DisplayName())))
	b.WriteString("\n\n")

	if len(r.summary) > 0 {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(strings.Join(r.summary, "  |  "))))
		b.WriteString("\n\n")
	}

	level := lipgloss.NewStyle().
		Foreground(levelColor(a.Level)).
		Bold(true).
		Render(a.Level.DisplayName())
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, "Risk Level: "+level))
	b.WriteString("\n\n")

	if a.Score != nil {
		chart := components.NewScoreChart(*a.Score, min(width-16, 60))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, chart.View()))
		b.WriteString("\n\n")
	}

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	body := lipgloss.NewStyle().Foreground(theme.Text).Width(min(width-16, 70))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		body.Render("Case/Control Ratio: "+a.CaseControlRatio)))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		body.Render("Rationale: "+a.Explanation)))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Clinical Recommendations")))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	for i, rec := range a.Recommendations {
		line := fmt.Sprintf("%d. %s", i+1, rec)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, body.Render(line)))
		b.WriteString("\n")
	}

	return b.String()
}

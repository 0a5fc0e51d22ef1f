package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/vaprisk/internal/router"
	"github.com/abhisek/vaprisk/internal/screen"
	"github.com/abhisek/vaprisk/internal/screens/wizard"
	"github.com/abhisek/vaprisk/internal/ui/components"
	"github.com/abhisek/vaprisk/internal/ui/theme"
)

// HomeScreen lets the clinician pick an assessment strategy.
type HomeScreen struct {
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen. The configured default engine decides which
// strategy the cursor starts on.
func New(defaultEngine string) *HomeScreen {
	items := []components.MenuItem{
		{Label: "SCORED ASSESSMENT  (weighted risk score, 0-20)", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: wizard.New(wizard.ModeAdditive)}
			}
		}},
		{Label: "GUIDELINE ASSESSMENT  (layered yes/no decision tree)", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: wizard.New(wizard.ModeGuideline)}
			}
		}},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	menu := components.NewMenu(items)
	if defaultEngine == "guideline" {
		menu.Selected = 1
	}
	return &HomeScreen{menu: menu}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Select Assessment Strategy"
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Title.Render("Ventilator-Associated Pneumonia Risk Assessment")))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Subtitle.Render("Evidence basis: Journal of Critical Care 2008 clinical guidelines")))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Hint.Render("For patients aged ≥18 years on mechanical ventilation")))
	b.WriteString("\n\n\n")

	menu := h.menu.View()
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, menu))

	return b.String()
}

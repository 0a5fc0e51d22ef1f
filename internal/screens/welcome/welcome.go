package welcome

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/vaprisk/internal/router"
	"github.com/abhisek/vaprisk/internal/screen"
	"github.com/abhisek/vaprisk/internal/ui/theme"
)

const bannerArt = `  ╭─────────────╮
  │   ┌─────┐   │
  │   │ ♥ ♥ │   │
  │   │ ─┬─ │   │
  │   ├─────┤   │
  │   │ VAP │   │
  │   └─────┘   │
  ╰─────────────╯`

// WelcomeScreen shows the tool banner before transitioning to the home screen.
type WelcomeScreen struct {
	homeFactory  func() screen.Screen
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that will transition to the screen produced by homeFactory.
func New(homeFactory func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{homeFactory: homeFactory}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return nil
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if _, ok := msg.(tea.KeyPressMsg); ok {
		return w, w.transition()
	}
	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	homeScreen := w.homeFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: homeScreen}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	banner := lipgloss.NewStyle().Foreground(theme.Primary).Render(bannerArt)

	lines := []string{
		banner,
		"",
		theme.Title.Render("Ventilator-Associated Pneumonia Risk Assessment Tool"),
		theme.Subtitle.Render("Based on evidence from 'Journal of Critical Care' 2008 clinical guidelines"),
		"",
		theme.Hint.Render("Eligibility: patients aged ≥18 years currently on mechanical ventilation"),
		"",
		theme.Hint.Render("Press any key to begin"),
	}

	content := strings.Join(lines, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/vaprisk/internal/ui/theme"
)

// ScoreChart renders the 0-20 risk score axis with its three bands and a
// marker at the patient's score.
type ScoreChart struct {
	Score int
	Width int
}

// NewScoreChart creates a chart for the given score.
func NewScoreChart(score, width int) ScoreChart {
	return ScoreChart{Score: score, Width: width}
}

const chartMaxScore = 20

// View renders three lines: marker, colored band bar, band labels.
func (c ScoreChart) View() string {
	barWidth := c.Width
	if barWidth < 42 {
		barWidth = 42
	}

	// cell index for a given score on the axis
	pos := func(score int) int {
		p := score * (barWidth - 1) / chartMaxScore
		if p < 0 {
			p = 0
		}
		if p > barWidth-1 {
			p = barWidth - 1
		}
		return p
	}

	score := c.Score
	if score < 0 {
		score = 0
	}
	if score > chartMaxScore {
		score = chartMaxScore
	}

	// Marker line.
	markerPos := pos(score)
	markerText := fmt.Sprintf("▼ %d/20", score)
	if markerPos+len(markerText) > barWidth {
		markerPos = barWidth - lipgloss.Width(markerText)
	}
	marker := strings.Repeat(" ", markerPos) +
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(markerText)

	// Band bar: low [0,5), moderate [5,12], high (12,20].
	lowEnd := pos(5)
	moderateEnd := pos(13)
	lowStr := lipgloss.NewStyle().Background(theme.RiskLow).Render(strings.Repeat(" ", lowEnd))
	moderateStr := lipgloss.NewStyle().Background(theme.RiskModerate).Render(strings.Repeat(" ", moderateEnd-lowEnd))
	highStr := lipgloss.NewStyle().Background(theme.RiskHigh).Render(strings.Repeat(" ", barWidth-moderateEnd))
	bar := lowStr + moderateStr + highStr

	// Label line, one label per band.
	lowLabel := "Low (0-4)"
	moderateLabel := "Moderate (5-12)"
	highLabel := "High (13-20)"

	labels := make([]rune, barWidth)
	for i := range labels {
		labels[i] = ' '
	}
	placeLabel := func(start int, text string) {
		for i, r := range text {
			if start+i >= 0 && start+i < barWidth {
				labels[start+i] = r
			}
		}
	}
	placeLabel(0, lowLabel)
	placeLabel(lowEnd+(moderateEnd-lowEnd-len(moderateLabel))/2, moderateLabel)
	placeLabel(barWidth-len(highLabel), highLabel)

	labelLine := lipgloss.NewStyle().Foreground(theme.TextDim).Render(string(labels))

	return marker + "\n" + bar + "\n" + labelLine
}

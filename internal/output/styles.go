package output

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	greenStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	yellowStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	redStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	boldStyle   = lipgloss.NewStyle().Bold(true)
	bannerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	boxStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
)

// scoreStyle colours a score by its classification band.
func scoreStyle(score float64) lipgloss.Style {
	switch {
	case score >= 80:
		return greenStyle
	case score >= 50:
		return yellowStyle
	default:
		return redStyle
	}
}

// ScoreLabel renders "39.3/100", coloured by band when colorize is set.
func ScoreLabel(score float64, colorize bool) string {
	label := fmt.Sprintf("%.1f/100", score)
	if !colorize {
		return label
	}
	return scoreStyle(score).Render(label)
}

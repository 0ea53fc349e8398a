package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/AndreySavastyuk/MES-v1.0-sub001/internal/models"
)

var (
	colorWhite  = lipgloss.AdaptiveColor{Light: "0", Dark: "15"}
	colorDim    = lipgloss.AdaptiveColor{Light: "242", Dark: "240"}
	colorGreen  = lipgloss.AdaptiveColor{Light: "28", Dark: "40"}
	colorRed    = lipgloss.AdaptiveColor{Light: "160", Dark: "196"}
	colorYellow = lipgloss.AdaptiveColor{Light: "136", Dark: "220"}
	colorOrange = lipgloss.AdaptiveColor{Light: "166", Dark: "208"}
	colorCyan   = lipgloss.AdaptiveColor{Light: "30", Dark: "45"}
)

var (
	styleHeader    = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleColumn    = lipgloss.NewStyle().Bold(true).Foreground(colorDim)
	styleRow       = lipgloss.NewStyle().Foreground(colorWhite)
	styleSelected  = lipgloss.NewStyle().Bold(true).Foreground(colorWhite).Background(lipgloss.AdaptiveColor{Light: "254", Dark: "236"})
	styleStatusBar = lipgloss.NewStyle().Foreground(colorDim)
	styleErrorBar  = lipgloss.NewStyle().Bold(true).Foreground(colorRed)
	styleHistory   = lipgloss.NewStyle().Foreground(colorDim).PaddingLeft(2)
)

var statusStyles = map[models.TaskStatus]lipgloss.Style{
	models.TaskStatusDevelopment: lipgloss.NewStyle().Foreground(colorDim),
	models.TaskStatusSent:        lipgloss.NewStyle().Foreground(colorCyan),
	models.TaskStatusLoaded:      lipgloss.NewStyle().Foreground(colorCyan),
	models.TaskStatusInProgress:  lipgloss.NewStyle().Foreground(colorYellow),
	models.TaskStatusPaused:      lipgloss.NewStyle().Foreground(colorOrange),
	models.TaskStatusCompleted:   lipgloss.NewStyle().Foreground(colorGreen),
	models.TaskStatusDeleted:     lipgloss.NewStyle().Foreground(colorRed),
}

func renderStatus(s models.TaskStatus) string {
	if style, ok := statusStyles[s]; ok {
		return style.Render(string(s))
	}
	return string(s)
}

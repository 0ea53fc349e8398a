package cli

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/AndreySavastyuk/MES-v1.0-sub001/internal/models"
)

// Adaptive colors matching the board palette.
var (
	colorWhite  = lipgloss.AdaptiveColor{Light: "0", Dark: "15"}
	colorDim    = lipgloss.AdaptiveColor{Light: "242", Dark: "240"}
	colorGreen  = lipgloss.AdaptiveColor{Light: "28", Dark: "40"}
	colorRed    = lipgloss.AdaptiveColor{Light: "160", Dark: "196"}
	colorYellow = lipgloss.AdaptiveColor{Light: "136", Dark: "220"}
	colorOrange = lipgloss.AdaptiveColor{Light: "166", Dark: "208"}
	colorCyan   = lipgloss.AdaptiveColor{Light: "30", Dark: "45"}
)

// Semantic styles for CLI output.
var (
	styleLabel   = lipgloss.NewStyle().Foreground(colorDim)
	styleValue   = lipgloss.NewStyle().Foreground(colorWhite)
	styleSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleWarning = lipgloss.NewStyle().Bold(true).Foreground(colorYellow)
	styleError   = lipgloss.NewStyle().Bold(true).Foreground(colorRed)
	styleHint    = lipgloss.NewStyle().Foreground(colorDim)
)

// Task status badge styles.
var statusBadges = map[models.TaskStatus]lipgloss.Style{
	models.TaskStatusDevelopment: lipgloss.NewStyle().Foreground(colorDim),
	models.TaskStatusSent:        lipgloss.NewStyle().Foreground(colorCyan),
	models.TaskStatusLoaded:      lipgloss.NewStyle().Foreground(colorCyan),
	models.TaskStatusInProgress:  lipgloss.NewStyle().Foreground(colorYellow),
	models.TaskStatusPaused:      lipgloss.NewStyle().Foreground(colorOrange),
	models.TaskStatusCompleted:   lipgloss.NewStyle().Foreground(colorGreen),
	models.TaskStatusDeleted:     lipgloss.NewStyle().Foreground(colorRed),
}

// renderStatus renders a status with its badge style.
func renderStatus(s models.TaskStatus) string {
	if style, ok := statusBadges[s]; ok {
		return style.Render(string(s))
	}
	return string(s)
}

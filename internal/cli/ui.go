package cli

import "github.com/charmbracelet/lipgloss"

// Color palette shared by all commands.
var (
	colorCyan  = lipgloss.Color("36")  // Teal - primary actions
	colorWhite = lipgloss.Color("255") // Bright white - values
	colorDim   = lipgloss.Color("240") // Dim gray - muted text
)

var (
	// styleTitle for main headings.
	styleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// styleDim for secondary/muted text.
	styleDim = lipgloss.NewStyle().Foreground(colorDim)

	// styleValue for data values.
	styleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// styleIconSpinner for the progress spinner frames.
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)
)

package style

import (
	"github.com/BenjaminKobjolke/FMANGoConemu/pkg/resolver"
	"github.com/charmbracelet/lipgloss"
)

var (
	LabelStyle = lipgloss.NewStyle().Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	PathStyle = lipgloss.NewStyle().
			Foreground(PathColor)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor)

	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor)

	InfoStyle = lipgloss.NewStyle().
			Foreground(InfoColor)
)

// StateStyle colours a resolution state by how well it went: a drive letter
// is success, the raw UNC path a warning, the batch fallback an error
func StateStyle(state resolver.State) lipgloss.Style {
	switch state {
	case resolver.StateMappingFound, resolver.StateMappingCreated:
		return SuccessStyle
	case resolver.StateNoFreeLetters, resolver.StateCreateFailed:
		return WarningStyle
	case resolver.StateParseFailed:
		return ErrorStyle
	default:
		return InfoStyle
	}
}

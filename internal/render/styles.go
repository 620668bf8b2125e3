// file: internal/render/styles.go
// version: 1.0.0
// guid: beab4520-f641-4281-8f9a-32873eeb052e

package render

import "github.com/charmbracelet/lipgloss"

// Palette colours use the 256-colour table so they degrade on basic terminals.
var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	courseStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("117"))
	borderStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
	warnStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	barStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("117"))

	strongStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	partialStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	weakStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
	presentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
)

// ratioStyle picks a colour for a match ratio in [0, 1].
func ratioStyle(r float64) lipgloss.Style {
	switch {
	case r >= 0.75:
		return strongStyle
	case r >= 0.4:
		return partialStyle
	case r > 0:
		return weakStyle
	}
	return dimStyle
}

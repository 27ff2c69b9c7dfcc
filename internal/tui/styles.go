package tui

import "github.com/charmbracelet/lipgloss"

var (
	activeTabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Background(lipgloss.Color("236")).
			Padding(0, 1).
			Bold(true)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240")).
				Padding(0, 1)

	docStyle = lipgloss.NewStyle().Padding(1, 2)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	chartTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	statLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	colorMuted  = lipgloss.Color("240")
	colorSubtle = lipgloss.Color("245")

	// seriesPalette colors chart datasets; assignment cycles when a chart
	// has more series than the palette.
	seriesPalette = []lipgloss.Color{
		lipgloss.Color("42"),  // green
		lipgloss.Color("39"),  // blue
		lipgloss.Color("214"), // orange
		lipgloss.Color("205"), // pink
		lipgloss.Color("99"),  // purple
		lipgloss.Color("226"), // yellow
	}
)

func seriesStyle(i int) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(seriesPalette[i%len(seriesPalette)])
}

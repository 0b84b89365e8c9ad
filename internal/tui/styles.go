package tui

import "github.com/charmbracelet/lipgloss"

// ─── Color Palette (Catppuccin Mocha, Spotify-green accent) ─────────────────

var (
	// Base tones
	colorMantle   = lipgloss.Color("#181825") // deeper bg
	colorSurface0 = lipgloss.Color("#313244") // card bg
	colorSurface1 = lipgloss.Color("#45475A") // lighter surface
	colorText     = lipgloss.Color("#CDD6F4") // primary text
	colorSubtext  = lipgloss.Color("#A6ADC8") // secondary text
	colorDim      = lipgloss.Color("#585B70") // muted, borders

	// Accents
	colorAccent   = lipgloss.Color("#A6E3A1") // green – primary accent
	colorLavender = lipgloss.Color("#B4BEFE") // titles
	colorBlue     = lipgloss.Color("#89B4FA") // section headers
	colorYellow   = lipgloss.Color("#F9E2AF") // warnings
	colorRed      = lipgloss.Color("#F38BA8") // errors
	colorTeal     = lipgloss.Color("#94E2D5") // secondary highlight
	colorPeach    = lipgloss.Color("#FAB387") // tertiary highlight
)

// greenScale orders green shades dark to bright for intensity mapping.
var greenScale = []lipgloss.Color{
	lipgloss.Color("#2E4B2E"),
	lipgloss.Color("#3F6E3F"),
	lipgloss.Color("#529652"),
	lipgloss.Color("#74C77C"),
	lipgloss.Color("#A6E3A1"),
}

// intensityColor maps a normalized intensity in [0, 1] onto the green scale.
func intensityColor(intensity float64) lipgloss.Color {
	if intensity < 0 {
		intensity = 0
	}
	if intensity > 1 {
		intensity = 1
	}
	idx := int(intensity * float64(len(greenScale)-1))
	return greenScale[idx]
}

// ─── Reusable Styles ────────────────────────────────────────────────────────

var (
	headerBrandStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorAccent)

	sectionHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorBlue)

	labelStyle = lipgloss.NewStyle().
			Foreground(colorSubtext)

	valueStyle = lipgloss.NewStyle().
			Foreground(colorText)

	dimStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	helpKeyStyle = lipgloss.NewStyle().
			Foreground(colorTeal).
			Bold(true)

	statusOKStyle = lipgloss.NewStyle().
			Foreground(colorAccent)

	statusWarnStyle = lipgloss.NewStyle().
			Foreground(colorYellow)

	statusErrStyle = lipgloss.NewStyle().
			Foreground(colorRed)

	metricValueStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorText)

	metricLabelStyle = lipgloss.NewStyle().
				Foreground(colorSubtext)

	metricCardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSurface1).
			Padding(0, 2)

	tabActiveStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorMantle).
			Background(colorAccent).
			Padding(0, 1)

	tabInactiveStyle = lipgloss.NewStyle().
				Foreground(colorDim).
				Padding(0, 1)

	tableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorMantle).
				Background(colorAccent)

	tableRowStyle = lipgloss.NewStyle().
			Foreground(colorText)

	tableRowAltStyle = lipgloss.NewStyle().
				Foreground(colorSubtext)

	chartTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorLavender)

	rankStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	barValueStyle = lipgloss.NewStyle().
			Foreground(colorAccent)
)

package tui

import "github.com/charmbracelet/lipgloss"

// ---------------------------------------------------------------------------
// Palette
// ---------------------------------------------------------------------------

const (
	colorBrand     lipgloss.Color = "#04b5a6"
	colorWhite     lipgloss.Color = "#ffffff"
	colorPanel     lipgloss.Color = "#f4f4f4"
	colorStatement lipgloss.Color = "#e9f5f5"
	colorText      lipgloss.Color = "#333333"
	colorMuted     lipgloss.Color = "#888888"
	colorError     lipgloss.Color = "#e5484d"
)

// ---------------------------------------------------------------------------
// Styles
// ---------------------------------------------------------------------------

var (
	titleStyle = lipgloss.NewStyle().Foreground(colorBrand).Bold(true)
	userStyle  = lipgloss.NewStyle().Bold(true)

	// Primary action, rendered like a filled button
	buttonStyle = lipgloss.NewStyle().
			Foreground(colorWhite).
			Background(colorBrand).
			Bold(true).
			Padding(0, 2)

	balanceBoxStyle = lipgloss.NewStyle().
			Foreground(colorWhite).
			Background(colorBrand).
			Padding(1, 2)

	balanceValueStyle = lipgloss.NewStyle().Foreground(colorWhite).Background(colorBrand).Bold(true)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorPanel).
			Padding(0, 1)

	statementStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorStatement).
			Padding(0, 1)

	sectionTitleStyle = lipgloss.NewStyle().Foreground(colorBrand).Bold(true)
	amountStyle       = lipgloss.NewStyle().Foreground(colorBrand)
	emptyStyle        = lipgloss.NewStyle().Foreground(colorMuted).Italic(true)
	statusStyle       = lipgloss.NewStyle().Foreground(colorMuted)

	alertStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(colorError).
			Foreground(colorText).
			Padding(0, 2)

	alertTitleStyle = lipgloss.NewStyle().Foreground(colorError).Bold(true)
)

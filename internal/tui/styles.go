package tui

import "github.com/charmbracelet/lipgloss"

// The dashboard keeps the green-on-dark palette of the web profile it
// replaces: forest green for earned audits, pale green for bonus, deep green
// for given.
var (
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8890a0"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#e4e4ec")).
			Bold(true)

	normalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#c0c4d0"))

	metaStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#505868"))

	// Help bar
	helpKeyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8890a0"))

	helpLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#505868"))

	// Accent / action styles
	accentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#34d474"))

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ade80")).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#b45555"))

	flashStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#d4a844"))

	inputPromptStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#34d474")).
				Bold(true)

	inputPlaceholderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#343c4a"))

	sectionHeaderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#606878")).
				Bold(true)

	// Audit bars
	auditUpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#228B22"))

	auditBonusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8FBC8F"))

	auditDownStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#006400"))

	// Timeline badges
	doneBadgeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ade80"))

	wipBadgeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f59e0b"))

	// Chart glyphs
	chartLineStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ade80"))

	chartAxisStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#404858"))

	// Selected row background
	selectedRowBg = lipgloss.NewStyle().Background(lipgloss.Color("#1e1e2a"))
)

// statusBadge renders the timeline status marker.
func statusBadge(status string) string {
	if status == "wip" {
		return wipBadgeStyle.Render("[wip ]")
	}
	return doneBadgeStyle.Render("[done]")
}

// helpEntry renders a single "key label" pair for help bars.
func helpEntry(key, label string) string {
	return helpKeyStyle.Render(key) + " " + helpLabelStyle.Render(label)
}

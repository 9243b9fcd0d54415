package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/naveenspark/gradia/pkg/aggregate"
	"github.com/naveenspark/gradia/pkg/domain"
)

// overviewModel is the identity panel plus the audit bars.
type overviewModel struct {
	user  domain.User
	audit aggregate.AuditSummary
	total float64
	width int
	flash string
}

func newOverviewModel(dash *domain.Dashboard, width int) overviewModel {
	return overviewModel{
		user:  dash.User,
		audit: aggregate.Audit(dash.User),
		total: aggregate.CumulativeXP(dash.XP).Total,
		width: width,
	}
}

func (m overviewModel) Init() tea.Cmd { return nil }

func (m overviewModel) Update(msg tea.Msg) (overviewModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width

	case tea.KeyMsg:
		if msg.String() == "c" {
			email := m.user.Email()
			if email == "" {
				m.flash = "no email on profile"
				return m, nil
			}
			if err := clipboard.WriteAll(email); err != nil {
				m.flash = "clipboard unavailable"
			} else {
				m.flash = "email copied"
			}
		}
	}
	return m, nil
}

func (m overviewModel) View() string {
	var b strings.Builder

	b.WriteString("\n  " + sectionHeaderStyle.Render("Identity") + "\n")
	rows := []struct{ label, value string }{
		{"login", m.user.Login},
		{"name", orDash(m.user.FullName())},
		{"email", orDash(m.user.Email())},
		{"campus", orDash(m.user.Campus)},
		{"cohort", orDash(m.user.FirstLabel())},
		{"gender", orDash(m.user.Gender())},
		{"nationality", orDash(m.user.Nationality())},
	}
	for _, r := range rows {
		b.WriteString(fmt.Sprintf("  %s %s\n",
			metaStyle.Render(fmt.Sprintf("%-12s", r.label)),
			normalStyle.Render(r.value)))
	}
	if m.flash != "" {
		b.WriteString("  " + flashStyle.Render(m.flash) + "\n")
	}

	b.WriteString("\n  " + sectionHeaderStyle.Render("XP") + "\n")
	b.WriteString(fmt.Sprintf("  %s %s\n",
		metaStyle.Render(fmt.Sprintf("%-12s", "total")),
		selectedStyle.Render(formatNumber(m.total))))

	b.WriteString("\n  " + sectionHeaderStyle.Render("Audits") + "\n")
	b.WriteString(m.auditBars())
	return b.String()
}

// auditBars draws the two stacked audit bars sized against the widest figure,
// the way the chart geometry does it, scaled down to terminal cells.
func (m overviewModel) auditBars() string {
	barWidth := m.width - 30
	if barWidth < 10 {
		barWidth = 10
	}
	maxValue := math.Max(m.audit.Up+m.audit.Bonus, math.Max(m.audit.Down, 1))
	cells := func(v float64) int {
		return int(math.Round(v / maxValue * float64(barWidth)))
	}

	up := auditUpStyle.Render(strings.Repeat("█", cells(m.audit.Up)))
	bonus := auditBonusStyle.Render(strings.Repeat("█", cells(m.audit.Bonus)))
	down := auditDownStyle.Render(strings.Repeat("█", cells(m.audit.Down)))

	var b strings.Builder
	b.WriteString(fmt.Sprintf("  %s %s%s %s\n",
		metaStyle.Render(fmt.Sprintf("%-8s", "done")),
		up, bonus,
		normalStyle.Render(formatNumber(m.audit.Up+m.audit.Bonus))))
	if m.audit.Bonus > 0 {
		b.WriteString(fmt.Sprintf("  %s %s\n",
			metaStyle.Render(fmt.Sprintf("%-8s", "")),
			dimStyle.Render(fmt.Sprintf("of which bonus %s", formatNumber(m.audit.Bonus)))))
	}
	b.WriteString(fmt.Sprintf("  %s %s %s\n",
		metaStyle.Render(fmt.Sprintf("%-8s", "received")),
		down,
		normalStyle.Render(formatNumber(m.audit.Down))))
	b.WriteString(fmt.Sprintf("  %s %s\n",
		metaStyle.Render(fmt.Sprintf("%-8s", "ratio")),
		selectedStyle.Render(fmt.Sprintf("%.3f", m.audit.Ratio))))
	return b.String()
}

package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/naveenspark/gradia/pkg/aggregate"
	"github.com/naveenspark/gradia/pkg/chart"
	"github.com/naveenspark/gradia/pkg/domain"
)

// skillsModel shows the top skills as horizontal bars. The radar form of the
// same data belongs to the SVG export; in cells, bars read better.
type skillsModel struct {
	totals []aggregate.SkillTotal
	width  int
}

func newSkillsModel(dash *domain.Dashboard, width int) skillsModel {
	return skillsModel{
		totals: aggregate.SkillTotals(dash.Skills),
		width:  width,
	}
}

func (m skillsModel) Init() tea.Cmd { return nil }

func (m skillsModel) Update(msg tea.Msg) (skillsModel, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = msg.Width
	}
	return m, nil
}

func (m skillsModel) View() string {
	var b strings.Builder
	b.WriteString("\n  " + sectionHeaderStyle.Render("Best skills") + "\n")

	// Same threshold the radar uses: fewer than three skills make no shape.
	if chart.SkillRadar(m.totals, 100, 100, 40) == nil {
		b.WriteString("  " + dimStyle.Render("not enough skill data yet") + "\n")
		return b.String()
	}

	barWidth := m.width - 32
	if barWidth < 10 {
		barWidth = 10
	}
	maxValue := m.totals[0].Value
	for _, t := range m.totals[1:] {
		if t.Value > maxValue {
			maxValue = t.Value
		}
	}

	for _, t := range m.totals {
		cells := int(t.Value / maxValue * float64(barWidth))
		if cells < 1 {
			cells = 1
		}
		b.WriteString(fmt.Sprintf("  %s %s %s\n",
			normalStyle.Render(fmt.Sprintf("%-16s", truncStr(t.Name, 16))),
			chartLineStyle.Render(strings.Repeat("█", cells)),
			dimStyle.Render(fmt.Sprintf("%.0f", t.Value))))
	}
	return b.String()
}

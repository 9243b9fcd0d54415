package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/naveenspark/gradia/pkg/aggregate"
	"github.com/naveenspark/gradia/pkg/chart"
	"github.com/naveenspark/gradia/pkg/domain"
)

// xpChartRows is the height of the terminal sparkline in cells.
const xpChartRows = 8

// xpModel is the cumulative XP view: a terminal rendering of the progress
// curve plus the transaction table, newest first, with the TOTAL row pinned
// under the header.
type xpModel struct {
	series aggregate.Series
	rows   []chart.TableRow
	total  chart.TableRow
	offset int
	width  int
	height int
}

func newXPModel(dash *domain.Dashboard, width, height int) xpModel {
	series := aggregate.CumulativeXP(dash.XP)
	return xpModel{
		series: series,
		rows:   chart.XPTable(dash.XP),
		total:  chart.TotalRow(series.Total),
		width:  width,
		height: height,
	}
}

func (m xpModel) Init() tea.Cmd { return nil }

func (m xpModel) Update(msg tea.Msg) (xpModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "j", "down":
			if m.offset < len(m.rows)-1 {
				m.offset++
			}
		case "k", "up":
			if m.offset > 0 {
				m.offset--
			}
		case "g", "home":
			m.offset = 0
		}
	}
	return m, nil
}

func (m xpModel) View() string {
	var b strings.Builder

	b.WriteString("\n  " + sectionHeaderStyle.Render("Cumulative XP") + "\n")
	if m.series.Empty() {
		b.WriteString("  " + dimStyle.Render("no XP transactions yet") + "\n")
		return b.String()
	}
	b.WriteString(m.sparkline())

	b.WriteString("\n  " + sectionHeaderStyle.Render("Transactions") + "\n")
	b.WriteString(fmt.Sprintf("  %s %s %s\n",
		metaStyle.Render(fmt.Sprintf("%-28s", "project")),
		metaStyle.Render(fmt.Sprintf("%-22s", "date")),
		metaStyle.Render(fmt.Sprintf("%8s", "kB"))))
	b.WriteString(fmt.Sprintf("  %s %s %s\n",
		selectedStyle.Render(fmt.Sprintf("%-28s", m.total.Name)),
		"", // TOTAL carries no date
		selectedStyle.Render(fmt.Sprintf("%*s", 8+23, m.total.XP))))

	visible := m.height - xpChartRows - 8
	if visible < 1 {
		visible = 1
	}
	end := m.offset + visible
	if end > len(m.rows) {
		end = len(m.rows)
	}
	for _, r := range m.rows[m.offset:end] {
		b.WriteString(fmt.Sprintf("  %s %s %s\n",
			normalStyle.Render(fmt.Sprintf("%-28s", truncStr(r.Name, 28))),
			dimStyle.Render(fmt.Sprintf("%-22s", r.Date)),
			normalStyle.Render(fmt.Sprintf("%8s", r.XP))))
	}
	return b.String()
}

// sparkline rasterizes the cumulative curve onto a cell grid. Each column is
// the running total at that point in the time domain; the curve can only
// climb.
func (m xpModel) sparkline() string {
	cols := m.width - 14
	if cols < 10 {
		cols = 10
	}

	grid := make([][]rune, xpChartRows)
	for i := range grid {
		grid[i] = make([]rune, cols)
		for j := range grid[i] {
			grid[i][j] = ' '
		}
	}

	timeRange := float64(m.series.TimeMax.Sub(m.series.TimeMin))
	xpRange := m.series.XPMax - m.series.XPMin
	if timeRange == 0 {
		timeRange = 1
	}
	if xpRange == 0 {
		xpRange = 1
	}

	// Step function: each column shows the last total reached by its time.
	value := m.series.Points[0].Cumulative
	next := 0
	for col := 0; col < cols; col++ {
		t := float64(col) / float64(cols-1) * timeRange
		for next < len(m.series.Points) &&
			float64(m.series.Points[next].Time.Sub(m.series.TimeMin)) <= t {
			value = m.series.Points[next].Cumulative
			next++
		}
		row := int((value - m.series.XPMin) / xpRange * float64(xpChartRows-1))
		if row < 0 {
			row = 0
		}
		if row > xpChartRows-1 {
			row = xpChartRows - 1
		}
		grid[xpChartRows-1-row][col] = '▄'
	}

	var b strings.Builder
	for i, row := range grid {
		label := "        "
		switch i {
		case 0:
			label = fmt.Sprintf("%8s", formatNumber(m.series.XPMax))
		case xpChartRows - 1:
			label = fmt.Sprintf("%8s", formatNumber(m.series.XPMin))
		}
		b.WriteString("  " + metaStyle.Render(label) + " " + chartAxisStyle.Render("│") +
			chartLineStyle.Render(string(row)) + "\n")
	}
	b.WriteString("  " + strings.Repeat(" ", 8) + " " + chartAxisStyle.Render("└"+strings.Repeat("─", cols)) + "\n")
	b.WriteString(fmt.Sprintf("  %s %s%s\n",
		strings.Repeat(" ", 8),
		dimStyle.Render(formatDay(m.series.TimeMin)),
		dimStyle.Render(fmt.Sprintf("%*s", cols-12, formatDay(m.series.TimeMax)))))
	return b.String()
}

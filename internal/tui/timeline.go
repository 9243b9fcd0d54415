package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/naveenspark/gradia/pkg/aggregate"
	"github.com/naveenspark/gradia/pkg/domain"
)

// timelineModel is the merged project history: completed results and work in
// progress in one chronological list.
type timelineModel struct {
	entries []aggregate.TimelineEntry
	cursor  int
	offset  int
	height  int
}

func newTimelineModel(dash *domain.Dashboard, height int) timelineModel {
	return timelineModel{
		entries: aggregate.MergeTimeline(dash.Completed, dash.WIP),
		height:  height,
	}
}

func (m timelineModel) Init() tea.Cmd { return nil }

func (m timelineModel) Update(msg tea.Msg) (timelineModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "j", "down":
			if m.cursor < len(m.entries)-1 {
				m.cursor++
			}
		case "k", "up":
			if m.cursor > 0 {
				m.cursor--
			}
		case "g", "home":
			m.cursor = 0
		case "G", "end":
			if len(m.entries) > 0 {
				m.cursor = len(m.entries) - 1
			}
		}
		m.clampOffset()
	}
	return m, nil
}

// clampOffset keeps the cursor inside the visible window.
func (m *timelineModel) clampOffset() {
	visible := m.visibleRows()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+visible {
		m.offset = m.cursor - visible + 1
	}
}

func (m timelineModel) visibleRows() int {
	// Section header and padding take three lines.
	rows := m.height - 3
	if rows < 1 {
		rows = 1
	}
	return rows
}

func (m timelineModel) View() string {
	var b strings.Builder
	b.WriteString("\n  " + sectionHeaderStyle.Render(fmt.Sprintf("Timeline (%d projects)", len(m.entries))) + "\n")

	if len(m.entries) == 0 {
		b.WriteString("  " + dimStyle.Render("no project history yet") + "\n")
		return b.String()
	}

	end := m.offset + m.visibleRows()
	if end > len(m.entries) {
		end = len(m.entries)
	}
	for i := m.offset; i < end; i++ {
		e := m.entries[i]
		line := fmt.Sprintf("  %s %s  %s",
			statusBadge(e.Status),
			normalStyle.Render(fmt.Sprintf("%-24s", truncStr(e.Name, 24))),
			dimStyle.Render(formatDay(e.Date)))
		if i == m.cursor {
			line = selectedRowBg.Render(line)
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

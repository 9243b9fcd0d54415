package tui

import (
	"strings"
	"testing"
)

func TestTimelineMergesBothStatuses(t *testing.T) {
	m := newTimelineModel(testDashboard(), 20)
	if len(m.entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(m.entries))
	}
	view := m.View()
	if !strings.Contains(view, "[done]") || !strings.Contains(view, "[wip ]") {
		t.Errorf("expected both status badges, got:\n%s", view)
	}
	if !strings.Contains(view, "Ascii Art") || !strings.Contains(view, "Net Cat") {
		t.Errorf("expected title-cased project names, got:\n%s", view)
	}
}

func TestTimelineCursorClamps(t *testing.T) {
	m := newTimelineModel(testDashboard(), 20)
	m, _ = m.Update(keyRunes("k"))
	if m.cursor != 0 {
		t.Errorf("cursor = %d, must not go above the first entry", m.cursor)
	}
	for i := 0; i < 10; i++ {
		m, _ = m.Update(keyRunes("j"))
	}
	if m.cursor != len(m.entries)-1 {
		t.Errorf("cursor = %d, must stop at the last entry", m.cursor)
	}
}

func TestTimelineScrollWindowFollowsCursor(t *testing.T) {
	dash := testDashboard()
	m := newTimelineModel(dash, 5) // two visible rows
	m, _ = m.Update(keyRunes("G"))
	if m.cursor != len(m.entries)-1 {
		t.Fatalf("cursor = %d after G", m.cursor)
	}
	if m.cursor < m.offset || m.cursor >= m.offset+m.visibleRows() {
		t.Errorf("cursor %d outside window [%d,%d)", m.cursor, m.offset, m.offset+m.visibleRows())
	}
}

func TestTimelineEmptyState(t *testing.T) {
	dash := testDashboard()
	dash.WIP = nil
	dash.Completed = nil
	m := newTimelineModel(dash, 20)
	if !strings.Contains(m.View(), "no project history") {
		t.Error("expected the empty-state text")
	}
}

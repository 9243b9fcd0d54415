package tui

import (
	"strings"
	"testing"
)

func TestSkillsViewBarsOrderedByValue(t *testing.T) {
	m := newSkillsModel(testDashboard(), 80)
	view := m.View()
	goIdx := strings.Index(view, "Go")
	sqlIdx := strings.Index(view, "Sql")
	if goIdx == -1 || sqlIdx == -1 {
		t.Fatalf("expected skill names, got:\n%s", view)
	}
	if goIdx > sqlIdx {
		t.Error("expected the largest skill first")
	}
}

func TestSkillsViewBelowThreshold(t *testing.T) {
	dash := testDashboard()
	dash.Skills = dash.Skills[:2]
	m := newSkillsModel(dash, 80)
	if !strings.Contains(m.View(), "not enough skill data") {
		t.Error("expected the below-threshold text")
	}
}

func TestSkillsSmallestBarStillVisible(t *testing.T) {
	m := newSkillsModel(testDashboard(), 40)
	view := m.View()
	for _, line := range strings.Split(view, "\n") {
		if strings.Contains(line, "Sql") && !strings.Contains(line, "█") {
			t.Error("every skill row needs at least one bar cell")
		}
	}
}

// Package aggregate derives the dashboard series from raw query records:
// cumulative XP over time, the merged project timeline, per-skill totals and
// the audit summary. Pure data transforms, no I/O.
package aggregate

import (
	"sort"
	"strings"
	"time"
	"unicode"

	"gonum.org/v1/gonum/floats"

	"github.com/naveenspark/gradia/pkg/domain"
)

// SeriesPoint is one XP transaction with its running total.
type SeriesPoint struct {
	Time       time.Time
	Amount     float64
	Cumulative float64
}

// Series is the cumulative XP series in ascending time order, with the
// domain extents charts scale against. An empty input yields a Series with
// no points; charts must render a no-data state instead of dividing by a
// zero range.
type Series struct {
	Points  []SeriesPoint
	TimeMin time.Time
	TimeMax time.Time
	XPMin   float64
	XPMax   float64
	Total   float64
}

// Empty reports whether the series has no points.
func (s Series) Empty() bool { return len(s.Points) == 0 }

// CumulativeXP sorts transactions ascending by timestamp and computes the
// running sum. The cumulative values are non-decreasing by construction.
func CumulativeXP(txs []domain.XPTransaction) Series {
	if len(txs) == 0 {
		return Series{}
	}

	sorted := make([]domain.XPTransaction, len(txs))
	copy(sorted, txs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
	})

	amounts := make([]float64, len(sorted))
	for i, tx := range sorted {
		amounts[i] = tx.Amount
	}
	cums := floats.CumSum(make([]float64, len(amounts)), amounts)

	points := make([]SeriesPoint, len(sorted))
	for i, tx := range sorted {
		points[i] = SeriesPoint{Time: tx.CreatedAt, Amount: tx.Amount, Cumulative: cums[i]}
	}

	return Series{
		Points:  points,
		TimeMin: sorted[0].CreatedAt,
		TimeMax: sorted[len(sorted)-1].CreatedAt,
		XPMin:   floats.Min(cums),
		XPMax:   floats.Max(cums),
		Total:   cums[len(cums)-1],
	}
}

// Timeline statuses.
const (
	StatusCompleted = "completed"
	StatusWIP       = "wip"
)

// TimelineEntry is one project on the merged timeline.
type TimelineEntry struct {
	Path   string
	Name   string
	Date   time.Time
	Status string
}

// MergeTimeline tags completed results and WIP items and merges them into one
// sequence ascending by creation date.
func MergeTimeline(completed []domain.Result, wip []domain.Progress) []TimelineEntry {
	entries := make([]TimelineEntry, 0, len(completed)+len(wip))
	for _, r := range completed {
		entries = append(entries, TimelineEntry{
			Path:   r.Path,
			Name:   ProjectName(r.Path),
			Date:   r.CreatedAt,
			Status: StatusCompleted,
		})
	}
	for _, p := range wip {
		entries = append(entries, TimelineEntry{
			Path:   p.Path,
			Name:   ProjectName(p.Path),
			Date:   p.CreatedAt,
			Status: StatusWIP,
		})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date.Before(entries[j].Date)
	})
	return entries
}

// ProjectName derives the timeline display name from a project path: last
// "/"-delimited segment, dashes and underscores become spaces, each word is
// title-cased, and names longer than 20 characters are truncated with "...".
func ProjectName(path string) string {
	if path == "" {
		return "Project"
	}
	name := titleWords(pathSegment(path))
	if runes := []rune(name); len(runes) > 20 {
		return string(runes[:20]) + "..."
	}
	return name
}

// PlainProjectName is the XP table variant: last segment with separators
// replaced, no title-casing, no truncation. An empty path renders as a dash.
func PlainProjectName(path string) string {
	if path == "" {
		return "—"
	}
	return pathSegment(path)
}

func pathSegment(path string) string {
	seg := path
	if i := strings.LastIndex(path, "/"); i >= 0 {
		seg = path[i+1:]
	}
	seg = strings.ReplaceAll(seg, "-", " ")
	return strings.ReplaceAll(seg, "_", " ")
}

// titleWords uppercases the first letter of every word, leaving spacing
// untouched.
func titleWords(s string) string {
	runes := []rune(s)
	for i, r := range runes {
		if unicode.IsLetter(r) && (i == 0 || !unicode.IsLetter(runes[i-1]) && !unicode.IsDigit(runes[i-1])) {
			runes[i] = unicode.ToUpper(r)
		}
	}
	return string(runes)
}

// topSkills is how many skills the radar shows at most.
const topSkills = 8

// SkillTotal is one normalized skill name with its summed amount.
type SkillTotal struct {
	Name  string
	Value float64
}

// SkillTotals strips the "skill_" prefix, capitalizes the remainder, and sums
// amounts per resulting name — distinct raw types can normalize to the same
// display name, so amounts accumulate rather than overwrite. The result is
// sorted descending by value (stable, ties keep encounter order) and limited
// to the top 8.
func SkillTotals(records []domain.SkillRecord) []SkillTotal {
	sums := make(map[string]float64)
	var order []string
	for _, rec := range records {
		name := capitalize(strings.TrimPrefix(rec.Type, "skill_"))
		if _, seen := sums[name]; !seen {
			order = append(order, name)
		}
		sums[name] += rec.Amount
	}

	totals := make([]SkillTotal, 0, len(order))
	for _, name := range order {
		totals = append(totals, SkillTotal{Name: name, Value: sums[name]})
	}
	sort.SliceStable(totals, func(i, j int) bool {
		return totals[i].Value > totals[j].Value
	})
	if len(totals) > topSkills {
		totals = totals[:topSkills]
	}
	return totals
}

func capitalize(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// AuditSummary carries the audit figures straight from the profile; nothing
// is recomputed from transactions.
type AuditSummary struct {
	Up    float64
	Bonus float64
	Down  float64
	Ratio float64
}

// Audit builds the summary. Ratio is totalUp/totalDown with no zero-guard: a
// zero totalDown yields +Inf (or NaN), which renderers must format rather
// than crash on.
func Audit(u domain.User) AuditSummary {
	return AuditSummary{
		Up:    u.TotalUp,
		Bonus: u.TotalUpBonus,
		Down:  u.TotalDown,
		Ratio: u.TotalUp / u.TotalDown,
	}
}

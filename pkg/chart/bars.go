package chart

import (
	"fmt"
	"math"
	"strconv"

	"github.com/naveenspark/gradia/pkg/aggregate"
)

// Audit bar layout constants.
const (
	auditTop    = 40.0
	auditRight  = 20.0
	auditBottom = 20.0
	auditLeft   = 60.0
	auditBarH   = 30.0
	auditGap    = 20.0
)

// AuditChart is the stacked-bar audit layout: the up bar with its bonus
// stacked beside it, the down bar alone below, value labels on each bar, and
// the ratio label placed independently of the bar geometry.
type AuditChart struct {
	Width, Height float64
	UpBar         Rect
	BonusBar      Rect
	DownBar       Rect
	UpLabel       Label
	BonusLabel    Label
	DownLabel     Label
	RatioLabel    Label
}

// AuditBars scales the three figures against max(up+bonus, down, 1) so the
// widest bar fills the chart width. The ratio keeps whatever non-finite
// value the summary carries; it is formatted, never guarded.
func AuditBars(s aggregate.AuditSummary, width, height float64) *AuditChart {
	maxValue := math.Max(s.Up+s.Bonus, math.Max(s.Down, 1))
	chartW := width - auditLeft - auditRight

	y1 := auditTop
	y2 := auditTop + auditBarH + auditGap

	upW := s.Up / maxValue * chartW
	bonusW := s.Bonus / maxValue * chartW
	downW := s.Down / maxValue * chartW

	return &AuditChart{
		Width:    width,
		Height:   height,
		UpBar:    Rect{X: auditLeft, Y: y1, W: upW, H: auditBarH},
		BonusBar: Rect{X: auditLeft + upW, Y: y1, W: bonusW, H: auditBarH},
		DownBar:  Rect{X: auditLeft, Y: y2, W: downW, H: auditBarH},
		UpLabel: Label{
			X: auditLeft + 5, Y: y1 + auditBarH - 5,
			Text: formatAmount(s.Up), Size: 20,
		},
		BonusLabel: Label{
			X: auditLeft + upW + bonusW - 5, Y: y1 + auditBarH - 5,
			Text: formatAmount(s.Bonus), Anchor: AnchorEnd, Size: 16,
		},
		DownLabel: Label{
			X: auditLeft + 5, Y: y2 + auditBarH - 5,
			Text: formatAmount(s.Down), Size: 20,
		},
		RatioLabel: Label{
			X: width - auditRight, Y: auditTop + auditBarH/2 + 5,
			Text: fmt.Sprintf("%.3f", s.Ratio), Anchor: AnchorEnd, Size: 24,
		},
	}
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

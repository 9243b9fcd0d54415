package chart

import (
	"fmt"
	"time"

	"github.com/naveenspark/gradia/pkg/aggregate"
)

// lineMargin is the inset of the plot area on every side.
const lineMargin = 50.0

// gridSteps divides the value domain; gridSteps+1 labels are produced.
const gridSteps = 5

// LineChart is the cumulative-XP-over-time layout: one dot per transaction,
// a connecting path, axis lines, value gridline labels and the two endpoint
// date labels.
type LineChart struct {
	Width, Height float64
	Axes          [2]Line // vertical value axis, horizontal time axis
	Points        []Circle
	Path          []Point
	GridLabels    []Label
	DateLabels    [2]Label
}

// XPLine lays out the series on a width×height canvas. Returns nil for an
// empty series — the caller renders a no-data state instead.
func XPLine(s aggregate.Series, width, height float64) *LineChart {
	if s.Empty() {
		return nil
	}

	xScale := width - 2*lineMargin
	yScale := height - 2*lineMargin
	timeRange := float64(s.TimeMax.Sub(s.TimeMin))
	if timeRange == 0 {
		timeRange = 1 // single-instant domain, all points collapse to the left edge
	}
	xpRange := s.XPMax - s.XPMin
	if xpRange == 0 {
		xpRange = 1
	}

	xy := func(t time.Time, v float64) (float64, float64) {
		x := lineMargin + xScale*float64(t.Sub(s.TimeMin))/timeRange
		y := height - lineMargin - yScale*(v-s.XPMin)/xpRange
		return x, y
	}

	c := &LineChart{
		Width:  width,
		Height: height,
		Axes: [2]Line{
			{X1: lineMargin, Y1: lineMargin, X2: lineMargin, Y2: height - lineMargin},
			{X1: lineMargin, Y1: height - lineMargin, X2: width - lineMargin, Y2: height - lineMargin},
		},
	}

	step := (s.XPMax - s.XPMin) / gridSteps
	for i := 0; i <= gridSteps; i++ {
		val := s.XPMax - float64(i)*step
		x, y := xy(s.TimeMin, val)
		c.GridLabels = append(c.GridLabels, Label{
			X:      x - 10,
			Y:      y,
			Text:   fmt.Sprintf("%.0f", val),
			Anchor: AnchorEnd,
			Size:   10,
		})
	}

	for _, p := range s.Points {
		x, y := xy(p.Time, p.Cumulative)
		c.Points = append(c.Points, Circle{X: x, Y: y, R: 2})
		c.Path = append(c.Path, Point{X: x, Y: y})
	}

	c.DateLabels = [2]Label{
		{X: lineMargin, Y: height - lineMargin + 15, Text: formatDate(s.TimeMin), Size: 10},
		{X: width - lineMargin, Y: height - lineMargin + 15, Text: formatDate(s.TimeMax), Size: 10},
	}
	return c
}

func formatDate(t time.Time) string {
	return t.Format("Jan 02, 2006")
}

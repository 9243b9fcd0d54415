package chart

import (
	"fmt"
	"math"

	"github.com/naveenspark/gradia/pkg/aggregate"
)

// Radar layout constants.
const (
	radarLevels    = 10  // concentric value rings
	minRadarSkills = 3   // fewer skills make a degenerate polygon
	axisOverhang   = 1.1 // axis lines extend past the outer ring
	labelDistance  = 1.2 // axis labels sit past the axis ends
)

// Ring is one concentric grid circle with its value label.
type Ring struct {
	Circle Circle
	Label  Label
}

// RadarChart is the radial skill layout, centered on the canvas: the first
// axis points straight up and the rest follow clockwise.
type RadarChart struct {
	Width, Height float64
	CX, CY        float64
	Radius        float64
	Rings         []Ring
	Axes          []Line
	AxisLabels    []Label
	Polygon       []Point // closed polyline, one vertex per skill
	Vertices      []Circle
}

// SkillRadar lays out the totals on a width×height canvas with the given
// outer ring radius. Returns nil when fewer than three skills remain — the
// caller skips the visualization entirely.
func SkillRadar(totals []aggregate.SkillTotal, width, height, radius float64) *RadarChart {
	if len(totals) < minRadarSkills {
		return nil
	}

	maxValue := totals[0].Value
	for _, t := range totals[1:] {
		if t.Value > maxValue {
			maxValue = t.Value
		}
	}

	cx, cy := width/2, height/2
	slice := 2 * math.Pi / float64(len(totals))

	c := &RadarChart{
		Width: width, Height: height,
		CX: cx, CY: cy,
		Radius: radius,
	}

	for level := 1; level <= radarLevels; level++ {
		r := radius * float64(level) / radarLevels
		c.Rings = append(c.Rings, Ring{
			Circle: Circle{X: cx, Y: cy, R: r},
			Label: Label{
				X:    cx,
				Y:    cy - r,
				Text: fmt.Sprintf("%.0f", math.Round(maxValue*float64(level)/radarLevels)),
				Size: 10,
			},
		})
	}

	for i, t := range totals {
		angle := float64(i)*slice - math.Pi/2
		sin, cos := math.Sincos(angle)

		c.Axes = append(c.Axes, Line{
			X1: cx, Y1: cy,
			X2: cx + radius*axisOverhang*cos,
			Y2: cy + radius*axisOverhang*sin,
		})
		c.AxisLabels = append(c.AxisLabels, Label{
			X:      cx + radius*labelDistance*cos,
			Y:      cy + radius*labelDistance*sin,
			Text:   t.Name,
			Anchor: AnchorMiddle,
			Size:   11,
		})

		r := radius * (t.Value / maxValue)
		x, y := cx+r*cos, cy+r*sin
		c.Polygon = append(c.Polygon, Point{X: x, Y: y})
		c.Vertices = append(c.Vertices, Circle{X: x, Y: y, R: 4})
	}
	return c
}

// Package render draws already-computed chart geometry as SVG. It is the
// non-interactive render adapter behind "gradia export"; the TUI is the
// interactive one. Nothing in here computes layout — it only paints
// primitives.
package render

import (
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/naveenspark/gradia/pkg/aggregate"
	"github.com/naveenspark/gradia/pkg/chart"
	"github.com/naveenspark/gradia/pkg/domain"
)

// Palette, carried over from the web dashboard.
const (
	colorLine   = "#228B22"
	colorUp     = "#228B22"
	colorBonus  = "#8FBC8F"
	colorDown   = "#006400"
	colorRadar  = "#4CAF50"
	colorStroke = "#388E3C"
	colorText   = "#e4e4ec"
	colorGrid   = "#888888"
)

// Audit and radar section sizes match the web dashboard's fixed canvases.
const (
	auditWidth  = 680.0
	auditHeight = 140.0
	radarWidth  = 500.0
	radarHeight = 400.0
	radarRadius = 125.0
	sectionGap  = 40.0
	headerH     = 60.0
)

// SVG writes the whole dashboard as one SVG document. lineW and lineH size
// the XP chart; the other sections use their fixed canvases.
func SVG(w io.Writer, dash *domain.Dashboard, lineW, lineH float64) error {
	series := aggregate.CumulativeXP(dash.XP)
	audit := chart.AuditBars(aggregate.Audit(dash.User), auditWidth, auditHeight)
	radar := chart.SkillRadar(aggregate.SkillTotals(dash.Skills), radarWidth, radarHeight, radarRadius)
	line := chart.XPLine(series, lineW, lineH)

	width := lineW
	if width < auditWidth {
		width = auditWidth
	}
	height := headerH + auditHeight + lineH + 3*sectionGap
	if radar != nil {
		height += radarHeight + sectionGap
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" style="background:#1a1a22">`+"\n", width, height)

	writeHeader(&b, dash.User)
	y := headerH + sectionGap

	fmt.Fprintf(&b, `<g transform="translate(0,%.0f)">`+"\n", y)
	writeAudit(&b, audit)
	b.WriteString("</g>\n")
	y += auditHeight + sectionGap

	fmt.Fprintf(&b, `<g transform="translate(0,%.0f)">`+"\n", y)
	writeLine(&b, line, lineW, lineH)
	b.WriteString("</g>\n")
	y += lineH + sectionGap

	if radar != nil {
		fmt.Fprintf(&b, `<g transform="translate(0,%.0f)">`+"\n", y)
		writeRadar(&b, radar)
		b.WriteString("</g>\n")
	}

	b.WriteString("</svg>\n")
	_, err := io.WriteString(w, b.String())
	return err
}

func writeHeader(b *strings.Builder, u domain.User) {
	text(b, 20, 30, 22, colorText, "", u.Login)
	meta := fmt.Sprintf("[%s:%s]", orNA(u.Campus), orNA(u.FirstLabel()))
	text(b, 20, 50, 12, colorGrid, "", meta)
	if name := u.FullName(); name != "" {
		text(b, 200, 30, 14, colorGrid, "", name)
	}
}

func writeAudit(b *strings.Builder, c *chart.AuditChart) {
	rect(b, c.UpBar, colorUp)
	rect(b, c.BonusBar, colorBonus)
	rect(b, c.DownBar, colorDown)
	label(b, c.UpLabel, "#ffffff")
	label(b, c.BonusLabel, "#ffffff")
	label(b, c.DownLabel, "#ffffff")
	label(b, c.RatioLabel, colorText)
}

func writeLine(b *strings.Builder, c *chart.LineChart, w, h float64) {
	if c == nil {
		text(b, w/2, h/2, 14, colorGrid, chart.AnchorMiddle, "No XP data available")
		return
	}
	for _, a := range c.Axes {
		lineEl(b, a, "#ffffff", 1)
	}
	for _, l := range c.GridLabels {
		label(b, l, "#ffffff")
	}
	for _, l := range c.DateLabels {
		label(b, l, "#ffffff")
	}
	if len(c.Path) > 0 {
		var d strings.Builder
		for i, p := range c.Path {
			if i == 0 {
				fmt.Fprintf(&d, "M %g %g", p.X, p.Y)
			} else {
				fmt.Fprintf(&d, " L %g %g", p.X, p.Y)
			}
		}
		fmt.Fprintf(b, `<path d="%s" stroke="%s" fill="none" stroke-width="2"/>`+"\n", d.String(), colorLine)
	}
	for _, p := range c.Points {
		circle(b, p, colorLine)
	}
}

func writeRadar(b *strings.Builder, c *chart.RadarChart) {
	for _, ring := range c.Rings {
		fmt.Fprintf(b, `<circle cx="%g" cy="%g" r="%g" fill="none" stroke="#ccc" stroke-width="0.5"/>`+"\n",
			ring.Circle.X, ring.Circle.Y, ring.Circle.R)
		label(b, ring.Label, "#737373")
	}
	for _, a := range c.Axes {
		lineEl(b, a, "#999999", 1)
	}
	for _, l := range c.AxisLabels {
		label(b, l, colorText)
	}
	var pts []string
	for _, p := range c.Polygon {
		pts = append(pts, fmt.Sprintf("%g,%g", p.X, p.Y))
	}
	fmt.Fprintf(b, `<polygon points="%s" fill="%s" fill-opacity="0.3" stroke="%s" stroke-width="2"/>`+"\n",
		strings.Join(pts, " "), colorRadar, colorStroke)
	for _, v := range c.Vertices {
		circle(b, v, colorRadar)
	}
}

func rect(b *strings.Builder, r chart.Rect, fill string) {
	fmt.Fprintf(b, `<rect x="%g" y="%g" width="%g" height="%g" fill="%s"/>`+"\n", r.X, r.Y, r.W, r.H, fill)
}

func circle(b *strings.Builder, c chart.Circle, fill string) {
	fmt.Fprintf(b, `<circle cx="%g" cy="%g" r="%g" fill="%s"/>`+"\n", c.X, c.Y, c.R, fill)
}

func lineEl(b *strings.Builder, l chart.Line, stroke string, width float64) {
	fmt.Fprintf(b, `<line x1="%g" y1="%g" x2="%g" y2="%g" stroke="%s" stroke-width="%g"/>`+"\n",
		l.X1, l.Y1, l.X2, l.Y2, stroke, width)
}

func label(b *strings.Builder, l chart.Label, fill string) {
	anchor := ""
	if l.Anchor != "" {
		anchor = fmt.Sprintf(` text-anchor="%s"`, l.Anchor)
	}
	fmt.Fprintf(b, `<text x="%g" y="%g" fill="%s" font-size="%g"%s>%s</text>`+"\n",
		l.X, l.Y, fill, l.Size, anchor, html.EscapeString(l.Text))
}

func text(b *strings.Builder, x, y, size float64, fill, anchor, s string) {
	label(b, chart.Label{X: x, Y: y, Text: s, Anchor: anchor, Size: size}, fill)
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

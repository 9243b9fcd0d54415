// Package chart turns derived series into scaled geometric primitives for a
// given canvas size. Only numbers come out of here — rendering belongs to the
// adapters (TUI, SVG export).
package chart

// Text anchors, matching the SVG attribute values adapters emit.
const (
	AnchorStart  = "start"
	AnchorMiddle = "middle"
	AnchorEnd    = "end"
)

// Point is one vertex of a path or polygon.
type Point struct {
	X, Y float64
}

// Line is a straight segment.
type Line struct {
	X1, Y1, X2, Y2 float64
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	X, Y, W, H float64
}

// Circle is a filled dot.
type Circle struct {
	X, Y, R float64
}

// Label is positioned text.
type Label struct {
	X, Y   float64
	Text   string
	Anchor string // empty means start
	Size   float64
}

// Package arrows turns parsed notation into cell-local arrow geometry.
//
// Small arrows resolve one specifier each into a single two-point
// stroke. Bent arrows resolve a whole cell's label path into a body
// line and a detached arrowhead. All coordinates are relative to the
// arrow's own cell until the compiler translates them onto the grid.
package arrows

import (
	"github.com/rich-27/sudoku-maker-arrow-generator/internal/geom"
)

// Kind tags the rendering role of a shape.
type Kind string

const (
	KindLine  Kind = "line"
	KindArrow Kind = "arrow"
)

// Stroke widths in cell units. The bent widths are the established
// overlay stroke constants; small arrows take a single weight between
// the two.
const (
	SmallThickness     = 0.05
	BentLineThickness  = 0.0765625
	ArrowheadThickness = 0.0265625
)

// HeadLength is how far back from the tip a bent arrow's head starts.
const HeadLength = 0.25

// Shape is one resolved stroke: an ordered run of waypoints plus the
// style it renders with. Colour stays empty until the compiler stamps
// the owning specification's colour on it.
type Shape struct {
	Kind      Kind
	Points    []geom.Point
	Colour    string
	Thickness float64
}

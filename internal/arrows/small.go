package arrows

import (
	"math"

	"github.com/rich-27/sudoku-maker-arrow-generator/internal/geom"
	"github.com/rich-27/sudoku-maker-arrow-generator/internal/notation"
)

// ResolveSmall converts one specifier into a single straight stroke
// whose last point is the arrow tip.
//
// The stroke anchors at the position label's wall point and projects
// along the direction until it meets the cell boundary again. When the
// direction leads straight out of the cell the tip stays pinned at the
// wall point and the tail projects backwards instead, so "q:w" renders
// as an arrow along the left wall pointing up out of the corner. When
// position and direction coincide the anchor first moves halfway
// toward the opposite wall, which keeps the one-letter shorthand
// arrows inside the cell.
func ResolveSmall(sp notation.Specifier) (Shape, error) {
	pos, err := sp.Position.Position()
	if err != nil {
		return Shape{}, err
	}
	dir, err := sp.Direction.Direction()
	if err != nil {
		return Shape{}, err
	}

	anchor := pos
	if sp.Position == sp.Direction {
		anchor = inset(pos)
	}

	tail := anchor
	tip := anchor.Add(dir.Scale(reach(anchor, dir)))
	if tip == tail {
		if back := reach(pos, dir.Scale(-1)); back > 0 {
			tail = pos.Sub(dir.Scale(back))
			tip = pos
		} else {
			// A corner with its outward diagonal touches the cell in a
			// single point both ways, so fall back to the inset anchor.
			tail = inset(pos)
			tip = tail.Add(dir.Scale(reach(tail, dir)))
		}
	}

	return Shape{
		Kind:      KindLine,
		Points:    []geom.Point{tail, tip},
		Thickness: SmallThickness,
	}, nil
}

// inset moves a wall point halfway toward the opposite wall.
func inset(pos geom.Point) geom.Point {
	return pos.Midpoint(geom.Point{X: 1 - pos.X, Y: 1 - pos.Y})
}

// reach returns how far p can travel along dir before leaving the unit
// cell. dir components are unit steps.
func reach(p, dir geom.Point) float64 {
	t := math.Inf(1)
	switch {
	case dir.X > 0:
		t = min(t, 1-p.X)
	case dir.X < 0:
		t = min(t, p.X)
	}
	switch {
	case dir.Y > 0:
		t = min(t, 1-p.Y)
	case dir.Y < 0:
		t = min(t, p.Y)
	}
	if math.IsInf(t, 1) {
		return 0
	}
	return t
}

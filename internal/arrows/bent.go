package arrows

import (
	"errors"
	"fmt"

	"github.com/rich-27/sudoku-maker-arrow-generator/internal/compass"
	"github.com/rich-27/sudoku-maker-arrow-generator/internal/geom"
	"github.com/rich-27/sudoku-maker-arrow-generator/internal/notation"
)

// ErrUnsupportedBend marks a tail/tip pairing outside the permitted set.
var ErrUnsupportedBend = errors.New("arrows: unsupported bend")

// UnsupportedBendError reports the pairing that was rejected.
type UnsupportedBendError struct {
	Tail compass.Label
	Tip  compass.Label
}

func (e *UnsupportedBendError) Error() string {
	return fmt.Sprintf("unsupported bend %s:%s", e.Tail, e.Tip)
}

func (e *UnsupportedBendError) Unwrap() error {
	return ErrUnsupportedBend
}

// BentPath is an ordered tail, bend, tip triple of position labels.
type BentPath struct {
	Tail compass.Label
	Bend compass.Label
	Tip  compass.Label
}

func (p BentPath) String() string {
	return fmt.Sprintf("%s%s%s", p.Tail, p.Bend, p.Tip)
}

// NewBentPath builds a path from a cell's bare labels. Two labels are
// shorthand with the tail doubling as the bend, so "az" reads as
// "aaz". Any other count is malformed.
func NewBentPath(labels []compass.Label) (BentPath, error) {
	switch len(labels) {
	case 2:
		return BentPath{Tail: labels[0], Bend: labels[0], Tip: labels[1]}, nil
	case 3:
		return BentPath{Tail: labels[0], Bend: labels[1], Tip: labels[2]}, nil
	default:
		return BentPath{}, fmt.Errorf("bent path wants two or three labels, got %d: %w",
			len(labels), notation.ErrMalformedSpecifier)
	}
}

// permittedBends lists the legal tail/tip pairings: each diagonal with
// its two neighbouring cardinals on the compass rose, spelled diagonal
// first. A pairing is legal in either reading order.
var permittedBends = map[[2]compass.Label]struct{}{
	{compass.E, compass.W}: {},
	{compass.E, compass.D}: {},
	{compass.C, compass.D}: {},
	{compass.C, compass.X}: {},
	{compass.Z, compass.X}: {},
	{compass.Z, compass.A}: {},
	{compass.Q, compass.A}: {},
	{compass.Q, compass.W}: {},
}

func bendPermitted(tail, tip compass.Label) bool {
	if _, ok := permittedBends[[2]compass.Label{tail, tip}]; ok {
		return true
	}
	_, ok := permittedBends[[2]compass.Label{tip, tail}]
	return ok
}

// ResolveBent converts a path into its two strokes: the body running
// tail through bend to a join point short of the tip, and the head
// from the join to the tip. The strokes share the join point exactly.
func ResolveBent(path BentPath) (line, head Shape, err error) {
	tail, err := path.Tail.Position()
	if err != nil {
		return Shape{}, Shape{}, err
	}
	bend, err := path.Bend.Position()
	if err != nil {
		return Shape{}, Shape{}, err
	}
	tip, err := path.Tip.Position()
	if err != nil {
		return Shape{}, Shape{}, err
	}

	if !bendPermitted(path.Tail, path.Tip) {
		return Shape{}, Shape{}, &UnsupportedBendError{Tail: path.Tail, Tip: path.Tip}
	}

	approach := tip.Sub(bend)
	if approach == (geom.Point{}) {
		// Bend written on top of the tip; the head still needs a
		// direction, so take it from the tail instead.
		approach = tip.Sub(tail)
	}
	unit, err := approach.Unit()
	if err != nil {
		return Shape{}, Shape{}, fmt.Errorf("bent path %s: %w", path, err)
	}
	join := tip.Sub(unit.Scale(HeadLength))

	line = Shape{
		Kind:      KindLine,
		Points:    []geom.Point{tail, bend, join},
		Thickness: BentLineThickness,
	}
	head = Shape{
		Kind:      KindArrow,
		Points:    []geom.Point{join, tip},
		Thickness: ArrowheadThickness,
	}
	return line, head, nil
}

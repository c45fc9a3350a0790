// Package compass defines the nine-letter label alphabet of the arrow
// notation and resolves labels to cell geometry.
//
// The labels mirror the qwerty cluster laid over a cell:
//
//	q w e
//	a s d
//	z x c
//
// Each outer label names both a point on the unit cell boundary and the
// compass direction pointing away from the centre through that point,
// so a label's position is always centre + direction/2. The centre
// label s is recognised notation but reserved, and resolves to neither.
package compass

import (
	"errors"
	"fmt"

	"github.com/rich-27/sudoku-maker-arrow-generator/internal/geom"
)

// Label is a single notation letter. Values outside the alphabet are
// representable and fail on resolution.
type Label rune

const (
	Q Label = 'q'
	W Label = 'w'
	E Label = 'e'
	A Label = 'a'
	S Label = 's'
	D Label = 'd'
	Z Label = 'z'
	X Label = 'x'
	C Label = 'c'
)

var (
	// ErrUnknownLabel marks letters outside the notation alphabet.
	ErrUnknownLabel = errors.New("compass: unknown label")
	// ErrReservedLabel marks the centre label, which is valid notation
	// with no geometry behind it yet.
	ErrReservedLabel = errors.New("compass: label is reserved")
)

// UnknownLabelError reports a label that cannot be resolved. Reserved
// distinguishes the centre label from letters outside the alphabet.
type UnknownLabelError struct {
	Label    rune
	Reserved bool
}

func (e *UnknownLabelError) Error() string {
	if e.Reserved {
		return fmt.Sprintf("label %q is reserved and has no geometry", e.Label)
	}
	return fmt.Sprintf("unknown label %q", e.Label)
}

func (e *UnknownLabelError) Unwrap() error {
	if e.Reserved {
		return ErrReservedLabel
	}
	return ErrUnknownLabel
}

// positions places each label on the unit cell: corners at the corners,
// edge labels at edge midpoints.
var positions = map[Label]geom.Point{
	Q: {X: 0, Y: 0},
	W: {X: 0.5, Y: 0},
	E: {X: 1, Y: 0},
	A: {X: 0, Y: 0.5},
	D: {X: 1, Y: 0.5},
	Z: {X: 0, Y: 1},
	X: {X: 0.5, Y: 1},
	C: {X: 1, Y: 1},
}

// directions holds the compass vector behind each label. Components are
// unit steps, so diagonals are longer than cardinals.
var directions = map[Label]geom.Point{
	Q: {X: -1, Y: -1},
	W: {X: 0, Y: -1},
	E: {X: 1, Y: -1},
	A: {X: -1, Y: 0},
	D: {X: 1, Y: 0},
	Z: {X: -1, Y: 1},
	X: {X: 0, Y: 1},
	C: {X: 1, Y: 1},
}

// Position returns the label's point on the unit cell boundary.
func (l Label) Position() (geom.Point, error) {
	p, ok := positions[l]
	if !ok {
		return geom.Point{}, l.resolveError()
	}
	return p, nil
}

// Direction returns the label's compass vector.
func (l Label) Direction() (geom.Point, error) {
	d, ok := directions[l]
	if !ok {
		return geom.Point{}, l.resolveError()
	}
	return d, nil
}

func (l Label) resolveError() error {
	return &UnknownLabelError{Label: rune(l), Reserved: l == S}
}

func (l Label) String() string {
	return string(rune(l))
}

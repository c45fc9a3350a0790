// Package compile walks arrow specifications, resolves every cell's
// notation, and accumulates grid-absolute shapes into output groups.
package compile

import (
	"fmt"

	"github.com/rich-27/sudoku-maker-arrow-generator/internal/arrows"
	"github.com/rich-27/sudoku-maker-arrow-generator/internal/arrowspec"
	"github.com/rich-27/sudoku-maker-arrow-generator/internal/compass"
	"github.com/rich-27/sudoku-maker-arrow-generator/internal/geom"
	"github.com/rich-27/sudoku-maker-arrow-generator/internal/notation"
)

// Emitted coordinates are rounded to this many decimal places.
const decimals = 3

// Group gathers every shape sharing an arrow type and colour, in the
// order the compiler met them. For bent groups Lines[i] and Heads[i]
// always belong to the same arrow; small groups only carry Lines.
type Group struct {
	Type   string
	Colour string
	Lines  []arrows.Shape
	Heads  []arrows.Shape
}

// Result is a compiled batch: groups in first-seen order.
type Result struct {
	Groups []*Group

	byKey map[groupKey]*Group
}

type groupKey struct {
	typ    string
	colour string
}

func newResult() *Result {
	return &Result{byKey: make(map[groupKey]*Group)}
}

// group returns the Group for a type/colour pairing, creating it at
// the back of the order on first use.
func (r *Result) group(typ, colour string) *Group {
	key := groupKey{typ: typ, colour: colour}
	if g, ok := r.byKey[key]; ok {
		return g
	}
	g := &Group{Type: typ, Colour: colour}
	r.byKey[key] = g
	r.Groups = append(r.Groups, g)
	return g
}

// Shapes returns the total shape count across all groups.
func (r *Result) Shapes() int {
	n := 0
	for _, g := range r.Groups {
		n += len(g.Lines) + len(g.Heads)
	}
	return n
}

// Compile resolves every specification into grid-absolute, rounded
// shapes. The batch is all or nothing: the first bad cell aborts the
// whole run, and the error names the specification, the cell and the
// cell text on top of the underlying cause.
func Compile(specs []arrowspec.Specification) (*Result, error) {
	res := newResult()
	for i := range specs {
		if err := compileSpecification(res, &specs[i]); err != nil {
			return nil, fmt.Errorf("specification %d (%s, %s): %w",
				i, specs[i].Type, specs[i].Colour, err)
		}
	}
	return res, nil
}

func compileSpecification(res *Result, spec *arrowspec.Specification) error {
	for row, cells := range spec.Grid {
		for col, cell := range cells {
			if cell == "" {
				continue
			}
			lines, heads, err := compileCell(spec.Type, cell)
			if err != nil {
				return fmt.Errorf("cell (%d,%d) %q: %w", row, col, cell, err)
			}

			offset := geom.Point{X: float64(col), Y: float64(row)}
			g := res.group(spec.Type, spec.Colour)
			for _, s := range lines {
				g.Lines = append(g.Lines, emit(s, offset, spec.Colour))
			}
			for _, s := range heads {
				g.Heads = append(g.Heads, emit(s, offset, spec.Colour))
			}
		}
	}
	return nil
}

// compileCell resolves one cell's notation according to the arrow
// type: small cells hold independent specifiers, bent cells hold a
// single label path.
func compileCell(typ, cell string) (lines, heads []arrows.Shape, err error) {
	specs, err := notation.Parse(cell)
	if err != nil {
		return nil, nil, err
	}

	switch typ {
	case arrowspec.TypeSmall:
		for _, sp := range specs {
			s, err := arrows.ResolveSmall(sp)
			if err != nil {
				return nil, nil, fmt.Errorf("specifier %s: %w", sp, err)
			}
			lines = append(lines, s)
		}
		return lines, nil, nil

	case arrowspec.TypeBent:
		labels, err := bentLabels(specs)
		if err != nil {
			return nil, nil, err
		}
		path, err := arrows.NewBentPath(labels)
		if err != nil {
			return nil, nil, err
		}
		line, head, err := arrows.ResolveBent(path)
		if err != nil {
			return nil, nil, err
		}
		return []arrows.Shape{line}, []arrows.Shape{head}, nil

	default:
		return nil, nil, fmt.Errorf("unsupported arrow type %q", typ)
	}
}

// bentLabels flattens a bent cell's specifiers into its label path.
// Bent notation has no pair form, so an explicit specifier is
// malformed here.
func bentLabels(specs []notation.Specifier) ([]compass.Label, error) {
	labels := make([]compass.Label, 0, len(specs))
	for _, sp := range specs {
		if sp.Explicit {
			return nil, fmt.Errorf("pair %s in a bent cell: %w", sp, notation.ErrMalformedSpecifier)
		}
		labels = append(labels, sp.Position)
	}
	return labels, nil
}

// emit translates a cell-local shape onto the grid, rounds its
// coordinates and stamps the group colour.
func emit(s arrows.Shape, offset geom.Point, colour string) arrows.Shape {
	pts := make([]geom.Point, len(s.Points))
	for i, p := range s.Points {
		pts[i] = p.Add(offset).Round(decimals)
	}
	s.Points = pts
	s.Colour = colour
	return s
}

package arrows

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/rich-27/sudoku-maker-arrow-generator/internal/compass"
	"github.com/rich-27/sudoku-maker-arrow-generator/internal/geom"
	"github.com/rich-27/sudoku-maker-arrow-generator/internal/notation"
)

func single(l compass.Label) notation.Specifier {
	return notation.Specifier{Position: l, Direction: l}
}

func pair(pos, dir compass.Label) notation.Specifier {
	return notation.Specifier{Position: pos, Direction: dir, Explicit: true}
}

// One-letter shorthand always runs from the cell centre out to the
// label's own wall point.
func TestResolveSmallShorthand(t *testing.T) {
	centre := geom.Point{X: 0.5, Y: 0.5}
	for _, l := range []compass.Label{compass.Q, compass.W, compass.E, compass.A, compass.D, compass.Z, compass.X, compass.C} {
		s, err := ResolveSmall(single(l))
		if err != nil {
			t.Fatalf("ResolveSmall(%s): %v", l, err)
		}
		wall, _ := l.Position()
		want := []geom.Point{centre, wall}
		if diff := cmp.Diff(want, s.Points); diff != "" {
			t.Errorf("ResolveSmall(%s) points mismatch (-want +got):\n%s", l, diff)
		}
	}
}

func TestResolveSmallExplicit(t *testing.T) {
	tests := []struct {
		name string
		sp   notation.Specifier
		want []geom.Point
	}{
		{
			// Direction crosses the cell: tail at the wall point.
			"left edge up", pair(compass.A, compass.W),
			[]geom.Point{{X: 0, Y: 0.5}, {X: 0, Y: 0}},
		},
		{
			"top edge right", pair(compass.W, compass.D),
			[]geom.Point{{X: 0.5, Y: 0}, {X: 1, Y: 0}},
		},
		{
			// Direction exits immediately: tip pinned at the wall
			// point, tail projected backwards.
			"corner pointing out up", pair(compass.Q, compass.W),
			[]geom.Point{{X: 0, Y: 1}, {X: 0, Y: 0}},
		},
		{
			"right corner pointing out right", pair(compass.E, compass.D),
			[]geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}},
		},
		{
			// Corner with its outward diagonal: both projections are
			// zero, so the arrow anchors from the centre instead.
			"corner with outward diagonal", pair(compass.Q, compass.E),
			[]geom.Point{{X: 0.5, Y: 0.5}, {X: 1, Y: 0}},
		},
		{
			"full diagonal crossing", pair(compass.Q, compass.C),
			[]geom.Point{{X: 0, Y: 0}, {X: 1, Y: 1}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := ResolveSmall(tt.sp)
			if err != nil {
				t.Fatalf("ResolveSmall(%s): %v", tt.sp, err)
			}
			if diff := cmp.Diff(tt.want, s.Points); diff != "" {
				t.Errorf("points mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestResolveSmallStyle(t *testing.T) {
	s, err := ResolveSmall(single(compass.W))
	if err != nil {
		t.Fatal(err)
	}
	if s.Kind != KindLine {
		t.Errorf("Kind = %q, want %q", s.Kind, KindLine)
	}
	if s.Thickness != SmallThickness {
		t.Errorf("Thickness = %v, want %v", s.Thickness, SmallThickness)
	}
	if s.Colour != "" {
		t.Errorf("Colour = %q, want empty before compilation", s.Colour)
	}
}

// Resolution is pure: the same specifier always yields the same shape.
func TestResolveSmallDeterministic(t *testing.T) {
	sp := pair(compass.Q, compass.W)
	first, err := ResolveSmall(sp)
	if err != nil {
		t.Fatal(err)
	}
	second, err := ResolveSmall(sp)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("repeat resolution differs (-first +second):\n%s", diff)
	}
}

func TestResolveSmallBadLabels(t *testing.T) {
	if _, err := ResolveSmall(single(compass.Label('k'))); !errors.Is(err, compass.ErrUnknownLabel) {
		t.Errorf("unknown label error = %v, want ErrUnknownLabel", err)
	}
	if _, err := ResolveSmall(single(compass.S)); !errors.Is(err, compass.ErrReservedLabel) {
		t.Errorf("reserved label error = %v, want ErrReservedLabel", err)
	}
	if _, err := ResolveSmall(pair(compass.Q, compass.S)); !errors.Is(err, compass.ErrReservedLabel) {
		t.Errorf("reserved direction error = %v, want ErrReservedLabel", err)
	}
}

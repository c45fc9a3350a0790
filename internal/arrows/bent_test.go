package arrows

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/rich-27/sudoku-maker-arrow-generator/internal/compass"
	"github.com/rich-27/sudoku-maker-arrow-generator/internal/geom"
	"github.com/rich-27/sudoku-maker-arrow-generator/internal/notation"
)

var permittedPairs = [][2]compass.Label{
	{compass.E, compass.W},
	{compass.E, compass.D},
	{compass.C, compass.D},
	{compass.C, compass.X},
	{compass.Z, compass.X},
	{compass.Z, compass.A},
	{compass.Q, compass.A},
	{compass.Q, compass.W},
}

func TestNewBentPath(t *testing.T) {
	p, err := NewBentPath([]compass.Label{compass.A, compass.Z})
	if err != nil {
		t.Fatalf("NewBentPath: %v", err)
	}
	if want := (BentPath{Tail: compass.A, Bend: compass.A, Tip: compass.Z}); p != want {
		t.Errorf("shorthand path = %+v, want %+v", p, want)
	}

	p, err = NewBentPath([]compass.Label{compass.A, compass.A, compass.Z})
	if err != nil {
		t.Fatalf("NewBentPath: %v", err)
	}
	if want := (BentPath{Tail: compass.A, Bend: compass.A, Tip: compass.Z}); p != want {
		t.Errorf("explicit path = %+v, want %+v", p, want)
	}
}

func TestNewBentPathArity(t *testing.T) {
	for _, labels := range [][]compass.Label{
		nil,
		{compass.A},
		{compass.A, compass.A, compass.A, compass.Z},
	} {
		if _, err := NewBentPath(labels); !errors.Is(err, notation.ErrMalformedSpecifier) {
			t.Errorf("NewBentPath(%v) error = %v, want ErrMalformedSpecifier", labels, err)
		}
	}
}

// The two-label shorthand resolves identically to writing the tail
// twice.
func TestResolveBentShorthandEquivalence(t *testing.T) {
	short, _ := NewBentPath([]compass.Label{compass.A, compass.Z})
	long, _ := NewBentPath([]compass.Label{compass.A, compass.A, compass.Z})

	sl, sh, err := ResolveBent(short)
	if err != nil {
		t.Fatalf("ResolveBent(short): %v", err)
	}
	ll, lh, err := ResolveBent(long)
	if err != nil {
		t.Fatalf("ResolveBent(long): %v", err)
	}
	if diff := cmp.Diff(ll, sl); diff != "" {
		t.Errorf("line mismatch (-explicit +shorthand):\n%s", diff)
	}
	if diff := cmp.Diff(lh, sh); diff != "" {
		t.Errorf("head mismatch (-explicit +shorthand):\n%s", diff)
	}
}

// Every permitted pairing resolves in both reading orders, and the
// body and head always share the join point exactly.
func TestResolveBentPermittedPairs(t *testing.T) {
	for _, pr := range permittedPairs {
		for _, path := range []BentPath{
			{Tail: pr[0], Bend: pr[0], Tip: pr[1]},
			{Tail: pr[1], Bend: pr[1], Tip: pr[0]},
		} {
			line, head, err := ResolveBent(path)
			if err != nil {
				t.Fatalf("ResolveBent(%s): %v", path, err)
			}
			if len(line.Points) != 3 || len(head.Points) != 2 {
				t.Fatalf("ResolveBent(%s) point counts = %d/%d, want 3/2",
					path, len(line.Points), len(head.Points))
			}
			if line.Points[2] != head.Points[0] {
				t.Errorf("ResolveBent(%s) join mismatch: line ends %v, head starts %v",
					path, line.Points[2], head.Points[0])
			}
			tip, _ := path.Tip.Position()
			if head.Points[1] != tip {
				t.Errorf("ResolveBent(%s) head tip = %v, want %v", path, head.Points[1], tip)
			}
		}
	}
}

func TestResolveBentGeometry(t *testing.T) {
	tests := []struct {
		name     string
		path     BentPath
		wantLine []geom.Point
		wantHead []geom.Point
	}{
		{
			"shorthand along top wall",
			BentPath{Tail: compass.E, Bend: compass.E, Tip: compass.W},
			[]geom.Point{{X: 1, Y: 0}, {X: 1, Y: 0}, {X: 0.75, Y: 0}},
			[]geom.Point{{X: 0.75, Y: 0}, {X: 0.5, Y: 0}},
		},
		{
			"explicit bend through corner",
			BentPath{Tail: compass.E, Bend: compass.C, Tip: compass.D},
			[]geom.Point{{X: 1, Y: 0}, {X: 1, Y: 1}, {X: 1, Y: 0.75}},
			[]geom.Point{{X: 1, Y: 0.75}, {X: 1, Y: 0.5}},
		},
		{
			// Bend written on the tip: the head direction comes from
			// the tail.
			"bend on tip",
			BentPath{Tail: compass.E, Bend: compass.W, Tip: compass.W},
			[]geom.Point{{X: 1, Y: 0}, {X: 0.5, Y: 0}, {X: 0.75, Y: 0}},
			[]geom.Point{{X: 0.75, Y: 0}, {X: 0.5, Y: 0}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line, head, err := ResolveBent(tt.path)
			if err != nil {
				t.Fatalf("ResolveBent(%s): %v", tt.path, err)
			}
			if diff := cmp.Diff(tt.wantLine, line.Points); diff != "" {
				t.Errorf("line mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.wantHead, head.Points); diff != "" {
				t.Errorf("head mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestResolveBentStyle(t *testing.T) {
	line, head, err := ResolveBent(BentPath{Tail: compass.E, Bend: compass.E, Tip: compass.W})
	if err != nil {
		t.Fatal(err)
	}
	if line.Kind != KindLine || line.Thickness != BentLineThickness {
		t.Errorf("line style = %q/%v, want %q/%v", line.Kind, line.Thickness, KindLine, BentLineThickness)
	}
	if head.Kind != KindArrow || head.Thickness != ArrowheadThickness {
		t.Errorf("head style = %q/%v, want %q/%v", head.Kind, head.Thickness, KindArrow, ArrowheadThickness)
	}
}

func TestResolveBentRejectsPairings(t *testing.T) {
	tests := []BentPath{
		{Tail: compass.Q, Bend: compass.Q, Tip: compass.C},
		{Tail: compass.W, Bend: compass.W, Tip: compass.X},
		{Tail: compass.A, Bend: compass.A, Tip: compass.D},
		{Tail: compass.W, Bend: compass.Q, Tip: compass.W},
	}
	for _, path := range tests {
		_, _, err := ResolveBent(path)
		if !errors.Is(err, ErrUnsupportedBend) {
			t.Errorf("ResolveBent(%s) error = %v, want ErrUnsupportedBend", path, err)
			continue
		}
		var ube *UnsupportedBendError
		if !errors.As(err, &ube) {
			t.Errorf("error type = %T, want *UnsupportedBendError", err)
			continue
		}
		if ube.Tail != path.Tail || ube.Tip != path.Tip {
			t.Errorf("error pair = %s:%s, want %s:%s", ube.Tail, ube.Tip, path.Tail, path.Tip)
		}
	}
}

// Label problems surface before pair validation, so a reserved centre
// label is reported as such even in an illegal pairing.
func TestResolveBentBadLabels(t *testing.T) {
	_, _, err := ResolveBent(BentPath{Tail: compass.S, Bend: compass.S, Tip: compass.D})
	if !errors.Is(err, compass.ErrReservedLabel) {
		t.Errorf("reserved tail error = %v, want ErrReservedLabel", err)
	}
	_, _, err = ResolveBent(BentPath{Tail: compass.E, Bend: compass.Label('y'), Tip: compass.W})
	if !errors.Is(err, compass.ErrUnknownLabel) {
		t.Errorf("unknown bend error = %v, want ErrUnknownLabel", err)
	}
}

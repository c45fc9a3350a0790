// Package notation parses per-cell arrow notation into specifiers.
//
// A cell string holds zero or more specifiers written back to back.
// Each specifier is either a single label ("q"), shorthand for a
// position paired with its own direction, or an explicit
// position:direction pair ("q:w"). Labels are single letters, so the
// string segments left to right without ambiguity. The parser checks
// structure only; whether a letter belongs to the alphabet is decided
// at resolution.
package notation

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/rich-27/sudoku-maker-arrow-generator/internal/compass"
)

// specifierRe matches one specifier. The pair form is listed first so
// it wins over the bare label at the same offset.
var specifierRe = regexp.MustCompile(`([A-Za-z]):([A-Za-z])|([A-Za-z])`)

// ErrMalformedSpecifier marks cell text the grammar cannot segment.
var ErrMalformedSpecifier = errors.New("notation: malformed specifier")

// MalformedSpecifierError pinpoints the text that broke the grammar.
type MalformedSpecifierError struct {
	Input  string
	Offset int
	Token  string
	Reason string
}

func (e *MalformedSpecifierError) Error() string {
	return fmt.Sprintf("%s %q at offset %d in %q", e.Reason, e.Token, e.Offset, e.Input)
}

func (e *MalformedSpecifierError) Unwrap() error {
	return ErrMalformedSpecifier
}

// Specifier is one parsed position/direction reference. Explicit
// records whether it was written in the two-label pair form, which
// some notations forbid.
type Specifier struct {
	Position  compass.Label
	Direction compass.Label
	Explicit  bool
}

func (s Specifier) String() string {
	if s.Explicit {
		return fmt.Sprintf("%s:%s", s.Position, s.Direction)
	}
	return s.Position.String()
}

// Parse segments a cell's text into specifiers. An empty cell parses
// to an empty list. Any text the grammar cannot claim, including a
// dangling separator, fails the whole cell.
func Parse(cell string) ([]Specifier, error) {
	if cell == "" {
		return nil, nil
	}

	var specs []Specifier
	next := 0
	for _, m := range specifierRe.FindAllStringSubmatchIndex(cell, -1) {
		if m[0] != next {
			return nil, gapError(cell, next, m[0])
		}
		if m[2] >= 0 {
			specs = append(specs, Specifier{
				Position:  compass.Label(cell[m[2]]),
				Direction: compass.Label(cell[m[4]]),
				Explicit:  true,
			})
		} else {
			l := compass.Label(cell[m[6]])
			specs = append(specs, Specifier{Position: l, Direction: l})
		}
		next = m[1]
	}
	if next != len(cell) {
		return nil, gapError(cell, next, len(cell))
	}
	return specs, nil
}

func gapError(cell string, from, to int) error {
	token := cell[from:to]
	reason := "unrecognised text"
	if strings.HasPrefix(token, ":") {
		reason = "dangling separator"
	}
	return &MalformedSpecifierError{
		Input:  cell,
		Offset: from,
		Token:  token,
		Reason: reason,
	}
}

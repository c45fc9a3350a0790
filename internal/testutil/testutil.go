// Package testutil provides shared test helpers for building
// specification fixtures.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rich-27/sudoku-maker-arrow-generator/internal/arrowspec"
)

// SmallSpec builds a one-entry small-arrow specification.
func SmallSpec(colour string, grid [][]string) arrowspec.Specification {
	return arrowspec.Specification{Type: arrowspec.TypeSmall, Colour: colour, Grid: grid}
}

// BentSpec builds a one-entry bent-arrow specification.
func BentSpec(colour string, grid [][]string) arrowspec.Specification {
	return arrowspec.Specification{Type: arrowspec.TypeBent, Colour: colour, Grid: grid}
}

// SpecFile writes a specification document into a fresh temp directory
// and returns its path. The file is cleaned up with the test.
func SpecFile(t *testing.T, doc string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.json")
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

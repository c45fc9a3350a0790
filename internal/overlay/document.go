// Package overlay renders compiled shape groups into the cosmetic
// overlay JSON documents the puzzle editor imports, and writes them to
// an output directory laid out per colour.
package overlay

import (
	"encoding/json"
	"fmt"
	"regexp"

	"github.com/rich-27/sudoku-maker-arrow-generator/internal/arrows"
	"github.com/rich-27/sudoku-maker-arrow-generator/internal/arrowspec"
	"github.com/rich-27/sudoku-maker-arrow-generator/internal/compile"
	"github.com/rich-27/sudoku-maker-arrow-generator/internal/geom"
)

// Style is the shared stroke styling of one document. Field names
// follow the overlay schema, which spells color without the u.
type Style struct {
	Thickness float64 `json:"thickness"`
	Color     string  `json:"color"`
}

// Document is one overlay file: waypoint runs sharing one style.
type Document struct {
	Lines [][]geom.Point `json:"lines"`
	Style Style          `json:"style"`
}

// File pairs a document with its place in the output layout: the
// colour directory and the file name inside it.
type File struct {
	Colour string
	Name   string
	Doc    Document
}

// Output file names. The numeric prefixes make the body lines sort,
// and so import, ahead of the arrowheads laid over them.
const (
	SmallFile     = "arrows.json"
	BentLinesFile = "1-lines.json"
	BentHeadsFile = "2-arrows.json"
)

// Files lays a compiled result out as overlay files: one per small
// group, a line/head pair per bent group, keeping the compiler's group
// order.
func Files(res *compile.Result) []File {
	var out []File
	for _, g := range res.Groups {
		switch g.Type {
		case arrowspec.TypeSmall:
			out = append(out, File{
				Colour: g.Colour,
				Name:   SmallFile,
				Doc:    document(g.Colour, arrows.SmallThickness, g.Lines),
			})
		case arrowspec.TypeBent:
			out = append(out,
				File{
					Colour: g.Colour,
					Name:   BentLinesFile,
					Doc:    document(g.Colour, arrows.BentLineThickness, g.Lines),
				},
				File{
					Colour: g.Colour,
					Name:   BentHeadsFile,
					Doc:    document(g.Colour, arrows.ArrowheadThickness, g.Heads),
				},
			)
		}
	}
	return out
}

func document(colour string, thickness float64, shapes []arrows.Shape) Document {
	lines := make([][]geom.Point, len(shapes))
	for i, s := range shapes {
		lines[i] = s.Points
	}
	return Document{
		Lines: lines,
		Style: Style{Thickness: thickness, Color: colour},
	}
}

// pointRe matches an indented point object so Encode can fold it back
// onto one line.
var pointRe = regexp.MustCompile(`\{\s+"x": ([0-9.eE+-]+),\s+"y": ([0-9.eE+-]+)\s+\}`)

// Encode marshals a document with two-space indentation, then folds
// each point object onto a single line. That keeps one waypoint per
// line, which is how the hand-maintained overlay files are formatted.
func Encode(doc Document) ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("overlay: encode: %w", err)
	}
	return pointRe.ReplaceAll(data, []byte(`{ "x": $1, "y": $2 }`)), nil
}

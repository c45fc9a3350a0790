package mcpserver

// NotationGuide describes the arrow specification format that MCP
// consumers must follow when calling compile_arrows.
const NotationGuide = `# Arrow Notation Guide

The compiler takes a JSON array of specification objects and produces
cosmetic-overlay documents for the puzzle editor.

## Specification object

` + "```" + `json
[
  {
    "type": "small",
    "colour": "#123456789",
    "grid": [
      ["q", "", "w:d"],
      ["",  "", ""]
    ]
  }
]
` + "```" + `

- **type** is ` + "`" + `small` + "`" + ` or ` + "`" + `bent` + "`" + `.
- **colour** is an opaque token; it becomes the output directory name
  and the style colour, verbatim.
- **grid** mirrors the puzzle grid. Row index is y, column index is x.
  An empty string means no arrows in that cell.

## Labels

Labels mirror the qwerty cluster laid over one cell:

	q w e
	a s d
	z x c

Each outer label is both a point on the cell boundary and the compass
direction away from the centre through that point. The centre label
` + "`" + `s` + "`" + ` is reserved and rejected.

## Small arrows

Each cell holds any number of specifiers written back to back:

- ` + "`" + `q` + "`" + ` one-letter shorthand: an arrow from the cell centre out to
  the label's own boundary point.
- ` + "`" + `q:w` + "`" + ` explicit pair: anchor at position ` + "`" + `q` + "`" + `, pointing in
  direction ` + "`" + `w` + "`" + `. Arrows that would leave the cell are pinned with
  their tip at the anchor instead.
- ` + "`" + `qw` + "`" + ` is two shorthand arrows in one cell.

## Bent arrows

Each non-empty cell holds exactly one label path:

- ` + "`" + `ew` + "`" + ` two labels: tail, then tip; the bend sits on the tail.
- ` + "`" + `ecd` + "`" + ` three labels: tail, bend, tip.

Only these tail/tip pairings are legal, in either order:

	e:w  e:d  c:d  c:x  z:x  z:a  q:a  q:w

Each bent arrow yields a body line and a separate arrowhead segment in
matching output files.

## Output

Per colour directory: small arrows land in ` + "`" + `arrows.json` + "`" + `; bent
arrows land in ` + "`" + `1-lines.json` + "`" + ` (bodies) and ` + "`" + `2-arrows.json` + "`" + `
(heads), index-aligned. Every document is ` + "`" + `{"lines": [...], "style":
{"thickness": ..., "color": ...}}` + "`" + ` with coordinates in grid units.
`

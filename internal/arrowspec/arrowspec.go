// Package arrowspec models the arrow specification documents the
// generator consumes: a JSON array of per-colour arrow grids.
package arrowspec

import (
	"encoding/json"
	"fmt"
	"os"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Arrow types a specification may declare.
const (
	TypeSmall = "small"
	TypeBent  = "bent"
)

// Specification describes one batch of same-styled arrows: the arrow
// type, the colour they render in, and a grid of per-cell notation.
// Empty cells carry no arrows. The colour is an opaque token that
// reappears verbatim in the output layout.
type Specification struct {
	Type   string     `json:"type"`
	Colour string     `json:"colour"`
	Grid   [][]string `json:"grid"`
}

// Validate checks the structural contract. Cell notation is not
// touched here; the compiler reports notation problems with their
// grid coordinates.
func (s *Specification) Validate() error {
	return validation.ValidateStruct(s,
		validation.Field(&s.Type, validation.Required, validation.In(TypeSmall, TypeBent)),
		validation.Field(&s.Colour, validation.Required),
		validation.Field(&s.Grid, validation.Required),
	)
}

// Load reads and validates a specification file.
func Load(path string) ([]Specification, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("arrowspec: read %s: %w", path, err)
	}
	specs, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("arrowspec: %s: %w", path, err)
	}
	return specs, nil
}

// Decode parses a specification document and validates every entry.
func Decode(data []byte) ([]Specification, error) {
	var specs []Specification
	if err := json.Unmarshal(data, &specs); err != nil {
		return nil, fmt.Errorf("parse specifications: %w", err)
	}
	for i := range specs {
		if err := specs[i].Validate(); err != nil {
			return nil, fmt.Errorf("specification %d: %w", i, err)
		}
	}
	return specs, nil
}

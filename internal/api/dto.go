package api

import (
	"time"

	"github.com/rich-27/sudoku-maker-arrow-generator/internal/overlay"
)

// GroupSummary describes one compiled output group in a listing.
type GroupSummary struct {
	Type   string   `json:"type" example:"bent" validate:"required"`
	Colour string   `json:"colour" example:"#abcdefabc" validate:"required"`
	Arrows int      `json:"arrows" example:"4" validate:"required"`
	Files  []string `json:"files" validate:"required"`
}

// OverviewResponse is the GET /overlays payload.
type OverviewResponse struct {
	Status    string         `json:"status" example:"ok" validate:"required"`
	Error     string         `json:"error,omitempty"`
	UpdatedAt time.Time      `json:"updated_at"`
	Groups    []GroupSummary `json:"groups" validate:"required"`
}

// Document is the single-file response type (aliased from the overlay
// layer, so the payload matches the on-disk document byte for byte
// after encoding).
type Document = overlay.Document

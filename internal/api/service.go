package api

import (
	"sync"
	"time"

	"github.com/rich-27/sudoku-maker-arrow-generator/internal/arrowspec"
	"github.com/rich-27/sudoku-maker-arrow-generator/internal/compile"
	"github.com/rich-27/sudoku-maker-arrow-generator/internal/overlay"
)

// Service hands the preview handlers the most recent compile outcome.
// The watcher goroutine updates it, request handlers read it; a single
// RWMutex guards the snapshot.
type Service struct {
	mu        sync.RWMutex
	groups    []GroupSummary
	files     []overlay.File
	lastError string
	updatedAt time.Time
}

// NewService creates an empty service. Until the first update the
// overview reports no groups.
func NewService() *Service {
	return &Service{}
}

// Update replaces the snapshot with a fresh compile outcome and clears
// any recorded failure.
func (s *Service) Update(res *compile.Result, files []overlay.File) {
	groups := summarize(res)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.groups = groups
	s.files = files
	s.lastError = ""
	s.updatedAt = time.Now().UTC()
}

// Fail records a compile failure. The previous snapshot stays servable.
func (s *Service) Fail(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastError = err.Error()
	s.updatedAt = time.Now().UTC()
}

// Overview returns the current listing.
func (s *Service) Overview() OverviewResponse {
	s.mu.RLock()
	defer s.mu.RUnlock()

	resp := OverviewResponse{
		Status:    "ok",
		UpdatedAt: s.updatedAt,
		Groups:    append([]GroupSummary{}, s.groups...),
	}
	if s.lastError != "" {
		resp.Status = "failed"
		resp.Error = s.lastError
	}
	return resp
}

// Document looks up one overlay document by colour directory and file
// name.
func (s *Service) Document(colour, name string) (overlay.Document, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, f := range s.files {
		if f.Colour == colour && f.Name == name {
			return f.Doc, true
		}
	}
	return overlay.Document{}, false
}

func summarize(res *compile.Result) []GroupSummary {
	out := make([]GroupSummary, 0, len(res.Groups))
	for _, g := range res.Groups {
		gs := GroupSummary{Type: g.Type, Colour: g.Colour}
		switch g.Type {
		case arrowspec.TypeSmall:
			gs.Arrows = len(g.Lines)
			gs.Files = []string{overlay.SmallFile}
		case arrowspec.TypeBent:
			gs.Arrows = len(g.Heads)
			gs.Files = []string{overlay.BentLinesFile, overlay.BentHeadsFile}
		}
		out = append(out, gs)
	}
	return out
}

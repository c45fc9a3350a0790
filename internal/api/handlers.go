package api

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
)

// Handler holds API route handlers.
type Handler struct {
	svc *Service
}

// NewHandler creates a new Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// param returns a decoded chi URL parameter. Colour tokens usually
// start with '#', so clients send them percent-encoded (%23fff).
func param(r *http.Request, name string) string {
	raw := chi.URLParam(r, name)
	decoded, err := url.PathUnescape(raw)
	if err != nil {
		return raw
	}
	return decoded
}

// ListOverlays handles GET /api/overlays.
//
//	@Summary		List compiled overlay groups and their files
//	@Tags			overlays
//	@Produce		json
//	@Success		200	{object}	OverviewResponse
//	@Security		BearerAuth
//	@Router			/overlays [get]
func (h *Handler) ListOverlays(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Overview())
}

// GetOverlay handles GET /api/overlays/{colour}/{file}.
//
//	@Summary		Get one compiled overlay document
//	@Tags			overlays
//	@Produce		json
//	@Param			colour	path		string	true	"Colour token (percent-encoded)"
//	@Param			file	path		string	true	"Overlay file name"
//	@Success		200		{object}	Document
//	@Failure		404		{object}	errResponse
//	@Security		BearerAuth
//	@Router			/overlays/{colour}/{file} [get]
func (h *Handler) GetOverlay(w http.ResponseWriter, r *http.Request) {
	colour := param(r, "colour")
	name := param(r, "file")

	doc, ok := h.svc.Document(colour, name)
	if !ok {
		writeJSON(w, http.StatusNotFound, errorBody("overlay not found"))
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/lmdrew96/FeyForge-sub001/internal/domain"
	"github.com/lmdrew96/FeyForge-sub001/internal/service/location"
)

type locationService interface {
	List(ctx context.Context, campaignID string) ([]domain.Location, error)
	Create(ctx context.Context, input location.CreateInput) (domain.Location, error)
	Update(ctx context.Context, input location.UpdateInput) (domain.Location, error)
	ToggleVisited(ctx context.Context, id string) (domain.Location, error)
	Delete(ctx context.Context, id string) error
}

// LocationHandler serves /api/locations.
type LocationHandler struct {
	svc locationService
	log *slog.Logger
}

func NewLocationHandler(svc locationService, logger *slog.Logger) *LocationHandler {
	return &LocationHandler{svc: svc, log: logger.With("handler", "location")}
}

// List handles GET /api/locations?campaignId=.
func (h *LocationHandler) List(w http.ResponseWriter, r *http.Request) {
	out, err := h.svc.List(r.Context(), r.URL.Query().Get("campaignId"))
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *LocationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in location.CreateInput
	if !decode(w, r, &in) {
		return
	}
	l, err := h.svc.Create(r.Context(), in)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, l)
}

func (h *LocationHandler) Update(w http.ResponseWriter, r *http.Request) {
	var patch domain.LocationPatch
	if !decode(w, r, &patch) {
		return
	}
	l, err := h.svc.Update(r.Context(), location.UpdateInput{ID: r.PathValue("id"), Patch: patch})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, l)
}

// ToggleVisited handles POST /api/locations/{id}/toggle-visited.
func (h *LocationHandler) ToggleVisited(w http.ResponseWriter, r *http.Request) {
	l, err := h.svc.ToggleVisited(r.Context(), r.PathValue("id"))
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, l)
}

func (h *LocationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), r.PathValue("id")); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

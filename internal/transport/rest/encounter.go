package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/lmdrew96/FeyForge-sub001/internal/domain"
	"github.com/lmdrew96/FeyForge-sub001/internal/service/encounter"
)

type encounterService interface {
	List(ctx context.Context, campaignID string) ([]domain.SavedEncounter, error)
	Get(ctx context.Context, id string) (domain.SavedEncounter, error)
	Save(ctx context.Context, input encounter.SaveInput) (domain.SavedEncounter, error)
	Rename(ctx context.Context, input encounter.RenameInput) (domain.SavedEncounter, error)
	Delete(ctx context.Context, id string) error
}

// EncounterHandler serves /api/encounters.
type EncounterHandler struct {
	svc encounterService
	log *slog.Logger
}

func NewEncounterHandler(svc encounterService, logger *slog.Logger) *EncounterHandler {
	return &EncounterHandler{svc: svc, log: logger.With("handler", "encounter")}
}

// List handles GET /api/encounters?campaignId=.
func (h *EncounterHandler) List(w http.ResponseWriter, r *http.Request) {
	out, err := h.svc.List(r.Context(), r.URL.Query().Get("campaignId"))
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *EncounterHandler) Get(w http.ResponseWriter, r *http.Request) {
	e, err := h.svc.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, e)
}

// Save handles POST /api/encounters with a full combatant list.
func (h *EncounterHandler) Save(w http.ResponseWriter, r *http.Request) {
	var in encounter.SaveInput
	if !decode(w, r, &in) {
		return
	}
	e, err := h.svc.Save(r.Context(), in)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, e)
}

// Rename handles PATCH /api/encounters/{id}.
func (h *EncounterHandler) Rename(w http.ResponseWriter, r *http.Request) {
	var in encounter.RenameInput
	if !decode(w, r, &in) {
		return
	}
	in.ID = r.PathValue("id")
	e, err := h.svc.Rename(r.Context(), in)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, e)
}

func (h *EncounterHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), r.PathValue("id")); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

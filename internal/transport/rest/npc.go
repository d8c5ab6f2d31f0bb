package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/lmdrew96/FeyForge-sub001/internal/domain"
	"github.com/lmdrew96/FeyForge-sub001/internal/service/npc"
)

type npcService interface {
	List(ctx context.Context, campaignID string) ([]domain.NPC, error)
	Create(ctx context.Context, input npc.CreateInput) (domain.NPC, error)
	Update(ctx context.Context, input npc.UpdateInput) (domain.NPC, error)
	Delete(ctx context.Context, id string) error
}

// NPCHandler serves /api/npcs.
type NPCHandler struct {
	svc npcService
	log *slog.Logger
}

func NewNPCHandler(svc npcService, logger *slog.Logger) *NPCHandler {
	return &NPCHandler{svc: svc, log: logger.With("handler", "npc")}
}

// List handles GET /api/npcs?campaignId=.
func (h *NPCHandler) List(w http.ResponseWriter, r *http.Request) {
	out, err := h.svc.List(r.Context(), r.URL.Query().Get("campaignId"))
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *NPCHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in npc.CreateInput
	if !decode(w, r, &in) {
		return
	}
	n, err := h.svc.Create(r.Context(), in)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, n)
}

func (h *NPCHandler) Update(w http.ResponseWriter, r *http.Request) {
	var patch domain.NPCPatch
	if !decode(w, r, &patch) {
		return
	}
	n, err := h.svc.Update(r.Context(), npc.UpdateInput{ID: r.PathValue("id"), Patch: patch})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, n)
}

func (h *NPCHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), r.PathValue("id")); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

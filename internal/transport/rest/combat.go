package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/lmdrew96/FeyForge-sub001/internal/domain"
	"github.com/lmdrew96/FeyForge-sub001/internal/service/combat"
	tracker "github.com/lmdrew96/FeyForge-sub001/internal/store/combat"
)

type combatService interface {
	State(ctx context.Context) (tracker.State, error)
	Add(ctx context.Context, input combat.AddInput) (domain.Combatant, error)
	Update(ctx context.Context, id string, patch tracker.Patch) (domain.Combatant, error)
	Damage(ctx context.Context, id string, amount int) (domain.Combatant, error)
	Heal(ctx context.Context, id string, amount int) (domain.Combatant, error)
	Remove(ctx context.Context, id string) (tracker.State, error)
	Reorder(ctx context.Context, id string, index int) (tracker.State, error)
	Apply(ctx context.Context, step combat.Step) (tracker.State, error)
	Save(ctx context.Context, input combat.SaveInput) (domain.SavedEncounter, error)
	Load(ctx context.Context, encounterID string) (tracker.State, error)
}

// CombatHandler serves the live initiative tracker under /api/combat.
type CombatHandler struct {
	svc combatService
	log *slog.Logger
}

func NewCombatHandler(svc combatService, logger *slog.Logger) *CombatHandler {
	return &CombatHandler{svc: svc, log: logger.With("handler", "combat")}
}

type amountRequest struct {
	Amount int `json:"amount"`
}

type reorderRequest struct {
	Index int `json:"index"`
}

type loadRequest struct {
	EncounterID string `json:"encounterId"`
}

// State handles GET /api/combat.
func (h *CombatHandler) State(w http.ResponseWriter, r *http.Request) {
	h.respondState(w, r)(h.svc.State(r.Context()))
}

// Add handles POST /api/combat/combatants.
func (h *CombatHandler) Add(w http.ResponseWriter, r *http.Request) {
	var in combat.AddInput
	if !decode(w, r, &in) {
		return
	}
	c, err := h.svc.Add(r.Context(), in)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

// Update handles PATCH /api/combat/combatants/{id}.
func (h *CombatHandler) Update(w http.ResponseWriter, r *http.Request) {
	var patch tracker.Patch
	if !decode(w, r, &patch) {
		return
	}
	h.respondCombatant(w, r)(h.svc.Update(r.Context(), r.PathValue("id"), patch))
}

// Damage handles POST /api/combat/combatants/{id}/damage.
func (h *CombatHandler) Damage(w http.ResponseWriter, r *http.Request) {
	var in amountRequest
	if !decode(w, r, &in) {
		return
	}
	h.respondCombatant(w, r)(h.svc.Damage(r.Context(), r.PathValue("id"), in.Amount))
}

// Heal handles POST /api/combat/combatants/{id}/heal.
func (h *CombatHandler) Heal(w http.ResponseWriter, r *http.Request) {
	var in amountRequest
	if !decode(w, r, &in) {
		return
	}
	h.respondCombatant(w, r)(h.svc.Heal(r.Context(), r.PathValue("id"), in.Amount))
}

// Remove handles DELETE /api/combat/combatants/{id}.
func (h *CombatHandler) Remove(w http.ResponseWriter, r *http.Request) {
	h.respondState(w, r)(h.svc.Remove(r.Context(), r.PathValue("id")))
}

// Reorder handles POST /api/combat/combatants/{id}/reorder.
func (h *CombatHandler) Reorder(w http.ResponseWriter, r *http.Request) {
	var in reorderRequest
	if !decode(w, r, &in) {
		return
	}
	h.respondState(w, r)(h.svc.Reorder(r.Context(), r.PathValue("id"), in.Index))
}

// Step handles POST /api/combat/steps/{step}: sort, clear, next-round,
// prev-round, reset-round, next-turn or prev-turn.
func (h *CombatHandler) Step(w http.ResponseWriter, r *http.Request) {
	h.respondState(w, r)(h.svc.Apply(r.Context(), combat.Step(r.PathValue("step"))))
}

// Save handles POST /api/combat/save.
func (h *CombatHandler) Save(w http.ResponseWriter, r *http.Request) {
	var in combat.SaveInput
	if !decode(w, r, &in) {
		return
	}
	enc, err := h.svc.Save(r.Context(), in)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, enc)
}

// Load handles POST /api/combat/load.
func (h *CombatHandler) Load(w http.ResponseWriter, r *http.Request) {
	var in loadRequest
	if !decode(w, r, &in) {
		return
	}
	h.respondState(w, r)(h.svc.Load(r.Context(), in.EncounterID))
}

func (h *CombatHandler) respondState(w http.ResponseWriter, r *http.Request) func(tracker.State, error) {
	return func(st tracker.State, err error) {
		if err != nil {
			respondError(w, r, h.log, err)
			return
		}
		writeJSON(w, http.StatusOK, st)
	}
}

func (h *CombatHandler) respondCombatant(w http.ResponseWriter, r *http.Request) func(domain.Combatant, error) {
	return func(c domain.Combatant, err error) {
		if err != nil {
			respondError(w, r, h.log, err)
			return
		}
		writeJSON(w, http.StatusOK, c)
	}
}

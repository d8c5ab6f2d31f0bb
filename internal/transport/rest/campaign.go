package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/lmdrew96/FeyForge-sub001/internal/domain"
	"github.com/lmdrew96/FeyForge-sub001/internal/service/campaign"
	"github.com/lmdrew96/FeyForge-sub001/internal/transport/dataloader"
)

type campaignService interface {
	List(ctx context.Context) ([]domain.Campaign, error)
	Get(ctx context.Context, id string) (domain.Campaign, error)
	Create(ctx context.Context, input campaign.CreateInput) (domain.Campaign, error)
	Update(ctx context.Context, input campaign.UpdateInput) (domain.Campaign, error)
	Delete(ctx context.Context, id string) error
}

// CampaignHandler serves /api/campaigns.
type CampaignHandler struct {
	svc campaignService
	log *slog.Logger
}

func NewCampaignHandler(svc campaignService, logger *slog.Logger) *CampaignHandler {
	return &CampaignHandler{svc: svc, log: logger.With("handler", "campaign")}
}

func (h *CampaignHandler) List(w http.ResponseWriter, r *http.Request) {
	out, err := h.svc.List(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *CampaignHandler) Get(w http.ResponseWriter, r *http.Request) {
	c, err := h.svc.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *CampaignHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in campaign.CreateInput
	if !decode(w, r, &in) {
		return
	}
	c, err := h.svc.Create(r.Context(), in)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

func (h *CampaignHandler) Update(w http.ResponseWriter, r *http.Request) {
	var patch domain.CampaignPatch
	if !decode(w, r, &patch) {
		return
	}
	c, err := h.svc.Update(r.Context(), campaign.UpdateInput{ID: r.PathValue("id"), Patch: patch})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *CampaignHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), r.PathValue("id")); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// CampaignOverview is one campaign with its record counts.
type CampaignOverview struct {
	domain.Campaign
	NPCCount      int `json:"npcCount"`
	LocationCount int `json:"locationCount"`
}

// Overview handles GET /api/campaigns/overview. The per-campaign counts are
// collected through the request's loaders so each kind costs one query.
func (h *CampaignHandler) Overview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	campaigns, err := h.svc.List(ctx)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	loaders := dataloader.FromContext(ctx)
	type pending struct {
		npcs, locations func() (int, error)
	}
	thunks := make([]pending, len(campaigns))
	for i, c := range campaigns {
		thunks[i] = pending{
			npcs:      loaders.NPCCountByCampaign.Load(ctx, c.ID),
			locations: loaders.LocationCountByCampaign.Load(ctx, c.ID),
		}
	}

	out := make([]CampaignOverview, len(campaigns))
	for i, c := range campaigns {
		npcs, err := thunks[i].npcs()
		if err != nil {
			respondError(w, r, h.log, err)
			return
		}
		locations, err := thunks[i].locations()
		if err != nil {
			respondError(w, r, h.log, err)
			return
		}
		out[i] = CampaignOverview{Campaign: c, NPCCount: npcs, LocationCount: locations}
	}
	writeJSON(w, http.StatusOK, out)
}

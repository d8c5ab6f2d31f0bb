package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/lmdrew96/FeyForge-sub001/internal/domain"
	"github.com/lmdrew96/FeyForge-sub001/internal/service/conversation"
)

type conversationService interface {
	List(ctx context.Context, campaignID string) ([]domain.Conversation, error)
	Get(ctx context.Context, id string) (domain.Conversation, error)
	Create(ctx context.Context, input conversation.CreateInput) (domain.Conversation, error)
	Rename(ctx context.Context, input conversation.RenameInput) (domain.Conversation, error)
	AppendMessage(ctx context.Context, input conversation.AppendMessageInput) (domain.Conversation, error)
	Delete(ctx context.Context, id string) error
}

// ConversationHandler serves /api/conversations.
type ConversationHandler struct {
	svc conversationService
	log *slog.Logger
}

func NewConversationHandler(svc conversationService, logger *slog.Logger) *ConversationHandler {
	return &ConversationHandler{svc: svc, log: logger.With("handler", "conversation")}
}

// List handles GET /api/conversations?campaignId=.
func (h *ConversationHandler) List(w http.ResponseWriter, r *http.Request) {
	out, err := h.svc.List(r.Context(), r.URL.Query().Get("campaignId"))
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *ConversationHandler) Get(w http.ResponseWriter, r *http.Request) {
	c, err := h.svc.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *ConversationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in conversation.CreateInput
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

// Rename handles PATCH /api/conversations/{id}.
func (h *ConversationHandler) Rename(w http.ResponseWriter, r *http.Request) {
	var in conversation.RenameInput
	if !decode(w, r, &in) {
		return
	}
	in.ID = r.PathValue("id")
	c, err := h.svc.Rename(r.Context(), in)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// AppendMessage handles POST /api/conversations/{id}/messages.
func (h *ConversationHandler) AppendMessage(w http.ResponseWriter, r *http.Request) {
	var in conversation.AppendMessageInput
	if !decode(w, r, &in) {
		return
	}
	in.ConversationID = r.PathValue("id")
	c, err := h.svc.AppendMessage(r.Context(), in)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *ConversationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), r.PathValue("id")); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

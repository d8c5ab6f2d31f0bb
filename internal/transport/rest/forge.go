package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/lmdrew96/FeyForge-sub001/internal/domain"
	"github.com/lmdrew96/FeyForge-sub001/internal/service/forge"
)

type forgeService interface {
	Backstory(ctx context.Context, input forge.BackstoryInput) (string, error)
	NPC(ctx context.Context, input forge.NPCInput) (forge.GeneratedNPC, error)
	Loot(ctx context.Context, input forge.LootInput) (forge.Loot, error)
	Chat(ctx context.Context, input forge.ChatInput, emit func(delta string) error) (forge.ChatResult, error)
}

// ForgeHandler serves the AI generation routes under /api/forge.
type ForgeHandler struct {
	svc forgeService
	log *slog.Logger
}

func NewForgeHandler(svc forgeService, logger *slog.Logger) *ForgeHandler {
	return &ForgeHandler{svc: svc, log: logger.With("handler", "forge")}
}

// Backstory handles POST /api/forge/backstory.
func (h *ForgeHandler) Backstory(w http.ResponseWriter, r *http.Request) {
	var in forge.BackstoryInput
	if !decode(w, r, &in) {
		return
	}
	text, err := h.svc.Backstory(r.Context(), in)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"backstory": text})
}

// NPC handles POST /api/forge/npc.
func (h *ForgeHandler) NPC(w http.ResponseWriter, r *http.Request) {
	var in forge.NPCInput
	if !decode(w, r, &in) {
		return
	}
	n, err := h.svc.NPC(r.Context(), in)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, n)
}

// Loot handles POST /api/forge/loot.
func (h *ForgeHandler) Loot(w http.ResponseWriter, r *http.Request) {
	var in forge.LootInput
	if !decode(w, r, &in) {
		return
	}
	l, err := h.svc.Loot(r.Context(), in)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, l)
}

// Chat handles POST /api/forge/chat as a Server-Sent Events stream of
// "delta" events closed by one "done", "aborted" or "error" event. Errors
// raised before the first delta are plain JSON responses. Closing the
// connection cancels the request context and with it the upstream stream.
func (h *ForgeHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var in forge.ChatInput
	if !decode(w, r, &in) {
		return
	}

	sse := &sseWriter{w: w}
	result, err := h.svc.Chat(r.Context(), in, func(delta string) error {
		return sse.event("delta", map[string]string{"text": delta})
	})

	switch {
	case err == nil:
		if !sse.started {
			sse.start()
		}
		_ = sse.event("done", result)
	case errors.Is(err, domain.ErrStreamAborted):
		// The client is gone; the event only reaches a still-open proxy.
		_ = sse.event("aborted", result)
		h.log.InfoContext(r.Context(), "chat stream aborted", slog.Int("partial_len", len(result.Reply)))
	case !sse.started:
		respondError(w, r, h.log, err)
	default:
		status := http.StatusBadGateway
		if errors.Is(err, domain.ErrGenerationTimeout) {
			status = http.StatusGatewayTimeout
		}
		h.log.WarnContext(r.Context(), "chat stream failed", slog.String("error", err.Error()))
		_ = sse.event("error", errorBody{Error: err.Error(), Code: codeFor(status)})
	}
}

// sseWriter writes Server-Sent Events, sending the stream headers with the
// first event.
type sseWriter struct {
	w       http.ResponseWriter
	started bool
}

func (s *sseWriter) start() {
	h := s.w.Header()
	h.Set("Content-Type", "text/event-stream")
	h.Set("Cache-Control", "no-cache")
	h.Set("Connection", "keep-alive")
	h.Set("X-Accel-Buffering", "no")
	s.w.WriteHeader(http.StatusOK)
	s.started = true
}

func (s *sseWriter) event(name string, payload any) error {
	if !s.started {
		s.start()
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode %s event: %w", name, err)
	}
	if _, err := fmt.Fprintf(s.w, "event: %s\ndata: %s\n\n", name, data); err != nil {
		return err
	}
	return http.NewResponseController(s.w).Flush()
}

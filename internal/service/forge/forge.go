package forge

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/lmdrew96/FeyForge-sub001/internal/domain"
	"github.com/lmdrew96/FeyForge-sub001/internal/generation"
	"github.com/lmdrew96/FeyForge-sub001/pkg/ctxutil"
)

// Backstory writes a character backstory.
func (s *Service) Backstory(ctx context.Context, input BackstoryInput) (string, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return "", domain.ErrUnauthenticated
	}
	if err := input.Validate(); err != nil {
		return "", err
	}

	bounded, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	text, err := s.gen.GenerateText(bounded, generation.TextRequest{
		System:    backstorySystem,
		Prompt:    backstoryPrompt(input),
		MaxTokens: s.maxTokens,
	})
	if err = classify(ctx, bounded, err); err != nil {
		s.log.WarnContext(ctx, "backstory generation failed", slog.String("error", err.Error()))
		return "", err
	}

	s.log.InfoContext(ctx, "backstory generated", slog.Duration("took", time.Since(start)))
	return strings.TrimSpace(text), nil
}

// NPC invents an NPC matching the concept.
func (s *Service) NPC(ctx context.Context, input NPCInput) (GeneratedNPC, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return GeneratedNPC{}, domain.ErrUnauthenticated
	}
	if err := input.Validate(); err != nil {
		return GeneratedNPC{}, err
	}

	var npc GeneratedNPC
	if err := s.structured(ctx, "npc", npcSystem, npcPrompt(input), npcSchema, &npc); err != nil {
		return GeneratedNPC{}, err
	}
	if !npc.Importance.IsValid() {
		npc.Importance = domain.ImportanceMinor
		if input.Importance != "" {
			npc.Importance = input.Importance
		}
	}
	return npc, nil
}

// Loot rolls a treasure hoard.
func (s *Service) Loot(ctx context.Context, input LootInput) (Loot, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return Loot{}, domain.ErrUnauthenticated
	}
	if err := input.Validate(); err != nil {
		return Loot{}, err
	}

	var loot Loot
	if err := s.structured(ctx, "loot", lootSystem, lootPrompt(input), lootSchema, &loot); err != nil {
		return Loot{}, err
	}
	if loot.Items == nil {
		loot.Items = []LootItem{}
	}
	return loot, nil
}

// structured runs one schema-bound generation and decodes it into dst.
func (s *Service) structured(ctx context.Context, kind, system, prompt string, schema generation.Schema, dst any) error {
	bounded, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	raw, err := s.gen.GenerateStructured(bounded, generation.TextRequest{
		System:    system,
		Prompt:    prompt,
		MaxTokens: s.maxTokens,
	}, schema)
	if err = classify(ctx, bounded, err); err != nil {
		s.log.WarnContext(ctx, "structured generation failed",
			slog.String("kind", kind),
			slog.String("error", err.Error()),
		)
		return err
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrMalformedResponse, kind, err)
	}

	s.log.InfoContext(ctx, "structured generation done",
		slog.String("kind", kind),
		slog.Duration("took", time.Since(start)),
	)
	return nil
}

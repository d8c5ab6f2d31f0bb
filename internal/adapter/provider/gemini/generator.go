// Package gemini implements generation.Generator on the Google Gen AI SDK.
package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"google.golang.org/genai"

	"github.com/lmdrew96/FeyForge-sub001/internal/domain"
	"github.com/lmdrew96/FeyForge-sub001/internal/generation"
)

const defaultMaxTokens = 2048

// Generator calls Gemini models.
type Generator struct {
	client    *genai.Client
	model     string
	maxTokens int
	log       *slog.Logger
}

var _ generation.Generator = (*Generator)(nil)

// NewGenerator creates a Generator with the default Gemini API endpoint.
func NewGenerator(ctx context.Context, logger *slog.Logger, apiKey, model string, maxTokens int) (*Generator, error) {
	return newGenerator(ctx, logger, model, maxTokens, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
}

// NewGeneratorWithURL creates a Generator with a custom base URL (for testing).
func NewGeneratorWithURL(ctx context.Context, baseURL string, logger *slog.Logger, model string) (*Generator, error) {
	return newGenerator(ctx, logger, model, 0, &genai.ClientConfig{
		APIKey:      "test",
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{BaseURL: baseURL},
	})
}

func newGenerator(ctx context.Context, logger *slog.Logger, model string, maxTokens int, cc *genai.ClientConfig) (*Generator, error) {
	if cc.APIKey == "" {
		return nil, fmt.Errorf("gemini: API key is required")
	}
	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}
	return &Generator{
		client:    client,
		model:     model,
		maxTokens: maxTokens,
		log:       logger.With("adapter", "gemini"),
	}, nil
}

func (g *Generator) config(system string, maxTokens int) *genai.GenerateContentConfig {
	if maxTokens <= 0 {
		maxTokens = g.maxTokens
	}
	cfg := &genai.GenerateContentConfig{MaxOutputTokens: int32(maxTokens)}
	if system != "" {
		cfg.SystemInstruction = genai.NewContentFromText(system, genai.RoleUser)
	}
	return cfg
}

// GenerateText sends one user prompt and returns the response text.
func (g *Generator) GenerateText(ctx context.Context, req generation.TextRequest) (string, error) {
	return g.generate(ctx, req, g.config(req.System, req.MaxTokens))
}

func (g *Generator) generate(ctx context.Context, req generation.TextRequest, cfg *genai.GenerateContentConfig) (string, error) {
	contents := []*genai.Content{genai.NewContentFromText(req.Prompt, genai.RoleUser)}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, cfg)
	if err != nil {
		return "", fmt.Errorf("gemini: generate: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("gemini: %w: empty response", domain.ErrMalformedResponse)
	}
	if resp.UsageMetadata != nil {
		g.log.DebugContext(ctx, "gemini response",
			slog.Int("prompt_tokens", int(resp.UsageMetadata.PromptTokenCount)),
			slog.Int("output_tokens", int(resp.UsageMetadata.CandidatesTokenCount)),
		)
	}
	return text, nil
}

// GenerateStructured asks for a JSON object matching schema, using Gemini's
// JSON response mode.
func (g *Generator) GenerateStructured(ctx context.Context, req generation.TextRequest, schema generation.Schema) (json.RawMessage, error) {
	req = generation.WithSchema(req, schema)
	cfg := g.config(req.System, req.MaxTokens)
	cfg.ResponseMIMEType = "application/json"

	text, err := g.generate(ctx, req, cfg)
	if err != nil {
		return nil, err
	}
	return generation.ExtractJSON(text, schema)
}

// StreamText streams text deltas of the model reply.
func (g *Generator) StreamText(ctx context.Context, req generation.ChatRequest, emit func(string) error) error {
	contents, err := toContents(req.Messages)
	if err != nil {
		return err
	}

	for resp, err := range g.client.Models.GenerateContentStream(ctx, g.model, contents, g.config(req.System, req.MaxTokens)) {
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, ctxErr) {
				return ctxErr
			}
			return fmt.Errorf("gemini: stream: %w", err)
		}
		if text := resp.Text(); text != "" {
			if err := emit(text); err != nil {
				return err
			}
		}
	}
	return ctx.Err()
}

// toContents converts chat history into Gemini contents.
func toContents(history []domain.ChatMessage) ([]*genai.Content, error) {
	if len(history) == 0 {
		return nil, domain.NewValidationError("messages", "required")
	}
	out := make([]*genai.Content, 0, len(history))
	for _, m := range history {
		switch m.Role {
		case domain.ChatRoleUser:
			out = append(out, genai.NewContentFromText(m.Content, genai.RoleUser))
		case domain.ChatRoleAssistant:
			out = append(out, genai.NewContentFromText(m.Content, genai.RoleModel))
		default:
			return nil, domain.NewValidationError("role", fmt.Sprintf("unknown role %q", m.Role))
		}
	}
	return out, nil
}

// Package claude implements generation.Generator on the Anthropic Messages API.
package claude

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/lmdrew96/FeyForge-sub001/internal/domain"
	"github.com/lmdrew96/FeyForge-sub001/internal/generation"
)

const defaultMaxTokens = 2048

// Generator calls Claude models.
type Generator struct {
	client    anthropic.Client
	model     string
	maxTokens int
	log       *slog.Logger
}

var _ generation.Generator = (*Generator)(nil)

// NewGenerator creates a Generator with the default Anthropic endpoint.
func NewGenerator(logger *slog.Logger, apiKey, model string, maxTokens int) *Generator {
	return newGenerator(logger, model, maxTokens, option.WithAPIKey(apiKey))
}

// NewGeneratorWithURL creates a Generator with a custom base URL (for testing).
func NewGeneratorWithURL(baseURL string, logger *slog.Logger, model string) *Generator {
	return newGenerator(logger, model, 0,
		option.WithAPIKey("test"),
		option.WithBaseURL(baseURL),
		option.WithMaxRetries(0),
	)
}

func newGenerator(logger *slog.Logger, model string, maxTokens int, opts ...option.RequestOption) *Generator {
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}
	return &Generator{
		client:    anthropic.NewClient(opts...),
		model:     model,
		maxTokens: maxTokens,
		log:       logger.With("adapter", "claude"),
	}
}

func (g *Generator) params(system string, maxTokens int, msgs []anthropic.MessageParam) anthropic.MessageNewParams {
	if maxTokens <= 0 {
		maxTokens = g.maxTokens
	}
	p := anthropic.MessageNewParams{
		Model:     anthropic.Model(g.model),
		MaxTokens: int64(maxTokens),
		Messages:  msgs,
	}
	if system != "" {
		p.System = []anthropic.TextBlockParam{{Text: system}}
	}
	return p
}

// GenerateText sends one user prompt and returns the concatenated text blocks.
func (g *Generator) GenerateText(ctx context.Context, req generation.TextRequest) (string, error) {
	msg, err := g.client.Messages.New(ctx, g.params(req.System, req.MaxTokens, []anthropic.MessageParam{
		anthropic.NewUserMessage(anthropic.NewTextBlock(req.Prompt)),
	}))
	if err != nil {
		return "", fmt.Errorf("claude: messages: %w", err)
	}

	var b strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			b.WriteString(block.Text)
		}
	}
	if b.Len() == 0 {
		return "", fmt.Errorf("claude: %w: empty response", domain.ErrMalformedResponse)
	}

	g.log.DebugContext(ctx, "claude response",
		slog.Int64("input_tokens", msg.Usage.InputTokens),
		slog.Int64("output_tokens", msg.Usage.OutputTokens),
	)
	return b.String(), nil
}

// GenerateStructured asks for a JSON object matching schema.
func (g *Generator) GenerateStructured(ctx context.Context, req generation.TextRequest, schema generation.Schema) (json.RawMessage, error) {
	text, err := g.GenerateText(ctx, generation.WithSchema(req, schema))
	if err != nil {
		return nil, err
	}
	return generation.ExtractJSON(text, schema)
}

// StreamText streams text deltas of the assistant reply.
func (g *Generator) StreamText(ctx context.Context, req generation.ChatRequest, emit func(string) error) error {
	msgs, err := toMessages(req.Messages)
	if err != nil {
		return err
	}

	stream := g.client.Messages.NewStreaming(ctx, g.params(req.System, req.MaxTokens, msgs))
	defer stream.Close()

	for stream.Next() {
		event := stream.Current()
		ev, ok := event.AsAny().(anthropic.ContentBlockDeltaEvent)
		if !ok {
			continue
		}
		delta, ok := ev.Delta.AsAny().(anthropic.TextDelta)
		if !ok || delta.Text == "" {
			continue
		}
		if err := emit(delta.Text); err != nil {
			return err
		}
	}
	if err := stream.Err(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, ctxErr) {
			return ctxErr
		}
		return fmt.Errorf("claude: stream: %w", err)
	}
	return nil
}

// toMessages converts chat history into Messages API turns.
func toMessages(history []domain.ChatMessage) ([]anthropic.MessageParam, error) {
	if len(history) == 0 {
		return nil, domain.NewValidationError("messages", "required")
	}
	out := make([]anthropic.MessageParam, 0, len(history))
	for _, m := range history {
		block := anthropic.NewTextBlock(m.Content)
		switch m.Role {
		case domain.ChatRoleUser:
			out = append(out, anthropic.NewUserMessage(block))
		case domain.ChatRoleAssistant:
			out = append(out, anthropic.NewAssistantMessage(block))
		default:
			return nil, domain.NewValidationError("role", fmt.Sprintf("unknown role %q", m.Role))
		}
	}
	return out, nil
}

// Package generation defines the text-generation boundary used by the forge
// service. Providers live under internal/adapter/provider; Fake serves tests.
package generation

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/lmdrew96/FeyForge-sub001/internal/domain"
)

// TextRequest is a single-prompt generation request.
type TextRequest struct {
	System    string
	Prompt    string
	MaxTokens int
}

// ChatRequest is a multi-turn generation request. Messages are oldest first
// and the last one is normally from the user.
type ChatRequest struct {
	System    string
	Messages  []domain.ChatMessage
	MaxTokens int
}

// Field is one top-level key of a structured response.
type Field struct {
	Name        string
	Description string
	Required    bool
}

// Schema describes the JSON object GenerateStructured must return.
type Schema struct {
	Name   string
	Fields []Field
}

// Instruction renders the schema as a prompt suffix.
func (s Schema) Instruction() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Output ONLY a valid JSON object describing a %s with these keys:\n", s.Name)
	for _, f := range s.Fields {
		req := "optional"
		if f.Required {
			req = "required"
		}
		fmt.Fprintf(&b, "- %q (%s): %s\n", f.Name, req, f.Description)
	}
	b.WriteString("No markdown, no explanations.")
	return b.String()
}

// Generator produces text from a model.
type Generator interface {
	GenerateText(ctx context.Context, req TextRequest) (string, error)
	GenerateStructured(ctx context.Context, req TextRequest, schema Schema) (json.RawMessage, error)
	// StreamText calls emit for every text delta in order. A non-nil error
	// from emit stops the stream and is returned.
	StreamText(ctx context.Context, req ChatRequest, emit func(delta string) error) error
}

// WithSchema returns req with the schema instruction appended to its system prompt.
func WithSchema(req TextRequest, schema Schema) TextRequest {
	if req.System == "" {
		req.System = schema.Instruction()
	} else {
		req.System = req.System + "\n\n" + schema.Instruction()
	}
	return req
}

// ExtractJSON finds the JSON object in a model response and checks that every
// required key of schema is present. Failures wrap domain.ErrMalformedResponse.
func ExtractJSON(text string, schema Schema) (json.RawMessage, error) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end <= start {
		return nil, fmt.Errorf("%w: no JSON object found", domain.ErrMalformedResponse)
	}
	raw := []byte(text[start : end+1])

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedResponse, err)
	}
	for _, f := range schema.Fields {
		if !f.Required {
			continue
		}
		v, ok := obj[f.Name]
		if !ok || string(v) == "null" {
			return nil, fmt.Errorf("%w: missing %q", domain.ErrMalformedResponse, f.Name)
		}
	}
	return json.RawMessage(raw), nil
}

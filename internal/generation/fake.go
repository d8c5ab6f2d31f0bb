package generation

import (
	"context"
	"encoding/json"
	"sync"
)

// Fake is a scripted Generator. Texts are returned by GenerateText and
// GenerateStructured in order; the last one repeats. Chunks are streamed by
// StreamText. If Gate is non-nil every chunk waits for a receive on it, which
// lets tests cancel a stream midway.
type Fake struct {
	Texts  []string
	Chunks []string
	Err    error
	Gate   chan struct{}

	mu       sync.Mutex
	calls    int
	requests []TextRequest
	chats    []ChatRequest
}

var _ Generator = (*Fake)(nil)

func (f *Fake) next(req TextRequest) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, req)
	if f.Err != nil {
		return "", f.Err
	}
	if len(f.Texts) == 0 {
		return "", nil
	}
	i := min(f.calls, len(f.Texts)-1)
	f.calls++
	return f.Texts[i], nil
}

// GenerateText returns the next scripted text.
func (f *Fake) GenerateText(ctx context.Context, req TextRequest) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return f.next(req)
}

// GenerateStructured returns the next scripted text run through ExtractJSON.
func (f *Fake) GenerateStructured(ctx context.Context, req TextRequest, schema Schema) (json.RawMessage, error) {
	text, err := f.GenerateText(ctx, WithSchema(req, schema))
	if err != nil {
		return nil, err
	}
	return ExtractJSON(text, schema)
}

// StreamText emits Chunks one by one until done or ctx is cancelled.
func (f *Fake) StreamText(ctx context.Context, req ChatRequest, emit func(string) error) error {
	f.mu.Lock()
	f.chats = append(f.chats, req)
	err := f.Err
	f.mu.Unlock()
	if err != nil {
		return err
	}

	for _, c := range f.Chunks {
		if f.Gate != nil {
			select {
			case <-f.Gate:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := emit(c); err != nil {
			return err
		}
	}
	return nil
}

// Requests returns the text requests seen so far.
func (f *Fake) Requests() []TextRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]TextRequest(nil), f.requests...)
}

// Chats returns the chat requests seen so far.
func (f *Fake) Chats() []ChatRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]ChatRequest(nil), f.chats...)
}

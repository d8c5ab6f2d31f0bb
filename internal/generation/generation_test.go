package generation

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lmdrew96/FeyForge-sub001/internal/domain"
)

var npcSchema = Schema{
	Name: "NPC",
	Fields: []Field{
		{Name: "name", Description: "full name", Required: true},
		{Name: "role", Description: "role in the story", Required: true},
		{Name: "faction", Description: "faction, if any"},
	},
}

func TestExtractJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		text    string
		wantErr bool
		want    string
	}{
		{name: "bare object", text: `{"name":"Volo","role":"author"}`, want: `{"name":"Volo","role":"author"}`},
		{name: "fenced", text: "```json\n{\"name\":\"Volo\",\"role\":\"author\"}\n```", want: `{"name":"Volo","role":"author"}`},
		{name: "prose around", text: `Sure! {"name":"Volo","role":"author","faction":null} Enjoy.`, want: `{"name":"Volo","role":"author","faction":null}`},
		{name: "no object", text: "I cannot do that.", wantErr: true},
		{name: "invalid json", text: `{"name": Volo}`, wantErr: true},
		{name: "missing required", text: `{"name":"Volo"}`, wantErr: true},
		{name: "null required", text: `{"name":"Volo","role":null}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ExtractJSON(tt.text, npcSchema)
			if tt.wantErr {
				require.ErrorIs(t, err, domain.ErrMalformedResponse)
				return
			}
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(got))
		})
	}
}

func TestSchema_Instruction(t *testing.T) {
	t.Parallel()

	got := npcSchema.Instruction()
	assert.Contains(t, got, `"name" (required)`)
	assert.Contains(t, got, `"faction" (optional)`)

	req := WithSchema(TextRequest{System: "You are a DM helper."}, npcSchema)
	assert.True(t, strings.HasPrefix(req.System, "You are a DM helper.\n\n"))
}

func TestFake_ScriptedTexts(t *testing.T) {
	t.Parallel()

	f := &Fake{Texts: []string{"one", "two"}}
	ctx := context.Background()

	for _, want := range []string{"one", "two", "two"} {
		got, err := f.GenerateText(ctx, TextRequest{Prompt: "p"})
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	assert.Len(t, f.Requests(), 3)
}

func TestFake_StreamStopsOnCancel(t *testing.T) {
	t.Parallel()

	gate := make(chan struct{})
	f := &Fake{Chunks: []string{"a", "b", "c"}, Gate: gate}
	ctx, cancel := context.WithCancel(context.Background())

	emitted := make(chan string, 3)
	done := make(chan error, 1)
	go func() {
		done <- f.StreamText(ctx, ChatRequest{}, func(d string) error {
			emitted <- d
			return nil
		})
	}()

	gate <- struct{}{}
	assert.Equal(t, "a", <-emitted)
	cancel()

	err := <-done
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, emitted)
}

func TestFake_EmitErrorStops(t *testing.T) {
	t.Parallel()

	stop := errors.New("client gone")
	f := &Fake{Chunks: []string{"a", "b"}}

	n := 0
	err := f.StreamText(context.Background(), ChatRequest{}, func(string) error {
		n++
		return stop
	})
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 1, n)
}

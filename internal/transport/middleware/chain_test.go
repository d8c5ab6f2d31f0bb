package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func tag(name string, order *[]string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			*order = append(*order, name+">")
			next.ServeHTTP(w, r)
			*order = append(*order, "<"+name)
		})
	}
}

func TestChain(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		build func(order *[]string) Middleware
		want  []string
	}{
		{
			name:  "outermost first",
			build: func(o *[]string) Middleware { return Chain(tag("recovery", o), tag("auth", o)) },
			want:  []string{"recovery>", "auth>", "handler", "<auth", "<recovery"},
		},
		{
			name:  "nil skipped",
			build: func(o *[]string) Middleware { return Chain(nil, tag("cors", o), nil) },
			want:  []string{"cors>", "handler", "<cors"},
		},
		{
			name:  "nested chains",
			build: func(o *[]string) Middleware { return Chain(Chain(tag("a", o)), tag("b", o)) },
			want:  []string{"a>", "b>", "handler", "<b", "<a"},
		},
		{
			name:  "empty",
			build: func(*[]string) Middleware { return Chain() },
			want:  []string{"handler"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var order []string
			h := tt.build(&order)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				order = append(order, "handler")
				w.WriteHeader(http.StatusNoContent)
			}))

			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/campaigns", nil))

			assert.Equal(t, tt.want, order)
			assert.Equal(t, http.StatusNoContent, rec.Code)
		})
	}
}

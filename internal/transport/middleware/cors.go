package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/lmdrew96/FeyForge-sub001/internal/config"
)

// exposedHeaders are readable by browser clients: the request id for bug
// reports and the limiter hints for backing off.
const exposedHeaders = RequestIDHeader + ", Retry-After, X-RateLimit-Remaining"

// CORS answers preflight requests and marks responses to allowed origins.
// "*" in AllowedOrigins admits any origin; the request's Origin is echoed
// back so credentialed requests keep working.
func CORS(cfg config.CORSConfig) Middleware {
	allowAny, origins := parseOrigins(cfg.AllowedOrigins)
	maxAge := strconv.Itoa(cfg.MaxAge)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin == "" {
				next.ServeHTTP(w, r)
				return
			}

			h := w.Header()
			h.Add("Vary", "Origin")
			if _, ok := origins[origin]; !ok && !allowAny {
				next.ServeHTTP(w, r)
				return
			}

			h.Set("Access-Control-Allow-Origin", origin)
			if cfg.AllowCredentials {
				h.Set("Access-Control-Allow-Credentials", "true")
			}
			h.Set("Access-Control-Expose-Headers", exposedHeaders)

			if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
				h.Set("Access-Control-Allow-Methods", cfg.AllowedMethods)
				h.Set("Access-Control-Allow-Headers", cfg.AllowedHeaders)
				h.Set("Access-Control-Max-Age", maxAge)
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func parseOrigins(list string) (allowAny bool, set map[string]struct{}) {
	set = make(map[string]struct{})
	for _, o := range strings.Split(list, ",") {
		o = strings.TrimSpace(o)
		switch o {
		case "":
		case "*":
			allowAny = true
		default:
			set[o] = struct{}{}
		}
	}
	return allowAny, set
}

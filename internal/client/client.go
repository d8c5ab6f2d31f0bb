// Package client talks to the FeyForge REST API. A Client is the remote
// behind every synced store and carries the signed-in session.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/lmdrew96/FeyForge-sub001/internal/domain"
	"github.com/lmdrew96/FeyForge-sub001/pkg/optional"
)

const (
	defaultTimeout = 15 * time.Second
	retryDelay     = 500 * time.Millisecond
	maxErrorBody   = 64 << 10
)

// Session is the signed-in state returned by register, login and refresh.
type Session struct {
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
	User         *domain.User `json:"user"`
}

// Client is a REST client for one API base URL. It is safe for concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger

	mu      sync.RWMutex
	session Session
}

// New creates a Client for baseURL, e.g. "http://localhost:8080". A
// non-positive timeout selects the default.
func New(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With("adapter", "api_client"),
	}
}

// SetSession installs a previously obtained session.
func (c *Client) SetSession(s Session) {
	c.mu.Lock()
	c.session = s
	c.mu.Unlock()
}

// Session returns the current session; the zero value when signed out.
func (c *Client) Session() Session {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.session
}

// CurrentUser reports the signed-in user.
func (c *Client) CurrentUser(context.Context) optional.Option[domain.User] {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.session.AccessToken == "" || c.session.User == nil {
		return optional.None[domain.User]()
	}
	return optional.Some(*c.session.User)
}

// Register creates an account and signs in.
func (c *Client) Register(ctx context.Context, email, name, password string) (Session, error) {
	return c.signIn(ctx, "/auth/register", map[string]string{"email": email, "name": name, "password": password})
}

// Login signs in with email and password.
func (c *Client) Login(ctx context.Context, email, password string) (Session, error) {
	return c.signIn(ctx, "/auth/login", map[string]string{"email": email, "password": password})
}

// Me resolves the user behind the current access token and records it in
// the session. Used when only a token was configured.
func (c *Client) Me(ctx context.Context) (domain.User, error) {
	var u domain.User
	if err := c.do(ctx, http.MethodGet, "/api/me", nil, &u); err != nil {
		return domain.User{}, fmt.Errorf("current user: %w", err)
	}
	c.mu.Lock()
	c.session.User = &u
	c.mu.Unlock()
	return u, nil
}

// Logout revokes the refresh token and clears the session. The session is
// cleared even when the server call fails.
func (c *Client) Logout(ctx context.Context) error {
	s := c.Session()
	c.SetSession(Session{})
	if s.RefreshToken == "" {
		return nil
	}
	if err := c.send(ctx, http.MethodPost, "/auth/logout", map[string]string{"refreshToken": s.RefreshToken}, nil, false); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}

func (c *Client) signIn(ctx context.Context, path string, body any) (Session, error) {
	var s Session
	if err := c.send(ctx, http.MethodPost, path, body, &s, false); err != nil {
		return Session{}, fmt.Errorf("sign in: %w", err)
	}
	c.SetSession(s)
	c.log.InfoContext(ctx, "signed in", slog.String("user_id", userID(s)))
	return s, nil
}

// refresh swaps the refresh token for a new session. It reports whether a
// new session was obtained.
func (c *Client) refresh(ctx context.Context) bool {
	old := c.Session()
	if old.RefreshToken == "" {
		return false
	}
	var s Session
	if err := c.send(ctx, http.MethodPost, "/auth/refresh", map[string]string{"refreshToken": old.RefreshToken}, &s, false); err != nil {
		c.log.WarnContext(ctx, "session refresh failed", slog.String("error", err.Error()))
		c.SetSession(Session{})
		return false
	}
	c.SetSession(s)
	return true
}

// do sends an authenticated request. A 401 triggers one refresh and retry.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	err := c.send(ctx, method, path, body, out, true)
	if errors.Is(err, domain.ErrUnauthenticated) && c.refresh(ctx) {
		err = c.send(ctx, method, path, body, out, true)
	}
	return err
}

func (c *Client) send(ctx context.Context, method, path string, body, out any, authed bool) error {
	var payload []byte
	if body != nil {
		var err error
		if payload, err = json.Marshal(body); err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
	}

	newReq := func() (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(payload))
		if err != nil {
			return nil, fmt.Errorf("create request: %w", err)
		}
		if body != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		req.Header.Set("Accept", "application/json")
		if authed {
			if tok := c.Session().AccessToken; tok != "" {
				req.Header.Set("Authorization", "Bearer "+tok)
			}
		}
		return req, nil
	}

	resp, err := c.doWithRetry(ctx, method, newReq)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return decodeError(resp)
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

// doWithRetry retries GETs once on 5xx or network errors.
func (c *Client) doWithRetry(ctx context.Context, method string, newReq func() (*http.Request, error)) (*http.Response, error) {
	req, err := newReq()
	if err != nil {
		return nil, err
	}
	resp, err := c.httpClient.Do(req)

	shouldRetry := method == http.MethodGet && (err != nil || resp.StatusCode >= 500)
	if !shouldRetry || ctx.Err() != nil {
		return resp, err
	}

	reason := "network error"
	if err == nil {
		reason = fmt.Sprintf("status %d", resp.StatusCode)
		resp.Body.Close()
	}
	c.log.WarnContext(ctx, "api retry", slog.String("path", req.URL.Path), slog.String("reason", reason))

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(retryDelay):
	}

	if req, err = newReq(); err != nil {
		return nil, err
	}
	return c.httpClient.Do(req)
}

type errorBody struct {
	Error  string              `json:"error"`
	Code   string              `json:"code"`
	Fields []domain.FieldError `json:"fields"`
}

// decodeError maps an error response onto the domain errors.
func decodeError(resp *http.Response) error {
	var body errorBody
	data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	_ = json.Unmarshal(data, &body)
	if body.Error == "" {
		body.Error = http.StatusText(resp.StatusCode)
	}

	switch resp.StatusCode {
	case http.StatusBadRequest:
		if len(body.Fields) > 0 {
			return domain.NewValidationErrors(body.Fields)
		}
		return fmt.Errorf("%w: %s", domain.ErrValidation, body.Error)
	case http.StatusUnauthorized:
		return domain.ErrUnauthenticated
	case http.StatusForbidden:
		return domain.ErrForbidden
	case http.StatusNotFound:
		return domain.ErrNotFound
	case http.StatusConflict:
		return domain.ErrAlreadyExists
	case http.StatusTooManyRequests:
		secs, _ := strconv.Atoi(resp.Header.Get("Retry-After"))
		return &domain.RateLimitedError{RetryAfter: time.Duration(max(secs, 1)) * time.Second}
	case http.StatusGatewayTimeout:
		return domain.ErrGenerationTimeout
	case http.StatusBadGateway:
		return fmt.Errorf("%w: %s", domain.ErrGenerationFailed, body.Error)
	default:
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, body.Error)
	}
}

func withCampaign(path, campaignID string) string {
	if campaignID == "" {
		return path
	}
	return path + "?campaignId=" + url.QueryEscape(campaignID)
}

func userID(s Session) string {
	if s.User == nil {
		return ""
	}
	return s.User.ID
}

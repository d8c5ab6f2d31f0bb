package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jonboulle/clockwork"

	"github.com/lmdrew96/FeyForge-sub001/internal/adapter/sqlite/kv"
	"github.com/lmdrew96/FeyForge-sub001/internal/client"
	"github.com/lmdrew96/FeyForge-sub001/internal/config"
	"github.com/lmdrew96/FeyForge-sub001/internal/store/persisted"
	"github.com/lmdrew96/FeyForge-sub001/internal/store/synced"
)

const sessionKey = "feyforge.session"

// Local holds the stores persisted in the local SQLite file.
type Local struct {
	Campaigns *persisted.CampaignsStore
	NPCs      *persisted.NPCsStore
	Codex     *persisted.CodexStore

	kv *kv.Store
}

// OpenLocal opens the local database and rehydrates every persisted store,
// seeding the ones with nothing stored yet.
func OpenLocal(cfg config.LocalConfig, logger *slog.Logger) (*Local, error) {
	seed, err := persisted.DefaultSeed()
	if err != nil {
		return nil, err
	}
	db, err := kv.Open(cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("open local store: %w", err)
	}

	clock := clockwork.NewRealClock()
	return &Local{
		Campaigns: persisted.NewCampaigns(logger, db, clock, seed),
		NPCs:      persisted.NewNPCs(logger, db, clock, seed),
		Codex:     persisted.NewCodex(logger, db, clock, seed),
		kv:        db,
	}, nil
}

// DeleteCampaign removes a campaign together with its NPCs.
func (l *Local) DeleteCampaign(id string) int {
	l.Campaigns.Delete(id)
	return l.NPCs.PurgeCampaign(id)
}

func (l *Local) Close() error { return l.kv.Close() }

// Remote holds the server-synchronized stores and the API client behind them.
// The session survives between runs in the local database.
type Remote struct {
	Client        *client.Client
	Campaigns     *synced.CampaignStore
	World         *synced.WorldStore
	Conversations *synced.ConversationStore
	Encounters    *synced.EncounterStore

	kv  *kv.Store
	log *slog.Logger
}

// OpenRemote builds the synced stores against cfg.Client.BaseURL. A configured
// access token takes precedence over a saved session.
func OpenRemote(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Remote, error) {
	db, err := kv.Open(cfg.Local.Path)
	if err != nil {
		return nil, fmt.Errorf("open local store: %w", err)
	}

	c := client.New(cfg.Client.BaseURL, cfg.Client.Timeout, logger)
	r := &Remote{Client: c, kv: db, log: logger}

	switch {
	case cfg.Client.AccessToken != "":
		c.SetSession(client.Session{AccessToken: cfg.Client.AccessToken})
		if _, err := c.Me(ctx); err != nil {
			_ = db.Close()
			return nil, err
		}
	default:
		if err := r.restoreSession(ctx); err != nil {
			logger.WarnContext(ctx, "saved session unreadable", slog.String("error", err.Error()))
		}
	}

	clock := clockwork.NewRealClock()
	r.Campaigns = synced.NewCampaignStore(logger, c, c, clock)
	r.World = synced.NewWorldStore(logger, c, c, clock)
	r.Conversations = synced.NewConversationStore(logger, c, c, clock)
	r.Encounters = synced.NewEncounterStore(logger, c, c, clock)
	return r, nil
}

// Login signs in and saves the session.
func (r *Remote) Login(ctx context.Context, email, password string) (client.Session, error) {
	s, err := r.Client.Login(ctx, email, password)
	if err != nil {
		return client.Session{}, err
	}
	return s, r.saveSession(ctx)
}

// Register creates an account, signs in and saves the session.
func (r *Remote) Register(ctx context.Context, email, name, password string) (client.Session, error) {
	s, err := r.Client.Register(ctx, email, name, password)
	if err != nil {
		return client.Session{}, err
	}
	return s, r.saveSession(ctx)
}

// Logout ends the session on the server and forgets it locally.
func (r *Remote) Logout(ctx context.Context) error {
	err := r.Client.Logout(ctx)
	return errors.Join(err, r.kv.Delete(ctx, sessionKey))
}

// Close saves the session, which may have been refreshed, and closes the
// local database.
func (r *Remote) Close(ctx context.Context) error {
	var err error
	if r.Client.Session().RefreshToken != "" {
		err = r.saveSession(ctx)
	}
	return errors.Join(err, r.kv.Close())
}

func (r *Remote) saveSession(ctx context.Context) error {
	blob, err := json.Marshal(r.Client.Session())
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	return r.kv.WriteContext(ctx, sessionKey, blob)
}

func (r *Remote) restoreSession(ctx context.Context) error {
	blob, ok, err := r.kv.ReadContext(ctx, sessionKey)
	if err != nil || !ok {
		return err
	}
	var s client.Session
	if err := json.Unmarshal(blob, &s); err != nil {
		return fmt.Errorf("decode session: %w", err)
	}
	r.Client.SetSession(s)
	return nil
}

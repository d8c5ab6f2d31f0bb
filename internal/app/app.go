package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/errgroup"

	"github.com/lmdrew96/FeyForge-sub001/internal/adapter/postgres"
	campaignrepo "github.com/lmdrew96/FeyForge-sub001/internal/adapter/postgres/campaign"
	conversationrepo "github.com/lmdrew96/FeyForge-sub001/internal/adapter/postgres/conversation"
	encounterrepo "github.com/lmdrew96/FeyForge-sub001/internal/adapter/postgres/encounter"
	locationrepo "github.com/lmdrew96/FeyForge-sub001/internal/adapter/postgres/location"
	npcrepo "github.com/lmdrew96/FeyForge-sub001/internal/adapter/postgres/npc"
	tokenrepo "github.com/lmdrew96/FeyForge-sub001/internal/adapter/postgres/token"
	userrepo "github.com/lmdrew96/FeyForge-sub001/internal/adapter/postgres/user"
	"github.com/lmdrew96/FeyForge-sub001/internal/adapter/provider/claude"
	"github.com/lmdrew96/FeyForge-sub001/internal/adapter/provider/gemini"
	"github.com/lmdrew96/FeyForge-sub001/internal/auth"
	"github.com/lmdrew96/FeyForge-sub001/internal/config"
	"github.com/lmdrew96/FeyForge-sub001/internal/generation"
	"github.com/lmdrew96/FeyForge-sub001/internal/ratelimit"
	authsvc "github.com/lmdrew96/FeyForge-sub001/internal/service/auth"
	"github.com/lmdrew96/FeyForge-sub001/internal/service/campaign"
	"github.com/lmdrew96/FeyForge-sub001/internal/service/combat"
	"github.com/lmdrew96/FeyForge-sub001/internal/service/conversation"
	"github.com/lmdrew96/FeyForge-sub001/internal/service/encounter"
	"github.com/lmdrew96/FeyForge-sub001/internal/service/forge"
	"github.com/lmdrew96/FeyForge-sub001/internal/service/location"
	"github.com/lmdrew96/FeyForge-sub001/internal/service/npc"
	"github.com/lmdrew96/FeyForge-sub001/internal/transport/dataloader"
	"github.com/lmdrew96/FeyForge-sub001/internal/transport/middleware"
	"github.com/lmdrew96/FeyForge-sub001/internal/transport/rest"
)

const combatSweepInterval = 10 * time.Minute

// Run starts the API server and blocks until ctx is cancelled or a component
// fails. Shutdown drains in-flight requests for up to the configured timeout.
func Run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	if err := cfg.ValidateServer(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("provider", cfg.Generation.Provider),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	gen, err := NewGenerator(ctx, cfg.Generation, logger)
	if err != nil {
		return err
	}

	clock := clockwork.NewRealClock()
	router, combatService := newRouter(cfg, logger, pool, gen, clock)

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		return combatService.RunSweeper(gctx, combatSweepInterval)
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		logger.Info("shutting down http server")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	logger.Info("server stopped")
	return nil
}

// newRouter wires repositories, services and handlers over pool.
func newRouter(
	cfg *config.Config,
	logger *slog.Logger,
	pool *pgxpool.Pool,
	gen generation.Generator,
	clock clockwork.Clock,
) (http.Handler, *combat.Service) {
	tx := postgres.NewTxManager(pool)

	campaigns := campaignrepo.New(pool)
	locations := locationrepo.New(pool)
	npcs := npcrepo.New(pool)
	conversations := conversationrepo.New(pool)
	encounters := encounterrepo.New(pool)

	jwt := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL, clock)
	authService := authsvc.NewService(logger, userrepo.New(pool), tokenrepo.New(pool), jwt, cfg.Auth, clock)
	conversationService := conversation.NewService(logger, conversations, campaigns, tx, clock)
	encounterService := encounter.NewService(logger, encounters, campaigns)
	combatService := combat.NewService(logger, encounterService, clock, 0)
	forgeService := forge.NewService(logger, gen, conversationService, cfg.Generation.Timeout, cfg.Generation.MaxTokens)

	handlers := rest.Handlers{
		Health: rest.NewHealthHandler(BuildVersion(), cfg.Generation.Provider, clock, map[string]rest.Pinger{
			"database": pool,
		}),
		Auth:         rest.NewAuthHandler(authService, logger),
		Campaign:     rest.NewCampaignHandler(campaign.NewService(logger, campaigns, tx), logger),
		Location:     rest.NewLocationHandler(location.NewService(logger, locations, campaigns, tx), logger),
		NPC:          rest.NewNPCHandler(npc.NewService(logger, npcs, campaigns, tx), logger),
		Conversation: rest.NewConversationHandler(conversationService, logger),
		Encounter:    rest.NewEncounterHandler(encounterService, logger),
		Combat:       rest.NewCombatHandler(combatService, logger),
		Forge:        rest.NewForgeHandler(forgeService, logger),
	}

	router := rest.NewRouter(handlers, rest.Middlewares{
		Common: middleware.Chain(
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.Logger(logger),
			middleware.CORS(cfg.CORS),
			middleware.Auth(authService),
		),
		Loaders: dataloader.Middleware(&dataloader.Repos{NPC: npcs, Location: locations}),
		Limit:   middleware.RateLimit(ratelimit.New(clock), cfg.RateLimit.Max, cfg.RateLimit.Window),
	})
	return router, combatService
}

// NewGenerator builds the text generator selected by cfg.Provider.
func NewGenerator(ctx context.Context, cfg config.GenerationConfig, logger *slog.Logger) (generation.Generator, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("generation.api_key is required for provider %q", cfg.Provider)
	}
	switch cfg.Provider {
	case config.ProviderGemini:
		g, err := gemini.NewGenerator(ctx, logger, cfg.APIKey, cfg.DefaultModel(), cfg.MaxTokens)
		if err != nil {
			return nil, fmt.Errorf("gemini generator: %w", err)
		}
		return g, nil
	default:
		return claude.NewGenerator(logger, cfg.APIKey, cfg.DefaultModel(), cfg.MaxTokens), nil
	}
}

// CleanupTokens deletes expired and revoked refresh tokens.
func CleanupTokens(ctx context.Context, cfg *config.Config, logger *slog.Logger) (int, error) {
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return 0, err
	}
	defer pool.Close()

	n, err := tokenrepo.New(pool).DeleteExpired(ctx)
	if err != nil {
		return 0, fmt.Errorf("cleanup tokens: %w", err)
	}
	logger.InfoContext(ctx, "refresh tokens cleaned up", slog.Int("deleted", n))
	return n, nil
}

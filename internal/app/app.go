package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/fantasy-cricket/internal/config"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/fantasy"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/match"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/player"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/user"
	"github.com/riskibarqy/fantasy-cricket/internal/infrastructure/account/anubis"
	cacherepo "github.com/riskibarqy/fantasy-cricket/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/fantasy-cricket/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/fantasy-cricket/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/fantasy-cricket/internal/interfaces/httpapi"
	"github.com/riskibarqy/fantasy-cricket/internal/platform/id"
	"github.com/riskibarqy/fantasy-cricket/internal/platform/logging"
	"github.com/riskibarqy/fantasy-cricket/internal/platform/resilience"
	"github.com/riskibarqy/fantasy-cricket/internal/usecase"
)

// App is the wired service. Close releases what New opened.
type App struct {
	Server  *http.Server
	Catalog *usecase.CatalogService

	db *sqlx.DB
}

func New(ctx context.Context, cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	matchRepo, playerRepo, db, err := buildCatalog(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	verifier, probes, err := buildVerifier(cfg, logger)
	if err != nil {
		closeDB(db)
		return nil, err
	}

	workspaces := memory.NewWorkspaceRepository(id.NewCounter(0), time.Now)
	catalogSvc := usecase.NewCatalogService(matchRepo, playerRepo, logger)
	teamSvc := usecase.NewTeamService(playerRepo, matchRepo, workspaces, fantasy.DefaultRules(), logger)

	handler := httpapi.NewHandler(catalogSvc, teamSvc, logger, probes...)
	router := httpapi.NewRouter(handler, verifier, logger, cfg.SwaggerEnabled, cfg.CORSAllowedOrigins)

	return &App{
		Server: &http.Server{
			Addr:              cfg.HTTPAddr,
			Handler:           router,
			ReadTimeout:       cfg.ReadTimeout,
			ReadHeaderTimeout: cfg.ReadTimeout,
			WriteTimeout:      cfg.WriteTimeout,
		},
		Catalog: catalogSvc,
		db:      db,
	}, nil
}

func (a *App) Close() error {
	if a == nil || a.db == nil {
		return nil
	}
	return a.db.Close()
}

func buildCatalog(ctx context.Context, cfg config.Config, logger *logging.Logger) (match.Repository, player.Repository, *sqlx.DB, error) {
	var (
		matchRepo  match.Repository
		playerRepo player.Repository
		db         *sqlx.DB
	)

	switch cfg.CatalogSource {
	case config.CatalogSourcePostgres:
		opened, err := OpenDB(ctx, cfg)
		if err != nil {
			return nil, nil, nil, err
		}
		if cfg.DBBootstrapSeed {
			if err := postgres.BootstrapSeed(ctx, opened, memory.SeedMatches(), memory.SeedPlayers()); err != nil {
				closeDB(opened)
				return nil, nil, nil, fmt.Errorf("bootstrap catalog seed: %w", err)
			}
		}
		db = opened
		matchRepo = postgres.NewMatchRepository(db)
		playerRepo = postgres.NewPlayerRepository(db)
	default:
		matchRepo = memory.NewMatchRepository(memory.SeedMatches())
		playerRepo = memory.NewPlayerRepository(memory.SeedPlayers())
	}

	if cfg.CacheEnabled {
		matchRepo = cacherepo.NewMatchRepository(matchRepo, cfg.CacheTTL)
		playerRepo = cacherepo.NewPlayerRepository(playerRepo, cfg.CacheTTL)
	}

	logger.Info("catalog ready",
		"source", cfg.CatalogSource,
		"cache_enabled", cfg.CacheEnabled,
		"bootstrap_seed", cfg.CatalogSource == config.CatalogSourcePostgres && cfg.DBBootstrapSeed,
	)

	return matchRepo, playerRepo, db, nil
}

func buildVerifier(cfg config.Config, logger *logging.Logger) (user.Verifier, []httpapi.DependencyProbe, error) {
	switch cfg.AuthMode {
	case config.AuthModeStatic:
		verifier := user.NewStaticVerifier(cfg.AuthStaticTokens)
		if verifier.Len() == 0 {
			return nil, nil, fmt.Errorf("AUTH_STATIC_TOKENS has no valid token:user_id pairs")
		}
		logger.Warn("static token auth enabled", "tokens", verifier.Len())
		return verifier, nil, nil
	case config.AuthModeAnubis:
		client := anubis.NewClient(
			&http.Client{Timeout: cfg.AnubisTimeout},
			anubis.Config{
				BaseURL:         cfg.AnubisBaseURL,
				IntrospectPath:  cfg.AnubisIntrospectURL,
				AdminKey:        cfg.AnubisAdminKey,
				CacheTTL:        cfg.AnubisCacheTTL,
				CacheMaxEntries: cfg.AnubisCacheMaxEntries,
				Breaker: resilience.BreakerConfig{
					Enabled:          cfg.AnubisCircuitEnabled,
					FailureThreshold: cfg.AnubisCircuitFailureCount,
					OpenTimeout:      cfg.AnubisCircuitOpenTimeout,
					HalfOpenMaxReq:   cfg.AnubisCircuitHalfOpenMaxReq,
				},
			},
			logger,
		)
		return client, []httpapi.DependencyProbe{{Name: "anubis", State: client.BreakerState}}, nil
	default:
		return nil, nil, fmt.Errorf("unsupported auth mode %q", cfg.AuthMode)
	}
}

func closeDB(db *sqlx.DB) {
	if db != nil {
		_ = db.Close()
	}
}

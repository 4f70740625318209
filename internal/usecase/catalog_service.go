package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/sourcegraph/conc/pool"

	"github.com/riskibarqy/fantasy-cricket/internal/domain/match"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/player"
	"github.com/riskibarqy/fantasy-cricket/internal/platform/logging"
)

// RoleAll is the player filter value that disables role filtering.
const RoleAll = "All"

type CatalogService struct {
	matchRepo  match.Repository
	playerRepo player.Repository
	logger     *logging.Logger
}

func NewCatalogService(matchRepo match.Repository, playerRepo player.Repository, logger *logging.Logger) *CatalogService {
	if logger == nil {
		logger = logging.Default()
	}

	return &CatalogService{
		matchRepo:  matchRepo,
		playerRepo: playerRepo,
		logger:     logger.Named("usecase.catalog"),
	}
}

func (s *CatalogService) ListMatches(ctx context.Context) ([]match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CatalogService.ListMatches")
	defer span.End()

	items, err := s.matchRepo.List(ctx)
	if err != nil {
		recordSpanError(span, err)
		return nil, fmt.Errorf("list matches: %w", err)
	}
	return items, nil
}

func (s *CatalogService) GetMatch(ctx context.Context, matchID string) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CatalogService.GetMatch")
	defer span.End()

	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return match.Match{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	item, exists, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		recordSpanError(span, err)
		return match.Match{}, fmt.Errorf("get match: %w", err)
	}
	if !exists {
		return match.Match{}, fmt.Errorf("%w: match=%s", ErrNotFound, matchID)
	}
	return item, nil
}

// ListPlayers returns the whole catalog for "" or "All", otherwise only the
// players of one role.
func (s *CatalogService) ListPlayers(ctx context.Context, role string) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CatalogService.ListPlayers")
	defer span.End()

	role = strings.TrimSpace(role)
	if role == "" || strings.EqualFold(role, RoleAll) {
		items, err := s.playerRepo.List(ctx)
		if err != nil {
			recordSpanError(span, err)
			return nil, fmt.Errorf("list players: %w", err)
		}
		return items, nil
	}

	parsed, ok := player.ParseRole(role)
	if !ok {
		return nil, fmt.Errorf("%w: unknown role %q", ErrInvalidInput, role)
	}

	items, err := s.playerRepo.ListByRole(ctx, parsed)
	if err != nil {
		recordSpanError(span, err)
		return nil, fmt.Errorf("list players by role: %w", err)
	}
	return items, nil
}

func (s *CatalogService) GetPlayer(ctx context.Context, playerID int64) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CatalogService.GetPlayer")
	defer span.End()

	if playerID <= 0 {
		return player.Player{}, fmt.Errorf("%w: player id must be positive", ErrInvalidInput)
	}

	item, exists, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		recordSpanError(span, err)
		return player.Player{}, fmt.Errorf("get player: %w", err)
	}
	if !exists {
		return player.Player{}, fmt.Errorf("%w: player=%s", ErrNotFound, strconv.FormatInt(playerID, 10))
	}
	return item, nil
}

// CatalogStats summarises what Warm loaded.
type CatalogStats struct {
	Matches int
	Players int
}

// Warm loads matches and players in parallel and validates every entry, so
// a broken catalog fails at startup instead of on the first request.
func (s *CatalogService) Warm(ctx context.Context) (CatalogStats, error) {
	var stats CatalogStats

	p := pool.New().WithContext(ctx).WithCancelOnError()
	p.Go(func(ctx context.Context) error {
		items, err := s.matchRepo.List(ctx)
		if err != nil {
			return fmt.Errorf("warm matches: %w", err)
		}
		for _, m := range items {
			if err := m.Validate(); err != nil {
				return fmt.Errorf("warm matches: match=%s: %w", m.ID, err)
			}
		}
		stats.Matches = len(items)
		return nil
	})
	p.Go(func(ctx context.Context) error {
		items, err := s.playerRepo.List(ctx)
		if err != nil {
			return fmt.Errorf("warm players: %w", err)
		}
		for _, pl := range items {
			if err := pl.Validate(); err != nil {
				return fmt.Errorf("warm players: player=%d: %w", pl.ID, err)
			}
		}
		stats.Players = len(items)
		return nil
	})

	if err := p.Wait(); err != nil {
		return CatalogStats{}, err
	}

	s.logger.InfoContext(ctx, "catalog warmed", "matches", stats.Matches, "players", stats.Players)
	return stats, nil
}

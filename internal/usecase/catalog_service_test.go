package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/fantasy-cricket/internal/domain/match"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/player"
	"github.com/riskibarqy/fantasy-cricket/internal/infrastructure/repository/memory"
	matchmock "github.com/riskibarqy/fantasy-cricket/internal/mocks/domain/match"
	playermock "github.com/riskibarqy/fantasy-cricket/internal/mocks/domain/player"
	"github.com/riskibarqy/fantasy-cricket/internal/platform/logging"
)

func newCatalogServiceForTest() *CatalogService {
	return NewCatalogService(
		memory.NewMatchRepository(memory.SeedMatches()),
		memory.NewPlayerRepository(memory.SeedPlayers()),
		logging.NewNop(),
	)
}

func TestCatalogService_ListPlayers_RoleFilter(t *testing.T) {
	svc := newCatalogServiceForTest()
	ctx := t.Context()

	all, err := svc.ListPlayers(ctx, RoleAll)
	if err != nil {
		t.Fatalf("list all players: %v", err)
	}
	require.Len(t, all, 15)

	unfiltered, err := svc.ListPlayers(ctx, "")
	if err != nil {
		t.Fatalf("list unfiltered players: %v", err)
	}
	require.Len(t, unfiltered, 15)

	keepers, err := svc.ListPlayers(ctx, "WK")
	if err != nil {
		t.Fatalf("list keepers: %v", err)
	}
	require.Len(t, keepers, 2)
	for _, p := range keepers {
		require.Equal(t, player.RoleWicketKeeper, p.Role)
	}

	if _, err := svc.ListPlayers(ctx, "Goalkeeper"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestCatalogService_GetMatchAndPlayer(t *testing.T) {
	svc := newCatalogServiceForTest()
	ctx := t.Context()

	m, err := svc.GetMatch(ctx, "1")
	if err != nil {
		t.Fatalf("get match: %v", err)
	}
	require.Equal(t, "India vs Pakistan", m.Title())

	if _, err := svc.GetMatch(ctx, "404"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := svc.GetMatch(ctx, "  "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	p, err := svc.GetPlayer(ctx, 1)
	if err != nil {
		t.Fatalf("get player: %v", err)
	}
	require.Equal(t, "Virat Kohli", p.Name)

	if _, err := svc.GetPlayer(ctx, 404); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := svc.GetPlayer(ctx, -1); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestCatalogService_Warm(t *testing.T) {
	svc := newCatalogServiceForTest()

	stats, err := svc.Warm(t.Context())
	if err != nil {
		t.Fatalf("warm catalog: %v", err)
	}
	require.Equal(t, CatalogStats{Matches: 5, Players: 15}, stats)
}

func TestCatalogService_Warm_RejectsInvalidPlayerUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	matchRepo := matchmock.NewRepository(t)
	playerRepo := playermock.NewRepository(t)

	matchRepo.
		On("List", mock.Anything).
		Return([]match.Match{{ID: "1", TeamA: "India", TeamB: "Pakistan", TeamAShort: "IND", TeamBShort: "PAK", Time: "Today"}}, nil).
		Maybe()
	playerRepo.
		On("List", mock.Anything).
		Return([]player.Player{{ID: 1, Name: "", Role: player.RoleBatsman, Team: "IND"}}, nil).
		Once()

	svc := NewCatalogService(matchRepo, playerRepo, logging.NewNop())
	if _, err := svc.Warm(ctx); err == nil {
		t.Fatalf("expected warm to fail on invalid player")
	}
}

func TestCatalogService_ListMatches_RepositoryErrorUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	matchRepo := matchmock.NewRepository(t)
	playerRepo := playermock.NewRepository(t)
	repoErr := errors.New("db down")

	matchRepo.
		On("List", mock.MatchedBy(func(v context.Context) bool { return v == ctx })).
		Return(nil, repoErr).
		Once()

	svc := NewCatalogService(matchRepo, playerRepo, logging.NewNop())
	_, err := svc.ListMatches(ctx)
	if !errors.Is(err, repoErr) {
		t.Fatalf("expected repository error, got %v", err)
	}
}

package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/fantasy-cricket/internal/domain/match"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/player"
)

type countingPlayers struct {
	calls   int
	failing bool
}

func (c *countingPlayers) List(context.Context) ([]player.Player, error) {
	c.calls++
	if c.failing {
		return nil, errors.New("db down")
	}
	return []player.Player{{ID: 1, Name: "Virat Kohli", Role: player.RoleBatsman}}, nil
}

func (c *countingPlayers) ListByRole(_ context.Context, role player.Role) ([]player.Player, error) {
	c.calls++
	return []player.Player{{ID: 5, Role: role}}, nil
}

func (c *countingPlayers) GetByID(_ context.Context, id int64) (player.Player, bool, error) {
	c.calls++
	if id != 1 {
		return player.Player{}, false, nil
	}
	return player.Player{ID: 1, Name: "Virat Kohli"}, true, nil
}

func TestPlayerRepository_CachesListsAndLookups(t *testing.T) {
	ctx := context.Background()
	next := &countingPlayers{}
	repo := NewPlayerRepository(next, time.Minute)

	for i := 0; i < 3; i++ {
		items, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, items, 1)
	}
	require.Equal(t, 1, next.calls)

	bowlers, err := repo.ListByRole(ctx, player.RoleBowler)
	require.NoError(t, err)
	require.Equal(t, player.RoleBowler, bowlers[0].Role)
	require.Equal(t, 2, next.calls)

	for i := 0; i < 2; i++ {
		_, ok, err := repo.GetByID(ctx, 42)
		require.NoError(t, err)
		require.False(t, ok)
	}
	require.Equal(t, 3, next.calls, "misses are cached too")
}

func TestPlayerRepository_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewPlayerRepository(&countingPlayers{}, time.Minute)

	items, err := repo.List(ctx)
	require.NoError(t, err)
	items[0].Name = "mutated"

	again, err := repo.List(ctx)
	require.NoError(t, err)
	require.Equal(t, "Virat Kohli", again[0].Name)
}

func TestPlayerRepository_DoesNotCacheErrors(t *testing.T) {
	ctx := context.Background()
	next := &countingPlayers{failing: true}
	repo := NewPlayerRepository(next, time.Minute)

	_, err := repo.List(ctx)
	require.Error(t, err)

	next.failing = false
	items, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
}

type staticMatches struct{ calls int }

func (s *staticMatches) List(context.Context) ([]match.Match, error) {
	s.calls++
	return []match.Match{{ID: "1", TeamA: "India", TeamB: "Pakistan"}}, nil
}

func (s *staticMatches) GetByID(_ context.Context, id string) (match.Match, bool, error) {
	s.calls++
	return match.Match{ID: id}, id == "1", nil
}

func TestMatchRepository_Caches(t *testing.T) {
	ctx := context.Background()
	next := &staticMatches{}
	repo := NewMatchRepository(next, time.Minute)

	_, _ = repo.List(ctx)
	_, _ = repo.List(ctx)
	m, ok, err := repo.GetByID(ctx, "1")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "1", m.ID)
	_, _, _ = repo.GetByID(ctx, "1")

	require.Equal(t, 2, next.calls)
}

package cache

import (
	"context"
	"strconv"
	"time"

	"github.com/riskibarqy/fantasy-cricket/internal/domain/match"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/player"
	basecache "github.com/riskibarqy/fantasy-cricket/internal/platform/cache"
)

type lookup[T any] struct {
	value  T
	exists bool
}

type PlayerRepository struct {
	next  player.Repository
	lists *basecache.Store[[]player.Player]
	byID  *basecache.Store[lookup[player.Player]]
}

func NewPlayerRepository(next player.Repository, ttl time.Duration) *PlayerRepository {
	return &PlayerRepository{
		next:  next,
		lists: basecache.NewStore[[]player.Player](ttl),
		byID:  basecache.NewStore[lookup[player.Player]](ttl),
	}
}

func (r *PlayerRepository) List(ctx context.Context) ([]player.Player, error) {
	items, err := r.lists.GetOrLoad(ctx, "player:list", r.next.List)
	if err != nil {
		return nil, err
	}
	return append([]player.Player(nil), items...), nil
}

func (r *PlayerRepository) ListByRole(ctx context.Context, role player.Role) ([]player.Player, error) {
	items, err := r.lists.GetOrLoad(ctx, "player:role:"+string(role), func(ctx context.Context) ([]player.Player, error) {
		return r.next.ListByRole(ctx, role)
	})
	if err != nil {
		return nil, err
	}
	return append([]player.Player(nil), items...), nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, id int64) (player.Player, bool, error) {
	key := "player:id:" + strconv.FormatInt(id, 10)
	cached, err := r.byID.GetOrLoad(ctx, key, func(ctx context.Context) (lookup[player.Player], error) {
		item, exists, err := r.next.GetByID(ctx, id)
		if err != nil {
			return lookup[player.Player]{}, err
		}
		return lookup[player.Player]{value: item, exists: exists}, nil
	})
	if err != nil {
		return player.Player{}, false, err
	}
	return cached.value, cached.exists, nil
}

type MatchRepository struct {
	next  match.Repository
	lists *basecache.Store[[]match.Match]
	byID  *basecache.Store[lookup[match.Match]]
}

func NewMatchRepository(next match.Repository, ttl time.Duration) *MatchRepository {
	return &MatchRepository{
		next:  next,
		lists: basecache.NewStore[[]match.Match](ttl),
		byID:  basecache.NewStore[lookup[match.Match]](ttl),
	}
}

func (r *MatchRepository) List(ctx context.Context) ([]match.Match, error) {
	items, err := r.lists.GetOrLoad(ctx, "match:list", r.next.List)
	if err != nil {
		return nil, err
	}
	return append([]match.Match(nil), items...), nil
}

func (r *MatchRepository) GetByID(ctx context.Context, id string) (match.Match, bool, error) {
	cached, err := r.byID.GetOrLoad(ctx, "match:id:"+id, func(ctx context.Context) (lookup[match.Match], error) {
		item, exists, err := r.next.GetByID(ctx, id)
		if err != nil {
			return lookup[match.Match]{}, err
		}
		return lookup[match.Match]{value: item, exists: exists}, nil
	})
	if err != nil {
		return match.Match{}, false, err
	}
	return cached.value, cached.exists, nil
}

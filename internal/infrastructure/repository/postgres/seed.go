package postgres

import (
	"context"
	"fmt"
	"sync"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/panjf2000/ants/v2"

	"github.com/riskibarqy/fantasy-cricket/internal/domain/match"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/player"
	qb "github.com/riskibarqy/fantasy-cricket/internal/platform/querybuilder"
)

const (
	seedBatchSize = 8
	seedWorkers   = 4
)

// BootstrapSeed loads the catalog into empty tables. Rows that already
// exist are left untouched, so running it twice is harmless.
func BootstrapSeed(ctx context.Context, db *sqlx.DB, matches []match.Match, players []player.Player) error {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(1) FROM players WHERE deleted_at IS NULL`); err != nil {
		return crerr.Wrap(err, "count players for bootstrap seed")
	}
	if count > 0 {
		return nil
	}

	statements, err := seedStatements(matches, players)
	if err != nil {
		return err
	}

	pool, err := ants.NewPool(seedWorkers)
	if err != nil {
		return crerr.Wrap(err, "create seed worker pool")
	}
	defer pool.Release()

	var (
		mu      sync.Mutex
		errs    error
		workers sync.WaitGroup
	)
	for _, stmt := range statements {
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()
			if _, execErr := db.ExecContext(ctx, stmt.query, stmt.args...); execErr != nil {
				mu.Lock()
				errs = crerr.CombineErrors(errs, crerr.Wrapf(execErr, "seed %s", stmt.name))
				mu.Unlock()
			}
		}); err != nil {
			workers.Done()
			workers.Wait()
			return crerr.Wrap(err, "submit seed batch")
		}
	}
	workers.Wait()

	return errs
}

type seedStatement struct {
	name  string
	query string
	args  []any
}

// seedStatements writes matches as one statement and players in batches.
func seedStatements(matches []match.Match, players []player.Player) ([]seedStatement, error) {
	var out []seedStatement

	if len(matches) > 0 {
		rows := make([]matchInsertModel, 0, len(matches))
		for _, m := range matches {
			rows = append(rows, matchInsertFromDomain(m))
		}
		query, args, err := qb.InsertModels("matches", rows, "ON CONFLICT (public_id) DO NOTHING")
		if err != nil {
			return nil, crerr.Wrap(err, "build seed matches query")
		}
		out = append(out, seedStatement{name: "matches", query: query, args: args})
	}

	for start := 0; start < len(players); start += seedBatchSize {
		end := min(start+seedBatchSize, len(players))
		rows := make([]playerInsertModel, 0, end-start)
		for _, p := range players[start:end] {
			rows = append(rows, playerInsertFromDomain(p))
		}
		query, args, err := qb.InsertModels("players", rows, "ON CONFLICT (id) DO NOTHING")
		if err != nil {
			return nil, crerr.Wrapf(err, "build seed players batch %d", start/seedBatchSize)
		}
		out = append(out, seedStatement{
			name:  fmt.Sprintf("players[%d:%d]", start, end),
			query: query,
			args:  args,
		})
	}

	return out, nil
}

package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/riskibarqy/fantasy-cricket/internal/domain/fantasy"
	"github.com/riskibarqy/fantasy-cricket/internal/platform/id"
)

type workspace struct {
	mu    sync.Mutex
	store *fantasy.Store
}

// WorkspaceRepository keeps one team store per owner for the life of the
// process. Calls for the same owner run one at a time; different owners do
// not block each other.
type WorkspaceRepository struct {
	mu         sync.Mutex
	workspaces map[string]*workspace
	ids        id.Sequence
	now        func() time.Time
}

// NewWorkspaceRepository shares ids across every owner, so a saved team id
// is unique process-wide.
func NewWorkspaceRepository(ids id.Sequence, now func() time.Time) *WorkspaceRepository {
	if ids == nil {
		ids = id.NewCounter(0)
	}
	if now == nil {
		now = time.Now
	}
	return &WorkspaceRepository{
		workspaces: make(map[string]*workspace),
		ids:        ids,
		now:        now,
	}
}

func (r *WorkspaceRepository) WithStore(ctx context.Context, ownerID string, fn func(*fantasy.Store) error) error {
	if ownerID == "" {
		return fantasy.ErrOwnerRequired
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("open workspace: %w", err)
	}

	ws := r.get(ownerID)
	ws.mu.Lock()
	defer ws.mu.Unlock()

	return fn(ws.store)
}

func (r *WorkspaceRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.workspaces)
}

func (r *WorkspaceRepository) get(ownerID string) *workspace {
	r.mu.Lock()
	defer r.mu.Unlock()

	ws, ok := r.workspaces[ownerID]
	if !ok {
		ws = &workspace{store: fantasy.NewStore(r.ids, r.now)}
		r.workspaces[ownerID] = ws
	}
	return ws
}

package fantasy

import (
	"context"
	"errors"
)

var ErrOwnerRequired = errors.New("workspace owner is required")

// WorkspaceRepository hands out the store owned by one user. fn runs with
// exclusive access to that store; the store must not escape fn.
type WorkspaceRepository interface {
	WithStore(ctx context.Context, ownerID string, fn func(*Store) error) error
}

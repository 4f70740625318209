package player

import "context"

// Repository describes player catalog reads needed by use cases.
type Repository interface {
	List(ctx context.Context) ([]Player, error)
	ListByRole(ctx context.Context, role Role) ([]Player, error)
	GetByID(ctx context.Context, id int64) (Player, bool, error)
}

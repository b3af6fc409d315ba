package uow

import (
	"claon/internal/core/domain/user"
	"context"
)

// Context is a single transaction. Rollback after a successful Commit is a no-op.
type Context interface {
	Rollback(ctx context.Context) error
	Commit(ctx context.Context) error

	Users() user.UserRepository
}

type UnitOfWork interface {
	Begin(ctx context.Context) (Context, error)
}

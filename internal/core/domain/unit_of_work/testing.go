package uow

import (
	"claon/internal/core/domain/user"
	"context"
	"errors"
)

var ErrFakeCommit = errors.New("could not commit")

// FakeUnitOfWorkContext restores the user repository to the state it had
// at Begin when rolled back without a successful commit.
type FakeUnitOfWorkContext struct {
	UserRepository    *user.FakeUserRepository
	WasRollbackCalled bool
	WasCommitCalled   bool
	CommitError       bool
	committed         bool
	snapshot          []user.User
}

func NewFakeUnitOfWorkContext(userRepository *user.FakeUserRepository) *FakeUnitOfWorkContext {
	return &FakeUnitOfWorkContext{UserRepository: userRepository}
}

func (c *FakeUnitOfWorkContext) Rollback(ctx context.Context) error {
	c.WasRollbackCalled = true
	if !c.committed && c.snapshot != nil {
		c.UserRepository.Restore(c.snapshot)
	}
	return nil
}

func (c *FakeUnitOfWorkContext) Commit(ctx context.Context) error {
	c.WasCommitCalled = true
	if c.CommitError {
		return ErrFakeCommit
	}
	c.committed = true
	return nil
}

func (c *FakeUnitOfWorkContext) Users() user.UserRepository {
	return c.UserRepository
}

type FakeUnitOfWork struct {
	Context     *FakeUnitOfWorkContext
	ReturnError bool
}

func NewFakeUnitOfWork() *FakeUnitOfWork {
	return &FakeUnitOfWork{
		Context: NewFakeUnitOfWorkContext(user.NewFakeUserRepository()),
	}
}

func (u *FakeUnitOfWork) Begin(ctx context.Context) (Context, error) {
	if u.ReturnError {
		return nil, errors.New("could not begin transaction")
	}
	u.Context.committed = false
	u.Context.snapshot = u.Context.UserRepository.Snapshot()
	return u.Context, nil
}

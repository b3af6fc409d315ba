package checkemailduplicated

import (
	c "claon/internal/core/domain/common"
	e "claon/internal/core/domain/errors"
	"claon/internal/core/domain/logging"
	"claon/internal/core/domain/user"
	"claon/internal/core/services"
	"context"
	"errors"
)

type Input struct {
	Email c.Email
}

type Result struct {
	IsDuplicated bool
}

type service struct {
	log   logging.Logger
	users user.UserRepository
}

func New(log logging.Logger, users user.UserRepository) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if users == nil {
		panic(e.NewNilArgumentError("users"))
	}
	return &service{log: log, users: users}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	_, err = s.users.GetByEmail(ctx, input.Email)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, user.ErrUserDoesNotExist) {
		return Result{IsDuplicated: false}, nil
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not get user by email.",
			logging.Entry("email", input.Email),
			logging.Entry("err", err),
		)
		return result, err
	}
	return Result{IsDuplicated: true}, nil
}

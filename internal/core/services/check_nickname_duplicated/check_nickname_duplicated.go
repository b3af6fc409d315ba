package checknicknameduplicated

import (
	e "claon/internal/core/domain/errors"
	"claon/internal/core/domain/logging"
	"claon/internal/core/domain/user"
	"claon/internal/core/services"
	"context"
	"errors"
)

type Input struct {
	Nickname user.Nickname
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
	_, err = s.users.GetByNickname(ctx, input.Nickname)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, user.ErrUserDoesNotExist) {
		return Result{IsDuplicated: false}, nil
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not get user by nickname.",
			logging.Entry("nickname", input.Nickname),
			logging.Entry("err", err),
		)
		return result, err
	}
	return Result{IsDuplicated: true}, nil
}

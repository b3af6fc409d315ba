package resetpassword

import (
	c "claon/internal/core/domain/common"
	e "claon/internal/core/domain/errors"
	"claon/internal/core/domain/logging"
	ratelimiter "claon/internal/core/domain/rate_limiter"
	uow "claon/internal/core/domain/unit_of_work"
	"claon/internal/core/domain/user"
	"claon/internal/core/services"
	"context"
	"errors"
	"fmt"
)

type Input struct {
	Email       c.Email
	PhoneNumber user.PhoneNumber
}

func (i Input) GetRateLimitKey() string {
	return "reset-password::" + string(c.NewEmail(string(i.Email)))
}

func UserRateLimitKey(id user.ID) string {
	return fmt.Sprintf("reset-password::user::%d", id)
}

type Result struct {
	User              user.User
	TemporaryPassword user.RawPassword
}

type service struct {
	log               logging.Logger
	unitOfWork        uow.UnitOfWork
	passwordGenerator user.PasswordGenerator
	passwordHasher    user.PasswordHasher
	rateLimiter       ratelimiter.RateLimiter
	userRateLimit     ratelimiter.Limit
}

// New returns a result only after the new password is committed. Resets are
// limited per matched user by userRateLimit, whichever email or phone number
// the request used.
func New(
	log logging.Logger,
	unitOfWork uow.UnitOfWork,
	passwordGenerator user.PasswordGenerator,
	passwordHasher user.PasswordHasher,
	rateLimiter ratelimiter.RateLimiter,
	userRateLimit ratelimiter.Limit,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if unitOfWork == nil {
		panic(e.NewNilArgumentError("unitOfWork"))
	}
	if passwordGenerator == nil {
		panic(e.NewNilArgumentError("passwordGenerator"))
	}
	if passwordHasher == nil {
		panic(e.NewNilArgumentError("passwordHasher"))
	}
	if rateLimiter == nil {
		panic(e.NewNilArgumentError("rateLimiter"))
	}
	return &service{
		log:               log,
		unitOfWork:        unitOfWork,
		passwordGenerator: passwordGenerator,
		passwordHasher:    passwordHasher,
		rateLimiter:       rateLimiter,
		userRateLimit:     userRateLimit,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	uow, err := s.unitOfWork.Begin(ctx)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Error(ctx, "Could not begin unit of work.", logging.Entry("err", err))
		return result, err
	}
	defer uow.Rollback(ctx)

	found, err := s.findUser(ctx, uow.Users(), input)
	if err != nil {
		return result, err
	}

	// Concurrent resets of one user wait here until this one commits.
	u, err := uow.Users().GetByIDForUpdate(ctx, found.ID)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Error(ctx, "Could not lock user.", logging.Entry("userId", found.ID), logging.Entry("err", err))
		return result, err
	}

	rateLimitKey := UserRateLimitKey(u.ID)
	if !s.rateLimiter.CheckLimit(ctx, rateLimitKey, s.userRateLimit).IsAllowed {
		s.log.Warning(ctx, "Rate limit exceeded.", logging.Entry("key", rateLimitKey))
		return result, ratelimiter.ErrRateLimitExceeded
	}

	password := s.passwordGenerator.GeneratePassword()
	passwordHash, err := s.passwordHasher.HashPassword(password)
	if err != nil {
		s.log.Error(ctx, "Could not hash password.", logging.Entry("err", err))
		return result, err
	}

	err = uow.Users().SetPassword(ctx, u.ID, passwordHash)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not update user password.",
			logging.Entry("userId", u.ID),
			logging.Entry("err", err),
		)
		return result, err
	}

	err = uow.Commit(ctx)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not commit unit of work.",
			logging.Entry("userId", u.ID),
			logging.Entry("err", err),
		)
		return result, err
	}

	u.PasswordHash = c.NewOptional(passwordHash, true)
	s.log.Info(ctx, "Temporary password has been set.", logging.Entry("userId", u.ID))
	return Result{User: u, TemporaryPassword: password}, nil
}

// findUser looks up the user by email and falls back to the phone number.
func (s *service) findUser(ctx context.Context, users user.UserRepository, input Input) (u user.User, err error) {
	u, err = users.GetByEmail(ctx, input.Email)
	if err == nil {
		return u, nil
	}
	if !errors.Is(err, user.ErrUserDoesNotExist) {
		if !errors.Is(err, context.Canceled) {
			s.log.Error(ctx, "Could not get user by email.", logging.Entry("err", err))
		}
		return u, err
	}

	if input.PhoneNumber == "" {
		s.log.Info(ctx, "User not found for password reset.", logging.Entry("email", input.Email))
		return u, user.NewUserNotFoundError()
	}

	u, err = users.GetByPhoneNumber(ctx, input.PhoneNumber)
	if errors.Is(err, user.ErrUserDoesNotExist) {
		s.log.Info(
			ctx,
			"User not found for password reset.",
			logging.Entry("email", input.Email),
			logging.Entry("phoneNumber", input.PhoneNumber),
		)
		return u, user.NewUserNotFoundError()
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		s.log.Error(ctx, "Could not get user by phone number.", logging.Entry("err", err))
	}
	return u, err
}

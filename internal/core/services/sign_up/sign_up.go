package signup

import (
	"claon/internal/core/domain/area"
	c "claon/internal/core/domain/common"
	e "claon/internal/core/domain/errors"
	"claon/internal/core/domain/logging"
	uow "claon/internal/core/domain/unit_of_work"
	"claon/internal/core/domain/user"
	"claon/internal/core/services"
	"context"
	"errors"
	"time"
)

type Input struct {
	Email                  c.Email
	Nickname               user.Nickname
	PhoneNumber            user.PhoneNumber
	Password               c.Optional[user.RawPassword]
	MetropolitanActiveArea string
	BasicLocalActiveArea   string
	ImagePath              string
	InstagramID            c.Optional[user.InstagramID]
}

type Result struct {
	User user.User
}

type service struct {
	log               logging.Logger
	unitOfWork        uow.UnitOfWork
	passwordHasher    user.PasswordHasher
	passwordValidator user.PasswordFormatValidator
	now               func() time.Time
}

func New(
	log logging.Logger,
	unitOfWork uow.UnitOfWork,
	passwordHasher user.PasswordHasher,
	passwordValidator user.PasswordFormatValidator,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if unitOfWork == nil {
		panic(e.NewNilArgumentError("unitOfWork"))
	}
	if passwordHasher == nil {
		panic(e.NewNilArgumentError("passwordHasher"))
	}
	if passwordValidator == nil {
		panic(e.NewNilArgumentError("passwordValidator"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:               log,
		unitOfWork:        unitOfWork,
		passwordHasher:    passwordHasher,
		passwordValidator: passwordValidator,
		now:               now,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	if input.Nickname == "" {
		s.log.Info(ctx, "Nickname is blank.", logging.Entry("email", input.Email))
		return result, user.NewInvalidNicknameError()
	}
	if input.PhoneNumber == "" {
		s.log.Info(ctx, "Phone number is blank.", logging.Entry("email", input.Email))
		return result, user.NewInvalidPhoneNumberError()
	}

	uow, err := s.unitOfWork.Begin(ctx)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Error(ctx, "Could not begin unit of work.", logging.Entry("err", err))
		return result, err
	}
	defer uow.Rollback(ctx)

	err = s.checkUniqueness(ctx, uow.Users(), input)
	if err != nil {
		return result, err
	}

	passwordHash, err := s.hashPassword(ctx, input.Password)
	if err != nil {
		return result, err
	}

	metropolitan, err := area.NewMetropolitanArea(input.MetropolitanActiveArea)
	if err != nil {
		s.log.Info(ctx, "Unknown metropolitan area.", logging.Entry("area", input.MetropolitanActiveArea))
		return result, err
	}
	local, err := area.NewBasicLocalArea(input.MetropolitanActiveArea, input.BasicLocalActiveArea)
	if err != nil {
		s.log.Info(
			ctx,
			"Unknown basic local area.",
			logging.Entry("metropolitan", input.MetropolitanActiveArea),
			logging.Entry("area", input.BasicLocalActiveArea),
		)
		return result, err
	}

	createdUser, err := uow.Users().Create(ctx, user.CreateUserInput{
		Email:                  input.Email,
		Nickname:               input.Nickname,
		PhoneNumber:            input.PhoneNumber,
		PasswordHash:           passwordHash,
		MetropolitanActiveArea: metropolitan,
		BasicLocalActiveArea:   local,
		ImagePath:              input.ImagePath,
		InstagramID:            input.InstagramID,
		CreatedAt:              s.now(),
	})
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, user.ErrEmailAlreadyExists) {
		s.log.Info(ctx, "User with the email was created concurrently.", logging.Entry("email", input.Email))
		return result, user.NewEmailAlreadyExistsError(input.Email)
	}
	if errors.Is(err, user.ErrNicknameAlreadyExists) {
		s.log.Info(ctx, "User with the nickname was created concurrently.", logging.Entry("nickname", input.Nickname))
		return result, user.NewNicknameAlreadyExistsError(input.Nickname)
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not create new user.",
			logging.Entry("email", input.Email),
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
			logging.Entry("email", input.Email),
			logging.Entry("err", err),
		)
		return result, err
	}

	s.log.Info(ctx, "New user has been created.", logging.Entry("userId", createdUser.ID))
	return Result{User: createdUser}, nil
}

func (s *service) checkUniqueness(ctx context.Context, users user.UserRepository, input Input) error {
	_, err := users.GetByEmail(ctx, input.Email)
	if err == nil {
		s.log.Info(ctx, "User with the email already exists.", logging.Entry("email", input.Email))
		return user.NewEmailAlreadyExistsError(input.Email)
	}
	if !errors.Is(err, user.ErrUserDoesNotExist) {
		if !errors.Is(err, context.Canceled) {
			s.log.Error(ctx, "Could not get user by email.", logging.Entry("err", err))
		}
		return err
	}

	_, err = users.GetByNickname(ctx, input.Nickname)
	if err == nil {
		s.log.Info(ctx, "User with the nickname already exists.", logging.Entry("nickname", input.Nickname))
		return user.NewNicknameAlreadyExistsError(input.Nickname)
	}
	if !errors.Is(err, user.ErrUserDoesNotExist) {
		if !errors.Is(err, context.Canceled) {
			s.log.Error(ctx, "Could not get user by nickname.", logging.Entry("err", err))
		}
		return err
	}
	return nil
}

func (s *service) hashPassword(
	ctx context.Context,
	password c.Optional[user.RawPassword],
) (hash c.Optional[user.PasswordHash], err error) {
	if !password.IsPresent {
		return hash, nil
	}
	err = s.passwordValidator.ValidatePasswordFormat(password.Value)
	if err != nil {
		s.log.Info(ctx, "Password does not satisfy the format policy.", logging.Entry("err", err))
		return hash, err
	}
	passwordHash, err := s.passwordHasher.HashPassword(password.Value)
	if err != nil {
		s.log.Error(ctx, "Could not hash password.", logging.Entry("err", err))
		return hash, err
	}
	return c.NewOptional(passwordHash, true), nil
}

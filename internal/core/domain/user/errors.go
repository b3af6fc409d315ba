package user

import (
	c "claon/internal/core/domain/common"
	e "claon/internal/core/domain/errors"
	"errors"
	"fmt"
)

var (
	ErrEmailAlreadyExists    = errors.New("email already exists")
	ErrNicknameAlreadyExists = errors.New("nickname already exists")
	ErrUserDoesNotExist      = errors.New("user does not exist")
	ErrInvalidPasswordFormat = errors.New("invalid password format")
	ErrInvalidNickname       = errors.New("invalid nickname")
	ErrInvalidPhoneNumber    = errors.New("invalid phone number")
)

func NewEmailAlreadyExistsError(email c.Email) *e.Error {
	return e.NewConflictError(
		e.CodeEmailAlreadyExists,
		fmt.Sprintf("user with email %q already exists", email),
		ErrEmailAlreadyExists,
	)
}

func NewNicknameAlreadyExistsError(nickname Nickname) *e.Error {
	return e.NewConflictError(
		e.CodeNicknameAlreadyExists,
		fmt.Sprintf("user with nickname %q already exists", nickname),
		ErrNicknameAlreadyExists,
	)
}

func NewUserNotFoundError() *e.Error {
	return e.NewNotFoundError(e.CodeUserNotFound, "no user matches the given email or phone number", ErrUserDoesNotExist)
}

func NewInvalidNicknameError() *e.Error {
	return e.NewValidationError(e.CodeInvalidNickname, "nickname must not be blank", ErrInvalidNickname)
}

func NewInvalidPhoneNumberError() *e.Error {
	return e.NewValidationError(e.CodeInvalidPhoneNumber, "phone number must not be blank", ErrInvalidPhoneNumber)
}

// NewInvalidPasswordFormatError keeps the policy violation details for logs.
func NewInvalidPasswordFormatError(reason error) *e.Error {
	return e.NewValidationError(
		e.CodeInvalidPasswordFormat,
		fmt.Sprintf("%v: %v", ErrInvalidPasswordFormat, reason),
		ErrInvalidPasswordFormat,
	)
}

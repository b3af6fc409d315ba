package user

import (
	"claon/internal/core/domain/area"
	c "claon/internal/core/domain/common"
	e "claon/internal/core/domain/errors"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSecretsAreMaskedWhenFormatted(t *testing.T) {
	require.Equal(t, "***", fmt.Sprintf("%v", RawPassword("Secret#1")))
	require.Equal(t, "***", fmt.Sprintf("%s", PasswordHash("abc")))
}

func TestUserValidate(t *testing.T) {
	local, err := area.NewBasicLocalArea(string(area.Seoul), "강남구")
	require.Nil(t, err)

	u := User{
		ID:                     1,
		Email:                  c.NewEmail("a@b.com"),
		Nickname:               "climber",
		PhoneNumber:            "010-1234-5678",
		MetropolitanActiveArea: area.Seoul,
		BasicLocalActiveArea:   local,
	}
	require.Nil(t, u.Validate())
	require.False(t, u.HasPassword())

	u.PhoneNumber = NewPhoneNumber("   ")
	require.NotNil(t, u.Validate())
	u.PhoneNumber = "010-1234-5678"

	u.MetropolitanActiveArea = area.Busan
	require.NotNil(t, u.Validate())
}

func TestBlankFieldErrors(t *testing.T) {
	require.ErrorIs(t, NewInvalidNicknameError(), ErrInvalidNickname)
	require.Equal(t, e.KindValidation, e.KindOf(NewInvalidNicknameError()))
	require.Equal(t, e.CodeInvalidPhoneNumber, e.CodeOf(NewInvalidPhoneNumberError()))
	require.Equal(t, Nickname(""), NewNickname(" \t "))
}

func TestCodedErrorsWrapSentinels(t *testing.T) {
	err := NewEmailAlreadyExistsError("a@b.com")
	require.ErrorIs(t, err, ErrEmailAlreadyExists)
	require.Equal(t, e.KindConflict, e.KindOf(err))

	err = NewNicknameAlreadyExistsError("climber")
	require.ErrorIs(t, err, ErrNicknameAlreadyExists)
	require.Equal(t, e.CodeNicknameAlreadyExists, e.CodeOf(err))

	err = NewUserNotFoundError()
	require.ErrorIs(t, err, ErrUserDoesNotExist)
	require.Equal(t, e.KindNotFound, e.KindOf(err))

	err = NewInvalidPasswordFormatError(errors.New("too short"))
	require.ErrorIs(t, err, ErrInvalidPasswordFormat)
	require.Equal(t, e.KindValidation, e.KindOf(err))
	require.Contains(t, err.Error(), "too short")
}

package user

import (
	"claon/internal/core/domain/area"
	c "claon/internal/core/domain/common"
	"context"
	"time"
)

type CreateUserInput struct {
	Email                  c.Email
	Nickname               Nickname
	PhoneNumber            PhoneNumber
	PasswordHash           c.Optional[PasswordHash]
	MetropolitanActiveArea area.MetropolitanArea
	BasicLocalActiveArea   area.BasicLocalArea
	ImagePath              string
	InstagramID            c.Optional[InstagramID]
	CreatedAt              time.Time
}

// UserRepository returns ErrUserDoesNotExist for missed lookups. Create
// reports unique index violations as ErrEmailAlreadyExists or
// ErrNicknameAlreadyExists. GetByIDForUpdate locks the user until the unit
// of work ends.
type UserRepository interface {
	Create(ctx context.Context, input CreateUserInput) (User, error)
	GetByEmail(ctx context.Context, email c.Email) (User, error)
	GetByNickname(ctx context.Context, nickname Nickname) (User, error)
	GetByPhoneNumber(ctx context.Context, phoneNumber PhoneNumber) (User, error)
	GetByIDForUpdate(ctx context.Context, id ID) (User, error)
	SetPassword(ctx context.Context, id ID, password PasswordHash) error
}

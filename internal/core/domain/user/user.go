package user

import (
	"claon/internal/core/domain/area"
	c "claon/internal/core/domain/common"
	e "claon/internal/core/domain/errors"
	"fmt"
	"strings"
	"time"
)

type ID int64

type PasswordHash string

func (p PasswordHash) String() string {
	return "***"
}

type RawPassword string

func (p RawPassword) String() string {
	return "***"
}

type Nickname string

func NewNickname(raw string) Nickname {
	return Nickname(strings.TrimSpace(raw))
}

type PhoneNumber string

func NewPhoneNumber(raw string) PhoneNumber {
	return PhoneNumber(strings.TrimSpace(raw))
}

type InstagramID string

type User struct {
	ID                     ID
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

func (u *User) Validate() error {
	if u.Email == "" {
		return e.NewInvalidStateError(fmt.Sprintf("email is not set for user %d", u.ID))
	}
	if u.Nickname == "" {
		return e.NewInvalidStateError(fmt.Sprintf("nickname is not set for user %d", u.ID))
	}
	if u.PhoneNumber == "" {
		return e.NewInvalidStateError(fmt.Sprintf("phone number is not set for user %d", u.ID))
	}
	if u.BasicLocalActiveArea.Metropolitan != u.MetropolitanActiveArea {
		return e.NewInvalidStateError(
			fmt.Sprintf("basic local area does not belong to metropolitan area for user %d", u.ID),
		)
	}
	return nil
}

// HasPassword is false for accounts created through a social sign-up.
func (u *User) HasPassword() bool {
	return u.PasswordHash.IsPresent
}

package user

import (
	c "claon/internal/core/domain/common"
	"context"
	"crypto/md5"
	"fmt"
	"io"
	"sync"
)

type FakePasswordHasher struct{}

func NewFakePasswordHasher() *FakePasswordHasher {
	return &FakePasswordHasher{}
}

func (h *FakePasswordHasher) HashPassword(password RawPassword) (PasswordHash, error) {
	hash := md5.New()
	io.WriteString(hash, string(password))
	return PasswordHash(fmt.Sprintf("%x", hash.Sum(nil))), nil
}

func (h *FakePasswordHasher) ValidatePassword(password RawPassword, hash PasswordHash) bool {
	actualHash, err := h.HashPassword(password)
	if err != nil {
		return false
	}
	return actualHash == hash
}

type FakePasswordGenerator struct {
	Password RawPassword
	Calls    int
}

func NewFakePasswordGenerator(password string) *FakePasswordGenerator {
	return &FakePasswordGenerator{Password: RawPassword(password)}
}

func (g *FakePasswordGenerator) GeneratePassword() RawPassword {
	g.Calls++
	return g.Password
}

type FakePasswordFormatValidator struct {
	Invalid map[RawPassword]bool
}

func NewFakePasswordFormatValidator(invalid ...string) *FakePasswordFormatValidator {
	v := &FakePasswordFormatValidator{Invalid: make(map[RawPassword]bool)}
	for _, p := range invalid {
		v.Invalid[RawPassword(p)] = true
	}
	return v
}

func (v *FakePasswordFormatValidator) ValidatePasswordFormat(password RawPassword) error {
	if v.Invalid[password] {
		return NewInvalidPasswordFormatError(fmt.Errorf("password is marked as invalid"))
	}
	return nil
}

type FakeUserRepository struct {
	Users       []User
	ReturnError bool
	// SkipUniqueChecks makes Create accept duplicates, so callers can
	// simulate a store without unique indexes.
	SkipUniqueChecks bool
	CreateCalls      int
	LockedIDs        []ID
	lock             sync.Mutex
}

func NewFakeUserRepository() *FakeUserRepository {
	return &FakeUserRepository{Users: make([]User, 0, 10)}
}

func (r *FakeUserRepository) Create(ctx context.Context, input CreateUserInput) (u User, err error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.CreateCalls++
	if r.ReturnError {
		return u, fmt.Errorf("could not create user %v", input.Email)
	}
	maxID := ID(0)
	for _, existing := range r.Users {
		if !r.SkipUniqueChecks && existing.Email == input.Email {
			return u, ErrEmailAlreadyExists
		}
		if !r.SkipUniqueChecks && existing.Nickname == input.Nickname {
			return u, ErrNicknameAlreadyExists
		}
		if existing.ID > maxID {
			maxID = existing.ID
		}
	}
	u = User{
		ID:                     maxID + 1,
		Email:                  input.Email,
		Nickname:               input.Nickname,
		PhoneNumber:            input.PhoneNumber,
		PasswordHash:           input.PasswordHash,
		MetropolitanActiveArea: input.MetropolitanActiveArea,
		BasicLocalActiveArea:   input.BasicLocalActiveArea,
		ImagePath:              input.ImagePath,
		InstagramID:            input.InstagramID,
		CreatedAt:              input.CreatedAt,
	}
	r.Users = append(r.Users, u)
	return u, nil
}

func (r *FakeUserRepository) GetByEmail(ctx context.Context, email c.Email) (u User, err error) {
	return r.find(func(u User) bool { return u.Email == email })
}

func (r *FakeUserRepository) GetByNickname(ctx context.Context, nickname Nickname) (u User, err error) {
	return r.find(func(u User) bool { return u.Nickname == nickname })
}

func (r *FakeUserRepository) GetByPhoneNumber(ctx context.Context, phoneNumber PhoneNumber) (u User, err error) {
	return r.find(func(u User) bool { return u.PhoneNumber == phoneNumber })
}

func (r *FakeUserRepository) GetByIDForUpdate(ctx context.Context, id ID) (u User, err error) {
	u, err = r.find(func(u User) bool { return u.ID == id })
	if err == nil {
		r.lock.Lock()
		r.LockedIDs = append(r.LockedIDs, id)
		r.lock.Unlock()
	}
	return u, err
}

func (r *FakeUserRepository) SetPassword(ctx context.Context, id ID, password PasswordHash) error {
	r.lock.Lock()
	defer r.lock.Unlock()
	if r.ReturnError {
		return fmt.Errorf("could not set password for user %d", id)
	}
	for ix, u := range r.Users {
		if u.ID == id {
			r.Users[ix].PasswordHash = c.NewOptional(password, true)
			return nil
		}
	}
	return ErrUserDoesNotExist
}

// Snapshot and Restore let a fake unit of work emulate rollback.
func (r *FakeUserRepository) Snapshot() []User {
	r.lock.Lock()
	defer r.lock.Unlock()
	users := make([]User, len(r.Users))
	copy(users, r.Users)
	return users
}

func (r *FakeUserRepository) Restore(users []User) {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.Users = users
}

func (r *FakeUserRepository) find(match func(User) bool) (u User, err error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	if r.ReturnError {
		return u, fmt.Errorf("could not get user")
	}
	for _, u := range r.Users {
		if match(u) {
			return u, nil
		}
	}
	return u, ErrUserDoesNotExist
}

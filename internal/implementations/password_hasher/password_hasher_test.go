package passwordhasher

import (
	"claon/internal/core/domain/user"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestPasswordValid(t *testing.T) {
	type testcase struct {
		secret   string
		cost     int
		password string
	}
	cases := []testcase{
		{secret: "test", cost: 5, password: "Secret#123"},
		{secret: "", cost: 5, password: ""},
		{secret: "a", cost: 7, password: "abcdefghijklmnopqrst&1Z"},
		{secret: "   b   ", cost: 10, password: "   test   "},
	}
	for ix, c := range cases {
		t.Run(fmt.Sprint(ix), func(t *testing.T) {
			h := NewBcrypt(c.secret, c.cost)
			hash, err := h.HashPassword(user.RawPassword(c.password))
			require.Nil(t, err)
			require.NotEmpty(t, hash)
			require.NotEqual(t, user.PasswordHash(c.password), hash)
			require.True(t, h.ValidatePassword(user.RawPassword(c.password), hash))
		})
	}
}

func TestPasswordInvalid(t *testing.T) {
	type testcase struct {
		secretToHash    string
		secretToCheck   string
		passwordToHash  string
		passwordToCheck string
	}
	cases := []testcase{
		{secretToHash: "test", secretToCheck: "test", passwordToHash: "test", passwordToCheck: "test "},
		{secretToHash: "test", secretToCheck: "test ", passwordToHash: "test", passwordToCheck: "test"},
		{secretToHash: "", secretToCheck: "", passwordToHash: "", passwordToCheck: " "},
		{secretToHash: "a", secretToCheck: "a", passwordToHash: "Secret#1", passwordToCheck: "secret#1"},
	}
	for ix, c := range cases {
		t.Run(fmt.Sprint(ix), func(t *testing.T) {
			hash, err := NewBcrypt(c.secretToHash, 5).HashPassword(user.RawPassword(c.passwordToHash))
			require.Nil(t, err)
			require.False(t, NewBcrypt(c.secretToCheck, 5).ValidatePassword(user.RawPassword(c.passwordToCheck), hash))
		})
	}
}

func TestInvalidCostFallsBackToDefault(t *testing.T) {
	h := NewBcrypt("secret", 100)
	hash, err := h.HashPassword("Secret#1")
	require.Nil(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.Nil(t, err)
	require.Equal(t, bcrypt.DefaultCost, cost)
}

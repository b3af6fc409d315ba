package user

import (
	c "claon/internal/core/domain/common"
	"claon/internal/core/domain/user"
	"claon/internal/db"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPgxUserRepositoryIntegration(t *testing.T) {
	pool := db.CreateTestPool(t)
	defer pool.Close()
	defer db.TruncateTables(pool)
	repo := NewPgxRepository(pool)
	ctx := context.Background()

	created, err := repo.Create(ctx, createInput())
	require.Nil(t, err)

	byEmail, err := repo.GetByEmail(ctx, EMAIL)
	require.Nil(t, err)
	require.Equal(t, created.ID, byEmail.ID)
	require.True(t, byEmail.CreatedAt.Equal(NOW))

	_, err = repo.Create(ctx, createInput())
	require.ErrorIs(t, err, user.ErrEmailAlreadyExists)

	input := createInput()
	input.Email = c.Email("other@test.test")
	_, err = repo.Create(ctx, input)
	require.ErrorIs(t, err, user.ErrNicknameAlreadyExists)

	require.Nil(t, repo.SetPassword(ctx, created.ID, "new-hash"))
	byPhone, err := repo.GetByPhoneNumber(ctx, PHONE_NUMBER)
	require.Nil(t, err)
	require.Equal(t, user.PasswordHash("new-hash"), byPhone.PasswordHash.Value)
}

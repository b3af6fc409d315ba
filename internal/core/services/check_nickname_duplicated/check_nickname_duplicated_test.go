package checknicknameduplicated

import (
	"claon/internal/core/domain/logging"
	"claon/internal/core/domain/user"
	"claon/internal/core/services"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"
)

const NICKNAME = user.Nickname("climber")

type testSuite struct {
	suite.Suite
	Logger  *logging.FakeLogger
	Users   *user.FakeUserRepository
	Service services.Service[Input, Result]
}

func (suite *testSuite) SetupTest() {
	suite.Logger = logging.NewFakeLogger()
	suite.Users = user.NewFakeUserRepository()
	suite.Service = New(suite.Logger, suite.Users)
}

func TestCheckNicknameDuplicatedService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (suite *testSuite) TestNotDuplicated() {
	result, err := suite.Service.Run(context.Background(), Input{Nickname: NICKNAME})

	assert := suite.Require()
	assert.Nil(err)
	assert.False(result.IsDuplicated)
}

func (suite *testSuite) TestDuplicated() {
	ctx := context.Background()
	_, err := suite.Users.Create(ctx, user.CreateUserInput{Email: "test@test.test", Nickname: NICKNAME})
	suite.Require().Nil(err)

	result, err := suite.Service.Run(ctx, Input{Nickname: NICKNAME})

	assert := suite.Require()
	assert.Nil(err)
	assert.True(result.IsDuplicated)
}

func (suite *testSuite) TestOtherNicknameIsNotDuplicated() {
	ctx := context.Background()
	_, err := suite.Users.Create(ctx, user.CreateUserInput{Email: "test@test.test", Nickname: NICKNAME})
	suite.Require().Nil(err)

	result, err := suite.Service.Run(ctx, Input{Nickname: "boulderer"})

	assert := suite.Require()
	assert.Nil(err)
	assert.False(result.IsDuplicated)
}

func (suite *testSuite) TestContextCanceledIsNotLogged() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	service := New(suite.Logger, canceledRepository{suite.Users})

	_, err := service.Run(ctx, Input{Nickname: NICKNAME})

	assert := suite.Require()
	assert.True(errors.Is(err, context.Canceled))
	assert.Empty(suite.Logger.Logged)
}

type canceledRepository struct {
	*user.FakeUserRepository
}

func (r canceledRepository) GetByNickname(ctx context.Context, nickname user.Nickname) (user.User, error) {
	return user.User{}, ctx.Err()
}

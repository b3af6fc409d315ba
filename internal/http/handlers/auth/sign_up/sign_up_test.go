package signup

import (
	"claon/internal/core/domain/area"
	c "claon/internal/core/domain/common"
	"claon/internal/core/domain/user"
	"claon/internal/core/services"
	signup "claon/internal/core/services/sign_up"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

const REQUEST_BODY = `{
	"email": "Climber@Example.com",
	"nickname": "climber",
	"phone_number": "010-1234-5678",
	"password": "secret12!",
	"metropolitan_active_area": "서울특별시",
	"basic_local_active_area": "강남구",
	"image_path": "/images/climber.png",
	"instagram_id": "climber_ig"
}`

type testSuite struct {
	suite.Suite
	Service *services.FakeService[signup.Input, signup.Result]
	Now     time.Time
}

func (suite *testSuite) SetupTest() {
	suite.Now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	suite.Service = services.NewFakeService[signup.Input](signup.Result{
		User: user.User{
			ID:                     1,
			Email:                  c.NewEmail("climber@example.com"),
			Nickname:               "climber",
			PhoneNumber:            "010-1234-5678",
			PasswordHash:           c.NewOptional(user.PasswordHash("hash"), true),
			MetropolitanActiveArea: area.Seoul,
			BasicLocalActiveArea:   area.BasicLocalArea{Metropolitan: area.Seoul, Name: "강남구"},
			ImagePath:              "/images/climber.png",
			CreatedAt:              suite.Now,
		},
	}, nil)
}

func TestSignUpHandler(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (suite *testSuite) serve(body string) *httptest.ResponseRecorder {
	rw := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/auth/signup", strings.NewReader(body))
	New(suite.Service).ServeHTTP(rw, r)
	return rw
}

func (suite *testSuite) TestSuccess() {
	assert := suite.Require()

	rw := suite.serve(REQUEST_BODY)

	assert.Equal(http.StatusCreated, rw.Code)
	res := struct {
		User map[string]interface{} `json:"user"`
	}{}
	assert.Nil(json.Unmarshal(rw.Body.Bytes(), &res))
	assert.Equal(float64(1), res.User["id"])
	assert.Equal("climber@example.com", res.User["email"])
	assert.Equal(true, res.User["has_password"])
	assert.NotContains(res.User, "password_hash")

	assert.Len(suite.Service.Inputs, 1)
	input := suite.Service.Inputs[0]
	assert.Equal(c.Email("climber@example.com"), input.Email)
	assert.Equal(user.Nickname("climber"), input.Nickname)
	assert.True(input.Password.IsPresent)
	assert.Equal(user.RawPassword("secret12!"), input.Password.Value)
	assert.Equal("서울특별시", input.MetropolitanActiveArea)
	assert.Equal("강남구", input.BasicLocalActiveArea)
	assert.Equal(user.InstagramID("climber_ig"), input.InstagramID.Value)
}

func (suite *testSuite) TestWithoutPassword() {
	assert := suite.Require()

	rw := suite.serve(`{
		"email": "climber@example.com",
		"nickname": "climber",
		"phone_number": "010-1234-5678",
		"metropolitan_active_area": "서울특별시",
		"basic_local_active_area": "강남구"
	}`)

	assert.Equal(http.StatusCreated, rw.Code)
	assert.False(suite.Service.Inputs[0].Password.IsPresent)
	assert.False(suite.Service.Inputs[0].InstagramID.IsPresent)
}

func (suite *testSuite) TestMalformedJSON() {
	assert := suite.Require()

	rw := suite.serve(`{"email": `)

	assert.Equal(http.StatusBadRequest, rw.Code)
	assert.Contains(rw.Body.String(), "INVALID_REQUEST")
	assert.Empty(suite.Service.Inputs)
}

func (suite *testSuite) TestInvalidFields() {
	assert := suite.Require()

	rw := suite.serve(`{"email": "not-an-email", "nickname": "c"}`)

	assert.Equal(http.StatusBadRequest, rw.Code)
	res := map[string]string{}
	assert.Nil(json.Unmarshal(rw.Body.Bytes(), &res))
	assert.Contains(res, "email")
	assert.Contains(res, "nickname")
	assert.Contains(res, "phone_number")
	assert.Empty(suite.Service.Inputs)
}

func (suite *testSuite) TestEmailConflict() {
	assert := suite.Require()
	suite.Service.ReturnError = user.NewEmailAlreadyExistsError(c.NewEmail("climber@example.com"))

	rw := suite.serve(REQUEST_BODY)

	assert.Equal(http.StatusConflict, rw.Code)
	assert.Contains(rw.Body.String(), "EMAIL_ALREADY_EXISTS")
}

func (suite *testSuite) TestNicknameConflict() {
	assert := suite.Require()
	suite.Service.ReturnError = user.NewNicknameAlreadyExistsError("climber")

	rw := suite.serve(REQUEST_BODY)

	assert.Equal(http.StatusConflict, rw.Code)
	assert.Contains(rw.Body.String(), "NICKNAME_ALREADY_EXISTS")
}

func (suite *testSuite) TestInvalidArea() {
	assert := suite.Require()
	_, err := area.NewMetropolitanArea("nowhere")
	suite.Service.ReturnError = err

	rw := suite.serve(REQUEST_BODY)

	assert.Equal(http.StatusBadRequest, rw.Code)
	assert.Contains(rw.Body.String(), "INVALID_AREA")
}

func (suite *testSuite) TestBlankFieldsAreRejected() {
	assert := suite.Require()

	rw := suite.serve(`{
		"email": "climber@example.com",
		"nickname": "    ",
		"phone_number": "   ",
		"metropolitan_active_area": " ",
		"basic_local_active_area": "강남구"
	}`)

	assert.Equal(http.StatusBadRequest, rw.Code)
	res := map[string]string{}
	assert.Nil(json.Unmarshal(rw.Body.Bytes(), &res))
	assert.Contains(res, "nickname")
	assert.Contains(res, "phone_number")
	assert.Contains(res, "metropolitan_active_area")
	assert.Empty(suite.Service.Inputs)
}

func (suite *testSuite) TestFieldsAreTrimmed() {
	assert := suite.Require()

	rw := suite.serve(`{
		"email": " climber@example.com ",
		"nickname": " climber ",
		"phone_number": " 010-1234-5678 ",
		"metropolitan_active_area": "서울특별시",
		"basic_local_active_area": "강남구",
		"instagram_id": "   "
	}`)

	assert.Equal(http.StatusCreated, rw.Code)
	input := suite.Service.Inputs[0]
	assert.Equal(c.Email("climber@example.com"), input.Email)
	assert.Equal(user.Nickname("climber"), input.Nickname)
	assert.Equal(user.PhoneNumber("010-1234-5678"), input.PhoneNumber)
	assert.False(input.InstagramID.IsPresent)
}

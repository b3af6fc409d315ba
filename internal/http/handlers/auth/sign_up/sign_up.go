package signup

import (
	c "claon/internal/core/domain/common"
	e "claon/internal/core/domain/errors"
	"claon/internal/core/domain/user"
	"claon/internal/core/services"
	signup "claon/internal/core/services/sign_up"
	"claon/internal/http/handlers/response"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

type Handler struct {
	service services.Service[signup.Input, signup.Result]
}

func New(service services.Service[signup.Input, signup.Result]) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

type Input struct {
	Email                  string  `json:"email"`
	Nickname               string  `json:"nickname"`
	PhoneNumber            string  `json:"phone_number"`
	Password               *string `json:"password"`
	MetropolitanActiveArea string  `json:"metropolitan_active_area"`
	BasicLocalActiveArea   string  `json:"basic_local_active_area"`
	ImagePath              string  `json:"image_path"`
	InstagramID            string  `json:"instagram_id"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	if err := e.Decode(i); err != nil {
		return err
	}
	i.trim()
	return nil
}

// trim runs before validation so that blank values fail Required.
// Passwords are kept as sent.
func (i *Input) trim() {
	i.Email = strings.TrimSpace(i.Email)
	i.Nickname = strings.TrimSpace(i.Nickname)
	i.PhoneNumber = strings.TrimSpace(i.PhoneNumber)
	i.MetropolitanActiveArea = strings.TrimSpace(i.MetropolitanActiveArea)
	i.BasicLocalActiveArea = strings.TrimSpace(i.BasicLocalActiveArea)
	i.ImagePath = strings.TrimSpace(i.ImagePath)
	i.InstagramID = strings.TrimSpace(i.InstagramID)
}

// Password format is checked by the service so that the error carries its code.
func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Email, validation.Required, is.Email, validation.Length(0, 512)),
		validation.Field(&i.Nickname, validation.Required, validation.RuneLength(2, 20)),
		validation.Field(&i.PhoneNumber, validation.Required, validation.Length(0, 32)),
		validation.Field(&i.Password, validation.NilOrNotEmpty, validation.Length(0, 256)),
		validation.Field(&i.MetropolitanActiveArea, validation.Required),
		validation.Field(&i.BasicLocalActiveArea, validation.Required),
		validation.Field(&i.ImagePath, validation.Length(0, 1024)),
		validation.Field(&i.InstagramID, validation.Length(0, 64)),
	)
}

func (i Input) toServiceInput() signup.Input {
	input := signup.Input{
		Email:                  c.NewEmail(i.Email),
		Nickname:               user.NewNickname(i.Nickname),
		PhoneNumber:            user.NewPhoneNumber(i.PhoneNumber),
		MetropolitanActiveArea: i.MetropolitanActiveArea,
		BasicLocalActiveArea:   i.BasicLocalActiveArea,
		ImagePath:              i.ImagePath,
		InstagramID:            c.NewOptionalIfNotEmpty(user.InstagramID(i.InstagramID)),
	}
	if i.Password != nil {
		input.Password = c.NewOptional(user.RawPassword(*i.Password), true)
	}
	return input
}

type Result struct {
	User response.User `json:"user"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	input := Input{}
	if err := input.FromJSON(r.Body); err != nil {
		response.RenderInvalidRequest(rw, r)
		return
	}
	if err := input.Validate(); err != nil {
		response.Render(rw, err, http.StatusBadRequest)
		return
	}

	result, err := h.service.Run(r.Context(), input.toServiceInput())
	if err != nil {
		response.RenderDomainError(rw, r, err)
		return
	}

	res := Result{}
	res.User.FromDomainUser(result.User)
	response.Render(rw, res, http.StatusCreated)
}

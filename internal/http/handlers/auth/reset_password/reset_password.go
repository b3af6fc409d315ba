package resetpassword

import (
	c "claon/internal/core/domain/common"
	e "claon/internal/core/domain/errors"
	"claon/internal/core/domain/user"
	"claon/internal/core/services"
	resetpassword "claon/internal/core/services/reset_password"
	"claon/internal/http/handlers/response"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

const TemporaryPasswordHeader = "x-test-temporary-password"

type Handler struct {
	service    services.Service[resetpassword.Input, resetpassword.Result]
	isTestMode bool
}

func New(
	service services.Service[resetpassword.Input, resetpassword.Result],
	isTestMode bool,
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service, isTestMode: isTestMode}
}

type Input struct {
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	if err := e.Decode(i); err != nil {
		return err
	}
	i.Email = strings.TrimSpace(i.Email)
	i.PhoneNumber = strings.TrimSpace(i.PhoneNumber)
	return nil
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Email, validation.Required, is.Email, validation.Length(0, 512)),
		validation.Field(&i.PhoneNumber, validation.Required, validation.Length(0, 32)),
	)
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

	result, err := h.service.Run(
		r.Context(),
		resetpassword.Input{
			Email:       c.NewEmail(input.Email),
			PhoneNumber: user.NewPhoneNumber(input.PhoneNumber),
		},
	)
	if err != nil {
		response.RenderDomainError(rw, r, err)
		return
	}

	if h.isTestMode {
		rw.Header().Set(TemporaryPasswordHeader, string(result.TemporaryPassword))
	}
	response.Render(rw, struct{}{}, http.StatusOK)
}

package checkemailduplicated

import (
	c "claon/internal/core/domain/common"
	e "claon/internal/core/domain/errors"
	"claon/internal/core/services"
	checkemailduplicated "claon/internal/core/services/check_email_duplicated"
	"claon/internal/http/handlers/response"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

type Handler struct {
	service services.Service[checkemailduplicated.Input, checkemailduplicated.Result]
}

func New(
	service services.Service[checkemailduplicated.Input, checkemailduplicated.Result],
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

type Input struct {
	Email string
}

func (i *Input) FromQuery(r *http.Request) {
	i.Email = r.URL.Query().Get("email")
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Email, validation.Required, is.Email, validation.Length(0, 512)),
	)
}

type Result struct {
	IsDuplicated bool `json:"is_duplicated"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	input := Input{}
	input.FromQuery(r)
	if err := input.Validate(); err != nil {
		response.Render(rw, err, http.StatusBadRequest)
		return
	}

	result, err := h.service.Run(
		r.Context(),
		checkemailduplicated.Input{Email: c.NewEmail(input.Email)},
	)
	if err != nil {
		response.RenderDomainError(rw, r, err)
		return
	}

	response.Render(rw, Result{IsDuplicated: result.IsDuplicated}, http.StatusOK)
}

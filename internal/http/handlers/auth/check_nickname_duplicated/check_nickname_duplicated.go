package checknicknameduplicated

import (
	e "claon/internal/core/domain/errors"
	"claon/internal/core/domain/user"
	"claon/internal/core/services"
	checknicknameduplicated "claon/internal/core/services/check_nickname_duplicated"
	"claon/internal/http/handlers/response"
	"net/http"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"
)

type Handler struct {
	service services.Service[checknicknameduplicated.Input, checknicknameduplicated.Result]
}

func New(
	service services.Service[checknicknameduplicated.Input, checknicknameduplicated.Result],
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

type Input struct {
	Nickname string
}

func (i *Input) FromQuery(r *http.Request) {
	i.Nickname = strings.TrimSpace(r.URL.Query().Get("nickname"))
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Nickname, validation.Required, validation.RuneLength(2, 20)),
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
		checknicknameduplicated.Input{Nickname: user.NewNickname(input.Nickname)},
	)
	if err != nil {
		response.RenderDomainError(rw, r, err)
		return
	}

	response.Render(rw, Result{IsDuplicated: result.IsDuplicated}, http.StatusOK)
}

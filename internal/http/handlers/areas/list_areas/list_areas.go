package listareas

import (
	c "claon/internal/core/domain/common"
	e "claon/internal/core/domain/errors"
	"claon/internal/core/services"
	listareas "claon/internal/core/services/list_areas"
	"claon/internal/http/handlers/response"
	"net/http"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"
)

type Handler struct {
	service services.Service[listareas.Input, listareas.Result]
}

func New(service services.Service[listareas.Input, listareas.Result]) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

type Input struct {
	Metropolitan string
}

func (i *Input) FromQuery(r *http.Request) {
	i.Metropolitan = strings.TrimSpace(r.URL.Query().Get("metropolitan_area"))
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Metropolitan, validation.Length(0, 64)),
	)
}

type Area struct {
	MetropolitanArea string   `json:"metropolitan_area"`
	BasicLocalAreas  []string `json:"basic_local_areas"`
}

type Result struct {
	Areas []Area `json:"areas"`
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
		listareas.Input{Metropolitan: c.NewOptionalIfNotEmpty(input.Metropolitan)},
	)
	if err != nil {
		response.RenderDomainError(rw, r, err)
		return
	}

	res := Result{Areas: make([]Area, 0, len(result.Areas))}
	for _, a := range result.Areas {
		names := make([]string, 0, len(a.BasicLocalAreas))
		for _, local := range a.BasicLocalAreas {
			names = append(names, local.Name)
		}
		res.Areas = append(res.Areas, Area{MetropolitanArea: a.Metropolitan.String(), BasicLocalAreas: names})
	}
	response.Render(rw, res, http.StatusOK)
}

package listareas

import (
	"claon/internal/core/domain/area"
	c "claon/internal/core/domain/common"
	"claon/internal/core/services"
	"context"
)

type Input struct {
	// Restricts the result to one metropolitan area when present.
	Metropolitan c.Optional[string]
}

type Area struct {
	Metropolitan    area.MetropolitanArea
	BasicLocalAreas []area.BasicLocalArea
}

type Result struct {
	Areas []Area
}

type service struct{}

// New returns the catalogue of areas a user can pick as active areas on sign up.
func New() services.Service[Input, Result] {
	return &service{}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	if err := ctx.Err(); err != nil {
		return result, err
	}

	if input.Metropolitan.IsPresent {
		metropolitan, err := area.NewMetropolitanArea(input.Metropolitan.Value)
		if err != nil {
			return result, err
		}
		return Result{Areas: []Area{newArea(metropolitan)}}, nil
	}

	metropolitans := area.MetropolitanAreas()
	result.Areas = make([]Area, 0, len(metropolitans))
	for _, metropolitan := range metropolitans {
		result.Areas = append(result.Areas, newArea(metropolitan))
	}
	return result, nil
}

func newArea(metropolitan area.MetropolitanArea) Area {
	return Area{Metropolitan: metropolitan, BasicLocalAreas: area.BasicLocalAreas(metropolitan)}
}

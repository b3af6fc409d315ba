package area

import (
	e "claon/internal/core/domain/errors"
	"errors"
	"fmt"
)

var (
	ErrUnknownMetropolitanArea = errors.New("unknown metropolitan area")
	ErrUnknownBasicLocalArea   = errors.New("unknown basic local area")
)

type MetropolitanArea string

func (a MetropolitanArea) String() string {
	return string(a)
}

// BasicLocalArea is a district (si/gun/gu) inside a metropolitan area.
type BasicLocalArea struct {
	Metropolitan MetropolitanArea
	Name         string
}

func (a BasicLocalArea) String() string {
	return fmt.Sprintf("%s %s", a.Metropolitan, a.Name)
}

func NewMetropolitanArea(code string) (MetropolitanArea, error) {
	if _, ok := localAreasByMetropolitan[MetropolitanArea(code)]; !ok {
		return MetropolitanArea(""), e.NewValidationError(
			e.CodeInvalidArea,
			fmt.Sprintf("metropolitan area %q is not recognized", code),
			ErrUnknownMetropolitanArea,
		)
	}
	return MetropolitanArea(code), nil
}

func NewBasicLocalArea(metropolitanCode string, localCode string) (a BasicLocalArea, err error) {
	metropolitan, err := NewMetropolitanArea(metropolitanCode)
	if err != nil {
		return a, err
	}
	for _, name := range localAreasByMetropolitan[metropolitan] {
		if name == localCode {
			return BasicLocalArea{Metropolitan: metropolitan, Name: name}, nil
		}
	}
	return a, e.NewValidationError(
		e.CodeInvalidArea,
		fmt.Sprintf("basic local area %q is not recognized in %q", localCode, metropolitanCode),
		ErrUnknownBasicLocalArea,
	)
}

func MetropolitanAreas() []MetropolitanArea {
	areas := make([]MetropolitanArea, 0, len(metropolitanOrder))
	areas = append(areas, metropolitanOrder...)
	return areas
}

func BasicLocalAreas(metropolitan MetropolitanArea) []BasicLocalArea {
	names := localAreasByMetropolitan[metropolitan]
	areas := make([]BasicLocalArea, 0, len(names))
	for _, name := range names {
		areas = append(areas, BasicLocalArea{Metropolitan: metropolitan, Name: name})
	}
	return areas
}

package area

import (
	e "claon/internal/core/domain/errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMetropolitanArea(t *testing.T) {
	a, err := NewMetropolitanArea("서울특별시")

	require.NoError(t, err)
	assert.Equal(t, Seoul, a)
}

func TestNewMetropolitanAreaUnknown(t *testing.T) {
	_, err := NewMetropolitanArea("Atlantis")

	require.ErrorIs(t, err, ErrUnknownMetropolitanArea)
	assert.Equal(t, e.KindValidation, e.KindOf(err))
	assert.Equal(t, e.CodeInvalidArea, e.CodeOf(err))
}

func TestNewBasicLocalArea(t *testing.T) {
	cases := []struct {
		metropolitan string
		local        string
	}{
		{metropolitan: "서울특별시", local: "강남구"},
		{metropolitan: "부산광역시", local: "해운대구"},
		{metropolitan: "경기도", local: "성남시"},
		{metropolitan: "세종특별자치시", local: "세종특별자치시"},
	}
	for _, testcase := range cases {
		t.Run(testcase.metropolitan+" "+testcase.local, func(t *testing.T) {
			a, err := NewBasicLocalArea(testcase.metropolitan, testcase.local)

			require.NoError(t, err)
			assert.Equal(t, MetropolitanArea(testcase.metropolitan), a.Metropolitan)
			assert.Equal(t, testcase.local, a.Name)
		})
	}
}

func TestNewBasicLocalAreaFromAnotherMetropolitan(t *testing.T) {
	_, err := NewBasicLocalArea("부산광역시", "강남구")

	require.ErrorIs(t, err, ErrUnknownBasicLocalArea)
	assert.Equal(t, e.KindValidation, e.KindOf(err))
}

func TestNewBasicLocalAreaUnknownMetropolitan(t *testing.T) {
	_, err := NewBasicLocalArea("Atlantis", "강남구")

	require.ErrorIs(t, err, ErrUnknownMetropolitanArea)
}

func TestEveryMetropolitanAreaHasLocalAreas(t *testing.T) {
	areas := MetropolitanAreas()

	require.Len(t, areas, 17)
	for _, a := range areas {
		assert.NotEmpty(t, BasicLocalAreas(a), "no local areas for %s", a)
	}
}

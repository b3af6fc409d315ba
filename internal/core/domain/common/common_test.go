package common

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOptional(t *testing.T) {
	assert := require.New(t)

	optionalInt := NewOptional(42, true)
	assert.Equal(42, optionalInt.Value)
	assert.True(optionalInt.IsPresent)

	optionalString := NewOptional("foo", false)
	assert.Equal("foo", optionalString.Value)
	assert.False(optionalString.IsPresent)
}

func TestOptionalIfNotEmpty(t *testing.T) {
	assert := require.New(t)

	assert.False(NewOptionalIfNotEmpty("").IsPresent)
	assert.True(NewOptionalIfNotEmpty("climber").IsPresent)
	assert.Equal("climber", NewOptionalIfNotEmpty("climber").Value)
}

func TestNewEmail(t *testing.T) {
	cases := []struct {
		raw      string
		expected Email
	}{
		{raw: "a@b.com", expected: Email("a@b.com")},
		{raw: "Test@Claon.COM", expected: Email("test@claon.com")},
		{raw: "  spaced@claon.com ", expected: Email("spaced@claon.com")},
	}
	for _, testcase := range cases {
		t.Run(testcase.raw, func(t *testing.T) {
			require.Equal(t, testcase.expected, NewEmail(testcase.raw))
		})
	}
}

package i18n

import (
	e "claon/internal/core/domain/errors"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestResolveTag(t *testing.T) {
	cases := map[string]language.Tag{
		"":                     language.Korean,
		"en-US,en;q=0.9":       language.English,
		"ko-KR":                language.Korean,
		"fr-FR":                language.Korean,
		"fr;q=0.9, en;q=0.8":   language.English,
		"not a language;;q=x": language.Korean,
	}
	for header, expected := range cases {
		t.Run(header, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/", nil)
			if header != "" {
				r.Header.Set("Accept-Language", header)
			}
			require.Equal(t, expected, ResolveTag(r))
		})
	}
}

func TestMessage(t *testing.T) {
	require.Equal(t, "This email is already in use.", Message(language.English, e.CodeEmailAlreadyExists))
	require.Equal(t, "이미 사용 중인 닉네임입니다.", Message(language.Korean, e.CodeNicknameAlreadyExists))
	require.Equal(t, "이미 사용 중인 닉네임입니다.", Message(language.French, e.CodeNicknameAlreadyExists))
	require.Equal(t, "SOMETHING_NEW", Message(language.English, e.Code("SOMETHING_NEW")))
}

func TestEveryCodeHasMessages(t *testing.T) {
	for _, tag := range supported {
		require.Equal(t, len(messages[Default()]), len(messages[tag]), tag.String())
	}
}

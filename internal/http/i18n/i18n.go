package i18n

import (
	e "claon/internal/core/domain/errors"
	"net/http"

	"golang.org/x/text/language"
)

const (
	CodeInvalidRequest    e.Code = "INVALID_REQUEST"
	CodeRateLimitExceeded e.Code = "RATE_LIMIT_EXCEEDED"
	CodeInternal          e.Code = "INTERNAL_ERROR"
)

// Korean is the default language.
var supported = []language.Tag{language.Korean, language.English}

var matcher = language.NewMatcher(supported)

var messages = map[language.Tag]map[e.Code]string{
	language.Korean: {
		e.CodeEmailAlreadyExists:    "이미 사용 중인 이메일입니다.",
		e.CodeNicknameAlreadyExists: "이미 사용 중인 닉네임입니다.",
		e.CodeInvalidPasswordFormat: "비밀번호는 영문, 숫자, 특수문자를 포함한 8~32자여야 합니다.",
		e.CodeInvalidArea:           "유효하지 않은 활동 지역입니다.",
		e.CodeInvalidNickname:       "닉네임을 입력해 주세요.",
		e.CodeInvalidPhoneNumber:    "전화번호를 입력해 주세요.",
		e.CodeUserNotFound:          "이메일 또는 전화번호와 일치하는 회원이 없습니다.",
		CodeInvalidRequest:          "잘못된 요청입니다.",
		CodeRateLimitExceeded:       "요청 횟수를 초과했습니다. 잠시 후 다시 시도해 주세요.",
		CodeInternal:                "서버 오류가 발생했습니다.",
	},
	language.English: {
		e.CodeEmailAlreadyExists:    "This email is already in use.",
		e.CodeNicknameAlreadyExists: "This nickname is already in use.",
		e.CodeInvalidPasswordFormat: "Password must be 8 to 32 characters long and contain a letter, a digit and a special character.",
		e.CodeInvalidArea:           "Unknown active area.",
		e.CodeInvalidNickname:       "Nickname must not be blank.",
		e.CodeInvalidPhoneNumber:    "Phone number must not be blank.",
		e.CodeUserNotFound:          "No user matches the given email or phone number.",
		CodeInvalidRequest:          "Invalid request.",
		CodeRateLimitExceeded:       "Too many requests. Please try again later.",
		CodeInternal:                "Internal error.",
	},
}

func Default() language.Tag {
	return supported[0]
}

// ResolveTag picks a supported language from the Accept-Language header.
func ResolveTag(r *http.Request) language.Tag {
	accept := r.Header.Get("Accept-Language")
	if accept == "" {
		return Default()
	}
	tags, _, err := language.ParseAcceptLanguage(accept)
	if err != nil || len(tags) == 0 {
		return Default()
	}
	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return Default()
	}
	return supported[index]
}

// Message returns the text for code, falling back to the default language
// and then to the code itself.
func Message(tag language.Tag, code e.Code) string {
	if msg, ok := messages[tag][code]; ok {
		return msg
	}
	if msg, ok := messages[Default()][code]; ok {
		return msg
	}
	return string(code)
}

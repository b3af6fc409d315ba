package notification

import (
	c "claon/internal/core/domain/common"
	"context"
	"fmt"
	"html"
)

const TemporaryPasswordSubject = "[CLAON] 임시 비밀번호 안내"

const temporaryPasswordBody = "<p>회원님의 임시비밀번호는 다음과 같습니다:</p>" +
	"<h1 style='background-color:rgba(127,127,127,0.2); text-align:center'>%s</h1>"

type Email struct {
	Subject   string
	Body      string
	IsHTML    bool
	Recipient c.Email
}

type EmailSender interface {
	Send(ctx context.Context, email Email) error
}

// NewTemporaryPasswordEmail escapes the password before embedding it into HTML.
func NewTemporaryPasswordEmail(recipient c.Email, password string) Email {
	return Email{
		Subject:   TemporaryPasswordSubject,
		Body:      fmt.Sprintf(temporaryPasswordBody, html.EscapeString(password)),
		IsHTML:    true,
		Recipient: recipient,
	}
}

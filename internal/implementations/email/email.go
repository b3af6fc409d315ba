package email

import (
	"claon/internal/core/domain/notification"
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

const charset = "UTF-8"

var ErrNoRecipient = errors.New("email recipient is not defined")

type SESClient interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

type EmailSender struct {
	ses SESClient
	// This address must be verified with Amazon SES.
	sender string
}

func NewEmailSender(awsConfig aws.Config, sender string) *EmailSender {
	return NewEmailSenderWithClient(ses.NewFromConfig(awsConfig), sender)
}

func NewEmailSenderWithClient(client SESClient, sender string) *EmailSender {
	return &EmailSender{ses: client, sender: sender}
}

func (s *EmailSender) Send(ctx context.Context, email notification.Email) error {
	if email.Recipient == "" {
		return ErrNoRecipient
	}

	content := &types.Content{Charset: aws.String(charset), Data: aws.String(email.Body)}
	body := &types.Body{}
	if email.IsHTML {
		body.Html = content
	} else {
		body.Text = content
	}

	_, err := s.ses.SendEmail(
		ctx,
		&ses.SendEmailInput{
			Source: &s.sender,
			Destination: &types.Destination{
				CcAddresses: []string{},
				ToAddresses: []string{string(email.Recipient)},
			},
			Message: &types.Message{
				Subject: &types.Content{Charset: aws.String(charset), Data: aws.String(email.Subject)},
				Body:    body,
			},
		},
	)
	return err
}

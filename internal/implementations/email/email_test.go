package email

import (
	"claon/internal/core/domain/notification"
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/stretchr/testify/require"
)

type stubSESClient struct {
	inputs []*ses.SendEmailInput
	err    error
}

func (c *stubSESClient) SendEmail(
	ctx context.Context,
	params *ses.SendEmailInput,
	optFns ...func(*ses.Options),
) (*ses.SendEmailOutput, error) {
	c.inputs = append(c.inputs, params)
	return &ses.SendEmailOutput{}, c.err
}

func TestSendHTMLEmail(t *testing.T) {
	client := &stubSESClient{}
	sender := NewEmailSenderWithClient(client, "no-reply@claon.test")

	err := sender.Send(context.Background(), notification.NewTemporaryPasswordEmail("a@b.com", "Ab1&"))

	require.Nil(t, err)
	require.Len(t, client.inputs, 1)
	input := client.inputs[0]
	require.Equal(t, "no-reply@claon.test", aws.ToString(input.Source))
	require.Equal(t, []string{"a@b.com"}, input.Destination.ToAddresses)
	require.Equal(t, notification.TemporaryPasswordSubject, aws.ToString(input.Message.Subject.Data))
	require.Nil(t, input.Message.Body.Text)
	require.Contains(t, aws.ToString(input.Message.Body.Html.Data), "Ab1&amp;")
	require.Equal(t, charset, aws.ToString(input.Message.Body.Html.Charset))
}

func TestSendTextEmail(t *testing.T) {
	client := &stubSESClient{}
	sender := NewEmailSenderWithClient(client, "no-reply@claon.test")

	err := sender.Send(context.Background(), notification.Email{Subject: "s", Body: "b", Recipient: "a@b.com"})

	require.Nil(t, err)
	require.Nil(t, client.inputs[0].Message.Body.Html)
	require.Equal(t, "b", aws.ToString(client.inputs[0].Message.Body.Text.Data))
}

func TestSendErrors(t *testing.T) {
	client := &stubSESClient{err: errors.New("throttled")}
	sender := NewEmailSenderWithClient(client, "no-reply@claon.test")

	require.ErrorIs(t, sender.Send(context.Background(), notification.Email{Body: "b"}), ErrNoRecipient)
	require.EqualError(t, sender.Send(context.Background(), notification.Email{Body: "b", Recipient: "a@b.com"}), "throttled")
}

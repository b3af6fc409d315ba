package emailqueue

import (
	e "claon/internal/core/domain/errors"
	"claon/internal/core/domain/logging"
	"claon/internal/core/domain/notification"
	"claon/internal/rabbitmq/schema"
	"context"
	"strconv"
	"time"

	"github.com/rabbitmq/amqp091-go"
)

// Publisher is satisfied by *rabbitmq.Channel.
type Publisher interface {
	PublishWithContext(
		ctx context.Context,
		exchange, key string,
		mandatory, immediate bool,
		msg amqp091.Publishing,
	) error
}

// MessageTTL bounds how long a queued email, which may carry a temporary
// password, stays in the queue. Expired messages are dropped by the broker.
const MessageTTL = 15 * time.Minute

// RabbitMQ hands emails over to the mailer through a durable queue.
type RabbitMQ struct {
	log       logging.Logger
	publisher Publisher
	queue     string
}

func NewRabbitMQ(log logging.Logger, publisher Publisher, queue string) *RabbitMQ {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if publisher == nil {
		panic(e.NewNilArgumentError("publisher"))
	}
	if queue == "" {
		panic("queue name must not be empty")
	}
	return &RabbitMQ{log: log, publisher: publisher, queue: queue}
}

func (s *RabbitMQ) Send(ctx context.Context, email notification.Email) error {
	message := schema.Email{
		Subject:   email.Subject,
		Body:      email.Body,
		IsHTML:    email.IsHTML,
		Recipient: string(email.Recipient),
	}
	body, err := message.Marshal()
	if err != nil {
		return err
	}

	err = s.publisher.PublishWithContext(ctx, "", s.queue, false, false, amqp091.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp091.Persistent,
		Expiration:   strconv.FormatInt(MessageTTL.Milliseconds(), 10),
		Body:         body,
	})
	if err != nil {
		s.log.Error(
			ctx,
			"Could not publish AMQP message.",
			logging.Entry("queue", s.queue),
			logging.Entry("err", err),
		)
		return err
	}
	s.log.Info(
		ctx,
		"AMQP message has been successfully published.",
		logging.Entry("queue", s.queue),
		logging.Entry("recipient", email.Recipient),
	)
	return nil
}

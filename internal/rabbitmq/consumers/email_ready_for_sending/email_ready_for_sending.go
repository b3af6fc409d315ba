package emailreadyforsending

import (
	"claon/internal/core/domain/common"
	e "claon/internal/core/domain/errors"
	"claon/internal/core/domain/logging"
	"claon/internal/core/domain/notification"
	"claon/internal/rabbitmq/schema"
	"context"

	"github.com/rabbitmq/amqp091-go"
)

// DeliverySource is satisfied by *rabbitmq.Channel.
type DeliverySource interface {
	Consume(
		queue, consumer string,
		autoAck, exclusive, noLocal, noWait bool,
		args amqp091.Table,
	) (<-chan amqp091.Delivery, error)
}

// Consumer sends queued emails. Every delivery is acknowledged after a
// single send attempt, failed sends are logged and dropped.
type Consumer struct {
	log    logging.Logger
	source DeliverySource
	queue  string
	sender notification.EmailSender
}

func New(
	log logging.Logger,
	source DeliverySource,
	queue string,
	sender notification.EmailSender,
) *Consumer {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if source == nil {
		panic(e.NewNilArgumentError("source"))
	}
	if queue == "" {
		panic("queue name must not be empty")
	}
	if sender == nil {
		panic(e.NewNilArgumentError("sender"))
	}
	return &Consumer{log: log, source: source, queue: queue, sender: sender}
}

func (c *Consumer) Consume() error {
	deliveries, err := c.source.Consume(c.queue, "", false, false, false, false, nil)
	if err != nil {
		c.log.Error(context.Background(), "Could not start consuming.", logging.Entry("err", err))
		return err
	}

	go func() {
		for delivery := range deliveries {
			c.handle(context.Background(), delivery)
		}
	}()
	return nil
}

func (c *Consumer) handle(ctx context.Context, delivery amqp091.Delivery) {
	defer c.Ack(delivery)

	message := &schema.Email{}
	if err := message.Unmarshal(delivery.Body); err != nil {
		c.log.Error(
			ctx,
			"Could not unmarshal email.",
			logging.Entry("err", err),
			logging.Entry("body", string(delivery.Body)),
		)
		return
	}

	err := c.sender.Send(ctx, notification.Email{
		Subject:   message.Subject,
		Body:      message.Body,
		IsHTML:    message.IsHTML,
		Recipient: common.Email(message.Recipient),
	})
	if err != nil {
		c.log.Error(
			ctx,
			"Could not send email.",
			logging.Entry("recipient", message.Recipient),
			logging.Entry("err", err),
		)
		return
	}
	c.log.Info(ctx, "Email has been sent.", logging.Entry("recipient", message.Recipient))
}

func (c *Consumer) Ack(delivery amqp091.Delivery) {
	if err := delivery.Ack(false); err != nil {
		c.log.Error(context.Background(), "Could not ACK AMQP message.", logging.Entry("err", err))
	}
}

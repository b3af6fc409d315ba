package consumers

import (
	"claon/internal/app/deps"
	dl "claon/internal/core/domain/logging"
	emailreadyforsending "claon/internal/rabbitmq/consumers/email_ready_for_sending"
	"context"
)

func initEmailReadyForSendingConsumer(deps *deps.Deps) func() {
	rabbitmqChannel, err := deps.Rabbitmq.Channel()
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not create RabbitMQ channel.", dl.Entry("err", err))
		panic(err)
	}

	queue := deps.Config.RabbitmqEmailQueue
	if err := rabbitmqChannel.DeclareQueue(queue); err != nil {
		deps.Logger.Error(context.Background(), "Could not create RabbitMQ queue.", dl.Entry("err", err))
		panic(err)
	}

	emailReadyForSendingConsumer := emailreadyforsending.New(
		deps.Logger,
		rabbitmqChannel,
		queue,
		deps.SESEmailSender,
	)
	if err = emailReadyForSendingConsumer.Consume(); err != nil {
		deps.Logger.Error(
			context.Background(),
			"Could not start RabbitMQ consuming.",
			dl.Entry("err", err),
			dl.Entry("queue", queue),
		)
		panic(err)
	}

	deps.Logger.Info(context.Background(), "Consumer has started.", dl.Entry("queue", queue))
	return func() { rabbitmqChannel.Close() }
}

func InitConsumers(deps *deps.Deps) func() {
	if deps.Rabbitmq == nil {
		panic("consumers require EMAIL_DELIVERY=rabbitmq")
	}

	shutdownEmailReadyForSendingConsumer := initEmailReadyForSendingConsumer(deps)

	return func() {
		shutdownEmailReadyForSendingConsumer()
	}
}

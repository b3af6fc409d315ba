package emailreadyforsending

import (
	"claon/internal/core/domain/logging"
	"claon/internal/core/domain/notification"
	"claon/internal/rabbitmq/schema"
	"context"
	"testing"
	"time"

	"github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/suite"
)

type fakeAcknowledger struct {
	acked []uint64
}

func (a *fakeAcknowledger) Ack(tag uint64, multiple bool) error {
	a.acked = append(a.acked, tag)
	return nil
}

func (a *fakeAcknowledger) Nack(tag uint64, multiple bool, requeue bool) error {
	return nil
}

func (a *fakeAcknowledger) Reject(tag uint64, requeue bool) error {
	return nil
}

type stubSource struct {
	deliveries chan amqp091.Delivery
}

func (s *stubSource) Consume(
	queue, consumer string,
	autoAck, exclusive, noLocal, noWait bool,
	args amqp091.Table,
) (<-chan amqp091.Delivery, error) {
	return s.deliveries, nil
}

type testSuite struct {
	suite.Suite
	Logger       *logging.FakeLogger
	Sender       *notification.FakeEmailSender
	Acknowledger *fakeAcknowledger
	Source       *stubSource
	Consumer     *Consumer
}

func (suite *testSuite) SetupTest() {
	suite.Logger = logging.NewFakeLogger()
	suite.Sender = notification.NewFakeEmailSender()
	suite.Acknowledger = &fakeAcknowledger{}
	suite.Source = &stubSource{deliveries: make(chan amqp091.Delivery)}
	suite.Consumer = New(suite.Logger, suite.Source, "email.ready", suite.Sender)
}

func TestEmailReadyForSendingConsumer(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (suite *testSuite) delivery(tag uint64, body []byte) amqp091.Delivery {
	return amqp091.Delivery{Acknowledger: suite.Acknowledger, DeliveryTag: tag, Body: body}
}

func (suite *testSuite) TestEmailIsSentAndAcked() {
	message := schema.Email{Subject: "s", Body: "<p>b</p>", IsHTML: true, Recipient: "a@b.com"}
	body, err := message.Marshal()
	suite.Require().Nil(err)

	suite.Consumer.handle(context.Background(), suite.delivery(1, body))

	assert := suite.Require()
	assert.Equal(1, suite.Sender.SentCount())
	sent := suite.Sender.LastSent()
	assert.Equal("<p>b</p>", sent.Body)
	assert.True(sent.IsHTML)
	assert.Equal("a@b.com", string(sent.Recipient))
	assert.Equal([]uint64{1}, suite.Acknowledger.acked)
}

func (suite *testSuite) TestMalformedMessageIsAcked() {
	suite.Consumer.handle(context.Background(), suite.delivery(2, []byte("{")))

	assert := suite.Require()
	assert.Equal(0, suite.Sender.SentCount())
	assert.Equal([]uint64{2}, suite.Acknowledger.acked)
	assert.Equal(1, suite.Logger.CountByLevel(logging.ERROR))
}

func (suite *testSuite) TestSendErrorIsNotRetried() {
	suite.Sender.ReturnError = true
	body, err := (&schema.Email{Recipient: "a@b.com"}).Marshal()
	suite.Require().Nil(err)

	suite.Consumer.handle(context.Background(), suite.delivery(3, body))

	assert := suite.Require()
	assert.Equal([]uint64{3}, suite.Acknowledger.acked)
	assert.Equal(1, suite.Logger.CountByLevel(logging.ERROR))
}

func (suite *testSuite) TestConsumeProcessesDeliveries() {
	assert := suite.Require()
	assert.Nil(suite.Consumer.Consume())

	body, err := (&schema.Email{Recipient: "a@b.com"}).Marshal()
	assert.Nil(err)
	suite.Source.deliveries <- suite.delivery(4, body)
	close(suite.Source.deliveries)

	assert.Eventually(func() bool { return suite.Sender.SentCount() == 1 }, time.Second, 10*time.Millisecond)
}

package rabbitmq

import (
	"claon/internal/core/domain/logging"
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const delay = 3 // reconnect after delay seconds

// Connection wraps amqp.Connection and redials when the broker drops it.
type Connection struct {
	conn *amqp.Connection
	mu   sync.RWMutex
	log  logging.Logger
}

func Dial(url string, log logging.Logger) (*Connection, error) {
	if log == nil {
		return nil, fmt.Errorf("log argument must not be nil")
	}
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}

	connection := &Connection{conn: conn, log: log}
	go connection.reconnect(url)
	return connection, nil
}

func (c *Connection) reconnect(url string) {
	for {
		reason, ok := <-c.current().NotifyClose(make(chan *amqp.Error))
		if !ok {
			c.log.Info(context.Background(), "RabbitMQ connection closed.")
			return
		}

		c.log.Warning(context.Background(), "RabbitMQ connection lost.", logging.Entry("reason", reason.Error()))
		for {
			time.Sleep(delay * time.Second)

			conn, err := amqp.Dial(url)
			if err == nil {
				c.mu.Lock()
				c.conn = conn
				c.mu.Unlock()
				c.log.Info(context.Background(), "RabbitMQ reconnect success.")
				break
			}
			c.log.Error(context.Background(), "RabbitMQ reconnect failed.", logging.Entry("err", err))
		}
	}
}

func (c *Connection) current() *amqp.Connection {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.conn
}

func (c *Connection) Close() error {
	return c.current().Close()
}

// Channel opens a channel that is recreated after unexpected closes.
func (c *Connection) Channel() (*Channel, error) {
	ch, err := c.current().Channel()
	if err != nil {
		return nil, err
	}

	channel := &Channel{ch: ch, log: c.log}
	go func() {
		for {
			reason, ok := <-channel.current().NotifyClose(make(chan *amqp.Error))
			// closed on purpose
			if !ok || channel.IsClosed() {
				channel.Close()
				return
			}

			c.log.Warning(context.Background(), "RabbitMQ channel closed.", logging.Entry("reason", reason.Error()))
			for {
				time.Sleep(delay * time.Second)

				ch, err := c.current().Channel()
				if err == nil {
					c.log.Info(context.Background(), "Channel recreate success.")
					channel.mu.Lock()
					channel.ch = ch
					channel.mu.Unlock()
					break
				}
				c.log.Error(context.Background(), "Channel recreate failed.", logging.Entry("err", err))
			}
		}
	}()

	return channel, nil
}

type Channel struct {
	ch     *amqp.Channel
	mu     sync.RWMutex
	closed atomic.Bool
	log    logging.Logger
}

func (ch *Channel) current() *amqp.Channel {
	ch.mu.RLock()
	defer ch.mu.RUnlock()
	return ch.ch
}

// IsClosed reports whether Close was called.
func (ch *Channel) IsClosed() bool {
	return ch.closed.Load()
}

func (ch *Channel) Close() error {
	if !ch.closed.CompareAndSwap(false, true) {
		return amqp.ErrClosed
	}
	return ch.current().Close()
}

// DeclareQueue declares a durable queue.
func (ch *Channel) DeclareQueue(name string) error {
	_, err := ch.current().QueueDeclare(name, true, false, false, false, nil)
	return err
}

func (ch *Channel) PublishWithContext(
	ctx context.Context,
	exchange, key string,
	mandatory, immediate bool,
	msg amqp.Publishing,
) error {
	return ch.current().PublishWithContext(ctx, exchange, key, mandatory, immediate, msg)
}

// Consume keeps delivering messages across channel recreation until the
// channel is closed with Close.
func (ch *Channel) Consume(
	queue, consumer string,
	autoAck, exclusive, noLocal, noWait bool,
	args amqp.Table,
) (<-chan amqp.Delivery, error) {
	deliveries := make(chan amqp.Delivery)

	go func() {
		defer close(deliveries)
		for {
			d, err := ch.current().Consume(queue, consumer, autoAck, exclusive, noLocal, noWait, args)
			if err != nil {
				ch.log.Error(context.Background(), "Consume failed.", logging.Entry("err", err))
				time.Sleep(delay * time.Second)
				if ch.IsClosed() {
					return
				}
				continue
			}

			for msg := range d {
				deliveries <- msg
			}

			// the closed flag may be set a bit later than the delivery channel closes
			time.Sleep(delay * time.Second)

			if ch.IsClosed() {
				ch.log.Info(context.Background(), "Channel is closed, stop consuming.", logging.Entry("queue", queue))
				return
			}
		}
	}()

	return deliveries, nil
}

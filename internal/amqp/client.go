package amqp

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/rabbitmq/amqp091-go"
)

// Client wraps one AMQP connection with the report request/result topology:
// a direct exchange and two durable queues bound by their own names.
type Client struct {
	conn         *amqp091.Connection
	channel      *amqp091.Channel
	exchangeName string
	requestQueue string
	resultQueue  string
}

func NewClient(url, exchangeName, requestQueue, resultQueue string) (*Client, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial AMQP: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	client := &Client{
		conn:         conn,
		channel:      channel,
		exchangeName: exchangeName,
		requestQueue: requestQueue,
		resultQueue:  resultQueue,
	}

	if err := client.setup(); err != nil {
		client.Close()
		return nil, fmt.Errorf("setup exchange and queues: %w", err)
	}

	return client, nil
}

func (c *Client) setup() error {
	err := c.channel.ExchangeDeclare(
		c.exchangeName, // name
		"direct",       // type
		true,           // durable
		false,          // auto-deleted
		false,          // internal
		false,          // no-wait
		nil,            // arguments
	)
	if err != nil {
		return fmt.Errorf("declare exchange: %w", err)
	}

	for _, queue := range []string{c.requestQueue, c.resultQueue} {
		_, err = c.channel.QueueDeclare(
			queue, // name
			true,  // durable
			false, // delete when unused
			false, // exclusive
			false, // no-wait
			nil,   // arguments
		)
		if err != nil {
			return fmt.Errorf("declare queue %s: %w", queue, err)
		}

		// Routing key equals the queue name on a direct exchange.
		err = c.channel.QueueBind(queue, queue, c.exchangeName, false, nil)
		if err != nil {
			return fmt.Errorf("bind queue %s: %w", queue, err)
		}
	}

	return nil
}

func (c *Client) publish(ctx context.Context, routingKey string, body []byte) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return c.channel.PublishWithContext(
		ctx,
		c.exchangeName, // exchange
		routingKey,     // routing key
		false,          // mandatory
		false,          // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Timestamp:    time.Now(),
			Body:         body,
		},
	)
}

// PublishReportRequest enqueues a returns calculation for the worker.
func (c *Client) PublishReportRequest(ctx context.Context, msg *ReportRequestMessage) error {
	body, err := msg.ToJSON()
	if err != nil {
		return fmt.Errorf("marshal request message: %w", err)
	}
	if err := c.publish(ctx, c.requestQueue, body); err != nil {
		return fmt.Errorf("publish request message: %w", err)
	}

	slog.InfoContext(ctx, "Published report request",
		"message_id", msg.ID,
		"scheme", msg.Scheme,
		"transactions", len(msg.Transactions),
		"exchange", c.exchangeName,
		"queue", c.requestQueue)
	return nil
}

// PublishReportResult publishes a computed report (or its failure).
func (c *Client) PublishReportResult(ctx context.Context, msg *ReportResultMessage) error {
	body, err := msg.ToJSON()
	if err != nil {
		return fmt.Errorf("marshal result message: %w", err)
	}
	if err := c.publish(ctx, c.resultQueue, body); err != nil {
		return fmt.Errorf("publish result message: %w", err)
	}

	slog.InfoContext(ctx, "Published report result",
		"message_id", msg.ID,
		"failed", msg.Error != "",
		"exchange", c.exchangeName,
		"queue", c.resultQueue)
	return nil
}

// ConsumeReportRequests delivers report requests to the handler with manual
// acknowledgement. Malformed payloads are rejected without requeue; handler
// failures are requeued.
func (c *Client) ConsumeReportRequests(ctx context.Context, handler func(*ReportRequestMessage) error) error {
	msgs, err := c.channel.Consume(
		c.requestQueue, // queue
		"",             // consumer
		false,          // auto-ack (we want manual ack)
		false,          // exclusive
		false,          // no-local
		false,          // no-wait
		nil,            // args
	)
	if err != nil {
		return fmt.Errorf("start consuming: %w", err)
	}

	slog.InfoContext(ctx, "Started consuming report requests", "queue", c.requestQueue)

	for {
		select {
		case <-ctx.Done():
			slog.InfoContext(ctx, "Stopping message consumption", "reason", ctx.Err())
			return ctx.Err()
		case delivery, ok := <-msgs:
			if !ok {
				return fmt.Errorf("message channel closed")
			}

			msg, err := ReportRequestMessageFromJSON(delivery.Body)
			if err != nil {
				slog.ErrorContext(ctx, "Failed to unmarshal message", "error", err)
				delivery.Nack(false, false)
				continue
			}

			if err := handler(msg); err != nil {
				slog.ErrorContext(ctx, "Failed to handle message",
					"error", err,
					"message_id", msg.ID)
				delivery.Nack(false, true)
				continue
			}

			delivery.Ack(false)
			slog.InfoContext(ctx, "Processed report request", "message_id", msg.ID)
		}
	}
}

func (c *Client) Close() error {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

package rabbitmq

import (
	"fmt"
	"log"

	amqp "github.com/streadway/amqp"
)

// ProductEventsQueue is the durable queue product lifecycle events go to.
const ProductEventsQueue = "product_events"

// Client holds the RabbitMQ connection and channel.
type Client struct {
	conn    *amqp.Connection
	channel *amqp.Channel
}

// Config holds RabbitMQ connection details.
type Config struct {
	URL string
}

// NewClient connects to RabbitMQ, opens a channel and declares the product
// events queue.
func NewClient(cfg Config) (*Client, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	_, err = ch.QueueDeclare(
		ProductEventsQueue, // name
		true,               // durable
		false,              // delete when unused
		false,              // exclusive
		false,              // no-wait
		nil,                // arguments
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare %s queue: %w", ProductEventsQueue, err)
	}

	log.Printf("RabbitMQ client connected and %s queue declared", ProductEventsQueue)

	return &Client{
		conn:    conn,
		channel: ch,
	}, nil
}

// PublishProductEvent publishes a persistent JSON message to the product
// events queue. eventType ends up in the message Type property so consumers
// can dispatch without parsing the body.
func (c *Client) PublishProductEvent(eventType string, body []byte) error {
	err := c.channel.Publish(
		"",                 // default exchange
		ProductEventsQueue, // routing key = queue name
		false,              // mandatory
		false,              // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Type:         eventType,
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish %s event: %w", eventType, err)
	}
	return nil
}

// Close shuts down the channel and connection.
func (c *Client) Close() {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		c.conn.Close()
	}
}

package kafka

import (
	"context"
	"encoding/json"
	"time"

	"flightdesk/pkg/logger"

	"github.com/segmentio/kafka-go"
)

// messageReader is the slice of kafka.Reader the consume loop needs.
type messageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
	Close() error
}

// Consumer reads booking events off a topic and hands the decoded
// payloads to a handler. Messages that do not decode as BookingEvent
// are logged and skipped, never redelivered.
type Consumer struct {
	reader messageReader
	log    logger.Logger
}

func NewConsumer(brokers []string, groupID, topic string, log logger.Logger) *Consumer {
	return &Consumer{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers:           brokers,
			GroupID:           groupID,
			Topic:             topic,
			HeartbeatInterval: 3 * time.Second,
			SessionTimeout:    30 * time.Second,
		}),
		log: log,
	}
}

func (c *Consumer) Close() error {
	if c == nil || c.reader == nil {
		return nil
	}
	return c.reader.Close()
}

// Consume blocks until the context is cancelled, the reader fails or the
// handler returns an error.
func (c *Consumer) Consume(ctx context.Context, handler func(context.Context, BookingEvent) error) error {
	for {
		msg, err := c.reader.ReadMessage(ctx)
		if err != nil {
			return err
		}

		var event BookingEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			c.log.Warn("skipping undecodable event", "topic", msg.Topic, "offset", msg.Offset, "error", err)
			continue
		}

		if err := handler(ctx, event); err != nil {
			return err
		}
	}
}

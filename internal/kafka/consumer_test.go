package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"

	"flightdesk/pkg/logger"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
)

type fakeReader struct {
	msgs []kafka.Message
	err  error
}

func (f *fakeReader) ReadMessage(ctx context.Context) (kafka.Message, error) {
	if len(f.msgs) == 0 {
		return kafka.Message{}, f.err
	}
	msg := f.msgs[0]
	f.msgs = f.msgs[1:]
	return msg, nil
}

func (f *fakeReader) Close() error { return nil }

func eventMessage(t *testing.T, event BookingEvent) kafka.Message {
	t.Helper()
	value, err := json.Marshal(event)
	assert.NoError(t, err)
	return kafka.Message{Key: []byte(event.Reference), Value: value}
}

func TestConsumer_Consume_DeliversDecodedEvents(t *testing.T) {
	consumer := &Consumer{
		reader: &fakeReader{
			msgs: []kafka.Message{
				eventMessage(t, BookingEvent{Type: "booking_created", Reference: "ABC123", BookingID: 1}),
				eventMessage(t, BookingEvent{Type: "booking_confirmed", Reference: "ABC123", BookingID: 1}),
			},
			err: io.EOF,
		},
		log: logger.NewNop(),
	}

	var received []BookingEvent
	err := consumer.Consume(context.Background(), func(ctx context.Context, event BookingEvent) error {
		received = append(received, event)
		return nil
	})

	assert.ErrorIs(t, err, io.EOF)
	assert.Len(t, received, 2)
	assert.Equal(t, "booking_created", received[0].Type)
	assert.Equal(t, "booking_confirmed", received[1].Type)
	assert.Equal(t, "ABC123", received[1].Reference)
}

func TestConsumer_Consume_SkipsUndecodableMessages(t *testing.T) {
	consumer := &Consumer{
		reader: &fakeReader{
			msgs: []kafka.Message{
				{Value: []byte("not json")},
				eventMessage(t, BookingEvent{Type: "booking_cancelled", Reference: "XYZ789"}),
			},
			err: io.EOF,
		},
		log: logger.NewNop(),
	}

	var received []BookingEvent
	err := consumer.Consume(context.Background(), func(ctx context.Context, event BookingEvent) error {
		received = append(received, event)
		return nil
	})

	assert.ErrorIs(t, err, io.EOF)
	assert.Len(t, received, 1)
	assert.Equal(t, "booking_cancelled", received[0].Type)
}

func TestConsumer_Consume_StopsOnHandlerError(t *testing.T) {
	consumer := &Consumer{
		reader: &fakeReader{
			msgs: []kafka.Message{
				eventMessage(t, BookingEvent{Type: "booking_created", Reference: "AAA111"}),
				eventMessage(t, BookingEvent{Type: "booking_created", Reference: "BBB222"}),
			},
			err: io.EOF,
		},
		log: logger.NewNop(),
	}

	handlerErr := errors.New("handler failed")
	calls := 0
	err := consumer.Consume(context.Background(), func(ctx context.Context, event BookingEvent) error {
		calls++
		return handlerErr
	})

	assert.ErrorIs(t, err, handlerErr)
	assert.Equal(t, 1, calls)
}

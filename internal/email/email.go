package email

import (
	"context"
	"fmt"

	"flightdesk/config"
	"flightdesk/internal/kafka"

	"github.com/wneessen/go-mail"
)

// Sender delivers booking notification emails over SMTP.
type Sender struct {
	client   *mail.Client
	from     string
	fromName string
}

func NewSender(cfg config.SMTPConfig) (*Sender, error) {
	client, err := mail.NewClient(cfg.Host,
		mail.WithPort(cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(cfg.Username),
		mail.WithPassword(cfg.Password),
	)
	if err != nil {
		return nil, fmt.Errorf("init smtp client: %w", err)
	}
	return &Sender{client: client, from: cfg.From, fromName: cfg.FromName}, nil
}

func (s *Sender) Send(ctx context.Context, to string, event kafka.BookingEvent) error {
	msg := mail.NewMsg()
	if err := msg.FromFormat(s.fromName, s.from); err != nil {
		return err
	}
	if err := msg.To(to); err != nil {
		return err
	}
	msg.Subject(subjectFor(event))
	msg.SetBodyString(mail.TypeTextPlain, bodyFor(event))

	return s.client.DialAndSendWithContext(ctx, msg)
}

func subjectFor(event kafka.BookingEvent) string {
	switch event.Type {
	case "booking_created":
		return fmt.Sprintf("Booking %s reserved", event.Reference)
	case "booking_confirmed":
		return fmt.Sprintf("Booking %s confirmed", event.Reference)
	case "booking_cancelled":
		return fmt.Sprintf("Booking %s cancelled", event.Reference)
	case "booking_checked_in":
		return fmt.Sprintf("Checked in for booking %s", event.Reference)
	}
	return fmt.Sprintf("Booking %s update", event.Reference)
}

func bodyFor(event kafka.BookingEvent) string {
	body := fmt.Sprintf("Your booking %s is now %s.\n", event.Reference, event.Status)
	if event.SeatNumber != "" {
		body += fmt.Sprintf("Seat: %s\n", event.SeatNumber)
	}
	body += fmt.Sprintf("Total: %.2f\n", float64(event.TotalCents)/100)
	return body
}

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"flightdesk/config"
	"flightdesk/internal/email"
	"flightdesk/internal/kafka"
	"flightdesk/internal/repository"
	"flightdesk/pkg/logger"

	"github.com/jackc/pgx/v5/pgxpool"
)

// The worker consumes booking notification events and emails the
// passenger about each lifecycle change.
func main() {
	log := logger.NewLogger()

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatal("load config", "error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatal("connect postgres", "error", err)
	}
	defer pool.Close()

	passengerRepo := repository.NewPassengerRepository(pool)

	sender, err := email.NewSender(cfg.SMTP)
	if err != nil {
		log.Fatal("init mailer", "error", err)
	}

	consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.NotificationsTopic, log)
	defer consumer.Close()

	log.Info("notification worker started", "topic", cfg.Kafka.NotificationsTopic)

	err = consumer.Consume(ctx, func(ctx context.Context, event kafka.BookingEvent) error {
		passenger, err := passengerRepo.GetByID(ctx, event.PassengerID)
		if err != nil {
			log.Warn("lookup passenger for notification", "passenger_id", event.PassengerID, "error", err)
			return nil
		}

		if err := sender.Send(ctx, passenger.Email, event); err != nil {
			log.Warn("send notification email", "reference", event.Reference, "error", err)
		}
		return nil
	})
	if err != nil && ctx.Err() == nil {
		log.Fatal("consumer stopped", "error", err)
	}
}

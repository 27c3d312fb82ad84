package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"flightdesk/config"
	"flightdesk/internal/bootstrap"
	"flightdesk/internal/cache"
	"flightdesk/internal/kafka"
	"flightdesk/internal/repository"
	"flightdesk/internal/service/auth"
	"flightdesk/internal/service/booking"
	"flightdesk/internal/service/flights"
	"flightdesk/pkg/logger"
	"flightdesk/pkg/metrics"

	"github.com/jackc/pgx/v5/pgxpool"
)

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

	redisCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Booking.FlightsCacheTTL)*time.Second)
	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	m := metrics.NewMetrics("flightdesk")

	bookingRepo := repository.NewBookingRepository(pool)
	flightRepo := repository.NewFlightRepository(pool)
	passengerRepo := repository.NewPassengerRepository(pool)
	classRepo := repository.NewTravelClassRepository(pool)
	transactionRepo := repository.NewTransactionRepository(pool)
	userRepo := repository.NewUserRepository(pool)

	tokens := auth.NewTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenDuration())

	bookingService := booking.NewBookingService(
		bookingRepo,
		flightRepo,
		passengerRepo,
		classRepo,
		transactionRepo,
		producer,
		log,
		cfg.Kafka.BookingTopic,
		booking.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
		booking.WithMetrics(m),
	)
	flightService := flights.NewFlightService(flightRepo, redisCache, log)
	authService := auth.NewService(userRepo, tokens, log)

	svc := bootstrap.Services{
		Bookings: bookingService,
		Flights:  flightService,
		Auth:     authService,
		Tokens:   tokens,
	}

	if err := bootstrap.Run(ctx, cfg, log, svc); err != nil {
		log.Fatal("server error", "error", err)
	}
}

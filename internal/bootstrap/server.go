package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"flightdesk/api"
	"flightdesk/config"
	"flightdesk/internal/service/auth"
	"flightdesk/internal/service/booking"
	"flightdesk/internal/service/flights"
	"flightdesk/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Services struct {
	Bookings booking.BookingUseCase
	Flights  flights.FlightUseCase
	Auth     auth.AuthUseCase
	Tokens   *auth.TokenIssuer
}

// Run starts the HTTP server and blocks until the context is canceled or
// the server fails.
func Run(ctx context.Context, cfg *config.Config, log logger.Logger, svc Services) error {
	httpSrv := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: newRouter(svc),
	}

	errCh := make(chan error, 1)
	go func() { errCh <- httpSrv.ListenAndServe() }()
	log.Info("http server started", "address", cfg.HTTP.Address)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownTimeout)*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}

func newRouter(svc Services) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), api.RequestID())

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	bookingHandler := api.NewBookingHandler(svc.Bookings)
	flightHandler := api.NewFlightHandler(svc.Flights)
	authHandler := api.NewAuthHandler(svc.Auth)

	v1 := router.Group("/api/v1")
	authHandler.Register(v1.Group("/auth"))
	flightHandler.Register(v1.Group("/flights"))

	authorized := v1.Group("", api.RequireAuth(svc.Tokens))
	bookingHandler.Register(authorized.Group("/bookings"))
	bookingHandler.RegisterPassengerRoutes(authorized.Group("/passengers"))

	return router
}

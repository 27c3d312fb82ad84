package flights

import (
	"context"
	"errors"
	"fmt"
	"time"

	"flightdesk/internal/domain"
	"flightdesk/internal/repository"
	"flightdesk/pkg/logger"
)

var ErrFlightNotFound = errors.New("flight not found")

type FlightUseCase interface {
	List(ctx context.Context) ([]domain.Flight, error)
	GetByID(ctx context.Context, id int64) (*domain.Flight, error)
	Search(ctx context.Context, fromCode, toCode string, day time.Time) ([]domain.Flight, error)
}

// Cache is the flight cache the service reads through. A nil cache
// disables caching.
type Cache interface {
	GetFlights(ctx context.Context) ([]domain.Flight, error)
	SetFlights(ctx context.Context, flights []domain.Flight) error
}

type FlightService struct {
	repo  repository.FlightRepository
	cache Cache
	log   logger.Logger
}

func NewFlightService(repo repository.FlightRepository, cache Cache, log logger.Logger) *FlightService {
	return &FlightService{repo: repo, cache: cache, log: log}
}

func (s *FlightService) List(ctx context.Context) ([]domain.Flight, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetFlights(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	flights, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		if err := s.cache.SetFlights(ctx, flights); err != nil {
			s.log.Warn("failed to cache flights", "error", err)
		}
	}
	return flights, nil
}

func (s *FlightService) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	flight, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrFlightNotFound, id)
		}
		return nil, err
	}
	return flight, nil
}

func (s *FlightService) Search(ctx context.Context, fromCode, toCode string, day time.Time) ([]domain.Flight, error) {
	return s.repo.Search(ctx, fromCode, toCode, day)
}

var _ FlightUseCase = (*FlightService)(nil)

package flights

import (
	"context"
	"errors"
	"testing"
	"time"

	"flightdesk/internal/domain"
	"flightdesk/internal/repository"
	"flightdesk/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockFlightRepository struct {
	mock.Mock
}

func (m *MockFlightRepository) Create(ctx context.Context, flight *domain.Flight) error {
	args := m.Called(ctx, flight)
	return args.Error(0)
}

func (m *MockFlightRepository) Update(ctx context.Context, flight *domain.Flight) error {
	args := m.Called(ctx, flight)
	return args.Error(0)
}

func (m *MockFlightRepository) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flight), args.Error(1)
}

func (m *MockFlightRepository) List(ctx context.Context) ([]domain.Flight, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Flight), args.Error(1)
}

func (m *MockFlightRepository) Search(ctx context.Context, fromCode, toCode string, day time.Time) ([]domain.Flight, error) {
	args := m.Called(ctx, fromCode, toCode, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Flight), args.Error(1)
}

func (m *MockFlightRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockCache struct {
	mock.Mock
}

func (m *MockCache) GetFlights(ctx context.Context) ([]domain.Flight, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Flight), args.Error(1)
}

func (m *MockCache) SetFlights(ctx context.Context, flights []domain.Flight) error {
	args := m.Called(ctx, flights)
	return args.Error(0)
}

func TestFlightService_List_CacheHit(t *testing.T) {
	repo := &MockFlightRepository{}
	cache := &MockCache{}
	service := NewFlightService(repo, cache, logger.NewNop())
	ctx := context.Background()

	cached := []domain.Flight{{ID: 1, FlightNumber: "FD100"}}
	cache.On("GetFlights", ctx).Return(cached, nil).Once()

	flights, err := service.List(ctx)

	assert.NoError(t, err)
	assert.Equal(t, cached, flights)
	repo.AssertNotCalled(t, "List", mock.Anything)
}

func TestFlightService_List_CacheMissFillsCache(t *testing.T) {
	repo := &MockFlightRepository{}
	cache := &MockCache{}
	service := NewFlightService(repo, cache, logger.NewNop())
	ctx := context.Background()

	fromRepo := []domain.Flight{{ID: 2, FlightNumber: "FD200"}}
	cache.On("GetFlights", ctx).Return(nil, nil).Once()
	repo.On("List", ctx).Return(fromRepo, nil).Once()
	cache.On("SetFlights", ctx, fromRepo).Return(nil).Once()

	flights, err := service.List(ctx)

	assert.NoError(t, err)
	assert.Equal(t, fromRepo, flights)
	cache.AssertExpectations(t)
}

func TestFlightService_List_CacheWriteFailureIsNonFatal(t *testing.T) {
	repo := &MockFlightRepository{}
	cache := &MockCache{}
	service := NewFlightService(repo, cache, logger.NewNop())
	ctx := context.Background()

	fromRepo := []domain.Flight{{ID: 3}}
	cache.On("GetFlights", ctx).Return(nil, errors.New("redis down")).Once()
	repo.On("List", ctx).Return(fromRepo, nil).Once()
	cache.On("SetFlights", ctx, fromRepo).Return(errors.New("redis down")).Once()

	flights, err := service.List(ctx)

	assert.NoError(t, err)
	assert.Equal(t, fromRepo, flights)
}

func TestFlightService_List_NilCache(t *testing.T) {
	repo := &MockFlightRepository{}
	service := NewFlightService(repo, nil, logger.NewNop())
	ctx := context.Background()

	fromRepo := []domain.Flight{{ID: 4}}
	repo.On("List", ctx).Return(fromRepo, nil).Once()

	flights, err := service.List(ctx)

	assert.NoError(t, err)
	assert.Equal(t, fromRepo, flights)
}

func TestFlightService_GetByID_NotFound(t *testing.T) {
	repo := &MockFlightRepository{}
	service := NewFlightService(repo, nil, logger.NewNop())
	ctx := context.Background()

	repo.On("GetByID", ctx, int64(404)).Return(nil, repository.ErrNotFound).Once()

	flight, err := service.GetByID(ctx, 404)

	assert.ErrorIs(t, err, ErrFlightNotFound)
	assert.Nil(t, flight)
}

func TestFlightService_Search_PassesThrough(t *testing.T) {
	repo := &MockFlightRepository{}
	service := NewFlightService(repo, nil, logger.NewNop())
	ctx := context.Background()

	day := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	results := []domain.Flight{{ID: 5, FlightNumber: "FD314"}}
	repo.On("Search", ctx, "JFK", "LHR", day).Return(results, nil).Once()

	flights, err := service.Search(ctx, "JFK", "LHR", day)

	assert.NoError(t, err)
	assert.Equal(t, results, flights)
}

package api

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"flightdesk/internal/domain"
	"flightdesk/internal/service/flights"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockFlightService struct {
	mock.Mock
}

func (m *MockFlightService) List(ctx context.Context) ([]domain.Flight, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Flight), args.Error(1)
}

func (m *MockFlightService) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flight), args.Error(1)
}

func (m *MockFlightService) Search(ctx context.Context, fromCode, toCode string, day time.Time) ([]domain.Flight, error) {
	args := m.Called(ctx, fromCode, toCode, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Flight), args.Error(1)
}

var _ flights.FlightUseCase = (*MockFlightService)(nil)

func newFlightTestRouter(service flights.FlightUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewFlightHandler(service).Register(router.Group("/flights"))
	return router
}

func TestFlightHandler_List(t *testing.T) {
	service := &MockFlightService{}
	router := newFlightTestRouter(service)

	listed := []domain.Flight{{ID: 1, FlightNumber: "FD100"}, {ID: 2, FlightNumber: "FD200"}}
	service.On("List", mock.Anything).Return(listed, nil).Once()

	recorder := performJSON(router, http.MethodGet, "/flights", nil)

	assert.Equal(t, http.StatusOK, recorder.Code)

	var resp []domain.Flight
	assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

func TestFlightHandler_Get_NotFound(t *testing.T) {
	service := &MockFlightService{}
	router := newFlightTestRouter(service)

	service.On("GetByID", mock.Anything, int64(404)).Return(nil, flights.ErrFlightNotFound).Once()

	recorder := performJSON(router, http.MethodGet, "/flights/404", nil)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestFlightHandler_Search_Success(t *testing.T) {
	service := &MockFlightService{}
	router := newFlightTestRouter(service)

	day := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	results := []domain.Flight{{ID: 5, FlightNumber: "FD314"}}
	service.On("Search", mock.Anything, "JFK", "LHR", day).Return(results, nil).Once()

	recorder := performJSON(router, http.MethodGet, "/flights/search?from=JFK&to=LHR&date=2026-03-14", nil)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "FD314")
}

func TestFlightHandler_Search_MissingParams(t *testing.T) {
	service := &MockFlightService{}
	router := newFlightTestRouter(service)

	recorder := performJSON(router, http.MethodGet, "/flights/search?from=JFK", nil)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	service.AssertNotCalled(t, "Search", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestFlightHandler_Search_BadDate(t *testing.T) {
	service := &MockFlightService{}
	router := newFlightTestRouter(service)

	recorder := performJSON(router, http.MethodGet, "/flights/search?from=JFK&to=LHR&date=14-03-2026", nil)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

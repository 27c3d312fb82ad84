package booking

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"flightdesk/internal/domain"
	"flightdesk/internal/kafka"
	"flightdesk/internal/repository"
	"flightdesk/pkg/logger"
	"flightdesk/pkg/metrics"
)

// referenceAttempts bounds the generate-then-insert retry loop on a
// reference collision.
const referenceAttempts = 5

var seatPattern = regexp.MustCompile(`^[A-Z][0-9]{1,2}$`)

type BookingUseCase interface {
	CreateBooking(ctx context.Context, input CreateBookingInput) (*domain.Booking, error)
	GetBooking(ctx context.Context, id int64) (*domain.Booking, error)
	GetBookingByReference(ctx context.Context, reference string) (*domain.Booking, error)
	ListBookingsByPassenger(ctx context.Context, passengerID int64) ([]domain.Booking, error)
	UpdateBookingStatus(ctx context.Context, id int64, status domain.BookingStatus) (*domain.Booking, error)
	ConfirmBooking(ctx context.Context, id int64, paymentMethod string, amountCents int64) (*domain.Booking, error)
	CancelBooking(ctx context.Context, id int64) (*domain.Booking, error)
	CheckIn(ctx context.Context, id int64, seatNumber string) (*domain.Booking, error)
	ListTransactions(ctx context.Context, bookingID int64) ([]domain.Transaction, error)
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type CreateBookingInput struct {
	PassengerID int64 `json:"passenger_id"`
	FlightID    int64 `json:"flight_id"`
	ClassID     int64 `json:"class_id"`
}

type BookingService struct {
	bookings           repository.BookingRepository
	flights            repository.FlightRepository
	passengers         repository.PassengerRepository
	classes            repository.TravelClassRepository
	transactions       repository.TransactionRepository
	producer           Producer
	log                logger.Logger
	metrics            *metrics.Metrics
	bookingTopic       string
	notificationsTopic string
}

type BookingServiceOption func(*BookingService)

func WithNotificationsTopic(topic string) BookingServiceOption {
	return func(s *BookingService) {
		s.notificationsTopic = topic
	}
}

func WithMetrics(m *metrics.Metrics) BookingServiceOption {
	return func(s *BookingService) {
		s.metrics = m
	}
}

func NewBookingService(
	bookings repository.BookingRepository,
	flights repository.FlightRepository,
	passengers repository.PassengerRepository,
	classes repository.TravelClassRepository,
	transactions repository.TransactionRepository,
	producer Producer,
	log logger.Logger,
	bookingTopic string,
	opts ...BookingServiceOption,
) *BookingService {
	service := &BookingService{
		bookings:     bookings,
		flights:      flights,
		passengers:   passengers,
		classes:      classes,
		transactions: transactions,
		producer:     producer,
		log:          log,
		bookingTopic: bookingTopic,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// CreateBooking resolves the three referenced entities, prices the ticket
// and persists a Reserved booking. Nothing is written if any lookup misses.
func (s *BookingService) CreateBooking(ctx context.Context, input CreateBookingInput) (_ *domain.Booking, err error) {
	defer s.countError("create_booking", &err)
	passenger, err := s.passengers.GetByID(ctx, input.PassengerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrPassengerNotFound, input.PassengerID)
		}
		return nil, err
	}

	flight, err := s.flights.GetByID(ctx, input.FlightID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrFlightNotFound, input.FlightID)
		}
		return nil, err
	}

	class, err := s.classes.GetByID(ctx, input.ClassID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrClassNotFound, input.ClassID)
		}
		return nil, err
	}

	booking := &domain.Booking{
		PassengerID: input.PassengerID,
		FlightID:    input.FlightID,
		ClassID:     input.ClassID,
		BookingDate: time.Now(),
		Status:      domain.BookingStatusReserved,
		TotalCents:  domain.TicketPriceCents(flight.BasePriceCents, class.MultiplierBP),
	}

	if err := s.createWithReference(ctx, booking); err != nil {
		return nil, err
	}

	booking.PassengerName = passenger.FullName()
	booking.FlightNumber = flight.FlightNumber
	booking.ClassName = class.Name

	if s.metrics != nil {
		s.metrics.BookingsCreated.Inc()
	}
	s.publish(ctx, "booking_created", booking)
	return booking, nil
}

// createWithReference retries the insert with a fresh reference when the
// unique constraint on booking_reference rejects a collision.
func (s *BookingService) createWithReference(ctx context.Context, booking *domain.Booking) error {
	for attempt := 0; attempt < referenceAttempts; attempt++ {
		booking.Reference = newBookingReference()
		err := s.bookings.Create(ctx, booking)
		if err == nil {
			return nil
		}
		if !errors.Is(err, repository.ErrDuplicate) {
			return err
		}
		s.log.Warn("booking reference collision, retrying", "reference", booking.Reference)
	}
	return ErrReferenceExhausted
}

func (s *BookingService) GetBooking(ctx context.Context, id int64) (*domain.Booking, error) {
	booking, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrBookingNotFound, id)
		}
		return nil, err
	}
	return booking, nil
}

func (s *BookingService) GetBookingByReference(ctx context.Context, reference string) (*domain.Booking, error) {
	booking, err := s.bookings.GetByReference(ctx, reference)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: reference %s", ErrBookingNotFound, reference)
		}
		return nil, err
	}
	return booking, nil
}

func (s *BookingService) ListBookingsByPassenger(ctx context.Context, passengerID int64) ([]domain.Booking, error) {
	return s.bookings.ListByPassenger(ctx, passengerID)
}

// UpdateBookingStatus applies a status change after validating it against
// the transition table.
func (s *BookingService) UpdateBookingStatus(ctx context.Context, id int64, status domain.BookingStatus) (_ *domain.Booking, err error) {
	defer s.countError("update_status", &err)
	if !status.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	current, err := s.GetBooking(ctx, id)
	if err != nil {
		return nil, err
	}
	if !current.Status.CanTransitionTo(status) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current.Status, status)
	}

	return s.bookings.UpdateStatus(ctx, id, status)
}

// ConfirmBooking moves a Reserved booking to Confirmed and records the
// payment. Both writes happen in one unit of work, so the booking is never
// left Confirmed without its transaction row.
func (s *BookingService) ConfirmBooking(ctx context.Context, id int64, paymentMethod string, amountCents int64) (_ *domain.Booking, err error) {
	defer s.countError("confirm_booking", &err)

	current, err := s.GetBooking(ctx, id)
	if err != nil {
		return nil, err
	}
	if !current.Status.CanTransitionTo(domain.BookingStatusConfirmed) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current.Status, domain.BookingStatusConfirmed)
	}

	txn := &domain.Transaction{
		BookingID:       id,
		AmountCents:     amountCents,
		PaymentMethod:   paymentMethod,
		Status:          domain.TransactionStatusCompleted,
		TransactionDate: time.Now(),
	}

	var confirmed *domain.Booking
	for attempt := 0; attempt < referenceAttempts; attempt++ {
		txn.ReferenceNumber = newTransactionReference()
		confirmed, err = s.bookings.Confirm(ctx, id, txn)
		if err == nil {
			break
		}
		if !errors.Is(err, repository.ErrDuplicate) {
			return nil, err
		}
		s.log.Warn("transaction reference collision, retrying", "reference", txn.ReferenceNumber)
	}
	if confirmed == nil {
		return nil, ErrReferenceExhausted
	}

	if s.metrics != nil {
		s.metrics.BookingsConfirmed.Inc()
	}
	s.log.Info("booking confirmed", "booking_id", id, "transaction_reference", txn.ReferenceNumber, "amount_cents", amountCents)
	s.publish(ctx, "booking_confirmed", confirmed)
	return confirmed, nil
}

// CancelBooking is idempotent: cancelling an already cancelled booking
// returns it unchanged.
func (s *BookingService) CancelBooking(ctx context.Context, id int64) (_ *domain.Booking, err error) {
	defer s.countError("cancel_booking", &err)

	current, err := s.GetBooking(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.Status == domain.BookingStatusCancelled {
		return current, nil
	}

	cancelled, err := s.bookings.UpdateStatus(ctx, id, domain.BookingStatusCancelled)
	if err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.BookingsCancelled.Inc()
	}
	s.publish(ctx, "booking_cancelled", cancelled)
	return cancelled, nil
}

// CheckIn validates the seat format and moves a Confirmed booking to
// Checked-in. The check is syntactic only; there is no per-flight seat map.
func (s *BookingService) CheckIn(ctx context.Context, id int64, seatNumber string) (_ *domain.Booking, err error) {
	defer s.countError("check_in", &err)

	current, err := s.GetBooking(ctx, id)
	if err != nil {
		return nil, err
	}
	if !seatPattern.MatchString(seatNumber) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSeat, seatNumber)
	}
	if !current.Status.CanTransitionTo(domain.BookingStatusCheckedIn) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current.Status, domain.BookingStatusCheckedIn)
	}

	checkedIn, err := s.bookings.CheckIn(ctx, id, seatNumber)
	if err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.CheckIns.Inc()
	}
	s.publish(ctx, "booking_checked_in", checkedIn)
	return checkedIn, nil
}

func (s *BookingService) ListTransactions(ctx context.Context, bookingID int64) ([]domain.Transaction, error) {
	return s.transactions.ListByBooking(ctx, bookingID)
}

// countError bumps the per-operation error counter when the deferred
// result carries an error.
func (s *BookingService) countError(operation string, err *error) {
	if s.metrics != nil && *err != nil {
		s.metrics.ErrorsCount.WithLabelValues(operation).Inc()
	}
}

// publish is best-effort: event delivery must not fail the write that
// already committed.
func (s *BookingService) publish(ctx context.Context, eventType string, booking *domain.Booking) {
	if s.producer == nil || s.bookingTopic == "" {
		return
	}
	event := kafka.BookingEvent{
		Type:        eventType,
		Reference:   booking.Reference,
		BookingID:   booking.ID,
		FlightID:    booking.FlightID,
		PassengerID: booking.PassengerID,
		Status:      string(booking.Status),
		TotalCents:  booking.TotalCents,
		OccurredAt:  time.Now(),
	}
	if booking.SeatNumber != nil {
		event.SeatNumber = *booking.SeatNumber
	}
	if err := s.producer.Publish(ctx, s.bookingTopic, booking.Reference, event); err != nil {
		s.log.Warn("failed to publish booking event", "type", eventType, "reference", booking.Reference, "error", err)
		return
	}
	if s.notificationsTopic != "" {
		if err := s.producer.Publish(ctx, s.notificationsTopic, booking.Reference, event); err != nil {
			s.log.Warn("failed to publish notification event", "type", eventType, "reference", booking.Reference, "error", err)
		}
	}
}

var _ BookingUseCase = (*BookingService)(nil)

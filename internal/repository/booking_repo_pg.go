package repository

import (
	"context"

	"flightdesk/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByReference(ctx context.Context, reference string) (*domain.Booking, error)
	ListByPassenger(ctx context.Context, passengerID int64) ([]domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) (*domain.Booking, error)
	CheckIn(ctx context.Context, id int64, seatNumber string) (*domain.Booking, error)
	Confirm(ctx context.Context, id int64, txn *domain.Transaction) (*domain.Booking, error)
	Delete(ctx context.Context, id int64) error
}

type PGBookingRepository struct {
	db *pgxpool.Pool
}

func NewBookingRepository(db *pgxpool.Pool) BookingRepository {
	return &PGBookingRepository{db: db}
}

const bookingJoinedSelect = `SELECT b.id, b.booking_reference, b.passenger_id, b.flight_id, b.class_id,
		b.seat_number, b.booking_date, b.status, b.total_cents, b.created_at, b.updated_at,
		p.first_name || ' ' || p.last_name, f.flight_number, tc.name
	FROM bookings b
	JOIN passengers p ON p.id = b.passenger_id
	JOIN flights f ON f.id = b.flight_id
	JOIN travel_classes tc ON tc.id = b.class_id`

const bookingReturning = `id, booking_reference, passenger_id, flight_id, class_id, seat_number, booking_date, status, total_cents, created_at, updated_at`

func (r *PGBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	err := r.db.QueryRow(ctx, `INSERT INTO bookings (booking_reference, passenger_id, flight_id, class_id, seat_number, booking_date, status, total_cents)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at`,
		booking.Reference, booking.PassengerID, booking.FlightID, booking.ClassID,
		booking.SeatNumber, booking.BookingDate, booking.Status, booking.TotalCents).
		Scan(&booking.ID, &booking.CreatedAt, &booking.UpdatedAt)
	return translateErr(err)
}

func (r *PGBookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	row := r.db.QueryRow(ctx, bookingJoinedSelect+` WHERE b.id=$1`, id)
	return scanJoinedBooking(row)
}

func (r *PGBookingRepository) GetByReference(ctx context.Context, reference string) (*domain.Booking, error) {
	row := r.db.QueryRow(ctx, bookingJoinedSelect+` WHERE b.booking_reference=$1`, reference)
	return scanJoinedBooking(row)
}

func (r *PGBookingRepository) ListByPassenger(ctx context.Context, passengerID int64) ([]domain.Booking, error) {
	rows, err := r.db.Query(ctx, bookingJoinedSelect+` WHERE b.passenger_id=$1 ORDER BY b.booking_date DESC`, passengerID)
	if err != nil {
		return nil, translateErr(err)
	}
	defer rows.Close()

	bookings := make([]domain.Booking, 0)
	for rows.Next() {
		b, err := scanJoinedBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, *b)
	}
	return bookings, translateErr(rows.Err())
}

func (r *PGBookingRepository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) (*domain.Booking, error) {
	row := r.db.QueryRow(ctx, `UPDATE bookings SET status=$1, updated_at=now() WHERE id=$2 RETURNING `+bookingReturning, status, id)
	return scanBooking(row)
}

func (r *PGBookingRepository) CheckIn(ctx context.Context, id int64, seatNumber string) (*domain.Booking, error) {
	row := r.db.QueryRow(ctx, `UPDATE bookings SET status=$1, seat_number=$2, updated_at=now() WHERE id=$3 RETURNING `+bookingReturning,
		domain.BookingStatusCheckedIn, seatNumber, id)
	return scanBooking(row)
}

// Confirm flips the booking to Confirmed and records the payment in a
// single database transaction, so a payment row never exists without the
// matching status change and vice versa.
func (r *PGBookingRepository) Confirm(ctx context.Context, id int64, txn *domain.Transaction) (*domain.Booking, error) {
	dbTx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, translateErr(err)
	}
	defer dbTx.Rollback(ctx)

	row := dbTx.QueryRow(ctx, `UPDATE bookings SET status=$1, updated_at=now() WHERE id=$2 RETURNING `+bookingReturning,
		domain.BookingStatusConfirmed, id)
	booking, err := scanBooking(row)
	if err != nil {
		return nil, err
	}

	if err := dbTx.QueryRow(ctx, `INSERT INTO transactions (booking_id, amount_cents, payment_method, status, transaction_date, reference_number)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		txn.BookingID, txn.AmountCents, txn.PaymentMethod, txn.Status, txn.TransactionDate, txn.ReferenceNumber).
		Scan(&txn.ID); err != nil {
		return nil, translateErr(err)
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, translateErr(err)
	}
	return booking, nil
}

func (r *PGBookingRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM bookings WHERE id=$1`, id)
	if err != nil {
		return translateErr(err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanBooking(row pgx.Row) (*domain.Booking, error) {
	var b domain.Booking
	if err := row.Scan(&b.ID, &b.Reference, &b.PassengerID, &b.FlightID, &b.ClassID,
		&b.SeatNumber, &b.BookingDate, &b.Status, &b.TotalCents, &b.CreatedAt, &b.UpdatedAt); err != nil {
		return nil, translateErr(err)
	}
	return &b, nil
}

func scanJoinedBooking(row pgx.Row) (*domain.Booking, error) {
	var b domain.Booking
	if err := row.Scan(&b.ID, &b.Reference, &b.PassengerID, &b.FlightID, &b.ClassID,
		&b.SeatNumber, &b.BookingDate, &b.Status, &b.TotalCents, &b.CreatedAt, &b.UpdatedAt,
		&b.PassengerName, &b.FlightNumber, &b.ClassName); err != nil {
		return nil, translateErr(err)
	}
	return &b, nil
}

var _ BookingRepository = (*PGBookingRepository)(nil)

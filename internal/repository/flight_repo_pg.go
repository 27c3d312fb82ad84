package repository

import (
	"context"
	"time"

	"flightdesk/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type FlightRepository interface {
	Create(ctx context.Context, flight *domain.Flight) error
	Update(ctx context.Context, flight *domain.Flight) error
	GetByID(ctx context.Context, id int64) (*domain.Flight, error)
	List(ctx context.Context) ([]domain.Flight, error)
	Search(ctx context.Context, fromCode, toCode string, day time.Time) ([]domain.Flight, error)
	Delete(ctx context.Context, id int64) error
}

type PGFlightRepository struct {
	db *pgxpool.Pool
}

func NewFlightRepository(db *pgxpool.Pool) FlightRepository {
	return &PGFlightRepository{db: db}
}

const flightJoinedSelect = `SELECT f.id, f.flight_number, f.airline_id, f.aircraft_id,
		f.departure_airport_id, f.arrival_airport_id, f.departure_time, f.arrival_time,
		f.base_price_cents, f.status, f.created_at, f.updated_at,
		al.name, dep.code, arr.code
	FROM flights f
	JOIN airlines al ON al.id = f.airline_id
	JOIN airports dep ON dep.id = f.departure_airport_id
	JOIN airports arr ON arr.id = f.arrival_airport_id`

func (r *PGFlightRepository) Create(ctx context.Context, flight *domain.Flight) error {
	if flight.Status == "" {
		flight.Status = domain.FlightStatusScheduled
	}
	err := r.db.QueryRow(ctx, `INSERT INTO flights (flight_number, airline_id, aircraft_id, departure_airport_id, arrival_airport_id, departure_time, arrival_time, base_price_cents, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at`,
		flight.FlightNumber, flight.AirlineID, flight.AircraftID, flight.DepartureAirportID,
		flight.ArrivalAirportID, flight.DepartureTime, flight.ArrivalTime, flight.BasePriceCents, flight.Status).
		Scan(&flight.ID, &flight.CreatedAt, &flight.UpdatedAt)
	return translateErr(err)
}

func (r *PGFlightRepository) Update(ctx context.Context, flight *domain.Flight) error {
	cmd, err := r.db.Exec(ctx, `UPDATE flights SET flight_number=$1, airline_id=$2, aircraft_id=$3, departure_airport_id=$4, arrival_airport_id=$5, departure_time=$6, arrival_time=$7, base_price_cents=$8, status=$9, updated_at=now() WHERE id=$10`,
		flight.FlightNumber, flight.AirlineID, flight.AircraftID, flight.DepartureAirportID,
		flight.ArrivalAirportID, flight.DepartureTime, flight.ArrivalTime, flight.BasePriceCents, flight.Status, flight.ID)
	if err != nil {
		return translateErr(err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PGFlightRepository) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	row := r.db.QueryRow(ctx, flightJoinedSelect+` WHERE f.id=$1`, id)
	return scanFlight(row)
}

func (r *PGFlightRepository) List(ctx context.Context) ([]domain.Flight, error) {
	rows, err := r.db.Query(ctx, flightJoinedSelect+` ORDER BY f.departure_time`)
	if err != nil {
		return nil, translateErr(err)
	}
	defer rows.Close()
	return collectFlights(rows)
}

func (r *PGFlightRepository) Search(ctx context.Context, fromCode, toCode string, day time.Time) ([]domain.Flight, error) {
	rows, err := r.db.Query(ctx, flightJoinedSelect+` WHERE dep.code=$1 AND arr.code=$2 AND f.departure_time >= $3 AND f.departure_time < $4 ORDER BY f.departure_time`,
		fromCode, toCode, day, day.AddDate(0, 0, 1))
	if err != nil {
		return nil, translateErr(err)
	}
	defer rows.Close()
	return collectFlights(rows)
}

func (r *PGFlightRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM flights WHERE id=$1`, id)
	if err != nil {
		return translateErr(err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanFlight(row pgx.Row) (*domain.Flight, error) {
	var f domain.Flight
	if err := row.Scan(&f.ID, &f.FlightNumber, &f.AirlineID, &f.AircraftID,
		&f.DepartureAirportID, &f.ArrivalAirportID, &f.DepartureTime, &f.ArrivalTime,
		&f.BasePriceCents, &f.Status, &f.CreatedAt, &f.UpdatedAt,
		&f.AirlineName, &f.DepartureAirportCode, &f.ArrivalAirportCode); err != nil {
		return nil, translateErr(err)
	}
	return &f, nil
}

func collectFlights(rows pgx.Rows) ([]domain.Flight, error) {
	flights := make([]domain.Flight, 0)
	for rows.Next() {
		f, err := scanFlight(rows)
		if err != nil {
			return nil, err
		}
		flights = append(flights, *f)
	}
	return flights, translateErr(rows.Err())
}

var _ FlightRepository = (*PGFlightRepository)(nil)

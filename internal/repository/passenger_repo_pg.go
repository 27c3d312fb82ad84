package repository

import (
	"context"

	"flightdesk/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PassengerRepository interface {
	Create(ctx context.Context, passenger *domain.Passenger) error
	Update(ctx context.Context, passenger *domain.Passenger) error
	GetByID(ctx context.Context, id int64) (*domain.Passenger, error)
	GetByEmail(ctx context.Context, email string) (*domain.Passenger, error)
	List(ctx context.Context) ([]domain.Passenger, error)
	Delete(ctx context.Context, id int64) error
}

type PGPassengerRepository struct {
	db *pgxpool.Pool
}

func NewPassengerRepository(db *pgxpool.Pool) PassengerRepository {
	return &PGPassengerRepository{db: db}
}

const passengerColumns = `id, first_name, last_name, date_of_birth, gender, passport_number, nationality, email, phone_number, address, created_at, updated_at`

func (r *PGPassengerRepository) Create(ctx context.Context, passenger *domain.Passenger) error {
	err := r.db.QueryRow(ctx, `INSERT INTO passengers (first_name, last_name, date_of_birth, gender, passport_number, nationality, email, phone_number, address)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at`,
		passenger.FirstName, passenger.LastName, passenger.DateOfBirth, passenger.Gender,
		passenger.PassportNumber, passenger.Nationality, passenger.Email, passenger.PhoneNumber, passenger.Address).
		Scan(&passenger.ID, &passenger.CreatedAt, &passenger.UpdatedAt)
	return translateErr(err)
}

func (r *PGPassengerRepository) Update(ctx context.Context, passenger *domain.Passenger) error {
	cmd, err := r.db.Exec(ctx, `UPDATE passengers SET first_name=$1, last_name=$2, date_of_birth=$3, gender=$4, passport_number=$5, nationality=$6, email=$7, phone_number=$8, address=$9, updated_at=now() WHERE id=$10`,
		passenger.FirstName, passenger.LastName, passenger.DateOfBirth, passenger.Gender,
		passenger.PassportNumber, passenger.Nationality, passenger.Email, passenger.PhoneNumber, passenger.Address, passenger.ID)
	if err != nil {
		return translateErr(err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PGPassengerRepository) GetByID(ctx context.Context, id int64) (*domain.Passenger, error) {
	row := r.db.QueryRow(ctx, `SELECT `+passengerColumns+` FROM passengers WHERE id=$1`, id)
	return scanPassenger(row)
}

func (r *PGPassengerRepository) GetByEmail(ctx context.Context, email string) (*domain.Passenger, error) {
	row := r.db.QueryRow(ctx, `SELECT `+passengerColumns+` FROM passengers WHERE email=$1`, email)
	return scanPassenger(row)
}

func (r *PGPassengerRepository) List(ctx context.Context) ([]domain.Passenger, error) {
	rows, err := r.db.Query(ctx, `SELECT `+passengerColumns+` FROM passengers ORDER BY id`)
	if err != nil {
		return nil, translateErr(err)
	}
	defer rows.Close()

	passengers := make([]domain.Passenger, 0)
	for rows.Next() {
		p, err := scanPassenger(rows)
		if err != nil {
			return nil, err
		}
		passengers = append(passengers, *p)
	}
	return passengers, translateErr(rows.Err())
}

func (r *PGPassengerRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM passengers WHERE id=$1`, id)
	if err != nil {
		return translateErr(err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanPassenger(row pgx.Row) (*domain.Passenger, error) {
	var p domain.Passenger
	if err := row.Scan(&p.ID, &p.FirstName, &p.LastName, &p.DateOfBirth, &p.Gender,
		&p.PassportNumber, &p.Nationality, &p.Email, &p.PhoneNumber, &p.Address,
		&p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, translateErr(err)
	}
	return &p, nil
}

var _ PassengerRepository = (*PGPassengerRepository)(nil)

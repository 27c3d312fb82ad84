package repository

import (
	"context"

	"flightdesk/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AircraftRepository interface {
	Create(ctx context.Context, aircraft *domain.Aircraft) error
	Update(ctx context.Context, aircraft *domain.Aircraft) error
	GetByID(ctx context.Context, id int64) (*domain.Aircraft, error)
	List(ctx context.Context) ([]domain.Aircraft, error)
	ListByAirline(ctx context.Context, airlineID int64) ([]domain.Aircraft, error)
	Delete(ctx context.Context, id int64) error
}

type PGAircraftRepository struct {
	db *pgxpool.Pool
}

func NewAircraftRepository(db *pgxpool.Pool) AircraftRepository {
	return &PGAircraftRepository{db: db}
}

func (r *PGAircraftRepository) Create(ctx context.Context, aircraft *domain.Aircraft) error {
	err := r.db.QueryRow(ctx, `INSERT INTO aircraft (code, model, total_seats, airline_id) VALUES ($1, $2, $3, $4) RETURNING id`,
		aircraft.Code, aircraft.Model, aircraft.TotalSeats, aircraft.AirlineID).Scan(&aircraft.ID)
	return translateErr(err)
}

func (r *PGAircraftRepository) Update(ctx context.Context, aircraft *domain.Aircraft) error {
	cmd, err := r.db.Exec(ctx, `UPDATE aircraft SET code=$1, model=$2, total_seats=$3, airline_id=$4 WHERE id=$5`,
		aircraft.Code, aircraft.Model, aircraft.TotalSeats, aircraft.AirlineID, aircraft.ID)
	if err != nil {
		return translateErr(err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PGAircraftRepository) GetByID(ctx context.Context, id int64) (*domain.Aircraft, error) {
	return scanAircraft(r.db.QueryRow(ctx, `SELECT id, code, model, total_seats, airline_id FROM aircraft WHERE id=$1`, id))
}

func (r *PGAircraftRepository) List(ctx context.Context) ([]domain.Aircraft, error) {
	rows, err := r.db.Query(ctx, `SELECT id, code, model, total_seats, airline_id FROM aircraft ORDER BY code`)
	if err != nil {
		return nil, translateErr(err)
	}
	defer rows.Close()
	return collectAircraft(rows)
}

func (r *PGAircraftRepository) ListByAirline(ctx context.Context, airlineID int64) ([]domain.Aircraft, error) {
	rows, err := r.db.Query(ctx, `SELECT id, code, model, total_seats, airline_id FROM aircraft WHERE airline_id=$1 ORDER BY code`, airlineID)
	if err != nil {
		return nil, translateErr(err)
	}
	defer rows.Close()
	return collectAircraft(rows)
}

func (r *PGAircraftRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM aircraft WHERE id=$1`, id)
	if err != nil {
		return translateErr(err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func collectAircraft(rows pgx.Rows) ([]domain.Aircraft, error) {
	fleet := make([]domain.Aircraft, 0)
	for rows.Next() {
		a, err := scanAircraft(rows)
		if err != nil {
			return nil, err
		}
		fleet = append(fleet, *a)
	}
	return fleet, translateErr(rows.Err())
}

func scanAircraft(row pgx.Row) (*domain.Aircraft, error) {
	var a domain.Aircraft
	if err := row.Scan(&a.ID, &a.Code, &a.Model, &a.TotalSeats, &a.AirlineID); err != nil {
		return nil, translateErr(err)
	}
	return &a, nil
}

var _ AircraftRepository = (*PGAircraftRepository)(nil)

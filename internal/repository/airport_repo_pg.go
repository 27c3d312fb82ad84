package repository

import (
	"context"

	"flightdesk/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AirportRepository interface {
	Create(ctx context.Context, airport *domain.Airport) error
	Update(ctx context.Context, airport *domain.Airport) error
	GetByID(ctx context.Context, id int64) (*domain.Airport, error)
	GetByCode(ctx context.Context, code string) (*domain.Airport, error)
	List(ctx context.Context) ([]domain.Airport, error)
	ListByCity(ctx context.Context, city string) ([]domain.Airport, error)
	Delete(ctx context.Context, id int64) error
}

type PGAirportRepository struct {
	db *pgxpool.Pool
}

func NewAirportRepository(db *pgxpool.Pool) AirportRepository {
	return &PGAirportRepository{db: db}
}

const airportColumns = `id, code, name, city, country, is_active`

func (r *PGAirportRepository) Create(ctx context.Context, airport *domain.Airport) error {
	err := r.db.QueryRow(ctx, `INSERT INTO airports (code, name, city, country, is_active) VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		airport.Code, airport.Name, airport.City, airport.Country, airport.IsActive).Scan(&airport.ID)
	return translateErr(err)
}

func (r *PGAirportRepository) Update(ctx context.Context, airport *domain.Airport) error {
	cmd, err := r.db.Exec(ctx, `UPDATE airports SET code=$1, name=$2, city=$3, country=$4, is_active=$5 WHERE id=$6`,
		airport.Code, airport.Name, airport.City, airport.Country, airport.IsActive, airport.ID)
	if err != nil {
		return translateErr(err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PGAirportRepository) GetByID(ctx context.Context, id int64) (*domain.Airport, error) {
	return scanAirport(r.db.QueryRow(ctx, `SELECT `+airportColumns+` FROM airports WHERE id=$1`, id))
}

func (r *PGAirportRepository) GetByCode(ctx context.Context, code string) (*domain.Airport, error) {
	return scanAirport(r.db.QueryRow(ctx, `SELECT `+airportColumns+` FROM airports WHERE code=$1`, code))
}

func (r *PGAirportRepository) List(ctx context.Context) ([]domain.Airport, error) {
	rows, err := r.db.Query(ctx, `SELECT `+airportColumns+` FROM airports ORDER BY code`)
	if err != nil {
		return nil, translateErr(err)
	}
	defer rows.Close()
	return collectAirports(rows)
}

func (r *PGAirportRepository) ListByCity(ctx context.Context, city string) ([]domain.Airport, error) {
	rows, err := r.db.Query(ctx, `SELECT `+airportColumns+` FROM airports WHERE city=$1 ORDER BY code`, city)
	if err != nil {
		return nil, translateErr(err)
	}
	defer rows.Close()
	return collectAirports(rows)
}

func (r *PGAirportRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM airports WHERE id=$1`, id)
	if err != nil {
		return translateErr(err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func collectAirports(rows pgx.Rows) ([]domain.Airport, error) {
	airports := make([]domain.Airport, 0)
	for rows.Next() {
		a, err := scanAirport(rows)
		if err != nil {
			return nil, err
		}
		airports = append(airports, *a)
	}
	return airports, translateErr(rows.Err())
}

func scanAirport(row pgx.Row) (*domain.Airport, error) {
	var a domain.Airport
	if err := row.Scan(&a.ID, &a.Code, &a.Name, &a.City, &a.Country, &a.IsActive); err != nil {
		return nil, translateErr(err)
	}
	return &a, nil
}

var _ AirportRepository = (*PGAirportRepository)(nil)

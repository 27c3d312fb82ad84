package repository

import (
	"context"

	"flightdesk/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AirlineRepository interface {
	Create(ctx context.Context, airline *domain.Airline) error
	Update(ctx context.Context, airline *domain.Airline) error
	GetByID(ctx context.Context, id int64) (*domain.Airline, error)
	GetByCode(ctx context.Context, code string) (*domain.Airline, error)
	List(ctx context.Context) ([]domain.Airline, error)
	ListActive(ctx context.Context) ([]domain.Airline, error)
	Delete(ctx context.Context, id int64) error
}

type PGAirlineRepository struct {
	db *pgxpool.Pool
}

func NewAirlineRepository(db *pgxpool.Pool) AirlineRepository {
	return &PGAirlineRepository{db: db}
}

func (r *PGAirlineRepository) Create(ctx context.Context, airline *domain.Airline) error {
	err := r.db.QueryRow(ctx, `INSERT INTO airlines (code, name, is_active) VALUES ($1, $2, $3) RETURNING id`,
		airline.Code, airline.Name, airline.IsActive).Scan(&airline.ID)
	return translateErr(err)
}

func (r *PGAirlineRepository) Update(ctx context.Context, airline *domain.Airline) error {
	cmd, err := r.db.Exec(ctx, `UPDATE airlines SET code=$1, name=$2, is_active=$3 WHERE id=$4`,
		airline.Code, airline.Name, airline.IsActive, airline.ID)
	if err != nil {
		return translateErr(err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PGAirlineRepository) GetByID(ctx context.Context, id int64) (*domain.Airline, error) {
	return scanAirline(r.db.QueryRow(ctx, `SELECT id, code, name, is_active FROM airlines WHERE id=$1`, id))
}

func (r *PGAirlineRepository) GetByCode(ctx context.Context, code string) (*domain.Airline, error) {
	return scanAirline(r.db.QueryRow(ctx, `SELECT id, code, name, is_active FROM airlines WHERE code=$1`, code))
}

func (r *PGAirlineRepository) List(ctx context.Context) ([]domain.Airline, error) {
	return r.query(ctx, `SELECT id, code, name, is_active FROM airlines ORDER BY code`)
}

func (r *PGAirlineRepository) ListActive(ctx context.Context) ([]domain.Airline, error) {
	return r.query(ctx, `SELECT id, code, name, is_active FROM airlines WHERE is_active ORDER BY code`)
}

func (r *PGAirlineRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM airlines WHERE id=$1`, id)
	if err != nil {
		return translateErr(err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PGAirlineRepository) query(ctx context.Context, sql string) ([]domain.Airline, error) {
	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, translateErr(err)
	}
	defer rows.Close()

	airlines := make([]domain.Airline, 0)
	for rows.Next() {
		a, err := scanAirline(rows)
		if err != nil {
			return nil, err
		}
		airlines = append(airlines, *a)
	}
	return airlines, translateErr(rows.Err())
}

func scanAirline(row pgx.Row) (*domain.Airline, error) {
	var a domain.Airline
	if err := row.Scan(&a.ID, &a.Code, &a.Name, &a.IsActive); err != nil {
		return nil, translateErr(err)
	}
	return &a, nil
}

var _ AirlineRepository = (*PGAirlineRepository)(nil)

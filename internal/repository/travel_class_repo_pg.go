package repository

import (
	"context"

	"flightdesk/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type TravelClassRepository interface {
	Create(ctx context.Context, class *domain.TravelClass) error
	Update(ctx context.Context, class *domain.TravelClass) error
	GetByID(ctx context.Context, id int64) (*domain.TravelClass, error)
	List(ctx context.Context) ([]domain.TravelClass, error)
	Delete(ctx context.Context, id int64) error
}

type PGTravelClassRepository struct {
	db *pgxpool.Pool
}

func NewTravelClassRepository(db *pgxpool.Pool) TravelClassRepository {
	return &PGTravelClassRepository{db: db}
}

func (r *PGTravelClassRepository) Create(ctx context.Context, class *domain.TravelClass) error {
	err := r.db.QueryRow(ctx, `INSERT INTO travel_classes (name, multiplier_bp) VALUES ($1, $2) RETURNING id`,
		class.Name, class.MultiplierBP).Scan(&class.ID)
	return translateErr(err)
}

func (r *PGTravelClassRepository) Update(ctx context.Context, class *domain.TravelClass) error {
	cmd, err := r.db.Exec(ctx, `UPDATE travel_classes SET name=$1, multiplier_bp=$2 WHERE id=$3`,
		class.Name, class.MultiplierBP, class.ID)
	if err != nil {
		return translateErr(err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PGTravelClassRepository) GetByID(ctx context.Context, id int64) (*domain.TravelClass, error) {
	var c domain.TravelClass
	err := r.db.QueryRow(ctx, `SELECT id, name, multiplier_bp FROM travel_classes WHERE id=$1`, id).
		Scan(&c.ID, &c.Name, &c.MultiplierBP)
	if err != nil {
		return nil, translateErr(err)
	}
	return &c, nil
}

func (r *PGTravelClassRepository) List(ctx context.Context) ([]domain.TravelClass, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, multiplier_bp FROM travel_classes ORDER BY id`)
	if err != nil {
		return nil, translateErr(err)
	}
	defer rows.Close()

	classes := make([]domain.TravelClass, 0)
	for rows.Next() {
		var c domain.TravelClass
		if err := rows.Scan(&c.ID, &c.Name, &c.MultiplierBP); err != nil {
			return nil, translateErr(err)
		}
		classes = append(classes, c)
	}
	return classes, translateErr(rows.Err())
}

func (r *PGTravelClassRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM travel_classes WHERE id=$1`, id)
	if err != nil {
		return translateErr(err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

var _ TravelClassRepository = (*PGTravelClassRepository)(nil)

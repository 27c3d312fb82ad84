package repository

import (
	"context"

	"flightdesk/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TransactionRepository interface {
	Create(ctx context.Context, txn *domain.Transaction) error
	GetByID(ctx context.Context, id int64) (*domain.Transaction, error)
	GetByReference(ctx context.Context, reference string) (*domain.Transaction, error)
	ListByBooking(ctx context.Context, bookingID int64) ([]domain.Transaction, error)
}

type PGTransactionRepository struct {
	db *pgxpool.Pool
}

func NewTransactionRepository(db *pgxpool.Pool) TransactionRepository {
	return &PGTransactionRepository{db: db}
}

const transactionColumns = `id, booking_id, amount_cents, payment_method, status, transaction_date, reference_number`

func (r *PGTransactionRepository) Create(ctx context.Context, txn *domain.Transaction) error {
	err := r.db.QueryRow(ctx, `INSERT INTO transactions (booking_id, amount_cents, payment_method, status, transaction_date, reference_number)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		txn.BookingID, txn.AmountCents, txn.PaymentMethod, txn.Status, txn.TransactionDate, txn.ReferenceNumber).
		Scan(&txn.ID)
	return translateErr(err)
}

func (r *PGTransactionRepository) GetByID(ctx context.Context, id int64) (*domain.Transaction, error) {
	row := r.db.QueryRow(ctx, `SELECT `+transactionColumns+` FROM transactions WHERE id=$1`, id)
	return scanTransaction(row)
}

func (r *PGTransactionRepository) GetByReference(ctx context.Context, reference string) (*domain.Transaction, error) {
	row := r.db.QueryRow(ctx, `SELECT `+transactionColumns+` FROM transactions WHERE reference_number=$1`, reference)
	return scanTransaction(row)
}

func (r *PGTransactionRepository) ListByBooking(ctx context.Context, bookingID int64) ([]domain.Transaction, error) {
	rows, err := r.db.Query(ctx, `SELECT `+transactionColumns+` FROM transactions WHERE booking_id=$1 ORDER BY transaction_date`, bookingID)
	if err != nil {
		return nil, translateErr(err)
	}
	defer rows.Close()

	txns := make([]domain.Transaction, 0)
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		txns = append(txns, *t)
	}
	return txns, translateErr(rows.Err())
}

func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	var t domain.Transaction
	if err := row.Scan(&t.ID, &t.BookingID, &t.AmountCents, &t.PaymentMethod,
		&t.Status, &t.TransactionDate, &t.ReferenceNumber); err != nil {
		return nil, translateErr(err)
	}
	return &t, nil
}

var _ TransactionRepository = (*PGTransactionRepository)(nil)

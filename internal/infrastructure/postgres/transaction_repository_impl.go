package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wiratama/expense-tracker-api/internal/domain/entity"
	"github.com/wiratama/expense-tracker-api/internal/domain/repository"
	"github.com/wiratama/expense-tracker-api/pkg/apperr"
)

// errTransactionNotFound deliberately carries the same message whether the
// record is missing or owned by someone else; existence is never revealed
// to a non-owner.
func errTransactionNotFound() error {
	return apperr.New(apperr.NotFound, "Transaction not found or unauthorized")
}

// Path ids come straight from the URL. A malformed UUID can never match
// an owned record, so it reports the same not-found outcome instead of
// surfacing the cast error.
func isMalformedID(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "22P02"
}

type TransactionRepository struct {
	pool *pgxpool.Pool
}

func NewTransactionRepository(pool *pgxpool.Pool) *TransactionRepository {
	return &TransactionRepository{pool: pool}
}

func (r *TransactionRepository) ListByOwner(ctx context.Context, ownerID string) ([]entity.Transaction, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, text, amount, user_id, created_at, updated_at
		FROM transactions
		WHERE user_id = $1
		ORDER BY created_at
	`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]entity.Transaction, 0)
	for rows.Next() {
		var t entity.Transaction
		if err := rows.Scan(&t.ID, &t.Text, &t.Amount, &t.UserID, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

func (r *TransactionRepository) Create(ctx context.Context, t *entity.Transaction) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO transactions (text, amount, user_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`, t.Text, t.Amount, t.UserID)
	return row.Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
}

func (r *TransactionRepository) GetOwned(ctx context.Context, id, ownerID string) (*entity.Transaction, error) {
	t := &entity.Transaction{}
	row := r.pool.QueryRow(ctx, `
		SELECT id, text, amount, user_id, created_at, updated_at
		FROM transactions
		WHERE id = $1 AND user_id = $2
	`, id, ownerID)
	if err := row.Scan(&t.ID, &t.Text, &t.Amount, &t.UserID, &t.CreatedAt, &t.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isMalformedID(err) {
			return nil, errTransactionNotFound()
		}
		return nil, err
	}
	return t, nil
}

// Update writes text and amount, scoped by the compound (id, owner) key.
func (r *TransactionRepository) Update(ctx context.Context, t *entity.Transaction) error {
	t.UpdatedAt = time.Now()

	res, err := r.pool.Exec(ctx, `
		UPDATE transactions
		SET text = $1, amount = $2, updated_at = $3
		WHERE id = $4 AND user_id = $5
	`, t.Text, t.Amount, t.UpdatedAt, t.ID, t.UserID)
	if err != nil {
		if isMalformedID(err) {
			return errTransactionNotFound()
		}
		return err
	}
	if res.RowsAffected() == 0 {
		return errTransactionNotFound()
	}
	return nil
}

func (r *TransactionRepository) DeleteOwned(ctx context.Context, id, ownerID string) error {
	res, err := r.pool.Exec(ctx, `
		DELETE FROM transactions
		WHERE id = $1 AND user_id = $2
	`, id, ownerID)
	if err != nil {
		if isMalformedID(err) {
			return errTransactionNotFound()
		}
		return err
	}
	if res.RowsAffected() == 0 {
		return errTransactionNotFound()
	}
	return nil
}

var _ repository.TransactionRepository = (*TransactionRepository)(nil)

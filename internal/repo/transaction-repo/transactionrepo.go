package transactionrepo

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/teamvest/teamvest/internal/domain"
	"github.com/teamvest/teamvest/internal/pg"
	"go.uber.org/zap"
)

const txnColumns = `id, transaction_id, user_id, type, amount, currency, status, description, related_request_id, balance_after, date`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	var txn domain.Transaction
	err := row.Scan(
		&txn.ID, &txn.TransactionID, &txn.UserID, &txn.Type, &txn.Amount,
		&txn.Currency, &txn.Status, &txn.Description, &txn.RelatedRequestID,
		&txn.BalanceAfter, &txn.Date,
	)
	if err != nil {
		return nil, err
	}
	return &txn, nil
}

func (r *Repository) Create(ctx context.Context, txn *domain.Transaction) (*domain.Transaction, error) {
	query := `
        INSERT INTO transactions (transaction_id, user_id, type, amount, currency, status, description, related_request_id, balance_after, date)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        RETURNING ` + txnColumns + `
    `
	row := r.db.QueryRow(ctx, query,
		txn.TransactionID, txn.UserID, txn.Type, txn.Amount, txn.Currency,
		txn.Status, txn.Description, txn.RelatedRequestID, txn.BalanceAfter, txn.Date,
	)
	created, err := scanTransaction(row)
	if err != nil {
		zap.L().Error("failed to create transaction", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (r *Repository) ListByUser(ctx context.Context, userID string, limit int) ([]domain.Transaction, error) {
	query := `SELECT ` + txnColumns + ` FROM transactions WHERE user_id = $1 ORDER BY date DESC`
	args := []any{userID}
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("failed to query transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var txns []domain.Transaction
	for rows.Next() {
		txn, err := scanTransaction(rows)
		if err != nil {
			zap.L().Error("failed to scan transaction", zap.Error(err))
			return nil, err
		}
		txns = append(txns, *txn)
	}
	return txns, rows.Err()
}

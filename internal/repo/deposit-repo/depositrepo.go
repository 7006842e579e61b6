package depositrepo

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/teamvest/teamvest/internal/domain"
	"github.com/teamvest/teamvest/internal/pg"
	"go.uber.org/zap"
)

const depositColumns = `id, request_id, token, user_id, name, currency, amount, txn_id, receipt_url, status, credited, date`

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func scanDeposit(row pgx.Row) (*domain.DepositRequest, error) {
	var req domain.DepositRequest
	err := row.Scan(
		&req.ID, &req.RequestID, &req.Token, &req.UserID, &req.Name,
		&req.Currency, &req.Amount, &req.TxnID, &req.ReceiptURL,
		&req.Status, &req.Credited, &req.Date,
	)
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *Repository) Create(ctx context.Context, req *domain.DepositRequest) (*domain.DepositRequest, error) {
	query := `
        INSERT INTO deposit_requests (request_id, token, user_id, name, currency, amount, txn_id, receipt_url, status, date)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        RETURNING ` + depositColumns + `
    `
	row := r.db.QueryRow(ctx, query,
		req.RequestID, req.Token, req.UserID, req.Name, req.Currency,
		req.Amount, req.TxnID, req.ReceiptURL, req.Status, req.Date,
	)
	created, err := scanDeposit(row)
	if err != nil {
		zap.L().Error("failed to create deposit request", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (r *Repository) collect(ctx context.Context, query string, args ...any) ([]domain.DepositRequest, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("failed to query deposit requests", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var requests []domain.DepositRequest
	for rows.Next() {
		req, err := scanDeposit(rows)
		if err != nil {
			zap.L().Error("failed to scan deposit request", zap.Error(err))
			return nil, err
		}
		requests = append(requests, *req)
	}
	return requests, rows.Err()
}

func (r *Repository) ListAll(ctx context.Context) ([]domain.DepositRequest, error) {
	return r.collect(ctx, `SELECT `+depositColumns+` FROM deposit_requests ORDER BY date DESC`)
}

func (r *Repository) ListByUser(ctx context.Context, userID string) ([]domain.DepositRequest, error) {
	return r.collect(ctx, `SELECT `+depositColumns+` FROM deposit_requests WHERE user_id = $1 ORDER BY date DESC`, userID)
}

func (r *Repository) ListByStatus(ctx context.Context, status string) ([]domain.DepositRequest, error) {
	return r.collect(ctx, `SELECT `+depositColumns+` FROM deposit_requests WHERE status = $1 ORDER BY date DESC`, status)
}

func (r *Repository) FindByRequestID(ctx context.Context, requestID string) (*domain.DepositRequest, error) {
	query := `SELECT ` + depositColumns + ` FROM deposit_requests WHERE request_id = $1`
	req, err := scanDeposit(r.db.QueryRow(ctx, query, requestID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to find deposit request", zap.Error(err))
		return nil, err
	}
	return req, nil
}

func (r *Repository) UpdateStatus(ctx context.Context, requestID, status string) (*domain.DepositRequest, error) {
	var updated *domain.DepositRequest
	query := `UPDATE deposit_requests SET status = $1 WHERE request_id = $2 RETURNING ` + depositColumns
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		req, err := scanDeposit(r.db.QueryRow(ctx, query, status, requestID))
		if err != nil {
			zap.L().Error("failed to update deposit status", zap.Error(err))
			return err
		}
		updated = req
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// FindUncredited returns approved deposits the payout worker has not yet
// credited.
func (r *Repository) FindUncredited(ctx context.Context, limit uint32) ([]domain.DepositRequest, error) {
	query := `SELECT ` + depositColumns + ` FROM deposit_requests WHERE status = $1 AND credited = FALSE ORDER BY date LIMIT $2`
	return r.collect(ctx, query, domain.DepositApproved, limit)
}

func (r *Repository) MarkCredited(ctx context.Context, requestID string) error {
	query := `UPDATE deposit_requests SET credited = TRUE WHERE request_id = $1`
	if _, err := r.db.Exec(ctx, query, requestID); err != nil {
		zap.L().Error("failed to mark deposit credited", zap.Error(err))
		return err
	}
	return nil
}

package withdrawalrepo

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/teamvest/teamvest/internal/domain"
	"github.com/teamvest/teamvest/internal/pg"
	"go.uber.org/zap"
)

const withdrawalColumns = `id, request_id, user_id, amount, pay_inr, account_number, ifsc_code, fullname, company_id, txn_id, status, date`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanWithdrawal(row pgx.Row) (*domain.WithdrawalRequest, error) {
	var req domain.WithdrawalRequest
	err := row.Scan(
		&req.ID, &req.RequestID, &req.UserID, &req.Amount, &req.PayINR,
		&req.AccountNumber, &req.IFSCCode, &req.Fullname, &req.CompanyID,
		&req.TxnID, &req.Status, &req.Date,
	)
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *Repository) Create(ctx context.Context, req *domain.WithdrawalRequest) (*domain.WithdrawalRequest, error) {
	query := `
        INSERT INTO withdrawal_requests (request_id, user_id, amount, pay_inr, account_number, ifsc_code, fullname, company_id, txn_id, status, date)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
        RETURNING ` + withdrawalColumns + `
    `
	row := r.db.QueryRow(ctx, query,
		req.RequestID, req.UserID, req.Amount, req.PayINR, req.AccountNumber,
		req.IFSCCode, req.Fullname, req.CompanyID, req.TxnID, req.Status, req.Date,
	)
	created, err := scanWithdrawal(row)
	if err != nil {
		zap.L().Error("failed to create withdrawal request", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (r *Repository) collect(ctx context.Context, query string, args ...any) ([]domain.WithdrawalRequest, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("failed to query withdrawal requests", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var requests []domain.WithdrawalRequest
	for rows.Next() {
		req, err := scanWithdrawal(rows)
		if err != nil {
			zap.L().Error("failed to scan withdrawal request", zap.Error(err))
			return nil, err
		}
		requests = append(requests, *req)
	}
	return requests, rows.Err()
}

func (r *Repository) ListByUser(ctx context.Context, userID string) ([]domain.WithdrawalRequest, error) {
	return r.collect(ctx, `SELECT `+withdrawalColumns+` FROM withdrawal_requests WHERE user_id = $1 ORDER BY date DESC`, userID)
}

func (r *Repository) ListByStatus(ctx context.Context, status string) ([]domain.WithdrawalRequest, error) {
	if status == "" {
		return r.collect(ctx, `SELECT `+withdrawalColumns+` FROM withdrawal_requests ORDER BY date DESC`)
	}
	return r.collect(ctx, `SELECT `+withdrawalColumns+` FROM withdrawal_requests WHERE status = $1 ORDER BY date DESC`, status)
}

func (r *Repository) FindByRequestID(ctx context.Context, requestID string) (*domain.WithdrawalRequest, error) {
	query := `SELECT ` + withdrawalColumns + ` FROM withdrawal_requests WHERE request_id = $1`
	req, err := scanWithdrawal(r.db.QueryRow(ctx, query, requestID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to find withdrawal request", zap.Error(err))
		return nil, err
	}
	return req, nil
}

func (r *Repository) UpdateStatus(ctx context.Context, requestID, status string) (*domain.WithdrawalRequest, error) {
	query := `UPDATE withdrawal_requests SET status = $1 WHERE request_id = $2 RETURNING ` + withdrawalColumns
	req, err := scanWithdrawal(r.db.QueryRow(ctx, query, status, requestID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to update withdrawal status", zap.Error(err))
		return nil, err
	}
	return req, nil
}

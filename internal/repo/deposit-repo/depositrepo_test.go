package depositrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/teamvest/teamvest/internal/domain"
	"github.com/teamvest/teamvest/internal/pg"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	mockTxManager := pg.NewMockTXManager(ctrl)

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()
	defer ctrl.Finish()

	return repo, mockDB, mockTxManager
}

func depositRow(requestID, userID, status string, credited bool) *pgxmock.Rows {
	return pgxmock.NewRows([]string{"id", "request_id", "token", "user_id", "name", "currency", "amount", "txn_id", "receipt_url", "status", "credited", "date"}).
		AddRow(1, requestID, "token", userID, "Test User", "INR", 1000.0, "UTR123", "", status, credited, time.Unix(1700000000, 0))
}

func TestRepository_FindByRequestID(t *testing.T) {
	repo, mock, _ := NewMock(t)
	query := regexp.QuoteMeta(`SELECT ` + depositColumns + ` FROM deposit_requests WHERE request_id = $1`)

	t.Run("Existing request", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs("DEP-1").WillReturnRows(depositRow("DEP-1", "user-1", domain.DepositPending, false))
		req, err := repo.FindByRequestID(context.Background(), "DEP-1")
		assert.NoError(t, err)
		assert.Equal(t, "DEP-1", req.RequestID)
	})

	t.Run("Unknown request returns nil", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs("DEP-404").WillReturnError(pgx.ErrNoRows)
		req, err := repo.FindByRequestID(context.Background(), "DEP-404")
		assert.NoError(t, err)
		assert.Nil(t, req)
	})
}

func TestRepository_UpdateStatus(t *testing.T) {
	repo, mock, txManager := NewMock(t)
	query := regexp.QuoteMeta(`UPDATE deposit_requests SET status = $1 WHERE request_id = $2 RETURNING ` + depositColumns)

	t.Run("Runs inside a transaction", func(t *testing.T) {
		txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		})
		mock.ExpectQuery(query).WithArgs(domain.DepositApproved, "DEP-1").
			WillReturnRows(depositRow("DEP-1", "user-1", domain.DepositApproved, false))

		updated, err := repo.UpdateStatus(context.Background(), "DEP-1", domain.DepositApproved)
		assert.NoError(t, err)
		assert.Equal(t, domain.DepositApproved, updated.Status)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Transaction error", func(t *testing.T) {
		txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).Return(errors.New("tx error"))
		updated, err := repo.UpdateStatus(context.Background(), "DEP-1", domain.DepositApproved)
		assert.Error(t, err)
		assert.Nil(t, updated)
	})
}

func TestRepository_FindUncredited(t *testing.T) {
	repo, mock, _ := NewMock(t)
	query := regexp.QuoteMeta(`SELECT ` + depositColumns + ` FROM deposit_requests WHERE status = $1 AND credited = FALSE ORDER BY date LIMIT $2`)

	mock.ExpectQuery(query).WithArgs(domain.DepositApproved, uint32(10)).
		WillReturnRows(depositRow("DEP-1", "user-1", domain.DepositApproved, false))

	requests, err := repo.FindUncredited(context.Background(), 10)
	assert.NoError(t, err)
	assert.Len(t, requests, 1)
	assert.False(t, requests[0].Credited)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_MarkCredited(t *testing.T) {
	repo, mock, _ := NewMock(t)
	query := regexp.QuoteMeta(`UPDATE deposit_requests SET credited = TRUE WHERE request_id = $1`)

	t.Run("Marks the deposit", func(t *testing.T) {
		mock.ExpectExec(query).WithArgs("DEP-1").WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		err := repo.MarkCredited(context.Background(), "DEP-1")
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectExec(query).WithArgs("DEP-1").WillReturnError(errors.New("database error"))
		err := repo.MarkCredited(context.Background(), "DEP-1")
		assert.Error(t, err)
	})
}

func TestRepository_ListByUser(t *testing.T) {
	repo, mock, _ := NewMock(t)
	query := regexp.QuoteMeta(`SELECT ` + depositColumns + ` FROM deposit_requests WHERE user_id = $1 ORDER BY date DESC`)

	mock.ExpectQuery(query).WithArgs("user-1").WillReturnRows(depositRow("DEP-1", "user-1", domain.DepositPending, false))
	requests, err := repo.ListByUser(context.Background(), "user-1")
	assert.NoError(t, err)
	assert.Len(t, requests, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

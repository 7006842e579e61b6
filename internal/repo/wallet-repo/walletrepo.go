package walletrepo

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/teamvest/teamvest/internal/domain"
	"github.com/teamvest/teamvest/internal/pg"
	"go.uber.org/zap"
)

const walletColumns = `id, user_id, main_wallet, total_bonus, direct_bonus, level_bonus, last_updated`

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

func scanWallet(row pgx.Row) (*domain.Wallet, error) {
	var wallet domain.Wallet
	err := row.Scan(
		&wallet.ID, &wallet.UserID, &wallet.MainWallet, &wallet.TotalBonus,
		&wallet.DirectBonus, &wallet.LevelBonus, &wallet.LastUpdated,
	)
	if err != nil {
		return nil, err
	}
	return &wallet, nil
}

func (r *Repository) GetByUserID(ctx context.Context, userID string) (*domain.Wallet, error) {
	query := `SELECT ` + walletColumns + ` FROM wallets WHERE user_id = $1`
	wallet, err := scanWallet(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to get wallet", zap.Error(err))
		return nil, err
	}
	return wallet, nil
}

func (r *Repository) Create(ctx context.Context, wallet *domain.Wallet) (*domain.Wallet, error) {
	query := `
        INSERT INTO wallets (user_id, main_wallet, total_bonus, direct_bonus, level_bonus, last_updated)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING ` + walletColumns + `
    `
	row := r.db.QueryRow(ctx, query,
		wallet.UserID, wallet.MainWallet, wallet.TotalBonus,
		wallet.DirectBonus, wallet.LevelBonus, wallet.LastUpdated,
	)
	created, err := scanWallet(row)
	if err != nil {
		zap.L().Error("failed to create wallet", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (r *Repository) Update(ctx context.Context, wallet *domain.Wallet) (*domain.Wallet, error) {
	var updated *domain.Wallet
	query := `
		UPDATE wallets
		SET main_wallet = $1, total_bonus = $2, direct_bonus = $3, level_bonus = $4, last_updated = $5
		WHERE user_id = $6
		RETURNING ` + walletColumns + `
	`
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		row := r.db.QueryRow(ctx, query,
			wallet.MainWallet, wallet.TotalBonus, wallet.DirectBonus,
			wallet.LevelBonus, wallet.LastUpdated, wallet.UserID,
		)
		w, err := scanWallet(row)
		if err != nil {
			zap.L().Error("failed to update wallet", zap.Error(err))
			return err
		}
		updated = w
		return nil
	})

	if err != nil {
		return nil, err
	}
	return updated, nil
}

package userrepo

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/teamvest/teamvest/internal/domain"
	"github.com/teamvest/teamvest/internal/pg"
	"go.uber.org/zap"
)

const userColumns = `id, name, email, mobile, password_hash, sponsor_id, sponsor_name, country,
               bank_name, account_number, ifsc_code, usdt_address, package, status, is_admin, created_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(
		&user.ID, &user.Name, &user.Email, &user.Mobile, &user.PasswordHash,
		&user.SponsorID, &user.SponsorName, &user.Country, &user.BankName,
		&user.AccountNumber, &user.IFSCCode, &user.USDTAddress, &user.Package,
		&user.Status, &user.IsAdmin, &user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	user.Normalize()
	return &user, nil
}

func (r *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
        INSERT INTO users (id, name, email, mobile, password_hash, sponsor_id, sponsor_name, country,
                           bank_name, account_number, ifsc_code, usdt_address, package, status, is_admin)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
        RETURNING ` + userColumns + `
    `
	row := r.db.QueryRow(ctx, query,
		user.ID, user.Name, user.Email, user.Mobile, user.PasswordHash,
		user.SponsorID, user.SponsorName, user.Country, user.BankName,
		user.AccountNumber, user.IFSCCode, user.USDTAddress, user.Package,
		user.Status, user.IsAdmin,
	)
	created, err := scanUser(row)
	if err != nil {
		zap.L().Error("failed to create user", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (r *Repository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	user, err := scanUser(r.db.QueryRow(ctx, query, email))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to find user by email", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (r *Repository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	user, err := scanUser(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to find user by id", zap.Error(err))
		return nil, err
	}
	return user, nil
}

// FindByIdentifier looks a user up by email or id, matching the login form.
func (r *Repository) FindByIdentifier(ctx context.Context, identifier string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1 OR id = $1`
	user, err := scanUser(r.db.QueryRow(ctx, query, identifier))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to find user by identifier", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (r *Repository) ListAll(ctx context.Context) ([]domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("failed to list users", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			zap.L().Error("failed to scan user", zap.Error(err))
			return nil, err
		}
		users = append(users, *user)
	}
	return users, rows.Err()
}

func (r *Repository) UpdateStatus(ctx context.Context, id, status string) (*domain.User, error) {
	query := `UPDATE users SET status = $1 WHERE id = $2 RETURNING ` + userColumns
	user, err := scanUser(r.db.QueryRow(ctx, query, status, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to update user status", zap.Error(err))
		return nil, err
	}
	return user, nil
}

package ticketrepo

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/teamvest/teamvest/internal/domain"
	"github.com/teamvest/teamvest/internal/pg"
	"go.uber.org/zap"
)

const ticketColumns = `id, ticket_id, user_id, name, query, subject, description, reply, status, date`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanTicket(row pgx.Row) (*domain.SupportTicket, error) {
	var ticket domain.SupportTicket
	err := row.Scan(
		&ticket.ID, &ticket.TicketID, &ticket.UserID, &ticket.Name,
		&ticket.Query, &ticket.Subject, &ticket.Description, &ticket.Reply,
		&ticket.Status, &ticket.Date,
	)
	if err != nil {
		return nil, err
	}
	return &ticket, nil
}

func (r *Repository) Create(ctx context.Context, ticket *domain.SupportTicket) (*domain.SupportTicket, error) {
	query := `
        INSERT INTO support_tickets (ticket_id, user_id, name, query, subject, description, reply, status, date)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        RETURNING ` + ticketColumns + `
    `
	row := r.db.QueryRow(ctx, query,
		ticket.TicketID, ticket.UserID, ticket.Name, ticket.Query,
		ticket.Subject, ticket.Description, ticket.Reply, ticket.Status, ticket.Date,
	)
	created, err := scanTicket(row)
	if err != nil {
		zap.L().Error("failed to create support ticket", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (r *Repository) collect(ctx context.Context, query string, args ...any) ([]domain.SupportTicket, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("failed to query support tickets", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var tickets []domain.SupportTicket
	for rows.Next() {
		ticket, err := scanTicket(rows)
		if err != nil {
			zap.L().Error("failed to scan support ticket", zap.Error(err))
			return nil, err
		}
		tickets = append(tickets, *ticket)
	}
	return tickets, rows.Err()
}

func (r *Repository) ListByUser(ctx context.Context, userID string) ([]domain.SupportTicket, error) {
	return r.collect(ctx, `SELECT `+ticketColumns+` FROM support_tickets WHERE user_id = $1 ORDER BY date DESC`, userID)
}

func (r *Repository) ListAll(ctx context.Context) ([]domain.SupportTicket, error) {
	return r.collect(ctx, `SELECT `+ticketColumns+` FROM support_tickets ORDER BY date DESC`)
}

func (r *Repository) UpdateReply(ctx context.Context, ticketID, reply, status string) (*domain.SupportTicket, error) {
	query := `UPDATE support_tickets SET reply = $1, status = $2 WHERE ticket_id = $3 RETURNING ` + ticketColumns
	ticket, err := scanTicket(r.db.QueryRow(ctx, query, reply, status, ticketID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to update support ticket", zap.Error(err))
		return nil, err
	}
	return ticket, nil
}

package supportservice

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/teamvest/teamvest/internal/domain"
	"go.uber.org/zap"
)

type Repo interface {
	Create(ctx context.Context, ticket *domain.SupportTicket) (*domain.SupportTicket, error)
	ListByUser(ctx context.Context, userID string) ([]domain.SupportTicket, error)
	ListAll(ctx context.Context) ([]domain.SupportTicket, error)
	UpdateReply(ctx context.Context, ticketID, reply, status string) (*domain.SupportTicket, error)
}

var (
	ErrNotFound      = errors.New("support ticket not found")
	ErrInvalidStatus = errors.New("invalid ticket status")
)

type Service struct {
	ticketRepo Repo
}

func New(ticketRepo Repo) *Service {
	return &Service{
		ticketRepo: ticketRepo,
	}
}

func (s *Service) CreateTicket(ctx context.Context, userID, name, query, subject, description string) (*domain.SupportTicket, error) {
	ticket := &domain.SupportTicket{
		TicketID:    generateTicketID(),
		UserID:      userID,
		Name:        name,
		Query:       query,
		Subject:     subject,
		Description: description,
		Status:      domain.TicketPending,
		Date:        time.Now(),
	}
	created, err := s.ticketRepo.Create(ctx, ticket)
	if err != nil {
		zap.L().Error("failed to create support ticket", zap.Error(err))
		return nil, err
	}

	zap.L().Info("support ticket created", zap.String("ticketId", created.TicketID))
	return created, nil
}

func (s *Service) GetTickets(ctx context.Context, userID string) ([]domain.SupportTicket, error) {
	tickets, err := s.ticketRepo.ListByUser(ctx, userID)
	if err != nil {
		zap.L().Error("failed to fetch support tickets", zap.Error(err))
		return nil, err
	}
	return tickets, nil
}

func (s *Service) GetAllTickets(ctx context.Context) ([]domain.SupportTicket, error) {
	tickets, err := s.ticketRepo.ListAll(ctx)
	if err != nil {
		zap.L().Error("failed to fetch support tickets", zap.Error(err))
		return nil, err
	}
	return tickets, nil
}

// Reply stores the admin reply. An empty reply only transitions the status.
func (s *Service) Reply(ctx context.Context, ticketID, reply, status string) (*domain.SupportTicket, error) {
	switch status {
	case domain.TicketPending, domain.TicketReplied, domain.TicketResolved:
	default:
		return nil, ErrInvalidStatus
	}

	updated, err := s.ticketRepo.UpdateReply(ctx, ticketID, reply, status)
	if err != nil {
		zap.L().Error("failed to update support ticket", zap.Error(err))
		return nil, err
	}
	if updated == nil {
		return nil, ErrNotFound
	}
	return updated, nil
}

func generateTicketID() string {
	n, _ := rand.Int(rand.Reader, big.NewInt(10000))
	return fmt.Sprintf("TKT-%d-%04d", time.Now().UnixMilli(), n)
}

package supportservice

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/teamvest/teamvest/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	service := New(repo)
	defer ctrl.Finish()
	return service, repo
}

func TestCreateTicket(t *testing.T) {
	service, repo := NewMock(t)

	t.Run("Creates a pending ticket", func(t *testing.T) {
		repo.EXPECT().Create(context.Background(), gomock.Any()).DoAndReturn(func(ctx context.Context, ticket *domain.SupportTicket) (*domain.SupportTicket, error) {
			return ticket, nil
		})
		ticket, err := service.CreateTicket(context.Background(), "user-1", "Test User", "payments", "Deposit missing", "My deposit is not credited yet")
		assert.NoError(t, err)
		assert.True(t, strings.HasPrefix(ticket.TicketID, "TKT-"))
		assert.Equal(t, domain.TicketPending, ticket.Status)
		assert.Equal(t, "Deposit missing", ticket.Subject)
	})

	t.Run("Repository error", func(t *testing.T) {
		repo.EXPECT().Create(context.Background(), gomock.Any()).Return(nil, errors.New("database error"))
		ticket, err := service.CreateTicket(context.Background(), "user-1", "", "", "Subject", "Description")
		assert.Error(t, err)
		assert.Nil(t, ticket)
	})
}

func TestReply(t *testing.T) {
	service, repo := NewMock(t)

	t.Run("Stores the reply", func(t *testing.T) {
		repo.EXPECT().UpdateReply(context.Background(), "TKT-1", "We are on it", domain.TicketReplied).
			Return(&domain.SupportTicket{TicketID: "TKT-1", Reply: "We are on it", Status: domain.TicketReplied}, nil)
		ticket, err := service.Reply(context.Background(), "TKT-1", "We are on it", domain.TicketReplied)
		assert.NoError(t, err)
		assert.Equal(t, domain.TicketReplied, ticket.Status)
	})

	t.Run("Unknown status", func(t *testing.T) {
		ticket, err := service.Reply(context.Background(), "TKT-1", "reply", "closed")
		assert.ErrorIs(t, err, ErrInvalidStatus)
		assert.Nil(t, ticket)
	})

	t.Run("Unknown ticket", func(t *testing.T) {
		repo.EXPECT().UpdateReply(context.Background(), "TKT-404", "reply", domain.TicketResolved).Return(nil, nil)
		ticket, err := service.Reply(context.Background(), "TKT-404", "reply", domain.TicketResolved)
		assert.ErrorIs(t, err, ErrNotFound)
		assert.Nil(t, ticket)
	})
}

func TestGetTickets(t *testing.T) {
	service, repo := NewMock(t)

	repo.EXPECT().ListByUser(context.Background(), "user-1").Return([]domain.SupportTicket{{TicketID: "TKT-1"}}, nil)
	tickets, err := service.GetTickets(context.Background(), "user-1")
	assert.NoError(t, err)
	assert.Len(t, tickets, 1)

	repo.EXPECT().ListAll(context.Background()).Return([]domain.SupportTicket{{TicketID: "TKT-1"}, {TicketID: "TKT-2"}}, nil)
	tickets, err = service.GetAllTickets(context.Background())
	assert.NoError(t, err)
	assert.Len(t, tickets, 2)
}

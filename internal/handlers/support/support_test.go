package support

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/teamvest/teamvest/internal/domain"
	"github.com/teamvest/teamvest/internal/dto"
	"github.com/teamvest/teamvest/pkg/auth"
	"github.com/teamvest/teamvest/pkg/utils"
)

func NewMock(t *testing.T) (*SupportHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func TestCreateTicketHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		userID        string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name:   "Successful ticket creation",
			userID: "user-1",
			body:   `{"name":"Test User","subject":"Deposit missing","description":"My deposit is not credited"}`,
			prepareMock: func() {
				service.EXPECT().CreateTicket(gomock.Any(), "user-1", "Test User", "", "Deposit missing", "My deposit is not credited").
					Return(&domain.SupportTicket{
						TicketID:    "TKT-1",
						Subject:     "Deposit missing",
						Description: "My deposit is not credited",
						Status:      domain.TicketPending,
						Date:        time.Now(),
					}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "Missing user in context",
			userID:        "",
			body:          `{}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusUnauthorized,
			expectedError: "Unauthorized",
		},
		{
			name:          "Invalid request body",
			userID:        "user-1",
			body:          `{invalid json`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name:          "Missing subject",
			userID:        "user-1",
			body:          `{"description":"My deposit is not credited"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Subject and description are required",
		},
		{
			name:   "Service error",
			userID: "user-1",
			body:   `{"subject":"Deposit missing","description":"My deposit is not credited"}`,
			prepareMock: func() {
				service.EXPECT().CreateTicket(gomock.Any(), "user-1", "", "", "Deposit missing", "My deposit is not credited").
					Return(nil, errors.New("database error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Failed to create ticket",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("POST", "/api/user/support", bytes.NewReader([]byte(tt.body)))
			if tt.userID != "" {
				req = req.WithContext(context.WithValue(req.Context(), auth.UserIDKey, tt.userID))
			}
			rr := httptest.NewRecorder()

			handler.CreateTicket(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Message)
			} else {
				var resp dto.TicketResponseDTO
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, "TKT-1", resp.TicketID)
				assert.Equal(t, domain.TicketPending, resp.Status)
			}
		})
	}
}

func TestGetTicketsHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Returns the user's tickets", func(t *testing.T) {
		service.EXPECT().GetTickets(gomock.Any(), "user-1").Return([]domain.SupportTicket{
			{TicketID: "TKT-1", Subject: "Deposit missing", Status: domain.TicketReplied, Reply: "Resolved"},
		}, nil)

		req := httptest.NewRequest("GET", "/api/user/support", nil)
		req = req.WithContext(context.WithValue(req.Context(), auth.UserIDKey, "user-1"))
		rr := httptest.NewRecorder()

		handler.GetTickets(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp []dto.TicketResponseDTO
		err := json.NewDecoder(rr.Body).Decode(&resp)
		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Equal(t, "Resolved", resp[0].Reply)
	})

	t.Run("Service error", func(t *testing.T) {
		service.EXPECT().GetTickets(gomock.Any(), "user-1").Return(nil, errors.New("database error"))

		req := httptest.NewRequest("GET", "/api/user/support", nil)
		req = req.WithContext(context.WithValue(req.Context(), auth.UserIDKey, "user-1"))
		rr := httptest.NewRecorder()

		handler.GetTickets(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

package admin

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/teamvest/teamvest/internal/domain"
	"github.com/teamvest/teamvest/internal/dto"
	"github.com/teamvest/teamvest/internal/service/adminservice"
	"github.com/teamvest/teamvest/internal/service/supportservice"
	"github.com/teamvest/teamvest/internal/service/withdrawalservice"
	"github.com/teamvest/teamvest/pkg/utils"
)

func NewMock(t *testing.T) (*AdminHandler, *MockService, *MockWithdrawalService, *MockSupportService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	withdrawalService := NewMockWithdrawalService(ctrl)
	supportService := NewMockSupportService(ctrl)
	handler := New(service, withdrawalService, supportService)
	defer ctrl.Finish()
	return handler, service, withdrawalService, supportService
}

func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestListUsersHandler(t *testing.T) {
	handler, service, _, _ := NewMock(t)

	t.Run("Lists users with record defaults applied", func(t *testing.T) {
		service.EXPECT().ListUsers(gomock.Any()).Return([]domain.User{
			{ID: "user-1", Email: "a@example.com", CreatedAt: time.Now()},
			{ID: "user-2", Name: "Named", Email: "b@example.com", Status: domain.UserStatusInactive, CreatedAt: time.Now()},
		}, nil)

		req := httptest.NewRequest("GET", "/api/admin/users", nil)
		rr := httptest.NewRecorder()

		handler.ListUsers(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp []dto.AdminUserDTO
		err := json.NewDecoder(rr.Body).Decode(&resp)
		assert.NoError(t, err)
		assert.Len(t, resp, 2)
		assert.Equal(t, domain.DefaultUserName, resp[0].Name)
		assert.Equal(t, domain.UserStatusActive, resp[0].Status)
		assert.Equal(t, domain.UserStatusInactive, resp[1].Status)
	})

	t.Run("Service error", func(t *testing.T) {
		service.EXPECT().ListUsers(gomock.Any()).Return(nil, errors.New("database error"))

		req := httptest.NewRequest("GET", "/api/admin/users", nil)
		rr := httptest.NewRecorder()

		handler.ListUsers(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestUpdateUserStatusHandler(t *testing.T) {
	handler, service, _, _ := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Deactivates the user",
			body: `{"status":"Inactive"}`,
			prepareMock: func() {
				service.EXPECT().UpdateUserStatus(gomock.Any(), "user-1", "Inactive").
					Return(&domain.User{ID: "user-1", Name: "Test User", Status: domain.UserStatusInactive}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "Invalid request body",
			body:          `{invalid json`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name: "Unsupported status",
			body: `{"status":"Banned"}`,
			prepareMock: func() {
				service.EXPECT().UpdateUserStatus(gomock.Any(), "user-1", "Banned").
					Return(nil, adminservice.ErrInvalidStatus)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: adminservice.ErrInvalidStatus.Error(),
		},
		{
			name: "Unknown user",
			body: `{"status":"Inactive"}`,
			prepareMock: func() {
				service.EXPECT().UpdateUserStatus(gomock.Any(), "user-1", "Inactive").
					Return(nil, adminservice.ErrUserNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: adminservice.ErrUserNotFound.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("PATCH", "/api/admin/users/user-1/status", bytes.NewReader([]byte(tt.body)))
			req = withURLParam(req, "id", "user-1")
			rr := httptest.NewRecorder()

			handler.UpdateUserStatus(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Message)
			} else {
				var resp dto.AdminUserDTO
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, domain.UserStatusInactive, resp.Status)
			}
		})
	}
}

func TestReviewDepositHandler(t *testing.T) {
	handler, service, _, _ := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Approves the deposit",
			body: `{"status":"Approved"}`,
			prepareMock: func() {
				service.EXPECT().ReviewDeposit(gomock.Any(), "DEP-1", "Approved").
					Return(&domain.DepositRequest{RequestID: "DEP-1", UserID: "user-1", Status: domain.DepositApproved}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Unsupported status",
			body: `{"status":"Pending"}`,
			prepareMock: func() {
				service.EXPECT().ReviewDeposit(gomock.Any(), "DEP-1", "Pending").
					Return(nil, adminservice.ErrInvalidStatus)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: adminservice.ErrInvalidStatus.Error(),
		},
		{
			name: "Unknown request",
			body: `{"status":"Approved"}`,
			prepareMock: func() {
				service.EXPECT().ReviewDeposit(gomock.Any(), "DEP-1", "Approved").
					Return(nil, adminservice.ErrDepositNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: adminservice.ErrDepositNotFound.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("PATCH", "/api/admin/deposits/DEP-1/status", bytes.NewReader([]byte(tt.body)))
			req = withURLParam(req, "requestID", "DEP-1")
			rr := httptest.NewRecorder()

			handler.ReviewDeposit(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Message)
			} else {
				var resp dto.AdminDepositDTO
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, domain.DepositApproved, resp.Status)
			}
		})
	}
}

func TestReviewWithdrawalHandler(t *testing.T) {
	handler, _, withdrawalService, _ := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Completes the withdrawal",
			body: `{"status":"Completed"}`,
			prepareMock: func() {
				withdrawalService.EXPECT().Review(gomock.Any(), "WTH-1", "Completed").
					Return(&domain.WithdrawalRequest{RequestID: "WTH-1", UserID: "user-1", Status: domain.WithdrawalCompleted}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Unsupported status",
			body: `{"status":"Rejected"}`,
			prepareMock: func() {
				withdrawalService.EXPECT().Review(gomock.Any(), "WTH-1", "Rejected").
					Return(nil, withdrawalservice.ErrInvalidStatus)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: withdrawalservice.ErrInvalidStatus.Error(),
		},
		{
			name: "Unknown request",
			body: `{"status":"Completed"}`,
			prepareMock: func() {
				withdrawalService.EXPECT().Review(gomock.Any(), "WTH-1", "Completed").
					Return(nil, withdrawalservice.ErrNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: withdrawalservice.ErrNotFound.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("PATCH", "/api/admin/withdrawals/WTH-1/status", bytes.NewReader([]byte(tt.body)))
			req = withURLParam(req, "requestID", "WTH-1")
			rr := httptest.NewRecorder()

			handler.ReviewWithdrawal(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Message)
			} else {
				var resp dto.AdminWithdrawalDTO
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, domain.WithdrawalCompleted, resp.Status)
			}
		})
	}
}

func TestReplyTicketHandler(t *testing.T) {
	handler, _, _, supportService := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Defaults the status to replied",
			body: `{"reply":"Resolved, please check"}`,
			prepareMock: func() {
				supportService.EXPECT().Reply(gomock.Any(), "TKT-1", "Resolved, please check", domain.TicketReplied).
					Return(&domain.SupportTicket{TicketID: "TKT-1", Reply: "Resolved, please check", Status: domain.TicketReplied}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "Empty reply is rejected",
			body:          `{"reply":""}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name: "Unsupported status",
			body: `{"reply":"Resolved","status":"archived"}`,
			prepareMock: func() {
				supportService.EXPECT().Reply(gomock.Any(), "TKT-1", "Resolved", "archived").
					Return(nil, supportservice.ErrInvalidStatus)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: supportservice.ErrInvalidStatus.Error(),
		},
		{
			name: "Unknown ticket",
			body: `{"reply":"Resolved"}`,
			prepareMock: func() {
				supportService.EXPECT().Reply(gomock.Any(), "TKT-1", "Resolved", domain.TicketReplied).
					Return(nil, supportservice.ErrNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: supportservice.ErrNotFound.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("POST", "/api/admin/tickets/TKT-1/reply", bytes.NewReader([]byte(tt.body)))
			req = withURLParam(req, "ticketID", "TKT-1")
			rr := httptest.NewRecorder()

			handler.ReplyTicket(rr, req)

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
				assert.Equal(t, domain.TicketReplied, resp.Status)
			}
		})
	}
}

func TestListDepositsHandler(t *testing.T) {
	handler, service, _, _ := NewMock(t)

	t.Run("Passes the status filter through", func(t *testing.T) {
		service.EXPECT().ListDeposits(gomock.Any(), "Pending").Return([]domain.DepositRequest{
			{RequestID: "DEP-1", UserID: "user-1", Status: domain.DepositPending},
		}, nil)

		req := httptest.NewRequest("GET", "/api/admin/deposits?status=Pending", nil)
		rr := httptest.NewRecorder()

		handler.ListDeposits(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp []dto.AdminDepositDTO
		err := json.NewDecoder(rr.Body).Decode(&resp)
		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Equal(t, "DEP-1", resp[0].RequestID)
	})

	t.Run("Service error", func(t *testing.T) {
		service.EXPECT().ListDeposits(gomock.Any(), "").Return(nil, errors.New("database error"))

		req := httptest.NewRequest("GET", "/api/admin/deposits", nil)
		rr := httptest.NewRecorder()

		handler.ListDeposits(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestDashboardHandler(t *testing.T) {
	handler, service, _, _ := NewMock(t)

	t.Run("Returns the summary counters", func(t *testing.T) {
		service.EXPECT().Dashboard(gomock.Any()).Return(&adminservice.DashboardStats{
			TotalUsers:         3,
			ActiveUsers:        2,
			PendingDeposits:    1,
			ApprovedVolume:     800,
			PendingWithdrawals: 1,
		}, nil)

		req := httptest.NewRequest("GET", "/api/admin/dashboard", nil)
		rr := httptest.NewRecorder()

		handler.Dashboard(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp dto.DashboardResponseDTO
		err := json.NewDecoder(rr.Body).Decode(&resp)
		assert.NoError(t, err)
		assert.Equal(t, 3, resp.TotalUsers)
		assert.Equal(t, 800.0, resp.ApprovedVolume)
	})

	t.Run("Service error", func(t *testing.T) {
		service.EXPECT().Dashboard(gomock.Any()).Return(nil, errors.New("database error"))

		req := httptest.NewRequest("GET", "/api/admin/dashboard", nil)
		rr := httptest.NewRecorder()

		handler.Dashboard(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

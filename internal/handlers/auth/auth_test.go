package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/teamvest/teamvest/internal/domain"
	"github.com/teamvest/teamvest/internal/dto"
	"github.com/teamvest/teamvest/internal/service/authservice"
	pkgauth "github.com/teamvest/teamvest/pkg/auth"
	"github.com/teamvest/teamvest/pkg/utils"
)

func NewMock(t *testing.T) (*AuthHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func TestRegisterHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful registration",
			body: `{"name":"New User","email":"new@example.com","mobile":"9876543210","password":"password123"}`,
			prepareMock: func() {
				service.EXPECT().Register(context.Background(), authservice.RegisterInput{
					Name:     "New User",
					Email:    "new@example.com",
					Mobile:   "9876543210",
					Password: "password123",
				}).Return(&domain.User{ID: "user-1", Email: "new@example.com"}, nil)
				service.EXPECT().GenerateToken("user-1", false).Return("some-jwt-token", nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Email already registered",
			body: `{"name":"New User","email":"taken@example.com","password":"password123"}`,
			prepareMock: func() {
				service.EXPECT().Register(context.Background(), gomock.Any()).
					Return(nil, errors.New("email is already registered"))
			},
			expectedCode:  http.StatusConflict,
			expectedError: "email is already registered",
		},
		{
			name:          "Invalid request body",
			body:          `{invalid json`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name: "Error generating token",
			body: `{"name":"New User","email":"new@example.com","password":"password123"}`,
			prepareMock: func() {
				service.EXPECT().Register(context.Background(), gomock.Any()).
					Return(&domain.User{ID: "user-1", Email: "new@example.com"}, nil)
				service.EXPECT().GenerateToken("user-1", false).
					Return("", errors.New("token generation error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Error generating token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("POST", "/api/user/register", bytes.NewReader([]byte(tt.body)))
			rr := httptest.NewRecorder()

			handler.Register(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Message)
			} else {
				assert.Equal(t, "Bearer some-jwt-token", rr.Header().Get("Authorization"))
				var resp dto.RegisterResponseDTO
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, "user-1", resp.UserID)
				assert.Equal(t, "some-jwt-token", resp.Token)
			}
		})
	}
}

func TestLoginHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful login",
			body: `{"identifier":"test@example.com","password":"password123"}`,
			prepareMock: func() {
				service.EXPECT().
					Authenticate(context.Background(), "test@example.com", "password123").
					Return(&domain.User{ID: "user-1", Email: "test@example.com", IsAdmin: true}, nil)
				service.EXPECT().GenerateToken("user-1", true).Return("some-jwt-token", nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Invalid credentials",
			body: `{"identifier":"test@example.com","password":"wrongpassword"}`,
			prepareMock: func() {
				service.EXPECT().
					Authenticate(context.Background(), "test@example.com", "wrongpassword").
					Return(nil, errors.New("invalid credentials"))
			},
			expectedCode:  http.StatusUnauthorized,
			expectedError: "Invalid credentials",
		},
		{
			name:          "Invalid request body",
			body:          `{invalid json`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name: "Error generating token",
			body: `{"identifier":"test@example.com","password":"password123"}`,
			prepareMock: func() {
				service.EXPECT().
					Authenticate(context.Background(), "test@example.com", "password123").
					Return(&domain.User{ID: "user-1", Email: "test@example.com"}, nil)
				service.EXPECT().GenerateToken("user-1", false).
					Return("", errors.New("token generation error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Error generating token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("POST", "/api/user/login", bytes.NewReader([]byte(tt.body)))
			rr := httptest.NewRecorder()

			handler.Login(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Message)
			} else {
				var resp dto.LoginResponseDTO
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.True(t, resp.IsAdmin)
				assert.Equal(t, "some-jwt-token", resp.Token)
			}
		})
	}
}

func TestProfileHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		userID        string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name:   "Successful profile lookup",
			userID: "user-1",
			prepareMock: func() {
				service.EXPECT().GetByID(gomock.Any(), "user-1").Return(&domain.User{
					ID:        "user-1",
					Name:      "Test User",
					Email:     "test@example.com",
					SponsorID: "sponsor-long-id",
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "Missing user in context",
			userID:        "",
			prepareMock:   func() {},
			expectedCode:  http.StatusUnauthorized,
			expectedError: "Unauthorized",
		},
		{
			name:   "Lookup error",
			userID: "user-1",
			prepareMock: func() {
				service.EXPECT().GetByID(gomock.Any(), "user-1").Return(nil, errors.New("database error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Failed to load profile",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("GET", "/api/user/profile", nil)
			if tt.userID != "" {
				req = req.WithContext(context.WithValue(req.Context(), pkgauth.UserIDKey, tt.userID))
			}
			rr := httptest.NewRecorder()

			handler.Profile(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Message)
			} else {
				var resp dto.ProfileResponseDTO
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, "user-1", resp.UserID)
				assert.Equal(t, domain.ShortID("sponsor-long-id"), resp.SponsorID)
				assert.Equal(t, domain.UserStatusActive, resp.Status)
			}
		})
	}
}

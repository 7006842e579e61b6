package authservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/teamvest/teamvest/internal/domain"
	"github.com/teamvest/teamvest/pkg/auth"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *MockWalletService, *auth.MockHashServiceInterface, *auth.MockJWTServiceInterface) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	walletService := NewMockWalletService(ctrl)
	hashService := auth.NewMockHashServiceInterface(ctrl)
	jwtService := auth.NewMockJWTServiceInterface(ctrl)

	service := New(repo, walletService, hashService, jwtService)
	defer ctrl.Finish()
	return service, repo, walletService, hashService, jwtService
}

func TestRegister(t *testing.T) {
	service, userRepo, walletService, passwordHasher, _ := NewMock(t)

	input := RegisterInput{
		Name:      "Test User",
		Email:     "test@example.com",
		Mobile:    "9876543210",
		Password:  "testpassword",
		SponsorID: "sponsor-1",
		Country:   "India",
	}

	tests := []struct {
		name          string
		in            RegisterInput
		prepareMock   func()
		wantUser      bool
		expectedError error
	}{
		{
			name: "Successful registration",
			in:   input,
			prepareMock: func() {
				userRepo.EXPECT().FindByEmail(context.Background(), "test@example.com").Return(nil, nil)
				passwordHasher.EXPECT().HashPassword("testpassword").Return("hashedpassword", nil)
				userRepo.EXPECT().Create(context.Background(), gomock.Any()).DoAndReturn(func(ctx context.Context, user *domain.User) (*domain.User, error) {
					return user, nil
				})
				walletService.EXPECT().CreateWallet(context.Background(), gomock.Any()).Return(&domain.Wallet{}, nil)
			},
			wantUser:      true,
			expectedError: nil,
		},
		{
			name: "Email already registered",
			in:   input,
			prepareMock: func() {
				userRepo.EXPECT().FindByEmail(context.Background(), "test@example.com").Return(&domain.User{Email: "test@example.com"}, nil)
			},
			expectedError: ErrEmailTaken,
		},
		{
			name: "Error finding user",
			in:   input,
			prepareMock: func() {
				userRepo.EXPECT().FindByEmail(context.Background(), "test@example.com").Return(nil, errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
		{
			name: "Error hashing password",
			in:   input,
			prepareMock: func() {
				userRepo.EXPECT().FindByEmail(context.Background(), "test@example.com").Return(nil, nil)
				passwordHasher.EXPECT().HashPassword("testpassword").Return("", errors.New("hashing error"))
			},
			expectedError: errors.New("hashing error"),
		},
		{
			name: "Error creating user",
			in:   input,
			prepareMock: func() {
				userRepo.EXPECT().FindByEmail(context.Background(), "test@example.com").Return(nil, nil)
				passwordHasher.EXPECT().HashPassword("testpassword").Return("hashedpassword", nil)
				userRepo.EXPECT().Create(context.Background(), gomock.Any()).Return(nil, errors.New("creation failed"))
			},
			expectedError: errors.New("creation failed"),
		},
		{
			name: "Error creating wallet",
			in:   input,
			prepareMock: func() {
				userRepo.EXPECT().FindByEmail(context.Background(), "test@example.com").Return(nil, nil)
				passwordHasher.EXPECT().HashPassword("testpassword").Return("hashedpassword", nil)
				userRepo.EXPECT().Create(context.Background(), gomock.Any()).DoAndReturn(func(ctx context.Context, user *domain.User) (*domain.User, error) {
					return user, nil
				})
				walletService.EXPECT().CreateWallet(context.Background(), gomock.Any()).Return(nil, errors.New("wallet creation failed"))
			},
			expectedError: errors.New("wallet creation failed"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			user, err := service.Register(context.Background(), tt.in)
			if tt.expectedError != nil {
				assert.Nil(t, user)
				assert.EqualError(t, err, tt.expectedError.Error())
				return
			}
			assert.NoError(t, err)
			assert.NotEmpty(t, user.ID)
			assert.Equal(t, "test@example.com", user.Email)
			assert.Equal(t, "hashedpassword", user.PasswordHash)
			assert.Equal(t, domain.DefaultPackage, user.Package)
			assert.Equal(t, domain.UserStatusActive, user.Status)
		})
	}
}

func TestAuthenticate(t *testing.T) {
	service, userRepo, _, passwordHasher, _ := NewMock(t)

	tests := []struct {
		name          string
		identifier    string
		password      string
		prepareMock   func()
		expectedError error
	}{
		{
			name:       "Authenticate by email",
			identifier: "test@example.com",
			password:   "testpassword",
			prepareMock: func() {
				userRepo.EXPECT().FindByIdentifier(context.Background(), "test@example.com").Return(&domain.User{ID: "user-1", PasswordHash: "hashed"}, nil)
				passwordHasher.EXPECT().ComparePassword("hashed", "testpassword").Return(true)
			},
		},
		{
			name:       "Authenticate by user id",
			identifier: "user-1",
			password:   "testpassword",
			prepareMock: func() {
				userRepo.EXPECT().FindByIdentifier(context.Background(), "user-1").Return(&domain.User{ID: "user-1", PasswordHash: "hashed"}, nil)
				passwordHasher.EXPECT().ComparePassword("hashed", "testpassword").Return(true)
			},
		},
		{
			name:       "Unknown identifier",
			identifier: "nobody@example.com",
			password:   "testpassword",
			prepareMock: func() {
				userRepo.EXPECT().FindByIdentifier(context.Background(), "nobody@example.com").Return(nil, nil)
			},
			expectedError: ErrInvalidCredentials,
		},
		{
			name:       "Wrong password",
			identifier: "test@example.com",
			password:   "wrongpassword",
			prepareMock: func() {
				userRepo.EXPECT().FindByIdentifier(context.Background(), "test@example.com").Return(&domain.User{ID: "user-1", PasswordHash: "hashed"}, nil)
				passwordHasher.EXPECT().ComparePassword("hashed", "wrongpassword").Return(false)
			},
			expectedError: ErrInvalidCredentials,
		},
		{
			name:       "Lookup error",
			identifier: "test@example.com",
			password:   "testpassword",
			prepareMock: func() {
				userRepo.EXPECT().FindByIdentifier(context.Background(), "test@example.com").Return(nil, errors.New("database error"))
			},
			expectedError: ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			user, err := service.Authenticate(context.Background(), tt.identifier, tt.password)
			if tt.expectedError != nil {
				assert.Nil(t, user)
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, "user-1", user.ID)
		})
	}
}

func TestGenerateToken(t *testing.T) {
	service, _, _, _, jwtService := NewMock(t)

	tests := []struct {
		name          string
		userID        string
		isAdmin       bool
		prepareMock   func()
		expectedToken string
		expectedError error
	}{
		{
			name:    "Token for regular user",
			userID:  "user-1",
			isAdmin: false,
			prepareMock: func() {
				jwtService.EXPECT().GenerateJWT("user-1", false, gomock.Any()).Return("token-1", nil)
			},
			expectedToken: "token-1",
		},
		{
			name:    "Token for admin",
			userID:  "admin-1",
			isAdmin: true,
			prepareMock: func() {
				jwtService.EXPECT().GenerateJWT("admin-1", true, gomock.Any()).Return("token-2", nil)
			},
			expectedToken: "token-2",
		},
		{
			name:    "Signing error",
			userID:  "user-1",
			isAdmin: false,
			prepareMock: func() {
				jwtService.EXPECT().GenerateJWT("user-1", false, gomock.Any()).Return("", errors.New("signing error"))
			},
			expectedError: errors.New("signing error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			token, err := service.GenerateToken(tt.userID, tt.isAdmin)
			if tt.expectedError != nil {
				assert.EqualError(t, err, tt.expectedError.Error())
				assert.Empty(t, token)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedToken, token)
		})
	}
}

func TestGetByID(t *testing.T) {
	service, userRepo, _, _, _ := NewMock(t)

	userRepo.EXPECT().FindByID(context.Background(), "user-1").Return(&domain.User{ID: "user-1", CreatedAt: time.Now()}, nil)
	user, err := service.GetByID(context.Background(), "user-1")
	assert.NoError(t, err)
	assert.Equal(t, "user-1", user.ID)

	userRepo.EXPECT().FindByID(context.Background(), "user-2").Return(nil, errors.New("database error"))
	user, err = service.GetByID(context.Background(), "user-2")
	assert.Error(t, err)
	assert.Nil(t, user)
}

package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateJWT(t *testing.T) {
	jwtService := &JWTService{}

	tests := []struct {
		name           string
		userID         string
		isAdmin        bool
		expirationTime time.Time
		expectError    bool
	}{
		{
			name:           "Valid Token",
			userID:         "8f14e45f-ceea-4e1b-b807-1d171fd93e10",
			expirationTime: time.Now().Add(time.Hour),
			expectError:    false,
		},
		{
			name:           "Admin Token",
			userID:         "8f14e45f-ceea-4e1b-b807-1d171fd93e10",
			isAdmin:        true,
			expirationTime: time.Now().Add(time.Hour),
			expectError:    false,
		},
		{
			name:           "Expired Token",
			userID:         "8f14e45f-ceea-4e1b-b807-1d171fd93e10",
			expirationTime: time.Now().Add(-time.Hour),
			expectError:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := jwtService.GenerateJWT(tt.userID, tt.isAdmin, tt.expirationTime)

			if tt.expectError {
				assert.Error(t, err)
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, token)
			}
		})
	}
}

func TestValidateToken(t *testing.T) {
	jwtService := &JWTService{}

	tests := []struct {
		name          string
		tokenString   string
		setup         func() string
		expectError   bool
		expectAdmin   bool
		expectedOwner string
	}{
		{
			name: "Valid Token",
			setup: func() string {
				token, _ := jwtService.GenerateJWT("8f14e45f-ceea-4e1b-b807-1d171fd93e10", false, time.Now().Add(time.Hour))
				return token
			},
			expectError:   false,
			expectedOwner: "8f14e45f-ceea-4e1b-b807-1d171fd93e10",
		},
		{
			name: "Admin claim survives round trip",
			setup: func() string {
				token, _ := jwtService.GenerateJWT("8f14e45f-ceea-4e1b-b807-1d171fd93e10", true, time.Now().Add(time.Hour))
				return token
			},
			expectError:   false,
			expectAdmin:   true,
			expectedOwner: "8f14e45f-ceea-4e1b-b807-1d171fd93e10",
		},
		{
			name:        "Invalid Token",
			tokenString: "invalid.token.string",
			expectError: true,
		},
		{
			name: "Expired Token",
			setup: func() string {
				token, _ := jwtService.GenerateJWT("8f14e45f-ceea-4e1b-b807-1d171fd93e10", false, time.Now().Add(-time.Hour))
				return token
			},
			expectError: true,
		},
		{
			name: "Empty UserID Rejected",
			setup: func() string {
				token, _ := jwtService.GenerateJWT("", false, time.Now().Add(time.Hour))
				return token
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenString := tt.tokenString
			if tt.setup != nil {
				tokenString = tt.setup()
			}

			claims, err := jwtService.ValidateToken(tokenString)

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, claims)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, claims)
				assert.Equal(t, tt.expectedOwner, claims.UserID)
				assert.Equal(t, tt.expectAdmin, claims.IsAdmin)
			}
		})
	}
}

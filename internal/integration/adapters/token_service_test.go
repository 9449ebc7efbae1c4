package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerror "github.com/finance-tracker/insights/internal/domain/error"
)

const testSecret = "test-secret"

func TestTokenService_RoundTrip(t *testing.T) {
	ctx := context.Background()
	svc := NewTokenService(testSecret, time.Hour)
	userID := uuid.New()

	token, err := svc.GenerateAccessToken(ctx, userID, "ana@example.com")
	require.NoError(t, err)

	claims, err := svc.ValidateAccessToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "ana@example.com", claims.Email)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt, time.Minute)
}

func TestTokenService_Rejects(t *testing.T) {
	ctx := context.Background()
	svc := NewTokenService(testSecret, time.Hour)

	sign := func(t *testing.T, claims CustomClaims, secret string) string {
		t.Helper()
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
		require.NoError(t, err)
		return token
	}

	now := time.Now()
	valid := jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	tests := []struct {
		name    string
		token   string
		wantErr error
	}{
		{
			name:    "garbage",
			token:   "not-a-jwt",
			wantErr: domainerror.ErrInvalidToken,
		},
		{
			name:    "wrong secret",
			token:   sign(t, CustomClaims{UserID: uuid.NewString(), TokenType: tokenTypeAccess, RegisteredClaims: valid}, "other"),
			wantErr: domainerror.ErrInvalidToken,
		},
		{
			name:    "refresh token",
			token:   sign(t, CustomClaims{UserID: uuid.NewString(), TokenType: "refresh", RegisteredClaims: valid}, testSecret),
			wantErr: domainerror.ErrInvalidToken,
		},
		{
			name:    "bad user id",
			token:   sign(t, CustomClaims{UserID: "nope", TokenType: tokenTypeAccess, RegisteredClaims: valid}, testSecret),
			wantErr: domainerror.ErrInvalidToken,
		},
		{
			name: "expired",
			token: sign(t, CustomClaims{UserID: uuid.NewString(), TokenType: tokenTypeAccess, RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(now.Add(-time.Hour)),
			}}, testSecret),
			wantErr: domainerror.ErrExpiredToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := svc.ValidateAccessToken(ctx, tt.token)
			assert.Nil(t, claims)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

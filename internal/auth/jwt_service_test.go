package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "restaurant/internal/errors"
)

func TestJWTService_AccessTokenRoundTrip(t *testing.T) {
	svc := NewJWTService("secret", time.Hour, 24*time.Hour)
	id := Identity{UserID: "slug-1", Email: "a@example.com", Role: "admin"}

	token, err := svc.GenerateAccessToken(id)
	require.NoError(t, err)

	claims, err := svc.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, id, claims.Identity())
	assert.NotEmpty(t, claims.ID)
}

func TestJWTService_ValidateToken(t *testing.T) {
	svc := NewJWTService("secret", time.Hour, 24*time.Hour)
	id := Identity{UserID: "slug-1", Email: "a@example.com", Role: "user"}

	expired := NewJWTService("secret", time.Hour, 24*time.Hour)
	expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	expiredToken, err := expired.GenerateAccessToken(id)
	require.NoError(t, err)

	foreign := NewJWTService("other-secret", time.Hour, 24*time.Hour)
	foreignToken, err := foreign.GenerateAccessToken(id)
	require.NoError(t, err)

	_, refreshToken, err := svc.GenerateRefreshToken(id)
	require.NoError(t, err)

	tests := []struct {
		name    string
		token   string
		wantErr error
	}{
		{"expired token", expiredToken, apperrors.ErrTokenExpired},
		{"wrong signature", foreignToken, apperrors.ErrTokenInvalid},
		{"garbage", "not-a-jwt", apperrors.ErrTokenInvalid},
		{"refresh token used as access token", refreshToken, apperrors.ErrTokenInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ValidateAccessToken(tt.token)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestJWTService_RefreshToken(t *testing.T) {
	svc := NewJWTService("secret", time.Hour, 24*time.Hour)
	tokenID, token, err := svc.GenerateRefreshToken(Identity{UserID: "slug-2"})
	require.NoError(t, err)

	claims, err := svc.ValidateRefreshToken(token)
	require.NoError(t, err)
	assert.Equal(t, tokenID, claims.ID)
	assert.Equal(t, "slug-2", claims.UserID)

	access, err := svc.GenerateAccessToken(Identity{UserID: "slug-2"})
	require.NoError(t, err)
	_, err = svc.ValidateRefreshToken(access)
	assert.ErrorIs(t, err, apperrors.ErrTokenInvalid)
}

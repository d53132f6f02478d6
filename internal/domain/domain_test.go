package domain

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedAccessToken(t *testing.T, scope string, expiresAt time.Time) string {
	t.Helper()

	claims := jwt.MapClaims{"scope": scope}
	if !expiresAt.IsZero() {
		claims["exp"] = expiresAt.Unix()
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	return token
}

func TestIsAppPasswordToken(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  bool
	}{
		{
			name:  "app password scope",
			token: signedAccessToken(t, "com.atproto.appPass", time.Time{}),
			want:  true,
		},
		{
			name:  "full access scope",
			token: signedAccessToken(t, "com.atproto.access", time.Time{}),
			want:  false,
		},
		{
			name:  "missing scope claim",
			token: signedAccessToken(t, "", time.Time{}),
			want:  false,
		},
		{
			name:  "not a jwt",
			token: "definitely-not-a-token",
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsAppPasswordToken(tt.token))
		})
	}
}

func TestAccessTokenExpiry(t *testing.T) {
	expiresAt := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)

	token := signedAccessToken(t, "com.atproto.access", expiresAt)
	assert.True(t, AccessTokenExpiry(token).Equal(expiresAt))

	assert.True(t, AccessTokenExpiry(signedAccessToken(t, "com.atproto.access", time.Time{})).IsZero())
	assert.True(t, AccessTokenExpiry("garbage").IsZero())
}

func TestSessionDataSameTokens(t *testing.T) {
	session := SessionData{
		DID:        "did:plc:alice",
		AccessJwt:  "access-1",
		RefreshJwt: "refresh-1",
	}

	assert.True(t, session.SameTokens(SessionData{AccessJwt: "access-1", RefreshJwt: "refresh-1"}))
	assert.False(t, session.SameTokens(SessionData{AccessJwt: "access-2", RefreshJwt: "refresh-1"}))
	assert.False(t, session.SameTokens(SessionData{AccessJwt: "access-1", RefreshJwt: "refresh-2"}))
}

package accounts

import (
	"testing"
	"time"

	"github.com/bnema/bsky-accounts-cli/internal/domain"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokenExpiringAt(t *testing.T, expiresAt time.Time) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"scope": "com.atproto.access",
		"exp":   expiresAt.Unix(),
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	return token
}

func TestRenderAccountList(t *testing.T) {
	now := time.Date(2026, 8, 14, 11, 0, 0, 0, time.UTC)

	output, err := Render([]domain.Account{
		{
			DID:     "did:plc:alice",
			Service: "https://bsky.social",
			Session: domain.SessionData{
				DID:       "did:plc:alice",
				Handle:    "alice.bsky.social",
				AccessJwt: tokenExpiringAt(t, now.Add(90*time.Minute)),
			},
			IsAppPassword: true,
			Profile:       &domain.ProfileData{DisplayName: "Alice"},
		},
		{
			DID:     "did:plc:bob",
			Service: "https://pds.example.com",
			Session: domain.SessionData{
				DID:       "did:plc:bob",
				Handle:    "bob.example.com",
				AccessJwt: tokenExpiringAt(t, now.Add(-time.Minute)),
			},
		},
	}, RenderOptions{Now: now, Active: "did:plc:alice"})

	require.NoError(t, err)
	assert.Contains(t, output, "accounts: 2")
	assert.Contains(t, output, "Alice (alice.bsky.social)")
	assert.Contains(t, output, "[active]")
	assert.Contains(t, output, "did:plc:alice")
	assert.Contains(t, output, "service: https://bsky.social")
	assert.Contains(t, output, "auth: app password")
	assert.Contains(t, output, "expires in 2h")
	assert.Contains(t, output, "bob.example.com")
	assert.Contains(t, output, "auth: account password")
	assert.Contains(t, output, "session: expired")
}

func TestRenderEmptyAccountList(t *testing.T) {
	output, err := Render(nil, RenderOptions{})

	require.NoError(t, err)
	assert.Contains(t, output, "accounts: 0")
	assert.Contains(t, output, "No accounts stored")
}

package toml

import (
	"fmt"
	"time"

	"github.com/bnema/bsky-accounts-cli/internal/domain"
)

const currentSchemaVersion = 1

type fileSchema struct {
	Version  int             `toml:"version"`
	Active   string          `toml:"active,omitempty"`
	Accounts []accountSchema `toml:"accounts,omitempty"`
}

type accountSchema struct {
	DID           string         `toml:"did"`
	Service       string         `toml:"service"`
	IsAppPassword bool           `toml:"is_app_password,omitempty"`
	Session       sessionSchema  `toml:"session"`
	Profile       *profileSchema `toml:"profile,omitempty"`
}

type sessionSchema struct {
	DID        string `toml:"did"`
	Handle     string `toml:"handle,omitempty"`
	Email      string `toml:"email,omitempty"`
	AccessJwt  string `toml:"access_jwt"`
	RefreshJwt string `toml:"refresh_jwt"`
}

type profileSchema struct {
	DisplayName string `toml:"display_name,omitempty"`
	Avatar      string `toml:"avatar,omitempty"`
	IndexedAt   string `toml:"indexed_at,omitempty"`
}

// migrate upgrades any earlier document shape to the current one. Version 0 is
// a document that was never written; it initializes empty with no active
// selection.
func migrate(version int, prev fileSchema) fileSchema {
	if version == 0 {
		return fileSchema{Version: currentSchemaVersion}
	}

	prev.Version = currentSchemaVersion
	return prev
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported accounts schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

func toSchema(account domain.Account) accountSchema {
	encoded := accountSchema{
		DID:           string(account.DID),
		Service:       account.Service,
		IsAppPassword: account.IsAppPassword,
		Session: sessionSchema{
			DID:        string(account.Session.DID),
			Handle:     account.Session.Handle,
			Email:      account.Session.Email,
			AccessJwt:  account.Session.AccessJwt,
			RefreshJwt: account.Session.RefreshJwt,
		},
	}

	if account.Profile != nil {
		encoded.Profile = &profileSchema{
			DisplayName: account.Profile.DisplayName,
			Avatar:      account.Profile.Avatar,
			IndexedAt:   formatTime(account.Profile.IndexedAt),
		}
	}

	return encoded
}

func fromSchema(account accountSchema) domain.Account {
	decoded := domain.Account{
		DID:           domain.DID(account.DID),
		Service:       account.Service,
		IsAppPassword: account.IsAppPassword,
		Session: domain.SessionData{
			DID:        domain.DID(account.Session.DID),
			Handle:     account.Session.Handle,
			Email:      account.Session.Email,
			AccessJwt:  account.Session.AccessJwt,
			RefreshJwt: account.Session.RefreshJwt,
		},
	}

	if decoded.Session.DID == "" {
		decoded.Session.DID = decoded.DID
	}

	if account.Profile != nil {
		decoded.Profile = &domain.ProfileData{
			DisplayName: account.Profile.DisplayName,
			Avatar:      account.Profile.Avatar,
			IndexedAt:   parseTime(account.Profile.IndexedAt),
		}
	}

	return decoded
}

func parseTime(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}

	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}
	}

	return parsed
}

func formatTime(value time.Time) string {
	if value.IsZero() {
		return ""
	}

	return value.Format(time.RFC3339)
}

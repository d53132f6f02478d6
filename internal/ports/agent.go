package ports

import (
	"context"

	"github.com/bnema/bsky-accounts-cli/internal/domain"
)

// Credentials is the identifier/password pair submitted to createSession.
// Identifier is a handle, email address, or DID.
type Credentials struct {
	Identifier string
	Password   string
}

// SessionGateway is the authentication side of one live agent. It owns the
// live, mutable credential state for a single session against one service.
type SessionGateway interface {
	// Login performs a fresh createSession call and adopts the returned
	// session as the live one.
	Login(ctx context.Context, creds Credentials) (domain.SessionData, error)
	// Resume re-establishes a session from a persisted credential bundle
	// without submitting identifier/password. It refreshes the token pair
	// when the stored access token is no longer usable.
	Resume(ctx context.Context, session domain.SessionData) error

	// Session returns a copy of the live credential bundle.
	Session() domain.SessionData
	// SetTokens overwrites the live token pair without invoking refresh
	// observers. It exists for pushing externally persisted tokens back into
	// the gateway.
	SetTokens(accessJwt, refreshJwt string)
	// OnRefresh registers an observer invoked whenever the gateway rotates
	// its tokens on its own (login, resume, or expiry-triggered refresh).
	// The returned cancel detaches the observer.
	OnRefresh(fn func(domain.SessionData)) (cancel func())

	// SetLabelers replaces the moderation labeler list attached to outgoing
	// requests.
	SetLabelers(labelers []domain.LabelerService)
}

// APIClient issues authenticated protocol calls for one account. The session
// manager treats it as opaque and only hands it out.
type APIClient interface {
	Service() string
}

// AgentFactory builds a bound client/gateway pair for a service endpoint.
// Both halves share one underlying connection.
type AgentFactory interface {
	NewAgent(service string) (APIClient, SessionGateway)
}

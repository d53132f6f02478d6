package xrpc

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/bnema/bsky-accounts-cli/internal/domain"
	"github.com/bnema/bsky-accounts-cli/internal/ports"
)

const (
	nsidCreateSession  = "com.atproto.server.createSession"
	nsidGetSession     = "com.atproto.server.getSession"
	nsidRefreshSession = "com.atproto.server.refreshSession"
)

type sessionResponse struct {
	DID        string `json:"did"`
	Handle     string `json:"handle"`
	Email      string `json:"email,omitempty"`
	AccessJwt  string `json:"accessJwt"`
	RefreshJwt string `json:"refreshJwt"`
}

type getSessionResponse struct {
	DID    string `json:"did"`
	Handle string `json:"handle"`
	Email  string `json:"email,omitempty"`
}

// Gateway manages the live credential state for one session against one
// service. It is the authentication half of an agent; the bound Client issues
// all wire calls and receives the current access token from here.
type Gateway struct {
	client *Client
	clock  ports.Clock

	mu          sync.Mutex
	session     domain.SessionData
	refreshFns  map[int]func(domain.SessionData)
	nextRefresh int
}

var _ ports.SessionGateway = (*Gateway)(nil)

func NewGateway(client *Client, clock ports.Clock) *Gateway {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &Gateway{
		client:     client,
		clock:      clock,
		refreshFns: map[int]func(domain.SessionData){},
	}
}

func (g *Gateway) Login(ctx context.Context, creds ports.Credentials) (domain.SessionData, error) {
	input := struct {
		Identifier string `json:"identifier"`
		Password   string `json:"password"`
	}{
		Identifier: creds.Identifier,
		Password:   creds.Password,
	}

	var wire sessionResponse
	if err := g.client.Procedure(ctx, nsidCreateSession, input, &wire); err != nil {
		return domain.SessionData{}, fmt.Errorf("create session: %w", err)
	}

	session := sessionFromWire(wire)
	g.rotate(session)

	return session, nil
}

func (g *Gateway) Resume(ctx context.Context, session domain.SessionData) error {
	g.adopt(session)

	expiry := domain.AccessTokenExpiry(session.AccessJwt)
	if !expiry.IsZero() && !expiry.After(g.clock.Now()) {
		return g.refresh(ctx, session)
	}

	var wire getSessionResponse
	err := g.client.Query(ctx, nsidGetSession, nil, &wire)
	if err == nil {
		g.mu.Lock()
		g.session.Handle = wire.Handle
		g.session.Email = wire.Email
		g.mu.Unlock()
		return nil
	}

	if !isTokenError(err) {
		return fmt.Errorf("get session: %w", err)
	}

	slog.Debug("access token rejected, refreshing session", "did", session.DID)
	return g.refresh(ctx, session)
}

func (g *Gateway) refresh(ctx context.Context, session domain.SessionData) error {
	var wire sessionResponse
	if err := g.client.procedureWithToken(ctx, nsidRefreshSession, session.RefreshJwt, &wire); err != nil {
		return fmt.Errorf("refresh session: %w", err)
	}

	rotated := sessionFromWire(wire)
	if rotated.Email == "" {
		rotated.Email = session.Email
	}
	g.rotate(rotated)

	return nil
}

func (g *Gateway) Session() domain.SessionData {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.session
}

func (g *Gateway) SetTokens(accessJwt, refreshJwt string) {
	g.mu.Lock()
	g.session.AccessJwt = accessJwt
	g.session.RefreshJwt = refreshJwt
	g.mu.Unlock()

	g.client.setAccessJwt(accessJwt)
}

func (g *Gateway) OnRefresh(fn func(domain.SessionData)) func() {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := g.nextRefresh
	g.nextRefresh++
	g.refreshFns[id] = fn

	return func() {
		g.mu.Lock()
		defer g.mu.Unlock()
		delete(g.refreshFns, id)
	}
}

func (g *Gateway) SetLabelers(labelers []domain.LabelerService) {
	g.client.setLabelers(labelers)
}

// adopt installs a session without telling refresh observers; the tokens came
// from the caller, not from a rotation.
func (g *Gateway) adopt(session domain.SessionData) {
	g.mu.Lock()
	g.session = session
	g.mu.Unlock()

	g.client.setAccessJwt(session.AccessJwt)
}

// rotate installs a session the service just issued and notifies refresh
// observers outside the lock.
func (g *Gateway) rotate(session domain.SessionData) {
	g.mu.Lock()
	g.session = session
	fns := make([]func(domain.SessionData), 0, len(g.refreshFns))
	for _, fn := range g.refreshFns {
		fns = append(fns, fn)
	}
	g.mu.Unlock()

	g.client.setAccessJwt(session.AccessJwt)

	for _, fn := range fns {
		fn(session)
	}
}

func sessionFromWire(wire sessionResponse) domain.SessionData {
	return domain.SessionData{
		DID:        domain.DID(wire.DID),
		Handle:     wire.Handle,
		Email:      wire.Email,
		AccessJwt:  wire.AccessJwt,
		RefreshJwt: wire.RefreshJwt,
	}
}

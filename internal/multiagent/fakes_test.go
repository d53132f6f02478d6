package multiagent

import (
	"context"
	"sync"

	"github.com/bnema/bsky-accounts-cli/internal/domain"
	"github.com/bnema/bsky-accounts-cli/internal/ports"
)

// fakeGateway is a controllable in-memory session gateway. Login/resume
// behavior is injected per test; fireRefresh simulates an autonomous token
// rotation as the real gateway performs on expiry.
type fakeGateway struct {
	mu          sync.Mutex
	session     domain.SessionData
	labelers    []domain.LabelerService
	refreshFns  map[int]func(domain.SessionData)
	nextRefresh int

	loginFn  func(ports.Credentials) (domain.SessionData, error)
	resumeFn func(domain.SessionData) error

	resumeCalls    int
	setTokensCalls int
}

var _ ports.SessionGateway = (*fakeGateway)(nil)

func newFakeGateway() *fakeGateway {
	return &fakeGateway{refreshFns: map[int]func(domain.SessionData){}}
}

func (g *fakeGateway) Login(_ context.Context, creds ports.Credentials) (domain.SessionData, error) {
	if g.loginFn == nil {
		panic("fakeGateway: no loginFn configured")
	}

	session, err := g.loginFn(creds)
	if err != nil {
		return domain.SessionData{}, err
	}

	g.mu.Lock()
	g.session = session
	g.mu.Unlock()

	return session, nil
}

func (g *fakeGateway) Resume(_ context.Context, session domain.SessionData) error {
	g.mu.Lock()
	g.resumeCalls++
	fn := g.resumeFn
	g.mu.Unlock()

	if fn != nil {
		if err := fn(session); err != nil {
			return err
		}
	}

	g.mu.Lock()
	g.session = session
	g.mu.Unlock()

	return nil
}

func (g *fakeGateway) Session() domain.SessionData {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.session
}

func (g *fakeGateway) SetTokens(accessJwt, refreshJwt string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.setTokensCalls++
	g.session.AccessJwt = accessJwt
	g.session.RefreshJwt = refreshJwt
}

func (g *fakeGateway) OnRefresh(fn func(domain.SessionData)) func() {
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

func (g *fakeGateway) SetLabelers(labelers []domain.LabelerService) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.labelers = labelers
}

// fireRefresh rotates the live session and notifies refresh observers, the
// way the real gateway does after refreshSession.
func (g *fakeGateway) fireRefresh(session domain.SessionData) {
	g.mu.Lock()
	g.session = session
	fns := make([]func(domain.SessionData), 0, len(g.refreshFns))
	for _, fn := range g.refreshFns {
		fns = append(fns, fn)
	}
	g.mu.Unlock()

	for _, fn := range fns {
		fn(session)
	}
}

func (g *fakeGateway) stats() (resumeCalls, setTokensCalls int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.resumeCalls, g.setTokensCalls
}

func (g *fakeGateway) currentLabelers() []domain.LabelerService {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.labelers
}

type fakeClient struct {
	service string
}

func (c *fakeClient) Service() string {
	return c.service
}

// fakeFactory hands out one pre-built gateway per NewAgent call, in order.
type fakeFactory struct {
	mu       sync.Mutex
	gateways []*fakeGateway
	built    int
}

var _ ports.AgentFactory = (*fakeFactory)(nil)

func (f *fakeFactory) queue(gateways ...*fakeGateway) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.gateways = append(f.gateways, gateways...)
}

func (f *fakeFactory) NewAgent(service string) (ports.APIClient, ports.SessionGateway) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.built >= len(f.gateways) {
		panic("fakeFactory: no gateway queued for NewAgent")
	}

	gateway := f.gateways[f.built]
	f.built++

	return &fakeClient{service: service}, gateway
}

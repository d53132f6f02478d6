// Package multiagent manages live sessions for any number of registered
// accounts at once: at most one agent per DID, deduplicated concurrent
// resumes, and credential state kept consistent between each live session and
// the durable account store.
package multiagent

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/bnema/bsky-accounts-cli/internal/domain"
	"github.com/bnema/bsky-accounts-cli/internal/ports"
)

// Agent is the bound client/gateway pair for one connected account.
type Agent struct {
	Client ports.APIClient
	Auth   ports.SessionGateway
}

type LoginOptions struct {
	Service    string
	Identifier string
	Password   string
}

// agentEntry is one registry slot. Callers share the entry while its resume is
// in flight; err is written before ready is closed and read only after.
type agentEntry struct {
	agent  Agent
	bridge *bridge
	ready  chan struct{}
	err    error
}

func (e *agentEntry) await(ctx context.Context) (Agent, error) {
	select {
	case <-e.ready:
		if e.err != nil {
			return Agent{}, e.err
		}
		return e.agent, nil
	case <-ctx.Done():
		return Agent{}, ctx.Err()
	}
}

// Multiagent is the session manager facade. All account state reads go
// through the store; all live-handle reads go through the agent registry.
type Multiagent struct {
	store   ports.AccountStore
	factory ports.AgentFactory

	// Labelers is the process-wide moderation labeler list. Every live agent
	// mirrors it into its request decorator; the embedding application owns
	// the value's lifecycle and just sets it here.
	Labelers *Signal[[]domain.LabelerService]

	mu     sync.Mutex
	agents map[domain.DID]*agentEntry
}

func New(store ports.AccountStore, factory ports.AgentFactory) *Multiagent {
	return &Multiagent{
		store:    store,
		factory:  factory,
		Labelers: NewSignal[[]domain.LabelerService](nil),
		agents:   map[domain.DID]*agentEntry{},
	}
}

func (m *Multiagent) Accounts() []domain.Account {
	return m.store.Accounts()
}

func (m *Multiagent) Active() (domain.DID, error) {
	return m.store.Active()
}

func (m *Multiagent) SetActive(did domain.DID) error {
	return m.store.SetActive(did)
}

// Login authenticates a brand-new session. The account id is not known until
// the call succeeds, so a fresh agent is always built; on success it
// supersedes whatever entry the registry held for that DID.
func (m *Multiagent) Login(ctx context.Context, opts LoginOptions) (domain.DID, error) {
	entry := m.newEntry(opts.Service)

	session, err := entry.agent.Auth.Login(ctx, ports.Credentials{
		Identifier: opts.Identifier,
		Password:   opts.Password,
	})
	if err != nil {
		entry.bridge.dispose()
		return "", &domain.LoginError{Err: err}
	}

	did := session.DID

	account, err := m.store.Get(did)
	if err != nil {
		account = domain.Account{DID: did}
	}
	account.Service = opts.Service
	account.Session = session
	account.IsAppPassword = domain.IsAppPasswordToken(session.AccessJwt)

	if err := m.store.Upsert(account); err != nil {
		entry.bridge.dispose()
		return "", fmt.Errorf("persist account: %w", err)
	}

	// Login already established the session; the entry starts out connected.
	close(entry.ready)

	m.mu.Lock()
	previous := m.agents[did]
	m.agents[did] = entry
	m.mu.Unlock()

	if previous != nil {
		previous.bridge.dispose()
	}

	return did, nil
}

// Logout disposes the live agent, if any, and removes the account record.
// Unknown DIDs are a no-op.
func (m *Multiagent) Logout(did domain.DID) error {
	m.mu.Lock()
	entry := m.agents[did]
	delete(m.agents, did)
	m.mu.Unlock()

	if entry != nil {
		entry.bridge.dispose()
	}

	if err := m.store.Remove(did); err != nil && !errors.Is(err, domain.ErrAccountNotFound) {
		return fmt.Errorf("remove account: %w", err)
	}

	return nil
}

// Connect returns the live agent for a registered account, resuming its
// session from the persisted credentials if needed. Concurrent calls for the
// same DID share one resume attempt and one agent. ctx only bounds this
// caller's wait; the resume itself always runs to completion.
func (m *Multiagent) Connect(ctx context.Context, did domain.DID) (Agent, error) {
	m.mu.Lock()
	if entry, ok := m.agents[did]; ok {
		m.mu.Unlock()
		return entry.await(ctx)
	}

	account, err := m.store.Get(did)
	if err != nil {
		m.mu.Unlock()
		return Agent{}, err
	}

	entry := m.newEntry(account.Service)
	m.agents[did] = entry
	m.mu.Unlock()

	go m.resume(did, entry, account.Session)

	return entry.await(ctx)
}

// UpdateProfile caches display metadata on the account record. Purely
// advisory; failures to look the account up are surfaced unchanged.
func (m *Multiagent) UpdateProfile(did domain.DID, profile domain.ProfileData) error {
	account, err := m.store.Get(did)
	if err != nil {
		return err
	}

	account.Profile = &profile

	return m.store.Upsert(account)
}

func (m *Multiagent) resume(did domain.DID, entry *agentEntry, session domain.SessionData) {
	err := entry.agent.Auth.Resume(context.Background(), session)
	if err != nil {
		slog.Debug("session resume failed", "did", did, "error", err)
		entry.bridge.dispose()

		m.mu.Lock()
		// A superseding login may have replaced us; only remove our own slot.
		if m.agents[did] == entry {
			delete(m.agents, did)
		}
		m.mu.Unlock()

		entry.err = &domain.ResumeError{DID: did, Err: err}
	}

	close(entry.ready)
}

func (m *Multiagent) newEntry(service string) *agentEntry {
	client, gateway := m.factory.NewAgent(service)

	return &agentEntry{
		agent:  Agent{Client: client, Auth: gateway},
		bridge: newBridge(m.store, gateway, m.Labelers),
		ready:  make(chan struct{}),
	}
}

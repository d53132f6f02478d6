package multiagent

import (
	"log/slog"
	"sync"

	"github.com/bnema/bsky-accounts-cli/internal/domain"
	"github.com/bnema/bsky-accounts-cli/internal/ports"
)

// bridge keeps one agent's live credential state and the store's persisted
// copy consistent, in both directions, without echoing a write back to its
// origin. It also forwards the process-wide labeler list into the gateway.
//
// The ignore flag suppresses the store→gateway push while the gateway→store
// write is delivering its own store notification. It guards exactly those two
// paths and nothing else.
type bridge struct {
	store   ports.AccountStore
	gateway ports.SessionGateway

	mu        sync.Mutex
	ignore    bool
	disposed  bool
	disposers []func()
}

func newBridge(store ports.AccountStore, gateway ports.SessionGateway, labelers *Signal[[]domain.LabelerService]) *bridge {
	b := &bridge{store: store, gateway: gateway}

	cancelRefresh := gateway.OnRefresh(b.persistRotatedSession)
	cancelStore := store.Subscribe(b.pushStoredTokens)
	cancelLabelers := labelers.Subscribe(gateway.SetLabelers)

	b.disposers = []func(){cancelRefresh, cancelStore, cancelLabelers}

	return b
}

// persistRotatedSession is the gateway→store direction: the gateway rotated
// its tokens and the persisted record has to follow.
func (b *bridge) persistRotatedSession(session domain.SessionData) {
	if b.isDisposed() || session.DID == "" {
		return
	}
	if _, err := b.store.Get(session.DID); err != nil {
		// Not registered (yet): login persists the first record itself.
		return
	}

	b.setIgnore(true)
	err := b.store.UpdateSession(session.DID, session)
	b.setIgnore(false)

	if err != nil {
		slog.Debug("persist rotated session", "did", session.DID, "error", err)
	}
}

// pushStoredTokens is the store→gateway direction: the persisted credential
// bundle changed underneath us, so the live session adopts the stored pair.
func (b *bridge) pushStoredTokens(event ports.StoreEvent) {
	if b.isDisposed() || b.ignored() {
		return
	}

	switch event.Kind {
	case ports.StoreEventUpsert, ports.StoreEventSession, ports.StoreEventReload:
	default:
		return
	}

	live := b.gateway.Session()
	if live.DID == "" {
		return
	}
	if event.Kind != ports.StoreEventReload && event.DID != live.DID {
		return
	}

	stored, err := b.store.Get(live.DID)
	if err != nil {
		return
	}
	if stored.Session.SameTokens(live) {
		return
	}

	b.gateway.SetTokens(stored.Session.AccessJwt, stored.Session.RefreshJwt)
}

// dispose detaches every observer in reverse registration order. Idempotent;
// after it returns neither side reacts to the other anymore.
func (b *bridge) dispose() {
	b.mu.Lock()
	if b.disposed {
		b.mu.Unlock()
		return
	}
	b.disposed = true
	disposers := b.disposers
	b.disposers = nil
	b.mu.Unlock()

	for i := len(disposers) - 1; i >= 0; i-- {
		disposers[i]()
	}
}

func (b *bridge) isDisposed() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.disposed
}

func (b *bridge) setIgnore(value bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.ignore = value
}

func (b *bridge) ignored() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.ignore
}

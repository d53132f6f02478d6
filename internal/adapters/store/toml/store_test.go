package toml

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bnema/bsky-accounts-cli/internal/domain"
	"github.com/bnema/bsky-accounts-cli/internal/ports"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T, path string) *Store {
	t.Helper()

	cfg := viper.New()
	cfg.Set("accounts.path", path)

	store, err := NewStore(cfg)
	require.NoError(t, err)

	return store
}

func testAccount(did domain.DID, handle string) domain.Account {
	return domain.Account{
		DID:     did,
		Service: "https://bsky.social",
		Session: domain.SessionData{
			DID:        did,
			Handle:     handle,
			AccessJwt:  "access-" + string(did),
			RefreshJwt: "refresh-" + string(did),
		},
	}
}

func TestNewStoreMissingFileInitializesEmpty(t *testing.T) {
	store := newTestStore(t, filepath.Join(t.TempDir(), "accounts.toml"))

	assert.Empty(t, store.Accounts())

	active, err := store.Active()
	require.NoError(t, err)
	assert.Equal(t, domain.DID(""), active)
}

func TestNewStoreRejectsNewerSchemaVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "accounts.toml")
	require.NoError(t, os.WriteFile(path, []byte("version = 99\n"), 0o600))

	cfg := viper.New()
	cfg.Set("accounts.path", path)

	_, err := NewStore(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported accounts schema version")
}

func TestUpsertAppendsThenUpdatesInPlace(t *testing.T) {
	store := newTestStore(t, filepath.Join(t.TempDir(), "accounts.toml"))

	require.NoError(t, store.Upsert(testAccount("did:plc:alice", "alice.bsky.social")))
	require.NoError(t, store.Upsert(testAccount("did:plc:bob", "bob.bsky.social")))

	updated := testAccount("did:plc:alice", "alice.bsky.social")
	updated.Service = "https://pds.example.com"
	require.NoError(t, store.Upsert(updated))

	accounts := store.Accounts()
	require.Len(t, accounts, 2)
	assert.Equal(t, domain.DID("did:plc:alice"), accounts[0].DID)
	assert.Equal(t, "https://pds.example.com", accounts[0].Service)
	assert.Equal(t, domain.DID("did:plc:bob"), accounts[1].DID)
}

func TestActiveAdoptsFirstAccountAndPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "accounts.toml")
	store := newTestStore(t, path)

	require.NoError(t, store.Upsert(testAccount("did:plc:alice", "alice.bsky.social")))
	require.NoError(t, store.Upsert(testAccount("did:plc:bob", "bob.bsky.social")))

	active, err := store.Active()
	require.NoError(t, err)
	assert.Equal(t, domain.DID("did:plc:alice"), active)

	// Idempotent on repeated reads.
	again, err := store.Active()
	require.NoError(t, err)
	assert.Equal(t, active, again)

	// The adoption reached disk: a fresh store over the same file agrees.
	reopened := newTestStore(t, path)
	reopenedActive, err := reopened.Active()
	require.NoError(t, err)
	assert.Equal(t, domain.DID("did:plc:alice"), reopenedActive)
}

func TestActiveIgnoresPointerToUnknownAccount(t *testing.T) {
	path := filepath.Join(t.TempDir(), "accounts.toml")
	doc := "version = 1\nactive = \"did:plc:gone\"\n\n[[accounts]]\ndid = \"did:plc:bob\"\nservice = \"https://bsky.social\"\n\n[accounts.session]\ndid = \"did:plc:bob\"\naccess_jwt = \"a\"\nrefresh_jwt = \"r\"\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	store := newTestStore(t, path)

	active, err := store.Active()
	require.NoError(t, err)
	assert.Equal(t, domain.DID("did:plc:bob"), active)
}

func TestSetActiveMovesAccountToFront(t *testing.T) {
	store := newTestStore(t, filepath.Join(t.TempDir(), "accounts.toml"))

	require.NoError(t, store.Upsert(testAccount("did:plc:alice", "alice.bsky.social")))
	require.NoError(t, store.Upsert(testAccount("did:plc:bob", "bob.bsky.social")))
	require.NoError(t, store.Upsert(testAccount("did:plc:carol", "carol.bsky.social")))

	require.NoError(t, store.SetActive("did:plc:carol"))

	accounts := store.Accounts()
	require.Len(t, accounts, 3)
	assert.Equal(t, domain.DID("did:plc:carol"), accounts[0].DID)
	assert.Equal(t, domain.DID("did:plc:alice"), accounts[1].DID)
	assert.Equal(t, domain.DID("did:plc:bob"), accounts[2].DID)

	active, err := store.Active()
	require.NoError(t, err)
	assert.Equal(t, domain.DID("did:plc:carol"), active)
}

func TestRemoveClearsActivePointer(t *testing.T) {
	store := newTestStore(t, filepath.Join(t.TempDir(), "accounts.toml"))

	require.NoError(t, store.Upsert(testAccount("did:plc:alice", "alice.bsky.social")))
	require.NoError(t, store.Upsert(testAccount("did:plc:bob", "bob.bsky.social")))
	require.NoError(t, store.SetActive("did:plc:alice"))

	require.NoError(t, store.Remove("did:plc:alice"))

	// Next read falls back to the first remaining account.
	active, err := store.Active()
	require.NoError(t, err)
	assert.Equal(t, domain.DID("did:plc:bob"), active)

	assert.ErrorIs(t, store.Remove("did:plc:alice"), domain.ErrAccountNotFound)
}

func TestUpdateSessionNotifiesSubscribers(t *testing.T) {
	store := newTestStore(t, filepath.Join(t.TempDir(), "accounts.toml"))
	require.NoError(t, store.Upsert(testAccount("did:plc:alice", "alice.bsky.social")))

	var events []ports.StoreEvent
	cancel := store.Subscribe(func(event ports.StoreEvent) {
		events = append(events, event)
	})

	session := domain.SessionData{
		DID:        "did:plc:alice",
		Handle:     "alice.bsky.social",
		AccessJwt:  "rotated-access",
		RefreshJwt: "rotated-refresh",
	}
	require.NoError(t, store.UpdateSession("did:plc:alice", session))

	require.Len(t, events, 1)
	assert.Equal(t, ports.StoreEventSession, events[0].Kind)
	assert.Equal(t, domain.DID("did:plc:alice"), events[0].DID)

	stored, err := store.Get("did:plc:alice")
	require.NoError(t, err)
	assert.Equal(t, "rotated-access", stored.Session.AccessJwt)

	cancel()
	require.NoError(t, store.UpdateSession("did:plc:alice", session))
	assert.Len(t, events, 1)

	assert.ErrorIs(t, store.UpdateSession("did:plc:unknown", session), domain.ErrAccountNotFound)
}

func TestSubscriberMayReadBackIntoStore(t *testing.T) {
	store := newTestStore(t, filepath.Join(t.TempDir(), "accounts.toml"))
	require.NoError(t, store.Upsert(testAccount("did:plc:alice", "alice.bsky.social")))

	var seen domain.Account
	cancel := store.Subscribe(func(event ports.StoreEvent) {
		if event.Kind != ports.StoreEventSession {
			return
		}
		account, err := store.Get(event.DID)
		require.NoError(t, err)
		seen = account
	})
	defer cancel()

	session := domain.SessionData{DID: "did:plc:alice", AccessJwt: "a2", RefreshJwt: "r2"}
	require.NoError(t, store.UpdateSession("did:plc:alice", session))

	assert.Equal(t, "a2", seen.Session.AccessJwt)
}

func TestReloadPicksUpExternalRewrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "accounts.toml")
	store := newTestStore(t, path)
	require.NoError(t, store.Upsert(testAccount("did:plc:alice", "alice.bsky.social")))

	var events []ports.StoreEvent
	cancel := store.Subscribe(func(event ports.StoreEvent) {
		events = append(events, event)
	})
	defer cancel()

	// A reload over an identical document is a no-op.
	store.reload()
	assert.Empty(t, events)

	other := newTestStore(t, path)
	session := domain.SessionData{DID: "did:plc:alice", AccessJwt: "external-access", RefreshJwt: "external-refresh"}
	require.NoError(t, other.UpdateSession("did:plc:alice", session))

	store.reload()
	require.Len(t, events, 1)
	assert.Equal(t, ports.StoreEventReload, events[0].Kind)

	account, err := store.Get("did:plc:alice")
	require.NoError(t, err)
	assert.Equal(t, "external-access", account.Session.AccessJwt)
}

func TestWatchObservesExternalRewrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "accounts.toml")
	store := newTestStore(t, path)
	require.NoError(t, store.Upsert(testAccount("did:plc:alice", "alice.bsky.social")))

	reloaded := make(chan struct{}, 1)
	cancel := store.Subscribe(func(event ports.StoreEvent) {
		if event.Kind == ports.StoreEventReload {
			select {
			case reloaded <- struct{}{}:
			default:
			}
		}
	})
	defer cancel()

	ctx, stop := context.WithCancel(context.Background())
	defer stop()
	require.NoError(t, store.Watch(ctx))

	other := newTestStore(t, path)
	session := domain.SessionData{DID: "did:plc:alice", AccessJwt: "watched-access", RefreshJwt: "watched-refresh"}
	require.NoError(t, other.UpdateSession("did:plc:alice", session))

	select {
	case <-reloaded:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload event")
	}

	account, err := store.Get("did:plc:alice")
	require.NoError(t, err)
	assert.Equal(t, "watched-access", account.Session.AccessJwt)
}

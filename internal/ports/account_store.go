package ports

import "github.com/bnema/bsky-accounts-cli/internal/domain"

type StoreEventKind string

const (
	// StoreEventUpsert fires when an account record is added or replaced.
	StoreEventUpsert StoreEventKind = "upsert"
	// StoreEventRemove fires when an account record is deleted.
	StoreEventRemove StoreEventKind = "remove"
	// StoreEventSession fires when only an account's credential bundle changed.
	StoreEventSession StoreEventKind = "session"
	// StoreEventActive fires when the active pointer changed.
	StoreEventActive StoreEventKind = "active"
	// StoreEventReload fires when the backing document was rewritten by
	// another process and reloaded wholesale. DID is empty; subscribers must
	// re-check whatever state they mirror.
	StoreEventReload StoreEventKind = "reload"
)

type StoreEvent struct {
	Kind StoreEventKind
	DID  domain.DID
}

// AccountStore is the durable, observable record of registered accounts and
// the active selection. All mutating calls notify subscribers synchronously
// after the mutation is committed, in registration order.
type AccountStore interface {
	// Accounts returns a snapshot of the collection in stored order.
	Accounts() []domain.Account
	Get(did domain.DID) (domain.Account, error)
	// Upsert replaces the record matching the account's DID in place, or
	// appends a new record when the DID is unknown.
	Upsert(account domain.Account) error
	Remove(did domain.DID) error
	// UpdateSession overwrites only the credential bundle of an existing
	// record and emits a StoreEventSession.
	UpdateSession(did domain.DID, session domain.SessionData) error

	// Active returns the active DID. When the pointer is unset and at least
	// one account exists, the first account is adopted as active and that
	// choice is persisted before returning; repeated reads are idempotent.
	// An empty store yields an empty DID.
	Active() (domain.DID, error)
	// SetActive assigns the active pointer. A known DID is moved to the front
	// of the collection, preserving the relative order of the rest. An empty
	// DID clears the pointer.
	SetActive(did domain.DID) error

	// Subscribe registers an observer for committed mutations. The returned
	// cancel detaches it; after cancel returns no further calls are made.
	Subscribe(fn func(StoreEvent)) (cancel func())
}

package domain

import "time"

// DID is the decentralized identifier of a registered account. It is assigned
// by the service at session creation and never changes afterwards.
type DID string

type Account struct {
	DID           DID
	Service       string
	Session       SessionData
	IsAppPassword bool
	Profile       *ProfileData
}

// ProfileData is cached display metadata. It is advisory: nothing in the
// session lifecycle depends on it being present or current.
type ProfileData struct {
	DisplayName string
	Avatar      string
	IndexedAt   time.Time
}

package domain

// SessionData is the credential bundle issued by com.atproto.server.createSession
// and rotated by refreshSession. The token pair is time-limited and mutable;
// everything else identifies the account the tokens belong to.
type SessionData struct {
	DID        DID
	Handle     string
	Email      string
	AccessJwt  string
	RefreshJwt string
}

// SameTokens reports whether both sessions carry an identical token pair.
// Comparison is exact: a refreshed session never reuses either JWT.
func (s SessionData) SameTokens(other SessionData) bool {
	return s.AccessJwt == other.AccessJwt && s.RefreshJwt == other.RefreshJwt
}

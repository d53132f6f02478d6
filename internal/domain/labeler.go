package domain

// LabelerService identifies a moderation labeler whose labels agents request
// alongside every response. Redact asks the service to remove matched content
// outright instead of just labelling it.
type LabelerService struct {
	DID    DID
	Redact bool
}

package common

import "errors"

// Sentinel errors shared across the core. Callers classify with errors.Is;
// repositories translate storage-level errors (gorm.ErrRecordNotFound,
// duplicate-key violations) into these before they leave the package.
var (
	// Vault
	ErrKeyUnavailable = errors.New("vault: no encryption key in context")
	ErrIntegrity      = errors.New("vault: ciphertext failed integrity check")

	// Social graph
	ErrInvalidTransition = errors.New("relationship: invalid status transition")
	ErrSelfReference     = errors.New("relationship: self-referential edge rejected")
	ErrDuplicateEdge     = errors.New("relationship: edge already exists")

	// Access policy. Denied lookups are reported as ErrNotFound so a caller
	// cannot distinguish content that is hidden from content that does not exist.
	ErrNotFound = errors.New("not found")

	// Engagement aggregator
	ErrStaleWrite = errors.New("engagement: counter row changed underneath update")
	ErrTransient  = errors.New("transient failure, retries exhausted")

	// Trending pipeline
	ErrWindowUnavailable = errors.New("trending: event window unavailable")
)

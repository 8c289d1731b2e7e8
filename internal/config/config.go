// Package config holds process-level configuration shared across the
// operator. Values are bound to command-line flags in cmd/main.go.
package config

import "time"

var (
	// DefaultLength is the length of generated string values when the
	// generation spec does not give an explicit "length" parameter.
	DefaultLength = 32

	// RequeueInterval is how long after a successful reconciliation a Secret
	// is reconciled again. The periodic pass heals missed watch events.
	RequeueInterval = 5 * time.Minute

	// MaxConcurrentReconciles bounds how many distinct Secrets are
	// reconciled in parallel. Events for the same Secret are always
	// serialized by the workqueue.
	MaxConcurrentReconciles = 2
)

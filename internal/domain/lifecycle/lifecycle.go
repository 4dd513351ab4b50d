// Package lifecycle holds shared bounds for start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds fx start/stop hooks and graceful shutdowns.
const DefaultTimeout = 10 * time.Second

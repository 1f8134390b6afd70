// Package lifecycle holds settings shared by components with start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds how long a start or stop hook may take.
const DefaultTimeout = 10 * time.Second

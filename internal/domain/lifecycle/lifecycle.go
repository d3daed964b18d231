// Package lifecycle holds timeouts used by fx start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds graceful shutdown of servers and clients.
const DefaultTimeout = 10 * time.Second

// ErrorLogTimeout bounds the detached write of an error log record.
const ErrorLogTimeout = 5 * time.Second

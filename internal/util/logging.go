// Package util provides common utilities: logging helpers, data-directory
// resolution, and small value helpers shared across packages.
package util

import (
	"io"
	"log"
)

// LogError logs an error with context if it is non-nil.
func LogError(context string, err error) {
	if err != nil {
		log.Printf("%s: %v", context, err)
	}
}

// LogClose closes c and logs a non-nil close error. Meant for defers.
func LogClose(context string, c io.Closer) {
	if c == nil {
		return
	}
	LogError(context, c.Close())
}

// MustSucceed logs and exits on error. Use sparingly.
func MustSucceed(context string, err error) {
	if err != nil {
		log.Fatalf("%s: %v", context, err)
	}
}

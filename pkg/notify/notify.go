// Package notify is the user-facing notification surface. Delivery is
// fire-and-forget: callers never learn whether a message was seen.
package notify

import "log"

// Notifier delivers one-shot success or error messages to the user.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// Log writes notifications to the standard logger.
type Log struct{}

func (Log) Success(msg string) { log.Printf("ok: %s", msg) }
func (Log) Error(msg string)   { log.Printf("error: %s", msg) }

// Discard drops every notification. Useful in tests.
type Discard struct{}

func (Discard) Success(string) {}
func (Discard) Error(string)   {}

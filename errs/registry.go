// Package errs implements the last-error registry the fluent core reports
// failures through: every failing operation records one entry here instead
// of returning an error up the chain, so a chain stays continuable after a
// failure (see cad.Shape).
package errs

import (
	"sync"
	"time"

	"github.com/darrenoakey/daz-cad-sub000/internal/diag"
)

// Entry is one captured failure: the operation that failed, a
// human-readable message, the underlying cause (if any), and when it was
// recorded.
type Entry struct {
	Operation string
	Message   string
	Cause     error
	Timestamp time.Time
}

// Registry holds the single most recent Entry. The zero value is ready to
// use; Global is the registry the cad package reports through.
type Registry struct {
	mu   sync.Mutex
	last *Entry
}

// Global is the process-wide registry cad.Shape operations record into.
var Global = &Registry{}

// Record captures a failure, overwriting whatever was previously recorded.
func (r *Registry) Record(operation, message string, cause error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.last = &Entry{
		Operation: operation,
		Message:   message,
		Cause:     cause,
		Timestamp: time.Now(),
	}
	diag.Record(operation, message, cause)
}

// GetLastError returns the most recently recorded entry, or nil if none has
// been recorded since the last Clear.
func (r *Registry) GetLastError() *Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.last == nil {
		return nil
	}
	cp := *r.last
	return &cp
}

// ClearLastError discards the recorded entry.
func (r *Registry) ClearLastError() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.last = nil
}

// Error satisfies the error interface so an Entry can be returned or wrapped
// directly where a caller wants one, even though the fluent core itself
// never returns errors from chained operations.
func (e *Entry) Error() string {
	if e == nil {
		return ""
	}
	if e.Cause != nil {
		return e.Operation + ": " + e.Message + ": " + e.Cause.Error()
	}
	return e.Operation + ": " + e.Message
}

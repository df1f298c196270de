package journal

import (
	"context"
	"time"
)

// Entry is one journal row: the outcome of a single batch item.
type Entry struct {
	// ID is the entry's unique identifier (UUID v4).
	ID string `json:"id"`

	// RunID groups every entry written by one batch invocation.
	RunID string `json:"run_id"`

	// Server is the resolved server name, empty when resolution failed.
	Server string `json:"server,omitempty"`

	// ObjectName and ObjectKind identify the exported object.
	ObjectName string `json:"object_name"`
	ObjectKind string `json:"object_kind"`

	// Target is the output file path, or "console" for passthrough.
	Target string `json:"target,omitempty"`

	// Status is the item's terminal status (completed, skipped, failed).
	Status string `json:"status"`

	// Error holds the failure text for skipped and failed items.
	Error string `json:"error,omitempty"`

	// BytesWritten counts encoded bytes that reached the target file.
	BytesWritten int64 `json:"bytes_written,omitempty"`

	StartedTime  time.Time `json:"started_time"`
	FinishedTime time.Time `json:"finished_time"`
}

// Query filters journal entries. Zero-valued fields are ignored.
type Query struct {
	RunID  string
	Server string
	Status string

	// Since and Until bound StartedTime.
	Since *time.Time
	Until *time.Time

	// Limit caps the result set; 0 means the backend default of 100.
	Limit  int
	Offset int
}

// Journal records and queries export outcomes.
type Journal interface {
	// Record persists one entry.
	Record(ctx context.Context, entry *Entry) error

	// Query returns entries matching the query, newest first.
	Query(ctx context.Context, q *Query) ([]*Entry, error)

	// Close releases backend resources.
	Close() error
}

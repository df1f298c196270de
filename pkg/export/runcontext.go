package export

import (
	"os/user"
	"time"

	"github.com/google/uuid"
)

// fileTimestampLayout is the timestamp format embedded in auto-derived
// filenames.
const fileTimestampLayout = "20060102150405"

// RunContext carries the identity and timing values captured once at the
// start of a batch and shared, read-only, by every stage. It replaces ambient
// process state: the acting user and timestamp are resolved exactly once, so
// all auto-derived filenames in the same invocation agree.
type RunContext struct {
	// ActingUser is the OS identity of the user running the export.
	ActingUser string

	// CommandName is the invoking command, recorded in script headers.
	CommandName string

	// Timestamp is the shared batch timestamp.
	Timestamp time.Time

	// RunID correlates journal entries and log lines for one batch.
	RunID string
}

// NewRunContext captures a run context for the given command name. The acting
// user falls back to "unknown" when the OS lookup fails.
func NewRunContext(commandName string) RunContext {
	actingUser := "unknown"
	if u, err := user.Current(); err == nil && u.Username != "" {
		actingUser = u.Username
	}

	return RunContext{
		ActingUser:  actingUser,
		CommandName: commandName,
		Timestamp:   time.Now(),
		RunID:       uuid.NewString(),
	}
}

// FileTimestamp returns the batch timestamp formatted for filenames.
func (rc RunContext) FileTimestamp() string {
	return rc.Timestamp.Format(fileTimestampLayout)
}

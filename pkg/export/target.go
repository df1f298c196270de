package export

import (
	"fmt"
	"os"
	"strings"
)

// TargetType distinguishes file output from console passthrough.
type TargetType string

const (
	// TargetFile writes script text to a file on disk.
	TargetFile TargetType = "file"
	// TargetConsole returns script text to the caller's stream.
	TargetConsole TargetType = "console"
)

// Target is the output destination chosen for one batch item. Exactly one
// Target is planned per input object.
type Target struct {
	Type   TargetType
	Path   string
	Append bool
}

// String returns the target path, or "console" for passthrough targets.
func (t *Target) String() string {
	if t.Type == TargetConsole {
		return "console"
	}
	return t.Path
}

// PlanTarget decides the output target for one batch item.
//
// Rules, in order: passthru routes to the console and skips all path logic;
// an explicit path is used verbatim; otherwise the path is derived as
// <server>-<kind>-<timestamp>.sql, with every backslash in the server name
// replaced by a dollar sign to keep the filename filesystem-safe. The
// timestamp comes from the shared run context, so all derived names in one
// batch agree.
//
// Planning is pure; existence conflicts are checked separately with
// CheckConflict once the effective append mode is known.
func PlanTarget(explicitPath, serverName, kindName string, rc RunContext, passthru bool) *Target {
	if passthru {
		return &Target{Type: TargetConsole}
	}

	if explicitPath != "" {
		return &Target{Type: TargetFile, Path: explicitPath}
	}

	safeName := strings.ReplaceAll(serverName, `\`, "$")
	path := fmt.Sprintf("%s-%s-%s.sql", safeName, kindName, rc.FileTimestamp())
	return &Target{Type: TargetFile, Path: path}
}

// CheckConflict reports a *ConflictError when the target file already exists
// and append mode is not in effect. Console targets never conflict.
func (t *Target) CheckConflict(appendMode bool) error {
	if t.Type != TargetFile || appendMode {
		return nil
	}
	if _, err := os.Stat(t.Path); err == nil {
		return NewConflictError(t.Path)
	}
	return nil
}

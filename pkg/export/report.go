package export

import "time"

// Status is the terminal state of one batch item. Items move strictly
// forward: Received -> Resolving -> Planning -> Writing, ending in exactly
// one of these states.
type Status string

const (
	// StatusCompleted means the item's script text reached its target.
	StatusCompleted Status = "completed"
	// StatusSkipped means the item was skipped (pre-existing-file conflict
	// or a declined confirmation) and nothing was written.
	StatusSkipped Status = "skipped"
	// StatusFailed means resolution, scripting or writing failed.
	StatusFailed Status = "failed"
)

// ItemResult records the outcome of one batch item. Err holds the structured
// failure (ResolutionError, ConflictError, WriteError, ScriptError) when the
// item did not complete.
type ItemResult struct {
	ObjectName string    `json:"object_name"`
	ObjectKind string    `json:"object_kind"`
	Server     string    `json:"server,omitempty"`
	Target     string    `json:"target,omitempty"`
	Status     Status    `json:"status"`
	Bytes      int64     `json:"bytes,omitempty"`
	Error      string    `json:"error,omitempty"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`

	// Script carries the emitted text block for console passthrough items.
	Script string `json:"-"`

	// Err is the structured error behind the Error string.
	Err error `json:"-"`
}

// fail marks the item failed with the given error.
func (it *ItemResult) fail(err error) {
	it.Status = StatusFailed
	it.Err = err
	it.Error = err.Error()
}

// skip marks the item skipped, optionally recording the cause.
func (it *ItemResult) skip(err error) {
	it.Status = StatusSkipped
	if err != nil {
		it.Err = err
		it.Error = err.Error()
	}
}

// Report collects the per-item results of one batch run.
type Report struct {
	RunID      string        `json:"run_id"`
	StartedAt  time.Time     `json:"started_at"`
	FinishedAt time.Time     `json:"finished_at"`
	Items      []*ItemResult `json:"items"`
}

// Completed returns the number of items that exported successfully.
func (r *Report) Completed() int { return r.count(StatusCompleted) }

// Skipped returns the number of items skipped by conflicts or confirmation.
func (r *Report) Skipped() int { return r.count(StatusSkipped) }

// Failed returns the number of items that failed.
func (r *Report) Failed() int { return r.count(StatusFailed) }

func (r *Report) count(s Status) int {
	n := 0
	for _, it := range r.Items {
		if it.Status == s {
			n++
		}
	}
	return n
}

// Scripts returns the console passthrough text blocks in input order, one per
// completed passthrough item.
func (r *Report) Scripts() []string {
	var out []string
	for _, it := range r.Items {
		if it.Script != "" {
			out = append(out, it.Script)
		}
	}
	return out
}

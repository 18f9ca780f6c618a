package loadq

import (
	"fmt"
	"time"
)

// InvalidTTLError rejects non-positive TTLs before any store I/O. An entry
// that would expire immediately is never written.
type InvalidTTLError struct {
	TTL time.Duration
}

func (e *InvalidTTLError) Error() string {
	return fmt.Sprintf("loadq: ttl must be positive, got %s", e.TTL)
}

// LoadError wraps a failed load for one source. Nothing is cached from a
// failure, so a retried SmartLoad invokes the loader again.
type LoadError struct {
	SourceID string
	Err      error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("loadq: load %q failed: %v", e.SourceID, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// TaskError reports one failed task during a drain. The dispatcher logs it
// and proceeds; it never aborts sibling tasks.
type TaskError struct {
	Queue string
	Err   error
}

func (e *TaskError) Error() string {
	return fmt.Sprintf("loadq: task on queue %q failed: %v", e.Queue, e.Err)
}

func (e *TaskError) Unwrap() error { return e.Err }

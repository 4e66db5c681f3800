package eventlog

import "time"

// Record is one finalized boundary event. The log is append-only: every
// Nap-Start and Nap-End gets its own row even though the metrics sink only
// receives one consolidated record per completed nap.
type Record struct {
	Timestamp time.Time
	Kind      string
	Actor     string
}

type Appender interface {
	Append(rec Record) error
	// Export returns the raw log bytes for sending back to a user, or nil
	// when nothing has been logged yet.
	Export() ([]byte, error)
}

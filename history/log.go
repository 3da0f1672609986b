package history

import (
	"sync"

	"github.com/katalvlaran/sortlab/runner"
)

// Log accumulates run batches for the lifetime of a session.
// The zero value is an empty, ready-to-use log.
type Log struct {
	mu sync.RWMutex

	records []runner.Record // every record, arrival order
	starts  []int           // starts[i] is the offset of batch i in records
}

// New returns an empty log.
func New() *Log {
	return &Log{}
}

// Append adds the records of batch to the end of the history and makes them
// the current batch. An empty batch still becomes current.
func (l *Log) Append(records []runner.Record) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.starts = append(l.starts, len(l.records))
	l.records = append(l.records, records...)
}

// AppendBatch is Append(b.Records).
func (l *Log) AppendBatch(b runner.Batch) {
	l.Append(b.Records)
}

// Current returns a copy of the most recently appended batch, or nil when
// nothing has been appended yet.
func (l *Log) Current() []runner.Record {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if len(l.starts) == 0 {
		return nil
	}
	return cloneRecords(l.records[l.starts[len(l.starts)-1]:])
}

// All returns a copy of the full history in arrival order.
func (l *Log) All() []runner.Record {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return cloneRecords(l.records)
}

// Len returns the number of records in the history.
func (l *Log) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return len(l.records)
}

// Batches returns the number of appended batches.
func (l *Log) Batches() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return len(l.starts)
}

// cloneRecords returns a copy of rs that never aliases the log's storage.
func cloneRecords(rs []runner.Record) []runner.Record {
	out := make([]runner.Record, len(rs))
	copy(out, rs)
	return out
}

package ingest

import "sync"

// tally accumulates run counters across the table goroutines.
type tally struct {
	mu          sync.Mutex
	tables      int
	stateValues int
	zonalValues int
	skipped     []string
}

func newTally() *tally {
	return &tally{}
}

func (t *tally) table() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.tables++
}

func (t *tally) state() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stateValues++
}

func (t *tally) zonal() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.zonalValues++
}

func (t *tally) skip(reason string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.skipped = append(t.skipped, reason)
}

func (t *tally) result() *Result {
	t.mu.Lock()
	defer t.mu.Unlock()
	return &Result{
		Tables:      t.tables,
		StateValues: t.stateValues,
		ZonalValues: t.zonalValues,
		Skipped:     t.skipped,
	}
}

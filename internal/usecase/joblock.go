package usecase

import "sync"

// jobLocks serializes mutating operations per job id. All invariants are
// job-scoped, so no cross-job lock ever exists. Entries are refcounted and
// removed once the last holder releases, keeping the map bounded by the
// number of in-flight requests.

type jobLocks struct {
	mu   sync.Mutex
	held map[string]*jobLock
}

type jobLock struct {
	mu   sync.Mutex
	refs int
}

func newJobLocks() *jobLocks {
	return &jobLocks{held: make(map[string]*jobLock)}
}

// lock blocks until the caller holds the exclusive lock for jobID and returns
// the release function.
func (l *jobLocks) lock(jobID string) func() {
	l.mu.Lock()
	entry, ok := l.held[jobID]
	if !ok {
		entry = &jobLock{}
		l.held[jobID] = entry
	}
	entry.refs++
	l.mu.Unlock()

	entry.mu.Lock()

	return func() {
		entry.mu.Unlock()

		l.mu.Lock()
		entry.refs--
		if entry.refs == 0 {
			delete(l.held, jobID)
		}
		l.mu.Unlock()
	}
}

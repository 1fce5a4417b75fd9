package services

import "sync"

// TableLocker hands out one mutex per table so that occupancy transitions
// on the same table serialize against each other while operations on
// different tables never block one another. The process is the single
// writer for occupancy state, so an in-process lock keyed by table ID is
// sufficient; the partial unique index on open sessions backstops it at
// the store level.
type TableLocker struct {
	mu    sync.Mutex
	locks map[uint]*sync.Mutex
}

func NewTableLocker() *TableLocker {
	return &TableLocker{locks: make(map[uint]*sync.Mutex)}
}

// Lock acquires the mutex for the given table and returns it so callers
// can `defer locker.Lock(id).Unlock()`.
func (l *TableLocker) Lock(tableID uint) *sync.Mutex {
	l.mu.Lock()
	m, ok := l.locks[tableID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[tableID] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m
}

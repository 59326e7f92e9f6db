package service

import "sync"

// courtLocks hands out one mutex per court id; entries are dropped once no
// caller holds or waits on them.
type courtLocks struct {
	mu    sync.Mutex
	locks map[uint]*courtLock
}

type courtLock struct {
	sync.Mutex
	refs int
}

func newCourtLocks() *courtLocks {
	return &courtLocks{locks: make(map[uint]*courtLock)}
}

func (l *courtLocks) lock(courtID uint) func() {
	l.mu.Lock()
	cl, ok := l.locks[courtID]
	if !ok {
		cl = &courtLock{}
		l.locks[courtID] = cl
	}
	cl.refs++
	l.mu.Unlock()

	cl.Lock()
	return func() {
		cl.Unlock()
		l.mu.Lock()
		cl.refs--
		if cl.refs == 0 {
			delete(l.locks, courtID)
		}
		l.mu.Unlock()
	}
}

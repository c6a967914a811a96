package store

import "sync"

// pathLocks serializes updates of the same collection file within the
// process. An entry lives only while a caller holds or waits for it.
type pathLocks struct {
	locks map[string]*pathLock
	mu    sync.Mutex
}

type pathLock struct {
	mu      sync.Mutex
	waiters int
}

var updateLocks = &pathLocks{}

// lock blocks until path is free and returns the matching unlock func.
func (l *pathLocks) lock(path string) func() {
	l.mu.Lock()

	if l.locks == nil {
		l.locks = make(map[string]*pathLock)
	}

	pl, ok := l.locks[path]
	if !ok {
		pl = &pathLock{}
		l.locks[path] = pl
	}

	pl.waiters++
	l.mu.Unlock()

	pl.mu.Lock()

	return func() {
		pl.mu.Unlock()

		l.mu.Lock()
		defer l.mu.Unlock()

		pl.waiters--
		if pl.waiters == 0 {
			delete(l.locks, path)
		}
	}
}

// held returns the number of paths currently locked or awaited.
func (l *pathLocks) held() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.locks)
}

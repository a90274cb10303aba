package service

import "sync"

// keyedMutex serializes work per key. Mutating subscription operations lock
// on the subscription id so each read-modify-write against a record is
// atomic within the process; without this, two concurrent redemptions could
// both read the same usedVisits and silently lose one.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newKeyedMutex() *keyedMutex {
	return &keyedMutex{locks: make(map[string]*sync.Mutex)}
}

// lock acquires the mutex for key and returns its unlock func. Mutexes are
// never evicted; the key space here is subscription ids, which stays small.
func (k *keyedMutex) lock(key string) func() {
	k.mu.Lock()
	m, ok := k.locks[key]
	if !ok {
		m = &sync.Mutex{}
		k.locks[key] = m
	}
	k.mu.Unlock()

	m.Lock()
	return m.Unlock
}

package concurrency

import (
	"sort"
	"sync"
)

// LockManager hands out named mutexes. The aggregation engine uses it to
// serialize incremental updates per user aggregate and per region aggregate:
// updates for the same key run one at a time, updates for different keys
// proceed in parallel.
type LockManager struct {
	locks sync.Map
}

// NewLockManager creates a new LockManager
func NewLockManager() *LockManager {
	return &LockManager{}
}

// GetLock returns the mutex for the given key, creating it on first use.
func (lm *LockManager) GetLock(key string) *sync.Mutex {
	lock, _ := lm.locks.LoadOrStore(key, &sync.Mutex{})
	return lock.(*sync.Mutex)
}

// LockKeys acquires the locks for all keys in sorted order and returns a
// function that releases them. Sorting gives a global acquisition order so
// callers holding multiple aggregate locks cannot deadlock each other.
// Duplicate keys are collapsed.
func (lm *LockManager) LockKeys(keys ...string) (unlock func()) {
	unique := make([]string, 0, len(keys))
	seen := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		unique = append(unique, k)
	}
	sort.Strings(unique)

	held := make([]*sync.Mutex, 0, len(unique))
	for _, k := range unique {
		mu := lm.GetLock(k)
		mu.Lock()
		held = append(held, mu)
	}

	return func() {
		for i := len(held) - 1; i >= 0; i-- {
			held[i].Unlock()
		}
	}
}

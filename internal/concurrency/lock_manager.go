package concurrency

import (
	"sync"
)

// LockManager hands out one mutex per account id.
// Mutexes are never removed; profiles are never deleted either.
type LockManager struct {
	locks sync.Map
}

// NewLockManager creates a new LockManager
func NewLockManager() *LockManager {
	return &LockManager{}
}

// GetLock returns the mutex for the given key
func (lm *LockManager) GetLock(key string) *sync.Mutex {
	lock, _ := lm.locks.LoadOrStore(key, &sync.Mutex{})
	return lock.(*sync.Mutex)
}

// Lock acquires the key's mutex and returns the matching unlock func
func (lm *LockManager) Lock(key string) func() {
	m := lm.GetLock(key)
	m.Lock()
	return m.Unlock
}

package database

import "sync"

// keyedMutex hands out one mutex per key. The likes and draft writes are
// read-modify-write cycles over a single row; serializing them per student
// keeps two concurrent likes from losing one of the updates.
type keyedMutex struct {
	mutexes sync.Map
}

// Lock blocks until the mutex for key is held and returns the unlock func.
func (k *keyedMutex) Lock(key string) func() {
	value, _ := k.mutexes.LoadOrStore(key, &sync.Mutex{})
	mutex := value.(*sync.Mutex)
	mutex.Lock()
	return mutex.Unlock
}

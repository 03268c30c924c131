package Trees

import "sync"

// Locked is a BSTree guarded by a sync.RWMutex. Mutations hold the write lock
// and read only methods hold the read lock, so it may be shared between
// goroutines. Iteration isn't offered directly; use Values or Clone to get a
// snapshot.
type Locked[T any] struct {
	mu sync.RWMutex
	t  *BSTree[T]
}

// NewLocked takes over every node of t, leaving t empty.
func NewLocked[T any](t *BSTree[T]) *Locked[T] {
	return &Locked[T]{t: t.Move()}
}

func (u *Locked[T]) Insert(v T) bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.t.Insert(v)
}

func (u *Locked[T]) Remove(v T) bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.t.Remove(v)
}

func (u *Locked[T]) Clear() {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.t.Clear()
}

// Assign replaces the content with a deep copy of src. src is only read.
func (u *Locked[T]) Assign(src *BSTree[T]) {
	c := src.Clone()
	u.mu.Lock()
	u.t.Swap(c)
	u.mu.Unlock()
	c.Clear()
}

func (u *Locked[T]) Has(v T) bool {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.t.Has(v)
}

func (u *Locked[T]) Minimum() (T, error) {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.t.Minimum()
}

func (u *Locked[T]) Maximum() (T, error) {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.t.Maximum()
}

func (u *Locked[T]) Size() uint {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.t.Size()
}

func (u *Locked[T]) Values() []T {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.t.Values()
}

// Clone returns an unguarded deep copy.
func (u *Locked[T]) Clone() *BSTree[T] {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.t.Clone()
}

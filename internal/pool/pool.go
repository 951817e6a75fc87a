// Package pool provides a small generic object pool.
// Used by the parser for Result reuse and by middleware for per-invocation
// bookkeeping objects, keeping repeated dispatches off the allocator.
package pool

import "sync"

// Pool is a type-safe wrapper over sync.Pool with an optional reset hook
type Pool[T any] struct {
	pool  sync.Pool
	reset func(*T) // called before reuse when set
}

// NewPool creates a pool backed by the given factory
func NewPool[T any](factory func() *T) *Pool[T] {
	return &Pool[T]{
		pool: sync.Pool{
			New: func() any {
				return factory()
			},
		},
	}
}

// NewPoolWithReset creates a pool whose objects are reset before reuse
func NewPoolWithReset[T any](factory func() *T, reset func(*T)) *Pool[T] {
	p := NewPool(factory)
	p.reset = reset
	return p
}

// Get retrieves an object from the pool or creates a new one
func (p *Pool[T]) Get() *T {
	obj := p.pool.Get().(*T)
	if p.reset != nil {
		p.reset(obj)
	}
	return obj
}

// Put returns an object to the pool for reuse
func (p *Pool[T]) Put(obj *T) {
	if obj == nil {
		return
	}
	p.pool.Put(obj)
}

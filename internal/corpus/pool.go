package corpus

import (
	"sync"
)

// Pool hands out corpus store handles keyed by worker identity. A worker
// gets its handle lazily on first use and keeps it for its lifetime; no
// handle is ever shared between two workers. After a failure the owning
// worker discards its handle so the next access opens a fresh one.
type Pool struct {
	path string

	mu      sync.Mutex
	handles map[int]*Store
}

// NewPool creates a pool for the corpus at path. No connection is opened
// until a worker asks for one.
func NewPool(path string) *Pool {
	return &Pool{path: path, handles: make(map[int]*Store)}
}

// Get returns the worker's corpus handle, opening it on first use.
func (p *Pool) Get(worker int) (*Store, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if store, ok := p.handles[worker]; ok {
		return store, nil
	}
	store, err := Open(p.path)
	if err != nil {
		return nil, err
	}
	p.handles[worker] = store
	return store, nil
}

// Discard closes and forgets the worker's handle. Safe to call when the
// worker holds no handle.
func (p *Pool) Discard(worker int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if store, ok := p.handles[worker]; ok {
		_ = store.Close()
		delete(p.handles, worker)
	}
}

// Close tears down every handle in the pool. Idempotent.
func (p *Pool) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	var firstErr error
	for worker, store := range p.handles {
		if err := store.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		delete(p.handles, worker)
	}
	return firstErr
}

package dashboard

import (
	"context"
	"sync"
)

// Loader runs successive loads of a view. Starting a load cancels the one in flight,
// and a result is kept only if no newer load started meanwhile, so a slow stale
// response never overwrites a newer one.
type Loader[T any] struct {
	mu      sync.Mutex
	gen     uint64
	cancel  context.CancelFunc
	current T
	loaded  bool
}

// Load runs fn and returns its result and whether it became the current value.
func (l *Loader[T]) Load(ctx context.Context, fn func(ctx context.Context) T) (T, bool) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	l.mu.Lock()
	if l.cancel != nil {
		l.cancel()
	}
	l.gen++
	gen := l.gen
	l.cancel = cancel
	l.mu.Unlock()

	v := fn(ctx)

	l.mu.Lock()
	defer l.mu.Unlock()

	if gen != l.gen {
		return v, false
	}
	l.cancel = nil
	l.current = v
	l.loaded = true
	return v, true
}

// Current returns the last accepted value.
func (l *Loader[T]) Current() (T, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.current, l.loaded
}

// Generation is the number of loads started so far.
func (l *Loader[T]) Generation() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.gen
}

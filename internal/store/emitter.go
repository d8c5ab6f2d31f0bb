package store

import "sync"

// Emitter is a synchronous change notifier. Stores call Notify after a
// mutation has been committed and their locks released, so listeners may read
// the store again.
type Emitter struct {
	mu        sync.Mutex
	nextID    uint64
	listeners []listener
}

type listener struct {
	id uint64
	fn func()
}

// OnChange registers fn and returns a function that removes it. Calling the
// returned function more than once is harmless.
func (e *Emitter) OnChange(fn func()) (unsubscribe func()) {
	e.mu.Lock()
	e.nextID++
	id := e.nextID
	e.listeners = append(e.listeners, listener{id: id, fn: fn})
	e.mu.Unlock()

	return sync.OnceFunc(func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		for i, l := range e.listeners {
			if l.id == id {
				e.listeners = append(e.listeners[:i:i], e.listeners[i+1:]...)
				return
			}
		}
	})
}

// Notify calls every listener in subscription order.
func (e *Emitter) Notify() {
	e.mu.Lock()
	fns := make([]func(), len(e.listeners))
	for i, l := range e.listeners {
		fns[i] = l.fn
	}
	e.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

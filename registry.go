package marquee

import "sync"

// Registry is an explicit owner of live engines for hosts composing
// several marquees on one page or screen. Engine lifetime is scoped to
// registration: Remove and Close destroy what they deregister. There is
// deliberately no package-level registry; whoever composes engines owns
// one.
type Registry struct {
	mu      sync.Mutex
	engines map[*Engine]struct{}
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{engines: make(map[*Engine]struct{})}
}

// Add registers an engine. Re-adding is a no-op.
func (r *Registry) Add(e *Engine) {
	if e == nil {
		return
	}
	r.mu.Lock()
	r.engines[e] = struct{}{}
	r.mu.Unlock()
}

// Remove deregisters an engine and destroys it.
func (r *Registry) Remove(e *Engine) {
	if e == nil {
		return
	}
	r.mu.Lock()
	_, ok := r.engines[e]
	delete(r.engines, e)
	r.mu.Unlock()
	if ok {
		e.Destroy()
	}
}

// Len reports the number of registered engines.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.engines)
}

// PauseAll raises the pause signal on every registered canvas.
func (r *Registry) PauseAll() {
	for _, e := range r.snapshot() {
		e.canvas.SetPaused(true)
	}
}

// ResumeAll clears the pause signal on every registered canvas.
func (r *Registry) ResumeAll() {
	for _, e := range r.snapshot() {
		e.canvas.SetPaused(false)
	}
}

// ResizeAll re-derives geometry on every registered engine. Failures are
// logged and skipped so one broken surface never affects the others.
func (r *Registry) ResizeAll() {
	for _, e := range r.snapshot() {
		if err := e.Resize(); err != nil {
			Logger().Warn("marquee: resize failed", "error", err)
		}
	}
}

// Close destroys and deregisters every engine.
func (r *Registry) Close() {
	r.mu.Lock()
	engines := make([]*Engine, 0, len(r.engines))
	for e := range r.engines {
		engines = append(engines, e)
	}
	r.engines = make(map[*Engine]struct{})
	r.mu.Unlock()
	for _, e := range engines {
		e.Destroy()
	}
}

func (r *Registry) snapshot() []*Engine {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*Engine, 0, len(r.engines))
	for e := range r.engines {
		out = append(out, e)
	}
	return out
}

package testsupport

import (
	"context"
	"sync"

	"regcli/internal/registry"
)

// Recorder is a handler fixture that remembers every invocation it serves.
type Recorder struct {
	mu    sync.Mutex
	calls []*registry.Invocation
	// Err is returned from every call when set.
	Err error
}

// Handler returns a handler declaring params that records into r.
func (r *Recorder) Handler(params ...registry.ParamSpec) registry.Handler {
	return registry.Handler{
		Params: params,
		Run: func(_ context.Context, inv *registry.Invocation) error {
			r.mu.Lock()
			defer r.mu.Unlock()
			r.calls = append(r.calls, inv)
			return r.Err
		},
	}
}

// Calls returns the recorded invocations in order.
func (r *Recorder) Calls() []*registry.Invocation {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*registry.Invocation(nil), r.calls...)
}

// Last returns the most recent invocation, or nil.
func (r *Recorder) Last() *registry.Invocation {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.calls) == 0 {
		return nil
	}
	return r.calls[len(r.calls)-1]
}

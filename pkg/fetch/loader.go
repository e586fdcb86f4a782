// Package fetch provides a generic endpoint-keyed collection loader.
// A Loader owns at most one in-flight fetch at a time: loading the same
// endpoint twice is a no-op, loading a different endpoint cancels the
// previous fetch and starts exactly one new one.
package fetch

import (
	"context"
	"errors"
	"sync"
)

type State int

const (
	StateLoading State = iota
	StateReady
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	default:
		return "loading"
	}
}

var ErrClosed = errors.New("loader closed")

// Result is the loader's exposed snapshot. Items reflects the most
// recent successful response for the current endpoint, or is empty
// before the first response arrives.
type Result[T any] struct {
	State State
	Items []T
	Err   error
}

// FetchFunc issues one request against endpoint and returns the decoded
// collection.
type FetchFunc[T any] func(ctx context.Context, endpoint string) ([]T, error)

type Loader[T any] struct {
	fetch FetchFunc[T]

	mu       sync.Mutex
	endpoint string
	started  bool
	closed   bool
	gen      uint64
	cancel   context.CancelFunc
	res      Result[T]
	settled  chan struct{} // open while the current endpoint has no settled result
}

func NewLoader[T any](fetch FetchFunc[T]) *Loader[T] {
	return &Loader[T]{
		fetch:   fetch,
		settled: make(chan struct{}),
	}
}

// Load makes endpoint the loader's current key. Re-invocation with the
// key already current does nothing; a new key cancels any in-flight
// fetch and issues a single fetch against the new endpoint.
func (l *Loader[T]) Load(ctx context.Context, endpoint string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed || (l.started && l.endpoint == endpoint) {
		return
	}
	l.start(ctx, endpoint)
}

// Reload refetches the current endpoint, cancelling any fetch still in
// flight. It does nothing before the first Load.
func (l *Loader[T]) Reload(ctx context.Context) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed || !l.started {
		return
	}
	l.start(ctx, l.endpoint)
}

// start assumes l.mu is held.
func (l *Loader[T]) start(ctx context.Context, endpoint string) {
	if l.cancel != nil {
		l.cancel()
	}
	if l.started && l.res.State != StateLoading {
		// The previous fetch settled and closed this channel; waiters
		// need a fresh one for the new fetch.
		l.settled = make(chan struct{})
	}
	fctx, cancel := context.WithCancel(ctx)
	l.cancel = cancel
	l.gen++
	gen := l.gen
	l.started = true
	l.endpoint = endpoint
	l.res = Result[T]{State: StateLoading}
	settled := l.settled

	go func() {
		items, err := l.fetch(fctx, endpoint)
		cancel()

		l.mu.Lock()
		defer l.mu.Unlock()
		if gen != l.gen || l.closed {
			// Superseded by a newer fetch or torn down; the stale
			// result must not overwrite current state.
			return
		}
		if err != nil {
			l.res = Result[T]{State: StateFailed, Err: err}
		} else {
			l.res = Result[T]{State: StateReady, Items: items}
		}
		close(settled)
	}()
}

// Result returns the current snapshot without blocking.
func (l *Loader[T]) Result() Result[T] {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.res
}

// Endpoint returns the loader's current key, empty before the first Load.
func (l *Loader[T]) Endpoint() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.endpoint
}

// Wait blocks until the current fetch settles and returns its result.
// Waiting before the first Load blocks until one is issued and settles.
func (l *Loader[T]) Wait(ctx context.Context) (Result[T], error) {
	for {
		l.mu.Lock()
		res := l.res
		settled := l.settled
		started := l.started
		l.mu.Unlock()

		if started && res.State != StateLoading {
			return res, nil
		}
		select {
		case <-ctx.Done():
			return res, ctx.Err()
		case <-settled:
		}
	}
}

// Close cancels any in-flight fetch and releases waiters. A closed
// loader ignores further Load and Reload calls.
func (l *Loader[T]) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return
	}
	l.closed = true
	l.gen++
	if l.cancel != nil {
		l.cancel()
	}
	if !l.started || l.res.State == StateLoading {
		l.res = Result[T]{State: StateFailed, Err: ErrClosed}
		l.started = true
		close(l.settled)
	}
}

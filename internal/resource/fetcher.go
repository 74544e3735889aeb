// Package resource provides the loading/error/data state machines that back
// every screen: a Fetcher per read resource and a Mutation per write
// operation. Both are cooperative and non-throwing; callers inspect state
// instead of handling errors.
package resource

import (
	"context"
	"sync"

	"github.com/nyunja/fity-cli/internal/api"
)

// State is the lifecycle of a Fetcher.
type State int

const (
	// StateIdle means no fetch has started yet.
	StateIdle State = iota
	// StateLoading means a fetch is in flight.
	StateLoading
	// StateSuccess means the last fetch stored a payload.
	StateSuccess
	// StateError means the last fetch stored an error message.
	StateError
)

// Fetcher wraps a zero-argument loader with loading/error/data state. It is
// reusable indefinitely: success and error both transition back to loading
// on the next Fetch. Overlapping fetches are neither coalesced nor
// cancelled; the last response to resolve wins.
type Fetcher[T any] struct {
	loader  func(context.Context) (T, error)
	errMsg  string
	data    T
	mu      sync.Mutex
	state   State
	hasData bool
	// Auto mirrors the owning screen's fetch-on-mount flag; callers that
	// honour it trigger the first Fetch themselves.
	Auto bool
}

// NewFetcher wraps loader. Auto defaults to true, matching screens that
// fetch on mount.
func NewFetcher[T any](loader func(context.Context) (T, error)) *Fetcher[T] {
	return &Fetcher[T]{loader: loader, Auto: true}
}

// Fetch runs the loader once: state moves to loading and the previous error
// clears, then to success or error depending on the outcome. Safe to call
// again at any time; also serves as refetch.
func (f *Fetcher[T]) Fetch(ctx context.Context) {
	f.mu.Lock()
	f.state = StateLoading
	f.errMsg = ""
	f.mu.Unlock()

	data, err := f.loader(ctx)

	f.mu.Lock()
	defer f.mu.Unlock()
	if err != nil {
		f.state = StateError
		f.errMsg = api.Message(err)
		return
	}
	f.state = StateSuccess
	f.data = data
	f.hasData = true
}

// State returns the current lifecycle state.
func (f *Fetcher[T]) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Loading reports whether a fetch is in flight.
func (f *Fetcher[T]) Loading() bool {
	return f.State() == StateLoading
}

// Data returns the stored payload and whether one exists. A payload from a
// previous success stays visible while a refetch is in flight and even
// after a failed refetch; it is only ever replaced, never cleared.
func (f *Fetcher[T]) Data() (T, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.data, f.hasData
}

// Err returns the stored human-readable error message, empty outside the
// error state.
func (f *Fetcher[T]) Err() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.errMsg
}

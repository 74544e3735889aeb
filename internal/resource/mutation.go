package resource

import (
	"context"
	"sync"

	"github.com/nyunja/fity-cli/internal/api"
)

// Result is what Mutate hands back instead of an error; callers branch on
// Success.
type Result[Out any] struct {
	Error   string
	Data    Out
	Success bool
}

// Mutation wraps a one-argument write operation with loading and error
// state. Concurrent Mutate calls are allowed, but the shared loading flag
// only tracks the most recently started call and clears when either call
// finishes.
type Mutation[In, Out any] struct {
	op     func(context.Context, In) (Out, error)
	errMsg string
	mu     sync.Mutex
	busy   bool
}

// NewMutation wraps op.
func NewMutation[In, Out any](op func(context.Context, In) (Out, error)) *Mutation[In, Out] {
	return &Mutation[In, Out]{op: op}
}

// Mutate runs the operation and reports the outcome without ever returning
// an error to the caller.
func (m *Mutation[In, Out]) Mutate(ctx context.Context, input In) Result[Out] {
	m.mu.Lock()
	m.busy = true
	m.errMsg = ""
	m.mu.Unlock()

	data, err := m.op(ctx, input)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.busy = false
	if err != nil {
		m.errMsg = api.Message(err)
		return Result[Out]{Success: false, Error: m.errMsg}
	}
	return Result[Out]{Success: true, Data: data}
}

// Loading reports whether a mutation is in flight. With overlapping calls
// this clears as soon as the first one finishes.
func (m *Mutation[In, Out]) Loading() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.busy
}

// Err returns the most recent failure message, empty after a success.
func (m *Mutation[In, Out]) Err() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.errMsg
}

// Package future adapts synchronous stub outcomes into asynchronous results.
//
// The engine always answers a call immediately. Doubles for collaborators whose
// methods return asynchronously wrap that answer in a Future, so the code under
// test sees the same shape it gets from the real collaborator.
package future

import (
	"context"
	"fmt"
	"sync"
)

// Future is the eventual result of a function run on another goroutine.
type Future[T any] struct {
	done chan struct{}
	once sync.Once

	value T
	err   error
}

// Go runs fn on a new goroutine and returns a Future for its outcome.
// A panic inside fn resolves the future with a *PanicError.
func Go[T any](fn func() (T, error)) *Future[T] {
	fut := &Future[T]{done: make(chan struct{})}

	go func() {
		defer func() {
			if p := recover(); p != nil {
				var zero T

				fut.resolve(zero, &PanicError{Value: p})
			}
		}()

		value, err := fn()
		fut.resolve(value, err)
	}()

	return fut
}

// Resolved returns a Future that is already complete.
func Resolved[T any](value T, err error) *Future[T] {
	fut := &Future[T]{done: make(chan struct{})}
	fut.resolve(value, err)

	return fut
}

// Await blocks until the future resolves or ctx is done.
// When ctx ends first, ctx.Err() is returned and the future keeps running.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		var zero T

		return zero, ctx.Err()
	}
}

// Done is closed once the future resolves.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

func (f *Future[T]) resolve(value T, err error) {
	f.once.Do(func() {
		f.value = value
		f.err = err
		close(f.done)
	})
}

// PanicError carries the value a future's function panicked with.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("future panicked: %v", e.Value)
}

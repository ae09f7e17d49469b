// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package future provides a one-shot completion slot that can be
// polled without blocking. It is used to hand the result of an
// asynchronous operation, such as GPU device creation in a browser,
// back to a single-threaded event loop.
package future

import (
	"fmt"
	"sync"
)

// Future is a one-shot result of type T that is resolved at most once
// and taken at most once. It is safe to resolve from any goroutine;
// it is meant to be taken from the goroutine that owns it.
type Future[T any] struct {
	mu       sync.Mutex
	resolved bool
	taken    bool
	value    T
	err      error
}

// Resolve completes a [Future]. Only the first call has any effect.
type Resolve[T any] func(v T, err error)

// NewPromise returns a new unresolved [Future] and the function
// that resolves it, for use with callback based APIs.
func NewPromise[T any]() (*Future[T], Resolve[T]) {
	f := &Future[T]{}
	return f, f.resolve
}

// Go runs fn in a new goroutine and returns a [Future] resolved with
// its result. A panic in fn resolves the future with an error.
func Go[T any](fn func() (T, error)) *Future[T] {
	f := &Future[T]{}
	go func() {
		defer func() {
			if r := recover(); r != nil {
				var zero T
				f.resolve(zero, fmt.Errorf("future: panic: %v", r))
			}
		}()
		f.resolve(fn())
	}()
	return f
}

// Ready returns a [Future] that is already resolved with the given result.
func Ready[T any](v T, err error) *Future[T] {
	f := &Future[T]{}
	f.resolve(v, err)
	return f
}

func (f *Future[T]) resolve(v T, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.resolved {
		return
	}
	f.resolved = true
	f.value = v
	f.err = err
}

// Done returns whether the future has been resolved, without taking it.
func (f *Future[T]) Done() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.resolved
}

// TryTake returns the result and ok == true exactly once, on the
// first call after the future is resolved. It never blocks: before
// resolution and after the result has been taken it returns ok == false.
func (f *Future[T]) TryTake() (v T, err error, ok bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.resolved || f.taken {
		return v, nil, false
	}
	f.taken = true
	v, err = f.value, f.err
	var zero T
	f.value, f.err = zero, nil
	return v, err, true
}

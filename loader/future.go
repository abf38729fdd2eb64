// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package loader

import (
	"context"
	"sync/atomic"
)

// Future is a single-assignment completion signal with two producers:
// Succeed and Fail. The first call resolves it; every later call returns
// false and changes nothing. Any number of goroutines may Wait.
type Future struct {
	resolved atomic.Bool
	done     chan struct{}
	err      error // written once before done is closed
}

// NewFuture returns an unresolved Future.
func NewFuture() *Future {
	return &Future{done: make(chan struct{})}
}

// Succeed resolves f with no error. It reports whether this call won.
func (f *Future) Succeed() bool {
	return f.resolve(nil)
}

// Fail resolves f with err. A nil err is replaced with ErrUnknown so that a
// failure is never mistaken for success. It reports whether this call won.
func (f *Future) Fail(err error) bool {
	if err == nil {
		err = ErrUnknown
	}
	return f.resolve(err)
}

func (f *Future) resolve(err error) bool {
	if !f.resolved.CompareAndSwap(false, true) {
		return false
	}
	f.err = err
	close(f.done)
	return true
}

// Done returns a channel closed once f is resolved.
func (f *Future) Done() <-chan struct{} {
	return f.done
}

// Resolved reports whether f has been resolved.
func (f *Future) Resolved() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Err returns the outcome: nil after Succeed, the carried error after Fail.
// It returns ErrPending while f is unresolved.
func (f *Future) Err() error {
	select {
	case <-f.done:
		return f.err
	default:
		return ErrPending
	}
}

// Wait blocks until f is resolved or ctx ends, and returns the outcome.
// If ctx ends first, Wait returns ctx.Err() and f stays unresolved.
func (f *Future) Wait(ctx context.Context) error {
	select {
	case <-f.done:
		return f.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

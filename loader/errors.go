// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package loader

import (
	"errors"
	"fmt"
)

// Errors.
var (
	// ErrEmptyID is returned when Load is called without a resource id.
	ErrEmptyID = errors.New("loader: empty resource id")

	// ErrNotFound is returned when the fetcher has no such resource.
	ErrNotFound = errors.New("loader: resource not found")

	// ErrPending is returned by Future.Err before resolution.
	ErrPending = errors.New("loader: pending")

	// ErrUnknown replaces a nil error passed to Future.Fail.
	ErrUnknown = errors.New("loader: unknown failure")
)

// LoadError records which resource failed and at which step.
type LoadError struct {
	ID  string
	Op  string // "fetch" or "decode"
	Err error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("loader: %s %q: %v", e.Op, e.ID, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

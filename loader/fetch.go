// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package loader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
)

// Fetcher opens a resource by id.
type Fetcher interface {
	Fetch(ctx context.Context, id string) (io.ReadCloser, error)
}

// FetcherFunc adapts a function to Fetcher.
type FetcherFunc func(ctx context.Context, id string) (io.ReadCloser, error)

// Fetch calls f.
func (f FetcherFunc) Fetch(ctx context.Context, id string) (io.ReadCloser, error) {
	return f(ctx, id)
}

// FSFetcher fetches resources from a file system. Ids are fs.FS paths
// (slash separated, unrooted); file names may contain spaces.
type FSFetcher struct {
	FS fs.FS
}

// Fetch opens id in f.FS. A missing file is reported as ErrNotFound.
func (f FSFetcher) Fetch(ctx context.Context, id string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !fs.ValidPath(id) {
		return nil, fmt.Errorf("invalid path %q: %w", id, fs.ErrInvalid)
	}
	file, err := f.FS.Open(id)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %w", ErrNotFound, err)
		}
		return nil, err
	}
	return file, nil
}

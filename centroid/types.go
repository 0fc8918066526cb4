// SPDX-License-Identifier: MIT
// Package: treedist/centroid
//
// types.go - options, sentinel errors and the Decomposition value.
//
// Contract:
//   - Build options (Option) never fail: nil arguments are ignored and the
//     default kept.
//   - Query options (QueryOption) record invalid values; DistMany returns
//     them wrapped in ErrOptionViolation before doing any work.
//   - A Decomposition has no mutators and is safe for concurrent readers.

package centroid

import (
	"context"
	"errors"
	"fmt"
	"runtime"
)

// Sentinel errors for decomposition and queries.
var (
	// ErrNilTree is returned when Build receives a nil tree.
	ErrNilTree = errors.New("centroid: tree is nil")

	// ErrVertexOutOfRange indicates a query vertex outside [0, n).
	ErrVertexOutOfRange = errors.New("centroid: vertex index out of range")

	// ErrOptionViolation is returned when an invalid option is supplied.
	ErrOptionViolation = errors.New("centroid: invalid option supplied")
)

// Entry is one step of a vertex trail: a centroid whose component contained
// the vertex and the edge distance from the vertex to it.
type Entry struct {
	Centroid int
	Dist     int
}

// Pair is a query (A, B) for DistMany.
type Pair struct {
	A, B int
}

// Option configures Build.
// Complexity: applying N options costs O(N) time, O(1) space.
type Option func(*BuildOptions)

// BuildOptions holds parameters and callbacks for Build.
type BuildOptions struct {
	// Ctx allows cancellation; checked once per extracted centroid.
	Ctx context.Context

	// OnCentroid is called after a centroid is chosen and before its
	// component is labelled. level is its depth in the centroid tree and
	// size the vertex count of its component. A non-nil error aborts Build.
	OnCentroid func(c, level, size int) error
}

// DefaultOptions returns BuildOptions with sane defaults:
//   - context.Background()
//   - a no-op OnCentroid hook.
func DefaultOptions() BuildOptions {
	return BuildOptions{
		Ctx:        context.Background(),
		OnCentroid: func(int, int, int) error { return nil },
	}
}

// WithContext sets a custom context for cancellation. Build checks it once
// per extracted centroid and returns ctx.Err(); removal marks are still
// restored. nil is ignored.
// Complexity: O(1) time, O(1) space.
func WithContext(ctx context.Context) Option {
	return func(o *BuildOptions) {
		// keep Background rather than fail later on a nil Done channel
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnCentroid registers a hook run once per vertex, in extraction order
// (the root centroid first). A non-nil error aborts Build and is returned
// wrapped; removal marks are still restored. nil is ignored.
// Complexity: O(1) to apply; the hook adds n calls to Build.
func WithOnCentroid(fn func(c, level, size int) error) Option {
	return func(o *BuildOptions) {
		if fn != nil {
			o.OnCentroid = fn
		}
	}
}

// QueryOption configures DistMany.
// Invalid values are recorded and surface as ErrOptionViolation.
type QueryOption func(*queryOptions)

type queryOptions struct {
	workers int
	err     error
}

func defaultQueryOptions() queryOptions {
	return queryOptions{workers: runtime.GOMAXPROCS(0)}
}

// WithWorkers bounds the number of goroutines DistMany runs (k >= 1). The
// effective count is min(k, len(pairs)). k < 1 is recorded and surfaces as
// ErrOptionViolation.
// Complexity: O(1) time, O(1) space.
func WithWorkers(k int) QueryOption {
	return func(o *queryOptions) {
		// recorded, not panicked: the value often comes from user config
		if k < 1 {
			o.err = fmt.Errorf("%w: workers must be >= 1 (%d)", ErrOptionViolation, k)
			return
		}
		o.workers = k
	}
}

// Decomposition is the finished, read-only centroid decomposition.
//
// trails[v] lists (centroid, distance) root first. parent and level describe
// the centroid tree: parent[c] is the centroid whose removal produced c's
// component (-1 for the root) and level[c] its depth.
type Decomposition struct {
	trails [][]Entry
	parent []int
	level  []int
	root   int
}

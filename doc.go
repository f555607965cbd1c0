/*
Package spacetree implements a binary space partitioning tree node, the
common core of KD-trees, ball trees and similar spatial indexes.

A tree indexes a fixed, externally-owned, stably-ordered collection of
points by contiguous index ranges: every node covers the half-open slice
[begin, begin+count) of the dataset's index space, and the two children of
an internal node partition their parent's slice contiguously, left before
right. The pair (begin, count) is therefore a stable node identity that
survives process and storage boundaries where pointers do not.

The core is generic over three opaque capabilities: the dataset D, the
geometric bound B of a node, and a per-node statistic S aggregated
bottom-up during construction. Splitting strategy, bound geometry and
statistic semantics all live outside the core; see the point, bound, stat
and build packages for concrete capabilities and a KD builder.

Trees follow a build-then-freeze lifecycle: nodes are created
uninitialized, receive their identity once through Init, and are finalized
exactly once through SetChildren. A finalized tree is immutable, which
makes concurrent read-only traversals safe without locking. Violations of
this protocol are programmer errors and fail fast with a panic;
incompatible or truncated streams during loading are reported as errors.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package spacetree

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// tracer writes to trace with key 'spacetree'
func tracer() tracing.Trace {
	return tracing.Select("spacetree")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}

// SpaceTreeError is an error type for the spacetree module.
type SpaceTreeError string

func (e SpaceTreeError) Error() string {
	return string(e)
}

// ErrInvalidProfile signals a profile missing one of its capabilities.
const ErrInvalidProfile = SpaceTreeError("profile must provide dataset, bound and statistic capabilities")

// ErrInvariant signals a structural invariant violation found by Check.
const ErrInvariant = SpaceTreeError("tree invariant violated")

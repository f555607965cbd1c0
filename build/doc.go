/*
Package build constructs space partitioning trees over point matrices.

Builders are external collaborators of the tree core: they decide how to
divide an index range into children and drive the core's one-shot
construction protocol (Init, SetBound, SetChildren) bottom-up. The core
itself never partitions anything.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package build

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'spacetree'
func tracer() tracing.Trace {
	return tracing.Select("spacetree")
}

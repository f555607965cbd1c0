/*
Package bound provides geometric bounding regions for space partitioning
trees: axis-aligned hyperrectangles and bounding balls.

The tree core treats bounds as opaque; this package supplies the geometry
(growing, containment, distance lower bounds) and the codecs that give each
bound type its own format tag.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package bound

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}

/*
Package codec implements the typed binary stream used to persist space
partitioning trees.

The format is deliberately not self-describing: layouts are fixed, values
are big-endian, and compatibility is checked up front through format tags
(see Magic) rather than per-field schema information. Encoders and decoders
are thin, synchronous wrappers over an io.Writer / io.Reader supplied by
the embedding system.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package codec

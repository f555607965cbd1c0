package codec

import "errors"

var (
	// ErrBadMagic signals a format-tag mismatch while decoding a stream.
	ErrBadMagic = errors.New("codec: format tag mismatch")
	// ErrCountRange signals a count or index outside the 32-bit wire range.
	ErrCountRange = errors.New("codec: count out of range")
	// ErrCorrupt signals a byte sequence no encoder produces.
	ErrCorrupt = errors.New("codec: corrupt input")
)

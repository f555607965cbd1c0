package point

import "errors"

var (
	// ErrBadShape signals an invalid or inconsistent matrix shape.
	ErrBadShape = errors.New("point: invalid matrix shape")
)

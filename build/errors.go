package build

import "errors"

var (
	// ErrInvalidConfig signals an invalid builder configuration.
	ErrInvalidConfig = errors.New("build: invalid configuration")
	// ErrEmptyDataset signals a build over a dataset without points.
	ErrEmptyDataset = errors.New("build: dataset has no points")
)

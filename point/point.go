package point

import (
	"fmt"
	"math"

	"github.com/npillmayer/spacetree/codec"
)

// Matrix stores n points of fixed dimensionality as flat row-major
// float64 data, point i occupying values[i*dims : (i+1)*dims].
//
// The matrix owns its backing slice. Space partitioning trees reference
// points purely by index; an external builder may reorder points with Swap
// while constructing a tree, but once a tree has been finalized over a
// matrix the point order must not change anymore.
type Matrix struct {
	n      int
	dims   int
	values []float64
}

// New creates a zero-filled matrix for n points of dimensionality dims.
//
// The shape may come from an untrusted serialized stream, so n*dims must
// not be allowed to overflow.
func New(n, dims int) (*Matrix, error) {
	if n < 0 || dims <= 0 || n > math.MaxInt/dims {
		return nil, fmt.Errorf("%w: %d points, %d dims", ErrBadShape, n, dims)
	}
	return &Matrix{n: n, dims: dims, values: make([]float64, n*dims)}, nil
}

// FromRows creates a matrix from per-point rows, copying the data.
//
// All rows must have equal, non-zero length.
func FromRows(rows [][]float64) (*Matrix, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrBadShape)
	}
	dims := len(rows[0])
	m, err := New(len(rows), dims)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != dims {
			return nil, fmt.Errorf("%w: row %d has %d values, want %d",
				ErrBadShape, i, len(row), dims)
		}
		copy(m.values[i*dims:], row)
	}
	return m, nil
}

// Len returns the number of points.
func (m *Matrix) Len() int {
	if m == nil {
		return 0
	}
	return m.n
}

// Dims returns the dimensionality of each point.
func (m *Matrix) Dims() int {
	if m == nil {
		return 0
	}
	return m.dims
}

// At returns point i as a view into the backing data, not a copy.
func (m *Matrix) At(i int) []float64 {
	assert(m != nil && i >= 0 && i < m.n, "point index out of range")
	return m.values[i*m.dims : (i+1)*m.dims]
}

// SetAt overwrites point i with the values of pt.
func (m *Matrix) SetAt(i int, pt []float64) error {
	assert(m != nil && i >= 0 && i < m.n, "point index out of range")
	if len(pt) != m.dims {
		return fmt.Errorf("%w: %d values, want %d", ErrBadShape, len(pt), m.dims)
	}
	copy(m.values[i*m.dims:], pt)
	return nil
}

// Swap exchanges points i and j in place.
func (m *Matrix) Swap(i, j int) {
	assert(m != nil && i >= 0 && i < m.n && j >= 0 && j < m.n,
		"point index out of range")
	if i == j {
		return
	}
	a := m.values[i*m.dims : (i+1)*m.dims]
	b := m.values[j*m.dims : (j+1)*m.dims]
	for d := 0; d < m.dims; d++ {
		a[d], b[d] = b[d], a[d]
	}
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}

// MatrixCodec serializes matrices for the tree persistence envelope.
//
// It satisfies the tree core's dataset capability.
type MatrixCodec struct{}

// Magic returns the dataset type tag contributed to composite format tags.
func (MatrixCodec) Magic() codec.Magic {
	return codec.MagicOf("point.Matrix")
}

// Serialize writes shape and values of m.
func (MatrixCodec) Serialize(enc *codec.Encoder, m *Matrix) error {
	if m == nil {
		return fmt.Errorf("%w: nil matrix", ErrBadShape)
	}
	if err := enc.PutCount(m.n); err != nil {
		return err
	}
	if err := enc.PutCount(m.dims); err != nil {
		return err
	}
	for _, v := range m.values {
		if err := enc.PutFloat64(v); err != nil {
			return err
		}
	}
	return nil
}

// Deserialize reads a matrix written by Serialize.
func (MatrixCodec) Deserialize(dec *codec.Decoder) (*Matrix, error) {
	n, err := dec.GetCount()
	if err != nil {
		return nil, err
	}
	dims, err := dec.GetCount()
	if err != nil {
		return nil, err
	}
	m, err := New(n, dims)
	if err != nil {
		return nil, err
	}
	for i := range m.values {
		if m.values[i], err = dec.GetFloat64(); err != nil {
			return nil, err
		}
	}
	return m, nil
}

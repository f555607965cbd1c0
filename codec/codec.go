package codec

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// Encoder writes fixed-layout big-endian values to a byte stream.
//
// All values are written most significant byte first. The encoder performs
// no buffering of its own; wrap the writer in a bufio.Writer if the
// transport benefits from it.
type Encoder struct {
	w   io.Writer
	buf [8]byte
}

// NewEncoder creates an encoder writing to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

// PutUint32 writes a fixed 4-byte unsigned integer.
func (e *Encoder) PutUint32(v uint32) error {
	binary.BigEndian.PutUint32(e.buf[:4], v)
	_, err := e.w.Write(e.buf[:4])
	return err
}

// PutUint64 writes a fixed 8-byte unsigned integer.
func (e *Encoder) PutUint64(v uint64) error {
	binary.BigEndian.PutUint64(e.buf[:8], v)
	_, err := e.w.Write(e.buf[:8])
	return err
}

// PutBool writes a flag as a single byte, 1 for true and 0 for false.
func (e *Encoder) PutBool(v bool) error {
	e.buf[0] = 0
	if v {
		e.buf[0] = 1
	}
	_, err := e.w.Write(e.buf[:1])
	return err
}

// PutFloat64 writes an IEEE-754 double in its 8-byte big-endian bit layout.
func (e *Encoder) PutFloat64(v float64) error {
	return e.PutUint64(math.Float64bits(v))
}

// PutCount writes a non-negative int as a fixed 4-byte unsigned integer.
//
// Counts and indexes travel as uint32 on the wire; values outside that
// range are rejected with ErrCountRange.
func (e *Encoder) PutCount(n int) error {
	if n < 0 || int64(n) > math.MaxUint32 {
		return fmt.Errorf("%w: %d", ErrCountRange, n)
	}
	return e.PutUint32(uint32(n))
}

// PutFloat64s writes a length-prefixed slice of doubles.
func (e *Encoder) PutFloat64s(vs []float64) error {
	if err := e.PutCount(len(vs)); err != nil {
		return err
	}
	for _, v := range vs {
		if err := e.PutFloat64(v); err != nil {
			return err
		}
	}
	return nil
}

// PutMagic writes a format tag.
func (e *Encoder) PutMagic(m Magic) error {
	return e.PutUint32(uint32(m))
}

// Decoder reads fixed-layout big-endian values from a byte stream.
//
// Read errors, including short reads on truncated input, surface as errors
// from the Get calls; the decoder never panics on malformed input.
type Decoder struct {
	r   io.Reader
	buf [8]byte
}

// NewDecoder creates a decoder reading from r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: r}
}

// GetUint32 reads a fixed 4-byte unsigned integer.
func (d *Decoder) GetUint32() (uint32, error) {
	if _, err := io.ReadFull(d.r, d.buf[:4]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(d.buf[:4]), nil
}

// GetUint64 reads a fixed 8-byte unsigned integer.
func (d *Decoder) GetUint64() (uint64, error) {
	if _, err := io.ReadFull(d.r, d.buf[:8]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(d.buf[:8]), nil
}

// GetBool reads a flag byte. Any value other than 0 or 1 is corrupt input.
func (d *Decoder) GetBool() (bool, error) {
	if _, err := io.ReadFull(d.r, d.buf[:1]); err != nil {
		return false, err
	}
	switch d.buf[0] {
	case 0:
		return false, nil
	case 1:
		return true, nil
	}
	return false, fmt.Errorf("%w: flag byte 0x%02x", ErrCorrupt, d.buf[0])
}

// GetFloat64 reads an IEEE-754 double from its 8-byte big-endian bit layout.
func (d *Decoder) GetFloat64() (float64, error) {
	bits, err := d.GetUint64()
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(bits), nil
}

// GetCount reads a count written by Encoder.PutCount.
func (d *Decoder) GetCount() (int, error) {
	v, err := d.GetUint32()
	if err != nil {
		return 0, err
	}
	return int(v), nil
}

// GetFloat64s reads a length-prefixed slice of doubles.
func (d *Decoder) GetFloat64s() ([]float64, error) {
	n, err := d.GetCount()
	if err != nil {
		return nil, err
	}
	vs := make([]float64, n)
	for i := range vs {
		if vs[i], err = d.GetFloat64(); err != nil {
			return nil, err
		}
	}
	return vs, nil
}

// GetMagic reads a format tag without validating it.
func (d *Decoder) GetMagic() (Magic, error) {
	v, err := d.GetUint32()
	return Magic(v), err
}

// AssertMagic reads a format tag and compares it against want.
//
// A mismatch is reported as an error wrapping ErrBadMagic; it signals an
// incompatible stream (different format or type instantiation), not a
// programming error.
func (d *Decoder) AssertMagic(want Magic) error {
	have, err := d.GetMagic()
	if err != nil {
		return err
	}
	if have != want {
		return fmt.Errorf("%w: have %s, want %s", ErrBadMagic, have, want)
	}
	return nil
}

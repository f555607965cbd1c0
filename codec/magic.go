package codec

import "fmt"

// Magic is a 4-byte format tag placed at the head of a serialized stream.
//
// Tags for composite formats are combined with XOR, so an envelope tag
// covers both the container format and the type tags of its payloads:
//
//	envelope := codec.MagicOf("spacetree") ^ dataCodec.Magic() ^ boundCodec.Magic()
//
// A reader instantiated with a different payload type produces a different
// composite tag and rejects the stream before any structural decoding.
type Magic uint32

// String formats the tag as 8 hex digits.
func (m Magic) String() string {
	return fmt.Sprintf("%08x", uint32(m))
}

// FNV-1a, 32 bit.
const (
	fnvOffset = 2166136261
	fnvPrime  = 16777619
)

// MagicOf derives a stable format tag from a format name.
func MagicOf(name string) Magic {
	h := uint32(fnvOffset)
	for i := 0; i < len(name); i++ {
		h ^= uint32(name[i])
		h *= fnvPrime
	}
	return Magic(h)
}

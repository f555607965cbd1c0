package spacetree

import (
	"fmt"

	"github.com/npillmayer/spacetree/codec"
)

// DatasetCodec persists the point collection a tree indexes.
//
// The tree core never copies, reorders or inspects point data; it
// references points purely by index into the dataset's stable order.
type DatasetCodec[D any] interface {
	// Magic returns the dataset type tag mixed into composite format tags.
	Magic() codec.Magic
	Serialize(*codec.Encoder, D) error
	Deserialize(*codec.Decoder) (D, error)
}

// BoundCodec persists the geometric bound attached to each node. The
// geometry itself is opaque to the tree core.
type BoundCodec[B any] interface {
	// Magic returns the bound type tag mixed into composite format tags.
	Magic() codec.Magic
	Serialize(*codec.Encoder, B) error
	Deserialize(*codec.Decoder) (B, error)
}

// StatisticInit computes per-node statistics during finalization.
//
// Leaf derives a statistic from the dataset slice [begin, begin+count)
// alone. Internal must derive the statistic from the node's own slice plus
// the two children's already-computed statistics, never by rescanning the
// full subtree — this keeps statistic construction linear in dataset size
// for a whole tree.
type StatisticInit[D, S any] interface {
	Leaf(data D, begin, count int) S
	Internal(data D, begin, count int, left, right S) S
}

// Profile bundles the three capabilities a tree instantiation fixes: how
// to persist the dataset, how to persist bounds, and how to compute
// statistics.
type Profile[D, B, S any] struct {
	Data   DatasetCodec[D]
	Bounds BoundCodec[B]
	Stats  StatisticInit[D, S]
}

func (p Profile[D, B, S]) validate() error {
	if p.Data == nil {
		return fmt.Errorf("%w: dataset codec is required", ErrInvalidProfile)
	}
	if p.Bounds == nil {
		return fmt.Errorf("%w: bound codec is required", ErrInvalidProfile)
	}
	if p.Stats == nil {
		return fmt.Errorf("%w: statistic initializer is required", ErrInvalidProfile)
	}
	return nil
}

// formatName seeds the composite format tag. The statistic type is
// deliberately not part of the tag: statistics are never persisted, so a
// stored tree may be reloaded under a different statistic type.
const formatName = "spacetree"

// FormatMagic returns the composite format tag of this profile: the
// container tag combined with the dataset and bound type tags.
func (p Profile[D, B, S]) FormatMagic() codec.Magic {
	return codec.MagicOf(formatName) ^ p.Data.Magic() ^ p.Bounds.Magic()
}

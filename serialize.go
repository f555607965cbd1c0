package spacetree

import (
	"github.com/npillmayer/spacetree/codec"
)

// Serialize writes the tree structure in preorder: bound, begin, count, a
// has-children flag, then the left and right subtree encodings.
//
// Statistics are deliberately not persisted. This decouples structural
// persistence from statistic semantics: a stored tree can be reloaded
// against a different statistic implementation, which recomputes all
// statistics bottom-up (see Deserialize).
func (n *Node[D, B, S]) Serialize(enc *codec.Encoder, bounds BoundCodec[B]) error {
	assert(n.state == stateFrozen, "spacetree: Serialize on an unfinalized node")
	if err := bounds.Serialize(enc, n.bound); err != nil {
		return err
	}
	if err := enc.PutCount(n.begin); err != nil {
		return err
	}
	if err := enc.PutCount(n.count); err != nil {
		return err
	}
	children := n.left != nil
	if err := enc.PutBool(children); err != nil {
		return err
	}
	if children {
		if err := n.left.Serialize(enc, bounds); err != nil {
			return err
		}
		return n.right.Serialize(enc, bounds)
	}
	return nil
}

// Deserialize rebuilds the tree structure written by Serialize into the
// receiver, which must be uninitialized, and recomputes all statistics
// bottom-up from data. Statistics read nothing from the stream; they are
// always rederived, never trusted.
func (n *Node[D, B, S]) Deserialize(dec *codec.Decoder, data D, p Profile[D, B, S]) error {
	assert(n.state == stateRaw, "spacetree: Deserialize into a node that already has an identity")
	b, err := p.Bounds.Deserialize(dec)
	if err != nil {
		return err
	}
	begin, err := dec.GetCount()
	if err != nil {
		return err
	}
	count, err := dec.GetCount()
	if err != nil {
		return err
	}
	children, err := dec.GetBool()
	if err != nil {
		return err
	}
	var left, right *Node[D, B, S]
	if children {
		left = &Node[D, B, S]{}
		if err := left.Deserialize(dec, data, p); err != nil {
			return err
		}
		right = &Node[D, B, S]{}
		if err := right.Deserialize(dec, data, p); err != nil {
			return err
		}
	}
	n.Init(begin, count)
	n.SetBound(b)
	n.SetChildren(p.Stats, data, left, right)
	return nil
}

// SerializeAll writes a whole-tree envelope: the composite format tag of
// the profile, the dataset payload, then the structural encoding.
func (n *Node[D, B, S]) SerializeAll(enc *codec.Encoder, data D, p Profile[D, B, S]) error {
	if err := p.validate(); err != nil {
		return err
	}
	if err := enc.PutMagic(p.FormatMagic()); err != nil {
		return err
	}
	if err := p.Data.Serialize(enc, data); err != nil {
		return err
	}
	return n.Serialize(enc, p.Bounds)
}

// DeserializeAll reads a whole-tree envelope written by SerializeAll into
// the receiver, which must be uninitialized, and returns the dataset.
//
// The composite format tag is validated before anything else is decoded; a
// stream written for a different dataset or bound type fails with an error
// wrapping codec.ErrBadMagic, leaving the receiver untouched.
func (n *Node[D, B, S]) DeserializeAll(dec *codec.Decoder, p Profile[D, B, S]) (D, error) {
	var zero D
	assert(n.state == stateRaw, "spacetree: DeserializeAll into a node that already has an identity")
	if err := p.validate(); err != nil {
		return zero, err
	}
	if err := dec.AssertMagic(p.FormatMagic()); err != nil {
		return zero, err
	}
	data, err := p.Data.Deserialize(dec)
	if err != nil {
		return zero, err
	}
	if err := n.Deserialize(dec, data, p); err != nil {
		return zero, err
	}
	tracer().Debugf("space tree loaded: root covers [%d,%d)", n.begin, n.begin+n.count)
	return data, nil
}

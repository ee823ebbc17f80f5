package core

import (
	"encoding/binary"
	"math"
)

// Digestible is implemented by every type the module commits to. Digest
// must be deterministic and side-effect-free; for composite records it is
// computed with TaggedStruct under a fixed, type-specific tag with a
// fixed field order. Tag strings and field order are part of the wire
// contract and must never change without a version bump.
type Digestible interface {
	Digest(h HashFn) Digest
}

// TaggedStruct computes the domain-separated digest of a struct from its
// child digests and data words:
//
//	H(H(tag) || down[0] || ... || le32(data[0]) || ... || le16(len(down)))
//
// The trailing child count separates structs with different arities but
// colliding byte content. Panics if the struct has more than 65535
// children; arity is fixed by the type definition, so hitting the limit
// is a programming error, not an input condition.
func TaggedStruct(h HashFn, tag string, down []Digest, data []uint32) Digest {
	if len(down) > math.MaxUint16 {
		panic("tagged struct defined with more than 2^16 fields")
	}
	tagDigest := h.HashBytes([]byte(tag))

	all := make([]byte, 0, DigestBytes*(len(down)+1)+WordSize*len(data)+2)
	tb := tagDigest.Bytes()
	all = append(all, tb[:]...)
	for _, d := range down {
		db := d.Bytes()
		all = append(all, db[:]...)
	}
	for _, w := range data {
		all = binary.LittleEndian.AppendUint32(all, w)
	}
	all = binary.LittleEndian.AppendUint16(all, uint16(len(down)))
	return h.HashBytes(all)
}

// TaggedListCons combines a head digest with the digest of the rest of a
// list, forming one cons cell of a tagged list.
func TaggedListCons(h HashFn, tag string, head, tail Digest) Digest {
	return TaggedStruct(h, tag, []Digest{head, tail}, nil)
}

// TaggedList folds a list of digests from the last element to the first,
// seeded with ZeroDigest, so the digest of [a, b, c] is
// cons(a, cons(b, cons(c, zero))) and the digest of an empty list is
// ZeroDigest. The cons structure makes the digest sensitive to order and
// to truncation at the tail while allowing prepend composition when a
// list is built incrementally from the end.
func TaggedList(h HashFn, tag string, list []Digest) Digest {
	accum := ZeroDigest
	for i := len(list) - 1; i >= 0; i-- {
		accum = TaggedListCons(h, tag, list[i], accum)
	}
	return accum
}

// DigestSlice folds a slice of digestible items from the last element to
// the first, hashing H(accum || item) at each step with ZeroDigest as the
// seed.
//
// This routine is not appropriate for all use cases. It is not a PRF and
// cannot be used as a MAC: given the digest of a list, anyone can compute
// the digest of that list with elements prepended. It also does not
// domain separate typed data, and the digest of an empty slice is the
// zero digest. Types that commit with it rely on this exact algorithm;
// upgrading it to the tagged-list scheme would change their digests.
func DigestSlice[D Digestible](h HashFn, items []D) Digest {
	accum := ZeroDigest
	for i := len(items) - 1; i >= 0; i-- {
		ab := accum.Bytes()
		ib := items[i].Digest(h).Bytes()
		buf := make([]byte, 0, 2*DigestBytes)
		buf = append(buf, ab[:]...)
		buf = append(buf, ib[:]...)
		accum = h.HashBytes(buf)
	}
	return accum
}

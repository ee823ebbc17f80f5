package claim

import (
	"errors"

	"github.com/vybium/vybium-zkvm-receipt/internal/vybium-zkvm-receipt/core"
)

// ErrPruned is returned when accessing the value of a pruned node.
var ErrPruned = errors.New("claim: value has been pruned")

// MaybePruned holds either a full value or only its digest. Replacing a
// subtree of a claim with its digest shrinks the representation without
// changing the digest of any ancestor: Digest of a pruned node returns
// the stored digest, Digest of an unpruned node returns the digest of the
// value, and the two are observationally identical.
//
// The digest rule lives here, once, so call sites cannot diverge on how a
// possibly-pruned field is committed.
type MaybePruned[T core.Digestible] struct {
	value  T
	digest core.Digest
	pruned bool
}

// Value wraps a full, unpruned value.
func Value[T core.Digestible](v T) MaybePruned[T] {
	return MaybePruned[T]{value: v}
}

// Pruned wraps the digest of an elided value.
func Pruned[T core.Digestible](d core.Digest) MaybePruned[T] {
	return MaybePruned[T]{digest: d, pruned: true}
}

// Digest returns the canonical digest of the wrapped value, whether or
// not it has been pruned.
func (m MaybePruned[T]) Digest(h core.HashFn) core.Digest {
	if m.pruned {
		return m.digest
	}
	return m.value.Digest(h)
}

// IsPruned reports whether the payload has been elided.
func (m MaybePruned[T]) IsPruned() bool {
	return m.pruned
}

// Get returns the wrapped value, or ErrPruned if only the digest is
// available.
func (m MaybePruned[T]) Get() (T, error) {
	if m.pruned {
		var zero T
		return zero, ErrPruned
	}
	return m.value, nil
}

// PrunedDigest returns the stored digest of a pruned node. It fails on
// an unpruned node, where the digest depends on the hash capability and
// must be computed with Digest instead.
func (m MaybePruned[T]) PrunedDigest() (core.Digest, error) {
	if !m.pruned {
		return core.Digest{}, errors.New("claim: node is not pruned")
	}
	return m.digest, nil
}

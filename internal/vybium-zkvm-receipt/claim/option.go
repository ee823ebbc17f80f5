package claim

import "github.com/vybium/vybium-zkvm-receipt/internal/vybium-zkvm-receipt/core"

// Option wraps an optional digestible value. An absent value digests to
// the zero digest.
type Option[T core.Digestible] struct {
	value T
	some  bool
}

// Some wraps a present value.
func Some[T core.Digestible](v T) Option[T] {
	return Option[T]{value: v, some: true}
}

// None returns an absent value. The zero Option is also None.
func None[T core.Digestible]() Option[T] {
	return Option[T]{}
}

// IsSome reports whether a value is present.
func (o Option[T]) IsSome() bool {
	return o.some
}

// Get returns the wrapped value and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.some
}

// Digest returns the digest of the wrapped value, or the zero digest
// when absent.
func (o Option[T]) Digest(h core.HashFn) core.Digest {
	if !o.some {
		return core.ZeroDigest
	}
	return o.value.Digest(h)
}

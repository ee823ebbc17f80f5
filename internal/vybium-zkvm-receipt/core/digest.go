package core

import (
	"encoding/binary"
	"encoding/hex"
)

const (
	// DigestWords is the number of 32-bit words in a Digest.
	DigestWords = 8

	// WordSize is the size of a VM word in bytes.
	WordSize = 4

	// DigestBytes is the size of a Digest in bytes.
	DigestBytes = DigestWords * WordSize
)

// Digest is a fixed-size 32-byte identifier, the output of every hashing
// operation in this module. It is an immutable value type; equality and
// ordering are byte-wise.
//
// The digest is stored as 8 machine-native 32-bit words. The byte view
// serializes each word little-endian, so a digest built with
// DigestFromBytes reads back the exact bytes it was built from.
type Digest [DigestWords]uint32

// ZeroDigest is the digest of all zeroes. It is the identity element for
// the list-digest folds: the digest of an empty list is ZeroDigest.
var ZeroDigest = Digest{}

// NewDigest creates a Digest from 8 words.
func NewDigest(words [DigestWords]uint32) Digest {
	return Digest(words)
}

// DigestFromBytes creates a Digest from 32 bytes, preserving byte order:
// the Bytes view of the result equals the input. Use this for digest
// literals published as byte strings, such as hash initialization vectors.
func DigestFromBytes(b [DigestBytes]byte) Digest {
	var d Digest
	for i := 0; i < DigestWords; i++ {
		d[i] = binary.LittleEndian.Uint32(b[i*WordSize:])
	}
	return d
}

// Words returns the digest as a slice of 8 words.
func (d Digest) Words() []uint32 {
	return d[:]
}

// Bytes returns the digest as 32 bytes, serializing each word
// little-endian.
func (d Digest) Bytes() [DigestBytes]byte {
	var b [DigestBytes]byte
	for i, w := range d {
		binary.LittleEndian.PutUint32(b[i*WordSize:], w)
	}
	return b
}

// String returns the digest as a lowercase hex string.
func (d Digest) String() string {
	b := d.Bytes()
	return hex.EncodeToString(b[:])
}

// SHA256Init is the standard SHA-256 initialization vector (FIPS 180-4),
// the first state fed to the compression function.
var SHA256Init = DigestFromBytes([DigestBytes]byte{
	0x6a, 0x09, 0xe6, 0x67,
	0xbb, 0x67, 0xae, 0x85,
	0x3c, 0x6e, 0xf3, 0x72,
	0xa5, 0x4f, 0xf5, 0x3a,
	0x51, 0x0e, 0x52, 0x7f,
	0x9b, 0x05, 0x68, 0x8c,
	0x1f, 0x83, 0xd9, 0xab,
	0x5b, 0xe0, 0xcd, 0x19,
})

// Bytes is a raw byte sequence committed to by hashing it directly. This
// is the only untagged digest in the module and is reserved for leaf
// content such as journals.
type Bytes []byte

// Digest hashes the bytes with the supplied capability.
func (b Bytes) Digest(h HashFn) Digest {
	return h.HashBytes(b)
}

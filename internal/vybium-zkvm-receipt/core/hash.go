package core

// BlockWords is the number of words in one 512-bit compression block.
const BlockWords = DigestWords * 2

// BlockBytes is the size of one compression block in bytes.
const BlockBytes = BlockWords * WordSize

// Block is a single 512-bit input block to the compression function,
// stored as 16 words with the same byte convention as Digest.
type Block [BlockWords]uint32

// BlockFromBytes creates a Block from 64 bytes, preserving byte order.
func BlockFromBytes(b [BlockBytes]byte) Block {
	var blk Block
	for i := 0; i < BlockWords; i++ {
		blk[i] = uint32(b[i*WordSize]) |
			uint32(b[i*WordSize+1])<<8 |
			uint32(b[i*WordSize+2])<<16 |
			uint32(b[i*WordSize+3])<<24
	}
	return blk
}

// Bytes returns the block as 64 bytes.
func (blk Block) Bytes() [BlockBytes]byte {
	var b [BlockBytes]byte
	for i, w := range blk {
		b[i*WordSize] = byte(w)
		b[i*WordSize+1] = byte(w >> 8)
		b[i*WordSize+2] = byte(w >> 16)
		b[i*WordSize+3] = byte(w >> 24)
	}
	return b
}

// HashFn is the pluggable hashing capability every digest computation in
// this module goes through. Implementations are stateless and safe for
// concurrent use; each call is independent and side-effect-free.
//
// The interface is shaped around the SHA-256 family but is selected by
// name at the points that record a hash function (see SuiteFromName), so
// alternate families can be substituted without touching the tagged
// hashing or claim logic.
type HashFn interface {
	// HashBytes hashes a byte slice, padding to block size and adding
	// the standard length trailer.
	HashBytes(b []byte) Digest

	// HashWords hashes a word slice, defined as HashBytes over the
	// words' little-endian byte serialization.
	HashWords(w []uint32) Digest

	// Compress runs one compression step over a single 512-bit block
	// given as two half-blocks. This is a low-level primitive; the
	// result is not a standards-compliant hash of any known preimage.
	Compress(state, half1, half2 Digest) Digest

	// CompressSlice iterates the compression function over a sequence
	// of full blocks, Merkle-Damgard style, starting from state.
	CompressSlice(state Digest, blocks []Block) Digest

	// HashRawDataSlice hashes data padded with zeroes to the block
	// boundary, without the standard length trailer. Not a standards
	// compliant hash; used only for internal framing.
	HashRawDataSlice(data []byte) Digest
}

// HashPair hashes two digests with one compression step over the standard
// initialization vector.
func HashPair(h HashFn, a, b Digest) Digest {
	return h.Compress(SHA256Init, a, b)
}

package core

import (
	"crypto/sha256"
	"encoding/binary"
	"math/bits"
)

// sha256Suite implements HashFn with SHA-256. The standards-compliant
// entry points delegate to crypto/sha256; the compression entry points
// run the block function directly, which the standard library does not
// expose.
type sha256Suite struct{}

func (sha256Suite) HashBytes(b []byte) Digest {
	return DigestFromBytes(sha256.Sum256(b))
}

func (s sha256Suite) HashWords(w []uint32) Digest {
	return s.HashBytes(wordsToBytes(w))
}

func (sha256Suite) Compress(state, half1, half2 Digest) Digest {
	h := stateWords(state)
	var block [BlockBytes]byte
	b1 := half1.Bytes()
	b2 := half2.Bytes()
	copy(block[:DigestBytes], b1[:])
	copy(block[DigestBytes:], b2[:])
	compressBlock(&h, block[:])
	return stateDigest(h)
}

func (sha256Suite) CompressSlice(state Digest, blocks []Block) Digest {
	h := stateWords(state)
	for _, blk := range blocks {
		b := blk.Bytes()
		compressBlock(&h, b[:])
	}
	return stateDigest(h)
}

func (s sha256Suite) HashRawDataSlice(data []byte) Digest {
	h := stateWords(SHA256Init)
	var block [BlockBytes]byte
	for len(data) >= BlockBytes {
		compressBlock(&h, data[:BlockBytes])
		data = data[BlockBytes:]
	}
	if len(data) > 0 {
		copy(block[:], data)
		compressBlock(&h, block[:])
	}
	return stateDigest(h)
}

func wordsToBytes(w []uint32) []byte {
	b := make([]byte, len(w)*WordSize)
	for i, x := range w {
		binary.LittleEndian.PutUint32(b[i*WordSize:], x)
	}
	return b
}

// stateWords reads a chaining state out of its digest form. The state
// words are big-endian in the byte view, matching FIPS 180-4.
func stateWords(d Digest) [8]uint32 {
	b := d.Bytes()
	var h [8]uint32
	for i := range h {
		h[i] = binary.BigEndian.Uint32(b[i*WordSize:])
	}
	return h
}

func stateDigest(h [8]uint32) Digest {
	var b [DigestBytes]byte
	for i, w := range h {
		binary.BigEndian.PutUint32(b[i*WordSize:], w)
	}
	return DigestFromBytes(b)
}

// sha256K holds the round constants: the first 32 bits of the fractional
// parts of the cube roots of the first 64 primes.
var sha256K = [64]uint32{
	0x428a2f98, 0x71374491, 0xb5c0fbcf, 0xe9b5dba5,
	0x3956c25b, 0x59f111f1, 0x923f82a4, 0xab1c5ed5,
	0xd807aa98, 0x12835b01, 0x243185be, 0x550c7dc3,
	0x72be5d74, 0x80deb1fe, 0x9bdc06a7, 0xc19bf174,
	0xe49b69c1, 0xefbe4786, 0x0fc19dc6, 0x240ca1cc,
	0x2de92c6f, 0x4a7484aa, 0x5cb0a9dc, 0x76f988da,
	0x983e5152, 0xa831c66d, 0xb00327c8, 0xbf597fc7,
	0xc6e00bf3, 0xd5a79147, 0x06ca6351, 0x14292967,
	0x27b70a85, 0x2e1b2138, 0x4d2c6dfc, 0x53380d13,
	0x650a7354, 0x766a0abb, 0x81c2c92e, 0x92722c85,
	0xa2bfe8a1, 0xa81a664b, 0xc24b8b70, 0xc76c51a3,
	0xd192e819, 0xd6990624, 0xf40e3585, 0x106aa070,
	0x19a4c116, 0x1e376c08, 0x2748774c, 0x34b0bcb5,
	0x391c0cb3, 0x4ed8aa4a, 0x5b9cca4f, 0x682e6ff3,
	0x748f82ee, 0x78a5636f, 0x84c87814, 0x8cc70208,
	0x90befffa, 0xa4506ceb, 0xbef9a3f7, 0xc67178f2,
}

// compressBlock runs the SHA-256 block function on one 64-byte block,
// updating the chaining state in place.
func compressBlock(h *[8]uint32, block []byte) {
	var w [64]uint32
	for t := 0; t < 16; t++ {
		w[t] = binary.BigEndian.Uint32(block[t*4:])
	}
	for t := 16; t < 64; t++ {
		s0 := bits.RotateLeft32(w[t-15], -7) ^ bits.RotateLeft32(w[t-15], -18) ^ (w[t-15] >> 3)
		s1 := bits.RotateLeft32(w[t-2], -17) ^ bits.RotateLeft32(w[t-2], -19) ^ (w[t-2] >> 10)
		w[t] = w[t-16] + s0 + w[t-7] + s1
	}

	a, b, c, d, e, f, g, hh := h[0], h[1], h[2], h[3], h[4], h[5], h[6], h[7]
	for t := 0; t < 64; t++ {
		S1 := bits.RotateLeft32(e, -6) ^ bits.RotateLeft32(e, -11) ^ bits.RotateLeft32(e, -25)
		ch := (e & f) ^ (^e & g)
		t1 := hh + S1 + ch + sha256K[t] + w[t]
		S0 := bits.RotateLeft32(a, -2) ^ bits.RotateLeft32(a, -13) ^ bits.RotateLeft32(a, -22)
		maj := (a & b) ^ (a & c) ^ (b & c)
		t2 := S0 + maj

		hh = g
		g = f
		f = e
		e = d + t1
		d = c
		c = b
		b = a
		a = t1 + t2
	}

	h[0] += a
	h[1] += b
	h[2] += c
	h[3] += d
	h[4] += e
	h[5] += f
	h[6] += g
	h[7] += hh
}

package core

import (
	"fmt"

	"golang.org/x/crypto/sha3"

	"github.com/vybium/vybium-crypto/pkg/vybium-crypto/field"
	vhash "github.com/vybium/vybium-crypto/pkg/vybium-crypto/hash"
)

// Suite names accepted by SuiteFromName. Receipt records carry one of
// these in their hash-function field.
const (
	SuiteSha256   = "sha-256"
	SuiteSha3     = "sha3"
	SuitePoseidon = "poseidon"
)

var suites = map[string]HashFn{
	SuiteSha256:   sha256Suite{},
	SuiteSha3:     sha3Suite{},
	SuitePoseidon: poseidonSuite{},
}

// SuiteFromName returns the hash capability registered under name.
func SuiteFromName(name string) (HashFn, error) {
	h, ok := suites[name]
	if !ok {
		return nil, fmt.Errorf("unsupported hash function: %s", name)
	}
	return h, nil
}

// sha3Suite implements HashFn with SHA3-256. Keccak is a sponge and has
// no SHA-256-style compression step, so the compression entry points are
// defined as sponge hashes over the concatenated inputs.
type sha3Suite struct{}

func (sha3Suite) HashBytes(b []byte) Digest {
	return DigestFromBytes(sha3.Sum256(b))
}

func (s sha3Suite) HashWords(w []uint32) Digest {
	return s.HashBytes(wordsToBytes(w))
}

func (s sha3Suite) Compress(state, half1, half2 Digest) Digest {
	sb := state.Bytes()
	b1 := half1.Bytes()
	b2 := half2.Bytes()
	buf := make([]byte, 0, 3*DigestBytes)
	buf = append(buf, sb[:]...)
	buf = append(buf, b1[:]...)
	buf = append(buf, b2[:]...)
	return s.HashBytes(buf)
}

func (s sha3Suite) CompressSlice(state Digest, blocks []Block) Digest {
	cur := state
	for _, blk := range blocks {
		b := blk.Bytes()
		var h1, h2 [DigestBytes]byte
		copy(h1[:], b[:DigestBytes])
		copy(h2[:], b[DigestBytes:])
		cur = s.Compress(cur, DigestFromBytes(h1), DigestFromBytes(h2))
	}
	return cur
}

func (s sha3Suite) HashRawDataSlice(data []byte) Digest {
	return s.HashBytes(padToBlock(data))
}

// poseidonSuite implements HashFn with the field-friendly hash from
// vybium-crypto. Bytes are packed one 32-bit word per field element to
// stay below the Goldilocks modulus; the first four digest elements are
// repacked into the 32-byte Digest.
type poseidonSuite struct{}

func (poseidonSuite) HashBytes(b []byte) Digest {
	padded := padToWord(b)
	elems := make([]field.Element, 0, len(padded)/WordSize+1)
	// Length element keeps distinct-length inputs from colliding after
	// zero padding.
	elems = append(elems, field.New(uint64(len(b))))
	for i := 0; i < len(padded); i += WordSize {
		w := uint64(padded[i]) |
			uint64(padded[i+1])<<8 |
			uint64(padded[i+2])<<16 |
			uint64(padded[i+3])<<24
		elems = append(elems, field.New(w))
	}
	d := vhash.HashVarlen(elems)
	var out [DigestBytes]byte
	for i := 0; i < 4; i++ {
		v := d[i].Value()
		for j := 0; j < 8; j++ {
			out[i*8+j] = byte(v >> (8 * j))
		}
	}
	return DigestFromBytes(out)
}

func (p poseidonSuite) HashWords(w []uint32) Digest {
	return p.HashBytes(wordsToBytes(w))
}

func (p poseidonSuite) Compress(state, half1, half2 Digest) Digest {
	sb := state.Bytes()
	b1 := half1.Bytes()
	b2 := half2.Bytes()
	buf := make([]byte, 0, 3*DigestBytes)
	buf = append(buf, sb[:]...)
	buf = append(buf, b1[:]...)
	buf = append(buf, b2[:]...)
	return p.HashBytes(buf)
}

func (p poseidonSuite) CompressSlice(state Digest, blocks []Block) Digest {
	cur := state
	for _, blk := range blocks {
		b := blk.Bytes()
		var h1, h2 [DigestBytes]byte
		copy(h1[:], b[:DigestBytes])
		copy(h2[:], b[DigestBytes:])
		cur = p.Compress(cur, DigestFromBytes(h1), DigestFromBytes(h2))
	}
	return cur
}

func (p poseidonSuite) HashRawDataSlice(data []byte) Digest {
	return p.HashBytes(padToBlock(data))
}

func padToBlock(data []byte) []byte {
	if rem := len(data) % BlockBytes; rem != 0 {
		padded := make([]byte, len(data)+BlockBytes-rem)
		copy(padded, data)
		return padded
	}
	return data
}

func padToWord(data []byte) []byte {
	if rem := len(data) % WordSize; rem != 0 {
		padded := make([]byte, len(data)+WordSize-rem)
		copy(padded, data)
		return padded
	}
	return data
}

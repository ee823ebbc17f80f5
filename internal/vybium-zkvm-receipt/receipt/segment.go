package receipt

import (
	"encoding/binary"

	"github.com/vybium/vybium-zkvm-receipt/internal/vybium-zkvm-receipt/claim"
	"github.com/vybium/vybium-zkvm-receipt/internal/vybium-zkvm-receipt/core"
)

// SegmentReceipt attests to the correct execution of a single segment of
// a continuation. The seal is opaque cryptographic data; the claim is the
// non-opaque statement it proves.
type SegmentReceipt struct {
	// Seal is the raw proof data, as words.
	Seal []uint32

	// Index is the segment's position within the continuation.
	Index uint32

	// Hashfn names the hash function used to create this receipt; see
	// core.SuiteFromName.
	Hashfn string

	// VerifierParameters fingerprints the proof system and circuit
	// version this receipt was produced for.
	VerifierParameters core.Digest

	// Claim is the statement this segment proves.
	Claim claim.ReceiptClaim
}

// SealBytes returns the seal as bytes, serializing each word
// little-endian.
func (r *SegmentReceipt) SealBytes() []byte {
	b := make([]byte, 0, len(r.Seal)*core.WordSize)
	for _, w := range r.Seal {
		b = binary.LittleEndian.AppendUint32(b, w)
	}
	return b
}

// SealSize returns the seal size in bytes.
func (r *SegmentReceipt) SealSize() int {
	return len(r.Seal) * core.WordSize
}

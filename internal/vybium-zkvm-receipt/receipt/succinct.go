package receipt

import (
	"encoding/binary"

	"github.com/vybium/vybium-zkvm-receipt/internal/vybium-zkvm-receipt/claim"
	"github.com/vybium/vybium-zkvm-receipt/internal/vybium-zkvm-receipt/core"
)

// SuccinctReceipt proves a claim of type C with a single STARK. The
// control ID identifies the recursion program that produced the seal, and
// the inclusion proof binds it to a control root the verifier trusts.
type SuccinctReceipt[C core.Digestible] struct {
	// Seal is the raw STARK proof data, as words.
	Seal []uint32

	// ControlID identifies the control program of this receipt.
	ControlID core.Digest

	// Claim is the statement this receipt proves, possibly pruned.
	Claim claim.MaybePruned[C]

	// Hashfn names the hash function used to create this receipt; see
	// core.SuiteFromName.
	Hashfn string

	// VerifierParameters fingerprints the proof system and circuit
	// version this receipt was produced for.
	VerifierParameters core.Digest

	// ControlInclusionProof proves inclusion of ControlID under the
	// control root.
	ControlInclusionProof core.MerkleProof
}

func (*SuccinctReceipt[C]) isInnerReceipt()           {}
func (*SuccinctReceipt[C]) isInnerAssumptionReceipt() {}
func (*SuccinctReceipt[C]) receiptKind() string       { return KindSuccinct }

// SealBytes returns the seal as bytes, serializing each word
// little-endian.
func (r *SuccinctReceipt[C]) SealBytes() []byte {
	b := make([]byte, 0, len(r.Seal)*core.WordSize)
	for _, w := range r.Seal {
		b = binary.LittleEndian.AppendUint32(b, w)
	}
	return b
}

// SealSize returns the seal size in bytes.
func (r *SuccinctReceipt[C]) SealSize() int {
	return len(r.Seal) * core.WordSize
}

// ControlRoot recomputes the control root from the control ID and the
// inclusion proof, using the receipt's named hash suite. The caller must
// compare the result against a trusted root.
func (r *SuccinctReceipt[C]) ControlRoot() (core.Digest, error) {
	h, err := core.SuiteFromName(r.Hashfn)
	if err != nil {
		return core.Digest{}, err
	}
	return r.ControlInclusionProof.Root(r.ControlID, h), nil
}

// Package receipt defines the polymorphic proof envelope around a claim:
// one logical attestation backed by any of several proof strategies, from
// full multi-segment proofs down to non-cryptographic stand-ins.
package receipt

import (
	"github.com/vybium/vybium-zkvm-receipt/internal/vybium-zkvm-receipt/claim"
	"github.com/vybium/vybium-zkvm-receipt/internal/vybium-zkvm-receipt/core"
)

// Journal holds the raw bytes the guest committed as its public output.
// It is carried alongside the seal, not inside it.
type Journal struct {
	Bytes []byte
}

// Digest hashes the journal bytes directly, without a tag.
func (j Journal) Digest(h core.HashFn) core.Digest {
	return h.HashBytes(j.Bytes)
}

// ReceiptMetadata carries information to decide whether a given verifier
// is compatible with a receipt, for when multiple verifier versions
// coexist.
type ReceiptMetadata struct {
	// VerifierParameters fingerprints the proof system and circuit
	// version the receipt was produced for. It is not the full
	// parameters, which must come from a trusted source.
	VerifierParameters core.Digest
}

// Receipt is the top-level attestation a verifier consumes: a proof
// under one of the strategies in InnerReceipt, the guest journal, and
// verifier compatibility metadata.
type Receipt struct {
	Inner    InnerReceipt
	Journal  Journal
	Metadata ReceiptMetadata
}

// ClaimDigest returns the digest of the claim the receipt attests to.
func (r *Receipt) ClaimDigest(h core.HashFn) (core.Digest, error) {
	switch inner := r.Inner.(type) {
	case *CompositeReceipt:
		c, err := inner.Claim()
		if err != nil {
			return core.Digest{}, err
		}
		return c.Digest(h), nil
	case *SuccinctReceipt[claim.ReceiptClaim]:
		return inner.Claim.Digest(h), nil
	case *Groth16Receipt[claim.ReceiptClaim]:
		return inner.Claim.Digest(h), nil
	case *FakeReceipt[claim.ReceiptClaim]:
		return inner.Claim.Digest(h), nil
	default:
		return core.Digest{}, &UnsupportedReceiptError{Kind: KindOf(r.Inner)}
	}
}

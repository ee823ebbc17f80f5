package receipt

import (
	"github.com/vybium/vybium-zkvm-receipt/internal/vybium-zkvm-receipt/claim"
	"github.com/vybium/vybium-zkvm-receipt/internal/vybium-zkvm-receipt/core"
)

// Groth16Receipt proves a claim of type C with a single Groth16 SNARK.
type Groth16Receipt[C core.Digestible] struct {
	// Seal is the raw SNARK proof, as bytes.
	Seal []byte

	// Claim is the statement this receipt proves, possibly pruned.
	Claim claim.MaybePruned[C]

	// VerifierParameters fingerprints the proof system and circuit
	// version this receipt was produced for. Its first four bytes act
	// as the seal selector in the flattened encoding.
	VerifierParameters core.Digest
}

func (*Groth16Receipt[C]) isInnerReceipt()           {}
func (*Groth16Receipt[C]) isInnerAssumptionReceipt() {}
func (*Groth16Receipt[C]) receiptKind() string       { return KindGroth16 }

// FakeReceipt carries a claim with no cryptographic material at all. It
// is a development and testing stand-in; nothing about the claim is
// attested.
type FakeReceipt[C core.Digestible] struct {
	// Claim is the statement this receipt pretends to prove.
	Claim claim.MaybePruned[C]
}

func (*FakeReceipt[C]) isInnerReceipt()           {}
func (*FakeReceipt[C]) isInnerAssumptionReceipt() {}
func (*FakeReceipt[C]) receiptKind() string       { return KindFake }

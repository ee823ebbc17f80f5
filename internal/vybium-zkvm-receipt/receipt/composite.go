package receipt

import (
	"errors"

	"github.com/vybium/vybium-zkvm-receipt/internal/vybium-zkvm-receipt/claim"
	"github.com/vybium/vybium-zkvm-receipt/internal/vybium-zkvm-receipt/core"
)

// CompositeReceipt is a non-succinct proof of an execution with
// continuations: one segment receipt per segment, plus one receipt per
// assumption made along the way. If any assumption is unresolved the
// receipt is only conditionally valid.
type CompositeReceipt struct {
	// Segments are the per-segment receipts, in execution order.
	Segments []SegmentReceipt

	// AssumptionReceipts back the assumptions made within the
	// continuation, in the order they appear in the final output.
	AssumptionReceipts []InnerAssumptionReceipt

	// VerifierParameters fingerprints the proof system and circuit
	// version this receipt was produced for.
	VerifierParameters core.Digest
}

func (*CompositeReceipt) isInnerReceipt()           {}
func (*CompositeReceipt) isInnerAssumptionReceipt() {}
func (*CompositeReceipt) receiptKind() string       { return KindComposite }

// Claim returns the claim of the final segment, which carries the post
// state and output of the whole continuation.
func (r *CompositeReceipt) Claim() (claim.ReceiptClaim, error) {
	if len(r.Segments) == 0 {
		return claim.ReceiptClaim{}, errors.New("receipt: composite receipt has no segments")
	}
	return r.Segments[len(r.Segments)-1].Claim, nil
}

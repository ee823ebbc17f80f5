package receipt

import (
	"fmt"

	"github.com/vybium/vybium-zkvm-receipt/internal/vybium-zkvm-receipt/claim"
)

// SealSelectorBytes is the length of the selector prefixed to a
// flattened seal.
const SealSelectorBytes = 4

// UnsupportedReceiptError reports an operation applied to a proof
// strategy that does not support it.
type UnsupportedReceiptError struct {
	Kind string
}

func (e *UnsupportedReceiptError) Error() string {
	return fmt.Sprintf("unsupported receipt type: %s", e.Kind)
}

// EncodeSeal flattens a receipt's seal into the canonical byte encoding
// consumed by external verifiers: the first four bytes of the verifier
// parameters digest as a selector, followed by the raw seal bytes.
//
// Only Groth16-backed receipts have a flattened encoding; composite,
// succinct and fake receipts require strategy-specific handling and are
// rejected.
func EncodeSeal(r *Receipt) ([]byte, error) {
	switch inner := r.Inner.(type) {
	case *Groth16Receipt[claim.ReceiptClaim]:
		vp := inner.VerifierParameters.Bytes()
		seal := make([]byte, 0, SealSelectorBytes+len(inner.Seal))
		seal = append(seal, vp[:SealSelectorBytes]...)
		seal = append(seal, inner.Seal...)
		return seal, nil
	default:
		return nil, &UnsupportedReceiptError{Kind: KindOf(inner)}
	}
}

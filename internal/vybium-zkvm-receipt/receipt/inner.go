package receipt

// InnerReceipt is the closed set of proof strategies that can back a
// top-level Receipt. The variants are CompositeReceipt,
// SuccinctReceipt[claim.ReceiptClaim], Groth16Receipt[claim.ReceiptClaim]
// and FakeReceipt[claim.ReceiptClaim]; no other type implements it.
type InnerReceipt interface {
	isInnerReceipt()
}

// InnerAssumptionReceipt is the closed set of proof strategies that can
// back an assumption. The variants are the same four shapes, carrying
// claim.Unknown instead of claim.ReceiptClaim since an assumption's claim
// type is opaque to the dependent receipt.
type InnerAssumptionReceipt interface {
	isInnerAssumptionReceipt()
}

// Strategy names, used in diagnostics and errors.
const (
	KindComposite = "composite"
	KindSuccinct  = "succinct"
	KindGroth16   = "groth16"
	KindFake      = "fake"
)

// KindOf names the strategy of an inner receipt variant.
func KindOf(v any) string {
	if k, ok := v.(interface{ receiptKind() string }); ok {
		return k.receiptKind()
	}
	return "unknown"
}

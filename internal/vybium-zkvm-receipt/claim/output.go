package claim

import "github.com/vybium/vybium-zkvm-receipt/internal/vybium-zkvm-receipt/core"

// Output is the externally visible result of a guest execution.
//
// A non-empty assumptions list means the claim is conditional: the
// journal cannot be trusted to correspond to a genuine execution until a
// receipt has been verified for every assumption in the list.
type Output struct {
	// Journal holds the bytes the guest committed as its public
	// output.
	Journal MaybePruned[core.Bytes]

	// Assumptions lists the claims this execution depends on.
	Assumptions MaybePruned[Assumptions]
}

// Digest computes the canonical digest of the output.
func (o Output) Digest(h core.HashFn) core.Digest {
	return core.TaggedStruct(h, "risc0.Output",
		[]core.Digest{o.Journal.Digest(h), o.Assumptions.Digest(h)}, nil)
}

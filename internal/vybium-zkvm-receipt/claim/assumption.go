package claim

import "github.com/vybium/vybium-zkvm-receipt/internal/vybium-zkvm-receipt/core"

// Assumption references another claim this execution depends on, plus
// the control root its receipt must be verified under. A zero control
// root means "verify under the same control root as the dependent
// receipt".
type Assumption struct {
	Claim       core.Digest
	ControlRoot core.Digest
}

// Digest computes the canonical digest of the assumption.
func (a Assumption) Digest(h core.HashFn) core.Digest {
	return core.TaggedStruct(h, "risc0.Assumption",
		[]core.Digest{a.Claim, a.ControlRoot}, nil)
}

// Assumptions is the ordered list of assumptions made by an execution.
// Each entry may be pruned independently.
type Assumptions []MaybePruned[Assumption]

// Digest computes the canonical digest of the list.
func (as Assumptions) Digest(h core.HashFn) core.Digest {
	digests := make([]core.Digest, len(as))
	for i, a := range as {
		digests[i] = a.Digest(h)
	}
	return core.TaggedList(h, "risc0.Assumptions", digests)
}

package claim

import "github.com/vybium/vybium-zkvm-receipt/internal/vybium-zkvm-receipt/core"

// Unknown is a claim type with no valid values. Envelope types that are
// generic over a claim use it where the claim shape is intentionally not
// yet specified; code paths that would digest one are unreachable with
// well-formed data, and the codec refuses to decode an unpruned Unknown.
type Unknown struct{}

// Digest panics: Unknown has no inhabitants to digest.
func (Unknown) Digest(core.HashFn) core.Digest {
	panic("claim: Unknown has no digest")
}

// Input is the guest input commitment. The field layout is reserved:
// the type currently has no valid values, so it can be populated in a
// later version without breaking digest compatibility.
type Input struct {
	x Unknown
}

// Digest panics: Input has no inhabitants to digest.
func (i Input) Digest(h core.HashFn) core.Digest {
	return i.x.Digest(h)
}

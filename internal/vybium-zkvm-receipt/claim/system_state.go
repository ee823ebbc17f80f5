package claim

import "github.com/vybium/vybium-zkvm-receipt/internal/vybium-zkvm-receipt/core"

// SystemState is the committed machine state at one point in execution.
type SystemState struct {
	// PC is the program counter.
	PC uint32

	// MerkleRoot is the root of the Merkle tree committing to the
	// memory image.
	MerkleRoot core.Digest
}

// Digest computes the canonical digest of the state.
func (s SystemState) Digest(h core.HashFn) core.Digest {
	return core.TaggedStruct(h, "risc0.SystemState",
		[]core.Digest{s.MerkleRoot}, []uint32{s.PC})
}

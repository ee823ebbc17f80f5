package claim

import "github.com/vybium/vybium-zkvm-receipt/internal/vybium-zkvm-receipt/core"

// ReceiptClaim is the canonical statement a receipt proves: execution
// went from Pre to Post, terminating with ExitCode, given Input,
// producing Output. Every field except the exit code may be pruned.
type ReceiptClaim struct {
	// Pre is the system state just before execution begins.
	Pre MaybePruned[SystemState]

	// Post is the system state just after execution completes.
	Post MaybePruned[SystemState]

	// ExitCode is how the execution terminated.
	ExitCode ExitCode

	// Input is the committed guest input.
	Input MaybePruned[Option[Input]]

	// Output is the committed guest output, including the journal and
	// any assumptions made during execution.
	Output MaybePruned[Option[Output]]
}

// Digest computes the canonical digest of the claim. The field order and
// tag are part of the wire contract.
func (c ReceiptClaim) Digest(h core.HashFn) core.Digest {
	sysExit, userExit := c.ExitCode.IntoPair()
	return core.TaggedStruct(h, "risc0.ReceiptClaim",
		[]core.Digest{
			c.Input.Digest(h),
			c.Pre.Digest(h),
			c.Post.Digest(h),
			c.Output.Digest(h),
		},
		[]uint32{sysExit, userExit})
}

// Ok builds the claim for a successful execution from pre to post with
// the given journal and no input or assumptions.
func Ok(pre, post SystemState, journal []byte) ReceiptClaim {
	return ReceiptClaim{
		Pre:      Value(pre),
		Post:     Value(post),
		ExitCode: Halted(0),
		Input:    Value(None[Input]()),
		Output: Value(Some(Output{
			Journal:     Value(core.Bytes(journal)),
			Assumptions: Value(Assumptions{}),
		})),
	}
}

package vybiumzkvmreceipt

import (
	"github.com/vybium/vybium-zkvm-receipt/internal/vybium-zkvm-receipt/claim"
	"github.com/vybium/vybium-zkvm-receipt/internal/vybium-zkvm-receipt/core"
	"github.com/vybium/vybium-zkvm-receipt/internal/vybium-zkvm-receipt/receipt"
)

// Digest is the 32-byte identifier produced by every hashing operation.
type Digest = core.Digest

// HashFn is the pluggable hashing capability used for all digests.
type HashFn = core.HashFn

// Digestible is implemented by every type with a canonical digest.
type Digestible = core.Digestible

// MerkleProof is a sibling-path inclusion proof for a control ID.
type MerkleProof = core.MerkleProof

// ExitCode indicates how a guest execution ended.
type ExitCode = claim.ExitCode

// SystemState is the committed machine state at a point in execution.
type SystemState = claim.SystemState

// Assumption references another claim an execution depends on.
type Assumption = claim.Assumption

// Assumptions is the ordered list of assumptions made by an execution.
type Assumptions = claim.Assumptions

// Output is the externally visible result of a guest execution.
type Output = claim.Output

// ReceiptClaim is the canonical statement a receipt proves.
type ReceiptClaim = claim.ReceiptClaim

// Receipt is the top-level attestation a verifier consumes.
type Receipt = receipt.Receipt

// InnerReceipt is the closed set of proof strategies backing a Receipt.
type InnerReceipt = receipt.InnerReceipt

// Journal holds the bytes the guest committed as its public output.
type Journal = receipt.Journal

// Halted means the guest exited normally with the given user code.
func Halted(userExit uint32) ExitCode { return claim.Halted(userExit) }

// Paused means the guest paused with the given user code.
func Paused(userExit uint32) ExitCode { return claim.Paused(userExit) }

// SystemSplit is the system-initiated exit splitting an execution into
// segments.
var SystemSplit = claim.SystemSplit

// SessionLimit is the system-initiated exit on reaching the session
// cycle limit.
var SessionLimit = claim.SessionLimit

// ExitCodeFromPair converts the (system, user) pair representation back
// into an ExitCode.
func ExitCodeFromPair(sysExit, userExit uint32) (ExitCode, error) {
	ec, err := claim.ExitCodeFromPair(sysExit, userExit)
	if err != nil {
		return ExitCode{}, &ReceiptError{
			Code:    ErrInvalidExitCode,
			Message: "invalid exit code pair",
			Cause:   err,
		}
	}
	return ec, nil
}

// SuiteFromName returns the hash capability registered under name, e.g.
// "sha-256".
func SuiteFromName(name string) (HashFn, error) {
	h, err := core.SuiteFromName(name)
	if err != nil {
		return nil, &ReceiptError{
			Code:    ErrUnknownHashSuite,
			Message: "unknown hash suite",
			Cause:   err,
		}
	}
	return h, nil
}

// Package vybiumzkvmreceipt provides canonical, domain-separated hashing
// and a polymorphic proof envelope for zkVM execution receipts.
//
// A receipt attests that a computation was executed inside a
// zero-knowledge virtual machine: it carries a structured claim (the
// machine states, exit code, input and output of the execution), a proof
// of that claim under one of several strategies, and the journal of
// bytes the guest committed as its public output.
//
// # Features
//
// - Tagged structural hashing with strict domain separation
// - Selective disclosure: any claim subtree can be replaced by its digest
// - Receipt envelopes for composite, succinct, Groth16 and fake proofs
// - Merkle inclusion proofs for control roots
// - Canonical seal extraction for external verifiers
// - Pluggable hash suites selected by name
//
// # Quick Start
//
// Converting a serialized receipt into a flat seal and journal:
//
//	proof, err := vybiumzkvmreceipt.Convert(receiptBytes)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("seal: %x\n", proof.Seal)
//	fmt.Printf("journal: %x\n", proof.Journal)
//
// Computing the canonical digest of a claim:
//
//	hashfn, err := vybiumzkvmreceipt.SuiteFromName("sha-256")
//	if err != nil {
//		log.Fatal(err)
//	}
//	digest := receiptClaim.Digest(hashfn)
//
// # Architecture
//
// The module uses a hybrid public/private layout:
//
// - pkg/vybium-zkvm-receipt/: Public API (this package)
// - internal/vybium-zkvm-receipt/: Private implementation (not importable)
//
// The public API provides stable interfaces for claim digests, receipt
// envelopes and seal extraction. Implementation details in internal/ can
// be refactored without breaking the public API.
//
// # Digest compatibility
//
// Tag strings, field orders and the list fold structure are part of the
// wire contract shared with external verifiers. They must never change
// without a version bump; a digest produced by this package must be
// reproducible bit for bit by an independent implementation.
package vybiumzkvmreceipt

package codec

import (
	"encoding/binary"
	"fmt"

	"github.com/vybium/vybium-zkvm-receipt/internal/vybium-zkvm-receipt/claim"
	"github.com/vybium/vybium-zkvm-receipt/internal/vybium-zkvm-receipt/core"
	"github.com/vybium/vybium-zkvm-receipt/internal/vybium-zkvm-receipt/receipt"
)

type encoder struct {
	buf []byte
}

func (e *encoder) u8(v byte) {
	e.buf = append(e.buf, v)
}

func (e *encoder) u32(v uint32) {
	e.buf = binary.LittleEndian.AppendUint32(e.buf, v)
}

func (e *encoder) u64(v uint64) {
	e.buf = binary.LittleEndian.AppendUint64(e.buf, v)
}

func (e *encoder) byteVec(b []byte) {
	e.u64(uint64(len(b)))
	e.buf = append(e.buf, b...)
}

func (e *encoder) wordVec(w []uint32) {
	e.u64(uint64(len(w)))
	for _, x := range w {
		e.u32(x)
	}
}

func (e *encoder) str(s string) {
	e.byteVec([]byte(s))
}

func (e *encoder) digest(d core.Digest) {
	b := d.Bytes()
	e.buf = append(e.buf, b[:]...)
}

// EncodeReceipt serializes a receipt in the layout DecodeReceipt
// consumes. It fails on malformed in-memory structures, such as an
// unpruned opaque assumption claim.
func EncodeReceipt(r *receipt.Receipt) ([]byte, error) {
	e := &encoder{}
	if err := e.receipt(r); err != nil {
		return nil, err
	}
	return e.buf, nil
}

func (e *encoder) receipt(r *receipt.Receipt) error {
	if err := e.innerReceipt(r.Inner); err != nil {
		return err
	}
	e.byteVec(r.Journal.Bytes)
	e.digest(r.Metadata.VerifierParameters)
	return nil
}

func (e *encoder) innerReceipt(inner receipt.InnerReceipt) error {
	switch r := inner.(type) {
	case *receipt.CompositeReceipt:
		e.u32(variantInnerComposite)
		return e.compositeReceipt(r)
	case *receipt.SuccinctReceipt[claim.ReceiptClaim]:
		e.u32(variantInnerSuccinct)
		return encodeSuccinct(e, r, e.maybePrunedReceiptClaim)
	case *receipt.Groth16Receipt[claim.ReceiptClaim]:
		e.u32(variantInnerGroth16)
		return encodeGroth16(e, r, e.maybePrunedReceiptClaim)
	case *receipt.FakeReceipt[claim.ReceiptClaim]:
		e.u32(variantInnerFake)
		return e.maybePrunedReceiptClaim(r.Claim)
	default:
		return fmt.Errorf("codec: cannot encode inner receipt %T", inner)
	}
}

func (e *encoder) innerAssumptionReceipt(inner receipt.InnerAssumptionReceipt) error {
	switch r := inner.(type) {
	case *receipt.CompositeReceipt:
		e.u32(variantInnerComposite)
		return e.compositeReceipt(r)
	case *receipt.SuccinctReceipt[claim.Unknown]:
		e.u32(variantInnerSuccinct)
		return encodeSuccinct(e, r, e.maybePrunedUnknown)
	case *receipt.Groth16Receipt[claim.Unknown]:
		e.u32(variantInnerGroth16)
		return encodeGroth16(e, r, e.maybePrunedUnknown)
	case *receipt.FakeReceipt[claim.Unknown]:
		e.u32(variantInnerFake)
		return e.maybePrunedUnknown(r.Claim)
	default:
		return fmt.Errorf("codec: cannot encode assumption receipt %T", inner)
	}
}

func (e *encoder) compositeReceipt(r *receipt.CompositeReceipt) error {
	e.u64(uint64(len(r.Segments)))
	for i := range r.Segments {
		e.segmentReceipt(&r.Segments[i])
	}
	e.u64(uint64(len(r.AssumptionReceipts)))
	for _, ar := range r.AssumptionReceipts {
		if err := e.innerAssumptionReceipt(ar); err != nil {
			return err
		}
	}
	e.digest(r.VerifierParameters)
	return nil
}

func (e *encoder) segmentReceipt(r *receipt.SegmentReceipt) {
	e.wordVec(r.Seal)
	e.u32(r.Index)
	e.str(r.Hashfn)
	e.digest(r.VerifierParameters)
	e.receiptClaim(r.Claim)
}

func encodeSuccinct[C core.Digestible](e *encoder, r *receipt.SuccinctReceipt[C], claimEnc func(claim.MaybePruned[C]) error) error {
	e.wordVec(r.Seal)
	e.digest(r.ControlID)
	if err := claimEnc(r.Claim); err != nil {
		return err
	}
	e.str(r.Hashfn)
	e.digest(r.VerifierParameters)
	e.merkleProof(&r.ControlInclusionProof)
	return nil
}

func encodeGroth16[C core.Digestible](e *encoder, r *receipt.Groth16Receipt[C], claimEnc func(claim.MaybePruned[C]) error) error {
	e.byteVec(r.Seal)
	if err := claimEnc(r.Claim); err != nil {
		return err
	}
	e.digest(r.VerifierParameters)
	return nil
}

func (e *encoder) merkleProof(p *core.MerkleProof) {
	e.u32(p.Index)
	e.u64(uint64(len(p.Digests)))
	for _, d := range p.Digests {
		e.digest(d)
	}
}

func (e *encoder) maybePrunedReceiptClaim(m claim.MaybePruned[claim.ReceiptClaim]) error {
	if m.IsPruned() {
		d, _ := m.PrunedDigest()
		e.u32(variantPruned)
		e.digest(d)
		return nil
	}
	c, _ := m.Get()
	e.u32(variantValue)
	e.receiptClaim(c)
	return nil
}

func (e *encoder) maybePrunedUnknown(m claim.MaybePruned[claim.Unknown]) error {
	if !m.IsPruned() {
		return ErrUnknownClaimValue
	}
	d, _ := m.PrunedDigest()
	e.u32(variantPruned)
	e.digest(d)
	return nil
}

func (e *encoder) receiptClaim(c claim.ReceiptClaim) {
	e.maybePrunedSystemState(c.Pre)
	e.maybePrunedSystemState(c.Post)
	e.exitCode(c.ExitCode)
	e.maybePrunedInput(c.Input)
	e.maybePrunedOutput(c.Output)
}

func (e *encoder) maybePrunedSystemState(m claim.MaybePruned[claim.SystemState]) {
	if m.IsPruned() {
		d, _ := m.PrunedDigest()
		e.u32(variantPruned)
		e.digest(d)
		return
	}
	s, _ := m.Get()
	e.u32(variantValue)
	e.u32(s.PC)
	e.digest(s.MerkleRoot)
}

func (e *encoder) exitCode(ec claim.ExitCode) {
	sys, user := ec.IntoPair()
	switch sys {
	case 0:
		e.u32(variantHalted)
		e.u32(user)
	case 1:
		e.u32(variantPaused)
		e.u32(user)
	default:
		if user == 2 {
			e.u32(variantSessionLimit)
		} else {
			e.u32(variantSystemSplit)
		}
	}
}

func (e *encoder) maybePrunedInput(m claim.MaybePruned[claim.Option[claim.Input]]) {
	if m.IsPruned() {
		d, _ := m.PrunedDigest()
		e.u32(variantPruned)
		e.digest(d)
		return
	}
	// The only representable unpruned input is the absent one.
	e.u32(variantValue)
	e.u8(0)
}

func (e *encoder) maybePrunedOutput(m claim.MaybePruned[claim.Option[claim.Output]]) {
	if m.IsPruned() {
		d, _ := m.PrunedDigest()
		e.u32(variantPruned)
		e.digest(d)
		return
	}
	o, _ := m.Get()
	e.u32(variantValue)
	out, some := o.Get()
	if !some {
		e.u8(0)
		return
	}
	e.u8(1)
	e.output(out)
}

func (e *encoder) output(o claim.Output) {
	if o.Journal.IsPruned() {
		d, _ := o.Journal.PrunedDigest()
		e.u32(variantPruned)
		e.digest(d)
	} else {
		j, _ := o.Journal.Get()
		e.u32(variantValue)
		e.byteVec([]byte(j))
	}

	if o.Assumptions.IsPruned() {
		d, _ := o.Assumptions.PrunedDigest()
		e.u32(variantPruned)
		e.digest(d)
	} else {
		as, _ := o.Assumptions.Get()
		e.u32(variantValue)
		e.u64(uint64(len(as)))
		for _, a := range as {
			e.maybePrunedAssumption(a)
		}
	}
}

func (e *encoder) maybePrunedAssumption(m claim.MaybePruned[claim.Assumption]) {
	if m.IsPruned() {
		d, _ := m.PrunedDigest()
		e.u32(variantPruned)
		e.digest(d)
		return
	}
	a, _ := m.Get()
	e.u32(variantValue)
	e.digest(a.Claim)
	e.digest(a.ControlRoot)
}

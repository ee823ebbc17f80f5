// Package codec serializes the receipt tree in the compact little-endian
// layout externally produced receipts arrive in: enum variants as u32
// indexes, sequence lengths as u64 prefixes, option tags as one byte,
// digests as 32 raw bytes. Decoding fully validates the structure; any
// malformed input is rejected with no partial result.
package codec

import (
	"errors"
	"fmt"

	"github.com/vybium/vybium-zkvm-receipt/internal/vybium-zkvm-receipt/claim"
	"github.com/vybium/vybium-zkvm-receipt/internal/vybium-zkvm-receipt/core"
	"github.com/vybium/vybium-zkvm-receipt/internal/vybium-zkvm-receipt/receipt"
)

var (
	// ErrUnexpectedEOF is returned when the input ends mid-record.
	ErrUnexpectedEOF = errors.New("codec: unexpected end of input")

	// ErrTrailingBytes is returned when input remains after a complete
	// receipt.
	ErrTrailingBytes = errors.New("codec: trailing bytes after receipt")

	// ErrUnknownClaimValue is returned when an encoding claims to carry
	// an unpruned value of an opaque claim type, which has no valid
	// values.
	ErrUnknownClaimValue = errors.New("codec: opaque claim must be pruned")

	// ErrInputValue is returned when an encoding carries a guest input
	// value; the input type is reserved and has no valid values yet.
	ErrInputValue = errors.New("codec: input has no valid values")
)

// Variant indexes of the encoded enums.
const (
	variantInnerComposite = 0
	variantInnerSuccinct  = 1
	variantInnerGroth16   = 2
	variantInnerFake      = 3

	variantValue  = 0
	variantPruned = 1

	variantHalted       = 0
	variantPaused       = 1
	variantSystemSplit  = 2
	variantSessionLimit = 3
)

type decoder struct {
	buf []byte
	off int
}

func (d *decoder) remaining() int {
	return len(d.buf) - d.off
}

func (d *decoder) u8() (byte, error) {
	if d.remaining() < 1 {
		return 0, ErrUnexpectedEOF
	}
	v := d.buf[d.off]
	d.off++
	return v, nil
}

func (d *decoder) u32() (uint32, error) {
	if d.remaining() < 4 {
		return 0, ErrUnexpectedEOF
	}
	b := d.buf[d.off:]
	v := uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
	d.off += 4
	return v, nil
}

func (d *decoder) u64() (uint64, error) {
	if d.remaining() < 8 {
		return 0, ErrUnexpectedEOF
	}
	var v uint64
	for i := 0; i < 8; i++ {
		v |= uint64(d.buf[d.off+i]) << (8 * i)
	}
	d.off += 8
	return v, nil
}

// length reads a u64 sequence length, bounding it by the bytes left so a
// corrupt prefix cannot drive a huge allocation.
func (d *decoder) length(elemSize int) (int, error) {
	n, err := d.u64()
	if err != nil {
		return 0, err
	}
	if n > uint64(d.remaining())/uint64(elemSize) {
		return 0, ErrUnexpectedEOF
	}
	return int(n), nil
}

func (d *decoder) bytes(n int) ([]byte, error) {
	if d.remaining() < n {
		return nil, ErrUnexpectedEOF
	}
	b := d.buf[d.off : d.off+n]
	d.off += n
	return b, nil
}

func (d *decoder) byteVec() ([]byte, error) {
	n, err := d.length(1)
	if err != nil {
		return nil, err
	}
	raw, err := d.bytes(n)
	if err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, raw)
	return out, nil
}

func (d *decoder) wordVec() ([]uint32, error) {
	n, err := d.length(core.WordSize)
	if err != nil {
		return nil, err
	}
	out := make([]uint32, n)
	for i := range out {
		w, err := d.u32()
		if err != nil {
			return nil, err
		}
		out[i] = w
	}
	return out, nil
}

func (d *decoder) str() (string, error) {
	b, err := d.byteVec()
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (d *decoder) digest() (core.Digest, error) {
	b, err := d.bytes(core.DigestBytes)
	if err != nil {
		return core.Digest{}, err
	}
	return core.DigestFromBytes([core.DigestBytes]byte(b)), nil
}

func (d *decoder) variant(name string, max uint32) (uint32, error) {
	v, err := d.u32()
	if err != nil {
		return 0, err
	}
	if v > max {
		return 0, fmt.Errorf("codec: invalid %s variant %d", name, v)
	}
	return v, nil
}

// DecodeReceipt decodes a serialized receipt, consuming the entire
// input.
func DecodeReceipt(data []byte) (*receipt.Receipt, error) {
	d := &decoder{buf: data}
	r, err := d.receipt()
	if err != nil {
		return nil, err
	}
	if d.remaining() != 0 {
		return nil, ErrTrailingBytes
	}
	return r, nil
}

func (d *decoder) receipt() (*receipt.Receipt, error) {
	inner, err := d.innerReceipt()
	if err != nil {
		return nil, err
	}
	journal, err := d.byteVec()
	if err != nil {
		return nil, err
	}
	vp, err := d.digest()
	if err != nil {
		return nil, err
	}
	return &receipt.Receipt{
		Inner:    inner,
		Journal:  receipt.Journal{Bytes: journal},
		Metadata: receipt.ReceiptMetadata{VerifierParameters: vp},
	}, nil
}

func (d *decoder) innerReceipt() (receipt.InnerReceipt, error) {
	v, err := d.variant("inner receipt", variantInnerFake)
	if err != nil {
		return nil, err
	}
	switch v {
	case variantInnerComposite:
		return d.compositeReceipt()
	case variantInnerSuccinct:
		return decodeSuccinct(d, d.maybePrunedReceiptClaim)
	case variantInnerGroth16:
		return decodeGroth16(d, d.maybePrunedReceiptClaim)
	default:
		return decodeFake(d, d.maybePrunedReceiptClaim)
	}
}

func (d *decoder) innerAssumptionReceipt() (receipt.InnerAssumptionReceipt, error) {
	v, err := d.variant("assumption receipt", variantInnerFake)
	if err != nil {
		return nil, err
	}
	switch v {
	case variantInnerComposite:
		return d.compositeReceipt()
	case variantInnerSuccinct:
		return decodeSuccinct(d, maybePrunedUnknown(d))
	case variantInnerGroth16:
		return decodeGroth16(d, maybePrunedUnknown(d))
	default:
		return decodeFake(d, maybePrunedUnknown(d))
	}
}

func (d *decoder) compositeReceipt() (*receipt.CompositeReceipt, error) {
	n, err := d.length(1)
	if err != nil {
		return nil, err
	}
	segments := make([]receipt.SegmentReceipt, n)
	for i := range segments {
		seg, err := d.segmentReceipt()
		if err != nil {
			return nil, err
		}
		segments[i] = seg
	}

	n, err = d.length(1)
	if err != nil {
		return nil, err
	}
	assumptions := make([]receipt.InnerAssumptionReceipt, n)
	for i := range assumptions {
		ar, err := d.innerAssumptionReceipt()
		if err != nil {
			return nil, err
		}
		assumptions[i] = ar
	}

	vp, err := d.digest()
	if err != nil {
		return nil, err
	}
	return &receipt.CompositeReceipt{
		Segments:           segments,
		AssumptionReceipts: assumptions,
		VerifierParameters: vp,
	}, nil
}

func (d *decoder) segmentReceipt() (receipt.SegmentReceipt, error) {
	var seg receipt.SegmentReceipt
	var err error
	if seg.Seal, err = d.wordVec(); err != nil {
		return seg, err
	}
	if seg.Index, err = d.u32(); err != nil {
		return seg, err
	}
	if seg.Hashfn, err = d.str(); err != nil {
		return seg, err
	}
	if seg.VerifierParameters, err = d.digest(); err != nil {
		return seg, err
	}
	if seg.Claim, err = d.receiptClaim(); err != nil {
		return seg, err
	}
	return seg, nil
}

func decodeSuccinct[C core.Digestible](d *decoder, claimDec func() (claim.MaybePruned[C], error)) (*receipt.SuccinctReceipt[C], error) {
	var r receipt.SuccinctReceipt[C]
	var err error
	if r.Seal, err = d.wordVec(); err != nil {
		return nil, err
	}
	if r.ControlID, err = d.digest(); err != nil {
		return nil, err
	}
	if r.Claim, err = claimDec(); err != nil {
		return nil, err
	}
	if r.Hashfn, err = d.str(); err != nil {
		return nil, err
	}
	if r.VerifierParameters, err = d.digest(); err != nil {
		return nil, err
	}
	if r.ControlInclusionProof, err = d.merkleProof(); err != nil {
		return nil, err
	}
	return &r, nil
}

func decodeGroth16[C core.Digestible](d *decoder, claimDec func() (claim.MaybePruned[C], error)) (*receipt.Groth16Receipt[C], error) {
	var r receipt.Groth16Receipt[C]
	var err error
	if r.Seal, err = d.byteVec(); err != nil {
		return nil, err
	}
	if r.Claim, err = claimDec(); err != nil {
		return nil, err
	}
	if r.VerifierParameters, err = d.digest(); err != nil {
		return nil, err
	}
	return &r, nil
}

func decodeFake[C core.Digestible](d *decoder, claimDec func() (claim.MaybePruned[C], error)) (*receipt.FakeReceipt[C], error) {
	c, err := claimDec()
	if err != nil {
		return nil, err
	}
	return &receipt.FakeReceipt[C]{Claim: c}, nil
}

func (d *decoder) merkleProof() (core.MerkleProof, error) {
	var p core.MerkleProof
	var err error
	if p.Index, err = d.u32(); err != nil {
		return p, err
	}
	n, err := d.length(core.DigestBytes)
	if err != nil {
		return p, err
	}
	p.Digests = make([]core.Digest, n)
	for i := range p.Digests {
		if p.Digests[i], err = d.digest(); err != nil {
			return p, err
		}
	}
	return p, nil
}

// maybePruned decodes the Value/Pruned union using dec for the unpruned
// payload.
func maybePruned[T core.Digestible](d *decoder, dec func() (T, error)) (claim.MaybePruned[T], error) {
	v, err := d.variant("maybe-pruned", variantPruned)
	if err != nil {
		return claim.MaybePruned[T]{}, err
	}
	if v == variantPruned {
		dg, err := d.digest()
		if err != nil {
			return claim.MaybePruned[T]{}, err
		}
		return claim.Pruned[T](dg), nil
	}
	val, err := dec()
	if err != nil {
		return claim.MaybePruned[T]{}, err
	}
	return claim.Value(val), nil
}

// maybePrunedUnknown accepts only the pruned form: the opaque claim type
// has no values to decode.
func maybePrunedUnknown(d *decoder) func() (claim.MaybePruned[claim.Unknown], error) {
	return func() (claim.MaybePruned[claim.Unknown], error) {
		return maybePruned(d, func() (claim.Unknown, error) {
			return claim.Unknown{}, ErrUnknownClaimValue
		})
	}
}

func (d *decoder) maybePrunedReceiptClaim() (claim.MaybePruned[claim.ReceiptClaim], error) {
	return maybePruned(d, d.receiptClaim)
}

func (d *decoder) receiptClaim() (claim.ReceiptClaim, error) {
	var c claim.ReceiptClaim
	var err error
	if c.Pre, err = maybePruned(d, d.systemState); err != nil {
		return c, err
	}
	if c.Post, err = maybePruned(d, d.systemState); err != nil {
		return c, err
	}
	if c.ExitCode, err = d.exitCode(); err != nil {
		return c, err
	}
	if c.Input, err = maybePruned(d, d.optionInput); err != nil {
		return c, err
	}
	if c.Output, err = maybePruned(d, d.optionOutput); err != nil {
		return c, err
	}
	return c, nil
}

func (d *decoder) exitCode() (claim.ExitCode, error) {
	v, err := d.variant("exit code", variantSessionLimit)
	if err != nil {
		return claim.ExitCode{}, err
	}
	switch v {
	case variantHalted:
		user, err := d.u32()
		if err != nil {
			return claim.ExitCode{}, err
		}
		return claim.Halted(user), nil
	case variantPaused:
		user, err := d.u32()
		if err != nil {
			return claim.ExitCode{}, err
		}
		return claim.Paused(user), nil
	case variantSystemSplit:
		return claim.SystemSplit, nil
	default:
		return claim.SessionLimit, nil
	}
}

func (d *decoder) systemState() (claim.SystemState, error) {
	var s claim.SystemState
	var err error
	if s.PC, err = d.u32(); err != nil {
		return s, err
	}
	if s.MerkleRoot, err = d.digest(); err != nil {
		return s, err
	}
	return s, nil
}

func (d *decoder) optionInput() (claim.Option[claim.Input], error) {
	tag, err := d.u8()
	if err != nil {
		return claim.Option[claim.Input]{}, err
	}
	if tag == 0 {
		return claim.None[claim.Input](), nil
	}
	return claim.Option[claim.Input]{}, ErrInputValue
}

func (d *decoder) optionOutput() (claim.Option[claim.Output], error) {
	tag, err := d.u8()
	if err != nil {
		return claim.Option[claim.Output]{}, err
	}
	if tag == 0 {
		return claim.None[claim.Output](), nil
	}
	out, err := d.output()
	if err != nil {
		return claim.Option[claim.Output]{}, err
	}
	return claim.Some(out), nil
}

func (d *decoder) output() (claim.Output, error) {
	var o claim.Output
	var err error
	if o.Journal, err = maybePruned(d, d.journalBytes); err != nil {
		return o, err
	}
	if o.Assumptions, err = maybePruned(d, d.assumptions); err != nil {
		return o, err
	}
	return o, nil
}

func (d *decoder) journalBytes() (core.Bytes, error) {
	b, err := d.byteVec()
	return core.Bytes(b), err
}

func (d *decoder) assumptions() (claim.Assumptions, error) {
	n, err := d.length(1)
	if err != nil {
		return nil, err
	}
	as := make(claim.Assumptions, n)
	for i := range as {
		if as[i], err = maybePruned(d, d.assumption); err != nil {
			return nil, err
		}
	}
	return as, nil
}

func (d *decoder) assumption() (claim.Assumption, error) {
	var a claim.Assumption
	var err error
	if a.Claim, err = d.digest(); err != nil {
		return a, err
	}
	if a.ControlRoot, err = d.digest(); err != nil {
		return a, err
	}
	return a, nil
}

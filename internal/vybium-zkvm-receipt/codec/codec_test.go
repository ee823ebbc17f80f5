package codec

import (
	"bytes"
	"errors"
	"testing"

	"github.com/vybium/vybium-zkvm-receipt/internal/vybium-zkvm-receipt/claim"
	"github.com/vybium/vybium-zkvm-receipt/internal/vybium-zkvm-receipt/core"
	"github.com/vybium/vybium-zkvm-receipt/internal/vybium-zkvm-receipt/receipt"
)

func testHash(t *testing.T) core.HashFn {
	t.Helper()
	h, err := core.SuiteFromName(core.SuiteSha256)
	if err != nil {
		t.Fatalf("resolving hash suite: %v", err)
	}
	return h
}

func testClaim(h core.HashFn) claim.ReceiptClaim {
	pre := claim.SystemState{PC: 0x1000, MerkleRoot: h.HashBytes([]byte("pre"))}
	post := claim.SystemState{PC: 0x2000, MerkleRoot: h.HashBytes([]byte("post"))}
	return claim.Ok(pre, post, []byte("journal"))
}

// reencode checks that decode(encode(r)) re-encodes to identical bytes
// and returns the decoded receipt.
func reencode(t *testing.T, r *receipt.Receipt) *receipt.Receipt {
	t.Helper()
	data, err := EncodeReceipt(r)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	decoded, err := DecodeReceipt(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	again, err := EncodeReceipt(decoded)
	if err != nil {
		t.Fatalf("re-encode: %v", err)
	}
	if !bytes.Equal(data, again) {
		t.Fatalf("re-encoded bytes differ:\n  first  %x\n  second %x", data, again)
	}
	return decoded
}

func TestGroth16ReceiptRoundTrip(t *testing.T) {
	h := testHash(t)
	r := &receipt.Receipt{
		Inner: &receipt.Groth16Receipt[claim.ReceiptClaim]{
			Seal:               []byte{1, 2, 3, 4},
			Claim:              claim.Value(testClaim(h)),
			VerifierParameters: h.HashBytes([]byte("vp")),
		},
		Journal:  receipt.Journal{Bytes: []byte{0x10, 0x20}},
		Metadata: receipt.ReceiptMetadata{VerifierParameters: h.HashBytes([]byte("vp"))},
	}

	decoded := reencode(t, r)
	inner, ok := decoded.Inner.(*receipt.Groth16Receipt[claim.ReceiptClaim])
	if !ok {
		t.Fatalf("decoded inner is %T", decoded.Inner)
	}
	if !bytes.Equal(inner.Seal, []byte{1, 2, 3, 4}) {
		t.Fatalf("seal = %x", inner.Seal)
	}
	if !bytes.Equal(decoded.Journal.Bytes, []byte{0x10, 0x20}) {
		t.Fatalf("journal = %x", decoded.Journal.Bytes)
	}
	if inner.Claim.Digest(h) != testClaim(h).Digest(h) {
		t.Fatal("claim digest changed across the round trip")
	}
}

func TestSuccinctReceiptRoundTrip(t *testing.T) {
	h := testHash(t)
	r := &receipt.Receipt{
		Inner: &receipt.SuccinctReceipt[claim.ReceiptClaim]{
			Seal:               []uint32{0xAABBCCDD, 1},
			ControlID:          h.HashBytes([]byte("control")),
			Claim:              claim.Value(testClaim(h)),
			Hashfn:             core.SuiteSha256,
			VerifierParameters: h.HashBytes([]byte("vp")),
			ControlInclusionProof: core.MerkleProof{
				Index:   3,
				Digests: []core.Digest{h.HashBytes([]byte("sib"))},
			},
		},
		Journal: receipt.Journal{Bytes: []byte("out")},
	}

	decoded := reencode(t, r)
	inner, ok := decoded.Inner.(*receipt.SuccinctReceipt[claim.ReceiptClaim])
	if !ok {
		t.Fatalf("decoded inner is %T", decoded.Inner)
	}
	if inner.Hashfn != core.SuiteSha256 {
		t.Fatalf("hashfn = %q", inner.Hashfn)
	}
	if inner.ControlInclusionProof.Index != 3 || inner.ControlInclusionProof.Depth() != 1 {
		t.Fatalf("inclusion proof = %+v", inner.ControlInclusionProof)
	}
}

func TestCompositeReceiptRoundTrip(t *testing.T) {
	h := testHash(t)
	c := testClaim(h)
	r := &receipt.Receipt{
		Inner: &receipt.CompositeReceipt{
			Segments: []receipt.SegmentReceipt{
				{Seal: []uint32{7}, Index: 0, Hashfn: core.SuiteSha256,
					VerifierParameters: h.HashBytes([]byte("vp")), Claim: c},
				{Seal: []uint32{8, 9}, Index: 1, Hashfn: core.SuiteSha256,
					VerifierParameters: h.HashBytes([]byte("vp")), Claim: c},
			},
			AssumptionReceipts: []receipt.InnerAssumptionReceipt{
				&receipt.FakeReceipt[claim.Unknown]{
					Claim: claim.Pruned[claim.Unknown](h.HashBytes([]byte("assumed"))),
				},
			},
			VerifierParameters: h.HashBytes([]byte("vp")),
		},
		Journal: receipt.Journal{Bytes: []byte("out")},
	}

	decoded := reencode(t, r)
	inner, ok := decoded.Inner.(*receipt.CompositeReceipt)
	if !ok {
		t.Fatalf("decoded inner is %T", decoded.Inner)
	}
	if len(inner.Segments) != 2 || len(inner.AssumptionReceipts) != 1 {
		t.Fatalf("decoded composite has %d segments, %d assumptions",
			len(inner.Segments), len(inner.AssumptionReceipts))
	}
	if inner.Segments[1].Index != 1 {
		t.Fatalf("segment index = %d", inner.Segments[1].Index)
	}
}

func TestFakeReceiptRoundTripWithPruning(t *testing.T) {
	h := testHash(t)
	c := testClaim(h)
	r := &receipt.Receipt{
		Inner: &receipt.FakeReceipt[claim.ReceiptClaim]{
			Claim: claim.Pruned[claim.ReceiptClaim](c.Digest(h)),
		},
		Journal: receipt.Journal{Bytes: []byte("out")},
	}

	decoded := reencode(t, r)
	inner := decoded.Inner.(*receipt.FakeReceipt[claim.ReceiptClaim])
	if !inner.Claim.IsPruned() {
		t.Fatal("pruning lost across round trip")
	}
	if inner.Claim.Digest(h) != c.Digest(h) {
		t.Fatal("pruned digest changed across round trip")
	}
}

func TestExitCodeEncodingVariants(t *testing.T) {
	h := testHash(t)
	for _, ec := range []claim.ExitCode{
		claim.Halted(0), claim.Halted(255), claim.Paused(7),
		claim.SystemSplit, claim.SessionLimit,
	} {
		c := testClaim(h)
		c.ExitCode = ec
		r := &receipt.Receipt{
			Inner:   &receipt.FakeReceipt[claim.ReceiptClaim]{Claim: claim.Value(c)},
			Journal: receipt.Journal{Bytes: []byte("out")},
		}
		decoded := reencode(t, r)
		got := decoded.Inner.(*receipt.FakeReceipt[claim.ReceiptClaim])
		dc, err := got.Claim.Get()
		if err != nil {
			t.Fatalf("%s: %v", ec, err)
		}
		if dc.ExitCode != ec {
			t.Fatalf("exit code round trip: got %s, want %s", dc.ExitCode, ec)
		}
	}
}

func TestDecodeRejectsMalformedInput(t *testing.T) {
	h := testHash(t)
	r := &receipt.Receipt{
		Inner:   &receipt.FakeReceipt[claim.ReceiptClaim]{Claim: claim.Value(testClaim(h))},
		Journal: receipt.Journal{Bytes: []byte("out")},
	}
	data, err := EncodeReceipt(r)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	if _, err := DecodeReceipt(nil); err == nil {
		t.Fatal("empty input must fail")
	}
	if _, err := DecodeReceipt(data[:len(data)/2]); err == nil {
		t.Fatal("truncated input must fail")
	}
	if _, err := DecodeReceipt(append(append([]byte{}, data...), 0xFF)); !errors.Is(err, ErrTrailingBytes) {
		t.Fatalf("trailing bytes: got %v", err)
	}

	// Corrupt the inner variant index.
	bad := append([]byte{}, data...)
	bad[0] = 9
	if _, err := DecodeReceipt(bad); err == nil {
		t.Fatal("invalid variant index must fail")
	}
}

func TestDecodeBoundsCorruptLength(t *testing.T) {
	// A receipt whose journal length prefix claims far more bytes than
	// remain must fail cleanly rather than allocate.
	h := testHash(t)
	r := &receipt.Receipt{
		Inner:   &receipt.FakeReceipt[claim.ReceiptClaim]{Claim: claim.Pruned[claim.ReceiptClaim](h.HashBytes([]byte("c")))},
		Journal: receipt.Journal{Bytes: []byte("j")},
	}
	data, err := EncodeReceipt(r)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	// The journal length prefix sits after the 4-byte variant index and
	// the 36-byte pruned claim.
	off := 4 + 4 + core.DigestBytes
	for i := 0; i < 8; i++ {
		data[off+i] = 0xFF
	}
	if _, err := DecodeReceipt(data); !errors.Is(err, ErrUnexpectedEOF) {
		t.Fatalf("got %v, want ErrUnexpectedEOF", err)
	}
}

func TestEncodeRejectsUnprunedUnknown(t *testing.T) {
	r := &receipt.Receipt{
		Inner: &receipt.CompositeReceipt{
			Segments: []receipt.SegmentReceipt{{Claim: testClaim(testHash(t))}},
			AssumptionReceipts: []receipt.InnerAssumptionReceipt{
				&receipt.FakeReceipt[claim.Unknown]{
					Claim: claim.Value(claim.Unknown{}),
				},
			},
		},
	}
	if _, err := EncodeReceipt(r); !errors.Is(err, ErrUnknownClaimValue) {
		t.Fatalf("got %v, want ErrUnknownClaimValue", err)
	}
}

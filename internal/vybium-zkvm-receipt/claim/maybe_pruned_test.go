package claim

import (
	"errors"
	"testing"

	"github.com/vybium/vybium-zkvm-receipt/internal/vybium-zkvm-receipt/core"
)

func testHash(t *testing.T) core.HashFn {
	t.Helper()
	h, err := core.SuiteFromName(core.SuiteSha256)
	if err != nil {
		t.Fatalf("resolving hash suite: %v", err)
	}
	return h
}

func TestPruningTransparency(t *testing.T) {
	h := testHash(t)
	state := SystemState{PC: 0x4000, MerkleRoot: h.HashBytes([]byte("mem"))}

	full := Value(state)
	pruned := Pruned[SystemState](state.Digest(h))

	if full.Digest(h) != state.Digest(h) {
		t.Fatal("digest of an unpruned node must equal the value digest")
	}
	if pruned.Digest(h) != state.Digest(h) {
		t.Fatal("digest of a pruned node must equal the stored digest")
	}
}

func TestPruningTransparencyInAncestor(t *testing.T) {
	h := testHash(t)

	journal := core.Bytes("hello")
	full := Output{
		Journal:     Value(journal),
		Assumptions: Value(Assumptions{}),
	}
	elided := Output{
		Journal:     Pruned[core.Bytes](journal.Digest(h)),
		Assumptions: Value(Assumptions{}),
	}

	if full.Digest(h) != elided.Digest(h) {
		t.Fatal("pruning a subtree must not change the ancestor digest")
	}
}

func TestMaybePrunedAccessors(t *testing.T) {
	h := testHash(t)
	state := SystemState{PC: 8, MerkleRoot: core.ZeroDigest}

	full := Value(state)
	if full.IsPruned() {
		t.Fatal("value node reported pruned")
	}
	got, err := full.Get()
	if err != nil {
		t.Fatalf("Get on value node: %v", err)
	}
	if got != state {
		t.Fatalf("Get = %+v, want %+v", got, state)
	}
	if _, err := full.PrunedDigest(); err == nil {
		t.Fatal("PrunedDigest must fail on a value node")
	}

	pruned := Pruned[SystemState](state.Digest(h))
	if !pruned.IsPruned() {
		t.Fatal("pruned node reported unpruned")
	}
	if _, err := pruned.Get(); !errors.Is(err, ErrPruned) {
		t.Fatalf("Get on pruned node: got %v, want ErrPruned", err)
	}
	d, err := pruned.PrunedDigest()
	if err != nil {
		t.Fatalf("PrunedDigest: %v", err)
	}
	if d != state.Digest(h) {
		t.Fatal("PrunedDigest must return the stored digest")
	}
}

func TestOptionDigest(t *testing.T) {
	h := testHash(t)

	if None[Output]().Digest(h) != core.ZeroDigest {
		t.Fatal("absent option must digest to zero")
	}

	out := Output{Journal: Value(core.Bytes("j")), Assumptions: Value(Assumptions{})}
	if Some(out).Digest(h) != out.Digest(h) {
		t.Fatal("present option must digest to the value digest")
	}
}

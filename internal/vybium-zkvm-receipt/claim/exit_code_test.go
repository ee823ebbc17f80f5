package claim

import (
	"errors"
	"testing"
)

func TestExitCodePairRoundTrip(t *testing.T) {
	for _, ec := range []ExitCode{
		Halted(0), Halted(255), Paused(7), SystemSplit, SessionLimit,
	} {
		sys, user := ec.IntoPair()
		back, err := ExitCodeFromPair(sys, user)
		if err != nil {
			t.Fatalf("%s: %v", ec, err)
		}
		if back != ec {
			t.Fatalf("%s: round trip gave %s", ec, back)
		}
	}
}

func TestExitCodePairValues(t *testing.T) {
	cases := []struct {
		ec        ExitCode
		sys, user uint32
	}{
		{Halted(255), 0, 255},
		{Paused(7), 1, 7},
		{SystemSplit, 2, 0},
		{SessionLimit, 2, 2},
	}
	for _, c := range cases {
		sys, user := c.ec.IntoPair()
		if sys != c.sys || user != c.user {
			t.Fatalf("%s: got (%d, %d), want (%d, %d)", c.ec, sys, user, c.sys, c.user)
		}
	}
}

func TestExitCodeFromPairInvalid(t *testing.T) {
	_, err := ExitCodeFromPair(3, 0)
	if err == nil {
		t.Fatal("expected error for system code 3")
	}
	var invalid *InvalidExitCodeError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidExitCodeError, got %T", err)
	}
	if invalid.SysExit != 3 || invalid.UserExit != 0 {
		t.Fatalf("error must carry the offending pair, got (%d, %d)",
			invalid.SysExit, invalid.UserExit)
	}
}

func TestExpectsOutput(t *testing.T) {
	if !Halted(1).ExpectsOutput() || !Paused(0).ExpectsOutput() {
		t.Fatal("Halted and Paused carry guest output")
	}
	if SystemSplit.ExpectsOutput() || SessionLimit.ExpectsOutput() {
		t.Fatal("system-initiated exits carry no guest output")
	}
}

func TestIsOk(t *testing.T) {
	if !Halted(0).IsOk() {
		t.Fatal("Halted(0) is ok")
	}
	for _, ec := range []ExitCode{Halted(1), Paused(0), SystemSplit, SessionLimit} {
		if ec.IsOk() {
			t.Fatalf("%s must not be ok", ec)
		}
	}
}

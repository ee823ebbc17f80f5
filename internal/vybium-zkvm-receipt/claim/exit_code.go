// Package claim defines the structured statement a receipt attests to:
// the machine states, exit code, input and output of a zkVM execution,
// together with the selective-disclosure wrapper that lets any subtree be
// replaced by its digest.
package claim

import "fmt"

type exitKind uint32

const (
	kindHalted exitKind = iota
	kindPaused
	kindSystemSplit
	kindSessionLimit
)

// ExitCode indicates how a guest execution ended.
type ExitCode struct {
	kind exitKind
	user uint32
}

// Halted means the guest exited normally with the given user code.
func Halted(userExit uint32) ExitCode {
	return ExitCode{kind: kindHalted, user: userExit}
}

// Paused means the guest paused with the given user code and can be
// resumed.
func Paused(userExit uint32) ExitCode {
	return ExitCode{kind: kindPaused, user: userExit}
}

// SystemSplit is a system-initiated exit splitting the execution into
// segments.
var SystemSplit = ExitCode{kind: kindSystemSplit}

// SessionLimit is a system-initiated exit on reaching the session cycle
// limit.
var SessionLimit = ExitCode{kind: kindSessionLimit, user: 2}

// InvalidExitCodeError reports a (system, user) pair that maps to no
// ExitCode.
type InvalidExitCodeError struct {
	SysExit  uint32
	UserExit uint32
}

func (e *InvalidExitCodeError) Error() string {
	return fmt.Sprintf("invalid exit code pair (%d, %d)", e.SysExit, e.UserExit)
}

// IntoPair converts the exit code into its (system, user) pair
// representation, e.g. Halted(255) -> (0, 255).
func (e ExitCode) IntoPair() (sysExit, userExit uint32) {
	switch e.kind {
	case kindHalted:
		return 0, e.user
	case kindPaused:
		return 1, e.user
	case kindSystemSplit:
		return 2, 0
	case kindSessionLimit:
		return 2, 2
	default:
		panic(fmt.Sprintf("claim: unknown exit kind %d", e.kind))
	}
}

// ExitCodeFromPair converts the (system, user) pair representation back
// into an ExitCode. System codes outside {0, 1, 2} are invalid.
func ExitCodeFromPair(sysExit, userExit uint32) (ExitCode, error) {
	switch sysExit {
	case 0:
		return Halted(userExit), nil
	case 1:
		return Paused(userExit), nil
	case 2:
		if userExit == 2 {
			return SessionLimit, nil
		}
		return SystemSplit, nil
	default:
		return ExitCode{}, &InvalidExitCodeError{SysExit: sysExit, UserExit: userExit}
	}
}

// ExpectsOutput reports whether the verifier should expect a non-empty
// output field. Halted and Paused can carry guest output; system
// initiated exits do not.
func (e ExitCode) ExpectsOutput() bool {
	return e.kind == kindHalted || e.kind == kindPaused
}

// IsOk reports whether the guest exited with an ok status, i.e.
// Halted(0).
func (e ExitCode) IsOk() bool {
	return e.kind == kindHalted && e.user == 0
}

// String names the exit code for diagnostics.
func (e ExitCode) String() string {
	switch e.kind {
	case kindHalted:
		return fmt.Sprintf("Halted(%d)", e.user)
	case kindPaused:
		return fmt.Sprintf("Paused(%d)", e.user)
	case kindSystemSplit:
		return "SystemSplit"
	case kindSessionLimit:
		return "SessionLimit"
	default:
		return "unknown"
	}
}

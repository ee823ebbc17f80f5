package vybiumzkvmreceipt

import "fmt"

// ErrorCode classifies a receipt processing error.
type ErrorCode int

const (
	// ErrUnknown represents an unknown error
	ErrUnknown ErrorCode = iota

	// ErrDecode represents a malformed serialized receipt
	ErrDecode

	// ErrUnsupportedReceipt represents an operation applied to a proof
	// strategy that does not support it
	ErrUnsupportedReceipt

	// ErrInvalidExitCode represents an exit-code pair with no valid
	// mapping
	ErrInvalidExitCode

	// ErrPrunedValue represents an access to a value that has been
	// pruned down to its digest
	ErrPrunedValue

	// ErrUnknownHashSuite represents a hash function name with no
	// registered suite
	ErrUnknownHashSuite
)

// ReceiptError is the error type returned by the public API.
type ReceiptError struct {
	Code    ErrorCode
	Message string
	Cause   error
}

// Error returns the error message
func (e *ReceiptError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("vybium-zkvm-receipt error [%d]: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("vybium-zkvm-receipt error [%d]: %s", e.Code, e.Message)
}

// Unwrap returns the cause of the error
func (e *ReceiptError) Unwrap() error {
	return e.Cause
}

// Is checks if the error matches the target error
func (e *ReceiptError) Is(target error) bool {
	t, ok := target.(*ReceiptError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

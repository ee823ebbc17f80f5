package vybiumzkvmreceipt

import (
	"github.com/vybium/vybium-zkvm-receipt/internal/vybium-zkvm-receipt/codec"
	"github.com/vybium/vybium-zkvm-receipt/internal/vybium-zkvm-receipt/receipt"
)

// ProofData is the flattened form of a receipt: the canonical seal
// encoding an external verifier consumes, and the journal bytes the
// guest committed, unchanged.
type ProofData struct {
	Seal    []byte
	Journal []byte
}

// Convert decodes a serialized receipt, extracts its flattened seal and
// returns it alongside the journal. It fails if the bytes do not decode
// to a receipt or if the receipt's proof strategy has no flattened seal
// encoding (only Groth16-backed receipts do).
func Convert(data []byte) (*ProofData, error) {
	rec, err := DecodeReceipt(data)
	if err != nil {
		return nil, err
	}
	seal, err := EncodeSeal(rec)
	if err != nil {
		return nil, err
	}
	return &ProofData{Seal: seal, Journal: rec.Journal.Bytes}, nil
}

// DecodeReceipt decodes a serialized receipt.
func DecodeReceipt(data []byte) (*Receipt, error) {
	rec, err := codec.DecodeReceipt(data)
	if err != nil {
		return nil, &ReceiptError{
			Code:    ErrDecode,
			Message: "malformed serialized receipt",
			Cause:   err,
		}
	}
	return rec, nil
}

// EncodeReceipt serializes a receipt in the layout DecodeReceipt
// consumes.
func EncodeReceipt(r *Receipt) ([]byte, error) {
	data, err := codec.EncodeReceipt(r)
	if err != nil {
		return nil, &ReceiptError{
			Code:    ErrDecode,
			Message: "receipt cannot be serialized",
			Cause:   err,
		}
	}
	return data, nil
}

// EncodeSeal flattens a receipt's seal into its canonical byte encoding.
func EncodeSeal(r *Receipt) ([]byte, error) {
	seal, err := receipt.EncodeSeal(r)
	if err != nil {
		return nil, &ReceiptError{
			Code:    ErrUnsupportedReceipt,
			Message: "receipt has no flattened seal encoding",
			Cause:   err,
		}
	}
	return seal, nil
}

package core

import (
	"crypto/sha256"
	"testing"
)

func TestDigestFromBytesRoundTrip(t *testing.T) {
	var b [DigestBytes]byte
	for i := range b {
		b[i] = byte(i * 7)
	}

	d := DigestFromBytes(b)
	if got := d.Bytes(); got != b {
		t.Fatalf("byte view does not match input: got %x, want %x", got, b)
	}
}

func TestDigestWordsAndBytesAgree(t *testing.T) {
	d := NewDigest([DigestWords]uint32{1, 2, 3, 4, 5, 6, 7, 8})
	b := d.Bytes()

	// Word 0 is 1, serialized little-endian.
	if b[0] != 1 || b[1] != 0 || b[2] != 0 || b[3] != 0 {
		t.Fatalf("unexpected serialization of word 0: %x", b[:4])
	}
	if len(d.Words()) != DigestWords {
		t.Fatalf("expected %d words, got %d", DigestWords, len(d.Words()))
	}
}

func TestZeroDigestIsAllZero(t *testing.T) {
	b := ZeroDigest.Bytes()
	for i, v := range b {
		if v != 0 {
			t.Fatalf("byte %d of zero digest is %d", i, v)
		}
	}
}

func TestSHA256InitBytes(t *testing.T) {
	b := SHA256Init.Bytes()
	// First state word of FIPS 180-4, big-endian.
	want := [4]byte{0x6a, 0x09, 0xe6, 0x67}
	if [4]byte(b[:4]) != want {
		t.Fatalf("unexpected IV prefix: %x", b[:4])
	}
}

func TestDigestString(t *testing.T) {
	d := DigestFromBytes(sha256.Sum256([]byte("abc")))
	want := "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"
	if d.String() != want {
		t.Fatalf("got %s, want %s", d.String(), want)
	}
}

func TestBytesDigestIsUntagged(t *testing.T) {
	h := sha256Suite{}
	data := []byte{0x10, 0x20, 0x30}
	if got, want := Bytes(data).Digest(h), h.HashBytes(data); got != want {
		t.Fatalf("byte content must hash directly: got %s, want %s", got, want)
	}
}

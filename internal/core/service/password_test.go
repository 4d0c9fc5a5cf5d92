package service

import "testing"

func TestBcryptHasher_SaltedDigests(t *testing.T) {
	h := NewBcryptHasher(4) // min cost keeps the test fast

	d1, err := h.Hash("hunter22")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	d2, err := h.Hash("hunter22")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if d1 == d2 {
		t.Fatalf("expected salted digests to differ")
	}
	if d1 == "hunter22" {
		t.Fatalf("digest must not equal the plaintext")
	}

	if !h.Verify("hunter22", d1) || !h.Verify("hunter22", d2) {
		t.Fatalf("Verify must accept either digest of the same plaintext")
	}
	if h.Verify("wrong", d1) {
		t.Fatalf("Verify must reject a wrong password")
	}
}

func TestBcryptHasher_CostFallback(t *testing.T) {
	h := NewBcryptHasher(99)

	digest, err := h.Hash("pw")
	if err != nil {
		t.Fatalf("Hash with clamped cost returned error: %v", err)
	}
	if !h.Verify("pw", digest) {
		t.Fatalf("Verify failed for clamped-cost digest")
	}
}

package hash

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_RoundTrip(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	hashed, err := h.Hash("s3cret")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if hashed == "s3cret" {
		t.Fatalf("hash must not equal plaintext")
	}
	if !h.Verify("s3cret", hashed) {
		t.Fatalf("Verify failed for matching password")
	}
	if h.Verify("other", hashed) {
		t.Fatalf("Verify succeeded for non-matching password")
	}
}

func TestBcryptHasher_DistinctHashesVerifyIndependently(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	hashP, _ := h.Hash("p")
	hashQ, _ := h.Hash("q")

	if h.Verify("p", hashQ) {
		t.Fatalf("p must not verify against hash(q)")
	}
	if !h.Verify("q", hashQ) {
		t.Fatalf("q must verify against hash(q)")
	}
	if hashP == hashQ {
		t.Fatalf("different passwords produced identical hashes")
	}
}

func TestNewBcryptHasher_InvalidCostFallsBack(t *testing.T) {
	h := NewBcryptHasher(-1)
	if h.cost != bcrypt.DefaultCost {
		t.Fatalf("expected default cost, got %d", h.cost)
	}
}

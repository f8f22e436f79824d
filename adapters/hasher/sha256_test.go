package hasher

import (
	"strings"
	"testing"
)

func TestFingerprint(t *testing.T) {
	h := New()

	if got := Fingerprint(h, ""); got != "" {
		t.Errorf("expected empty fingerprint, got %q", got)
	}

	fp := Fingerprint(h, "gsk_secret")
	if len(fp) != 12 {
		t.Fatalf("expected 12 chars, got %d", len(fp))
	}
	if strings.Contains(fp, "secret") {
		t.Error("fingerprint leaks the key")
	}
	if fp != Fingerprint(h, "gsk_secret") {
		t.Error("fingerprint is not stable")
	}
	if fp == Fingerprint(h, "gsk_other") {
		t.Error("different keys share a fingerprint")
	}
	// sha256("abc")
	if got := h.Hash([]byte("abc")); got != "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad" {
		t.Errorf("unexpected digest %s", got)
	}
}

package token

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestCodec_RoundTrip(t *testing.T) {
	c := New("secret", time.Hour)

	signed, err := c.Issue("u1", "alice@example.com", "admin")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	claims, err := c.Verify(signed)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.UserID() != "u1" {
		t.Errorf("expected subject u1, got %q", claims.UserID())
	}
	if claims.Email != "alice@example.com" {
		t.Errorf("unexpected email %q", claims.Email)
	}
	if claims.Role != "admin" {
		t.Errorf("unexpected role %q", claims.Role)
	}
	if claims.ExpiresAt.Time.Before(claims.IssuedAt.Time) {
		t.Error("expiry precedes issuance")
	}
}

func TestCodec_DefaultTTL(t *testing.T) {
	c := New("secret", 0)
	if c.TTL() != DefaultTTL {
		t.Fatalf("expected %v, got %v", DefaultTTL, c.TTL())
	}
}

func TestCodec_Expired(t *testing.T) {
	c := New("secret", -time.Minute)

	signed, err := c.Issue("u1", "alice@example.com", "admin")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := c.Verify(signed); !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid for expired token, got %v", err)
	}
}

func TestCodec_TamperedSignature(t *testing.T) {
	c := New("secret", time.Hour)

	signed, err := c.Issue("u1", "alice@example.com", "admin")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	parts := strings.Split(signed, ".")
	if len(parts) != 3 {
		t.Fatalf("expected 3 token segments, got %d", len(parts))
	}
	sig := []byte(parts[2])
	for i := range sig {
		flipped := make([]byte, len(sig))
		copy(flipped, sig)
		if flipped[i] == 'A' {
			flipped[i] = 'B'
		} else {
			flipped[i] = 'A'
		}
		tampered := parts[0] + "." + parts[1] + "." + string(flipped)
		if _, err := c.Verify(tampered); !errors.Is(err, ErrInvalid) {
			t.Fatalf("byte %d: expected ErrInvalid for tampered signature, got %v", i, err)
		}
	}
}

func TestCodec_ForeignKey(t *testing.T) {
	issuer := New("secret-a", time.Hour)
	verifier := New("secret-b", time.Hour)

	signed, err := issuer.Issue("u1", "alice@example.com", "admin")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := verifier.Verify(signed); !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid for foreign-key token, got %v", err)
	}
}

func TestCodec_Malformed(t *testing.T) {
	c := New("secret", time.Hour)
	for _, raw := range []string{"", "not-a-token", "a.b", "a.b.c"} {
		if _, err := c.Verify(raw); !errors.Is(err, ErrInvalid) {
			t.Fatalf("input %q: expected ErrInvalid, got %v", raw, err)
		}
	}
}

package crypto

import (
	"testing"
	"time"
)

func testTokenConfig() TokenConfig {
	return TokenConfig{
		Secret:   "test-secret",
		Issuer:   "taskhive",
		Audience: "taskhive-api",
		TTL:      15 * time.Minute,
	}
}

func TestIssueAndValidate(t *testing.T) {
	issuer := NewTokenIssuer(testTokenConfig())

	token, err := issuer.Issue("identity-1", "alice", "a@x.com")
	if err != nil {
		t.Fatalf("Issue() unexpected error: %v", err)
	}

	claims, err := issuer.Validate(token)
	if err != nil {
		t.Fatalf("Validate() unexpected error: %v", err)
	}

	if claims.Subject != "identity-1" {
		t.Errorf("subject = %q, want %q", claims.Subject, "identity-1")
	}
	if claims.Username != "alice" || claims.Email != "a@x.com" {
		t.Errorf("claims = %q/%q, want alice/a@x.com", claims.Username, claims.Email)
	}

	lifetime := claims.ExpiresAt.Sub(claims.IssuedAt.Time)
	if lifetime != 15*time.Minute {
		t.Errorf("token lifetime = %v, want 15m", lifetime)
	}
}

func TestValidateRejectsExpiredToken(t *testing.T) {
	// TTL <= 0 falls back to the default, so use a tiny TTL and wait it out.
	cfg := testTokenConfig()
	cfg.TTL = time.Millisecond
	issuer := &TokenIssuer{cfg: cfg}
	token, err := issuer.Issue("identity-1", "alice", "a@x.com")
	if err != nil {
		t.Fatalf("Issue() unexpected error: %v", err)
	}

	time.Sleep(5 * time.Millisecond)

	if _, err := issuer.Validate(token); err == nil {
		t.Error("Validate() accepted an expired token")
	}
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	issuer := NewTokenIssuer(testTokenConfig())
	token, err := issuer.Issue("identity-1", "alice", "a@x.com")
	if err != nil {
		t.Fatalf("Issue() unexpected error: %v", err)
	}

	other := testTokenConfig()
	other.Secret = "another-secret"
	if _, err := ValidateToken(token, other); err == nil {
		t.Error("ValidateToken() accepted a token signed with a different secret")
	}
}

func TestValidateRejectsWrongIssuerOrAudience(t *testing.T) {
	issuer := NewTokenIssuer(testTokenConfig())
	token, err := issuer.Issue("identity-1", "alice", "a@x.com")
	if err != nil {
		t.Fatalf("Issue() unexpected error: %v", err)
	}

	badIssuer := testTokenConfig()
	badIssuer.Issuer = "someone-else"
	if _, err := ValidateToken(token, badIssuer); err == nil {
		t.Error("ValidateToken() accepted a token with the wrong issuer")
	}

	badAudience := testTokenConfig()
	badAudience.Audience = "other-api"
	if _, err := ValidateToken(token, badAudience); err == nil {
		t.Error("ValidateToken() accepted a token with the wrong audience")
	}
}

func TestValidateRejectsGarbage(t *testing.T) {
	if _, err := ValidateToken("not.a.token", testTokenConfig()); err == nil {
		t.Error("ValidateToken() accepted garbage input")
	}
}

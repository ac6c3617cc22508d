package crypto

import (
	"errors"
	"testing"
)

func TestValidateAcceptsStrongPassword(t *testing.T) {
	policy := NewPolicy()
	if err := policy.Validate("Abc12345!"); err != nil {
		t.Fatalf("Validate() unexpected error: %v", err)
	}
}

func TestValidateNamesFirstFailingRule(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     ViolationReason
	}{
		{"too short", "Ab1!", ReasonTooShort},
		{"seven chars is still short", "Abc123!", ReasonTooShort},
		{"no uppercase", "abc12345!", ReasonNoUppercase},
		{"no lowercase", "ABC12345!", ReasonNoLowercase},
		{"no digit", "Abcdefgh!", ReasonNoDigit},
		{"no special char", "Abc12345", ReasonNoSpecialChar},
		{"length beats character classes", "a1!", ReasonTooShort},
		{"missing upper reported before missing digit", "abcdefg!!", ReasonNoUppercase},
	}

	policy := NewPolicy()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := policy.Validate(tt.password)
			if err == nil {
				t.Fatalf("Validate(%q) expected violation, got nil", tt.password)
			}
			var violation *PolicyViolation
			if !errors.As(err, &violation) {
				t.Fatalf("Validate(%q) returned %T, want *PolicyViolation", tt.password, err)
			}
			if violation.Reason != tt.want {
				t.Errorf("Validate(%q) reason = %q, want %q", tt.password, violation.Reason, tt.want)
			}
		})
	}
}

func TestValidateUnderscoreCountsAsSpecial(t *testing.T) {
	policy := NewPolicy()
	if err := policy.Validate("Abc12345_"); err != nil {
		t.Errorf("Validate() unexpected error: %v", err)
	}
}

package crypto

import (
	"fmt"
	"unicode"
)

// ViolationReason identifies the first password rule that failed. Rules are
// checked in a fixed order so the reported reason is deterministic.
type ViolationReason string

const (
	ReasonTooShort      ViolationReason = "too_short"
	ReasonNoUppercase   ViolationReason = "no_uppercase"
	ReasonNoLowercase   ViolationReason = "no_lowercase"
	ReasonNoDigit       ViolationReason = "no_digit"
	ReasonNoSpecialChar ViolationReason = "no_special_char"
)

// PolicyViolation is returned by Policy.Validate as a plain error value.
type PolicyViolation struct {
	Reason  ViolationReason
	Message string
}

func (v *PolicyViolation) Error() string {
	return v.Message
}

// MinPasswordLength is the minimum accepted password length.
const MinPasswordLength = 8

// Policy validates password strength before hashing. It holds no state and is
// safe for concurrent use.
type Policy struct{}

// NewPolicy returns the default password policy.
func NewPolicy() Policy {
	return Policy{}
}

// Validate checks the password against the ordered rule set and returns a
// *PolicyViolation naming the first failing rule, or nil when all rules pass.
func (Policy) Validate(password string) error {
	if len([]rune(password)) < MinPasswordLength {
		return &PolicyViolation{
			Reason:  ReasonTooShort,
			Message: fmt.Sprintf("password must be at least %d characters long", MinPasswordLength),
		}
	}

	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			hasSpecial = true
		}
	}

	switch {
	case !hasUpper:
		return &PolicyViolation{Reason: ReasonNoUppercase, Message: "password must contain at least one uppercase letter"}
	case !hasLower:
		return &PolicyViolation{Reason: ReasonNoLowercase, Message: "password must contain at least one lowercase letter"}
	case !hasDigit:
		return &PolicyViolation{Reason: ReasonNoDigit, Message: "password must contain at least one digit"}
	case !hasSpecial:
		return &PolicyViolation{Reason: ReasonNoSpecialChar, Message: "password must contain at least one special character"}
	}
	return nil
}

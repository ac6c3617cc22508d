package crypto

import "golang.org/x/crypto/bcrypt"

// Hasher performs one-way password hashing. bcrypt embeds a per-call random
// salt in the output, so two hashes of the same password never match and
// verification needs no separate salt storage.
type Hasher struct {
	cost int
}

// NewHasher builds a Hasher with the given bcrypt cost. Costs outside the
// supported range fall back to the bcrypt default.
func NewHasher(cost int) Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return Hasher{cost: cost}
}

// Generate hashes the plaintext password.
func (h Hasher) Generate(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify reports whether the plaintext matches the stored hash. The
// comparison inside bcrypt is constant-time; malformed hashes yield false
// rather than an error.
func (h Hasher) Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

package crypto

import "testing"

func TestGenerateIsSalted(t *testing.T) {
	hasher := NewHasher(4)

	first, err := hasher.Generate("Abc12345!")
	if err != nil {
		t.Fatalf("Generate() unexpected error: %v", err)
	}
	second, err := hasher.Generate("Abc12345!")
	if err != nil {
		t.Fatalf("Generate() unexpected error: %v", err)
	}

	if first == second {
		t.Error("Generate() produced identical hashes for the same password")
	}
	if !hasher.Verify("Abc12345!", first) || !hasher.Verify("Abc12345!", second) {
		t.Error("Verify() rejected a freshly generated hash")
	}
}

func TestVerifyWrongPassword(t *testing.T) {
	hasher := NewHasher(4)

	hash, err := hasher.Generate("correct-password")
	if err != nil {
		t.Fatalf("Generate() unexpected error: %v", err)
	}

	if hasher.Verify("wrong-password", hash) {
		t.Error("Verify() accepted the wrong password")
	}
}

func TestVerifyMalformedHash(t *testing.T) {
	hasher := NewHasher(4)

	for _, hash := range []string{"", "not-a-bcrypt-hash", "$2a$garbage"} {
		if hasher.Verify("anything", hash) {
			t.Errorf("Verify() accepted malformed hash %q", hash)
		}
	}
}

func TestNewHasherClampsCost(t *testing.T) {
	// Out-of-range costs must still produce a working hasher.
	hasher := NewHasher(99)
	hash, err := hasher.Generate("Abc12345!")
	if err != nil {
		t.Fatalf("Generate() unexpected error: %v", err)
	}
	if !hasher.Verify("Abc12345!", hash) {
		t.Error("Verify() rejected hash from clamped-cost hasher")
	}
}

package helpers

import "golang.org/x/crypto/bcrypt"

// HashPassword hashes the plaintext with bcrypt at the given cost. bcrypt
// embeds a fresh random salt per call, so equal plaintexts hash differently.
func HashPassword(plain string, cost int) (string, error) {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	b, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// CompareHashAndPassword compares a bcrypt hash with a plaintext in constant
// time relative to the digest.
func CompareHashAndPassword(hash string, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

// NewDummyHash produces a reference hash used to keep the unknown-user login
// path timing-comparable with the wrong-password path.
func NewDummyHash(cost int) (string, error) {
	return HashPassword("dummy-timing-reference", cost)
}

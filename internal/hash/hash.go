package hash

import "golang.org/x/crypto/bcrypt"

const cost = bcrypt.DefaultCost

// Password returns a salted bcrypt hash of the plaintext. Hashing the
// same plaintext twice yields different outputs.
func Password(plaintext string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), cost)
	if err != nil {
		return "", err
	}

	return string(hashed), nil
}

// Verify reports whether plaintext matches the stored bcrypt hash.
func Verify(plaintext, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plaintext)) == nil
}

package utils

import "golang.org/x/crypto/bcrypt"

// Cost 12 keeps hashing around tens of milliseconds, slow enough for
// stored credentials without dragging down login latency.
const bcryptCost = 12

// HashPassword returns the bcrypt hash stored in the users table
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	return string(bytes), err
}

// ComparePassword reports whether the plain password matches the stored
// hash
func ComparePassword(hashedPassword, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)) == nil
}

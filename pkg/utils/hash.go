package utils

import "golang.org/x/crypto/bcrypt"

const passwordCost = 10

// HashPassword returns the bcrypt hash stored in users.password.
func HashPassword(p string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(p), passwordCost)
	return string(bytes), err
}

// CheckPassword reports whether pass matches hash. A malformed hash never matches.
func CheckPassword(hash, pass string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(pass))
	return err == nil
}

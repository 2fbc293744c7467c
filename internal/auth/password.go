package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword derives the stored hash from a plaintext password. Hashing is
// an explicit step at the service layer, not a persistence hook: the caller
// decides when it happens.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

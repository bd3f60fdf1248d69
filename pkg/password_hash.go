package pkg

import "golang.org/x/crypto/bcrypt"

// bcrypt cost for user password hashes. Raising it invalidates nothing,
// new hashes just get slower to compute.
const passwordHashCost = 14

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), passwordHashCost)
	return BytesToString(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

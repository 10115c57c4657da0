package signup

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

//BcryptHasher hashes passwords with a cost fixed at construction. The cost
// is embedded in every hash it produces
type BcryptHasher struct {
	cost int
}

func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrHashPassword, err)
	}
	return string(hash), nil
}

func hashMatchesPassword(hash, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

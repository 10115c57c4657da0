package signup

import (
	"context"
)

type service struct {
	hasher   Hasher
	accounts Repository
}

func NewService(hasher Hasher, accounts Repository) AddAccount {
	return &service{hasher: hasher, accounts: accounts}
}

//Add hashes the password and stores the account exactly once. Any failure
// is returned to the caller untouched
func (svc *service) Add(ctx context.Context, r AddAccountRequest) (*Account, error) {
	hash, err := svc.hasher.Hash(r.Password)
	if err != nil {
		return nil, err
	}

	return svc.accounts.Add(ctx, AddAccountRequest{
		Name:     r.Name,
		Email:    r.Email,
		Password: hash,
	})
}

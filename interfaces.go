package signup

import "context"

//AddAccount registers a validated account
type AddAccount interface {
	Add(ctx context.Context, r AddAccountRequest) (*Account, error)
}

//Hasher turns a plaintext password into a self-describing hash
type Hasher interface {
	Hash(plaintext string) (string, error)
}

//EmailValidator reports whether an email is syntactically valid. It must
// never fail
type EmailValidator interface {
	IsValid(email string) bool
}

//Repository persists accounts. Add assigns the ID
type Repository interface {
	Add(ctx context.Context, r AddAccountRequest) (*Account, error)
}

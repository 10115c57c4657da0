package signup

import (
	"github.com/rs/xid"
)

type ID string

//Account is the stored record of a registered user. Password always holds
// the hash, never the plaintext
type Account struct {
	ID       ID     `json:"id" bson:"_id"`
	Name     string `json:"name" bson:"name"`
	Email    string `json:"email" bson:"email"`
	Password string `json:"passwordHash" bson:"password"`
}

//AddAccountRequest is what the use case receives once the controller has
// validated a signup request. The repository receives the same shape with
// Password already hashed
type AddAccountRequest struct {
	Name, Email, Password string
}

//SignUpRequest is the raw request as it arrives over the wire
type SignUpRequest struct {
	Name                 string `json:"name"`
	Email                string `json:"email"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"passwordConfirmation"`
}

func NewID() ID {
	return ID(xid.New().String())
}

func isValidID(id string) bool {
	if _, err := xid.FromString(id); err != nil {
		return false
	}
	return true
}

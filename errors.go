package signup

import (
	"errors"
	"fmt"
)

var (
	ErrHashPassword = errors.New("error hashing password")
	ErrNotFound     = errors.New("account not found")
)

type MissingParamError struct {
	Param string
}

func (e MissingParamError) Error() string {
	return fmt.Sprintf("missing parameter: %s", e.Param)
}

type InvalidParamError struct {
	Param string
}

func (e InvalidParamError) Error() string {
	return fmt.Sprintf("invalid parameter: %s", e.Param)
}

//ServerError hides whatever went wrong from the caller
type ServerError struct{}

func (ServerError) Error() string {
	return "internal server error"
}

//ErrorPayload is the body sent back for any failed request
type ErrorPayload struct {
	Name    string `json:"name"`
	Message string `json:"message"`
}

func payloadFromError(err error) ErrorPayload {
	var missing MissingParamError
	var invalid InvalidParamError

	switch {
	case errors.As(err, &missing):
		return ErrorPayload{Name: "MissingParamError", Message: missing.Error()}
	case errors.As(err, &invalid):
		return ErrorPayload{Name: "InvalidParamError", Message: invalid.Error()}
	default:
		return ErrorPayload{Name: "ServerError", Message: ServerError{}.Error()}
	}
}

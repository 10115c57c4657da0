package signup

import (
	"context"
	"errors"
)

var errStub = errors.New("stub failure")

type emailValidatorStub struct {
	valid  bool
	panics bool
	called string
}

func (e *emailValidatorStub) IsValid(email string) bool {
	e.called = email
	if e.panics {
		panic("validator blew up")
	}
	return e.valid
}

type hasherStub struct {
	err    error
	panics bool
	calls  int
	input  string
}

func (h *hasherStub) Hash(plaintext string) (string, error) {
	h.calls++
	h.input = plaintext
	if h.panics {
		panic("hasher blew up")
	}
	if h.err != nil {
		return "", h.err
	}
	return "hashed:" + plaintext, nil
}

type repositorySpy struct {
	id    ID
	err   error
	calls int
	req   AddAccountRequest
}

func (r *repositorySpy) Add(_ context.Context, req AddAccountRequest) (*Account, error) {
	r.calls++
	r.req = req
	if r.err != nil {
		return nil, r.err
	}
	return &Account{ID: r.id, Name: req.Name, Email: req.Email, Password: req.Password}, nil
}

type addAccountSpy struct {
	acc    *Account
	err    error
	called bool
	req    AddAccountRequest
}

func (a *addAccountSpy) Add(_ context.Context, req AddAccountRequest) (*Account, error) {
	a.called = true
	a.req = req
	return a.acc, a.err
}

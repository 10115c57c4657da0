package signup

import (
	"context"
	"testing"

	"github.com/smartystreets/goconvey/convey"
	"github.com/stretchr/testify/assert"
)

func TestService_Add(t *testing.T) {
	convey.Convey("Given a valid account request", t, func() {
		req := AddAccountRequest{Name: "Ann", Email: "ann@x.com", Password: "p1"}
		hasher := &hasherStub{}
		accounts := &repositorySpy{id: "1"}
		svc := NewService(hasher, accounts)

		convey.Convey("When the account is added", func() {
			acc, err := svc.Add(context.Background(), req)
			convey.So(err, convey.ShouldBeNil)

			convey.Convey("Then the password is hashed exactly once", func() {
				convey.So(hasher.calls, convey.ShouldEqual, 1)
				convey.So(hasher.input, convey.ShouldEqual, "p1")
			})

			convey.Convey("And the repository receives the hash instead of the password", func() {
				convey.So(accounts.calls, convey.ShouldEqual, 1)
				convey.So(accounts.req, convey.ShouldResemble, AddAccountRequest{Name: "Ann", Email: "ann@x.com", Password: "hashed:p1"})
			})

			convey.Convey("And the stored account is returned unchanged", func() {
				convey.So(acc, convey.ShouldResemble, &Account{ID: "1", Name: "Ann", Email: "ann@x.com", Password: "hashed:p1"})
			})
		})
	})
}

func TestService_Add_Failures(t *testing.T) {
	tests := []struct {
		name           string
		hasher         *hasherStub
		accounts       *repositorySpy
		wantStoreCalls int
	}{
		{name: "hasher fails", hasher: &hasherStub{err: errStub}, accounts: &repositorySpy{}, wantStoreCalls: 0},
		{name: "store fails", hasher: &hasherStub{}, accounts: &repositorySpy{err: errStub}, wantStoreCalls: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(tt.hasher, tt.accounts)

			acc, err := svc.Add(context.Background(), AddAccountRequest{"Ann", "ann@x.com", "p1"})

			assert.Nil(t, acc)
			assert.ErrorIs(t, err, errStub)
			assert.Equal(t, 1, tt.hasher.calls)
			assert.Equal(t, tt.wantStoreCalls, tt.accounts.calls)
		})
	}
}

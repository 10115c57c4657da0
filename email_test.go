package signup

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmailValidatorAdapter_IsValid(t *testing.T) {
	v := NewEmailValidator()

	tests := []struct {
		email string
		want  bool
	}{
		{"ann@x.com", true},
		{"any_email@email.com", true},
		{"first.last+tag@sub.domain.org", true},
		{"", false},
		{"email", false},
		{"a@", false},
		{"@b.com", false},
		{"a b@c.com", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, v.IsValid(tt.email), tt.email)
	}
}

package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rojgarpatra/uikit/pkg/validator"
)

func TestEmailFormat(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{value: "user@example.com", want: true},
		{value: "first.last+tag@sub.example.co.in", want: true},
		{value: "a@b.c", want: true},
		{value: "not-an-email", want: false},
		{value: "user@example", want: false},
		{value: "@example.com", want: false},
		{value: "user@.com", want: false},
		{value: "user@example.", want: false},
		{value: "us er@example.com", want: false},
		{value: "user@@example.com", want: false},
		{value: "user@exa mple.com", want: false},
		{value: "user@example.com\u00a0", want: false},
		{value: "user@example.com ", want: false},
		{value: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			rule := validator.EmailFormat("email", tt.value)
			assert.Equal(t, tt.want, rule.Check())
			assert.Equal(t, "Please enter a valid email address", rule.Error.Message)
		})
	}
}

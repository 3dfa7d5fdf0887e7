package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateAccountRequest_Validate(t *testing.T) {
	tests := []struct {
		name       string
		req        CreateAccountRequest
		wantFields []string
	}{
		{
			name: "valid request without provider",
			req: CreateAccountRequest{
				Username: "John doe",
				Email:    "johndoe@mail.com",
				Password: "123456",
			},
		},
		{
			name: "valid request with provider",
			req: CreateAccountRequest{
				Username: "John doe",
				Email:    "johndoe@mail.com",
				Password: "123456",
				Provider: ProviderGoogle,
			},
		},
		{
			name: "empty username",
			req: CreateAccountRequest{
				Email:    "johndoe@mail.com",
				Password: "123456",
			},
			wantFields: []string{"username"},
		},
		{
			name: "malformed email",
			req: CreateAccountRequest{
				Username: "John doe",
				Email:    "not-an-email",
				Password: "123456",
			},
			wantFields: []string{"email"},
		},
		{
			name: "short password",
			req: CreateAccountRequest{
				Username: "John doe",
				Email:    "johndoe@mail.com",
				Password: "12345",
			},
			wantFields: []string{"password"},
		},
		{
			name: "password at the byte limit",
			req: CreateAccountRequest{
				Username: "John doe",
				Email:    "johndoe@mail.com",
				Password: strings.Repeat("a", 72),
			},
		},
		{
			name: "password over the byte limit",
			req: CreateAccountRequest{
				Username: "John doe",
				Email:    "johndoe@mail.com",
				Password: strings.Repeat("a", 73),
			},
			wantFields: []string{"password"},
		},
		{
			name: "multibyte password over the byte limit",
			req: CreateAccountRequest{
				Username: "John doe",
				Email:    "johndoe@mail.com",
				Password: strings.Repeat("é", 40),
			},
			wantFields: []string{"password"},
		},
		{
			name: "unknown provider",
			req: CreateAccountRequest{
				Username: "John doe",
				Email:    "johndoe@mail.com",
				Password: "123456",
				Provider: Provider("myspace"),
			},
			wantFields: []string{"provider"},
		},
		{
			name:       "everything missing",
			req:        CreateAccountRequest{},
			wantFields: []string{"username", "email", "password"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.req.Validate()

			if len(tt.wantFields) == 0 {
				assert.Empty(t, got)
				return
			}

			fields := make([]string, 0, len(got))
			for _, fe := range got {
				assert.NotEmpty(t, fe.Message)
				fields = append(fields, fe.Field)
			}
			assert.ElementsMatch(t, tt.wantFields, fields)
		})
	}
}

func TestCreateAccountRequest_ValidateMessages(t *testing.T) {
	got := CreateAccountRequest{
		Username: "John doe",
		Email:    "johndoe@mail.com",
		Password: "abc",
	}.Validate()

	assert.Equal(t, []FieldError{{
		Field:   "password",
		Message: "password must be longer than or equal to 6 characters",
	}}, got)
}

func TestCreateAccountRequest_ValidateLongPasswordMessage(t *testing.T) {
	got := CreateAccountRequest{
		Username: "John doe",
		Email:    "johndoe@mail.com",
		Password: strings.Repeat("a", 73),
	}.Validate()

	assert.Equal(t, []FieldError{{
		Field:   "password",
		Message: "password must be shorter than or equal to 72 bytes",
	}}, got)
}

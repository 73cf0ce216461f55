package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Howling-Techie/be-nc-news/apperror"
)

func validRegisterRequest() RegisterRequest {
	return RegisterRequest{
		Username: "newUser01",
		Name:     "New User",
		Password: "hunter22",
	}
}

func TestValidateRegisterAcceptsValidRequest(t *testing.T) {
	assert.NoError(t, ValidateRegister(validRegisterRequest()))
}

func TestValidateRegister(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*RegisterRequest)
		wantMsg string
	}{
		{
			name:    "missing username",
			mutate:  func(r *RegisterRequest) { r.Username = "" },
			wantMsg: "Missing required properties in body",
		},
		{
			name:    "missing name",
			mutate:  func(r *RegisterRequest) { r.Name = "" },
			wantMsg: "Missing required properties in body",
		},
		{
			name:    "missing password",
			mutate:  func(r *RegisterRequest) { r.Password = "" },
			wantMsg: "Missing required properties in body",
		},
		{
			name:    "username too short",
			mutate:  func(r *RegisterRequest) { r.Username = "abc" },
			wantMsg: "Invalid username format",
		},
		{
			name:    "username too long",
			mutate:  func(r *RegisterRequest) { r.Username = "abcdefghijklmnopqrstu" },
			wantMsg: "Invalid username format",
		},
		{
			name:    "username with space",
			mutate:  func(r *RegisterRequest) { r.Username = "new user" },
			wantMsg: "Invalid username format",
		},
		{
			name:    "username with symbol",
			mutate:  func(r *RegisterRequest) { r.Username = "new!user" },
			wantMsg: "Invalid username format",
		},
		{
			name:    "name too short",
			mutate:  func(r *RegisterRequest) { r.Name = "abcde" },
			wantMsg: "Invalid name format",
		},
		{
			name:    "name with symbol",
			mutate:  func(r *RegisterRequest) { r.Name = "New User!" },
			wantMsg: "Invalid name format",
		},
		{
			name:    "name with leading space",
			mutate:  func(r *RegisterRequest) { r.Name = " New User" },
			wantMsg: "Invalid name format",
		},
		{
			name:    "name with trailing space",
			mutate:  func(r *RegisterRequest) { r.Name = "New User " },
			wantMsg: "Invalid name format",
		},
		{
			name:    "password too short",
			mutate:  func(r *RegisterRequest) { r.Password = "abc12" },
			wantMsg: "Invalid password format",
		},
		{
			name:    "password with space",
			mutate:  func(r *RegisterRequest) { r.Password = "hunter 22" },
			wantMsg: "Invalid password format",
		},
		{
			name:    "password too long",
			mutate:  func(r *RegisterRequest) { r.Password = "abcdefghijklmnopqrstu" },
			wantMsg: "Invalid password format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRegisterRequest()
			tt.mutate(&req)

			err := ValidateRegister(req)
			require.Error(t, err)
			assert.True(t, apperror.IsValidationError(err))

			ae, ok := apperror.FromError(err)
			require.True(t, ok)
			assert.Equal(t, tt.wantMsg, ae.Message)
		})
	}
}

func TestValidateRegisterAcceptsHyphenatedName(t *testing.T) {
	req := validRegisterRequest()
	req.Name = "Mary-Jane Doe"
	assert.NoError(t, ValidateRegister(req))
}

func TestValidateSignIn(t *testing.T) {
	err := ValidateSignIn(SignInRequest{Username: "newUser01", Password: "hunter22"})
	assert.NoError(t, err)

	err = ValidateSignIn(SignInRequest{Username: "newUser01"})
	require.Error(t, err)
	ae, ok := apperror.FromError(err)
	require.True(t, ok)
	assert.Equal(t, "Missing required properties in body", ae.Message)

	err = ValidateSignIn(SignInRequest{Password: "hunter22"})
	require.Error(t, err)
	assert.True(t, apperror.IsValidationError(err))
}

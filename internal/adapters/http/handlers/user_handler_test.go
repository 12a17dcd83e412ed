package handlers

import (
	"testing"

	"helha-jobapp/internal/core/services"

	"github.com/stretchr/testify/assert"
)

func validInput() *services.UserInput {
	return &services.UserInput{
		Username:  "acme.hr",
		Email:     "hr@acme.be",
		Password:  "supersecret1",
		Role:      "COMPANY",
		FirstName: "Anna",
		LastName:  "Claes",
	}
}

func TestValidateUserInput(t *testing.T) {
	tests := []struct {
		name     string
		creating bool
		mutate   func(*services.UserInput)
		wantMsg  string
	}{
		{"valid company", true, func(i *services.UserInput) {}, ""},
		// The admin dialog treats companyName as optional even for
		// COMPANY accounts, unlike the public registration form
		{"company without company name", true, func(i *services.UserInput) { i.CompanyName = "" }, ""},
		{"company with company name", true, func(i *services.UserInput) { i.CompanyName = "Acme SA" }, ""},
		{"admin role allowed", true, func(i *services.UserInput) { i.Role = "ADMIN" }, ""},
		{"unknown role", true, func(i *services.UserInput) { i.Role = "MANAGER" }, "Role must be ADMIN, COMPANY or STUDENT"},
		{"missing username", true, func(i *services.UserInput) { i.Username = "" }, "Username is required"},
		{"missing password on create", true, func(i *services.UserInput) { i.Password = "" }, "Password is required"},
		{"blank password on update", false, func(i *services.UserInput) { i.Password = "" }, ""},
		{"short password on update", false, func(i *services.UserInput) { i.Password = "short" }, "Password must be at least 8 characters"},
		{"bad email", true, func(i *services.UserInput) { i.Email = "not-an-email" }, "Email is invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			tt.mutate(input)
			assert.Equal(t, tt.wantMsg, validateUserInput(input, tt.creating))
		})
	}
}

func TestValidateUserInputNormalizes(t *testing.T) {
	input := validInput()
	input.Username = "  Acme.HR "
	input.Role = "company"

	assert.Empty(t, validateUserInput(input, true))
	assert.Equal(t, "acme.hr", input.Username)
	assert.Equal(t, "COMPANY", input.Role)
}

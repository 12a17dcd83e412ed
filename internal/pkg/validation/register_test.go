package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePostalCode(t *testing.T) {
	tests := []struct {
		code  string
		valid bool
	}{
		{"1000", true},
		{"9999", true},
		{"6060", true},
		{"0500", false},
		{"999", false},
		{"12345", false},
		{"12a4", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.valid, ValidatePostalCode(tt.code))
		})
	}
}

func TestValidateBelgianPhone(t *testing.T) {
	tests := []struct {
		phone string
		valid bool
	}{
		{"+32470123456", true},  // mobile, international prefix
		{"0032470123456", true}, // mobile, 00 prefix
		{"0470123456", true},    // mobile, national prefix
		{"023456789", true},     // landline
		{"+3223456789", true},   // landline, international prefix
		{"32412345", false},     // no recognized prefix
		{"0570123456", false},   // 9 digits but not mobile
		{"04701234", false},     // too short for mobile, too long for landline prefix 4
		{"+32", false},
		{"", false},
		{"+32abc123456", false},
	}

	for _, tt := range tests {
		t.Run(tt.phone, func(t *testing.T) {
			assert.Equal(t, tt.valid, ValidateBelgianPhone(tt.phone))
		})
	}
}

func TestNormalizePhone(t *testing.T) {
	assert.Equal(t, "+32470123456", NormalizePhone("+32 470/12.34.56"))
	assert.Equal(t, "023456789", NormalizePhone("02 345 67 89"))
	assert.Equal(t, "0470123456", NormalizePhone("(0470) 12-34-56"))
}

func TestValidateUsername(t *testing.T) {
	assert.True(t, ValidateUsername("jdupont"))
	assert.True(t, ValidateUsername("j.du_pont-2"))
	assert.False(t, ValidateUsername("jd"))
	assert.False(t, ValidateUsername("JDupont"))
	assert.False(t, ValidateUsername("j dupont"))
	assert.False(t, ValidateUsername(""))
}

func validRegistration() Registration {
	return Registration{
		Username:        "jdupont",
		Email:           "j.dupont@example.com",
		Password:        "secret123",
		ConfirmPassword: "secret123",
		Role:            "STUDENT",
		FirstName:       "Jean",
		LastName:        "Dupont",
		Street:          "Rue des Lilas",
		HouseNumber:     "12",
		PostalCode:      "6060",
		PhoneNumber:     "0470123456",
	}
}

func TestRegistrationValidateOK(t *testing.T) {
	form := validRegistration()
	form.Normalize()
	assert.Empty(t, form.Validate())
}

func TestRegistrationNormalize(t *testing.T) {
	form := validRegistration()
	form.Username = "  JDupont "
	form.Email = " J.Dupont@Example.COM "
	form.Role = "student"
	form.FirstName = "jean"
	form.Street = "rue des lilas"
	form.PhoneNumber = "0470/12.34.56"
	form.CompanyName = "Acme" // ignored for students

	form.Normalize()

	assert.Equal(t, "jdupont", form.Username)
	assert.Equal(t, "j.dupont@example.com", form.Email)
	assert.Equal(t, "STUDENT", form.Role)
	assert.Equal(t, "Jean", form.FirstName)
	assert.Equal(t, "Rue des lilas", form.Street)
	assert.Equal(t, "0470123456", form.PhoneNumber)
	assert.Empty(t, form.CompanyName)
}

func TestRegistrationValidateFailures(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Registration)
		field  string
	}{
		{"short password", func(r *Registration) { r.Password, r.ConfirmPassword = "short", "short" }, "password"},
		{"password mismatch", func(r *Registration) { r.ConfirmPassword = "different1" }, "confirmPassword"},
		{"bad email", func(r *Registration) { r.Email = "not-an-email" }, "email"},
		{"bad role", func(r *Registration) { r.Role = "MANAGER" }, "role"},
		{"missing first name", func(r *Registration) { r.FirstName = "" }, "firstName"},
		{"house number with letters", func(r *Registration) { r.HouseNumber = "12b" }, "houseNumber"},
		{"postal code out of range", func(r *Registration) { r.PostalCode = "0999" }, "postalCode"},
		{"bad phone", func(r *Registration) { r.PhoneNumber = "32412345" }, "phoneNumber"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validRegistration()
			tt.mutate(&form)
			form.Normalize()
			errs := form.Validate()
			assert.Contains(t, errs, tt.field)
		})
	}
}

func TestRegistrationCompanyNameRequired(t *testing.T) {
	form := validRegistration()
	form.Role = "COMPANY"
	form.Normalize()
	errs := form.Validate()
	assert.Contains(t, errs, "companyName")

	form.CompanyName = "Acme SA"
	form.Normalize()
	assert.Empty(t, form.Validate())
}

func TestRegistrationAddress(t *testing.T) {
	form := validRegistration()
	form.Normalize()
	assert.Equal(t, "Rue des Lilas 12, 6060", form.Address())
}

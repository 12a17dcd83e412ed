package validation

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// FieldErrors maps a field name to its validation message
type FieldErrors map[string]string

var (
	// lowercase alphanumeric plus . _ -, at least 3 characters
	usernameRe = regexp.MustCompile(`^[a-z0-9._-]{3,}$`)

	// Unicode letters with the usual name punctuation
	nameRe = regexp.MustCompile(`^[\p{L}][\p{L} .'-]*$`)

	digitsRe = regexp.MustCompile(`^[0-9]+$`)
	emailRe  = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

	// separators stripped before phone validation
	phoneSepRe = regexp.MustCompile(`[ ./()-]`)
)

// Registration carries the registration form fields before normalization
type Registration struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	Role            string `json:"role"`
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Street          string `json:"street"`
	HouseNumber     string `json:"houseNumber"`
	PostalCode      string `json:"postalCode"`
	PhoneNumber     string `json:"phoneNumber"`
	CompanyName     string `json:"companyName"`
}

// Normalize applies the live form transforms: username and email lowercased,
// names and street capitalized, everything trimmed, phone separators stripped.
func (r *Registration) Normalize() {
	r.Username = strings.ToLower(strings.TrimSpace(r.Username))
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Role = strings.ToUpper(strings.TrimSpace(r.Role))
	r.FirstName = Capitalize(strings.TrimSpace(r.FirstName))
	r.LastName = Capitalize(strings.TrimSpace(r.LastName))
	r.Street = Capitalize(strings.TrimSpace(r.Street))
	r.HouseNumber = strings.TrimSpace(r.HouseNumber)
	r.PostalCode = strings.TrimSpace(r.PostalCode)
	r.PhoneNumber = NormalizePhone(r.PhoneNumber)
	r.CompanyName = strings.TrimSpace(r.CompanyName)

	// companyName only exists for companies
	if r.Role != "COMPANY" {
		r.CompanyName = ""
	}
}

// Validate checks every field and returns one message per failing field.
// Call Normalize first.
func (r *Registration) Validate() FieldErrors {
	errs := FieldErrors{}

	if !usernameRe.MatchString(r.Username) {
		errs["username"] = "Username must be at least 3 characters (lowercase letters, digits, . _ -)"
	}
	if !emailRe.MatchString(r.Email) {
		errs["email"] = "A valid email address is required"
	}
	if len(r.Password) < 8 {
		errs["password"] = "Password must be at least 8 characters"
	}
	if r.Password != r.ConfirmPassword {
		errs["confirmPassword"] = "Passwords do not match"
	}
	if r.Role != "COMPANY" && r.Role != "STUDENT" && r.Role != "ADMIN" {
		errs["role"] = "Role must be ADMIN, COMPANY or STUDENT"
	}
	if !nameRe.MatchString(r.FirstName) {
		errs["firstName"] = "First name is required"
	}
	if !nameRe.MatchString(r.LastName) {
		errs["lastName"] = "Last name is required"
	}
	if !nameRe.MatchString(r.Street) {
		errs["street"] = "Street is required"
	}
	if !digitsRe.MatchString(r.HouseNumber) {
		errs["houseNumber"] = "House number must contain digits only"
	}
	if !ValidatePostalCode(r.PostalCode) {
		errs["postalCode"] = "Postal code must be 4 digits between 1000 and 9999"
	}
	if !ValidateBelgianPhone(r.PhoneNumber) {
		errs["phoneNumber"] = "Enter a valid Belgian phone number"
	}
	if r.Role == "COMPANY" && !nameRe.MatchString(r.CompanyName) {
		errs["companyName"] = "Company name is required"
	}

	return errs
}

// Address joins street, house number and postal code the way the form does
func (r *Registration) Address() string {
	return r.Street + " " + r.HouseNumber + ", " + r.PostalCode
}

// ValidatePostalCode accepts exactly 4 digits numerically within 1000-9999
func ValidatePostalCode(code string) bool {
	if len(code) != 4 || !digitsRe.MatchString(code) {
		return false
	}
	n, err := strconv.Atoi(code)
	if err != nil {
		return false
	}
	return n >= 1000 && n <= 9999
}

// NormalizePhone strips separators from a phone number
func NormalizePhone(phone string) string {
	return phoneSepRe.ReplaceAllString(strings.TrimSpace(phone), "")
}

// ValidateBelgianPhone validates a normalized Belgian number: after stripping
// the +32/0032 international or 0 national prefix, either an 8 digit landline
// or a 9 digit mobile starting with 4.
func ValidateBelgianPhone(phone string) bool {
	national := ""
	switch {
	case strings.HasPrefix(phone, "+32"):
		national = phone[3:]
	case strings.HasPrefix(phone, "0032"):
		national = phone[4:]
	case strings.HasPrefix(phone, "0"):
		national = phone[1:]
	default:
		return false
	}

	if !digitsRe.MatchString(national) {
		return false
	}

	switch len(national) {
	case 8:
		return true // landline
	case 9:
		return national[0] == '4' // mobile
	default:
		return false
	}
}

// ValidateUsername accepts lowercase alphanumerics plus . _ -, minimum 3 characters
func ValidateUsername(username string) bool {
	return usernameRe.MatchString(username)
}

// ValidateEmail accepts a plausible email address
func ValidateEmail(email string) bool {
	return emailRe.MatchString(email)
}

// ValidateName accepts Unicode letters plus common name punctuation
func ValidateName(name string) bool {
	return nameRe.MatchString(name)
}

// Capitalize upper-cases the first rune of a string
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	first, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(first)) + s[size:]
}

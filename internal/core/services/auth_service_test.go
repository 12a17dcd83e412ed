package services

import (
	"context"
	"strings"
	"testing"

	"helha-jobapp/internal/adapters/persistence/models"
	"helha-jobapp/internal/config"
	"helha-jobapp/internal/pkg/jwt"
	"helha-jobapp/internal/pkg/password"
	"helha-jobapp/internal/pkg/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{
			Secret:          "test-secret",
			AccessTokenMins: 60,
		},
	}
}

func seedUser(t *testing.T, username, role, plain string) *models.User {
	t.Helper()
	hashed, err := password.Hash(plain)
	require.NoError(t, err)
	return &models.User{
		ID:        1,
		Username:  username,
		Email:     username + "@example.com",
		Password:  hashed,
		Role:      role,
		FirstName: "Test",
		LastName:  "User",
	}
}

func TestRoleLandingPath(t *testing.T) {
	assert.Equal(t, "/admin", RoleLandingPath("ADMIN"))
	assert.Equal(t, "/company", RoleLandingPath("COMPANY"))
	assert.Equal(t, "/student", RoleLandingPath("STUDENT"))
	assert.Equal(t, "/dashboard", RoleLandingPath("SOMETHING_ELSE"))
	assert.Equal(t, "/dashboard", RoleLandingPath(""))
}

func TestLoginIssuesTokenAndLandingPath(t *testing.T) {
	repo := newFakeUserRepo(seedUser(t, "acme", "COMPANY", "secret123"))
	svc := NewAuthService(repo, &fakeMailer{}, testConfig())

	result, err := svc.Login(context.Background(), &LoginInput{Username: "acme", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, "/company", result.RedirectTo)

	claims, err := jwt.ValidateAccessToken(result.Token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, "acme", claims.Username)
	assert.Equal(t, "COMPANY", claims.Role)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	repo := newFakeUserRepo(seedUser(t, "acme", "COMPANY", "secret123"))
	svc := NewAuthService(repo, &fakeMailer{}, testConfig())

	_, err := svc.Login(context.Background(), &LoginInput{Username: "acme", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), &LoginInput{Username: "nobody", Password: "secret123"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func registrationForm(username, role string) *validation.Registration {
	form := &validation.Registration{
		Username:        username,
		Email:           username + "@example.com",
		Password:        "secret123",
		ConfirmPassword: "secret123",
		Role:            role,
		FirstName:       "Jean",
		LastName:        "Dupont",
		Street:          "Rue des Lilas",
		HouseNumber:     "12",
		PostalCode:      "6060",
		PhoneNumber:     "0470123456",
		CompanyName:     "Acme SA",
	}
	form.Normalize()
	return form
}

func TestRegisterCreatesStudent(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo, &fakeMailer{}, testConfig())

	user, err := svc.Register(context.Background(), registrationForm("jdupont", "STUDENT"))
	require.NoError(t, err)
	assert.Equal(t, "jdupont", user.Username)
	assert.Equal(t, "STUDENT", user.Role)
	assert.Nil(t, user.CompanyName)
	assert.Equal(t, "Rue des Lilas 12, 6060", user.Address)

	stored, err := repo.GetByUsername(context.Background(), "jdupont")
	require.NoError(t, err)
	assert.True(t, password.Verify("secret123", stored.Password))
}

func TestRegisterKeepsCompanyName(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo, &fakeMailer{}, testConfig())

	user, err := svc.Register(context.Background(), registrationForm("acme", "COMPANY"))
	require.NoError(t, err)
	require.NotNil(t, user.CompanyName)
	assert.Equal(t, "Acme SA", *user.CompanyName)
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	existing := seedUser(t, "jdupont", "STUDENT", "secret123")
	repo := newFakeUserRepo(existing)
	svc := NewAuthService(repo, &fakeMailer{}, testConfig())

	_, err := svc.Register(context.Background(), registrationForm("jdupont", "STUDENT"))
	assert.ErrorIs(t, err, ErrUsernameTaken)

	form := registrationForm("other", "STUDENT")
	form.Email = existing.Email
	_, err = svc.Register(context.Background(), form)
	assert.ErrorIs(t, err, ErrEmailInUse)
}

func TestForgotPasswordMailsTemporaryPassword(t *testing.T) {
	user := seedUser(t, "jdupont", "STUDENT", "secret123")
	repo := newFakeUserRepo(user)
	mailer := &fakeMailer{}
	svc := NewAuthService(repo, mailer, testConfig())

	err := svc.ForgotPassword(context.Background(), user.Email)
	require.NoError(t, err)

	require.Len(t, mailer.sent, 1)
	assert.Equal(t, user.Email, mailer.sent[0].To)

	// the mailed temporary password must match the stored hash
	temp := strings.TrimPrefix(mailer.sent[0].Body, "Your new temporary password is: ")
	require.NotEqual(t, mailer.sent[0].Body, temp)
	assert.True(t, password.Verify(temp, user.Password))
	assert.False(t, password.Verify("secret123", user.Password))
}

func TestForgotPasswordUnknownEmail(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), &fakeMailer{}, testConfig())
	err := svc.ForgotPassword(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestChangePassword(t *testing.T) {
	user := seedUser(t, "jdupont", "STUDENT", "secret123")
	repo := newFakeUserRepo(user)
	svc := NewAuthService(repo, &fakeMailer{}, testConfig())

	err := svc.ChangePassword(context.Background(), &ChangePasswordInput{
		Username:    "jdupont",
		OldPassword: "wrong",
		NewPassword: "newsecret1",
	})
	assert.ErrorIs(t, err, ErrOldPasswordWrong)

	err = svc.ChangePassword(context.Background(), &ChangePasswordInput{
		Username:    "jdupont",
		OldPassword: "secret123",
		NewPassword: "newsecret1",
	})
	require.NoError(t, err)
	assert.True(t, password.Verify("newsecret1", user.Password))
}

package services

import (
	"context"
	"testing"

	"helha-jobapp/internal/pkg/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func adminInput(username string) *UserInput {
	return &UserInput{
		Username:  username,
		Email:     username + "@example.com",
		Password:  "secret123",
		Role:      "student",
		FirstName: "Jean",
		LastName:  "Dupont",
	}
}

func TestCreateUserUppercasesRole(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)

	user, err := svc.CreateUser(context.Background(), adminInput("jdupont"))
	require.NoError(t, err)
	assert.Equal(t, "STUDENT", user.Role)
	assert.Nil(t, user.CompanyName)
}

func TestCreateUserRejectsDuplicates(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)

	_, err := svc.CreateUser(context.Background(), adminInput("jdupont"))
	require.NoError(t, err)

	_, err = svc.CreateUser(context.Background(), adminInput("jdupont"))
	assert.ErrorIs(t, err, ErrUsernameTaken)

	input := adminInput("other")
	input.Email = "jdupont@example.com"
	_, err = svc.CreateUser(context.Background(), input)
	assert.ErrorIs(t, err, ErrEmailInUse)
}

func TestUpdateUserChecksUniquenessOnlyWhenChanged(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)

	created, err := svc.CreateUser(context.Background(), adminInput("jdupont"))
	require.NoError(t, err)
	_, err = svc.CreateUser(context.Background(), adminInput("taken"))
	require.NoError(t, err)

	// same username and email back in, no conflict
	input := adminInput("jdupont")
	input.Password = ""
	input.FirstName = "Renamed"
	updated, err := svc.UpdateUser(context.Background(), created.ID, input)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.FirstName)

	// changing to a taken username conflicts
	input = adminInput("taken")
	input.Password = ""
	_, err = svc.UpdateUser(context.Background(), created.ID, input)
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestUpdateUserBlankPasswordKeepsOld(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)

	created, err := svc.CreateUser(context.Background(), adminInput("jdupont"))
	require.NoError(t, err)

	input := adminInput("jdupont")
	input.Password = ""
	_, err = svc.UpdateUser(context.Background(), created.ID, input)
	require.NoError(t, err)

	stored, err := repo.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.True(t, password.Verify("secret123", stored.Password))

	input.Password = "changed123"
	_, err = svc.UpdateUser(context.Background(), created.ID, input)
	require.NoError(t, err)

	stored, err = repo.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.True(t, password.Verify("changed123", stored.Password))
}

func TestUpdateUserCompanyName(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)

	input := adminInput("acme")
	input.Role = "COMPANY"
	input.CompanyName = "Acme SA"
	created, err := svc.CreateUser(context.Background(), input)
	require.NoError(t, err)
	require.NotNil(t, created.CompanyName)

	// clearing the company name removes it
	input.Password = ""
	input.CompanyName = ""
	input.Role = "STUDENT"
	updated, err := svc.UpdateUser(context.Background(), created.ID, input)
	require.NoError(t, err)
	assert.Nil(t, updated.CompanyName)
}

func TestDeleteUser(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)

	created, err := svc.CreateUser(context.Background(), adminInput("jdupont"))
	require.NoError(t, err)

	require.NoError(t, svc.DeleteUser(context.Background(), created.ID))
	assert.ErrorIs(t, svc.DeleteUser(context.Background(), created.ID), ErrUserNotFound)

	users, err := svc.ListUsers(context.Background())
	require.NoError(t, err)
	assert.Empty(t, users)
}

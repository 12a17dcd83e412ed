package services

import (
	"context"
	"errors"
	"log"

	"helha-jobapp/internal/adapters/persistence/models"
	"helha-jobapp/internal/adapters/persistence/repositories"
	"helha-jobapp/internal/config"
	"helha-jobapp/internal/pkg/jwt"
	"helha-jobapp/internal/pkg/password"
	"helha-jobapp/internal/pkg/validation"

	"gorm.io/gorm"
)

// Auth errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrEmailInUse         = errors.New("email already in use")
	ErrOldPasswordWrong   = errors.New("old password is incorrect")
)

// AuthService handles authentication business logic
type AuthService struct {
	userRepo repositories.UserRepository
	mailer   Mailer
	cfg      *config.Config
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repositories.UserRepository, mailer Mailer, cfg *config.Config) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		mailer:   mailer,
		cfg:      cfg,
	}
}

// LoginInput represents login input
type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResult carries the issued token and the role landing route
type LoginResult struct {
	Token      string `json:"token"`
	RedirectTo string `json:"redirect_to"`
}

// ChangePasswordInput represents change password input
type ChangePasswordInput struct {
	Username        string `json:"username"`
	OldPassword     string `json:"oldPassword"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}

// RoleLandingPath maps a role to the dashboard route the SPA opens after login
func RoleLandingPath(role string) string {
	switch role {
	case models.RoleAdmin:
		return "/admin"
	case models.RoleCompany:
		return "/company"
	case models.RoleStudent:
		return "/student"
	default:
		return "/dashboard"
	}
}

// Login authenticates a user and issues an access token
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*LoginResult, error) {
	// 1. Find user by username
	user, err := s.userRepo.GetByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	// 2. Verify password
	if !password.Verify(input.Password, user.Password) {
		return nil, ErrInvalidCredentials
	}

	// 3. Issue access token
	token, err := jwt.GenerateAccessToken(
		user.ID,
		user.Username,
		user.Email,
		user.FirstName,
		user.LastName,
		user.Role,
		s.cfg.JWT.Secret,
		s.cfg.JWT.AccessTokenMins,
	)
	if err != nil {
		return nil, err
	}

	log.Printf("✅ User logged in: %s [%s]", user.Username, user.Role)

	return &LoginResult{
		Token:      token,
		RedirectTo: RoleLandingPath(user.Role),
	}, nil
}

// Register creates a new account from a validated registration form
func (s *AuthService) Register(ctx context.Context, form *validation.Registration) (*models.UserResponse, error) {
	// 1. Check username uniqueness
	exists, err := s.userRepo.ExistsByUsername(ctx, form.Username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrUsernameTaken
	}

	// 2. Check email uniqueness
	exists, err = s.userRepo.ExistsByEmail(ctx, form.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailInUse
	}

	// 3. Hash password
	hashedPassword, err := password.Hash(form.Password)
	if err != nil {
		return nil, err
	}

	// 4. Create user
	user := &models.User{
		Username:    form.Username,
		Email:       form.Email,
		Password:    hashedPassword,
		Role:        form.Role,
		FirstName:   form.FirstName,
		LastName:    form.LastName,
		Address:     form.Address(),
		PhoneNumber: form.PhoneNumber,
	}
	if form.Role == models.RoleCompany && form.CompanyName != "" {
		user.CompanyName = &form.CompanyName
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	log.Printf("✅ User registered: %s [%s]", user.Username, user.Role)
	return user.ToResponse(), nil
}

// ForgotPassword resets the account password and mails the temporary one
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	// 1. Find user by email
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	// 2. Generate and store a temporary password
	temp := password.GenerateTemporary()
	hashed, err := password.Hash(temp)
	if err != nil {
		return err
	}
	user.Password = hashed
	if err := s.userRepo.Update(ctx, user); err != nil {
		return err
	}

	// 3. Mail it
	if err := s.mailer.Send(
		user.Email,
		"Password Reset",
		"Your new temporary password is: "+temp,
	); err != nil {
		return err
	}

	log.Printf("✅ Password reset for user: %s", user.Username)
	return nil
}

// ChangePassword verifies the old password and stores the new one
func (s *AuthService) ChangePassword(ctx context.Context, input *ChangePasswordInput) error {
	// 1. Find user
	user, err := s.userRepo.GetByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	// 2. Verify old password
	if !password.Verify(input.OldPassword, user.Password) {
		return ErrOldPasswordWrong
	}

	// 3. Store the new one
	hashed, err := password.Hash(input.NewPassword)
	if err != nil {
		return err
	}
	user.Password = hashed
	if err := s.userRepo.Update(ctx, user); err != nil {
		return err
	}

	log.Printf("✅ Password changed for user: %s", user.Username)
	return nil
}

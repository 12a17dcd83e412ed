package services

import (
	"context"
	"errors"
	"log"
	"strings"

	"helha-jobapp/internal/adapters/persistence/models"
	"helha-jobapp/internal/adapters/persistence/repositories"
	"helha-jobapp/internal/pkg/password"

	"gorm.io/gorm"
)

// UserService handles user management business logic (admin dashboard)
type UserService struct {
	userRepo repositories.UserRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo repositories.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// UserInput represents the admin user dialog fields. Password is required
// on create and optional on update (blank means unchanged).
type UserInput struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	Role        string `json:"role"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Address     string `json:"address"`
	CompanyName string `json:"companyName"`
	PhoneNumber string `json:"phoneNumber"`
}

// ListUsers returns all users
func (s *UserService) ListUsers(ctx context.Context) ([]*models.UserResponse, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]*models.UserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, user.ToResponse())
	}
	return responses, nil
}

// CreateUser creates a new user from the admin dialog
func (s *UserService) CreateUser(ctx context.Context, input *UserInput) (*models.UserResponse, error) {
	// 1. Uniqueness checks
	exists, err := s.userRepo.ExistsByUsername(ctx, input.Username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrUsernameTaken
	}

	exists, err = s.userRepo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailInUse
	}

	// 2. Hash password
	hashed, err := password.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	// 3. Create user
	user := &models.User{
		Username:    input.Username,
		Email:       input.Email,
		Password:    hashed,
		Role:        strings.ToUpper(input.Role),
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		Address:     input.Address,
		PhoneNumber: input.PhoneNumber,
	}
	if input.CompanyName != "" {
		user.CompanyName = &input.CompanyName
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	log.Printf("✅ User created by admin: %s [%s]", user.Username, user.Role)
	return user.ToResponse(), nil
}

// UpdateUser updates an existing user from the admin dialog
func (s *UserService) UpdateUser(ctx context.Context, id uint, input *UserInput) (*models.UserResponse, error) {
	// 1. Find user
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	// 2. Uniqueness checks only if value changed
	if input.Username != user.Username {
		exists, err := s.userRepo.ExistsByUsername(ctx, input.Username)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, ErrUsernameTaken
		}
	}
	if input.Email != user.Email {
		exists, err := s.userRepo.ExistsByEmail(ctx, input.Email)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, ErrEmailInUse
		}
	}

	// 3. Apply changes
	user.Username = input.Username
	user.Email = input.Email
	user.Role = strings.ToUpper(input.Role)
	user.FirstName = input.FirstName
	user.LastName = input.LastName
	user.Address = input.Address
	user.PhoneNumber = input.PhoneNumber
	if input.CompanyName != "" {
		user.CompanyName = &input.CompanyName
	} else {
		user.CompanyName = nil
	}

	// Blank password means unchanged
	if input.Password != "" {
		hashed, err := password.Hash(input.Password)
		if err != nil {
			return nil, err
		}
		user.Password = hashed
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	log.Printf("✅ User updated by admin: %s (ID: %d)", user.Username, user.ID)
	return user.ToResponse(), nil
}

// DeleteUser deletes a user and everything hanging off it
func (s *UserService) DeleteUser(ctx context.Context, id uint) error {
	exists, err := s.userRepo.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return ErrUserNotFound
	}

	if err := s.userRepo.Delete(ctx, id); err != nil {
		return err
	}

	log.Printf("✅ User deleted (ID: %d)", id)
	return nil
}

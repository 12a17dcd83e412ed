package handlers

import (
	"errors"
	"strconv"
	"strings"

	"helha-jobapp/internal/core/services"
	"helha-jobapp/internal/pkg/password"
	"helha-jobapp/internal/pkg/response"
	"helha-jobapp/internal/pkg/validation"

	"github.com/gofiber/fiber/v2"
)

// UserHandler handles admin user management endpoints
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// validateUserInput checks the admin dialog fields. Password is only
// required when creating.
func validateUserInput(input *services.UserInput, creating bool) string {
	input.Username = strings.ToLower(strings.TrimSpace(input.Username))
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.Role = strings.ToUpper(strings.TrimSpace(input.Role))
	input.FirstName = strings.TrimSpace(input.FirstName)
	input.LastName = strings.TrimSpace(input.LastName)

	switch {
	case input.Username == "":
		return "Username is required"
	case !validation.ValidateUsername(input.Username):
		return "Username must be at least 3 characters (lowercase letters, digits, . _ -)"
	case input.Email == "":
		return "Email is required"
	case !validation.ValidateEmail(input.Email):
		return "Email is invalid"
	case input.FirstName == "":
		return "First name is required"
	case input.LastName == "":
		return "Last name is required"
	case input.Role != "ADMIN" && input.Role != "COMPANY" && input.Role != "STUDENT":
		return "Role must be ADMIN, COMPANY or STUDENT"
	case creating && input.Password == "":
		return "Password is required"
	case input.Password != "" && !password.Validate(input.Password):
		return "Password must be at least 8 characters"
	}
	return ""
}

// List returns all users, optionally filtered
// @Summary List users
// @Description List all users with optional text and role filters
// @Tags Admin
// @Produce json
// @Param search query string false "Free text filter"
// @Param roles query string false "Comma-separated roles"
// @Success 200 {object} response.Response
// @Security BearerAuth
// @Router /admin/users [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	users, err := h.userService.ListUsers(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to list users")
	}

	filter := services.UserFilter{Text: c.Query("search")}
	if roles := c.Query("roles"); roles != "" {
		filter.Roles = strings.Split(roles, ",")
	}

	return response.Success(c, "Users retrieved successfully", services.FilterUsers(users, filter))
}

// Create creates a user from the admin dialog
// @Summary Create user
// @Description Create a user of any role
// @Tags Admin
// @Accept json
// @Produce json
// @Param body body services.UserInput true "User data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Security BearerAuth
// @Router /admin/users [post]
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var input services.UserInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if msg := validateUserInput(&input, true); msg != "" {
		return response.BadRequest(c, msg)
	}

	user, err := h.userService.CreateUser(c.Context(), &input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUsernameTaken):
			return response.Conflict(c, "Username already exists")
		case errors.Is(err, services.ErrEmailInUse):
			return response.Conflict(c, "Email already in use")
		default:
			return response.InternalServerError(c, "Failed to create user")
		}
	}

	return response.Created(c, "User created successfully", user)
}

// Update updates a user from the admin dialog
// @Summary Update user
// @Description Update a user, blank password leaves it unchanged
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param body body services.UserInput true "User data"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Security BearerAuth
// @Router /admin/users/{id} [put]
func (h *UserHandler) Update(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid user ID")
	}

	var input services.UserInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if msg := validateUserInput(&input, false); msg != "" {
		return response.BadRequest(c, msg)
	}

	user, err := h.userService.UpdateUser(c.Context(), uint(id), &input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			return response.NotFound(c, "User not found")
		case errors.Is(err, services.ErrUsernameTaken):
			return response.Conflict(c, "Username already exists")
		case errors.Is(err, services.ErrEmailInUse):
			return response.Conflict(c, "Email already in use")
		default:
			return response.InternalServerError(c, "Failed to update user")
		}
	}

	return response.Success(c, "User updated successfully", user)
}

// Delete deletes a user
// @Summary Delete user
// @Description Delete a user and everything belonging to it
// @Tags Admin
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Security BearerAuth
// @Router /admin/users/{id} [delete]
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid user ID")
	}

	if err := h.userService.DeleteUser(c.Context(), uint(id)); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return response.NotFound(c, "User not found")
		}
		return response.InternalServerError(c, "Failed to delete user")
	}

	return response.Success(c, "User deleted successfully", nil)
}

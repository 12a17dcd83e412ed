package handlers

import (
	"errors"
	"strings"

	"helha-jobapp/internal/config"
	"helha-jobapp/internal/core/services"
	"helha-jobapp/internal/pkg/jwt"
	"helha-jobapp/internal/pkg/password"
	"helha-jobapp/internal/pkg/response"
	"helha-jobapp/internal/pkg/validation"

	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authService *services.AuthService
	cfg         *config.Config
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *services.AuthService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		cfg:         cfg,
	}
}

// LoginRequest represents login request body
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// ForgotPasswordRequest represents forgot password request body
type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// ChangePasswordRequest represents change password request body
type ChangePasswordRequest struct {
	Username        string `json:"username"`
	OldPassword     string `json:"oldPassword"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}

// Login handles user login
// @Summary Login user
// @Description Authenticate user and return a token with the role landing path
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Login credentials"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.Username == "" || req.Password == "" {
		return response.BadRequest(c, "Username and password are required")
	}

	input := &services.LoginInput{
		Username: strings.ToLower(strings.TrimSpace(req.Username)),
		Password: req.Password,
	}

	result, err := h.authService.Login(c.Context(), input)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return response.Unauthorized(c, "Invalid username or password")
		}
		return response.InternalServerError(c, "Failed to login")
	}

	return response.Success(c, "Login successful", fiber.Map{
		"token":       result.Token,
		"redirect_to": result.RedirectTo,
	})
}

// Register handles self-registration of companies and students
// @Summary Register new user
// @Description Register a new company or student account
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body validation.Registration true "Registration data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var form validation.Registration
	if err := c.BodyParser(&form); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	form.Normalize()

	// Admin accounts are only created through the admin dashboard
	if form.Role == "ADMIN" {
		return response.BadRequest(c, "Role must be COMPANY or STUDENT")
	}

	if fieldErrors := form.Validate(); len(fieldErrors) > 0 {
		return response.Invalid(c, fieldErrors)
	}

	user, err := h.authService.Register(c.Context(), &form)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUsernameTaken):
			return response.Conflict(c, "Username already exists")
		case errors.Is(err, services.ErrEmailInUse):
			return response.Conflict(c, "Email already in use")
		default:
			return response.InternalServerError(c, "Failed to register user")
		}
	}

	return response.Created(c, "User registered successfully", user)
}

// ForgotPassword mails a temporary password to the given address
// @Summary Forgot password
// @Description Generate a temporary password and mail it to the user
// @Tags Auth
// @Accept json
// @Produce plain
// @Param email query string true "Account email"
// @Success 200 {string} string
// @Failure 404 {object} response.Response
// @Router /auth/forgot-password [post]
func (h *AuthHandler) ForgotPassword(c *fiber.Ctx) error {
	// the address arrives as a query parameter, a JSON body also works
	email := c.Query("email")
	if email == "" {
		var req ForgotPasswordRequest
		if err := c.BodyParser(&req); err != nil {
			return response.BadRequest(c, "Invalid request body")
		}
		email = req.Email
	}

	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return response.BadRequest(c, "Email is required")
	}

	if err := h.authService.ForgotPassword(c.Context(), email); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return response.NotFound(c, "No account found for this email")
		}
		return response.InternalServerError(c, "Failed to reset password")
	}

	// The client shows this message as-is
	return c.SendString("A new password has been sent to " + email)
}

// ChangePassword changes the password of a logged-in user
// @Summary Change password
// @Description Change the current user's password after checking the old one
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body ChangePasswordRequest true "Password change data"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /auth/change-password [put]
func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	var req ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	// The route is public, so the form carries the username and the
	// old password check stands in for a token
	username := strings.ToLower(strings.TrimSpace(req.Username))
	if username == "" {
		return response.BadRequest(c, "Username is required")
	}
	if !password.Validate(req.NewPassword) {
		return response.BadRequest(c, "Password must be at least 8 characters")
	}
	if req.NewPassword != req.ConfirmPassword {
		return response.BadRequest(c, "Passwords do not match")
	}

	input := &services.ChangePasswordInput{
		Username:        username,
		OldPassword:     req.OldPassword,
		NewPassword:     req.NewPassword,
		ConfirmPassword: req.ConfirmPassword,
	}

	if err := h.authService.ChangePassword(c.Context(), input); err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			return response.NotFound(c, "User not found")
		case errors.Is(err, services.ErrOldPasswordWrong):
			return response.Unauthorized(c, "Old password is incorrect")
		default:
			return response.InternalServerError(c, "Failed to change password")
		}
	}

	return response.Success(c, "Password changed successfully", nil)
}

// Session decodes the bearer token without verifying the signature, the
// way the dashboards read their own stored token. A missing or malformed
// token is not an error, it just means nobody is logged in.
// @Summary Current session
// @Description Describe the session carried by the Authorization header
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Response
// @Router /auth/session [get]
func (h *AuthHandler) Session(c *fiber.Ctx) error {
	var token string
	authHeader := c.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		token = strings.TrimPrefix(authHeader, "Bearer ")
	}

	payload, ok := jwt.DecodePayload(token)
	if !ok || payload.IsExpired(jwt.DefaultLeeway) {
		return response.Success(c, "No active session", fiber.Map{
			"authenticated": false,
			"redirect_to":   "/login",
		})
	}

	return response.Success(c, "Active session", fiber.Map{
		"authenticated": true,
		"username":      payload.Username(),
		"email":         payload.Email(),
		"firstName":     payload.FirstName(),
		"lastName":      payload.LastName(),
		"role":          payload.Role(),
		"redirect_to":   services.RoleLandingPath(payload.Role()),
	})
}

package handlers

import (
	"strconv"

	"helha-jobapp/internal/core/services"
	"helha-jobapp/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// ApplicationHandler handles application history endpoints
type ApplicationHandler struct {
	applicationService *services.ApplicationService
}

// NewApplicationHandler creates a new application handler
func NewApplicationHandler(applicationService *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{applicationService: applicationService}
}

// ListByStudent returns a student's applications, most recent first.
// Students can only see their own, admins can see anyone's.
// @Summary List student applications
// @Description List the applications submitted by one student
// @Tags Student
// @Produce json
// @Param id path int true "Student ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Security BearerAuth
// @Router /applications/student/{id} [get]
func (h *ApplicationHandler) ListByStudent(c *fiber.Ctx) error {
	studentID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid student ID")
	}

	role, _ := c.Locals("role").(string)
	userID, _ := c.Locals("userID").(uint)
	if role != "ADMIN" && userID != uint(studentID) {
		return response.Forbidden(c, "You can only view your own applications")
	}

	applications, err := h.applicationService.ListByStudent(c.Context(), uint(studentID))
	if err != nil {
		return response.InternalServerError(c, "Failed to list applications")
	}

	return response.Success(c, "Applications retrieved successfully", applications)
}

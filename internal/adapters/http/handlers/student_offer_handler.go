package handlers

import (
	"errors"
	"io"
	"mime/multipart"
	"strconv"
	"strings"

	"helha-jobapp/internal/core/services"
	"helha-jobapp/internal/pkg/response"
	"helha-jobapp/internal/pkg/validation"

	"github.com/gofiber/fiber/v2"
)

// StudentOfferHandler handles the student-facing offer endpoints
type StudentOfferHandler struct {
	offerService       *services.OfferService
	applicationService *services.ApplicationService
}

// NewStudentOfferHandler creates a new student offer handler
func NewStudentOfferHandler(offerService *services.OfferService, applicationService *services.ApplicationService) *StudentOfferHandler {
	return &StudentOfferHandler{
		offerService:       offerService,
		applicationService: applicationService,
	}
}

// List returns all offers with the applied flag for the logged-in student
// @Summary List offers
// @Description List every offer with optional text, company and status filters
// @Tags Student
// @Produce json
// @Param search query string false "Free text filter"
// @Param companies query string false "Comma-separated company names"
// @Param status query string false "all, applied or not"
// @Success 200 {object} response.Response
// @Security BearerAuth
// @Router /offers [get]
func (h *StudentOfferHandler) List(c *fiber.Ctx) error {
	studentID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	offers, err := h.offerService.ListOffers(c.Context(), studentID)
	if err != nil {
		return response.InternalServerError(c, "Failed to list offers")
	}

	filter := services.OfferFilter{
		Text:   c.Query("search"),
		Status: c.Query("status"),
	}
	if companies := c.Query("companies"); companies != "" {
		filter.Companies = strings.Split(companies, ",")
	}

	return response.Success(c, "Offers retrieved successfully", services.FilterOffers(offers, filter))
}

// Get returns one offer with the applied flag for the logged-in student
// @Summary Get offer
// @Description Get one offer by ID
// @Tags Student
// @Produce json
// @Param id path int true "Offer ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Security BearerAuth
// @Router /offers/{id} [get]
func (h *StudentOfferHandler) Get(c *fiber.Ctx) error {
	studentID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	offerID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid offer ID")
	}

	offer, err := h.offerService.GetOffer(c.Context(), uint(offerID), studentID)
	if err != nil {
		if errors.Is(err, services.ErrOfferNotFound) {
			return response.NotFound(c, "Offer not found")
		}
		return response.InternalServerError(c, "Failed to get offer")
	}

	return response.Success(c, "Offer retrieved successfully", offer)
}

// Apply submits an application with a CV and a motivation letter
// @Summary Apply to offer
// @Description Apply to an offer with a CV and motivation letter (PDF/DOC/DOCX, max 5 MB each)
// @Tags Student
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Offer ID"
// @Param cv formData file true "CV"
// @Param motivation formData file true "Motivation letter"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Security BearerAuth
// @Router /offers/{id}/apply [post]
func (h *StudentOfferHandler) Apply(c *fiber.Ctx) error {
	studentID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	offerID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid offer ID")
	}

	cv, err := readUpload(c, "cv")
	if err != nil {
		return response.BadRequest(c, "CV: "+err.Error())
	}
	motivation, err := readUpload(c, "motivation")
	if err != nil {
		return response.BadRequest(c, "Motivation letter: "+err.Error())
	}

	input := &services.ApplyInput{CV: *cv, Motivation: *motivation}
	application, err := h.applicationService.Apply(c.Context(), studentID, uint(offerID), input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrOfferNotFound):
			return response.NotFound(c, "Offer not found")
		case errors.Is(err, services.ErrAlreadyApplied):
			return response.Conflict(c, "You already applied to this offer")
		default:
			return response.InternalServerError(c, "Failed to apply")
		}
	}

	return response.Created(c, "Application submitted successfully", application)
}

// readUpload validates one multipart file and loads it into memory
func readUpload(c *fiber.Ctx, field string) (*services.Attachment, error) {
	header, err := c.FormFile(field)
	if err != nil {
		return nil, validation.ErrFileRequired
	}

	if err := validation.ValidateUpload(header.Filename, header.Size); err != nil {
		return nil, err
	}

	content, err := readMultipartFile(header)
	if err != nil {
		return nil, err
	}

	return &services.Attachment{Filename: header.Filename, Content: content}, nil
}

func readMultipartFile(header *multipart.FileHeader) ([]byte, error) {
	file, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return io.ReadAll(file)
}

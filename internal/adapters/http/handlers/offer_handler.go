package handlers

import (
	"errors"
	"strconv"

	"helha-jobapp/internal/core/services"
	"helha-jobapp/internal/pkg/response"
	"helha-jobapp/internal/pkg/validation"

	"github.com/gofiber/fiber/v2"
)

// OfferHandler handles the company offer management endpoints
type OfferHandler struct {
	offerService *services.OfferService
}

// NewOfferHandler creates a new offer handler
func NewOfferHandler(offerService *services.OfferService) *OfferHandler {
	return &OfferHandler{offerService: offerService}
}

// companyID resolves the acting company from the token claims set by
// the auth middleware
func companyID(c *fiber.Ctx) (uint, bool) {
	id, ok := c.Locals("userID").(uint)
	return id, ok && id > 0
}

// List returns the company's own offers
// @Summary List company offers
// @Description List the offers created by the logged-in company, newest first
// @Tags Company
// @Produce json
// @Success 200 {object} response.Response
// @Security BearerAuth
// @Router /company/offers [get]
func (h *OfferHandler) List(c *fiber.Ctx) error {
	id, ok := companyID(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	offers, err := h.offerService.ListCompanyOffers(c.Context(), id)
	if err != nil {
		return response.InternalServerError(c, "Failed to list offers")
	}

	filter := services.OfferFilter{Text: c.Query("search")}
	return response.Success(c, "Offers retrieved successfully", services.FilterOffers(offers, filter))
}

// Create creates an offer for the logged-in company
// @Summary Create offer
// @Description Create a job offer
// @Tags Company
// @Accept json
// @Produce json
// @Param body body validation.OfferInput true "Offer data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Security BearerAuth
// @Router /company/offers [post]
func (h *OfferHandler) Create(c *fiber.Ctx) error {
	id, ok := companyID(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	var input validation.OfferInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	input.Normalize()
	if fieldErrors := input.Validate(); len(fieldErrors) > 0 {
		return response.Invalid(c, fieldErrors)
	}

	offer, err := h.offerService.CreateOffer(c.Context(), id, &input)
	if err != nil {
		return response.InternalServerError(c, "Failed to create offer")
	}

	return response.Created(c, "Offer created successfully", offer)
}

// Update updates one of the company's own offers
// @Summary Update offer
// @Description Update a job offer owned by the logged-in company
// @Tags Company
// @Accept json
// @Produce json
// @Param id path int true "Offer ID"
// @Param body body validation.OfferInput true "Offer data"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Security BearerAuth
// @Router /company/offers/{id} [put]
func (h *OfferHandler) Update(c *fiber.Ctx) error {
	ownerID, ok := companyID(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	offerID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid offer ID")
	}

	var input validation.OfferInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	input.Normalize()
	if fieldErrors := input.Validate(); len(fieldErrors) > 0 {
		return response.Invalid(c, fieldErrors)
	}

	offer, err := h.offerService.UpdateOffer(c.Context(), uint(offerID), ownerID, &input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrOfferNotFound):
			return response.NotFound(c, "Offer not found")
		case errors.Is(err, services.ErrNotOfferOwner):
			return response.Forbidden(c, "This offer belongs to another company")
		default:
			return response.InternalServerError(c, "Failed to update offer")
		}
	}

	return response.Success(c, "Offer updated successfully", offer)
}

// Delete deletes one of the company's own offers
// @Summary Delete offer
// @Description Delete a job offer owned by the logged-in company
// @Tags Company
// @Produce json
// @Param id path int true "Offer ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Security BearerAuth
// @Router /company/offers/{id} [delete]
func (h *OfferHandler) Delete(c *fiber.Ctx) error {
	ownerID, ok := companyID(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	offerID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid offer ID")
	}

	if err := h.offerService.DeleteOffer(c.Context(), uint(offerID), ownerID); err != nil {
		switch {
		case errors.Is(err, services.ErrOfferNotFound):
			return response.NotFound(c, "Offer not found")
		case errors.Is(err, services.ErrNotOfferOwner):
			return response.Forbidden(c, "This offer belongs to another company")
		default:
			return response.InternalServerError(c, "Failed to delete offer")
		}
	}

	return response.Success(c, "Offer deleted successfully", nil)
}

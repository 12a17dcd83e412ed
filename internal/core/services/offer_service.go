package services

import (
	"context"
	"errors"
	"log"

	"helha-jobapp/internal/adapters/persistence/models"
	"helha-jobapp/internal/adapters/persistence/repositories"
	"helha-jobapp/internal/pkg/validation"

	"gorm.io/gorm"
)

var (
	ErrOfferNotFound = errors.New("offer not found")
	ErrNotOfferOwner = errors.New("offer belongs to another company")
)

// OfferService handles job offer business logic
type OfferService struct {
	offerRepo       repositories.OfferRepository
	applicationRepo repositories.ApplicationRepository
}

// NewOfferService creates a new offer service
func NewOfferService(offerRepo repositories.OfferRepository, applicationRepo repositories.ApplicationRepository) *OfferService {
	return &OfferService{
		offerRepo:       offerRepo,
		applicationRepo: applicationRepo,
	}
}

// ListCompanyOffers returns the offers created by one company, newest first
func (s *OfferService) ListCompanyOffers(ctx context.Context, companyID uint) ([]*models.OfferResponse, error) {
	offers, err := s.offerRepo.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}

	responses := make([]*models.OfferResponse, 0, len(offers))
	for _, offer := range offers {
		responses = append(responses, offer.ToResponse(false))
	}
	return responses, nil
}

// ListOffers returns every offer with the applied flag set for the given
// student, newest first
func (s *OfferService) ListOffers(ctx context.Context, studentID uint) ([]*models.OfferResponse, error) {
	offers, err := s.offerRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	applied, err := s.applicationRepo.AppliedOfferIDs(ctx, studentID)
	if err != nil {
		return nil, err
	}

	responses := make([]*models.OfferResponse, 0, len(offers))
	for _, offer := range offers {
		responses = append(responses, offer.ToResponse(applied[offer.ID]))
	}
	return responses, nil
}

// GetOffer returns one offer with the applied flag set for the given student
func (s *OfferService) GetOffer(ctx context.Context, offerID, studentID uint) (*models.OfferResponse, error) {
	offer, err := s.offerRepo.GetByID(ctx, offerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOfferNotFound
		}
		return nil, err
	}

	applied, err := s.applicationRepo.Exists(ctx, studentID, offerID)
	if err != nil {
		return nil, err
	}
	return offer.ToResponse(applied), nil
}

// CreateOffer creates a job offer for a company
func (s *OfferService) CreateOffer(ctx context.Context, companyID uint, input *validation.OfferInput) (*models.OfferResponse, error) {
	offer := &models.Offer{
		Title:       input.Title,
		Description: input.Description,
		LogoURL:     input.Logo(),
		WebsiteURL:  input.Website(),
		CreatedByID: companyID,
	}

	if err := s.offerRepo.Create(ctx, offer); err != nil {
		return nil, err
	}

	// Reload so CreatedBy is populated for the response
	created, err := s.offerRepo.GetByID(ctx, offer.ID)
	if err != nil {
		return nil, err
	}

	log.Printf("✅ Offer created: %s (ID: %d, company: %d)", created.Title, created.ID, companyID)
	return created.ToResponse(false), nil
}

// UpdateOffer updates an offer after checking the company owns it
func (s *OfferService) UpdateOffer(ctx context.Context, offerID, companyID uint, input *validation.OfferInput) (*models.OfferResponse, error) {
	// 1. Find offer
	offer, err := s.offerRepo.GetByID(ctx, offerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOfferNotFound
		}
		return nil, err
	}

	// 2. Ownership check
	if offer.CreatedByID != companyID {
		log.Printf("⚠️ Company %d tried to update offer %d owned by %d", companyID, offerID, offer.CreatedByID)
		return nil, ErrNotOfferOwner
	}

	// 3. Apply changes
	offer.Title = input.Title
	offer.Description = input.Description
	offer.LogoURL = input.Logo()
	offer.WebsiteURL = input.Website()

	if err := s.offerRepo.Update(ctx, offer); err != nil {
		return nil, err
	}

	log.Printf("✅ Offer updated: %s (ID: %d)", offer.Title, offer.ID)
	return offer.ToResponse(false), nil
}

// DeleteOffer deletes an offer after checking the company owns it
func (s *OfferService) DeleteOffer(ctx context.Context, offerID, companyID uint) error {
	offer, err := s.offerRepo.GetByID(ctx, offerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOfferNotFound
		}
		return err
	}

	if offer.CreatedByID != companyID {
		log.Printf("⚠️ Company %d tried to delete offer %d owned by %d", companyID, offerID, offer.CreatedByID)
		return ErrNotOfferOwner
	}

	if err := s.offerRepo.Delete(ctx, offerID); err != nil {
		return err
	}

	log.Printf("✅ Offer deleted: %s (ID: %d)", offer.Title, offer.ID)
	return nil
}

package repositories

import (
	"context"

	"helha-jobapp/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// offerRepository implements OfferRepository interface
type offerRepository struct {
	db *gorm.DB
}

// NewOfferRepository creates a new offer repository
func NewOfferRepository(db *gorm.DB) OfferRepository {
	return &offerRepository{db: db}
}

// Create creates a new offer
func (r *offerRepository) Create(ctx context.Context, offer *models.Offer) error {
	return r.db.WithContext(ctx).Create(offer).Error
}

// GetByID gets an offer by ID with its owning company preloaded
func (r *offerRepository) GetByID(ctx context.Context, id uint) (*models.Offer, error) {
	var offer models.Offer
	err := r.db.WithContext(ctx).Preload("CreatedBy").Where("id = ?", id).First(&offer).Error
	if err != nil {
		return nil, err
	}
	return &offer, nil
}

// Update updates an offer
func (r *offerRepository) Update(ctx context.Context, offer *models.Offer) error {
	return r.db.WithContext(ctx).Save(offer).Error
}

// Delete soft deletes an offer and its applications
func (r *offerRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Select("Applications").Delete(&models.Offer{ID: id}).Error
}

// List lists all offers, newest first
func (r *offerRepository) List(ctx context.Context) ([]*models.Offer, error) {
	var offers []*models.Offer
	err := r.db.WithContext(ctx).
		Preload("CreatedBy").
		Order("created_at DESC").
		Find(&offers).Error
	if err != nil {
		return nil, err
	}
	return offers, nil
}

// ListByCompany lists a company's offers, newest first
func (r *offerRepository) ListByCompany(ctx context.Context, companyID uint) ([]*models.Offer, error) {
	var offers []*models.Offer
	err := r.db.WithContext(ctx).
		Preload("CreatedBy").
		Where("created_by_id = ?", companyID).
		Order("created_at DESC").
		Find(&offers).Error
	if err != nil {
		return nil, err
	}
	return offers, nil
}

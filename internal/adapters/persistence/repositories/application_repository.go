package repositories

import (
	"context"
	"time"

	"helha-jobapp/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// applicationRepository implements ApplicationRepository interface
type applicationRepository struct {
	db *gorm.DB
}

// NewApplicationRepository creates a new application repository
func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

// Create creates a new application
func (r *applicationRepository) Create(ctx context.Context, application *models.Application) error {
	return r.db.WithContext(ctx).Create(application).Error
}

// ListByStudent lists a student's applications with offer and company preloaded
func (r *applicationRepository) ListByStudent(ctx context.Context, studentID uint) ([]*models.Application, error) {
	var applications []*models.Application
	err := r.db.WithContext(ctx).
		Preload("Offer").
		Preload("Offer.CreatedBy").
		Where("student_id = ?", studentID).
		Order("applied_at DESC").
		Find(&applications).Error
	if err != nil {
		return nil, err
	}
	return applications, nil
}

// ListSince lists applications submitted after the given time
func (r *applicationRepository) ListSince(ctx context.Context, since time.Time) ([]*models.Application, error) {
	var applications []*models.Application
	err := r.db.WithContext(ctx).
		Preload("Student").
		Preload("Offer").
		Preload("Offer.CreatedBy").
		Where("applied_at >= ?", since).
		Find(&applications).Error
	if err != nil {
		return nil, err
	}
	return applications, nil
}

// Exists checks if a student already applied to an offer
func (r *applicationRepository) Exists(ctx context.Context, studentID, offerID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Application{}).
		Where("student_id = ? AND offer_id = ?", studentID, offerID).
		Count(&count).Error
	return count > 0, err
}

// AppliedOfferIDs returns the set of offer IDs a student has applied to
func (r *applicationRepository) AppliedOfferIDs(ctx context.Context, studentID uint) (map[uint]bool, error) {
	var ids []uint
	err := r.db.WithContext(ctx).Model(&models.Application{}).
		Where("student_id = ?", studentID).
		Pluck("offer_id", &ids).Error
	if err != nil {
		return nil, err
	}

	applied := make(map[uint]bool, len(ids))
	for _, id := range ids {
		applied[id] = true
	}
	return applied, nil
}

package repositories

import (
	"context"
	"time"

	"helha-jobapp/internal/adapters/persistence/models"
)

// UserRepository defines user repository interface
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context) ([]*models.User, error)
	ExistsByID(ctx context.Context, id uint) (bool, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// OfferRepository defines offer repository interface
type OfferRepository interface {
	Create(ctx context.Context, offer *models.Offer) error
	GetByID(ctx context.Context, id uint) (*models.Offer, error)
	Update(ctx context.Context, offer *models.Offer) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context) ([]*models.Offer, error)
	ListByCompany(ctx context.Context, companyID uint) ([]*models.Offer, error)
}

// ApplicationRepository defines application repository interface
type ApplicationRepository interface {
	Create(ctx context.Context, application *models.Application) error
	ListByStudent(ctx context.Context, studentID uint) ([]*models.Application, error)
	ListSince(ctx context.Context, since time.Time) ([]*models.Application, error)
	Exists(ctx context.Context, studentID, offerID uint) (bool, error)
	AppliedOfferIDs(ctx context.Context, studentID uint) (map[uint]bool, error)
}

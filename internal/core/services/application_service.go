package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"helha-jobapp/internal/adapters/persistence/models"
	"helha-jobapp/internal/adapters/persistence/repositories"

	"gorm.io/gorm"
)

var ErrAlreadyApplied = errors.New("student already applied to this offer")

// ApplicationService handles student applications to job offers
type ApplicationService struct {
	applicationRepo repositories.ApplicationRepository
	offerRepo       repositories.OfferRepository
	userRepo        repositories.UserRepository
	mailer          Mailer
}

// NewApplicationService creates a new application service
func NewApplicationService(
	applicationRepo repositories.ApplicationRepository,
	offerRepo repositories.OfferRepository,
	userRepo repositories.UserRepository,
	mailer Mailer,
) *ApplicationService {
	return &ApplicationService{
		applicationRepo: applicationRepo,
		offerRepo:       offerRepo,
		userRepo:        userRepo,
		mailer:          mailer,
	}
}

// ApplyInput carries the uploaded documents of one application
type ApplyInput struct {
	CV         Attachment
	Motivation Attachment
}

// Apply records a student application and mails both documents to the company
func (s *ApplicationService) Apply(ctx context.Context, studentID, offerID uint, input *ApplyInput) (*models.ApplicationResponse, error) {
	// 1. Find offer
	offer, err := s.offerRepo.GetByID(ctx, offerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOfferNotFound
		}
		return nil, err
	}

	// 2. Duplicate check
	exists, err := s.applicationRepo.Exists(ctx, studentID, offerID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadyApplied
	}

	// 3. Find student
	student, err := s.userRepo.GetByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	// 4. Persist application
	application := &models.Application{
		StudentID: studentID,
		OfferID:   offerID,
	}
	if err := s.applicationRepo.Create(ctx, application); err != nil {
		return nil, err
	}

	log.Printf("✅ Application recorded: student %d -> offer %d", studentID, offerID)

	// 5. Mail the documents to the company. The application is already
	// saved, so a mail failure only gets logged.
	if offer.CreatedBy != nil {
		subject := fmt.Sprintf("New application for %s", offer.Title)
		body := fmt.Sprintf(
			"%s %s (%s) applied to your offer \"%s\".\r\n\r\nCV and motivation letter are attached.",
			student.FirstName, student.LastName, student.Email, offer.Title,
		)
		attachments := []Attachment{input.CV, input.Motivation}
		if err := s.mailer.SendWithAttachments(offer.CreatedBy.Email, subject, body, attachments); err != nil {
			log.Printf("❌ Failed to mail application to %s: %v", offer.CreatedBy.Email, err)
		}
	}

	application.Offer = offer
	return application.ToResponse(), nil
}

// ListByStudent returns a student's applications, most recent first
func (s *ApplicationService) ListByStudent(ctx context.Context, studentID uint) ([]*models.ApplicationResponse, error) {
	applications, err := s.applicationRepo.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}

	responses := make([]*models.ApplicationResponse, 0, len(applications))
	for _, application := range applications {
		responses = append(responses, application.ToResponse())
	}
	return responses, nil
}

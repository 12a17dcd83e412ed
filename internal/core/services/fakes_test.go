package services

import (
	"context"
	"sort"
	"time"

	"helha-jobapp/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// fakeUserRepo is an in-memory UserRepository for service tests
type fakeUserRepo struct {
	users  map[uint]*models.User
	nextID uint
}

func newFakeUserRepo(users ...*models.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: map[uint]*models.User{}, nextID: 1}
	for _, user := range users {
		repo.users[user.ID] = user
		if user.ID >= repo.nextID {
			repo.nextID = user.ID + 1
		}
	}
	return repo
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	user.ID = r.nextID
	r.nextID++
	user.CreatedAt = time.Now()
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id uint) (*models.User, error) {
	if user, ok := r.users[id]; ok {
		return user, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) GetByUsername(_ context.Context, username string) (*models.User, error) {
	for _, user := range r.users {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) Update(_ context.Context, user *models.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id uint) error {
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) List(_ context.Context) ([]*models.User, error) {
	users := make([]*models.User, 0, len(r.users))
	for _, user := range r.users {
		users = append(users, user)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (r *fakeUserRepo) ExistsByID(_ context.Context, id uint) (bool, error) {
	_, ok := r.users[id]
	return ok, nil
}

func (r *fakeUserRepo) ExistsByUsername(_ context.Context, username string) (bool, error) {
	for _, user := range r.users {
		if user.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	for _, user := range r.users {
		if user.Email == email {
			return true, nil
		}
	}
	return false, nil
}

// fakeOfferRepo is an in-memory OfferRepository for service tests
type fakeOfferRepo struct {
	offers map[uint]*models.Offer
	nextID uint
}

func newFakeOfferRepo(offers ...*models.Offer) *fakeOfferRepo {
	repo := &fakeOfferRepo{offers: map[uint]*models.Offer{}, nextID: 1}
	for _, offer := range offers {
		repo.offers[offer.ID] = offer
		if offer.ID >= repo.nextID {
			repo.nextID = offer.ID + 1
		}
	}
	return repo
}

func (r *fakeOfferRepo) Create(_ context.Context, offer *models.Offer) error {
	offer.ID = r.nextID
	r.nextID++
	if offer.CreatedAt.IsZero() {
		offer.CreatedAt = time.Now()
	}
	r.offers[offer.ID] = offer
	return nil
}

func (r *fakeOfferRepo) GetByID(_ context.Context, id uint) (*models.Offer, error) {
	if offer, ok := r.offers[id]; ok {
		return offer, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeOfferRepo) Update(_ context.Context, offer *models.Offer) error {
	if _, ok := r.offers[offer.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.offers[offer.ID] = offer
	return nil
}

func (r *fakeOfferRepo) Delete(_ context.Context, id uint) error {
	delete(r.offers, id)
	return nil
}

func (r *fakeOfferRepo) List(_ context.Context) ([]*models.Offer, error) {
	return r.sorted(func(*models.Offer) bool { return true }), nil
}

func (r *fakeOfferRepo) ListByCompany(_ context.Context, companyID uint) ([]*models.Offer, error) {
	return r.sorted(func(o *models.Offer) bool { return o.CreatedByID == companyID }), nil
}

// sorted mimics the newest-first ordering of the real repository
func (r *fakeOfferRepo) sorted(keep func(*models.Offer) bool) []*models.Offer {
	var offers []*models.Offer
	for _, offer := range r.offers {
		if keep(offer) {
			offers = append(offers, offer)
		}
	}
	sort.Slice(offers, func(i, j int) bool { return offers[i].CreatedAt.After(offers[j].CreatedAt) })
	return offers
}

// fakeApplicationRepo is an in-memory ApplicationRepository for service tests
type fakeApplicationRepo struct {
	applications map[uint]*models.Application
	nextID       uint
}

func newFakeApplicationRepo(applications ...*models.Application) *fakeApplicationRepo {
	repo := &fakeApplicationRepo{applications: map[uint]*models.Application{}, nextID: 1}
	for _, application := range applications {
		repo.applications[application.ID] = application
		if application.ID >= repo.nextID {
			repo.nextID = application.ID + 1
		}
	}
	return repo
}

func (r *fakeApplicationRepo) Create(_ context.Context, application *models.Application) error {
	application.ID = r.nextID
	r.nextID++
	if application.AppliedAt.IsZero() {
		application.AppliedAt = time.Now()
	}
	r.applications[application.ID] = application
	return nil
}

func (r *fakeApplicationRepo) ListByStudent(_ context.Context, studentID uint) ([]*models.Application, error) {
	var applications []*models.Application
	for _, application := range r.applications {
		if application.StudentID == studentID {
			applications = append(applications, application)
		}
	}
	sort.Slice(applications, func(i, j int) bool {
		return applications[i].AppliedAt.After(applications[j].AppliedAt)
	})
	return applications, nil
}

func (r *fakeApplicationRepo) ListSince(_ context.Context, since time.Time) ([]*models.Application, error) {
	var applications []*models.Application
	for _, application := range r.applications {
		if !application.AppliedAt.Before(since) {
			applications = append(applications, application)
		}
	}
	return applications, nil
}

func (r *fakeApplicationRepo) Exists(_ context.Context, studentID, offerID uint) (bool, error) {
	for _, application := range r.applications {
		if application.StudentID == studentID && application.OfferID == offerID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeApplicationRepo) AppliedOfferIDs(_ context.Context, studentID uint) (map[uint]bool, error) {
	applied := map[uint]bool{}
	for _, application := range r.applications {
		if application.StudentID == studentID {
			applied[application.OfferID] = true
		}
	}
	return applied, nil
}

// sentMail records one delivered message
type sentMail struct {
	To          string
	Subject     string
	Body        string
	Attachments []Attachment
}

// fakeMailer records outgoing mail instead of delivering it
type fakeMailer struct {
	sent     []sentMail
	disabled bool
}

func (m *fakeMailer) IsEnabled() bool { return !m.disabled }

func (m *fakeMailer) Send(to, subject, body string) error {
	m.sent = append(m.sent, sentMail{To: to, Subject: subject, Body: body})
	return nil
}

func (m *fakeMailer) SendWithAttachments(to, subject, body string, attachments []Attachment) error {
	m.sent = append(m.sent, sentMail{To: to, Subject: subject, Body: body, Attachments: attachments})
	return nil
}

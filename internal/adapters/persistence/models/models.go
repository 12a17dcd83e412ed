package models

import (
	"time"

	"gorm.io/gorm"
)

// User roles
const (
	RoleAdmin   = "ADMIN"
	RoleCompany = "COMPANY"
	RoleStudent = "STUDENT"
)

// User represents users table.
// A user is an administrator, a company or a student.
type User struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Username    string         `gorm:"uniqueIndex;size:50;not null" json:"username"`
	Email       string         `gorm:"uniqueIndex;size:100;not null" json:"email"`
	Password    string         `gorm:"size:255;not null" json:"-"`
	Role        string         `gorm:"size:20;not null" json:"role"`
	FirstName   string         `gorm:"size:100" json:"first_name"`
	LastName    string         `gorm:"size:100" json:"last_name"`
	CompanyName *string        `gorm:"size:150" json:"company_name,omitempty"`
	Address     string         `gorm:"size:255" json:"address"`
	PhoneNumber string         `gorm:"size:30" json:"phone_number"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Deleting a company removes its offers; deleting a student removes its applications.
	Offers       []Offer       `gorm:"foreignKey:CreatedByID;constraint:OnDelete:CASCADE" json:"-"`
	Applications []Application `gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE" json:"-"`
}

func (User) TableName() string {
	return "users"
}

// UserResponse DTO (never carries the password)
type UserResponse struct {
	ID          uint      `json:"id"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	Role        string    `json:"role"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	Address     string    `json:"address"`
	CompanyName *string   `json:"companyName,omitempty"`
	PhoneNumber string    `json:"phoneNumber"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (u *User) ToResponse() *UserResponse {
	return &UserResponse{
		ID:          u.ID,
		Username:    u.Username,
		Email:       u.Email,
		Role:        u.Role,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Address:     u.Address,
		CompanyName: u.CompanyName,
		PhoneNumber: u.PhoneNumber,
		CreatedAt:   u.CreatedAt,
	}
}

// Offer represents job offers created by companies
type Offer struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Title       string         `gorm:"size:150;not null" json:"title"`
	Description string         `gorm:"type:text;not null" json:"description"`
	LogoURL     *string        `gorm:"size:1024" json:"logo_url"`
	WebsiteURL  *string        `gorm:"size:1024" json:"website_url"`
	CreatedByID uint           `gorm:"index;not null" json:"created_by_id"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	CreatedBy    *User         `gorm:"foreignKey:CreatedByID" json:"-"`
	Applications []Application `gorm:"foreignKey:OfferID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Offer) TableName() string {
	return "offers"
}

// OfferResponse DTO exposed to the dashboards
type OfferResponse struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	LogoURL     *string   `json:"logoUrl"`
	WebsiteURL  *string   `json:"websiteUrl"`
	CreatedAt   time.Time `json:"createdAt"`
	CompanyName string    `json:"companyName"`
	Applied     bool      `json:"applied"`
}

// ToResponse converts an offer to its DTO. The applied flag is computed
// per viewing student, defaulting to false for company views.
func (o *Offer) ToResponse(applied bool) *OfferResponse {
	companyName := ""
	if o.CreatedBy != nil && o.CreatedBy.CompanyName != nil {
		companyName = *o.CreatedBy.CompanyName
	}
	return &OfferResponse{
		ID:          o.ID,
		Title:       o.Title,
		Description: o.Description,
		LogoURL:     o.LogoURL,
		WebsiteURL:  o.WebsiteURL,
		CreatedAt:   o.CreatedAt,
		CompanyName: companyName,
		Applied:     applied,
	}
}

// Application represents a student's application to an offer
type Application struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	StudentID uint      `gorm:"index;not null;uniqueIndex:idx_student_offer" json:"student_id"`
	OfferID   uint      `gorm:"index;not null;uniqueIndex:idx_student_offer" json:"offer_id"`
	AppliedAt time.Time `gorm:"autoCreateTime" json:"applied_at"`

	Student *User  `gorm:"foreignKey:StudentID" json:"-"`
	Offer   *Offer `gorm:"foreignKey:OfferID" json:"-"`
}

func (Application) TableName() string {
	return "applications"
}

// ApplicationResponse DTO for a student's application history
type ApplicationResponse struct {
	ID          uint      `json:"id"`
	OfferTitle  string    `json:"offerTitle"`
	CompanyName string    `json:"companyName"`
	AppliedAt   time.Time `json:"appliedAt"`
}

func (a *Application) ToResponse() *ApplicationResponse {
	resp := &ApplicationResponse{
		ID:        a.ID,
		AppliedAt: a.AppliedAt,
	}
	if a.Offer != nil {
		resp.OfferTitle = a.Offer.Title
		if a.Offer.CreatedBy != nil && a.Offer.CreatedBy.CompanyName != nil {
			resp.CompanyName = *a.Offer.CreatedBy.CompanyName
		}
	}
	return resp
}

// AutoMigrate creates or updates all tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Offer{},
		&Application{},
	)
}

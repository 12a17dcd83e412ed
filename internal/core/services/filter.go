package services

import (
	"sort"
	"strings"

	"helha-jobapp/internal/adapters/persistence/models"
)

// Applied status filter values for offer lists
const (
	StatusAll        = "all"
	StatusApplied    = "applied"
	StatusNotApplied = "not"
)

// UserFilter narrows the admin user list. All criteria combine with AND;
// empty criteria match everything.
type UserFilter struct {
	Text  string
	Roles []string
}

// OfferFilter narrows an offer list. All criteria combine with AND;
// empty criteria match everything.
type OfferFilter struct {
	Text      string
	Companies []string
	Status    string
}

// FilterUsers returns the users matching every set criterion. The text is
// matched case-insensitively against username, email, first and last name.
func FilterUsers(users []*models.UserResponse, f UserFilter) []*models.UserResponse {
	text := strings.ToLower(strings.TrimSpace(f.Text))
	roles := make(map[string]bool, len(f.Roles))
	for _, role := range f.Roles {
		roles[strings.ToUpper(role)] = true
	}

	matched := make([]*models.UserResponse, 0, len(users))
	for _, user := range users {
		if len(roles) > 0 && !roles[user.Role] {
			continue
		}
		if text != "" && !containsFold(text, user.Username, user.Email, user.FirstName, user.LastName) {
			continue
		}
		matched = append(matched, user)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})
	return matched
}

// FilterOffers returns the offers matching every set criterion, newest
// first. The text is matched case-insensitively against title, description
// and company name. Status narrows by the viewing student's applied flag.
func FilterOffers(offers []*models.OfferResponse, f OfferFilter) []*models.OfferResponse {
	text := strings.ToLower(strings.TrimSpace(f.Text))
	companies := make(map[string]bool, len(f.Companies))
	for _, company := range f.Companies {
		companies[strings.ToLower(company)] = true
	}
	status := f.Status
	if status == "" {
		status = StatusAll
	}

	matched := make([]*models.OfferResponse, 0, len(offers))
	for _, offer := range offers {
		if status == StatusApplied && !offer.Applied {
			continue
		}
		if status == StatusNotApplied && offer.Applied {
			continue
		}
		if len(companies) > 0 && !companies[strings.ToLower(offer.CompanyName)] {
			continue
		}
		if text != "" && !containsFold(text, offer.Title, offer.Description, offer.CompanyName) {
			continue
		}
		matched = append(matched, offer)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})
	return matched
}

// containsFold reports whether any field contains the already-lowercased text
func containsFold(text string, fields ...string) bool {
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), text) {
			return true
		}
	}
	return false
}

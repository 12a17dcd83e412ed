package validation

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	// MaxOfferTitleLen bounds the offer title length
	MaxOfferTitleLen = 150

	// MaxOfferDescriptionLen bounds the offer description length
	MaxOfferDescriptionLen = 5000

	// MaxOfferURLLen bounds the optional URL fields
	MaxOfferURLLen = 1024
)

// optional URLs must look like http(s)://... with no whitespace
var urlRe = regexp.MustCompile(`^https?://\S+$`)

// OfferInput carries the offer form fields before normalization
type OfferInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	LogoURL     string `json:"logoUrl"`
	WebsiteURL  string `json:"websiteUrl"`
}

// Normalize trims all string fields
func (o *OfferInput) Normalize() {
	o.Title = strings.TrimSpace(o.Title)
	o.Description = strings.TrimSpace(o.Description)
	o.LogoURL = strings.TrimSpace(o.LogoURL)
	o.WebsiteURL = strings.TrimSpace(o.WebsiteURL)
}

// Validate checks the offer fields. Call Normalize first.
func (o *OfferInput) Validate() FieldErrors {
	errs := FieldErrors{}

	// limits count characters, not bytes, so accents do not eat into them
	if o.Title == "" {
		errs["title"] = "Title is required"
	} else if utf8.RuneCountInString(o.Title) > MaxOfferTitleLen {
		errs["title"] = "Title must be at most 150 characters"
	}

	if o.Description == "" {
		errs["description"] = "Description is required"
	} else if utf8.RuneCountInString(o.Description) > MaxOfferDescriptionLen {
		errs["description"] = "Description must be at most 5000 characters"
	}

	if msg := validateOptionalURL(o.LogoURL); msg != "" {
		errs["logoUrl"] = msg
	}
	if msg := validateOptionalURL(o.WebsiteURL); msg != "" {
		errs["websiteUrl"] = msg
	}

	return errs
}

// Logo returns the logo URL as an optional value (nil when blank)
func (o *OfferInput) Logo() *string {
	return OptionalURL(o.LogoURL)
}

// Website returns the website URL as an optional value (nil when blank)
func (o *OfferInput) Website() *string {
	return OptionalURL(o.WebsiteURL)
}

// OptionalURL converts an empty string to an explicit absent value
func OptionalURL(url string) *string {
	url = strings.TrimSpace(url)
	if url == "" {
		return nil
	}
	return &url
}

func validateOptionalURL(url string) string {
	if url == "" {
		return ""
	}
	if len(url) > MaxOfferURLLen {
		return "URL is too long"
	}
	if !urlRe.MatchString(url) {
		return "URL must start with http:// or https://"
	}
	return ""
}

package jwt

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrTokenExpired = errors.New("token has expired")
	ErrTokenInvalid = errors.New("token is invalid")
)

// DefaultLeeway tolerates clock skew when checking token expiry
const DefaultLeeway = 5 * time.Second

// Claims represents the JWT claims issued at login
type Claims struct {
	UserID      uint     `json:"userId"`
	Username    string   `json:"username"`
	Email       string   `json:"email"`
	FirstName   string   `json:"firstName"`
	LastName    string   `json:"lastName"`
	Role        string   `json:"role"`
	Authorities []string `json:"authorities"`
	jwt.RegisteredClaims
}

// GenerateAccessToken generates a new signed access token
func GenerateAccessToken(userID uint, username, email, firstName, lastName, role, secret string, expiryMinutes int) (string, error) {
	claims := Claims{
		UserID:      userID,
		Username:    username,
		Email:       email,
		FirstName:   firstName,
		LastName:    lastName,
		Role:        role,
		Authorities: []string{role},
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Duration(expiryMinutes) * time.Minute)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
			Issuer:    "helha-jobapp",
			Subject:   username,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ValidateAccessToken validates an access token signature and returns claims
func ValidateAccessToken(tokenString, secret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return []byte(secret), nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, ErrTokenInvalid
}

// Payload is the decoded (unverified) token payload. It mirrors what the SPA
// reads out of the token for display and routing; authorization decisions
// always go through ValidateAccessToken.
type Payload map[string]interface{}

// DecodePayload best-effort decodes the payload segment of a token without
// verifying its signature. Any malformed input yields (nil, false) rather
// than an error: an unreadable token is simply an unauthenticated session.
func DecodePayload(token string) (Payload, bool) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return nil, false
	}

	raw, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return nil, false
	}

	var payload Payload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, false
	}

	return payload, true
}

// Role returns the role claim, preferring the first authorities entry
func (p Payload) Role() string {
	if auths, ok := p["authorities"].([]interface{}); ok && len(auths) > 0 {
		if role, ok := auths[0].(string); ok && role != "" {
			return role
		}
	}
	if role, ok := p["role"].(string); ok {
		return role
	}
	return ""
}

// Username returns the username claim
func (p Payload) Username() string { return p.str("username") }

// Email returns the email claim
func (p Payload) Email() string { return p.str("email") }

// FirstName returns the firstName claim
func (p Payload) FirstName() string { return p.str("firstName") }

// LastName returns the lastName claim
func (p Payload) LastName() string { return p.str("lastName") }

// UserID returns the userId claim, 0 if absent
func (p Payload) UserID() uint {
	if id, ok := p["userId"].(float64); ok {
		return uint(id)
	}
	return 0
}

// ExpiresAt returns the exp claim as a time, zero if absent
func (p Payload) ExpiresAt() time.Time {
	exp, ok := p["exp"].(float64)
	if !ok {
		return time.Time{}
	}
	return time.Unix(int64(exp), 0)
}

// IsExpired reports whether the payload's exp is within leeway of now.
// A payload without exp is treated as expired.
func (p Payload) IsExpired(leeway time.Duration) bool {
	exp := p.ExpiresAt()
	if exp.IsZero() {
		return true
	}
	return !exp.After(time.Now().Add(leeway))
}

func (p Payload) str(key string) string {
	if v, ok := p[key].(string); ok {
		return v
	}
	return ""
}

// IsAuthenticated reports whether a token carries a decodable, unexpired
// payload (with DefaultLeeway). This is the session-store view of a token,
// not a signature check.
func IsAuthenticated(token string) bool {
	if token == "" {
		return false
	}
	payload, ok := DecodePayload(token)
	if !ok {
		return false
	}
	return !payload.IsExpired(DefaultLeeway)
}

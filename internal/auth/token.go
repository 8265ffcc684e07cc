package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/menuhub/menu-server/internal/core/domain"
)

const (
	DefaultAdminTTL      = 24 * time.Hour
	DefaultRestaurantTTL = 30 * 24 * time.Hour
)

type subjectRef struct {
	ID string `json:"id"`
}

// Claims is the token payload: exactly one of Admin or Restaurant names the
// subject, e.g. {"admin":{"id":"..."}}.
type Claims struct {
	Admin      *subjectRef `json:"admin,omitempty"`
	Restaurant *subjectRef `json:"restaurant,omitempty"`
	jwt.RegisteredClaims
}

// Principal decodes the subject. When both subjects are present the admin
// subject wins; a token with neither is invalid.
func (c *Claims) Principal() (domain.Principal, error) {
	switch {
	case c.Admin != nil && c.Admin.ID != "":
		return domain.Principal{ID: c.Admin.ID, Role: domain.RoleAdmin}, nil
	case c.Restaurant != nil && c.Restaurant.ID != "":
		return domain.Principal{ID: c.Restaurant.ID, Role: domain.RoleRestaurant}, nil
	default:
		return domain.Principal{}, fmt.Errorf("%w: token has no subject", domain.ErrInvalidToken)
	}
}

// TokenManager issues and verifies HS256 tokens with a per-role lifetime.
type TokenManager struct {
	secret        []byte
	adminTTL      time.Duration
	restaurantTTL time.Duration
	now           func() time.Time
}

// NewTokenManager builds a manager signing with secret. Non-positive TTLs
// fall back to one day for admins and thirty days for restaurants.
func NewTokenManager(secret string, adminTTL, restaurantTTL time.Duration) *TokenManager {
	if adminTTL <= 0 {
		adminTTL = DefaultAdminTTL
	}
	if restaurantTTL <= 0 {
		restaurantTTL = DefaultRestaurantTTL
	}
	return &TokenManager{
		secret:        []byte(secret),
		adminTTL:      adminTTL,
		restaurantTTL: restaurantTTL,
		now:           time.Now,
	}
}

// Issue signs a token whose subject is p.
func (tm *TokenManager) Issue(p domain.Principal) (string, error) {
	if p.ID == "" {
		return "", errors.New("issue token: empty subject id")
	}

	claims := Claims{}
	var ttl time.Duration
	switch p.Role {
	case domain.RoleAdmin:
		claims.Admin = &subjectRef{ID: p.ID}
		ttl = tm.adminTTL
	case domain.RoleRestaurant:
		claims.Restaurant = &subjectRef{ID: p.ID}
		ttl = tm.restaurantTTL
	default:
		return "", fmt.Errorf("issue token: unknown role %q", p.Role)
	}

	now := tm.now()
	claims.ID = uuid.NewString()
	claims.IssuedAt = jwt.NewNumericDate(now)
	claims.ExpiresAt = jwt.NewNumericDate(now.Add(ttl))

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(tm.secret)
}

// Parse verifies signature and expiry and returns the token's principal.
// An empty token yields domain.ErrUnauthenticated; every other failure
// wraps domain.ErrInvalidToken.
func (tm *TokenManager) Parse(tokenStr string) (domain.Principal, error) {
	if tokenStr == "" {
		return domain.Principal{}, domain.ErrUnauthenticated
	}

	claims := &Claims{}
	tkn, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return tm.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(tm.now),
	)
	if err != nil {
		return domain.Principal{}, fmt.Errorf("%w: %v", domain.ErrInvalidToken, err)
	}
	if !tkn.Valid {
		return domain.Principal{}, domain.ErrInvalidToken
	}

	return claims.Principal()
}

package ports

import (
	"context"

	"github.com/menuhub/menu-server/internal/core/domain"
)

// RegisterRestaurantInput carries the self-registration payload. The
// username is derived from Name.
type RegisterRestaurantInput struct {
	Name     string
	Email    string
	Password string
	Location string
}

// CreateAdminInput carries the data needed to provision an administrator.
type CreateAdminInput struct {
	Username string
	Email    string
	Password string
	Role     domain.AdminRole
}

type AuthService interface {
	// Login verifies credentials for a principal of the given kind and
	// returns a signed token. Unknown email and wrong password both yield
	// domain.ErrInvalidCredentials.
	Login(ctx context.Context, kind domain.Role, email, password string) (string, error)
	RegisterRestaurant(ctx context.Context, in RegisterRestaurantInput) (string, *domain.Restaurant, error)
	CreateAdmin(ctx context.Context, in CreateAdminInput) (*domain.Admin, error)
}

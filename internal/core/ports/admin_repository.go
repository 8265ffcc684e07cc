package ports

import (
	"context"

	"github.com/menuhub/menu-server/internal/core/domain"
)

// AdminRepository persists platform administrators.
type AdminRepository interface {
	// Create returns domain.ErrAdminExists when email or username is taken.
	Create(ctx context.Context, admin *domain.Admin) (*domain.Admin, error)
	FindByID(ctx context.Context, id string) (*domain.Admin, error)
	FindByEmail(ctx context.Context, email string) (*domain.Admin, error)
}

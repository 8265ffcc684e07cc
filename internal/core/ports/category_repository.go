package ports

import (
	"context"

	"github.com/menuhub/menu-server/internal/core/domain"
)

// CategoryRepository persists categories. The store must enforce slug
// uniqueness; Create and Update return domain.ErrCategoryExists when the
// constraint rejects a write.
type CategoryRepository interface {
	Create(ctx context.Context, c *domain.Category) (*domain.Category, error)
	FindByID(ctx context.Context, id string) (*domain.Category, error)
	FindBySlug(ctx context.Context, slug string) (*domain.Category, error)
	List(ctx context.Context) ([]*domain.Category, error)
	Update(ctx context.Context, c *domain.Category) error
	Delete(ctx context.Context, id string) error
}

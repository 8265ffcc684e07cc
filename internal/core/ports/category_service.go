package ports

import (
	"context"

	"github.com/menuhub/menu-server/internal/core/domain"
)

type CategoryService interface {
	// Resolve finds the category whose slug matches rawName, creating it when
	// absent. Concurrent callers for the same new slug get the same record.
	Resolve(ctx context.Context, rawName string) (*domain.Category, error)
	List(ctx context.Context) ([]*domain.Category, error)
	Get(ctx context.Context, id string) (*domain.Category, error)
	Create(ctx context.Context, name string) (*domain.Category, error)
	// Rename changes name and slug and rewrites the slug on menu items.
	Rename(ctx context.Context, id, name string) (*domain.Category, error)
	Delete(ctx context.Context, id string) error
}

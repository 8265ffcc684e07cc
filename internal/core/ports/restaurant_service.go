package ports

import (
	"context"

	"github.com/menuhub/menu-server/internal/core/domain"
)

type RestaurantService interface {
	List(ctx context.Context) ([]*domain.Restaurant, error)
	// Get resolves key as a restaurant id first, then as a username.
	Get(ctx context.Context, key string) (*domain.Restaurant, error)
	MenuCategories(ctx context.Context, username string) ([]string, error)
	SetStatus(ctx context.Context, caller domain.Principal, id, status string) (*domain.Restaurant, error)
	Delete(ctx context.Context, id string) error
}

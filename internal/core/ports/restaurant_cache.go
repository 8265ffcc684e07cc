package ports

import (
	"context"

	"github.com/menuhub/menu-server/internal/core/domain"
)

// RestaurantCache holds public restaurant views keyed by id or username.
// Cached values never carry the password hash and must not be saved back.
type RestaurantCache interface {
	// Get returns (nil, nil) on a miss.
	Get(ctx context.Context, key string) (*domain.Restaurant, error)
	Set(ctx context.Context, r *domain.Restaurant) error
	Invalidate(ctx context.Context, r *domain.Restaurant) error
}

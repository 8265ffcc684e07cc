package ports

import (
	"context"

	"github.com/menuhub/menu-server/internal/core/domain"
)

// RestaurantRepository persists Restaurant aggregates, menu included.
type RestaurantRepository interface {
	// Create inserts a new restaurant. It returns domain.ErrUsernameTaken when
	// only the username collided and domain.ErrRestaurantExists when the
	// email is already registered.
	Create(ctx context.Context, r *domain.Restaurant) (*domain.Restaurant, error)
	FindByID(ctx context.Context, id string) (*domain.Restaurant, error)
	FindByEmail(ctx context.Context, email string) (*domain.Restaurant, error)
	FindByUsername(ctx context.Context, username string) (*domain.Restaurant, error)
	List(ctx context.Context) ([]*domain.Restaurant, error)
	// SaveMenu replaces the menu list and updated_at of r and nothing else.
	// Concurrent menu writes are last-write-wins.
	SaveMenu(ctx context.Context, r *domain.Restaurant) error
	// SetStatus updates the status and returns the status it replaced.
	SetStatus(ctx context.Context, id string, status domain.RestaurantStatus) (domain.RestaurantStatus, error)
	Delete(ctx context.Context, id string) error
	// MenuCategories returns the distinct category slugs on a restaurant's menu.
	MenuCategories(ctx context.Context, username string) ([]string, error)
	// RenameMenuCategory rewrites the denormalized category slug on every
	// menu item of every restaurant and returns the number of restaurants touched.
	RenameMenuCategory(ctx context.Context, from, to string) (int64, error)
}

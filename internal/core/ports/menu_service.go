package ports

import (
	"context"

	"github.com/menuhub/menu-server/internal/core/domain"
)

// MenuItemInput is the owner-supplied menu item. Category is free text and
// Image is an upload payload or an existing URL.
type MenuItemInput struct {
	Name        string
	Description string
	Sizes       []domain.Size
	Category    string
	Image       string
}

// MenuService mutates the menu embedded in a Restaurant. restaurantKey is
// the restaurant id or its username. Every operation requires the caller to
// own the restaurant and returns the saved aggregate.
type MenuService interface {
	AddItem(ctx context.Context, caller domain.Principal, restaurantKey string, in MenuItemInput) (*domain.Restaurant, error)
	UpdateItem(ctx context.Context, caller domain.Principal, restaurantKey, itemID string, in MenuItemInput) (*domain.Restaurant, error)
	RemoveItem(ctx context.Context, caller domain.Principal, restaurantKey, itemID string) (*domain.Restaurant, error)
}

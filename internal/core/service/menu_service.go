package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/menuhub/menu-server/internal/api/metrics"
	"github.com/menuhub/menu-server/internal/core/domain"
	"github.com/menuhub/menu-server/internal/core/ports"
)

// CategoryResolver abstracts the find-or-create step used by menu writes.
type CategoryResolver interface {
	Resolve(ctx context.Context, rawName string) (*domain.Category, error)
}

// MenuService mutates the menu embedded in a restaurant aggregate.
type MenuService struct {
	restaurants ports.RestaurantRepository
	categories  CategoryResolver
	images      ports.ImageUploader
	cache       ports.RestaurantCache
	newID       func() string
	log         zerolog.Logger
}

func NewMenuService(
	restaurants ports.RestaurantRepository,
	categories CategoryResolver,
	images ports.ImageUploader,
	cache ports.RestaurantCache,
	log zerolog.Logger,
) *MenuService {
	if cache == nil {
		cache = noopCache{}
	}
	return &MenuService{
		restaurants: restaurants,
		categories:  categories,
		images:      images,
		cache:       cache,
		newID:       uuid.NewString,
		log:         log,
	}
}

func (s *MenuService) AddItem(ctx context.Context, caller domain.Principal, restaurantKey string, in ports.MenuItemInput) (*domain.Restaurant, error) {
	r, err := s.loadOwned(ctx, caller, restaurantKey)
	if err != nil {
		return nil, err
	}
	if err := validateMenuItem(&in); err != nil {
		return nil, err
	}

	category, err := s.categories.Resolve(ctx, in.Category)
	if err != nil {
		return nil, err
	}
	imageURL, err := s.images.Upload(ctx, in.Image)
	if err != nil {
		return nil, fmt.Errorf("add menu item: upload image: %w", err)
	}

	item := domain.MenuItem{
		ID:          s.newID(),
		Name:        in.Name,
		Description: in.Description,
		Sizes:       in.Sizes,
		Category:    category.Slug,
		Image:       imageURL,
	}
	r.AddMenuItem(item)

	if err := s.save(ctx, r, "add"); err != nil {
		return nil, err
	}
	s.log.Info().Str("restaurant_id", r.ID).Str("item_id", item.ID).Str("category", item.Category).Msg("menu item added")
	return r, nil
}

// UpdateItem replaces the fields of an existing item. An empty image keeps
// the stored URL.
func (s *MenuService) UpdateItem(ctx context.Context, caller domain.Principal, restaurantKey, itemID string, in ports.MenuItemInput) (*domain.Restaurant, error) {
	r, err := s.loadOwned(ctx, caller, restaurantKey)
	if err != nil {
		return nil, err
	}
	item, err := r.MenuItem(itemID)
	if err != nil {
		return nil, err
	}
	if err := validateMenuItem(&in); err != nil {
		return nil, err
	}

	category, err := s.categories.Resolve(ctx, in.Category)
	if err != nil {
		return nil, err
	}
	if in.Image != "" {
		imageURL, err := s.images.Upload(ctx, in.Image)
		if err != nil {
			return nil, fmt.Errorf("update menu item: upload image: %w", err)
		}
		item.Image = imageURL
	}

	item.Name = in.Name
	item.Description = in.Description
	item.Sizes = in.Sizes
	item.Category = category.Slug

	if err := s.save(ctx, r, "update"); err != nil {
		return nil, err
	}
	s.log.Info().Str("restaurant_id", r.ID).Str("item_id", itemID).Msg("menu item updated")
	return r, nil
}

func (s *MenuService) RemoveItem(ctx context.Context, caller domain.Principal, restaurantKey, itemID string) (*domain.Restaurant, error) {
	r, err := s.loadOwned(ctx, caller, restaurantKey)
	if err != nil {
		return nil, err
	}
	if err := r.RemoveMenuItem(itemID); err != nil {
		return nil, err
	}

	if err := s.save(ctx, r, "remove"); err != nil {
		return nil, err
	}
	s.log.Info().Str("restaurant_id", r.ID).Str("item_id", itemID).Msg("menu item removed")
	return r, nil
}

// loadOwned fetches the restaurant and enforces that the caller is it.
func (s *MenuService) loadOwned(ctx context.Context, caller domain.Principal, key string) (*domain.Restaurant, error) {
	r, err := findRestaurant(ctx, s.restaurants, key)
	if err != nil {
		return nil, err
	}
	if !caller.Owns(r.ID) {
		return nil, domain.ErrForbidden
	}
	return r, nil
}

func (s *MenuService) save(ctx context.Context, r *domain.Restaurant, op string) error {
	r.UpdatedAt = time.Now().UTC()
	if err := s.restaurants.SaveMenu(ctx, r); err != nil {
		return fmt.Errorf("save restaurant %s: %w", r.ID, err)
	}
	metrics.MenuMutationsTotal.WithLabelValues(op).Inc()
	if err := s.cache.Invalidate(ctx, r); err != nil {
		s.log.Warn().Err(err).Str("restaurant_id", r.ID).Msg("failed to invalidate restaurant cache")
	}
	return nil
}

func validateMenuItem(in *ports.MenuItemInput) error {
	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)

	verr := &domain.ValidationError{Fields: map[string]string{}}
	if in.Name == "" {
		verr.Fields["name"] = "name is required"
	}
	if strings.TrimSpace(in.Category) == "" {
		verr.Fields["category"] = "category is required"
	}
	if len(in.Sizes) == 0 {
		verr.Fields["sizes"] = "sizes must contain at least one entry"
	}
	for i, size := range in.Sizes {
		if strings.TrimSpace(size.Name) == "" {
			verr.Fields[fmt.Sprintf("sizes[%d].name", i)] = fmt.Sprintf("sizes[%d].name is required", i)
		}
		if size.Price < 0 {
			verr.Fields[fmt.Sprintf("sizes[%d].price", i)] = fmt.Sprintf("sizes[%d].price must not be negative", i)
		}
	}
	if len(verr.Fields) > 0 {
		return verr
	}
	return nil
}

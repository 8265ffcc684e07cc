package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/menuhub/menu-server/internal/api/metrics"
	"github.com/menuhub/menu-server/internal/core/domain"
	"github.com/menuhub/menu-server/internal/core/ports"
)

// CategoryService owns category CRUD and the find-or-create used by menus.
type CategoryService struct {
	repo        ports.CategoryRepository
	restaurants ports.RestaurantRepository
	log         zerolog.Logger
}

func NewCategoryService(repo ports.CategoryRepository, restaurants ports.RestaurantRepository, log zerolog.Logger) *CategoryService {
	return &CategoryService{repo: repo, restaurants: restaurants, log: log}
}

// Resolve returns the category whose slug matches rawName, creating it when
// missing. An existing record is returned as stored; its name is never
// overwritten by a differently-cased rawName.
//
// Two callers can both miss on a new slug. The unique slug index lets only
// one insert through; the loser gets domain.ErrCategoryExists and re-reads
// the winner's record.
func (s *CategoryService) Resolve(ctx context.Context, rawName string) (*domain.Category, error) {
	name, slug, err := categoryName(rawName)
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.FindBySlug(ctx, slug)
	if err == nil {
		metrics.CategoryResolutionsTotal.WithLabelValues("reused").Inc()
		return existing, nil
	}
	if !errors.Is(err, domain.ErrCategoryNotFound) {
		return nil, fmt.Errorf("resolve category %q: %w", slug, err)
	}

	created, err := s.repo.Create(ctx, &domain.Category{Name: name, Slug: slug, CreatedAt: time.Now().UTC()})
	if err == nil {
		metrics.CategoryResolutionsTotal.WithLabelValues("created").Inc()
		s.log.Info().Str("slug", slug).Str("category_id", created.ID).Msg("category created")
		return created, nil
	}
	if !errors.Is(err, domain.ErrCategoryExists) {
		return nil, fmt.Errorf("resolve category %q: %w", slug, err)
	}

	winner, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("resolve category %q: re-read after conflict: %w", slug, err)
	}
	metrics.CategoryResolutionsTotal.WithLabelValues("race_recovered").Inc()
	s.log.Debug().Str("slug", slug).Msg("category created concurrently, reusing")
	return winner, nil
}

func (s *CategoryService) List(ctx context.Context) ([]*domain.Category, error) {
	return s.repo.List(ctx)
}

func (s *CategoryService) Get(ctx context.Context, id string) (*domain.Category, error) {
	return s.repo.FindByID(ctx, id)
}

// Create inserts a new category. A slug that already exists is a conflict.
func (s *CategoryService) Create(ctx context.Context, rawName string) (*domain.Category, error) {
	name, slug, err := categoryName(rawName)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, &domain.Category{Name: name, Slug: slug, CreatedAt: time.Now().UTC()})
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("slug", slug).Str("category_id", created.ID).Msg("category created")
	return created, nil
}

// Rename sets a new name and slug. Menu items store the slug, so when it
// changes every embedded reference is rewritten to the new one.
func (s *CategoryService) Rename(ctx context.Context, id, rawName string) (*domain.Category, error) {
	name, slug, err := categoryName(rawName)
	if err != nil {
		return nil, err
	}

	category, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	oldSlug := category.Slug
	category.Name = name
	category.Slug = slug
	if err := s.repo.Update(ctx, category); err != nil {
		return nil, err
	}

	if oldSlug != slug {
		n, err := s.restaurants.RenameMenuCategory(ctx, oldSlug, slug)
		if err != nil {
			return nil, fmt.Errorf("rename category %q: rewrite menus: %w", oldSlug, err)
		}
		s.log.Info().Str("from", oldSlug).Str("to", slug).Int64("restaurants", n).Msg("category slug renamed")
	}
	return category, nil
}

func (s *CategoryService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("category_id", id).Msg("category deleted")
	return nil
}

func categoryName(raw string) (name, slug string, err error) {
	name = strings.TrimSpace(raw)
	if name == "" {
		return "", "", domain.NewValidationError("category", "category is required")
	}
	slug = domain.Slugify(name)
	if slug == "" {
		return "", "", domain.NewValidationError("category", "category must contain letters or digits")
	}
	return name, slug, nil
}

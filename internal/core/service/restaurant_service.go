package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/menuhub/menu-server/internal/api/metrics"
	"github.com/menuhub/menu-server/internal/core/domain"
	"github.com/menuhub/menu-server/internal/core/ports"
)

type RestaurantService struct {
	repo   ports.RestaurantRepository
	events ports.StatusEventRepository
	cache  ports.RestaurantCache
	group  singleflight.Group
	log    zerolog.Logger
}

// NewRestaurantService wires the restaurant read/admin operations. A nil
// cache disables profile caching.
func NewRestaurantService(
	repo ports.RestaurantRepository,
	events ports.StatusEventRepository,
	cache ports.RestaurantCache,
	log zerolog.Logger,
) *RestaurantService {
	if cache == nil {
		cache = noopCache{}
	}
	return &RestaurantService{repo: repo, events: events, cache: cache, log: log}
}

func (s *RestaurantService) List(ctx context.Context) ([]*domain.Restaurant, error) {
	return s.repo.List(ctx)
}

// Get serves the public profile for an id or username. Concurrent misses on
// the same key share a single store read.
func (s *RestaurantService) Get(ctx context.Context, key string) (*domain.Restaurant, error) {
	cached, err := s.cache.Get(ctx, key)
	switch {
	case err != nil:
		metrics.RestaurantCacheLookupsTotal.WithLabelValues("error").Inc()
		s.log.Warn().Err(err).Str("key", key).Msg("restaurant cache read failed")
	case cached != nil:
		metrics.RestaurantCacheLookupsTotal.WithLabelValues("hit").Inc()
		return cached, nil
	default:
		metrics.RestaurantCacheLookupsTotal.WithLabelValues("miss").Inc()
	}

	// The fill is shared by every waiter on key, so it must not end with the
	// first caller's request.
	fillCtx := context.WithoutCancel(ctx)
	v, err, _ := s.group.Do(key, func() (interface{}, error) {
		r, err := findRestaurant(fillCtx, s.repo, key)
		if err != nil {
			return nil, err
		}
		if err := s.cache.Set(fillCtx, r); err != nil {
			s.log.Warn().Err(err).Str("restaurant_id", r.ID).Msg("restaurant cache write failed")
		}
		return r, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*domain.Restaurant), nil
}

func (s *RestaurantService) MenuCategories(ctx context.Context, username string) ([]string, error) {
	if _, err := s.repo.FindByUsername(ctx, username); err != nil {
		return nil, err
	}
	slugs, err := s.repo.MenuCategories(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("menu categories of %q: %w", username, err)
	}
	if slugs == nil {
		slugs = []string{}
	}
	return slugs, nil
}

// SetStatus moves a restaurant between active and inactive. Access control is
// done by the admin gate; caller is recorded on the audit event.
func (s *RestaurantService) SetStatus(ctx context.Context, caller domain.Principal, id, status string) (*domain.Restaurant, error) {
	next := domain.RestaurantStatus(status)
	if !next.Valid() {
		return nil, domain.NewValidationError("status", "status must be one of: active inactive")
	}

	prev, err := s.repo.SetStatus(ctx, id, next)
	if err != nil {
		return nil, err
	}
	metrics.RestaurantStatusChangesTotal.WithLabelValues(string(next)).Inc()

	event := &domain.StatusEvent{
		RestaurantID: id,
		AdminID:      caller.ID,
		From:         prev,
		To:           next,
		At:           time.Now().UTC(),
	}
	if err := s.events.Insert(ctx, event); err != nil {
		s.log.Error().Err(err).Str("restaurant_id", id).Msg("failed to record status event")
	}

	r, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Invalidate(ctx, r); err != nil {
		s.log.Warn().Err(err).Str("restaurant_id", id).Msg("failed to invalidate restaurant cache")
	}

	s.log.Info().
		Str("restaurant_id", id).
		Str("admin_id", caller.ID).
		Str("from", string(prev)).
		Str("to", string(next)).
		Msg("restaurant status changed")
	return r, nil
}

func (s *RestaurantService) Delete(ctx context.Context, id string) error {
	r, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	if err := s.cache.Invalidate(ctx, r); err != nil {
		s.log.Warn().Err(err).Str("restaurant_id", id).Msg("failed to invalidate restaurant cache")
	}
	s.log.Info().Str("restaurant_id", id).Str("username", r.Username).Msg("restaurant deleted")
	return nil
}

// findRestaurant resolves key as an id first and falls back to username.
func findRestaurant(ctx context.Context, repo ports.RestaurantRepository, key string) (*domain.Restaurant, error) {
	r, err := repo.FindByID(ctx, key)
	if err == nil {
		return r, nil
	}
	if !errors.Is(err, domain.ErrRestaurantNotFound) {
		return nil, err
	}
	return repo.FindByUsername(ctx, key)
}

type noopCache struct{}

func (noopCache) Get(context.Context, string) (*domain.Restaurant, error) { return nil, nil }
func (noopCache) Set(context.Context, *domain.Restaurant) error             { return nil }
func (noopCache) Invalidate(context.Context, *domain.Restaurant) error      { return nil }

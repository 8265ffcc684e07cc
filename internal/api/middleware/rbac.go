package middleware

import (
	"context"
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/menuhub/menu-server/internal/core/domain"
)

// AdminFinder loads administrators by id.
type AdminFinder interface {
	FindByID(ctx context.Context, id string) (*domain.Admin, error)
}

// RestaurantFinder loads restaurants by id or username.
type RestaurantFinder interface {
	FindByID(ctx context.Context, id string) (*domain.Restaurant, error)
	FindByUsername(ctx context.Context, username string) (*domain.Restaurant, error)
}

// RequireAdmin lets through only admin principals whose stored record still
// has the admin role. The record is re-read on every request, so demoting an
// admin to moderator takes effect before the token expires.
func RequireAdmin(admins AdminFinder) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			p, ok := PrincipalFrom(c)
			if !ok {
				return domain.ErrUnauthenticated
			}
			if p.Role != domain.RoleAdmin {
				return domain.ErrForbidden
			}

			admin, err := admins.FindByID(c.Request().Context(), p.ID)
			if errors.Is(err, domain.ErrAdminNotFound) {
				return domain.ErrForbidden
			}
			if err != nil {
				return err
			}
			if admin.Role != domain.AdminRoleAdmin {
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}

// RequireOwner lets through only the restaurant addressed by the path
// parameter param, which may hold the restaurant id or its username. An
// unknown restaurant is reported as not found before ownership is checked.
func RequireOwner(restaurants RestaurantFinder, param string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			p, ok := PrincipalFrom(c)
			if !ok {
				return domain.ErrUnauthenticated
			}

			key := c.Param(param)
			if p.Owns(key) {
				return next(c)
			}

			id, err := restaurantID(c.Request().Context(), restaurants, key)
			if err != nil {
				return err
			}
			if !p.Owns(id) {
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}

func restaurantID(ctx context.Context, restaurants RestaurantFinder, key string) (string, error) {
	r, err := restaurants.FindByID(ctx, key)
	if errors.Is(err, domain.ErrRestaurantNotFound) {
		r, err = restaurants.FindByUsername(ctx, key)
	}
	if err != nil {
		return "", err
	}
	return r.ID, nil
}

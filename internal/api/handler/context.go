package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/menuhub/menu-server/internal/api/middleware"
	"github.com/menuhub/menu-server/internal/core/domain"
	"github.com/menuhub/menu-server/internal/core/ports"
)

// principal returns the caller attached by the Authenticate middleware. A
// route mounted without it has no caller and is treated as unauthenticated.
func principal(c echo.Context) (domain.Principal, error) {
	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		return domain.Principal{}, domain.ErrUnauthenticated
	}
	return p, nil
}

func toMenuItemInput(req menuItemRequest) ports.MenuItemInput {
	in := ports.MenuItemInput{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Image:       req.Image,
		Sizes:       make([]domain.Size, 0, len(req.Sizes)),
	}
	for _, s := range req.Sizes {
		in.Sizes = append(in.Sizes, domain.Size{Name: s.Name, Price: s.Price})
	}
	return in
}

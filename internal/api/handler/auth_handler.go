package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/menuhub/menu-server/internal/core/domain"
	"github.com/menuhub/menu-server/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// AdminLogin authenticates an administrator.
//
// @Summary      Admin login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Admin credentials"
// @Success      200   {object}  tokenResponse
// @Failure      400   {object}  apierr.Response
// @Failure      429   {object}  apierr.Response
// @Router       /auth/admin/login [post]
func (h *AuthHandler) AdminLogin(c echo.Context) error {
	return h.login(c, domain.RoleAdmin)
}

// RestaurantLogin authenticates a restaurant owner.
//
// @Summary      Restaurant login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Restaurant credentials"
// @Success      200   {object}  tokenResponse
// @Failure      400   {object}  apierr.Response
// @Failure      429   {object}  apierr.Response
// @Router       /auth/restaurant/login [post]
func (h *AuthHandler) RestaurantLogin(c echo.Context) error {
	return h.login(c, domain.RoleRestaurant)
}

func (h *AuthHandler) login(c echo.Context, kind domain.Role) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	token, err := h.authService.Login(c.Request().Context(), kind, req.Email, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tokenResponse{Token: token})
}

// Register creates a restaurant together with its login identity.
//
// @Summary      Register a restaurant
// @Tags         restaurants
// @Accept       json
// @Produce      json
// @Param        body  body      registerRestaurantRequest  true  "Restaurant details"
// @Success      200   {object}  registerResponse
// @Failure      400   {object}  apierr.Response
// @Failure      500   {object}  apierr.Response
// @Router       /restaurants [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRestaurantRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	token, restaurant, err := h.authService.RegisterRestaurant(c.Request().Context(), ports.RegisterRestaurantInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Location: req.Location,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, registerResponse{Token: token, Restaurant: restaurant})
}

// Session echoes the caller decoded from the bearer token.
//
// @Summary      Check session
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  sessionResponse
// @Failure      401  {object}  apierr.Response
// @Router       /session [get]
func (h *AuthHandler) Session(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sessionResponse{Principal: p})
}

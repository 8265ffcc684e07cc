package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/menuhub/menu-server/internal/core/ports"
)

// RestaurantHandler serves restaurant reads and the admin status operations.
type RestaurantHandler struct {
	service ports.RestaurantService
}

func NewRestaurantHandler(service ports.RestaurantService) *RestaurantHandler {
	return &RestaurantHandler{service: service}
}

// List returns every restaurant.
//
// @Summary      List restaurants
// @Tags         restaurants
// @Produce      json
// @Success      200  {array}   domain.Restaurant
// @Failure      500  {object}  apierr.Response
// @Router       /restaurants [get]
func (h *RestaurantHandler) List(c echo.Context) error {
	restaurants, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, restaurants)
}

// Get looks a restaurant up by id or username.
//
// @Summary      Get a restaurant
// @Tags         restaurants
// @Produce      json
// @Param        key  path      string  true  "Restaurant id or username"
// @Success      200  {object}  domain.Restaurant
// @Failure      404  {object}  apierr.Response
// @Router       /restaurants/{key} [get]
func (h *RestaurantHandler) Get(c echo.Context) error {
	restaurant, err := h.service.Get(c.Request().Context(), c.Param("key"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, restaurant)
}

// MenuCategories lists the category slugs used on a restaurant's menu.
//
// @Summary      Categories on a restaurant menu
// @Tags         restaurants
// @Produce      json
// @Param        username  path      string  true  "Restaurant username"
// @Success      200       {array}   string
// @Failure      404       {object}  apierr.Response
// @Router       /restaurants/{username}/categories [get]
func (h *RestaurantHandler) MenuCategories(c echo.Context) error {
	slugs, err := h.service.MenuCategories(c.Request().Context(), c.Param("username"))
	if err != nil {
		return err
	}
	if slugs == nil {
		slugs = []string{}
	}
	return c.JSON(http.StatusOK, slugs)
}

// SetStatus publishes or unpublishes a restaurant.
//
// @Summary      Set restaurant status
// @Tags         restaurants
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string         true  "Restaurant id"
// @Param        body  body      statusRequest  true  "active or inactive"
// @Success      200   {object}  domain.Restaurant
// @Failure      400   {object}  apierr.Response
// @Failure      401   {object}  apierr.Response
// @Failure      403   {object}  apierr.Response
// @Failure      404   {object}  apierr.Response
// @Router       /restaurants/status/{id} [put]
func (h *RestaurantHandler) SetStatus(c echo.Context) error {
	caller, err := principal(c)
	if err != nil {
		return err
	}
	var req statusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	restaurant, err := h.service.SetStatus(c.Request().Context(), caller, c.Param("id"), req.Status)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, restaurant)
}

// Delete removes a restaurant and its menu.
//
// @Summary      Delete a restaurant
// @Tags         restaurants
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Restaurant id"
// @Success      200  {object}  messageResponse
// @Failure      403  {object}  apierr.Response
// @Failure      404  {object}  apierr.Response
// @Router       /restaurants/{id} [delete]
func (h *RestaurantHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "restaurant deleted"})
}

package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/menuhub/menu-server/internal/core/ports"
)

// MenuHandler mutates the menu of the calling restaurant.
type MenuHandler struct {
	service ports.MenuService
}

func NewMenuHandler(service ports.MenuService) *MenuHandler {
	return &MenuHandler{service: service}
}

// AddItem appends an item to the menu. The category is resolved by name and
// created when new; the image may be a data URI, raw base64 or a URL.
//
// @Summary      Add a menu item
// @Tags         menu
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        username  path      string           true  "Restaurant username or id"
// @Param        body      body      menuItemRequest  true  "Menu item"
// @Success      201       {object}  domain.Restaurant
// @Failure      400       {object}  apierr.Response
// @Failure      401       {object}  apierr.Response
// @Failure      403       {object}  apierr.Response
// @Failure      404       {object}  apierr.Response
// @Router       /restaurants/{username}/menu [post]
func (h *MenuHandler) AddItem(c echo.Context) error {
	caller, err := principal(c)
	if err != nil {
		return err
	}
	var req menuItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	restaurant, err := h.service.AddItem(c.Request().Context(), caller, c.Param("username"), toMenuItemInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, restaurant)
}

// UpdateItem replaces an item's fields. An empty image keeps the current one.
//
// @Summary      Update a menu item
// @Tags         menu
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id      path      string           true  "Restaurant id"
// @Param        itemId  path      string           true  "Menu item id"
// @Param        body    body      menuItemRequest  true  "Menu item"
// @Success      200     {object}  domain.Restaurant
// @Failure      400     {object}  apierr.Response
// @Failure      403     {object}  apierr.Response
// @Failure      404     {object}  apierr.Response
// @Router       /restaurants/{id}/menu/{itemId} [put]
func (h *MenuHandler) UpdateItem(c echo.Context) error {
	caller, err := principal(c)
	if err != nil {
		return err
	}
	var req menuItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	restaurant, err := h.service.UpdateItem(c.Request().Context(), caller, c.Param("id"), c.Param("itemId"), toMenuItemInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, restaurant)
}

// RemoveItem deletes an item from the menu.
//
// @Summary      Remove a menu item
// @Tags         menu
// @Produce      json
// @Security     BearerAuth
// @Param        id      path      string  true  "Restaurant id"
// @Param        itemId  path      string  true  "Menu item id"
// @Success      200     {object}  domain.Restaurant
// @Failure      403     {object}  apierr.Response
// @Failure      404     {object}  apierr.Response
// @Router       /restaurants/{id}/menu/{itemId} [delete]
func (h *MenuHandler) RemoveItem(c echo.Context) error {
	caller, err := principal(c)
	if err != nil {
		return err
	}

	restaurant, err := h.service.RemoveItem(c.Request().Context(), caller, c.Param("id"), c.Param("itemId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, restaurant)
}

package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/menuhub/menu-server/internal/core/ports"
)

// ImageOpener reads back an uploaded menu image.
type ImageOpener interface {
	Open(ctx context.Context, id string) (*ports.StoredImage, error)
}

type ImageHandler struct {
	images ImageOpener
}

func NewImageHandler(images ImageOpener) *ImageHandler {
	return &ImageHandler{images: images}
}

// Get streams a stored menu image.
//
// @Summary      Download a menu image
// @Tags         images
// @Produce      image/png,image/jpeg,image/webp,image/gif
// @Param        id   path  string  true  "Image id"
// @Success      200
// @Failure      404  {object}  apierr.Response
// @Router       /images/{id} [get]
func (h *ImageHandler) Get(c echo.Context) error {
	img, err := h.images.Open(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	defer img.Body.Close()

	header := c.Response().Header()
	if img.Size > 0 {
		header.Set(echo.HeaderContentLength, strconv.FormatInt(img.Size, 10))
	}
	// Image ids are never reused.
	header.Set("Cache-Control", "public, max-age=31536000, immutable")
	return c.Stream(http.StatusOK, img.ContentType, img.Body)
}

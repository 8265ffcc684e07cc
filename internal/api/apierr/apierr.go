// Package apierr renders every handler error as the API's JSON error envelope.
package apierr

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/menuhub/menu-server/internal/core/domain"
)

// Response is the canonical error envelope for all API errors.
type Response struct {
	Error   string            `json:"error"`
	Details map[string]string `json:"details,omitempty"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps domain errors to their HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>", "details": {...}}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, resp := Resolve(err)
		if code == http.StatusInternalServerError {
			log.Error().
				Err(err).
				Str("method", c.Request().Method).
				Str("path", c.Path()).
				Str("request_id", c.Response().Header().Get(echo.HeaderXRequestID)).
				Msg("unhandled error")
		}

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, resp)
	}
}

// Resolve maps err to a status code and response body.
func Resolve(err error) (int, Response) {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		return http.StatusBadRequest, Response{Error: "validation failed", Details: verr.Fields}
	}

	// Echo's own errors (bind failures, 404 from router, rate limiting, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, Response{Error: fmt.Sprintf("%v", he.Message)}
	}

	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusBadRequest, Response{Error: "invalid credentials"}
	case errors.Is(err, domain.ErrUnauthenticated):
		return http.StatusUnauthorized, Response{Error: "authentication required"}
	case errors.Is(err, domain.ErrInvalidToken):
		return http.StatusUnauthorized, Response{Error: "invalid or expired token"}
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, Response{Error: "access forbidden"}

	case errors.Is(err, domain.ErrAdminNotFound),
		errors.Is(err, domain.ErrRestaurantNotFound),
		errors.Is(err, domain.ErrCategoryNotFound),
		errors.Is(err, domain.ErrMenuItemNotFound),
		errors.Is(err, domain.ErrImageNotFound):
		return http.StatusNotFound, Response{Error: notFoundMessage(err)}

	// Duplicate unique fields are reported as 400, matching validation failures.
	case errors.Is(err, domain.ErrAdminExists),
		errors.Is(err, domain.ErrRestaurantExists),
		errors.Is(err, domain.ErrCategoryExists),
		errors.Is(err, domain.ErrUsernameTaken):
		return http.StatusBadRequest, Response{Error: conflictMessage(err)}
	}

	return http.StatusInternalServerError, Response{Error: "internal server error"}
}

func notFoundMessage(err error) string {
	for _, target := range []error{
		domain.ErrAdminNotFound,
		domain.ErrRestaurantNotFound,
		domain.ErrCategoryNotFound,
		domain.ErrMenuItemNotFound,
		domain.ErrImageNotFound,
	} {
		if errors.Is(err, target) {
			return target.Error()
		}
	}
	return "not found"
}

func conflictMessage(err error) string {
	for _, target := range []error{
		domain.ErrAdminExists,
		domain.ErrRestaurantExists,
		domain.ErrCategoryExists,
		domain.ErrUsernameTaken,
	} {
		if errors.Is(err, target) {
			return target.Error()
		}
	}
	return "conflict"
}

package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/menuhub/menu-server/internal/core/domain"
	"github.com/menuhub/menu-server/internal/core/ports"
)

const principalKey = "principal"

// Authenticate verifies the Authorization header and stores the decoded
// principal on the context. The header carries the raw token; a leading
// "Bearer " is accepted and stripped.
func Authenticate(parser ports.TokenParser) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
			if token == "" {
				return domain.ErrUnauthenticated
			}

			principal, err := parser.Parse(token)
			if err != nil {
				return err
			}

			SetPrincipal(c, principal)
			return next(c)
		}
	}
}

func bearerToken(header string) string {
	header = strings.TrimSpace(header)
	if len(header) > 7 && strings.EqualFold(header[:7], "bearer ") {
		header = strings.TrimSpace(header[7:])
	}
	return header
}

// SetPrincipal stores p on the request context.
func SetPrincipal(c echo.Context, p domain.Principal) {
	c.Set(principalKey, p)
}

// PrincipalFrom returns the principal set by Authenticate.
func PrincipalFrom(c echo.Context) (domain.Principal, bool) {
	p, ok := c.Get(principalKey).(domain.Principal)
	return p, ok
}

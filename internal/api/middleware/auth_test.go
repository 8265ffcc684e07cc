package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/menuhub/menu-server/internal/api/apierr"
	"github.com/menuhub/menu-server/internal/auth"
	"github.com/menuhub/menu-server/internal/core/domain"
)

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = apierr.NewHTTPErrorHandler(zerolog.Nop())
	return e
}

func runAuth(t *testing.T, tm *auth.TokenManager, header string) (*httptest.ResponseRecorder, *domain.Principal) {
	t.Helper()
	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var got *domain.Principal
	handler := Authenticate(tm)(func(c echo.Context) error {
		p, ok := PrincipalFrom(c)
		if !ok {
			t.Fatalf("principal not set")
		}
		got = &p
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec, got
}

func TestAuthenticate_RawToken(t *testing.T) {
	tm := auth.NewTokenManager("secret", time.Hour, time.Hour)
	token, err := tm.Issue(domain.Principal{ID: "rest-1", Role: domain.RoleRestaurant})
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	rec, p := runAuth(t, tm, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if p.ID != "rest-1" || p.Role != domain.RoleRestaurant {
		t.Fatalf("unexpected principal: %+v", p)
	}
}

func TestAuthenticate_BearerPrefix(t *testing.T) {
	tm := auth.NewTokenManager("secret", time.Hour, time.Hour)
	token, _ := tm.Issue(domain.Principal{ID: "admin-1", Role: domain.RoleAdmin})

	rec, p := runAuth(t, tm, "Bearer "+token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if p.Role != domain.RoleAdmin {
		t.Fatalf("unexpected principal: %+v", p)
	}
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	tm := auth.NewTokenManager("secret", time.Hour, time.Hour)

	rec, p := runAuth(t, tm, "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if p != nil {
		t.Fatalf("next must not run")
	}
}

func TestAuthenticate_InvalidToken(t *testing.T) {
	tm := auth.NewTokenManager("secret", time.Hour, time.Hour)

	for _, header := range []string{"not-a-token", "Bearer not-a-token", "Bearer "} {
		rec, p := runAuth(t, tm, header)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("%q: expected 401, got %d", header, rec.Code)
		}
		if p != nil {
			t.Fatalf("%q: next must not run", header)
		}
	}
}

func TestAuthenticate_ForeignSecret(t *testing.T) {
	other := auth.NewTokenManager("other-secret", time.Hour, time.Hour)
	token, _ := other.Issue(domain.Principal{ID: "admin-1", Role: domain.RoleAdmin})

	rec, _ := runAuth(t, auth.NewTokenManager("secret", time.Hour, time.Hour), token)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

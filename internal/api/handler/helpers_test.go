package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/menuhub/menu-server/internal/api/apierr"
	"github.com/menuhub/menu-server/internal/api/middleware"
	"github.com/menuhub/menu-server/internal/core/domain"
	"github.com/menuhub/menu-server/internal/core/ports"
)

type testRequest struct {
	method    string
	target    string
	body      string
	params    map[string]string
	principal *domain.Principal
}

// do runs h the way the router would: errors go through the central error
// handler so the recorder holds the final status and body.
func do(t *testing.T, h echo.HandlerFunc, r testRequest) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	e.HTTPErrorHandler = apierr.NewHTTPErrorHandler(zerolog.Nop())

	var body io.Reader
	if r.body != "" {
		body = strings.NewReader(r.body)
	}
	req := httptest.NewRequest(r.method, r.target, body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if len(r.params) > 0 {
		names := make([]string, 0, len(r.params))
		values := make([]string, 0, len(r.params))
		for name, value := range r.params {
			names = append(names, name)
			values = append(values, value)
		}
		c.SetParamNames(names...)
		c.SetParamValues(values...)
	}
	if r.principal != nil {
		middleware.SetPrincipal(c, *r.principal)
	}

	if err := h(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), v); err != nil {
		t.Fatalf("invalid json %q: %v", rec.Body.String(), err)
	}
}

var (
	adminCaller = &domain.Principal{ID: "admin-1", Role: domain.RoleAdmin}
	ownerCaller = &domain.Principal{ID: "rest-1", Role: domain.RoleRestaurant}
)

type stubAuthService struct {
	loginFn    func(ctx context.Context, kind domain.Role, email, password string) (string, error)
	registerFn func(ctx context.Context, in ports.RegisterRestaurantInput) (string, *domain.Restaurant, error)
}

func (s *stubAuthService) Login(ctx context.Context, kind domain.Role, email, password string) (string, error) {
	return s.loginFn(ctx, kind, email, password)
}

func (s *stubAuthService) RegisterRestaurant(ctx context.Context, in ports.RegisterRestaurantInput) (string, *domain.Restaurant, error) {
	return s.registerFn(ctx, in)
}

func (s *stubAuthService) CreateAdmin(context.Context, ports.CreateAdminInput) (*domain.Admin, error) {
	panic("CreateAdmin is not served over HTTP")
}

type stubCategoryService struct {
	categories map[string]*domain.Category
	createErr  error
	renamed    map[string]string
	deleted    []string
}

func newStubCategoryService(cats ...*domain.Category) *stubCategoryService {
	s := &stubCategoryService{categories: map[string]*domain.Category{}, renamed: map[string]string{}}
	for _, c := range cats {
		s.categories[c.ID] = c
	}
	return s
}

func (s *stubCategoryService) Resolve(context.Context, string) (*domain.Category, error) {
	panic("Resolve is not served over HTTP")
}

func (s *stubCategoryService) List(context.Context) ([]*domain.Category, error) {
	out := make([]*domain.Category, 0, len(s.categories))
	for _, c := range s.categories {
		out = append(out, c)
	}
	return out, nil
}

func (s *stubCategoryService) Get(_ context.Context, id string) (*domain.Category, error) {
	c, ok := s.categories[id]
	if !ok {
		return nil, domain.ErrCategoryNotFound
	}
	return c, nil
}

func (s *stubCategoryService) Create(_ context.Context, name string) (*domain.Category, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	c := &domain.Category{ID: "cat-new", Name: name, Slug: domain.Slugify(name)}
	s.categories[c.ID] = c
	return c, nil
}

func (s *stubCategoryService) Rename(_ context.Context, id, name string) (*domain.Category, error) {
	c, ok := s.categories[id]
	if !ok {
		return nil, domain.ErrCategoryNotFound
	}
	s.renamed[id] = name
	return &domain.Category{ID: id, Name: name, Slug: domain.Slugify(name), CreatedAt: c.CreatedAt}, nil
}

func (s *stubCategoryService) Delete(_ context.Context, id string) error {
	if _, ok := s.categories[id]; !ok {
		return domain.ErrCategoryNotFound
	}
	s.deleted = append(s.deleted, id)
	return nil
}

type stubRestaurantService struct {
	restaurants map[string]*domain.Restaurant
	statusCalls []string
}

func (s *stubRestaurantService) List(context.Context) ([]*domain.Restaurant, error) {
	out := make([]*domain.Restaurant, 0, len(s.restaurants))
	for _, r := range s.restaurants {
		out = append(out, r)
	}
	return out, nil
}

func (s *stubRestaurantService) Get(_ context.Context, key string) (*domain.Restaurant, error) {
	for _, r := range s.restaurants {
		if r.ID == key || r.Username == key {
			return r, nil
		}
	}
	return nil, domain.ErrRestaurantNotFound
}

func (s *stubRestaurantService) MenuCategories(ctx context.Context, username string) ([]string, error) {
	r, err := s.Get(ctx, username)
	if err != nil {
		return nil, err
	}
	return r.MenuCategories(), nil
}

func (s *stubRestaurantService) SetStatus(_ context.Context, caller domain.Principal, id, status string) (*domain.Restaurant, error) {
	s.statusCalls = append(s.statusCalls, caller.ID+":"+id+":"+status)
	r, ok := s.restaurants[id]
	if !ok {
		return nil, domain.ErrRestaurantNotFound
	}
	st := domain.RestaurantStatus(status)
	if !st.Valid() {
		return nil, domain.NewValidationError("status", "status must be one of: active inactive")
	}
	r.Status = st
	return r, nil
}

func (s *stubRestaurantService) Delete(_ context.Context, id string) error {
	if _, ok := s.restaurants[id]; !ok {
		return domain.ErrRestaurantNotFound
	}
	delete(s.restaurants, id)
	return nil
}

type menuCall struct {
	caller domain.Principal
	key    string
	itemID string
	in     ports.MenuItemInput
}

type stubMenuService struct {
	calls []menuCall
	err   error
}

func (s *stubMenuService) result(c menuCall) (*domain.Restaurant, error) {
	s.calls = append(s.calls, c)
	if s.err != nil {
		return nil, s.err
	}
	r := &domain.Restaurant{ID: "rest-1", Username: "pizza-hub"}
	if c.in.Name != "" {
		r.Menu = []domain.MenuItem{{
			ID:       "item-1",
			Name:     c.in.Name,
			Sizes:    c.in.Sizes,
			Category: domain.Slugify(c.in.Category),
		}}
	}
	return r, nil
}

func (s *stubMenuService) AddItem(_ context.Context, caller domain.Principal, key string, in ports.MenuItemInput) (*domain.Restaurant, error) {
	return s.result(menuCall{caller: caller, key: key, in: in})
}

func (s *stubMenuService) UpdateItem(_ context.Context, caller domain.Principal, key, itemID string, in ports.MenuItemInput) (*domain.Restaurant, error) {
	return s.result(menuCall{caller: caller, key: key, itemID: itemID, in: in})
}

func (s *stubMenuService) RemoveItem(_ context.Context, caller domain.Principal, key, itemID string) (*domain.Restaurant, error) {
	return s.result(menuCall{caller: caller, key: key, itemID: itemID})
}

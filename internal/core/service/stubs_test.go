package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/menuhub/menu-server/internal/core/domain"
)

// ---------------------------------------------------------------------------
// In-memory stub repositories. Each one enforces the same uniqueness rules as
// the Mongo indexes so the services can be exercised without a database.
// ---------------------------------------------------------------------------

type stubAdminRepo struct {
	mu     sync.Mutex
	admins map[string]*domain.Admin
	seq    int
}

func newStubAdminRepo() *stubAdminRepo {
	return &stubAdminRepo{admins: make(map[string]*domain.Admin)}
}

func (r *stubAdminRepo) Create(_ context.Context, a *domain.Admin) (*domain.Admin, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.admins {
		if existing.Email == a.Email || existing.Username == a.Username {
			return nil, domain.ErrAdminExists
		}
	}
	r.seq++
	clone := *a
	clone.ID = fmt.Sprintf("admin-%d", r.seq)
	r.admins[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubAdminRepo) FindByID(_ context.Context, id string) (*domain.Admin, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.admins[id]
	if !ok {
		return nil, domain.ErrAdminNotFound
	}
	clone := *a
	return &clone, nil
}

func (r *stubAdminRepo) FindByEmail(_ context.Context, email string) (*domain.Admin, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.admins {
		if a.Email == email {
			clone := *a
			return &clone, nil
		}
	}
	return nil, domain.ErrAdminNotFound
}

type stubRestaurantRepo struct {
	mu          sync.Mutex
	restaurants map[string]*domain.Restaurant
	seq         int
	saves       int
	createErr   error
	// beforeSave runs between a menu mutation's load and its write.
	beforeSave func()
	// findCtxErr is ctx.Err() as seen by the last FindByID.
	findCtxErr error
}

func newStubRestaurantRepo() *stubRestaurantRepo {
	return &stubRestaurantRepo{restaurants: make(map[string]*domain.Restaurant)}
}

func cloneRestaurant(r *domain.Restaurant) *domain.Restaurant {
	clone := *r
	clone.Menu = make([]domain.MenuItem, len(r.Menu))
	for i, item := range r.Menu {
		item.Sizes = append([]domain.Size(nil), item.Sizes...)
		clone.Menu[i] = item
	}
	return &clone
}

// seed stores r as-is, assigning an id when empty.
func (r *stubRestaurantRepo) seed(rest *domain.Restaurant) *domain.Restaurant {
	r.mu.Lock()
	defer r.mu.Unlock()
	if rest.ID == "" {
		r.seq++
		rest.ID = fmt.Sprintf("rest-%d", r.seq)
	}
	r.restaurants[rest.ID] = cloneRestaurant(rest)
	return cloneRestaurant(rest)
}

func (r *stubRestaurantRepo) Create(_ context.Context, rest *domain.Restaurant) (*domain.Restaurant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return nil, r.createErr
	}
	for _, existing := range r.restaurants {
		if existing.Email == rest.Email {
			return nil, domain.ErrRestaurantExists
		}
	}
	for _, existing := range r.restaurants {
		if existing.Username == rest.Username {
			return nil, domain.ErrUsernameTaken
		}
	}
	r.seq++
	clone := cloneRestaurant(rest)
	clone.ID = fmt.Sprintf("rest-%d", r.seq)
	r.restaurants[clone.ID] = clone
	return cloneRestaurant(clone), nil
}

func (r *stubRestaurantRepo) FindByID(ctx context.Context, id string) (*domain.Restaurant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.findCtxErr = ctx.Err()
	rest, ok := r.restaurants[id]
	if !ok {
		return nil, domain.ErrRestaurantNotFound
	}
	return cloneRestaurant(rest), nil
}

func (r *stubRestaurantRepo) find(match func(*domain.Restaurant) bool) (*domain.Restaurant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, rest := range r.restaurants {
		if match(rest) {
			return cloneRestaurant(rest), nil
		}
	}
	return nil, domain.ErrRestaurantNotFound
}

func (r *stubRestaurantRepo) FindByEmail(_ context.Context, email string) (*domain.Restaurant, error) {
	return r.find(func(rest *domain.Restaurant) bool { return rest.Email == email })
}

func (r *stubRestaurantRepo) FindByUsername(_ context.Context, username string) (*domain.Restaurant, error) {
	return r.find(func(rest *domain.Restaurant) bool { return rest.Username == username })
}

func (r *stubRestaurantRepo) List(_ context.Context) ([]*domain.Restaurant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*domain.Restaurant, 0, len(r.restaurants))
	for _, rest := range r.restaurants {
		out = append(out, cloneRestaurant(rest))
	}
	return out, nil
}

func (r *stubRestaurantRepo) SaveMenu(_ context.Context, rest *domain.Restaurant) error {
	if r.beforeSave != nil {
		r.beforeSave()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.restaurants[rest.ID]
	if !ok {
		return domain.ErrRestaurantNotFound
	}
	r.saves++
	stored.Menu = cloneRestaurant(rest).Menu
	stored.UpdatedAt = rest.UpdatedAt
	return nil
}

func (r *stubRestaurantRepo) SetStatus(_ context.Context, id string, status domain.RestaurantStatus) (domain.RestaurantStatus, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rest, ok := r.restaurants[id]
	if !ok {
		return "", domain.ErrRestaurantNotFound
	}
	prev := rest.Status
	rest.Status = status
	return prev, nil
}

func (r *stubRestaurantRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.restaurants[id]; !ok {
		return domain.ErrRestaurantNotFound
	}
	delete(r.restaurants, id)
	return nil
}

func (r *stubRestaurantRepo) MenuCategories(ctx context.Context, username string) ([]string, error) {
	rest, err := r.FindByUsername(ctx, username)
	if err != nil {
		return nil, nil
	}
	return rest.MenuCategories(), nil
}

func (r *stubRestaurantRepo) RenameMenuCategory(_ context.Context, from, to string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var touched int64
	for _, rest := range r.restaurants {
		changed := false
		for i := range rest.Menu {
			if rest.Menu[i].Category == from {
				rest.Menu[i].Category = to
				changed = true
			}
		}
		if changed {
			touched++
		}
	}
	return touched, nil
}

type stubCategoryRepo struct {
	mu        sync.Mutex
	bySlug    map[string]*domain.Category
	seq       int
	creates   int
	findHook  func() // runs after a FindBySlug miss, outside the lock
	findErr   error
	createErr error
}

func newStubCategoryRepo() *stubCategoryRepo {
	return &stubCategoryRepo{bySlug: make(map[string]*domain.Category)}
}

func (r *stubCategoryRepo) Create(_ context.Context, c *domain.Category) (*domain.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.creates++
	if r.createErr != nil {
		return nil, r.createErr
	}
	if _, exists := r.bySlug[c.Slug]; exists {
		return nil, domain.ErrCategoryExists
	}
	r.seq++
	clone := *c
	clone.ID = fmt.Sprintf("cat-%d", r.seq)
	r.bySlug[clone.Slug] = &clone
	out := clone
	return &out, nil
}

func (r *stubCategoryRepo) FindByID(_ context.Context, id string) (*domain.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.bySlug {
		if c.ID == id {
			clone := *c
			return &clone, nil
		}
	}
	return nil, domain.ErrCategoryNotFound
}

func (r *stubCategoryRepo) FindBySlug(_ context.Context, slug string) (*domain.Category, error) {
	r.mu.Lock()
	if r.findErr != nil {
		r.mu.Unlock()
		return nil, r.findErr
	}
	c, ok := r.bySlug[slug]
	hook := r.findHook
	r.mu.Unlock()
	if ok {
		clone := *c
		return &clone, nil
	}
	if hook != nil {
		hook()
	}
	return nil, domain.ErrCategoryNotFound
}

func (r *stubCategoryRepo) List(_ context.Context) ([]*domain.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*domain.Category, 0, len(r.bySlug))
	for _, c := range r.bySlug {
		clone := *c
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubCategoryRepo) Update(_ context.Context, c *domain.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	var oldSlug string
	for slug, existing := range r.bySlug {
		if existing.ID == c.ID {
			oldSlug = slug
		}
	}
	if oldSlug == "" {
		return domain.ErrCategoryNotFound
	}
	if other, exists := r.bySlug[c.Slug]; exists && other.ID != c.ID {
		return domain.ErrCategoryExists
	}
	delete(r.bySlug, oldSlug)
	clone := *c
	r.bySlug[c.Slug] = &clone
	return nil
}

func (r *stubCategoryRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for slug, c := range r.bySlug {
		if c.ID == id {
			delete(r.bySlug, slug)
			return nil
		}
	}
	return domain.ErrCategoryNotFound
}

type stubStatusEvents struct {
	mu     sync.Mutex
	events []*domain.StatusEvent
	err    error
}

func (s *stubStatusEvents) Insert(_ context.Context, e *domain.StatusEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	clone := *e
	s.events = append(s.events, &clone)
	return nil
}

// stubUploader turns any non-URL payload into a deterministic URL.
type stubUploader struct {
	calls []string
	err   error
}

func (u *stubUploader) Upload(_ context.Context, payload string) (string, error) {
	u.calls = append(u.calls, payload)
	if u.err != nil {
		return "", u.err
	}
	if payload == "" {
		return "", nil
	}
	if strings.HasPrefix(payload, "http://") || strings.HasPrefix(payload, "https://") {
		return payload, nil
	}
	return fmt.Sprintf("https://img.test/%d", len(u.calls)), nil
}

type stubCache struct {
	mu          sync.Mutex
	entries     map[string]*domain.Restaurant
	invalidated []string
	getErr      error
}

func newStubCache() *stubCache {
	return &stubCache{entries: make(map[string]*domain.Restaurant)}
}

func (c *stubCache) Get(_ context.Context, key string) (*domain.Restaurant, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.getErr != nil {
		return nil, c.getErr
	}
	r, ok := c.entries[key]
	if !ok {
		return nil, nil
	}
	return cloneRestaurant(r), nil
}

func (c *stubCache) Set(_ context.Context, r *domain.Restaurant) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[r.ID] = cloneRestaurant(r)
	c.entries[r.Username] = cloneRestaurant(r)
	return nil
}

func (c *stubCache) Invalidate(_ context.Context, r *domain.Restaurant) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, r.ID)
	delete(c.entries, r.Username)
	c.invalidated = append(c.invalidated, r.ID)
	return nil
}

// stubTokens encodes the principal into the token string.
type stubTokens struct {
	err error
}

func (s stubTokens) Issue(p domain.Principal) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return string(p.Role) + ":" + p.ID, nil
}

var errStore = errors.New("store unavailable")

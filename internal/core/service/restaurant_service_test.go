package service

import (
	"context"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/menuhub/menu-server/internal/core/domain"
)

func newRestaurantFixture() (*RestaurantService, *stubRestaurantRepo, *stubStatusEvents, *stubCache, *domain.Restaurant) {
	repo := newStubRestaurantRepo()
	events := &stubStatusEvents{}
	cache := newStubCache()
	svc := NewRestaurantService(repo, events, cache, zerolog.Nop())
	r := repo.seed(&domain.Restaurant{
		Username: "pizza-hub",
		Email:    "owner@pizzahub.test",
		Name:     "Pizza Hub",
		Status:   domain.StatusInactive,
		Menu: []domain.MenuItem{
			{ID: "i1", Category: "combo-deals"},
			{ID: "i2", Category: "drinks"},
			{ID: "i3", Category: "combo-deals"},
		},
	})
	return svc, repo, events, cache, r
}

var rootAdmin = domain.Principal{ID: "admin-1", Role: domain.RoleAdmin}

func TestRestaurantService_SetStatus(t *testing.T) {
	svc, repo, events, cache, r := newRestaurantFixture()

	updated, err := svc.SetStatus(context.Background(), rootAdmin, r.ID, "active")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusActive, updated.Status)

	stored, _ := repo.FindByID(context.Background(), r.ID)
	assert.Equal(t, domain.StatusActive, stored.Status)

	require.Len(t, events.events, 1)
	ev := events.events[0]
	assert.Equal(t, r.ID, ev.RestaurantID)
	assert.Equal(t, "admin-1", ev.AdminID)
	assert.Equal(t, domain.StatusInactive, ev.From)
	assert.Equal(t, domain.StatusActive, ev.To)
	assert.Contains(t, cache.invalidated, r.ID)
}

func TestRestaurantService_SetStatus_RejectsUnknownValues(t *testing.T) {
	svc, repo, events, _, r := newRestaurantFixture()

	for _, status := range []string{"", "ACTIVE", "suspended", " active"} {
		_, err := svc.SetStatus(context.Background(), rootAdmin, r.ID, status)
		var verr *domain.ValidationError
		require.ErrorAs(t, err, &verr, "status %q", status)
		assert.Contains(t, verr.Fields, "status")
	}

	stored, _ := repo.FindByID(context.Background(), r.ID)
	assert.Equal(t, domain.StatusInactive, stored.Status)
	assert.Empty(t, events.events)
}

func TestRestaurantService_SetStatus_NotFound(t *testing.T) {
	svc, _, _, _, _ := newRestaurantFixture()

	_, err := svc.SetStatus(context.Background(), rootAdmin, "missing", "active")
	assert.ErrorIs(t, err, domain.ErrRestaurantNotFound)
}

func TestRestaurantService_SetStatus_AuditFailureIsNotFatal(t *testing.T) {
	svc, _, events, _, r := newRestaurantFixture()
	events.err = errStore

	updated, err := svc.SetStatus(context.Background(), rootAdmin, r.ID, "active")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusActive, updated.Status)
}

func TestRestaurantService_Get_ByIDAndUsername(t *testing.T) {
	svc, _, _, _, r := newRestaurantFixture()

	byID, err := svc.Get(context.Background(), r.ID)
	require.NoError(t, err)
	byName, err := svc.Get(context.Background(), "pizza-hub")
	require.NoError(t, err)
	assert.Equal(t, byID.ID, byName.ID)

	_, err = svc.Get(context.Background(), "nobody")
	assert.ErrorIs(t, err, domain.ErrRestaurantNotFound)
}

func TestRestaurantService_Get_ServesFromCache(t *testing.T) {
	svc, repo, _, cache, r := newRestaurantFixture()

	_, err := svc.Get(context.Background(), r.ID)
	require.NoError(t, err)
	require.Contains(t, cache.entries, r.ID)

	// the store no longer has it; a cache hit must still answer
	require.NoError(t, repo.Delete(context.Background(), r.ID))
	got, err := svc.Get(context.Background(), "pizza-hub")
	require.NoError(t, err)
	assert.Equal(t, r.ID, got.ID)
}

func TestRestaurantService_Get_CacheErrorFallsBackToStore(t *testing.T) {
	svc, _, _, cache, r := newRestaurantFixture()
	cache.getErr = errStore

	got, err := svc.Get(context.Background(), r.ID)
	require.NoError(t, err)
	assert.Equal(t, r.ID, got.ID)
}

func TestRestaurantService_Get_FillOutlivesCallerCancellation(t *testing.T) {
	svc, repo, _, cache, r := newRestaurantFixture()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got, err := svc.Get(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, r.ID, got.ID)
	assert.NoError(t, repo.findCtxErr, "store read must not inherit the caller's cancellation")
	assert.Contains(t, cache.entries, r.ID)
}

func TestRestaurantService_Get_Concurrent(t *testing.T) {
	svc, _, _, _, r := newRestaurantFixture()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := svc.Get(context.Background(), r.ID)
			assert.NoError(t, err)
			if got != nil {
				assert.Equal(t, "pizza-hub", got.Username)
			}
		}()
	}
	wg.Wait()
}

func TestRestaurantService_MenuCategories(t *testing.T) {
	svc, _, _, _, _ := newRestaurantFixture()

	slugs, err := svc.MenuCategories(context.Background(), "pizza-hub")
	require.NoError(t, err)
	assert.Equal(t, []string{"combo-deals", "drinks"}, slugs)

	_, err = svc.MenuCategories(context.Background(), "nobody")
	assert.ErrorIs(t, err, domain.ErrRestaurantNotFound)
}

func TestRestaurantService_Delete(t *testing.T) {
	svc, repo, _, cache, r := newRestaurantFixture()

	require.NoError(t, svc.Delete(context.Background(), r.ID))
	_, err := repo.FindByID(context.Background(), r.ID)
	assert.ErrorIs(t, err, domain.ErrRestaurantNotFound)
	assert.Contains(t, cache.invalidated, r.ID)

	assert.ErrorIs(t, svc.Delete(context.Background(), r.ID), domain.ErrRestaurantNotFound)
}

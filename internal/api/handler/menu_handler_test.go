package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/menuhub/menu-server/internal/core/domain"
)

const menuItemBody = `{
	"name": "Family Box",
	"description": "Two pizzas and wings",
	"sizes": [{"name": "regular", "price": 24.5}],
	"category": "Combo Deals",
	"image": "https://cdn.test/box.png"
}`

func TestMenuHandler_AddItem(t *testing.T) {
	svc := &stubMenuService{}
	h := NewMenuHandler(svc)

	rec := do(t, h.AddItem, testRequest{
		method: http.MethodPost, target: "/restaurants/pizza-hub/menu", body: menuItemBody,
		params: map[string]string{"username": "pizza-hub"}, principal: ownerCaller,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	require.Len(t, svc.calls, 1)
	call := svc.calls[0]
	assert.Equal(t, *ownerCaller, call.caller)
	assert.Equal(t, "pizza-hub", call.key)
	assert.Equal(t, "Combo Deals", call.in.Category)
	assert.Equal(t, []domain.Size{{Name: "regular", Price: 24.5}}, call.in.Sizes)
	assert.Equal(t, "https://cdn.test/box.png", call.in.Image)

	var got domain.Restaurant
	decode(t, rec, &got)
	require.Len(t, got.Menu, 1)
	assert.Equal(t, "combo-deals", got.Menu[0].Category)
}

func TestMenuHandler_AddItem_Errors(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		principal *domain.Principal
		body      string
		want      int
	}{
		{"forbidden", domain.ErrForbidden, ownerCaller, menuItemBody, http.StatusForbidden},
		{"validation", domain.NewValidationError("name", "name is required"), ownerCaller, menuItemBody, http.StatusBadRequest},
		{"not found", domain.ErrRestaurantNotFound, ownerCaller, menuItemBody, http.StatusNotFound},
		{"no caller", nil, nil, menuItemBody, http.StatusUnauthorized},
		{"bad json", nil, ownerCaller, `{"sizes": "large"}`, http.StatusBadRequest},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := NewMenuHandler(&stubMenuService{err: tc.err})
			rec := do(t, h.AddItem, testRequest{
				method: http.MethodPost, target: "/restaurants/pizza-hub/menu", body: tc.body,
				params: map[string]string{"username": "pizza-hub"}, principal: tc.principal,
			})
			assert.Equal(t, tc.want, rec.Code)
		})
	}
}

func TestMenuHandler_UpdateAndRemove(t *testing.T) {
	svc := &stubMenuService{}
	h := NewMenuHandler(svc)
	params := map[string]string{"id": "rest-1", "itemId": "item-1"}

	rec := do(t, h.UpdateItem, testRequest{method: http.MethodPut, target: "/restaurants/rest-1/menu/item-1", body: menuItemBody, params: params, principal: ownerCaller})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, h.RemoveItem, testRequest{method: http.MethodDelete, target: "/restaurants/rest-1/menu/item-1", params: params, principal: ownerCaller})
	require.Equal(t, http.StatusOK, rec.Code)

	require.Len(t, svc.calls, 2)
	for _, call := range svc.calls {
		assert.Equal(t, "rest-1", call.key)
		assert.Equal(t, "item-1", call.itemID)
	}
	assert.Equal(t, "Family Box", svc.calls[0].in.Name)
}

func TestMenuHandler_UpdateItem_UnknownItem(t *testing.T) {
	h := NewMenuHandler(&stubMenuService{err: domain.ErrMenuItemNotFound})

	rec := do(t, h.UpdateItem, testRequest{
		method: http.MethodPut, target: "/restaurants/rest-1/menu/nope", body: menuItemBody,
		params: map[string]string{"id": "rest-1", "itemId": "nope"}, principal: ownerCaller,
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

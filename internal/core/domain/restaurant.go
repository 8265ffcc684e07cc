package domain

import "time"

// RestaurantStatus is the publication state of a restaurant, set by admins.
type RestaurantStatus string

const (
	StatusActive   RestaurantStatus = "active"
	StatusInactive RestaurantStatus = "inactive"
)

func (s RestaurantStatus) Valid() bool {
	return s == StatusActive || s == StatusInactive
}

// Size is one priced variant of a menu item.
type Size struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// MenuItem lives embedded in a restaurant's menu. Category holds the slug of
// the owning Category, not a reference to its record.
type MenuItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Sizes       []Size `json:"sizes"`
	Category    string `json:"category"`
	Image       string `json:"image,omitempty"`
}

// Restaurant is both a resource and the principal that owns it. The menu is
// part of the aggregate and is persisted together with it.
type Restaurant struct {
	ID           string           `json:"id"`
	Username     string           `json:"username"`
	Email        string           `json:"email"`
	PasswordHash string           `json:"-"`
	Name         string           `json:"name"`
	Location     string           `json:"location"`
	Status       RestaurantStatus `json:"status"`
	Menu         []MenuItem       `json:"menu"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

// AddMenuItem appends item to the menu. The caller assigns item.ID.
// ReservedUsername reports whether u has the shape of a restaurant id
// (24 hex digits). Lookups by key try the id first, so such a username would
// be shadowed by, or shadow, another restaurant's id.
func ReservedUsername(u string) bool {
	if len(u) != 24 {
		return false
	}
	for i := 0; i < len(u); i++ {
		c := u[i]
		if !('0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F') {
			return false
		}
	}
	return true
}

func (r *Restaurant) AddMenuItem(item MenuItem) {
	r.Menu = append(r.Menu, item)
}

// MenuItem returns a pointer into the menu for the item with the given id.
func (r *Restaurant) MenuItem(id string) (*MenuItem, error) {
	for i := range r.Menu {
		if r.Menu[i].ID == id {
			return &r.Menu[i], nil
		}
	}
	return nil, ErrMenuItemNotFound
}

// RemoveMenuItem deletes the item with the given id, preserving menu order.
func (r *Restaurant) RemoveMenuItem(id string) error {
	for i := range r.Menu {
		if r.Menu[i].ID == id {
			r.Menu = append(r.Menu[:i], r.Menu[i+1:]...)
			return nil
		}
	}
	return ErrMenuItemNotFound
}

// MenuCategories returns the distinct category slugs used by the menu in
// order of first appearance.
func (r *Restaurant) MenuCategories() []string {
	seen := make(map[string]struct{}, len(r.Menu))
	out := make([]string, 0, len(r.Menu))
	for _, item := range r.Menu {
		if _, ok := seen[item.Category]; ok {
			continue
		}
		seen[item.Category] = struct{}{}
		out = append(out, item.Category)
	}
	return out
}

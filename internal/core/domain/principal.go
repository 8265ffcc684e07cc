package domain

// Role identifies which kind of principal a token was issued to.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleRestaurant Role = "restaurant"
)

// Valid reports whether r is one of the two principal kinds.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleRestaurant
}

// Principal is the caller identity derived from a verified token. It lives
// for a single request and is never persisted.
type Principal struct {
	ID   string `json:"id"`
	Role Role   `json:"role"`
}

// Owns reports whether the principal is the restaurant with the given id.
// A restaurant is its own owner, so identity equality is sufficient.
func (p Principal) Owns(restaurantID string) bool {
	return p.Role == RoleRestaurant && p.ID != "" && p.ID == restaurantID
}

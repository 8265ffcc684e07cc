package domain

import "time"

// StatusEvent records an admin changing a restaurant's status.
type StatusEvent struct {
	RestaurantID string
	AdminID      string
	From         RestaurantStatus
	To           RestaurantStatus
	At           time.Time
}

package handler

import "github.com/menuhub/menu-server/internal/core/domain"

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

type registerRestaurantRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Location string `json:"location" validate:"required"`
}

type registerResponse struct {
	Token      string             `json:"token"`
	Restaurant *domain.Restaurant `json:"restaurant"`
}

type sessionResponse struct {
	Principal domain.Principal `json:"principal"`
}

type categoryRequest struct {
	Name string `json:"name" validate:"required"`
}

type statusRequest struct {
	Status string `json:"status" validate:"required"`
}

type sizeRequest struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// menuItemRequest is validated by the menu service, after the ownership
// check, so it carries no validate tags.
type menuItemRequest struct {
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Sizes       []sizeRequest `json:"sizes"`
	Category    string        `json:"category"`
	Image       string        `json:"image"`
}

type messageResponse struct {
	Message string `json:"message"`
}

package model

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

type AuthRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r AuthRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, validation.Length(3, 254), is.Email),
		validation.Field(&r.Password, validation.Required, validation.Length(6, 72)),
	)
}

type CreateUserRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func (r CreateUserRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, validation.Length(3, 254), is.Email),
		validation.Field(&r.Password, validation.Required, validation.Length(6, 72)),
		validation.Field(&r.Role, validation.In("", "user", "USER", "admin", "ADMIN")),
	)
}

type PreferenceRequest struct {
	TravelStyle           string   `json:"travel_style"`
	ExplorationStyle      string   `json:"exploration_style"`
	FoodPreference        string   `json:"food_preference"`
	TravelScope           string   `json:"travel_scope"`
	Budget                string   `json:"budget"`
	PreferredActivities   []string `json:"preferred_activities"`
	PreferredDestinations []string `json:"preferred_destinations"`
}

func (r PreferenceRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.TravelStyle, validation.Length(0, 100)),
		validation.Field(&r.ExplorationStyle, validation.Length(0, 100)),
		validation.Field(&r.FoodPreference, validation.Length(0, 100)),
		validation.Field(&r.TravelScope, validation.Length(0, 100)),
		validation.Field(&r.Budget, validation.Length(0, 100)),
	)
}

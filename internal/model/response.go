package model

import "time"

type APIResponse struct {
	Success bool      `json:"success"`
	Data    any       `json:"data,omitempty"`
	Error   *APIError `json:"error,omitempty"`
}

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

type AuthResponse struct {
	UserID    string `json:"user_id"`
	Email     string `json:"email"`
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expires_in"`
}

func NewAuthResponse(result AuthResult) AuthResponse {
	return AuthResponse{
		UserID:    result.UserID.String(),
		Email:     result.Email,
		Token:     result.Token,
		ExpiresIn: int64(result.ExpiresIn.Seconds()),
	}
}

type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func NewUserResponse(account Account) UserResponse {
	return UserResponse{
		ID:        account.ID.String(),
		Email:     account.Email,
		Role:      account.Role.String(),
		CreatedAt: account.CreatedAt,
	}
}

type PreferenceResponse struct {
	UserID                string   `json:"user_id"`
	TravelStyle           string   `json:"travel_style"`
	ExplorationStyle      string   `json:"exploration_style"`
	FoodPreference        string   `json:"food_preference"`
	TravelScope           string   `json:"travel_scope"`
	Budget                string   `json:"budget"`
	PreferredActivities   []string `json:"preferred_activities"`
	PreferredDestinations []string `json:"preferred_destinations"`
}

func NewPreferenceResponse(prefs PreferenceSet) PreferenceResponse {
	activities := prefs.Activities
	if activities == nil {
		activities = []string{}
	}
	destinations := prefs.Destinations
	if destinations == nil {
		destinations = []string{}
	}

	return PreferenceResponse{
		UserID:                prefs.UserID.String(),
		TravelStyle:           prefs.TravelStyle,
		ExplorationStyle:      prefs.ExplorationStyle,
		FoodPreference:        prefs.FoodPreference,
		TravelScope:           prefs.TravelScope,
		Budget:                prefs.Budget,
		PreferredActivities:   activities,
		PreferredDestinations: destinations,
	}
}

type ValidateResponse struct {
	Valid bool `json:"valid"`
}

package model

import (
	"time"

	"github.com/google/uuid"
)

// PreferenceSet is the per-user travel preference record, keyed 1:1 by the
// account id. Activity and destination tags are stored lower-cased.
type PreferenceSet struct {
	UserID           uuid.UUID
	TravelStyle      string
	ExplorationStyle string
	FoodPreference   string
	TravelScope      string
	Budget           string
	Activities       []string
	Destinations     []string
	UpdatedAt        time.Time
}

// PreferenceUpdate carries the fields of a preference write. Tags are
// validated and normalized by the service before they reach the store.
type PreferenceUpdate struct {
	TravelStyle      string
	ExplorationStyle string
	FoodPreference   string
	TravelScope      string
	Budget           string
	Activities       []string
	Destinations     []string
}

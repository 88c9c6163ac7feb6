package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"go-travel-identity/internal/model"
)

type PreferenceRepository struct {
	pool *pgxpool.Pool
}

func NewPreferenceRepository(pool *pgxpool.Pool) *PreferenceRepository {
	return &PreferenceRepository{pool: pool}
}

func (r *PreferenceRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (model.PreferenceSet, error) {
	var p model.PreferenceSet
	err := r.pool.QueryRow(ctx,
		`SELECT user_id, travel_style, exploration_style, food_preference,
		        travel_scope, budget, activities, destinations, updated_at
		 FROM user_preferences WHERE user_id = $1`, userID).
		Scan(&p.UserID, &p.TravelStyle, &p.ExplorationStyle, &p.FoodPreference,
			&p.TravelScope, &p.Budget, &p.Activities, &p.Destinations, &p.UpdatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return model.PreferenceSet{}, model.ErrPreferencesNotFound
	}
	if err != nil {
		return model.PreferenceSet{}, fmt.Errorf("find preferences: %w", err)
	}
	return p, nil
}

// Save upserts the single preference record per user.
func (r *PreferenceRepository) Save(ctx context.Context, p model.PreferenceSet) (model.PreferenceSet, error) {
	activities := p.Activities
	if activities == nil {
		activities = []string{}
	}
	destinations := p.Destinations
	if destinations == nil {
		destinations = []string{}
	}

	_, err := r.pool.Exec(ctx,
		`INSERT INTO user_preferences
		     (user_id, travel_style, exploration_style, food_preference,
		      travel_scope, budget, activities, destinations, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 ON CONFLICT (user_id) DO UPDATE
		 SET travel_style = EXCLUDED.travel_style,
		     exploration_style = EXCLUDED.exploration_style,
		     food_preference = EXCLUDED.food_preference,
		     travel_scope = EXCLUDED.travel_scope,
		     budget = EXCLUDED.budget,
		     activities = EXCLUDED.activities,
		     destinations = EXCLUDED.destinations,
		     updated_at = EXCLUDED.updated_at`,
		p.UserID, p.TravelStyle, p.ExplorationStyle, p.FoodPreference,
		p.TravelScope, p.Budget, activities, destinations, p.UpdatedAt)
	if err != nil {
		return model.PreferenceSet{}, fmt.Errorf("save preferences: %w", err)
	}
	return p, nil
}

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"go-travel-identity/internal/model"
	"go-travel-identity/internal/password"
	"go-travel-identity/internal/preference"
)

// PreferenceStore persists the 1:1 per-user preference record.
type PreferenceStore interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) (model.PreferenceSet, error)
	Save(ctx context.Context, prefs model.PreferenceSet) (model.PreferenceSet, error)
}

// UserService covers account lookup and travel preference reads/writes.
// Preference writes are guarded by the closed activity and destination
// vocabularies.
type UserService struct {
	accounts    AccountStore
	preferences PreferenceStore
	hasher      password.Hasher
}

func NewUserService(accounts AccountStore, preferences PreferenceStore, hasher password.Hasher) *UserService {
	return &UserService{
		accounts:    accounts,
		preferences: preferences,
		hasher:      hasher,
	}
}

// CreateUser registers an account without minting a token. Reached only
// through the admin-gated user management endpoint.
func (s *UserService) CreateUser(ctx context.Context, email string, rawPassword string, role model.Role) (model.Account, error) {
	if !role.Valid() {
		role = model.RoleUser
	}

	_, err := s.accounts.FindByEmail(ctx, email)
	if err == nil {
		return model.Account{}, model.ErrAccountExists
	}
	if !errors.Is(err, model.ErrAccountNotFound) {
		return model.Account{}, fmt.Errorf("create user: %w", err)
	}

	hash, err := s.hasher.Hash(rawPassword)
	if err != nil {
		return model.Account{}, fmt.Errorf("create user: %w", err)
	}

	now := time.Now().UTC()
	account := model.Account{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	saved, err := s.accounts.Save(ctx, account)
	if err != nil {
		if errors.Is(err, model.ErrAccountExists) {
			return model.Account{}, model.ErrAccountExists
		}
		return model.Account{}, fmt.Errorf("create user: %w", err)
	}
	return saved, nil
}

func (s *UserService) GetUser(ctx context.Context, id uuid.UUID) (model.Account, error) {
	return s.accounts.FindByID(ctx, id)
}

func (s *UserService) GetByEmail(ctx context.Context, email string) (model.Account, error) {
	return s.accounts.FindByEmail(ctx, email)
}

// UpdatePreferences validates the submitted tags against the closed
// vocabularies and upserts the user's preference record. Tags are stored
// lower-cased. All offending tags are reported in one error.
func (s *UserService) UpdatePreferences(ctx context.Context, userID uuid.UUID, update model.PreferenceUpdate) (model.PreferenceSet, error) {
	if _, err := s.accounts.FindByID(ctx, userID); err != nil {
		return model.PreferenceSet{}, err
	}

	if err := preference.ValidateActivities(update.Activities); err != nil {
		return model.PreferenceSet{}, err
	}
	if err := preference.ValidateDestinations(update.Destinations); err != nil {
		return model.PreferenceSet{}, err
	}

	prefs := model.PreferenceSet{
		UserID:           userID,
		TravelStyle:      update.TravelStyle,
		ExplorationStyle: update.ExplorationStyle,
		FoodPreference:   update.FoodPreference,
		TravelScope:      update.TravelScope,
		Budget:           update.Budget,
		Activities:       preference.Normalize(update.Activities),
		Destinations:     preference.Normalize(update.Destinations),
		UpdatedAt:        time.Now().UTC(),
	}

	saved, err := s.preferences.Save(ctx, prefs)
	if err != nil {
		return model.PreferenceSet{}, fmt.Errorf("save preferences: %w", err)
	}
	return saved, nil
}

func (s *UserService) GetPreferences(ctx context.Context, userID uuid.UUID) (model.PreferenceSet, error) {
	if _, err := s.accounts.FindByID(ctx, userID); err != nil {
		return model.PreferenceSet{}, err
	}
	return s.preferences.FindByUserID(ctx, userID)
}

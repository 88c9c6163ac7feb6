package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"go-travel-identity/internal/model"
	"go-travel-identity/internal/password"
	"go-travel-identity/internal/preference"
)

func newTestUserService(store AccountStore, prefs PreferenceStore) *UserService {
	return NewUserService(store, prefs, password.NewBcryptHasher(bcrypt.MinCost))
}

func registerTestAccount(t *testing.T, store *fakeAccountStore) model.Account {
	t.Helper()

	account := model.Account{
		ID:           uuid.New(),
		Email:        "user@example.com",
		PasswordHash: "digest",
		Role:         model.RoleUser,
	}
	saved, err := store.Save(context.Background(), account)
	require.NoError(t, err)
	return saved
}

func TestUserService_CreateUser(t *testing.T) {
	store := newFakeAccountStore()
	svc := newTestUserService(store, new(mockPreferenceStore))
	ctx := context.Background()

	account, err := svc.CreateUser(ctx, "new@example.com", "secret123", model.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, account.Role)
	assert.NotEqual(t, "secret123", account.PasswordHash)

	_, err = svc.CreateUser(ctx, "new@example.com", "secret123", model.RoleUser)
	assert.ErrorIs(t, err, model.ErrAccountExists)
}

func TestUserService_GetUser(t *testing.T) {
	store := newFakeAccountStore()
	svc := newTestUserService(store, new(mockPreferenceStore))
	account := registerTestAccount(t, store)

	found, err := svc.GetUser(context.Background(), account.ID)
	require.NoError(t, err)
	assert.Equal(t, account.Email, found.Email)

	_, err = svc.GetUser(context.Background(), uuid.New())
	assert.ErrorIs(t, err, model.ErrAccountNotFound)

	byEmail, err := svc.GetByEmail(context.Background(), account.Email)
	require.NoError(t, err)
	assert.Equal(t, account.ID, byEmail.ID)
}

func TestUserService_UpdatePreferences(t *testing.T) {
	t.Run("valid tags are normalized and saved", func(t *testing.T) {
		store := newFakeAccountStore()
		prefStore := new(mockPreferenceStore)
		svc := newTestUserService(store, prefStore)
		account := registerTestAccount(t, store)

		prefStore.On("Save", mock.Anything, mock.MatchedBy(func(p model.PreferenceSet) bool {
			return p.UserID == account.ID &&
				assert.ObjectsAreEqual([]string{"hiking", "wine-tasting"}, p.Activities) &&
				assert.ObjectsAreEqual([]string{"mountains"}, p.Destinations)
		})).Return(model.PreferenceSet{
			UserID:       account.ID,
			TravelStyle:  "adventure",
			Activities:   []string{"hiking", "wine-tasting"},
			Destinations: []string{"mountains"},
		}, nil)

		saved, err := svc.UpdatePreferences(context.Background(), account.ID, model.PreferenceUpdate{
			TravelStyle:  "adventure",
			Activities:   []string{"HIKING", "Wine-Tasting"},
			Destinations: []string{"Mountains"},
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"hiking", "wine-tasting"}, saved.Activities)

		prefStore.AssertExpectations(t)
	})

	t.Run("invalid activity rejects the whole write", func(t *testing.T) {
		store := newFakeAccountStore()
		prefStore := new(mockPreferenceStore)
		svc := newTestUserService(store, prefStore)
		account := registerTestAccount(t, store)

		_, err := svc.UpdatePreferences(context.Background(), account.ID, model.PreferenceUpdate{
			Activities: []string{"hiking", "INVALID-TAG"},
		})
		require.Error(t, err)

		var vErr *preference.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, []string{"invalid-tag"}, vErr.Invalid)

		prefStore.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("invalid destination rejects the whole write", func(t *testing.T) {
		store := newFakeAccountStore()
		prefStore := new(mockPreferenceStore)
		svc := newTestUserService(store, prefStore)
		account := registerTestAccount(t, store)

		_, err := svc.UpdatePreferences(context.Background(), account.ID, model.PreferenceUpdate{
			Destinations: []string{"atlantis"},
		})
		require.Error(t, err)

		var vErr *preference.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "destinations", vErr.Field)

		prefStore.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("unknown user", func(t *testing.T) {
		store := newFakeAccountStore()
		prefStore := new(mockPreferenceStore)
		svc := newTestUserService(store, prefStore)

		_, err := svc.UpdatePreferences(context.Background(), uuid.New(), model.PreferenceUpdate{})
		assert.ErrorIs(t, err, model.ErrAccountNotFound)

		prefStore.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("empty tag lists are always valid", func(t *testing.T) {
		store := newFakeAccountStore()
		prefStore := new(mockPreferenceStore)
		svc := newTestUserService(store, prefStore)
		account := registerTestAccount(t, store)

		prefStore.On("Save", mock.Anything, mock.Anything).Return(model.PreferenceSet{UserID: account.ID}, nil)

		_, err := svc.UpdatePreferences(context.Background(), account.ID, model.PreferenceUpdate{
			TravelStyle: "relaxed",
		})
		assert.NoError(t, err)
	})
}

func TestUserService_GetPreferences(t *testing.T) {
	t.Run("returns stored record", func(t *testing.T) {
		store := newFakeAccountStore()
		prefStore := new(mockPreferenceStore)
		svc := newTestUserService(store, prefStore)
		account := registerTestAccount(t, store)

		prefStore.On("FindByUserID", mock.Anything, account.ID).Return(model.PreferenceSet{
			UserID:     account.ID,
			Activities: []string{"hiking"},
		}, nil)

		prefs, err := svc.GetPreferences(context.Background(), account.ID)
		require.NoError(t, err)
		assert.Equal(t, []string{"hiking"}, prefs.Activities)
	})

	t.Run("never written", func(t *testing.T) {
		store := newFakeAccountStore()
		prefStore := new(mockPreferenceStore)
		svc := newTestUserService(store, prefStore)
		account := registerTestAccount(t, store)

		prefStore.On("FindByUserID", mock.Anything, account.ID).
			Return(model.PreferenceSet{}, model.ErrPreferencesNotFound)

		_, err := svc.GetPreferences(context.Background(), account.ID)
		assert.ErrorIs(t, err, model.ErrPreferencesNotFound)
	})

	t.Run("unknown user short-circuits", func(t *testing.T) {
		store := newFakeAccountStore()
		prefStore := new(mockPreferenceStore)
		svc := newTestUserService(store, prefStore)

		_, err := svc.GetPreferences(context.Background(), uuid.New())
		assert.ErrorIs(t, err, model.ErrAccountNotFound)

		prefStore.AssertNotCalled(t, "FindByUserID", mock.Anything, mock.Anything)
	})
}

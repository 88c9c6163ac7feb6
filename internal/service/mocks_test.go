package service

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"go-travel-identity/internal/model"
)

// fakeAccountStore is an in-memory AccountStore that enforces email
// uniqueness the way the real repository does, so registration races and
// duplicate handling behave like production.
type fakeAccountStore struct {
	mu       sync.Mutex
	accounts map[uuid.UUID]model.Account
	saveErr  error
	findErr  error
}

func newFakeAccountStore() *fakeAccountStore {
	return &fakeAccountStore{accounts: map[uuid.UUID]model.Account{}}
}

func (f *fakeAccountStore) FindByEmail(_ context.Context, email string) (model.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.findErr != nil {
		return model.Account{}, f.findErr
	}
	for _, account := range f.accounts {
		if account.Email == email {
			return account, nil
		}
	}
	return model.Account{}, model.ErrAccountNotFound
}

func (f *fakeAccountStore) FindByID(_ context.Context, id uuid.UUID) (model.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.findErr != nil {
		return model.Account{}, f.findErr
	}
	account, ok := f.accounts[id]
	if !ok {
		return model.Account{}, model.ErrAccountNotFound
	}
	return account, nil
}

func (f *fakeAccountStore) Save(_ context.Context, account model.Account) (model.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.saveErr != nil {
		return model.Account{}, f.saveErr
	}
	for id, existing := range f.accounts {
		if existing.Email == account.Email && id != account.ID {
			return model.Account{}, model.ErrAccountExists
		}
	}
	f.accounts[account.ID] = account
	return account, nil
}

func (f *fakeAccountStore) delete(id uuid.UUID) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.accounts, id)
}

func (f *fakeAccountStore) setRole(id uuid.UUID, role model.Role) {
	f.mu.Lock()
	defer f.mu.Unlock()
	account := f.accounts[id]
	account.Role = role
	f.accounts[id] = account
}

// mockPreferenceStore is a testify mock for the PreferenceStore contract.
type mockPreferenceStore struct {
	mock.Mock
}

func (m *mockPreferenceStore) FindByUserID(ctx context.Context, userID uuid.UUID) (model.PreferenceSet, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(model.PreferenceSet), args.Error(1)
}

func (m *mockPreferenceStore) Save(ctx context.Context, prefs model.PreferenceSet) (model.PreferenceSet, error) {
	args := m.Called(ctx, prefs)
	return args.Get(0).(model.PreferenceSet), args.Error(1)
}

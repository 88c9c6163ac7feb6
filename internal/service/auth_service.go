package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"go-travel-identity/internal/model"
	"go-travel-identity/internal/password"
	"go-travel-identity/internal/token"
)

// AccountStore is the persistence contract the auth service depends on. The
// store must enforce email uniqueness atomically; the service's own
// existence pre-check is a fast path, not the source of truth.
type AccountStore interface {
	FindByEmail(ctx context.Context, email string) (model.Account, error)
	FindByID(ctx context.Context, id uuid.UUID) (model.Account, error)
	Save(ctx context.Context, account model.Account) (model.Account, error)
}

// AuthService owns the credential and token lifecycle: registration (user
// and admin), login, token validation and token refresh. It holds no mutable
// state of its own: tokens are verified statelessly and there is no
// revocation list, so a token stays cryptographically valid until expiry.
// The only pre-expiry invalidation is Refresh re-checking that the account
// still exists.
type AuthService struct {
	accounts    AccountStore
	hasher      password.Hasher
	codec       *token.Codec
	adminSecret []byte
}

func NewAuthService(accounts AccountStore, hasher password.Hasher, codec *token.Codec, adminSecret string) *AuthService {
	return &AuthService{
		accounts:    accounts,
		hasher:      hasher,
		codec:       codec,
		adminSecret: []byte(adminSecret),
	}
}

// Register creates an ordinary account and mints a token for immediate use.
func (s *AuthService) Register(ctx context.Context, email string, rawPassword string) (model.AuthResult, error) {
	return s.register(ctx, email, rawPassword, model.RoleUser)
}

// RegisterAdmin creates an administrative account. The supplied secret must
// equal the configured deployment secret; the comparison covers the whole
// value in constant time, so prefixes and suffixes never pass.
func (s *AuthService) RegisterAdmin(ctx context.Context, email string, rawPassword string, suppliedSecret string) (model.AuthResult, error) {
	if subtle.ConstantTimeCompare([]byte(suppliedSecret), s.adminSecret) != 1 {
		slog.Warn("admin registration rejected", "reason", "bad admin secret")
		return model.AuthResult{}, model.ErrInvalidCredentials
	}
	return s.register(ctx, email, rawPassword, model.RoleAdmin)
}

// Login verifies credentials and mints a fresh token. An unknown email and a
// wrong password return the identical error so callers cannot enumerate
// accounts.
func (s *AuthService) Login(ctx context.Context, email string, rawPassword string) (model.AuthResult, error) {
	account, err := s.accounts.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, model.ErrAccountNotFound) {
			return model.AuthResult{}, model.ErrInvalidCredentials
		}
		return model.AuthResult{}, fmt.Errorf("login: %w", err)
	}

	if !s.hasher.Matches(rawPassword, account.PasswordHash) {
		return model.AuthResult{}, model.ErrInvalidCredentials
	}

	return s.issue(account)
}

// Validate reports whether a token is currently acceptable. Any failure,
// whether malformed, tampered or expired, is just false; it never returns an
// error.
func (s *AuthService) Validate(tokenString string) bool {
	_, err := s.codec.Verify(tokenString)
	return err == nil
}

// ValidateToken verifies a token and returns its claims. Used by the auth
// middleware.
func (s *AuthService) ValidateToken(tokenString string) (*model.Claims, error) {
	return s.codec.Verify(tokenString)
}

// Refresh exchanges a still-valid token for a brand-new one without
// re-presenting the password. The account is re-resolved so a deleted
// account invalidates its outstanding tokens, and the new token carries the
// account's current role rather than the one embedded in the old token.
func (s *AuthService) Refresh(ctx context.Context, oldToken string) (model.AuthResult, error) {
	if !s.Validate(oldToken) {
		return model.AuthResult{}, model.ErrInvalidCredentials
	}

	claims, err := s.codec.Decode(oldToken)
	if err != nil {
		return model.AuthResult{}, model.ErrInvalidCredentials
	}

	account, err := s.accounts.FindByEmail(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, model.ErrAccountNotFound) {
			return model.AuthResult{}, model.ErrInvalidCredentials
		}
		return model.AuthResult{}, fmt.Errorf("refresh: %w", err)
	}

	return s.issue(account)
}

func (s *AuthService) register(ctx context.Context, email string, rawPassword string, role model.Role) (model.AuthResult, error) {
	_, err := s.accounts.FindByEmail(ctx, email)
	if err == nil {
		return model.AuthResult{}, model.ErrAccountExists
	}
	if !errors.Is(err, model.ErrAccountNotFound) {
		return model.AuthResult{}, fmt.Errorf("register: %w", err)
	}

	hash, err := s.hasher.Hash(rawPassword)
	if err != nil {
		return model.AuthResult{}, fmt.Errorf("register: %w", err)
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
		// Two concurrent registrations can race past the pre-check; the
		// store's uniqueness constraint settles it and we surface the loser
		// as the same conflict.
		if errors.Is(err, model.ErrAccountExists) {
			return model.AuthResult{}, model.ErrAccountExists
		}
		return model.AuthResult{}, fmt.Errorf("register: %w", err)
	}

	slog.Info("account registered", "user_id", saved.ID, "role", saved.Role)
	return s.issue(saved)
}

func (s *AuthService) issue(account model.Account) (model.AuthResult, error) {
	signed, err := s.codec.Mint(account.Email, account.ID, account.Role)
	if err != nil {
		return model.AuthResult{}, fmt.Errorf("mint token: %w", err)
	}

	return model.AuthResult{
		UserID:    account.ID,
		Email:     account.Email,
		Token:     signed,
		ExpiresIn: s.codec.Lifetime(),
	}, nil
}

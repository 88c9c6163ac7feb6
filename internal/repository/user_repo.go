package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"go-travel-identity/internal/model"
)

const uniqueViolation = "23505"

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

// FindByEmail matches the stored email exactly; email comparison is
// case-sensitive in this service.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (model.Account, error) {
	var a model.Account
	var role string
	err := r.pool.QueryRow(ctx,
		`SELECT id, email, password_hash, role, created_at, updated_at
		 FROM users WHERE email = $1`, email).
		Scan(&a.ID, &a.Email, &a.PasswordHash, &role, &a.CreatedAt, &a.UpdatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return model.Account{}, model.ErrAccountNotFound
	}
	if err != nil {
		return model.Account{}, fmt.Errorf("find account by email: %w", err)
	}

	a.Role = model.Role(role)
	return a, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (model.Account, error) {
	var a model.Account
	var role string
	err := r.pool.QueryRow(ctx,
		`SELECT id, email, password_hash, role, created_at, updated_at
		 FROM users WHERE id = $1`, id).
		Scan(&a.ID, &a.Email, &a.PasswordHash, &role, &a.CreatedAt, &a.UpdatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return model.Account{}, model.ErrAccountNotFound
	}
	if err != nil {
		return model.Account{}, fmt.Errorf("find account by id: %w", err)
	}

	a.Role = model.Role(role)
	return a, nil
}

// Save upserts by id. The UNIQUE constraint on users.email is the
// authoritative duplicate guard; a violation surfaces as
// model.ErrAccountExists so a registration that loses a race still gets the
// right conflict error.
func (r *UserRepository) Save(ctx context.Context, a model.Account) (model.Account, error) {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO users (id, email, password_hash, role, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (id) DO UPDATE
		 SET email = EXCLUDED.email,
		     password_hash = EXCLUDED.password_hash,
		     role = EXCLUDED.role,
		     updated_at = EXCLUDED.updated_at`,
		a.ID, a.Email, a.PasswordHash, a.Role.String(), a.CreatedAt, a.UpdatedAt)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return model.Account{}, model.ErrAccountExists
	}
	if err != nil {
		return model.Account{}, fmt.Errorf("save account: %w", err)
	}
	return a, nil
}

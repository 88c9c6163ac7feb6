package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Role is the closed set of account roles. It is stored and transported as a
// string but treated as an enum everywhere inside the service; ParseRole is
// the only place a free-form string becomes a Role.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

func ParseRole(raw string) (Role, error) {
	switch Role(strings.ToUpper(strings.TrimSpace(raw))) {
	case RoleUser:
		return RoleUser, nil
	case RoleAdmin:
		return RoleAdmin, nil
	default:
		return "", fmt.Errorf("%w: unknown role %q", ErrInvalidInput, raw)
	}
}

func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

func (r Role) String() string {
	return string(r)
}

// Account is the persisted identity record. It is never serialized directly;
// handlers map it to response DTOs so the password hash cannot leak.
type Account struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Claims is the payload embedded in a token. Derived on every mint, never
// stored.
type Claims struct {
	Subject   string
	UserID    uuid.UUID
	Role      Role
	TokenID   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// AuthResult is what the credential operations hand back to the transport
// layer: the identity plus a freshly minted token.
type AuthResult struct {
	UserID    uuid.UUID
	Email     string
	Token     string
	ExpiresIn time.Duration
}

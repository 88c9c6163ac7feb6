package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"go-travel-identity/internal/model"
)

// Codec mints and verifies HS256 bearer tokens. It is a pure function of
// (claims, secret, clock) and holds no per-token state, so one instance is
// safe for concurrent use.
type Codec struct {
	secret   []byte
	lifetime time.Duration
	now      func() time.Time
}

func NewCodec(secret string, lifetime time.Duration) *Codec {
	return &Codec{
		secret:   []byte(secret),
		lifetime: lifetime,
		now:      time.Now,
	}
}

func (c *Codec) Lifetime() time.Duration {
	return c.lifetime
}

// Mint signs a token for the given identity. Issued-at is the codec's clock
// and expiry is always issued-at plus the configured lifetime; callers never
// supply timestamps.
func (c *Codec) Mint(email string, userID uuid.UUID, role model.Role) (string, error) {
	now := c.now().UTC()
	claims := jwt.MapClaims{
		"sub":  email,
		"uid":  userID.String(),
		"role": role.String(),
		"jti":  uuid.NewString(),
		"iat":  now.Unix(),
		"exp":  now.Add(c.lifetime).Unix(),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return "", err
	}
	return signed, nil
}

// Verify checks signature and expiry and returns the embedded claims.
// Malformed input, a bad signature and an expired token all fail with the
// same model.ErrInvalidToken so callers cannot probe which it was.
func (c *Codec) Verify(tokenString string) (*model.Claims, error) {
	parsed, err := jwt.Parse(tokenString, c.keyFunc)
	if err != nil || !parsed.Valid {
		return nil, model.ErrInvalidToken
	}

	claims, err := c.extract(parsed)
	if err != nil {
		return nil, model.ErrInvalidToken
	}

	if !c.now().Before(claims.ExpiresAt) {
		return nil, model.ErrInvalidToken
	}
	return claims, nil
}

// Decode extracts claims without checking expiry. It still verifies the
// signature; it exists only so refresh can read claims out of a token that
// already passed Verify.
func (c *Codec) Decode(tokenString string) (*model.Claims, error) {
	parser := jwt.NewParser(jwt.WithoutClaimsValidation())
	parsed, err := parser.Parse(tokenString, c.keyFunc)
	if err != nil {
		return nil, model.ErrInvalidToken
	}

	claims, err := c.extract(parsed)
	if err != nil {
		return nil, model.ErrInvalidToken
	}
	return claims, nil
}

func (c *Codec) keyFunc(t *jwt.Token) (any, error) {
	if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, model.ErrInvalidToken
	}
	return c.secret, nil
}

func (c *Codec) extract(parsed *jwt.Token) (*model.Claims, error) {
	claimsMap, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, model.ErrInvalidToken
	}

	subject, _ := claimsMap["sub"].(string)
	rawUID, _ := claimsMap["uid"].(string)
	rawRole, _ := claimsMap["role"].(string)
	tokenID, _ := claimsMap["jti"].(string)
	if subject == "" {
		return nil, model.ErrInvalidToken
	}

	userID, err := uuid.Parse(rawUID)
	if err != nil {
		return nil, model.ErrInvalidToken
	}

	role, err := model.ParseRole(rawRole)
	if err != nil {
		return nil, model.ErrInvalidToken
	}

	issuedAt, err := numericTime(claimsMap["iat"])
	if err != nil {
		return nil, model.ErrInvalidToken
	}
	expiresAt, err := numericTime(claimsMap["exp"])
	if err != nil {
		return nil, model.ErrInvalidToken
	}

	return &model.Claims{
		Subject:   subject,
		UserID:    userID,
		Role:      role,
		TokenID:   tokenID,
		IssuedAt:  issuedAt,
		ExpiresAt: expiresAt,
	}, nil
}

func numericTime(value any) (time.Time, error) {
	switch v := value.(type) {
	case float64:
		return time.Unix(int64(v), 0).UTC(), nil
	case int64:
		return time.Unix(v, 0).UTC(), nil
	default:
		return time.Time{}, model.ErrInvalidToken
	}
}

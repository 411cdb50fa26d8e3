package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// Token verification failure reasons. Callers treat all three as
// unauthenticated; the distinction exists for logs and tests.
var (
	// ErrTokenMalformed is returned when the token cannot be parsed at all.
	ErrTokenMalformed = errors.New("token is malformed")
	// ErrTokenBadSignature is returned when the token parses but its
	// signature does not match, i.e. tampering or a wrong secret.
	ErrTokenBadSignature = errors.New("token signature is invalid")
	// ErrTokenExpired is returned when the signature is valid but the
	// token is past its expiry.
	ErrTokenExpired = errors.New("token is expired")
)

// Claims is the claim set embedded in a session token. Field names match
// the wire format consumed by existing clients.
type Claims struct {
	TootajaID uint `json:"userId"`
	RoleID    uint `json:"roleId"`
	jwt.RegisteredClaims
}

// Role returns the claim's role id as a Role.
func (c *Claims) Role() Role {
	return Role(c.RoleID)
}

// JWTService signs and verifies session tokens with a process-wide HMAC
// secret. The secret and TTL are fixed at construction and never mutated,
// so concurrent use needs no locking.
type JWTService struct {
	secret []byte
	ttl    time.Duration
}

// NewJWTService creates a new JWT service with the given secret and token TTL.
func NewJWTService(secret string, ttl time.Duration) *JWTService {
	return &JWTService{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// GenerateToken issues a signed session token for the employee.
func (s *JWTService) GenerateToken(tootajaID, roleID uint) (string, error) {
	now := time.Now()
	claims := &Claims{
		TootajaID: tootajaID,
		RoleID:    roleID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateToken verifies a session token and returns its claims.
// On failure it returns one of ErrTokenMalformed, ErrTokenBadSignature or
// ErrTokenExpired.
func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})

	if err != nil {
		return nil, classifyValidationError(err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrTokenBadSignature
	}

	return claims, nil
}

// classifyValidationError collapses jwt's bitmask errors into the closed
// failure set. Signature problems win over expiry: a tampered token is
// rejected as tampered even if it is also stale.
func classifyValidationError(err error) error {
	var ve *jwt.ValidationError
	if !errors.As(err, &ve) {
		return ErrTokenMalformed
	}
	switch {
	case ve.Errors&jwt.ValidationErrorMalformed != 0:
		return ErrTokenMalformed
	case ve.Errors&(jwt.ValidationErrorSignatureInvalid|jwt.ValidationErrorUnverifiable) != 0:
		return ErrTokenBadSignature
	case ve.Errors&(jwt.ValidationErrorExpired|jwt.ValidationErrorNotValidYet) != 0:
		return ErrTokenExpired
	default:
		return ErrTokenMalformed
	}
}

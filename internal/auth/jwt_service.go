package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	// LoginTokenExpiry is the lifetime of tokens issued at login.
	LoginTokenExpiry = 24 * time.Hour
	// SignupTokenExpiry is the lifetime of tokens issued at signup. The
	// longer window comes from the original product behavior: a fresh
	// signup should stay signed in long enough to finish the company
	// profile without logging in again.
	SignupTokenExpiry = 7 * 24 * time.Hour
)

// ErrInvalidToken is returned when a token fails signature, expiry, or
// claims-shape checks.
var ErrInvalidToken = errors.New("invalid token")

// Claims is the closed claims payload carried by every issued token.
// Nothing beyond the user id and email is trusted from a presented token.
type Claims struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// JWTService signs and verifies bearer tokens.
type JWTService struct {
	secret []byte
}

// NewJWTService creates a new JWT service with the given secret.
func NewJWTService(secret string) *JWTService {
	return &JWTService{
		secret: []byte(secret),
	}
}

// GenerateToken issues an HS256 token for the user with the given lifetime.
func (s *JWTService) GenerateToken(userID uint, email string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateToken verifies signature and expiry and returns the claims.
// Tokens whose payload does not carry a user id are rejected here rather
// than letting a malformed identity reach the handlers.
func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))

	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.UserID == 0 {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

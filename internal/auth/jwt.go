package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid or expired token")
	ErrMissingToken = errors.New("authorization token required")
)

// Token purposes. A token minted for one purpose is rejected when presented
// for another, so a short-lived verification token cannot be replayed as a
// session credential.
const (
	PurposeSession     = "session"
	PurposeVerifyEmail = "verify-email"
)

// Default token lifetimes.
const (
	SessionTokenDuration = time.Hour
	VerifyTokenDuration  = 15 * time.Minute
)

// JWTManager handles JWT token generation and validation.
type JWTManager struct {
	secretKey       []byte
	sessionDuration time.Duration
	verifyDuration  time.Duration
}

// Claims represents the custom JWT claims for a user token.
type Claims struct {
	Username string `json:"username"`
	Purpose  string `json:"purpose"`
	jwt.RegisteredClaims
}

// NewJWTManager creates a new JWT manager with the given secret.
// secretKey should be a strong random string (e.g., 32 bytes).
func NewJWTManager(secretKey string) *JWTManager {
	return &JWTManager{
		secretKey:       []byte(secretKey),
		sessionDuration: SessionTokenDuration,
		verifyDuration:  VerifyTokenDuration,
	}
}

// GenerateSession creates a session token for the given username.
func (m *JWTManager) GenerateSession(username string) (string, error) {
	return m.generate(username, PurposeSession, m.sessionDuration)
}

// GenerateVerification creates a short-lived email-verification token.
func (m *JWTManager) GenerateVerification(username string) (string, error) {
	return m.generate(username, PurposeVerifyEmail, m.verifyDuration)
}

func (m *JWTManager) generate(username, purpose string, duration time.Duration) (string, error) {
	claims := &Claims{
		Username: username,
		Purpose:  purpose,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(duration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(m.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// Validate parses and validates a token, returning the claims if valid and
// minted for the expected purpose.
func (m *JWTManager) Validate(tokenString, purpose string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(
		tokenString,
		&Claims{},
		func(token *jwt.Token) (interface{}, error) {
			// Verify the signing method
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return m.secretKey, nil
		},
	)

	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Purpose != purpose {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

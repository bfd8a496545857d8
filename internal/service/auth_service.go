package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/webdevKhushi/expense-split-backend/internal/auth"
	"github.com/webdevKhushi/expense-split-backend/internal/mailer"
	"github.com/webdevKhushi/expense-split-backend/internal/models"
	"github.com/webdevKhushi/expense-split-backend/internal/storage"
)

// ErrNotVerified is returned by Login when verification gating is on and
// the account has not completed the email step.
var ErrNotVerified = errors.New("email not verified")

// AuthService handles signup, login and email verification.
type AuthService struct {
	authenticator auth.Authenticator
	tokens        *auth.JWTManager
	store         storage.Store
	mail          mailer.Mailer

	// requireVerification gates login on the email step. When off,
	// signup issues a session token immediately.
	requireVerification bool

	// baseURL is the public origin used to build verification links.
	baseURL string
}

// NewAuthService creates an AuthService.
func NewAuthService(authenticator auth.Authenticator, tokens *auth.JWTManager, store storage.Store, mail mailer.Mailer, requireVerification bool, baseURL string) *AuthService {
	return &AuthService{
		authenticator:       authenticator,
		tokens:              tokens,
		store:               store,
		mail:                mail,
		requireVerification: requireVerification,
		baseURL:             strings.TrimRight(baseURL, "/"),
	}
}

// SignupResult is the outcome of a signup: either a session token, or a
// pending verification when gating is on.
type SignupResult struct {
	User                *models.User
	Token               string
	PendingVerification bool
}

// Signup registers a new account. With verification gating off the result
// carries a session token; with gating on a verification link goes out by
// mail and login stays blocked until it is used.
func (s *AuthService) Signup(ctx context.Context, username, password, email string) (*SignupResult, error) {
	if strings.TrimSpace(username) == "" || password == "" {
		return nil, fmt.Errorf("%w: username and password required", ErrValidation)
	}

	user, err := s.authenticator.Register(ctx, username, email, password)
	if err != nil {
		if errors.Is(err, auth.ErrWeakPassword) || errors.Is(err, auth.ErrUsernameTaken) {
			return nil, fmt.Errorf("%w: %v", ErrValidation, err)
		}
		return nil, err
	}

	if s.requireVerification {
		if err := s.sendVerification(user); err != nil {
			slog.Error("Failed to send verification mail", "username", user.Username, "error", err)
			return nil, err
		}
		slog.Info("Signup pending verification", "username", user.Username)
		return &SignupResult{User: user, PendingVerification: true}, nil
	}

	token, err := s.tokens.GenerateSession(user.Username)
	if err != nil {
		return nil, err
	}

	slog.Info("Signup ok", "username", user.Username)
	return &SignupResult{User: user, Token: token}, nil
}

// Login verifies the password and issues a session token.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.authenticator.Authenticate(ctx, username, password)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrCredential, err)
	}

	if s.requireVerification && !user.Verified {
		return "", fmt.Errorf("%w: %v", ErrForbidden, ErrNotVerified)
	}

	token, err := s.tokens.GenerateSession(user.Username)
	if err != nil {
		return "", err
	}

	slog.Info("Login ok", "username", user.Username)
	return token, nil
}

// VerifyEmail validates a verification token and marks the account verified.
func (s *AuthService) VerifyEmail(ctx context.Context, token string) error {
	claims, err := s.tokens.Validate(token, auth.PurposeVerifyEmail)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrCredential, err)
	}

	if err := s.store.MarkUserVerified(ctx, claims.Username); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%w: user %s", ErrNotFound, claims.Username)
		}
		return err
	}

	slog.Info("Email verified", "username", claims.Username)
	return nil
}

func (s *AuthService) sendVerification(user *models.User) error {
	token, err := s.tokens.GenerateVerification(user.Username)
	if err != nil {
		return err
	}
	link := fmt.Sprintf("%s/api/verify-email?token=%s", s.baseURL, token)
	return s.mail.SendVerification(user.Email, link)
}

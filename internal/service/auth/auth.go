// Package auth implements signup and login. Passwords are bcrypt-hashed
// before they reach storage; the plaintext is never persisted or logged.
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pgBooker/internal/lib/jwt"
	"pgBooker/internal/models"
	"pgBooker/internal/storage"

	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials covers both an unknown email and a wrong
// password, so a caller cannot probe which emails are registered.
var ErrInvalidCredentials = errors.New("invalid email or password")

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=UserStore
type UserStore interface {
	SaveUser(ctx context.Context, username, email, passwordHash string, role models.Role) (int64, error)
	UserByEmail(ctx context.Context, email string) (*models.User, error)
}

type Service struct {
	users    UserStore
	secret   string
	tokenTTL time.Duration
}

func New(users UserStore, secret string, tokenTTL time.Duration) *Service {
	return &Service{
		users:    users,
		secret:   secret,
		tokenTTL: tokenTTL,
	}
}

// Signup registers a new account and returns its id. A duplicate email
// surfaces as storage.ErrEmailTaken for the caller to turn into a
// field-specific message.
func (s *Service) Signup(ctx context.Context, username, email, password string, role models.Role) (int64, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return 0, fmt.Errorf("failed to hash password: %w", err)
	}

	id, err := s.users.SaveUser(ctx, username, email, string(hash), role)
	if err != nil {
		if errors.Is(err, storage.ErrEmailTaken) {
			return 0, storage.ErrEmailTaken
		}
		return 0, fmt.Errorf("failed to save user: %w", err)
	}

	return id, nil
}

// Login checks the credentials and returns a signed token for the user.
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.UserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("failed to get user: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := jwt.NewToken(user, s.secret, s.tokenTTL)
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}

	return token, nil
}

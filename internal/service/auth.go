// Package service provides business-logic services for authentication and
// task management, delegating persistence to repository interfaces.
package service

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/atinyakov/taskwarden/internal/apperrors"
	"github.com/atinyakov/taskwarden/internal/auth"
	"github.com/atinyakov/taskwarden/internal/models"
)

// bcryptCost is the fixed work factor used when hashing passwords.
const bcryptCost = 10

// UserRepository defines the persistence operations
// required by the authentication service.
type UserRepository interface {
	// CreateUser creates a new user record. Returns apperrors.ErrConflict
	// if the username is already taken.
	CreateUser(ctx context.Context, username string, passwordHash []byte) error
	// GetByUsername fetches a user by username. Returns
	// apperrors.ErrNotFound if no such user exists.
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

// AuthService implements registration and login by delegating persistence
// to a UserRepository.
type AuthService struct {
	repo UserRepository
	// jwtSecret signs session tokens.
	jwtSecret []byte
	// tokenValidity bounds the lifetime of issued tokens.
	tokenValidity time.Duration
}

// NewAuthService constructs a new AuthService using the provided repository,
// signing secret and token lifetime.
func NewAuthService(repo UserRepository, jwtSecret []byte, tokenValidity time.Duration) *AuthService {
	return &AuthService{repo: repo, jwtSecret: jwtSecret, tokenValidity: tokenValidity}
}

// Register hashes the password and stores the new user.
// Returns apperrors.ErrConflict when the username is already taken.
func (s *AuthService) Register(ctx context.Context, username, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return err
	}
	return s.repo.CreateUser(ctx, username, hash)
}

// Login verifies the credentials and issues a signed session token.
// An unknown username and a wrong password both yield
// apperrors.ErrInvalidCredentials, so the two are indistinguishable
// to the caller.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.repo.GetByUsername(ctx, username)
	if errors.Is(err, apperrors.ErrNotFound) {
		return "", apperrors.ErrInvalidCredentials
	}
	if err != nil {
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)); err != nil {
		return "", apperrors.ErrInvalidCredentials
	}

	return auth.GenerateToken(user.ID, user.Username, s.jwtSecret, s.tokenValidity)
}

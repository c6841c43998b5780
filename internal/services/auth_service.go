package services

import (
	"errors"
	"fmt"

	"kontak/internal/models"
	"kontak/internal/repositories"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles registration, credential checks and resolution of the
// opaque bearer token carried by authenticated requests.
type AuthService struct {
	userRepo repositories.UserRepository
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repositories.UserRepository) *AuthService {
	return &AuthService{
		userRepo: userRepo,
	}
}

// Register creates a new user with a bcrypt-hashed password. The username
// pre-check gives the common case a friendly error; the unique index on
// username catches the concurrent-registration race the check cannot.
func (s *AuthService) Register(username, password, name string) (*models.User, error) {
	if existing, err := s.userRepo.GetByUsername(username); err == nil && existing != nil {
		return nil, ErrUsernameTaken
	} else if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username: username,
		Password: string(hashedPassword),
		Name:     name,
	}
	if err := s.userRepo.Create(user); err != nil {
		// The loser of a concurrent registration race slips past the
		// pre-check and fails on the unique index instead.
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("failed to register user: %w", err)
	}
	return user, nil
}

// Login verifies the credentials and rotates the user's opaque token to a
// fresh random value. An unknown username and a wrong password produce the
// identical error.
func (s *AuthService) Login(username, password string) (*models.User, error) {
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	// A v4 UUID carries 122 random bits, enough for an unguessable bearer secret.
	user.Token = uuid.New().String()
	if err := s.userRepo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to store token: %w", err)
	}
	return user, nil
}

// ResolveToken maps an inbound opaque token to its user by exact match.
// An absent, empty or unknown token is ErrUnauthorized.
func (s *AuthService) ResolveToken(token string) (*models.User, error) {
	if token == "" {
		return nil, ErrUnauthorized
	}
	user, err := s.userRepo.GetByToken(token)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to resolve token: %w", err)
	}
	return user, nil
}

// Logout clears the user's stored token. Logging out twice is a no-op.
func (s *AuthService) Logout(user *models.User) error {
	user.Token = ""
	if err := s.userRepo.Update(user); err != nil {
		return fmt.Errorf("failed to clear token: %w", err)
	}
	return nil
}

// UpdateProfile applies a partial profile update: only the provided fields
// change. A new password is re-hashed before storage.
func (s *AuthService) UpdateProfile(user *models.User, name, password *string) (*models.User, error) {
	if name != nil {
		user.Name = *name
	}
	if password != nil {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.Password = string(hashedPassword)
	}
	if err := s.userRepo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return user, nil
}

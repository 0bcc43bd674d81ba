package service

import (
	"context"
	"errors"
	"time"

	"loginapi/internal/core/domain"
	"loginapi/internal/core/ports"
)

// AuthService implements registration and login over a single user store.
type AuthService struct {
	repo   ports.UserRepository
	hasher ports.PasswordHasher
}

func NewAuthService(repo ports.UserRepository, hasher ports.PasswordHasher) *AuthService {
	return &AuthService{repo: repo, hasher: hasher}
}

// Register enforces email/username uniqueness and persists a new user with a
// hashed password. The pre-insert lookups give precise conflicts for the
// common case; the racy window between lookup and insert is closed by the
// store's unique indexes, which surface as domain.ErrUserExists from the
// repository.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (*domain.User, error) {
	if username == "" || email == "" || password == "" {
		return nil, domain.ErrMissingFields
	}

	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return nil, domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	if _, err := s.repo.FindByUsername(ctx, username); err == nil {
		return nil, domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	return s.repo.Create(ctx, user)
}

// Login verifies the submitted credentials against the stored hash. An
// unknown email and a wrong password both return domain.ErrInvalidCredentials
// so the response cannot be used to probe which emails are registered.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, error) {
	if email == "" || password == "" {
		return nil, domain.ErrMissingFields
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	return user, nil
}

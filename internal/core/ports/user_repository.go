package ports

import (
	"context"

	"loginapi/internal/core/domain"
)

// UserRepository defines the interface for user persistence. Lookups return
// domain.ErrUserNotFound on a miss; Create returns domain.ErrUserExists when
// the store's unique constraints reject the insert.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

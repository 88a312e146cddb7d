package repository

import (
	"context"

	"github.com/stitchmate/stitchmate/internal/domain/model"
)

// UserRepository describes persistence operations with user accounts.
type UserRepository interface {
	Create(ctx context.Context, email, passwordHash string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
}

// ProfileRepository describes persistence of user profiles.
type ProfileRepository interface {
	Create(ctx context.Context, userID int64, fullName string) (*model.Profile, error)
	GetByUserID(ctx context.Context, userID int64) (*model.Profile, error)
}

// RoleRepository describes persistence of role grants.
type RoleRepository interface {
	Grant(ctx context.Context, userID int64, role model.Role) error
	ListByUser(ctx context.Context, userID int64) ([]model.Role, error)
	Has(ctx context.Context, userID int64, role model.Role) (bool, error)
}

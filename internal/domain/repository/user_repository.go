package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/marketplace-api/internal/domain/entity"
	"github.com/sangkips/marketplace-api/internal/domain/enum"
	"github.com/sangkips/marketplace-api/pkg/pagination"
)

// ErrNoRowsAffected is returned by scoped mutations that matched nothing
var ErrNoRowsAffected = errors.New("no rows affected")

// UserRepository defines the interface for user data operations
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	// SetActive returns ErrNoRowsAffected when the user does not exist
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
	List(ctx context.Context, filter *UserFilter) ([]entity.User, int64, error)
	Count(ctx context.Context, filter *UserFilter) (int64, error)
}

// UserFilter contains filtering parameters for user queries
type UserFilter struct {
	Pagination  *pagination.Params
	Role        *enum.UserRole
	IsActive    *bool
	Search      string
	CreatedFrom *time.Time
}

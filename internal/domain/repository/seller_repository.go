package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/sangkips/marketplace-api/internal/domain/entity"
	"github.com/sangkips/marketplace-api/pkg/pagination"
)

// SellerRepository defines the interface for seller profile data operations
type SellerRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.SellerProfile, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*entity.SellerProfile, error)
	// GetByIDs loads several profiles with their users in one query
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.SellerProfile, error)
	Update(ctx context.Context, seller *entity.SellerProfile) error
	// UpdateProfile writes the seller-editable fields of the profile owned by
	// the seller in ctx. It returns ErrNoRowsAffected when nothing matched.
	UpdateProfile(ctx context.Context, seller *entity.SellerProfile) error
	// Delete removes a profile that has no products. It returns
	// ErrNoRowsAffected when the profile is missing or still has products.
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter *SellerFilter) ([]entity.SellerProfile, int64, error)
	Count(ctx context.Context, filter *SellerFilter) (int64, error)
}

// SellerFilter contains filtering parameters for seller profile queries
type SellerFilter struct {
	Pagination *pagination.Params
	IsActive   *bool
	IsVerified *bool
	Search     string
}

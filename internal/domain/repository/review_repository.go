package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/sangkips/marketplace-api/internal/domain/entity"
	"github.com/sangkips/marketplace-api/pkg/pagination"
)

// ReviewRepository defines the interface for review data operations
type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	// List returns reviews newest first with author and product loaded
	List(ctx context.Context, filter *ReviewFilter) ([]entity.Review, int64, error)
	// HasDeliveredPurchase reports whether the user has a delivered order
	// containing the product
	HasDeliveredPurchase(ctx context.Context, userID, productID uuid.UUID) (bool, error)
}

// ReviewFilter contains filtering parameters for review queries
type ReviewFilter struct {
	Pagination *pagination.Params
	ProductID  *uuid.UUID
	UserID     *uuid.UUID
	// SellerID keeps reviews of products owned by the seller
	SellerID *uuid.UUID
}

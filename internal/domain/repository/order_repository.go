package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/sangkips/marketplace-api/internal/domain/entity"
	"github.com/sangkips/marketplace-api/internal/domain/enum"
	"github.com/sangkips/marketplace-api/pkg/pagination"
)

// OrderRepository defines the interface for order data operations
type OrderRepository interface {
	// GetWithItems loads an order with its items and buyer
	GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	// UpdateStatus only touches orders of the seller in ctx
	UpdateStatus(ctx context.Context, id uuid.UUID, status enum.OrderStatus) error
	List(ctx context.Context, filter *OrderFilter) ([]entity.Order, int64, error)
	Count(ctx context.Context, filter *OrderFilter) (int64, error)
}

// OrderFilter contains filtering parameters for order queries
type OrderFilter struct {
	Pagination *pagination.Params
	SellerID   *uuid.UUID
	UserID     *uuid.UUID
	Statuses   []enum.OrderStatus
}

package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/sangkips/marketplace-api/internal/domain/entity"
	"github.com/sangkips/marketplace-api/internal/domain/enum"
	"github.com/sangkips/marketplace-api/pkg/pagination"
	"github.com/shopspring/decimal"
)

// ProductRepository defines the interface for product data operations
type ProductRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Product, error)
	GetBySKU(ctx context.Context, sku string) (*entity.Product, error)
	// Update, Delete and UpdateStock only touch products owned by the seller in ctx.
	// They return ErrNoRowsAffected when nothing matched.
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
	UpdateStock(ctx context.Context, id uuid.UUID, quantity int) error
	HasOrderItems(ctx context.Context, id uuid.UUID) (bool, error)
	List(ctx context.Context, filter *ProductFilter) ([]entity.Product, int64, error)
	Count(ctx context.Context, filter *ProductFilter) (int64, error)
}

// ProductFilter contains filtering parameters for product queries
type ProductFilter struct {
	Pagination *pagination.Params
	SellerID   *uuid.UUID
	CategoryID *uuid.UUID
	Status     *enum.ProductStatus
	Search     string
	MinPrice   *decimal.Decimal
	MaxPrice   *decimal.Decimal
	LowStock   bool
}

// CategoryRepository defines the interface for category data operations
type CategoryRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)
	ListActive(ctx context.Context) ([]entity.Category, error)
}

package request

import (
	"github.com/google/uuid"
	"github.com/sangkips/marketplace-api/internal/application/service"
	"github.com/sangkips/marketplace-api/internal/domain/enum"
	"github.com/sangkips/marketplace-api/pkg/apperror"
	"github.com/shopspring/decimal"
)

// UpdateProductRequest represents a product update request
type UpdateProductRequest struct {
	Name              *string          `json:"name" binding:"omitempty,min=2,max=255"`
	Description       *string          `json:"description"`
	SKU               *string          `json:"sku" binding:"omitempty,min=1,max=100"`
	Status            *string          `json:"status"`
	CategoryID        *uuid.UUID       `json:"category_id"`
	BasePrice         *decimal.Decimal `json:"base_price"`
	SalePrice         *decimal.Decimal `json:"sale_price"`
	TrackInventory    *bool            `json:"track_inventory"`
	LowStockThreshold *int             `json:"low_stock_threshold" binding:"omitempty,min=0"`
}

// ToInput converts the request into the service input
func (r *UpdateProductRequest) ToInput() *service.UpdateProductInput {
	input := &service.UpdateProductInput{
		Name:              r.Name,
		Description:       r.Description,
		SKU:               r.SKU,
		CategoryID:        r.CategoryID,
		BasePrice:         r.BasePrice,
		SalePrice:         r.SalePrice,
		TrackInventory:    r.TrackInventory,
		LowStockThreshold: r.LowStockThreshold,
	}
	if r.Status != nil {
		status := enum.ProductStatus(*r.Status)
		input.Status = &status
	}
	return input
}

// UpdateStockRequest represents a stock level update
type UpdateStockRequest struct {
	Quantity *int `json:"quantity" binding:"required,min=0"`
}

// SellerProductListRequest represents the seller product list query
type SellerProductListRequest struct {
	PageRequest
	Status     string `form:"status"`
	CategoryID string `form:"category_id"`
	Search     string `form:"search"`
	LowStock   bool   `form:"low_stock"`
}

// Query converts the request into a service query
func (r SellerProductListRequest) Query() (service.SellerProductQuery, error) {
	categoryID, err := optionalUUID("category_id", r.CategoryID)
	if err != nil {
		return service.SellerProductQuery{}, err
	}

	query := service.SellerProductQuery{
		Pagination: r.Params(),
		CategoryID: categoryID,
		Search:     r.Search,
		LowStock:   r.LowStock,
	}
	if r.Status != "" {
		status := enum.ProductStatus(r.Status)
		if !status.IsValid() {
			return service.SellerProductQuery{}, apperror.NewFieldError("status", "unknown product status")
		}
		query.Status = &status
	}
	return query, nil
}

// ShopProductListRequest represents the public catalogue query
type ShopProductListRequest struct {
	PageRequest
	CategoryID string `form:"category_id"`
	Search     string `form:"search"`
	MinPrice   string `form:"min_price"`
	MaxPrice   string `form:"max_price"`
}

// Query converts the request into a service query
func (r ShopProductListRequest) Query() (service.ShopProductQuery, error) {
	categoryID, err := optionalUUID("category_id", r.CategoryID)
	if err != nil {
		return service.ShopProductQuery{}, err
	}
	minPrice, err := optionalDecimal("min_price", r.MinPrice)
	if err != nil {
		return service.ShopProductQuery{}, err
	}
	maxPrice, err := optionalDecimal("max_price", r.MaxPrice)
	if err != nil {
		return service.ShopProductQuery{}, err
	}
	return service.ShopProductQuery{
		Pagination: r.Params(),
		CategoryID: categoryID,
		Search:     r.Search,
		MinPrice:   minPrice,
		MaxPrice:   maxPrice,
	}, nil
}

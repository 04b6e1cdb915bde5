package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/sangkips/marketplace-api/internal/domain/access"
	"github.com/sangkips/marketplace-api/internal/domain/entity"
	"github.com/sangkips/marketplace-api/internal/domain/enum"
	"github.com/sangkips/marketplace-api/internal/domain/repository"
	"github.com/sangkips/marketplace-api/pkg/apperror"
	"github.com/sangkips/marketplace-api/pkg/pagination"
	"github.com/sangkips/marketplace-api/pkg/utils"
	"github.com/shopspring/decimal"
)

// CatalogService lets sellers manage their own products
type CatalogService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

// NewCatalogService creates a new catalog service
func NewCatalogService(
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
) *CatalogService {
	return &CatalogService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
	}
}

// SellerProductQuery filters a seller's product list
type SellerProductQuery struct {
	Pagination *pagination.Params
	Status     *enum.ProductStatus
	CategoryID *uuid.UUID
	Search     string
	LowStock   bool
}

// UpdateProductInput holds the product fields a seller may change.
// Nil fields are left untouched.
type UpdateProductInput struct {
	Name              *string
	Description       *string
	SKU               *string
	Status            *enum.ProductStatus
	CategoryID        *uuid.UUID
	BasePrice         *decimal.Decimal
	SalePrice         *decimal.Decimal
	TrackInventory    *bool
	LowStockThreshold *int
}

func productCursor(p entity.Product) string {
	return p.ID.String()
}

// ListMyProducts lists the calling seller's products
func (s *CatalogService) ListMyProducts(ctx context.Context, query SellerProductQuery) (*pagination.Connection[entity.Product], error) {
	_, sellerID, err := access.RequireSeller(ctx)
	if err != nil {
		return nil, err
	}

	params := query.Pagination
	if params == nil {
		params = pagination.DefaultParams()
	}
	params.Validate()

	products, total, err := s.productRepo.List(ctx, &repository.ProductFilter{
		Pagination: params,
		SellerID:   &sellerID,
		Status:     query.Status,
		CategoryID: query.CategoryID,
		Search:     query.Search,
		LowStock:   query.LowStock,
	})
	if err != nil {
		return nil, err
	}
	return pagination.NewConnection(products, params, total, productCursor), nil
}

// ownedProduct loads a product and checks the caller owns it. Products of
// other sellers are reported as not found.
func (s *CatalogService) ownedProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	caller, err := access.Require(ctx, enum.UserRoleSeller)
	if err != nil {
		return nil, err
	}

	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	if err := access.Guard(caller, enum.UserRoleSeller, &product.SellerID).Err("Product"); err != nil {
		return nil, err
	}
	return product, nil
}

// GetMyProduct returns one of the calling seller's products
func (s *CatalogService) GetMyProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	return s.ownedProduct(ctx, id)
}

// UpdateProduct applies input to a product owned by the caller
func (s *CatalogService) UpdateProduct(ctx context.Context, id uuid.UUID, input *UpdateProductInput) (*entity.Product, error) {
	product, err := s.ownedProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	var fieldErrors []apperror.FieldError

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			fieldErrors = append(fieldErrors, apperror.FieldError{Field: "name", Message: "name must not be empty"})
		} else if name != product.Name {
			product.Name = name
			product.Slug = utils.UniqueSlug(name)
		}
	}

	if input.SKU != nil && *input.SKU != product.SKU {
		existing, err := s.productRepo.GetBySKU(ctx, *input.SKU)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != product.ID {
			fieldErrors = append(fieldErrors, apperror.FieldError{Field: "sku", Message: "SKU already exists"})
		} else {
			product.SKU = *input.SKU
		}
	}

	if input.Status != nil {
		if !input.Status.IsValid() {
			fieldErrors = append(fieldErrors, apperror.FieldError{Field: "status", Message: "unknown product status"})
		} else {
			product.Status = *input.Status
		}
	}

	if input.CategoryID != nil && *input.CategoryID != product.CategoryID {
		category, err := s.categoryRepo.GetByID(ctx, *input.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			fieldErrors = append(fieldErrors, apperror.FieldError{Field: "category_id", Message: "category does not exist"})
		} else {
			product.CategoryID = category.ID
			product.Category = category
		}
	}

	if input.BasePrice != nil {
		if input.BasePrice.IsNegative() {
			fieldErrors = append(fieldErrors, apperror.FieldError{Field: "base_price", Message: "base_price must not be negative"})
		} else {
			product.BasePrice = *input.BasePrice
		}
	}

	if input.SalePrice != nil {
		if input.SalePrice.IsNegative() {
			fieldErrors = append(fieldErrors, apperror.FieldError{Field: "sale_price", Message: "sale_price must not be negative"})
		} else {
			product.SalePrice = input.SalePrice
		}
	}

	if input.LowStockThreshold != nil {
		if *input.LowStockThreshold < 0 {
			fieldErrors = append(fieldErrors, apperror.FieldError{Field: "low_stock_threshold", Message: "low_stock_threshold must not be negative"})
		} else {
			product.LowStockThreshold = *input.LowStockThreshold
		}
	}

	if input.Description != nil {
		product.Description = input.Description
	}
	if input.TrackInventory != nil {
		product.TrackInventory = *input.TrackInventory
	}

	if len(fieldErrors) > 0 {
		return nil, apperror.NewValidationError(fieldErrors)
	}

	if err := notFoundIfUntouched(s.productRepo.Update(ctx, product), "Product"); err != nil {
		return nil, err
	}
	return product, nil
}

// DeleteProduct removes a product owned by the caller. Products that were
// ever ordered are kept for order history.
func (s *CatalogService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	product, err := s.ownedProduct(ctx, id)
	if err != nil {
		return err
	}

	ordered, err := s.productRepo.HasOrderItems(ctx, product.ID)
	if err != nil {
		return err
	}
	if ordered {
		return apperror.NewFieldError("id", "Cannot delete product with existing orders")
	}

	return notFoundIfUntouched(s.productRepo.Delete(ctx, product.ID), "Product")
}

// UpdateStock sets the stock level of a product owned by the caller
func (s *CatalogService) UpdateStock(ctx context.Context, id uuid.UUID, quantity int) (*entity.Product, error) {
	if quantity < 0 {
		return nil, apperror.NewFieldError("quantity", "quantity must not be negative")
	}

	product, err := s.ownedProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := notFoundIfUntouched(s.productRepo.UpdateStock(ctx, product.ID, quantity), "Product"); err != nil {
		return nil, err
	}
	product.StockQuantity = quantity
	return product, nil
}

func notFoundIfUntouched(err error, resource string) error {
	if errors.Is(err, repository.ErrNoRowsAffected) {
		return apperror.NewNotFoundError(resource)
	}
	return err
}

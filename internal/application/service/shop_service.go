package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/sangkips/marketplace-api/internal/domain/access"
	"github.com/sangkips/marketplace-api/internal/domain/entity"
	"github.com/sangkips/marketplace-api/internal/domain/enum"
	"github.com/sangkips/marketplace-api/internal/domain/repository"
	"github.com/sangkips/marketplace-api/pkg/apperror"
	"github.com/sangkips/marketplace-api/pkg/pagination"
	"github.com/shopspring/decimal"
)

// ShopService serves the public catalogue
type ShopService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	userRepo     repository.UserRepository
}

// NewShopService creates a new shop service
func NewShopService(
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	userRepo repository.UserRepository,
) *ShopService {
	return &ShopService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		userRepo:     userRepo,
	}
}

// ShopProductQuery filters the public product list
type ShopProductQuery struct {
	Pagination *pagination.Params
	CategoryID *uuid.UUID
	Search     string
	MinPrice   *decimal.Decimal
	MaxPrice   *decimal.Decimal
}

// ListProducts lists active products only
func (s *ShopService) ListProducts(ctx context.Context, query ShopProductQuery) (*pagination.Connection[entity.Product], error) {
	if query.MinPrice != nil && query.MaxPrice != nil && query.MinPrice.GreaterThan(*query.MaxPrice) {
		return nil, apperror.NewFieldError("min_price", "min_price must not exceed max_price")
	}

	params := query.Pagination
	if params == nil {
		params = pagination.DefaultParams()
	}
	params.Validate()

	active := enum.ProductStatusActive
	products, total, err := s.productRepo.List(ctx, &repository.ProductFilter{
		Pagination: params,
		Status:     &active,
		CategoryID: query.CategoryID,
		Search:     query.Search,
		MinPrice:   query.MinPrice,
		MaxPrice:   query.MaxPrice,
	})
	if err != nil {
		return nil, err
	}
	return pagination.NewConnection(products, params, total, productCursor), nil
}

// GetProduct finds an active product by id or slug
func (s *ShopService) GetProduct(ctx context.Context, ref string) (*entity.Product, error) {
	var (
		product *entity.Product
		err     error
	)
	if id, parseErr := uuid.Parse(ref); parseErr == nil {
		product, err = s.productRepo.GetByID(ctx, id)
	} else {
		product, err = s.productRepo.GetBySlug(ctx, ref)
	}
	if err != nil {
		return nil, err
	}
	if product == nil || product.Status != enum.ProductStatusActive {
		return nil, apperror.NewNotFoundError("Product")
	}
	return product, nil
}

// ListCategories lists active categories in display order
func (s *ShopService) ListCategories(ctx context.Context) ([]entity.Category, error) {
	return s.categoryRepo.ListActive(ctx)
}

// Me returns the authenticated caller's account
func (s *ShopService) Me(ctx context.Context) (*entity.User, error) {
	caller, err := access.Require(ctx, access.AnyRole)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, caller.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NewNotFoundError("User")
	}
	return user, nil
}

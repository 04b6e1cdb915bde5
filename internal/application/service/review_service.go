package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/sangkips/marketplace-api/internal/domain/access"
	"github.com/sangkips/marketplace-api/internal/domain/entity"
	"github.com/sangkips/marketplace-api/internal/domain/enum"
	"github.com/sangkips/marketplace-api/internal/domain/repository"
	"github.com/sangkips/marketplace-api/pkg/apperror"
	"github.com/sangkips/marketplace-api/pkg/pagination"
)

const (
	minRating = 1
	maxRating = 5
)

// ReviewService handles product reviews for the shop and seller surfaces
type ReviewService struct {
	reviewRepo  repository.ReviewRepository
	productRepo repository.ProductRepository
}

// NewReviewService creates a new review service
func NewReviewService(reviewRepo repository.ReviewRepository, productRepo repository.ProductRepository) *ReviewService {
	return &ReviewService{
		reviewRepo:  reviewRepo,
		productRepo: productRepo,
	}
}

// CreateReviewInput holds a new review
type CreateReviewInput struct {
	ProductID uuid.UUID
	Rating    int
	Title     *string
	Comment   *string
}

func reviewCursor(r entity.Review) string {
	return r.ID.String()
}

func pageParams(params *pagination.Params) *pagination.Params {
	if params == nil {
		params = pagination.DefaultParams()
	}
	params.Validate()
	return params
}

// CreateReview records the calling customer's review of an active product.
// A customer reviews a product at most once.
func (s *ReviewService) CreateReview(ctx context.Context, input *CreateReviewInput) (*entity.Review, error) {
	caller, err := access.Require(ctx, enum.UserRoleCustomer)
	if err != nil {
		return nil, err
	}
	if input.Rating < minRating || input.Rating > maxRating {
		return nil, apperror.NewFieldError("rating", "Rating must be between 1 and 5")
	}

	product, err := s.productRepo.GetByID(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil || product.Status != enum.ProductStatusActive {
		return nil, apperror.NewNotFoundError("Product")
	}

	_, existing, err := s.reviewRepo.List(ctx, &repository.ReviewFilter{
		Pagination: &pagination.Params{Limit: 1},
		ProductID:  &product.ID,
		UserID:     &caller.UserID,
	})
	if err != nil {
		return nil, err
	}
	if existing > 0 {
		return nil, apperror.NewFieldError("product_id", "You have already reviewed this product")
	}

	purchased, err := s.reviewRepo.HasDeliveredPurchase(ctx, caller.UserID, product.ID)
	if err != nil {
		return nil, err
	}

	review := &entity.Review{
		ProductID:  product.ID,
		UserID:     caller.UserID,
		Rating:     input.Rating,
		Title:      trimmed(input.Title),
		Comment:    trimmed(input.Comment),
		IsVerified: purchased,
	}
	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}
	review.Product = product
	return review, nil
}

// ProductReviews lists the reviews of an active product
func (s *ReviewService) ProductReviews(ctx context.Context, productID uuid.UUID, params *pagination.Params) (*pagination.Connection[entity.Review], error) {
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil || product.Status != enum.ProductStatusActive {
		return nil, apperror.NewNotFoundError("Product")
	}

	params = pageParams(params)
	reviews, total, err := s.reviewRepo.List(ctx, &repository.ReviewFilter{
		Pagination: params,
		ProductID:  &product.ID,
	})
	if err != nil {
		return nil, err
	}
	return pagination.NewConnection(reviews, params, total, reviewCursor), nil
}

// MyProductReviews lists reviews of the calling seller's products,
// optionally for one product only
func (s *ReviewService) MyProductReviews(ctx context.Context, productID *uuid.UUID, params *pagination.Params) (*pagination.Connection[entity.Review], error) {
	_, sellerID, err := access.RequireSeller(ctx)
	if err != nil {
		return nil, err
	}

	params = pageParams(params)
	reviews, total, err := s.reviewRepo.List(ctx, &repository.ReviewFilter{
		Pagination: params,
		ProductID:  productID,
		SellerID:   &sellerID,
	})
	if err != nil {
		return nil, err
	}
	return pagination.NewConnection(reviews, params, total, reviewCursor), nil
}

// trimmed drops surrounding space and turns blank text into nil
func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

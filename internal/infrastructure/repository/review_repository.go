package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/sangkips/marketplace-api/internal/domain/entity"
	"github.com/sangkips/marketplace-api/internal/domain/enum"
	domainRepo "github.com/sangkips/marketplace-api/internal/domain/repository"
	"gorm.io/gorm"
)

type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository creates a new review repository
func NewReviewRepository(db *gorm.DB) domainRepo.ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	return r.db.WithContext(ctx).Omit("User", "Product").Create(review).Error
}

func (r *reviewRepository) filtered(ctx context.Context, filter *domainRepo.ReviewFilter) *gorm.DB {
	query := r.db.WithContext(ctx).Model(&entity.Review{})
	if filter == nil {
		return query
	}

	if filter.ProductID != nil {
		query = query.Where("reviews.product_id = ?", *filter.ProductID)
	}
	if filter.UserID != nil {
		query = query.Where("reviews.user_id = ?", *filter.UserID)
	}
	if filter.SellerID != nil {
		query = query.
			Joins("JOIN products ON products.id = reviews.product_id").
			Where("products.seller_id = ?", *filter.SellerID)
	}
	return query
}

func (r *reviewRepository) List(ctx context.Context, filter *domainRepo.ReviewFilter) ([]entity.Review, int64, error) {
	var reviews []entity.Review
	var total int64

	query := r.filtered(ctx, filter)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Scopes(Paginate(filter.Pagination)).
		Preload("User").
		Preload("Product").
		Order("reviews.created_at DESC").
		Find(&reviews).Error

	return reviews, total, err
}

func (r *reviewRepository) HasDeliveredPurchase(ctx context.Context, userID, productID uuid.UUID) (bool, error) {
	var count int64
	err := r.purchaseQuery(ctx, userID, productID).Count(&count).Error
	return count > 0, err
}

func (r *reviewRepository) purchaseQuery(ctx context.Context, userID, productID uuid.UUID) *gorm.DB {
	return r.db.WithContext(ctx).Model(&entity.OrderItem{}).
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("order_items.product_id = ?", productID).
		Where("orders.user_id = ? AND orders.status = ?", userID, enum.OrderStatusDelivered)
}

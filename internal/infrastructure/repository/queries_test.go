package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/sangkips/marketplace-api/internal/domain/entity"
	"github.com/sangkips/marketplace-api/internal/domain/enum"
	domainRepo "github.com/sangkips/marketplace-api/internal/domain/repository"
	"github.com/sangkips/marketplace-api/pkg/pagination"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestSellerProfileUpdateSQL(t *testing.T) {
	db := dryRunDB(t)
	sellerID := uuid.New()
	profile := &entity.SellerProfile{ID: sellerID, BusinessName: "Acme", IsVerified: false}

	update := func(ctx context.Context) string {
		return db.ToSQL(func(tx *gorm.DB) *gorm.DB {
			return (&sellerRepository{db: tx}).updateProfileQuery(ctx, profile)
		})
	}

	sql := update(callerCtx(enum.UserRoleSeller, &sellerID))
	assert.Contains(t, sql, `UPDATE "seller_profiles" SET`)
	assert.Contains(t, sql, "id = '"+sellerID.String()+"'")
	assert.Contains(t, sql, `"business_name"='Acme'`)
	assert.NotContains(t, sql, "is_verified")
	assert.NotContains(t, sql, "commission_rate")
	assert.NotContains(t, sql, "is_active")

	other := uuid.New()
	assert.Contains(t, update(callerCtx(enum.UserRoleSeller, &other)), "id = '"+other.String()+"'")
	assert.Contains(t, update(context.Background()), "1 = 0")
}

func TestSellerProfileDeleteSQL(t *testing.T) {
	db := dryRunDB(t)
	id := uuid.New()

	sql := db.ToSQL(func(tx *gorm.DB) *gorm.DB {
		return (&sellerRepository{db: tx}).deleteQuery(context.Background(), id)
	})
	assert.Contains(t, sql, `DELETE FROM "seller_profiles"`)
	assert.Contains(t, sql, "id = '"+id.String()+"'")
	assert.Contains(t, sql, "NOT EXISTS (SELECT 1 FROM \"products\" WHERE products.seller_id = seller_profiles.id)")
}

func TestReviewQueriesSQL(t *testing.T) {
	db := dryRunDB(t)
	userID, productID, sellerID := uuid.New(), uuid.New(), uuid.New()

	t.Run("delivered purchase", func(t *testing.T) {
		sql := db.ToSQL(func(tx *gorm.DB) *gorm.DB {
			var count int64
			return (&reviewRepository{db: tx}).purchaseQuery(context.Background(), userID, productID).Count(&count)
		})
		assert.Contains(t, sql, "JOIN orders ON orders.id = order_items.order_id")
		assert.Contains(t, sql, "order_items.product_id = '"+productID.String()+"'")
		assert.Contains(t, sql, "orders.user_id = '"+userID.String()+"'")
		assert.Contains(t, sql, "orders.status = 'DELIVERED'")
	})

	t.Run("seller reviews", func(t *testing.T) {
		filter := &domainRepo.ReviewFilter{Pagination: pagination.DefaultParams(), SellerID: &sellerID}
		sql := db.ToSQL(func(tx *gorm.DB) *gorm.DB {
			return (&reviewRepository{db: tx}).filtered(context.Background(), filter).Find(&[]entity.Review{})
		})
		assert.Contains(t, sql, "JOIN products ON products.id = reviews.product_id")
		assert.Contains(t, sql, "products.seller_id = '"+sellerID.String()+"'")
	})
}

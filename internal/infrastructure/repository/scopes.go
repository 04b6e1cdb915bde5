package repository

import (
	"context"

	"github.com/sangkips/marketplace-api/internal/analytics"
	"github.com/sangkips/marketplace-api/internal/domain/access"
	"github.com/sangkips/marketplace-api/internal/domain/enum"
	"github.com/sangkips/marketplace-api/pkg/pagination"
	"gorm.io/gorm"
)

// SellerScope returns a GORM scope that limits rows to the seller in ctx.
// Admins see every row. Any other caller, or no caller, sees nothing.
func SellerScope(ctx context.Context, column string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		caller, ok := access.CallerFrom(ctx)
		if !ok {
			return db.Where("1 = 0")
		}
		if caller.Role == enum.UserRoleAdmin {
			return db
		}
		if caller.Role != enum.UserRoleSeller || caller.SellerID == nil {
			// Fail-safe: never fall through to an unscoped write
			return db.Where("1 = 0")
		}
		return db.Where(column+" = ?", *caller.SellerID)
	}
}

// WindowScope limits rows to those whose column lies in the closed window
func WindowScope(column string, w analytics.Window) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(column+" >= ? AND "+column+" <= ?", w.Start, w.End)
	}
}

// NotCancelled drops cancelled orders
func NotCancelled(column string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(column+" <> ?", enum.OrderStatusCancelled)
	}
}

// OrderReportScope applies an analytics scope to a query on orders.
// Category and product filters keep orders with at least one matching item.
func OrderReportScope(scope analytics.Scope) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if scope.SellerID != nil {
			db = db.Where("orders.seller_id = ?", *scope.SellerID)
		}
		if scope.CategoryID == nil && scope.ProductID == nil {
			return db
		}
		sub := db.Session(&gorm.Session{NewDB: true}).
			Table("order_items oi").
			Select("1").
			Joins("JOIN products p ON p.id = oi.product_id").
			Where("oi.order_id = orders.id")
		if scope.CategoryID != nil {
			sub = sub.Where("p.category_id = ?", *scope.CategoryID)
		}
		if scope.ProductID != nil {
			sub = sub.Where("oi.product_id = ?", *scope.ProductID)
		}
		return db.Where("EXISTS (?)", sub)
	}
}

// ItemReportScope applies an analytics scope to a query on order_items
// already joined with orders and products.
func ItemReportScope(scope analytics.Scope) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if scope.SellerID != nil {
			db = db.Where("products.seller_id = ?", *scope.SellerID)
		}
		if scope.CategoryID != nil {
			db = db.Where("products.category_id = ?", *scope.CategoryID)
		}
		if scope.ProductID != nil {
			db = db.Where("order_items.product_id = ?", *scope.ProductID)
		}
		return db
	}
}

// Paginate applies offset pagination
func Paginate(params *pagination.Params) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if params == nil {
			params = pagination.DefaultParams()
		}
		params.Validate()
		return db.Offset(params.Offset).Limit(params.Limit)
	}
}

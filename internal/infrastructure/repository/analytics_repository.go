package repository

import (
	"context"
	"fmt"

	"github.com/sangkips/marketplace-api/internal/analytics"
	"github.com/sangkips/marketplace-api/internal/domain/entity"
	"github.com/sangkips/marketplace-api/internal/domain/enum"
	domainRepo "github.com/sangkips/marketplace-api/internal/domain/repository"
	"gorm.io/gorm"
)

type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository creates a new analytics repository
func NewAnalyticsRepository(db *gorm.DB) domainRepo.AnalyticsRepository {
	return &analyticsRepository{db: db}
}

func (r *analyticsRepository) FetchOrders(ctx context.Context, window analytics.Window, scope analytics.Scope) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.db.WithContext(ctx).
		Model(&entity.Order{}).
		Scopes(
			WindowScope("orders.created_at", window),
			NotCancelled("orders.status"),
			OrderReportScope(scope),
		).
		Preload("Items.Product").
		Order("orders.created_at ASC, orders.id ASC").
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("fetch orders: %w", err)
	}
	return orders, nil
}

func (r *analyticsRepository) FetchOrderItems(ctx context.Context, window *analytics.Window, scope analytics.Scope) ([]entity.OrderItem, error) {
	var items []entity.OrderItem
	query := r.db.WithContext(ctx).
		Model(&entity.OrderItem{}).
		Select("order_items.*").
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Joins("JOIN products ON products.id = order_items.product_id").
		Scopes(NotCancelled("orders.status"), ItemReportScope(scope))
	if window != nil {
		query = query.Scopes(WindowScope("orders.created_at", *window))
	}

	err := query.
		Preload("Product.Category").
		Order("orders.created_at ASC, order_items.id ASC").
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("fetch order items: %w", err)
	}
	return items, nil
}

func (r *analyticsRepository) FetchUsers(ctx context.Context, window analytics.Window, role *enum.UserRole) ([]entity.User, error) {
	var users []entity.User
	query := r.db.WithContext(ctx).
		Model(&entity.User{}).
		Scopes(WindowScope("created_at", window))
	if role != nil {
		query = query.Where("role = ?", *role)
	}

	if err := query.Order("created_at ASC").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("fetch users: %w", err)
	}
	return users, nil
}

func (r *analyticsRepository) CountOrdersByStatus(ctx context.Context, window analytics.Window) ([]domainRepo.StatusCount, error) {
	var results []domainRepo.StatusCount
	err := r.db.WithContext(ctx).
		Model(&entity.Order{}).
		Select("status, COUNT(*) AS count").
		Scopes(WindowScope("created_at", window)).
		Group("status").
		Order("status").
		Scan(&results).Error
	if err != nil {
		return nil, fmt.Errorf("count orders by status: %w", err)
	}
	return results, nil
}

func (r *analyticsRepository) CountUsersByRole(ctx context.Context) ([]domainRepo.RoleCount, error) {
	var results []domainRepo.RoleCount
	err := r.db.WithContext(ctx).
		Model(&entity.User{}).
		Select("role, COUNT(*) AS count").
		Group("role").
		Order("role").
		Scan(&results).Error
	if err != nil {
		return nil, fmt.Errorf("count users by role: %w", err)
	}
	return results, nil
}

func (r *analyticsRepository) RecentOrders(ctx context.Context, limit int) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Seller").
		Preload("Items.Product").
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("recent orders: %w", err)
	}
	return orders, nil
}

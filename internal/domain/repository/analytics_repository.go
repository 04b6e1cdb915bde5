package repository

import (
	"context"

	"github.com/sangkips/marketplace-api/internal/analytics"
	"github.com/sangkips/marketplace-api/internal/domain/entity"
	"github.com/sangkips/marketplace-api/internal/domain/enum"
)

// StatusCount is the number of orders in one status
type StatusCount struct {
	Status enum.OrderStatus `json:"status"`
	Count  int64            `json:"count"`
}

// RoleCount is the number of users holding one role
type RoleCount struct {
	Role  enum.UserRole `json:"role"`
	Count int64         `json:"count"`
}

// AnalyticsRepository fetches the records the reporting aggregator folds
type AnalyticsRepository interface {
	// FetchOrders returns non-cancelled orders created inside window that
	// match scope, with items and their products loaded, oldest first.
	FetchOrders(ctx context.Context, window analytics.Window, scope analytics.Scope) ([]entity.Order, error)

	// FetchOrderItems returns items of non-cancelled orders matching scope
	// with product and category loaded. A nil window means all time.
	FetchOrderItems(ctx context.Context, window *analytics.Window, scope analytics.Scope) ([]entity.OrderItem, error)

	// FetchUsers returns users created inside window, optionally by role
	FetchUsers(ctx context.Context, window analytics.Window, role *enum.UserRole) ([]entity.User, error)

	// CountOrdersByStatus counts orders of every status created inside window
	CountOrdersByStatus(ctx context.Context, window analytics.Window) ([]StatusCount, error)

	// CountUsersByRole counts all users per role
	CountUsersByRole(ctx context.Context) ([]RoleCount, error)

	// RecentOrders returns the latest orders of any status
	RecentOrders(ctx context.Context, limit int) ([]entity.Order, error)
}

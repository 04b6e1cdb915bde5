package request

import (
	"github.com/sangkips/marketplace-api/internal/domain/enum"
)

// OrderListRequest represents the seller order list query
type OrderListRequest struct {
	PageRequest
	Status string `form:"status"`
}

// StatusFilter returns the requested status, nil when absent
func (r OrderListRequest) StatusFilter() *enum.OrderStatus {
	if r.Status == "" {
		return nil
	}
	status := enum.OrderStatus(r.Status)
	return &status
}

// UpdateOrderStatusRequest represents an order status change
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

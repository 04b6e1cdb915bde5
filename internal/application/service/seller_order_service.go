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
)

// SellerOrderService serves the orders placed with the calling seller
type SellerOrderService struct {
	orderRepo repository.OrderRepository
}

// NewSellerOrderService creates a new seller order service
func NewSellerOrderService(orderRepo repository.OrderRepository) *SellerOrderService {
	return &SellerOrderService{orderRepo: orderRepo}
}

func orderCursor(o entity.Order) string {
	return o.ID.String()
}

// ListMyOrders lists the caller's orders, newest first
func (s *SellerOrderService) ListMyOrders(ctx context.Context, status *enum.OrderStatus, params *pagination.Params) (*pagination.Connection[entity.Order], error) {
	_, sellerID, err := access.RequireSeller(ctx)
	if err != nil {
		return nil, err
	}
	if status != nil && !status.IsValid() {
		return nil, apperror.NewFieldError("status", "unknown order status")
	}

	if params == nil {
		params = pagination.DefaultParams()
	}
	params.Validate()

	filter := &repository.OrderFilter{Pagination: params, SellerID: &sellerID}
	if status != nil {
		filter.Statuses = []enum.OrderStatus{*status}
	}

	orders, total, err := s.orderRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return pagination.NewConnection(orders, params, total, orderCursor), nil
}

func (s *SellerOrderService) ownedOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	caller, err := access.Require(ctx, enum.UserRoleSeller)
	if err != nil {
		return nil, err
	}

	order, err := s.orderRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}
	if err := access.Guard(caller, enum.UserRoleSeller, &order.SellerID).Err("Order"); err != nil {
		return nil, err
	}
	return order, nil
}

// GetMyOrder returns one of the caller's orders
func (s *SellerOrderService) GetMyOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	return s.ownedOrder(ctx, id)
}

// UpdateOrderStatus moves one of the caller's orders to status
func (s *SellerOrderService) UpdateOrderStatus(ctx context.Context, id uuid.UUID, status enum.OrderStatus) (*entity.Order, error) {
	if !status.IsValid() {
		return nil, apperror.NewFieldError("status", "unknown order status")
	}

	order, err := s.ownedOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := notFoundIfUntouched(s.orderRepo.UpdateStatus(ctx, order.ID, status), "Order"); err != nil {
		return nil, err
	}
	order.Status = status
	return order, nil
}

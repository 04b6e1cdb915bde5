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

// ShopOrderService serves a customer's own orders
type ShopOrderService struct {
	orderRepo repository.OrderRepository
}

// NewShopOrderService creates a new shop order service
func NewShopOrderService(orderRepo repository.OrderRepository) *ShopOrderService {
	return &ShopOrderService{orderRepo: orderRepo}
}

// MyOrders lists the calling customer's orders, newest first
func (s *ShopOrderService) MyOrders(ctx context.Context, params *pagination.Params) (*pagination.Connection[entity.Order], error) {
	caller, err := access.Require(ctx, enum.UserRoleCustomer)
	if err != nil {
		return nil, err
	}

	if params == nil {
		params = pagination.DefaultParams()
	}
	params.Validate()

	orders, total, err := s.orderRepo.List(ctx, &repository.OrderFilter{
		Pagination: params,
		UserID:     &caller.UserID,
	})
	if err != nil {
		return nil, err
	}
	return pagination.NewConnection(orders, params, total, orderCursor), nil
}

// MyOrder returns one of the calling customer's orders. Orders of other
// customers are reported as not found.
func (s *ShopOrderService) MyOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	caller, err := access.Require(ctx, enum.UserRoleCustomer)
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
	if err := access.Guard(caller, enum.UserRoleCustomer, &order.UserID).Err("Order"); err != nil {
		return nil, err
	}
	return order, nil
}

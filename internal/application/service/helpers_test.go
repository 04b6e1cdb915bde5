package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/marketplace-api/internal/domain/access"
	"github.com/sangkips/marketplace-api/internal/domain/entity"
	"github.com/sangkips/marketplace-api/internal/domain/enum"
	"github.com/sangkips/marketplace-api/pkg/apperror"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertMoney(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.Truef(t, money(want).Equal(got), "want %s, got %s", want, got)
}

func assertKind(t *testing.T, want apperror.Kind, err error) {
	t.Helper()
	if assert.Error(t, err) {
		assert.Equal(t, want, apperror.KindOf(err))
	}
}

func adminCtx() context.Context {
	return access.WithCaller(context.Background(), &access.Caller{
		UserID: uuid.New(),
		Email:  "admin@example.com",
		Role:   enum.UserRoleAdmin,
	})
}

func sellerCtx(sellerID uuid.UUID) context.Context {
	return access.WithCaller(context.Background(), &access.Caller{
		UserID:   uuid.New(),
		Email:    "seller@example.com",
		Role:     enum.UserRoleSeller,
		SellerID: &sellerID,
	})
}

func sellerWithoutProfileCtx() context.Context {
	return access.WithCaller(context.Background(), &access.Caller{
		UserID: uuid.New(),
		Email:  "new-seller@example.com",
		Role:   enum.UserRoleSeller,
	})
}

func customerCtx() context.Context {
	return customerCtxFor(uuid.New())
}

func customerCtxFor(userID uuid.UUID) context.Context {
	return access.WithCaller(context.Background(), &access.Caller{
		UserID: userID,
		Email:  "customer@example.com",
		Role:   enum.UserRoleCustomer,
	})
}

func newOrder(seller uuid.UUID, total string, status enum.OrderStatus, at time.Time) entity.Order {
	return entity.Order{
		ID:          uuid.New(),
		SellerID:    seller,
		UserID:      uuid.New(),
		Status:      status,
		TotalAmount: money(total),
		CreatedAt:   at,
	}
}

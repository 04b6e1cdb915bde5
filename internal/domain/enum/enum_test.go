package enum

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatus(t *testing.T) {
	assert.True(t, OrderStatusShipped.IsValid())
	assert.False(t, OrderStatus("LOST").IsValid())
	assert.False(t, OrderStatusCancelled.CountsTowardRevenue())
	assert.True(t, OrderStatusRefunded.CountsTowardRevenue())
}

func TestUserRoleAndProductStatus(t *testing.T) {
	assert.True(t, UserRoleAdmin.IsValid())
	assert.False(t, UserRole("root").IsValid())
	assert.True(t, ProductStatusOutOfStock.IsValid())
	assert.False(t, ProductStatus("ARCHIVED").IsValid())
}

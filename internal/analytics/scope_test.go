package analytics

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/marketplace-api/internal/domain/entity"
	"github.com/sangkips/marketplace-api/internal/domain/enum"
	"github.com/stretchr/testify/assert"
)

func TestScopeMatchesOrder(t *testing.T) {
	sellerA, sellerB := uuid.New(), uuid.New()
	rings, chains := uuid.New(), uuid.New()
	ring := &entity.Product{ID: uuid.New(), SellerID: sellerA, CategoryID: rings}
	chain := &entity.Product{ID: uuid.New(), SellerID: sellerA, CategoryID: chains}
	at := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

	mixed := order(sellerA, uuid.New(), "80.00", enum.OrderStatusDelivered, at)
	mixed.Items = []entity.OrderItem{
		{ProductID: ring.ID, Product: ring},
		{ProductID: chain.ID, Product: chain},
	}
	chainsOnly := order(sellerA, uuid.New(), "20.00", enum.OrderStatusDelivered, at)
	chainsOnly.Items = []entity.OrderItem{{ProductID: chain.ID, Product: chain}}
	other := order(sellerB, uuid.New(), "99.00", enum.OrderStatusDelivered, at)

	assert.True(t, Global().MatchesOrder(&other))
	assert.True(t, ForSeller(sellerA).MatchesOrder(&mixed))
	assert.False(t, ForSeller(sellerA).MatchesOrder(&other))

	byRings := ForSeller(sellerA).WithCategory(&rings)
	assert.True(t, byRings.MatchesOrder(&mixed))
	assert.False(t, byRings.MatchesOrder(&chainsOnly))

	byChain := Global().WithProduct(&chain.ID)
	assert.True(t, byChain.MatchesOrder(&chainsOnly))
	assert.False(t, byChain.MatchesOrder(&other))

	filtered := byRings.FilterOrders([]entity.Order{mixed, chainsOnly, other})
	assert.Len(t, filtered, 1)
	assert.Equal(t, mixed.ID, filtered[0].ID)
}

func TestScopeFilterItems(t *testing.T) {
	sellerA, sellerB := uuid.New(), uuid.New()
	mine := &entity.Product{ID: uuid.New(), SellerID: sellerA}
	theirs := &entity.Product{ID: uuid.New(), SellerID: sellerB}
	items := []entity.OrderItem{
		{ProductID: mine.ID, Product: mine},
		{ProductID: theirs.ID, Product: theirs},
		{ProductID: mine.ID, Product: mine},
	}

	assert.Len(t, Global().FilterItems(items), 3)
	assert.Len(t, ForSeller(sellerA).FilterItems(items), 2)
	assert.Len(t, ForSeller(sellerB).FilterItems(items), 1)
	assert.True(t, Global().IsGlobal())
	assert.False(t, ForSeller(sellerA).IsGlobal())
}

package analytics

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/marketplace-api/internal/domain/entity"
	"github.com/sangkips/marketplace-api/internal/domain/enum"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertMoney(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.Truef(t, money(want).Equal(got), "want %s, got %s", want, got)
}

func order(seller, user uuid.UUID, total string, status enum.OrderStatus, at time.Time) entity.Order {
	return entity.Order{
		ID:          uuid.New(),
		SellerID:    seller,
		UserID:      user,
		Status:      status,
		TotalAmount: money(total),
		CreatedAt:   at,
	}
}

func TestRevenueTotalSkipsCancelled(t *testing.T) {
	seller, user := uuid.New(), uuid.New()
	at := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	orders := []entity.Order{
		order(seller, user, "100.00", enum.OrderStatusDelivered, at),
		order(seller, user, "49.99", enum.OrderStatusPending, at),
		order(seller, user, "500.00", enum.OrderStatusCancelled, at),
		order(seller, user, "0.01", enum.OrderStatusRefunded, at),
	}

	assertMoney(t, "150.00", RevenueTotal(orders))
	assert.Equal(t, 3, OrderCount(orders))
}

func TestRevenueTotalEmpty(t *testing.T) {
	assert.True(t, RevenueTotal(nil).IsZero())
	assert.Equal(t, 0, OrderCount(nil))
}

func TestAverageOrderValue(t *testing.T) {
	seller, user := uuid.New(), uuid.New()
	at := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	assert.True(t, AverageOrderValue(nil).IsZero())
	assert.True(t, AverageOrderValue([]entity.Order{
		order(seller, user, "80.00", enum.OrderStatusCancelled, at),
	}).IsZero())

	orders := []entity.Order{
		order(seller, user, "10.00", enum.OrderStatusDelivered, at),
		order(seller, user, "10.00", enum.OrderStatusDelivered, at),
		order(seller, user, "10.01", enum.OrderStatusDelivered, at),
	}
	assertMoney(t, "10.00", AverageOrderValue(orders))

	orders = append(orders, order(seller, user, "0.03", enum.OrderStatusShipped, at))
	assertMoney(t, "7.51", AverageOrderValue(orders))
}

func TestGrowthPercent(t *testing.T) {
	assert.Equal(t, 0.0, GrowthPercent(decimal.Zero, decimal.Zero))
	assert.Equal(t, 0.0, GrowthPercent(money("75"), decimal.Zero))
	assert.Equal(t, 50.0, GrowthPercent(money("150"), money("100")))
	assert.Equal(t, -50.0, GrowthPercent(money("50"), money("100")))
	assert.Equal(t, 33.33, GrowthPercent(money("4"), money("3")))

	assert.Equal(t, 0.0, GrowthPercentCount(0, 0))
	assert.Equal(t, 100.0, GrowthPercentCount(4, 2))
	assert.Equal(t, -100.0, GrowthPercentCount(0, 7))
}

func TestConversionRate(t *testing.T) {
	assert.Equal(t, 0.0, ConversionRate(12, 0))
	assert.Equal(t, 25.0, ConversionRate(5, 20))
	assert.Equal(t, 150.0, ConversionRate(3, 2))
}

func TestGroupByDay(t *testing.T) {
	seller := uuid.New()
	alice, bob := uuid.New(), uuid.New()
	day1 := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	day2 := time.Date(2024, 5, 2, 23, 59, 0, 0, time.UTC)

	orders := []entity.Order{
		order(seller, alice, "20.00", enum.OrderStatusDelivered, day2),
		order(seller, alice, "10.00", enum.OrderStatusDelivered, day1),
		order(seller, alice, "5.50", enum.OrderStatusPending, day1),
		order(seller, bob, "4.50", enum.OrderStatusShipped, day1),
		order(seller, bob, "999.00", enum.OrderStatusCancelled, day1),
	}

	days := GroupByDay(orders)

	require.Len(t, days, 2)
	assert.Equal(t, "2024-05-01", days[0].Date)
	assertMoney(t, "20.00", days[0].Revenue)
	assert.Equal(t, 3, days[0].Orders)
	assert.Equal(t, 2, days[0].Customers)

	assert.Equal(t, "2024-05-02", days[1].Date)
	assertMoney(t, "20.00", days[1].Revenue)
	assert.Equal(t, 1, days[1].Orders)
	assert.Equal(t, 1, days[1].Customers)

	sum := decimal.Zero
	for _, d := range days {
		sum = sum.Add(d.Revenue)
	}
	assert.True(t, sum.Equal(RevenueTotal(orders)))
}

func TestGroupByDayUsesUTCDate(t *testing.T) {
	nairobi := time.FixedZone("EAT", 3*60*60)
	// 01:30 local on the 2nd is still the 1st in UTC.
	at := time.Date(2024, 5, 2, 1, 30, 0, 0, nairobi)

	days := GroupByDay([]entity.Order{order(uuid.New(), uuid.New(), "1.00", enum.OrderStatusPending, at)})

	require.Len(t, days, 1)
	assert.Equal(t, "2024-05-01", days[0].Date)
}

func TestGroupByCategory(t *testing.T) {
	rings := &entity.Category{ID: uuid.New(), Name: "Rings"}
	chains := &entity.Category{ID: uuid.New(), Name: "Chains"}
	ring := &entity.Product{ID: uuid.New(), CategoryID: rings.ID, Category: rings}
	band := &entity.Product{ID: uuid.New(), CategoryID: rings.ID, Category: rings}
	chain := &entity.Product{ID: uuid.New(), CategoryID: chains.ID, Category: chains}
	o1, o2 := uuid.New(), uuid.New()

	items := []entity.OrderItem{
		{OrderID: o1, ProductID: chain.ID, Product: chain, Quantity: 1, TotalPrice: money("30.00")},
		{OrderID: o1, ProductID: ring.ID, Product: ring, Quantity: 2, TotalPrice: money("200.00")},
		{OrderID: o2, ProductID: ring.ID, Product: ring, Quantity: 1, TotalPrice: money("100.00")},
		{OrderID: o2, ProductID: band.ID, Product: band, Quantity: 1, TotalPrice: money("55.00")},
		{OrderID: uuid.New(), ProductID: band.ID, Product: band, Quantity: 1, TotalPrice: money("70.00"),
			Order: &entity.Order{Status: enum.OrderStatusCancelled}},
	}

	groups := GroupByCategory(items)

	require.Len(t, groups, 2)
	assert.Equal(t, chains.ID, groups[0].CategoryID)
	assertMoney(t, "30.00", groups[0].Revenue)
	assert.Equal(t, 1, groups[0].Orders)
	assert.Equal(t, 1, groups[0].Products)

	assert.Equal(t, rings.ID, groups[1].CategoryID)
	assert.Equal(t, "Rings", groups[1].Category.Name)
	assertMoney(t, "355.00", groups[1].Revenue)
	assert.Equal(t, 2, groups[1].Orders)
	assert.Equal(t, 2, groups[1].Products)
}

func TestGroupByProductAndSeller(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	at := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	items := []entity.OrderItem{
		{ProductID: a, Quantity: 2, TotalPrice: money("20.00")},
		{ProductID: b, Quantity: 1, TotalPrice: money("50.00")},
		{ProductID: a, Quantity: 3, TotalPrice: money("30.00")},
	}

	products := GroupByProduct(items)
	require.Len(t, products, 2)
	assert.Equal(t, a, products[0].ProductID)
	assert.Equal(t, 5, products[0].TotalSold)
	assertMoney(t, "50.00", products[0].TotalRevenue)

	s1, s2 := uuid.New(), uuid.New()
	sellers := GroupBySeller([]entity.Order{
		order(s1, uuid.New(), "10.00", enum.OrderStatusDelivered, at),
		order(s2, uuid.New(), "40.00", enum.OrderStatusDelivered, at),
		order(s1, uuid.New(), "15.00", enum.OrderStatusConfirmed, at),
		order(s2, uuid.New(), "90.00", enum.OrderStatusCancelled, at),
	})
	require.Len(t, sellers, 2)
	assert.Equal(t, s1, sellers[0].SellerID)
	assertMoney(t, "25.00", sellers[0].TotalRevenue)
	assert.Equal(t, 2, sellers[0].TotalOrders)
	assert.Equal(t, 1, sellers[1].TotalOrders)
}

func TestGroupUsersByDay(t *testing.T) {
	d1 := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	d2 := time.Date(2024, 5, 3, 8, 0, 0, 0, time.UTC)
	users := []entity.User{
		{Role: enum.UserRoleSeller, CreatedAt: d2},
		{Role: enum.UserRoleCustomer, CreatedAt: d1},
		{Role: enum.UserRoleCustomer, CreatedAt: d1},
		{Role: enum.UserRoleAdmin, CreatedAt: d2},
	}

	growth := GroupUsersByDay(users)

	require.Len(t, growth, 2)
	assert.Equal(t, UserGrowth{Date: "2024-05-01", Customers: 2}, growth[0])
	assert.Equal(t, UserGrowth{Date: "2024-05-03", Sellers: 1}, growth[1])
}

func TestTopN(t *testing.T) {
	type stat struct {
		name    string
		revenue decimal.Decimal
	}
	byRevenue := func(s stat) decimal.Decimal { return s.revenue }
	groups := []stat{
		{"a", money("10")},
		{"b", money("30")},
		{"c", money("20")},
		{"d", money("30")},
		{"e", money("10")},
	}

	top := TopN(groups, 3, byRevenue)
	require.Len(t, top, 3)
	assert.Equal(t, []string{"b", "d", "c"}, []string{top[0].name, top[1].name, top[2].name})

	all := TopN(groups, 10, byRevenue)
	require.Len(t, all, len(groups))
	assert.Equal(t, "a", all[3].name)
	assert.Equal(t, "e", all[4].name)
	for i := 1; i < len(all); i++ {
		assert.False(t, all[i].revenue.GreaterThan(all[i-1].revenue))
	}

	assert.Empty(t, TopN(groups, 0, byRevenue))
	assert.Empty(t, TopN(groups, -1, byRevenue))
	assert.Empty(t, TopN([]stat{}, 5, byRevenue))
	assert.Equal(t, "a", groups[0].name, "input must stay untouched")
}

func TestSummarizeRespectsScope(t *testing.T) {
	sellerA, sellerB := uuid.New(), uuid.New()
	at := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	orders := []entity.Order{
		order(sellerA, uuid.New(), "100.00", enum.OrderStatusDelivered, at),
		order(sellerB, uuid.New(), "900.00", enum.OrderStatusDelivered, at),
		order(sellerA, uuid.New(), "50.00", enum.OrderStatusPending, at.Add(24*time.Hour)),
	}

	s := Summarize(orders, ForSeller(sellerA))

	assertMoney(t, "150.00", s.Revenue)
	assert.Equal(t, 2, s.Orders)
	assertMoney(t, "75.00", s.AverageOrderValue)
	assert.Len(t, s.Daily, 2)

	global := Summarize(orders, Global())
	assertMoney(t, "1050.00", global.Revenue)
}

func TestSummarizeCategoryScopeCountsMatchingItemsOnly(t *testing.T) {
	seller := uuid.New()
	catA, catB := uuid.New(), uuid.New()
	at := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

	mixed := order(seller, uuid.New(), "1000.00", enum.OrderStatusDelivered, at)
	mixed.Items = []entity.OrderItem{
		{ID: uuid.New(), OrderID: mixed.ID, ProductID: uuid.New(), TotalPrice: money("10.00"),
			Product: &entity.Product{SellerID: seller, CategoryID: catA}},
		{ID: uuid.New(), OrderID: mixed.ID, ProductID: uuid.New(), TotalPrice: money("990.00"),
			Product: &entity.Product{SellerID: seller, CategoryID: catB}},
	}
	onlyB := order(seller, uuid.New(), "40.00", enum.OrderStatusDelivered, at)
	onlyB.Items = []entity.OrderItem{
		{ID: uuid.New(), OrderID: onlyB.ID, ProductID: uuid.New(), TotalPrice: money("40.00"),
			Product: &entity.Product{SellerID: seller, CategoryID: catB}},
	}
	orders := []entity.Order{mixed, onlyB}

	s := Summarize(orders, ForSeller(seller).WithCategory(&catA))
	assertMoney(t, "10.00", s.Revenue)
	assert.Equal(t, 1, s.Orders)
	assertMoney(t, "10.00", s.AverageOrderValue)
	require.Len(t, s.Daily, 1)
	assertMoney(t, "10.00", s.Daily[0].Revenue)

	s = Summarize(orders, ForSeller(seller).WithCategory(&catB))
	assertMoney(t, "1030.00", s.Revenue)
	assert.Equal(t, 2, s.Orders)

	product := mixed.Items[1].ProductID
	s = Summarize(orders, ForSeller(seller).WithProduct(&product))
	assertMoney(t, "990.00", s.Revenue)

	unscoped := Summarize(orders, ForSeller(seller))
	assertMoney(t, "1040.00", unscoped.Revenue)
	assertMoney(t, "1000.00", orders[0].TotalAmount)
}

package analytics

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/marketplace-api/internal/domain/entity"
	"github.com/sangkips/marketplace-api/internal/domain/enum"
	"github.com/shopspring/decimal"
)

// DayLayout is the format of day keys. Days are always UTC calendar dates.
const DayLayout = "2006-01-02"

var hundred = decimal.NewFromInt(100)

// DayKey returns the UTC calendar date of t.
func DayKey(t time.Time) string {
	return t.UTC().Format(DayLayout)
}

// DailySales is the sales volume of a single UTC day
type DailySales struct {
	Date      string          `json:"date"`
	Revenue   decimal.Decimal `json:"revenue"`
	Orders    int             `json:"orders"`
	Customers int             `json:"customers"`
}

// CategorySales is the sales volume attributed to one category
type CategorySales struct {
	CategoryID uuid.UUID        `json:"category_id"`
	Category   *entity.Category `json:"category,omitempty"`
	Revenue    decimal.Decimal  `json:"revenue"`
	Orders     int              `json:"orders"`
	Products   int              `json:"products"`
}

// ProductSales is the sales volume of one product
type ProductSales struct {
	ProductID    uuid.UUID       `json:"product_id"`
	Product      *entity.Product `json:"product,omitempty"`
	TotalSold    int             `json:"total_sold"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
}

// SellerSales is the sales volume of one seller
type SellerSales struct {
	SellerID     uuid.UUID             `json:"seller_id"`
	Seller       *entity.SellerProfile `json:"seller,omitempty"`
	TotalRevenue decimal.Decimal       `json:"total_revenue"`
	TotalOrders  int                   `json:"total_orders"`
}

// UserGrowth is the number of sign-ups of a single UTC day
type UserGrowth struct {
	Date      string `json:"date"`
	Customers int    `json:"customers"`
	Sellers   int    `json:"sellers"`
}

// Summary holds the metrics shared by the admin and seller reports
type Summary struct {
	Revenue           decimal.Decimal `json:"revenue"`
	Orders            int             `json:"orders"`
	AverageOrderValue decimal.Decimal `json:"average_order_value"`
	Daily             []DailySales    `json:"daily"`
}

func counts(o *entity.Order) bool {
	return o.Status.CountsTowardRevenue()
}

func itemCounts(item *entity.OrderItem) bool {
	return item.Order == nil || item.Order.Status.CountsTowardRevenue()
}

// RevenueTotal sums TotalAmount over orders, skipping cancelled ones.
func RevenueTotal(orders []entity.Order) decimal.Decimal {
	total := decimal.Zero
	for i := range orders {
		if counts(&orders[i]) {
			total = total.Add(orders[i].TotalAmount)
		}
	}
	return total
}

// OrderCount counts the orders that contribute to revenue.
func OrderCount(orders []entity.Order) int {
	n := 0
	for i := range orders {
		if counts(&orders[i]) {
			n++
		}
	}
	return n
}

// AverageOrderValue is revenue per order rounded to cents, 0 for no orders.
func AverageOrderValue(orders []entity.Order) decimal.Decimal {
	n := OrderCount(orders)
	if n == 0 {
		return decimal.Zero
	}
	return RevenueTotal(orders).Div(decimal.NewFromInt(int64(n))).Round(2)
}

// GrowthPercent returns (current - previous) / previous * 100, or 0 when
// previous is zero.
func GrowthPercent(current, previous decimal.Decimal) float64 {
	if previous.IsZero() {
		return 0
	}
	return current.Sub(previous).Div(previous).Mul(hundred).Round(2).InexactFloat64()
}

// GrowthPercentCount is GrowthPercent for counts.
func GrowthPercentCount(current, previous int) float64 {
	return GrowthPercent(decimal.NewFromInt(int64(current)), decimal.NewFromInt(int64(previous)))
}

// ConversionRate returns orders / customers * 100, or 0 without customers.
func ConversionRate(orders int, customers int64) float64 {
	if customers == 0 {
		return 0
	}
	return decimal.NewFromInt(int64(orders)).
		Div(decimal.NewFromInt(customers)).
		Mul(hundred).
		Round(2).
		InexactFloat64()
}

// GroupByDay buckets orders by the UTC date of their creation, ascending.
func GroupByDay(orders []entity.Order) []DailySales {
	buckets := make(map[string]*DailySales)
	customers := make(map[string]map[uuid.UUID]struct{})
	for i := range orders {
		o := &orders[i]
		if !counts(o) {
			continue
		}
		key := DayKey(o.CreatedAt)
		day, ok := buckets[key]
		if !ok {
			day = &DailySales{Date: key, Revenue: decimal.Zero}
			buckets[key] = day
			customers[key] = make(map[uuid.UUID]struct{})
		}
		day.Revenue = day.Revenue.Add(o.TotalAmount)
		day.Orders++
		customers[key][o.UserID] = struct{}{}
	}

	out := make([]DailySales, 0, len(buckets))
	for key, day := range buckets {
		day.Customers = len(customers[key])
		out = append(out, *day)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// GroupByCategory attributes each item's TotalPrice to its product's
// category. Items need Product loaded. Groups keep first-seen order.
func GroupByCategory(items []entity.OrderItem) []CategorySales {
	index := make(map[uuid.UUID]int)
	orders := make(map[uuid.UUID]map[uuid.UUID]struct{})
	products := make(map[uuid.UUID]map[uuid.UUID]struct{})
	var out []CategorySales

	for i := range items {
		item := &items[i]
		if item.Product == nil || !itemCounts(item) {
			continue
		}
		categoryID := item.Product.CategoryID
		idx, ok := index[categoryID]
		if !ok {
			idx = len(out)
			index[categoryID] = idx
			out = append(out, CategorySales{
				CategoryID: categoryID,
				Category:   item.Product.Category,
				Revenue:    decimal.Zero,
			})
			orders[categoryID] = make(map[uuid.UUID]struct{})
			products[categoryID] = make(map[uuid.UUID]struct{})
		}
		out[idx].Revenue = out[idx].Revenue.Add(item.TotalPrice)
		orders[categoryID][item.OrderID] = struct{}{}
		products[categoryID][item.ProductID] = struct{}{}
	}

	for i := range out {
		out[i].Orders = len(orders[out[i].CategoryID])
		out[i].Products = len(products[out[i].CategoryID])
	}
	return out
}

// GroupByProduct totals quantity and revenue per product in first-seen order.
func GroupByProduct(items []entity.OrderItem) []ProductSales {
	index := make(map[uuid.UUID]int)
	var out []ProductSales

	for i := range items {
		item := &items[i]
		if !itemCounts(item) {
			continue
		}
		idx, ok := index[item.ProductID]
		if !ok {
			idx = len(out)
			index[item.ProductID] = idx
			out = append(out, ProductSales{ProductID: item.ProductID, TotalRevenue: decimal.Zero})
		}
		if item.Product != nil {
			out[idx].Product = item.Product
		}
		out[idx].TotalSold += item.Quantity
		out[idx].TotalRevenue = out[idx].TotalRevenue.Add(item.TotalPrice)
	}
	return out
}

// GroupBySeller totals revenue and order count per seller in first-seen order.
func GroupBySeller(orders []entity.Order) []SellerSales {
	index := make(map[uuid.UUID]int)
	var out []SellerSales

	for i := range orders {
		o := &orders[i]
		if !counts(o) {
			continue
		}
		idx, ok := index[o.SellerID]
		if !ok {
			idx = len(out)
			index[o.SellerID] = idx
			out = append(out, SellerSales{SellerID: o.SellerID, Seller: o.Seller, TotalRevenue: decimal.Zero})
		}
		out[idx].TotalRevenue = out[idx].TotalRevenue.Add(o.TotalAmount)
		out[idx].TotalOrders++
	}
	return out
}

// GroupUsersByDay counts customer and seller sign-ups per UTC day, ascending.
func GroupUsersByDay(users []entity.User) []UserGrowth {
	buckets := make(map[string]*UserGrowth)
	for i := range users {
		key := DayKey(users[i].CreatedAt)
		day, ok := buckets[key]
		if !ok {
			day = &UserGrowth{Date: key}
			buckets[key] = day
		}
		switch users[i].Role {
		case enum.UserRoleCustomer:
			day.Customers++
		case enum.UserRoleSeller:
			day.Sellers++
		}
	}

	out := make([]UserGrowth, 0, len(buckets))
	for _, day := range buckets {
		out = append(out, *day)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// TopN returns the n groups with the highest key, descending. Ties keep
// their input order. The input slice is not modified.
func TopN[T any](groups []T, n int, key func(T) decimal.Decimal) []T {
	if n <= 0 {
		return []T{}
	}
	sorted := make([]T, len(groups))
	copy(sorted, groups)
	sort.SliceStable(sorted, func(i, j int) bool {
		return key(sorted[i]).GreaterThan(key(sorted[j]))
	})
	if n < len(sorted) {
		sorted = sorted[:n]
	}
	return sorted
}

// Summarize computes the shared report metrics for the orders inside scope.
// Category and product scopes count only the revenue of matching items.
func Summarize(orders []entity.Order, scope Scope) Summary {
	scoped := scope.Attribute(orders)
	return Summary{
		Revenue:           RevenueTotal(scoped),
		Orders:            OrderCount(scoped),
		AverageOrderValue: AverageOrderValue(scoped),
		Daily:             GroupByDay(scoped),
	}
}

package analytics

import (
	"github.com/google/uuid"
	"github.com/sangkips/marketplace-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// Scope narrows an aggregation to one seller, category or product.
// The zero value is the global scope.
type Scope struct {
	SellerID   *uuid.UUID
	CategoryID *uuid.UUID
	ProductID  *uuid.UUID
}

// Global returns the unrestricted scope used by the admin surface.
func Global() Scope {
	return Scope{}
}

// ForSeller returns a scope limited to a single seller.
func ForSeller(sellerID uuid.UUID) Scope {
	return Scope{SellerID: &sellerID}
}

// WithCategory returns a copy of s also limited to a category.
func (s Scope) WithCategory(categoryID *uuid.UUID) Scope {
	s.CategoryID = categoryID
	return s
}

// WithProduct returns a copy of s also limited to a product.
func (s Scope) WithProduct(productID *uuid.UUID) Scope {
	s.ProductID = productID
	return s
}

// IsGlobal reports whether s places no restriction at all.
func (s Scope) IsGlobal() bool {
	return s.SellerID == nil && s.CategoryID == nil && s.ProductID == nil
}

func (s Scope) restrictsItems() bool {
	return s.CategoryID != nil || s.ProductID != nil
}

// MatchesItem reports whether an order item falls inside the scope.
// Category matching needs item.Product to be loaded.
func (s Scope) MatchesItem(item *entity.OrderItem) bool {
	if s.ProductID != nil && item.ProductID != *s.ProductID {
		return false
	}
	if s.SellerID != nil && item.Product != nil && item.Product.SellerID != *s.SellerID {
		return false
	}
	if s.CategoryID != nil {
		if item.Product == nil || item.Product.CategoryID != *s.CategoryID {
			return false
		}
	}
	return true
}

// MatchesOrder reports whether an order participates in a scoped aggregation.
// With a category or product filter, at least one of its items must match.
func (s Scope) MatchesOrder(order *entity.Order) bool {
	if s.SellerID != nil && order.SellerID != *s.SellerID {
		return false
	}
	if !s.restrictsItems() {
		return true
	}
	for i := range order.Items {
		if s.MatchesItem(&order.Items[i]) {
			return true
		}
	}
	return false
}

// FilterOrders keeps the orders matching s, preserving input order.
func (s Scope) FilterOrders(orders []entity.Order) []entity.Order {
	if s.IsGlobal() {
		return orders
	}
	out := make([]entity.Order, 0, len(orders))
	for i := range orders {
		if s.MatchesOrder(&orders[i]) {
			out = append(out, orders[i])
		}
	}
	return out
}

// FilterItems keeps the items matching s, preserving input order.
func (s Scope) FilterItems(items []entity.OrderItem) []entity.OrderItem {
	if s.IsGlobal() {
		return items
	}
	out := make([]entity.OrderItem, 0, len(items))
	for i := range items {
		if s.MatchesItem(&items[i]) {
			out = append(out, items[i])
		}
	}
	return out
}

// Attribute returns the orders inside s. With a category or product filter
// each order's TotalAmount is replaced by the TotalPrice of its matching
// items, so revenue from items outside the scope is never counted.
func (s Scope) Attribute(orders []entity.Order) []entity.Order {
	scoped := s.FilterOrders(orders)
	if !s.restrictsItems() {
		return scoped
	}

	out := make([]entity.Order, 0, len(scoped))
	for _, o := range scoped {
		total := decimal.Zero
		items := make([]entity.OrderItem, 0, len(o.Items))
		for i := range o.Items {
			if s.MatchesItem(&o.Items[i]) {
				total = total.Add(o.Items[i].TotalPrice)
				items = append(items, o.Items[i])
			}
		}
		o.TotalAmount = total
		o.Items = items
		out = append(out, o)
	}
	return out
}

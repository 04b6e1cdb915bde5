package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/marketplace-api/internal/domain/enum"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Order represents a customer's purchase from a single seller.
// TotalAmount is persisted as subtotal + tax + shipping - discount and is
// trusted by every reader.
type Order struct {
	ID             uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	OrderNumber    string             `gorm:"size:50;unique;not null" json:"order_number"`
	UserID         uuid.UUID          `gorm:"type:uuid;not null;index" json:"user_id"`
	SellerID       uuid.UUID          `gorm:"type:uuid;not null;index" json:"seller_id"`
	Status         enum.OrderStatus   `gorm:"size:20;not null;default:'PENDING';index" json:"status"`
	PaymentStatus  enum.PaymentStatus `gorm:"size:20;not null;default:'PENDING'" json:"payment_status"`
	Subtotal       decimal.Decimal    `gorm:"type:numeric(12,2);not null" json:"subtotal"`
	TaxAmount      decimal.Decimal    `gorm:"type:numeric(12,2);not null;default:0" json:"tax_amount"`
	ShippingAmount decimal.Decimal    `gorm:"type:numeric(12,2);not null;default:0" json:"shipping_amount"`
	DiscountAmount decimal.Decimal    `gorm:"type:numeric(12,2);not null;default:0" json:"discount_amount"`
	TotalAmount    decimal.Decimal    `gorm:"type:numeric(12,2);not null" json:"total_amount"`
	CreatedAt      time.Time          `gorm:"index" json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`

	// Relationships
	User   *User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Seller *SellerProfile `gorm:"foreignKey:SellerID" json:"seller,omitempty"`
	Items  []OrderItem    `gorm:"foreignKey:OrderID" json:"items,omitempty"`
}

// BeforeCreate generates a UUID before creating a new order
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Order model
func (Order) TableName() string {
	return "orders"
}

// OrderItem is a line of an order. Name and image are snapshots taken at
// purchase time and never follow later product edits.
type OrderItem struct {
	ID           uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	OrderID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"order_id"`
	ProductID    uuid.UUID       `gorm:"type:uuid;not null;index" json:"product_id"`
	Quantity     int             `gorm:"not null" json:"quantity"`
	UnitPrice    decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"unit_price"`
	TotalPrice   decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"total_price"`
	ProductName  string          `gorm:"size:255;not null" json:"product_name"`
	ProductImage *string         `gorm:"size:255" json:"product_image,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`

	// Relationships
	Order   *Order   `gorm:"foreignKey:OrderID" json:"-"`
	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// BeforeCreate generates a UUID before creating a new order item
func (oi *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if oi.ID == uuid.Nil {
		oi.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the OrderItem model
func (OrderItem) TableName() string {
	return "order_items"
}

package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/marketplace-api/internal/domain/enum"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Product represents an item listed by a seller
type Product struct {
	ID                uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	SellerID          uuid.UUID          `gorm:"type:uuid;not null;index" json:"seller_id"`
	CategoryID        uuid.UUID          `gorm:"type:uuid;not null;index" json:"category_id"`
	Name              string             `gorm:"size:255;not null" json:"name"`
	Slug              string             `gorm:"size:255;unique;not null" json:"slug"`
	Description       *string            `gorm:"type:text" json:"description,omitempty"`
	SKU               string             `gorm:"column:sku;size:100;unique;not null" json:"sku"`
	Status            enum.ProductStatus `gorm:"size:20;not null;default:'DRAFT';index" json:"status"`
	BasePrice         decimal.Decimal    `gorm:"type:numeric(12,2);not null" json:"base_price"`
	SalePrice         *decimal.Decimal   `gorm:"type:numeric(12,2)" json:"sale_price,omitempty"`
	StockQuantity     int                `gorm:"not null;default:0" json:"stock_quantity"`
	TrackInventory    bool               `gorm:"not null;default:true" json:"track_inventory"`
	LowStockThreshold int                `gorm:"not null;default:10" json:"low_stock_threshold"`
	CreatedAt         time.Time          `json:"created_at"`
	UpdatedAt         time.Time          `json:"updated_at"`
	DeletedAt         gorm.DeletedAt     `gorm:"index" json:"-"`

	// Relationships
	Seller   *SellerProfile `gorm:"foreignKey:SellerID" json:"seller,omitempty"`
	Category *Category      `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

// BeforeCreate generates a UUID before creating a new product
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Product model
func (Product) TableName() string {
	return "products"
}

// IsLowStock reports whether a tracked product is at or below its alert threshold
func (p *Product) IsLowStock() bool {
	return p.TrackInventory && p.StockQuantity <= p.LowStockThreshold
}

// Category represents a product category
type Category struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	Name        string     `gorm:"size:255;not null" json:"name"`
	Slug        string     `gorm:"size:255;unique;not null" json:"slug"`
	Description *string    `gorm:"type:text" json:"description,omitempty"`
	Image       *string    `gorm:"size:255" json:"image,omitempty"`
	ParentID    *uuid.UUID `gorm:"type:uuid;index" json:"parent_id,omitempty"`
	IsActive    bool       `gorm:"not null;default:true" json:"is_active"`
	SortOrder   int        `gorm:"not null;default:0" json:"sort_order"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	// Relationships
	Products []Product `gorm:"foreignKey:CategoryID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new category
func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Category model
func (Category) TableName() string {
	return "categories"
}

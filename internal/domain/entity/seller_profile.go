package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SellerProfile is the storefront of a user with the SELLER role
type SellerProfile struct {
	ID             uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID         uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	BusinessName   string          `gorm:"size:255;not null" json:"business_name"`
	BusinessType   *string         `gorm:"size:100" json:"business_type,omitempty"`
	TaxID          *string         `gorm:"size:100" json:"tax_id,omitempty"`
	Description    *string         `gorm:"type:text" json:"description,omitempty"`
	Phone          *string         `gorm:"size:50" json:"phone,omitempty"`
	Website        *string         `gorm:"size:255" json:"website,omitempty"`
	IsVerified     bool            `gorm:"not null;default:false;index" json:"is_verified"`
	IsActive       bool            `gorm:"not null;default:true" json:"is_active"`
	CommissionRate decimal.Decimal `gorm:"type:numeric(5,2);not null;default:10" json:"commission_rate"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`

	// Relationships
	User     *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Products []Product `gorm:"foreignKey:SellerID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new seller profile
func (s *SellerProfile) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the SellerProfile model
func (SellerProfile) TableName() string {
	return "seller_profiles"
}

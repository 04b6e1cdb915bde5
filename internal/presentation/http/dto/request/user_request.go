package request

import (
	"github.com/sangkips/marketplace-api/internal/application/service"
	"github.com/sangkips/marketplace-api/internal/domain/enum"
)

// UserListRequest represents the admin user list query
type UserListRequest struct {
	PageRequest
	Role     string `form:"role"`
	IsActive *bool  `form:"is_active"`
	Search   string `form:"search"`
}

// Query converts the request into a service query
func (r UserListRequest) Query() service.UserQuery {
	query := service.UserQuery{
		Pagination: r.Params(),
		IsActive:   r.IsActive,
		Search:     r.Search,
	}
	if r.Role != "" {
		role := enum.UserRole(r.Role)
		query.Role = &role
	}
	return query
}

// SellerListRequest represents the admin seller list query
type SellerListRequest struct {
	PageRequest
	IsActive *bool  `form:"is_active"`
	Search   string `form:"search"`
}

// Query converts the request into a service query
func (r SellerListRequest) Query() service.SellerQuery {
	return service.SellerQuery{
		Pagination: r.Params(),
		IsActive:   r.IsActive,
		Search:     r.Search,
	}
}

// UpdateSellerProfileRequest represents a seller's profile edit
type UpdateSellerProfileRequest struct {
	BusinessName *string `json:"business_name" binding:"omitempty,min=2,max=255"`
	BusinessType *string `json:"business_type" binding:"omitempty,max=100"`
	TaxID        *string `json:"tax_id" binding:"omitempty,max=100"`
	Description  *string `json:"description"`
	Phone        *string `json:"phone" binding:"omitempty,max=50"`
	Website      *string `json:"website" binding:"omitempty,url,max=255"`
}

// ToInput converts the request into the service input
func (r *UpdateSellerProfileRequest) ToInput() *service.UpdateSellerProfileInput {
	return &service.UpdateSellerProfileInput{
		BusinessName: r.BusinessName,
		BusinessType: r.BusinessType,
		TaxID:        r.TaxID,
		Description:  r.Description,
		Phone:        r.Phone,
		Website:      r.Website,
	}
}

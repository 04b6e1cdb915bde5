package request

import (
	"github.com/google/uuid"
	"github.com/sangkips/marketplace-api/internal/application/service"
)

// SalesAnalyticsRequest represents the seller sales report query
type SalesAnalyticsRequest struct {
	DateRangeRequest
	CategoryID string `form:"category_id"`
	ProductID  string `form:"product_id"`
}

// Filter converts the query into a service filter
func (r SalesAnalyticsRequest) Filter() (service.SalesFilter, error) {
	start, end, err := r.Range()
	if err != nil {
		return service.SalesFilter{}, err
	}
	categoryID, err := optionalUUID("category_id", r.CategoryID)
	if err != nil {
		return service.SalesFilter{}, err
	}
	productID, err := optionalUUID("product_id", r.ProductID)
	if err != nil {
		return service.SalesFilter{}, err
	}
	return service.SalesFilter{
		Start:      start,
		End:        end,
		CategoryID: categoryID,
		ProductID:  productID,
	}, nil
}

// TopProductsRequest represents the top products query. Limits above the
// maximum are clamped by the service.
type TopProductsRequest struct {
	Limit      int    `form:"limit" binding:"omitempty,min=1"`
	CategoryID string `form:"category_id"`
}

// Category returns the parsed category filter
func (r TopProductsRequest) Category() (*uuid.UUID, error) {
	return optionalUUID("category_id", r.CategoryID)
}

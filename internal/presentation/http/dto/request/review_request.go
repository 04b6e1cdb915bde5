package request

import (
	"github.com/google/uuid"
	"github.com/sangkips/marketplace-api/internal/application/service"
)

// CreateReviewRequest represents a new product review. The rating range is
// checked by the service so the error names the field.
type CreateReviewRequest struct {
	Rating  int     `json:"rating"`
	Title   *string `json:"title" binding:"omitempty,max=255"`
	Comment *string `json:"comment" binding:"omitempty,max=5000"`
}

// ToInput converts the request into the service input
func (r *CreateReviewRequest) ToInput(productID uuid.UUID) *service.CreateReviewInput {
	return &service.CreateReviewInput{
		ProductID: productID,
		Rating:    r.Rating,
		Title:     r.Title,
		Comment:   r.Comment,
	}
}

// SellerReviewListRequest represents the seller review list query
type SellerReviewListRequest struct {
	PageRequest
	ProductID string `form:"product_id"`
}

// ProductFilter returns the requested product, nil when absent
func (r SellerReviewListRequest) ProductFilter() (*uuid.UUID, error) {
	return optionalUUID("product_id", r.ProductID)
}

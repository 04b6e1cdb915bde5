package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/marketplace-api/internal/application/service"
	"github.com/sangkips/marketplace-api/internal/presentation/http/dto/request"
	"github.com/sangkips/marketplace-api/internal/presentation/http/dto/response"
)

// ShopHandler serves the public storefront and the customer's own orders
// and reviews
type ShopHandler struct {
	shopService   *service.ShopService
	orderService  *service.ShopOrderService
	reviewService *service.ReviewService
}

// NewShopHandler creates a new shop handler
func NewShopHandler(
	shopService *service.ShopService,
	orderService *service.ShopOrderService,
	reviewService *service.ReviewService,
) *ShopHandler {
	return &ShopHandler{
		shopService:   shopService,
		orderService:  orderService,
		reviewService: reviewService,
	}
}

// ListProducts handles listing active products
func (h *ShopHandler) ListProducts(c *gin.Context) {
	var req request.ShopProductListRequest
	if !bindQuery(c, &req) {
		return
	}
	query, err := req.Query()
	if err != nil {
		response.Error(c, err)
		return
	}

	conn, err := h.shopService.ListProducts(c.Request.Context(), query)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Paginated(c, "Products retrieved successfully", conn)
}

// GetProduct handles fetching an active product by id or slug
func (h *ShopHandler) GetProduct(c *gin.Context) {
	product, err := h.shopService.GetProduct(c.Request.Context(), c.Param("ref"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Product retrieved successfully", product)
}

// ListCategories handles listing active categories
func (h *ShopHandler) ListCategories(c *gin.Context) {
	categories, err := h.shopService.ListCategories(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Categories retrieved successfully", categories)
}

// Me handles fetching the caller's account
func (h *ShopHandler) Me(c *gin.Context) {
	user, err := h.shopService.Me(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Profile retrieved successfully", user)
}

// ListOrders handles listing the caller's orders
func (h *ShopHandler) ListOrders(c *gin.Context) {
	var req request.PageRequest
	if !bindQuery(c, &req) {
		return
	}

	conn, err := h.orderService.MyOrders(c.Request.Context(), req.Params())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Paginated(c, "Orders retrieved successfully", conn)
}

// GetOrder handles fetching one of the caller's orders
func (h *ShopHandler) GetOrder(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	order, err := h.orderService.MyOrder(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Order retrieved successfully", order)
}

// ListReviews handles listing the reviews of a product
func (h *ShopHandler) ListReviews(c *gin.Context) {
	id, ok := pathID(c, "ref")
	if !ok {
		return
	}
	var req request.PageRequest
	if !bindQuery(c, &req) {
		return
	}

	conn, err := h.reviewService.ProductReviews(c.Request.Context(), id, req.Params())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Paginated(c, "Reviews retrieved successfully", conn)
}

// CreateReview handles reviewing a product
func (h *ShopHandler) CreateReview(c *gin.Context) {
	id, ok := pathID(c, "ref")
	if !ok {
		return
	}
	var req request.CreateReviewRequest
	if !bindJSON(c, &req) {
		return
	}

	review, err := h.reviewService.CreateReview(c.Request.Context(), req.ToInput(id))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Review created successfully", review)
}

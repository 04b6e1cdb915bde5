package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/marketplace-api/internal/application/service"
	"github.com/sangkips/marketplace-api/internal/domain/enum"
	"github.com/sangkips/marketplace-api/internal/presentation/http/dto/request"
	"github.com/sangkips/marketplace-api/internal/presentation/http/dto/response"
)

// SellerHandler serves the seller dashboard: profile, catalogue, orders and
// sales reports of the calling seller.
type SellerHandler struct {
	sellerService    *service.SellerService
	catalogService   *service.CatalogService
	orderService     *service.SellerOrderService
	analyticsService *service.AnalyticsService
	reviewService    *service.ReviewService
}

// NewSellerHandler creates a new seller handler
func NewSellerHandler(
	sellerService *service.SellerService,
	catalogService *service.CatalogService,
	orderService *service.SellerOrderService,
	analyticsService *service.AnalyticsService,
	reviewService *service.ReviewService,
) *SellerHandler {
	return &SellerHandler{
		sellerService:    sellerService,
		catalogService:   catalogService,
		orderService:     orderService,
		analyticsService: analyticsService,
		reviewService:    reviewService,
	}
}

// Profile handles fetching the caller's seller profile
func (h *SellerHandler) Profile(c *gin.Context) {
	profile, err := h.sellerService.MyProfile(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Seller profile retrieved successfully", profile)
}

// UpdateProfile handles editing the caller's seller profile
func (h *SellerHandler) UpdateProfile(c *gin.Context) {
	var req request.UpdateSellerProfileRequest
	if !bindJSON(c, &req) {
		return
	}

	profile, err := h.sellerService.UpdateMyProfile(c.Request.Context(), req.ToInput())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Seller profile updated successfully", profile)
}

// ListReviews handles listing reviews of the caller's products
func (h *SellerHandler) ListReviews(c *gin.Context) {
	var req request.SellerReviewListRequest
	if !bindQuery(c, &req) {
		return
	}
	productID, err := req.ProductFilter()
	if err != nil {
		response.Error(c, err)
		return
	}

	conn, err := h.reviewService.MyProductReviews(c.Request.Context(), productID, req.Params())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Paginated(c, "Reviews retrieved successfully", conn)
}

// ListProducts handles listing the caller's products
func (h *SellerHandler) ListProducts(c *gin.Context) {
	var req request.SellerProductListRequest
	if !bindQuery(c, &req) {
		return
	}
	query, err := req.Query()
	if err != nil {
		response.Error(c, err)
		return
	}

	conn, err := h.catalogService.ListMyProducts(c.Request.Context(), query)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Paginated(c, "Products retrieved successfully", conn)
}

// GetProduct handles fetching one of the caller's products
func (h *SellerHandler) GetProduct(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	product, err := h.catalogService.GetMyProduct(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Product retrieved successfully", product)
}

// UpdateProduct handles updating one of the caller's products
func (h *SellerHandler) UpdateProduct(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req request.UpdateProductRequest
	if !bindJSON(c, &req) {
		return
	}

	product, err := h.catalogService.UpdateProduct(c.Request.Context(), id, req.ToInput())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Product updated successfully", product)
}

// DeleteProduct handles deleting one of the caller's products
func (h *SellerHandler) DeleteProduct(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.catalogService.DeleteProduct(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// UpdateStock handles setting the stock level of one of the caller's products
func (h *SellerHandler) UpdateStock(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req request.UpdateStockRequest
	if !bindJSON(c, &req) {
		return
	}

	product, err := h.catalogService.UpdateStock(c.Request.Context(), id, *req.Quantity)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Stock updated successfully", product)
}

// ListOrders handles listing the caller's orders
func (h *SellerHandler) ListOrders(c *gin.Context) {
	var req request.OrderListRequest
	if !bindQuery(c, &req) {
		return
	}

	conn, err := h.orderService.ListMyOrders(c.Request.Context(), req.StatusFilter(), req.Params())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Paginated(c, "Orders retrieved successfully", conn)
}

// GetOrder handles fetching one of the caller's orders
func (h *SellerHandler) GetOrder(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	order, err := h.orderService.GetMyOrder(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Order retrieved successfully", order)
}

// UpdateOrderStatus handles moving one of the caller's orders to a new status
func (h *SellerHandler) UpdateOrderStatus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req request.UpdateOrderStatusRequest
	if !bindJSON(c, &req) {
		return
	}

	order, err := h.orderService.UpdateOrderStatus(c.Request.Context(), id, enum.OrderStatus(req.Status))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Order status updated successfully", order)
}

// SalesAnalytics handles the caller's sales report
func (h *SellerHandler) SalesAnalytics(c *gin.Context) {
	var req request.SalesAnalyticsRequest
	if !bindQuery(c, &req) {
		return
	}
	filter, err := req.Filter()
	if err != nil {
		response.Error(c, err)
		return
	}

	report, err := h.analyticsService.SalesAnalytics(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Sales analytics retrieved successfully", report)
}

// TopProducts handles ranking the caller's products by revenue
func (h *SellerHandler) TopProducts(c *gin.Context) {
	var req request.TopProductsRequest
	if !bindQuery(c, &req) {
		return
	}
	categoryID, err := req.Category()
	if err != nil {
		response.Error(c, err)
		return
	}

	products, err := h.analyticsService.TopProducts(c.Request.Context(), req.Limit, categoryID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Top products retrieved successfully", products)
}

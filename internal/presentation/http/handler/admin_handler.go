package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/marketplace-api/internal/application/service"
	"github.com/sangkips/marketplace-api/internal/presentation/http/dto/request"
	"github.com/sangkips/marketplace-api/internal/presentation/http/dto/response"
)

// AdminHandler serves platform reports and user and seller management
type AdminHandler struct {
	adminService     *service.AdminService
	analyticsService *service.AnalyticsService
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(adminService *service.AdminService, analyticsService *service.AnalyticsService) *AdminHandler {
	return &AdminHandler{
		adminService:     adminService,
		analyticsService: analyticsService,
	}
}

// PlatformAnalytics handles the platform-wide report
func (h *AdminHandler) PlatformAnalytics(c *gin.Context) {
	var req request.DateRangeRequest
	if !bindQuery(c, &req) {
		return
	}
	start, end, err := req.Range()
	if err != nil {
		response.Error(c, err)
		return
	}

	report, err := h.analyticsService.PlatformAnalytics(c.Request.Context(), start, end)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Platform analytics retrieved successfully", report)
}

// UserAnalytics handles the user growth report
func (h *AdminHandler) UserAnalytics(c *gin.Context) {
	var req request.DateRangeRequest
	if !bindQuery(c, &req) {
		return
	}
	start, end, err := req.Range()
	if err != nil {
		response.Error(c, err)
		return
	}

	report, err := h.analyticsService.UserAnalytics(c.Request.Context(), start, end)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "User analytics retrieved successfully", report)
}

// ListUsers handles listing platform users
func (h *AdminHandler) ListUsers(c *gin.Context) {
	var req request.UserListRequest
	if !bindQuery(c, &req) {
		return
	}

	conn, err := h.adminService.ListUsers(c.Request.Context(), req.Query())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Paginated(c, "Users retrieved successfully", conn)
}

// GetUser handles fetching a single user
func (h *AdminHandler) GetUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	user, err := h.adminService.GetUser(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "User retrieved successfully", user)
}

// ListSellers handles listing seller profiles
func (h *AdminHandler) ListSellers(c *gin.Context) {
	var req request.SellerListRequest
	if !bindQuery(c, &req) {
		return
	}

	conn, err := h.adminService.ListSellers(c.Request.Context(), req.Query())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Paginated(c, "Sellers retrieved successfully", conn)
}

// PendingSellers handles listing sellers awaiting verification
func (h *AdminHandler) PendingSellers(c *gin.Context) {
	var req request.PageRequest
	if !bindQuery(c, &req) {
		return
	}

	conn, err := h.adminService.PendingSellers(c.Request.Context(), req.Params())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Paginated(c, "Pending sellers retrieved successfully", conn)
}

// VerifySeller handles verifying a seller profile
func (h *AdminHandler) VerifySeller(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	seller, err := h.adminService.VerifySeller(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Seller verified successfully", seller)
}

// RejectSeller handles rejecting an unverified seller profile
func (h *AdminHandler) RejectSeller(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.adminService.RejectSeller(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// ToggleSellerStatus handles activating or deactivating a seller profile
func (h *AdminHandler) ToggleSellerStatus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	seller, err := h.adminService.ToggleSellerStatus(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Seller status updated successfully", seller)
}

// ToggleUserStatus handles activating or deactivating a user
func (h *AdminHandler) ToggleUserStatus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	user, err := h.adminService.ToggleUserStatus(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "User status updated successfully", user)
}

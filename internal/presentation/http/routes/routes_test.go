package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sangkips/marketplace-api/internal/application/service"
	"github.com/sangkips/marketplace-api/internal/config"
	"github.com/sangkips/marketplace-api/internal/domain/entity"
	"github.com/sangkips/marketplace-api/internal/domain/enum"
	"github.com/sangkips/marketplace-api/internal/domain/repository/mocks"
	"github.com/sangkips/marketplace-api/internal/presentation/http/handler"
	"github.com/sangkips/marketplace-api/pkg/apperror"
	"github.com/sangkips/marketplace-api/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Kind    apperror.Kind   `json:"kind"`
}

type testServer struct {
	router   *gin.Engine
	jwt      *utils.JWTManager
	analytic *mocks.AnalyticsRepository
	users    *mocks.UserRepository
	sellers  *mocks.SellerRepository
	products *mocks.ProductRepository
	category *mocks.CategoryRepository
	orders   *mocks.OrderRepository
	reviews  *mocks.ReviewRepository
}

func newTestServer(t *testing.T) *testServer {
	gin.SetMode(gin.TestMode)

	s := &testServer{
		jwt:      utils.NewJWTManager("test-secret", "marketplace-auth", time.Hour),
		analytic: mocks.NewAnalyticsRepository(t),
		users:    mocks.NewUserRepository(t),
		sellers:  mocks.NewSellerRepository(t),
		products: mocks.NewProductRepository(t),
		category: mocks.NewCategoryRepository(t),
		orders:   mocks.NewOrderRepository(t),
		reviews:  mocks.NewReviewRepository(t),
	}

	cfg := &config.Config{
		App:       config.AppConfig{Name: "marketplace-api"},
		RateLimit: config.RateLimitConfig{Requests: 1000, Duration: 1},
	}
	sellerService := service.NewSellerService(s.sellers)
	analyticsService := service.NewAnalyticsService(s.analytic, s.users, s.products, s.sellers, s.orders, cfg.Analytics)
	reviewService := service.NewReviewService(s.reviews, s.products)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	s.router = Setup(ctx, &Handlers{
		Shop: handler.NewShopHandler(
			service.NewShopService(s.products, s.category, s.users),
			service.NewShopOrderService(s.orders),
			reviewService,
		),
		Seller: handler.NewSellerHandler(
			sellerService,
			service.NewCatalogService(s.products, s.category),
			service.NewSellerOrderService(s.orders),
			analyticsService,
			reviewService,
		),
		Admin: handler.NewAdminHandler(service.NewAdminService(s.users, s.sellers, nil), analyticsService),
	}, &Deps{
		JWTManager: s.jwt,
		Sellers:    sellerService,
		Cfg:        cfg,
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	return s
}

func (s *testServer) token(t *testing.T, userID uuid.UUID, role enum.UserRole) string {
	t.Helper()
	token, err := s.jwt.GenerateAccessToken(userID, "someone@example.com", string(role))
	require.NoError(t, err)
	return token
}

func (s *testServer) do(t *testing.T, method, path, token string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	var env envelope
	if rec.Body.Len() > 0 && rec.Header().Get("Content-Type") != "" {
		_ = json.Unmarshal(rec.Body.Bytes(), &env)
	}
	return rec, env
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)

	rec, _ := s.do(t, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestUnknownRoute(t *testing.T) {
	s := newTestServer(t)

	rec, env := s.do(t, http.MethodGet, "/api/v1/warehouse", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, apperror.KindNotFound, env.Kind)
}

func TestAdminRoutesRequireAuthentication(t *testing.T) {
	s := newTestServer(t)

	rec, env := s.do(t, http.MethodGet, "/api/v1/admin/analytics/platform", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, env.Success)
	assert.Equal(t, apperror.KindAuthenticationRequired, env.Kind)

	rec, env = s.do(t, http.MethodGet, "/api/v1/admin/analytics/platform", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, apperror.KindAuthenticationRequired, env.Kind)
}

func TestAdminRoutesRejectSellers(t *testing.T) {
	s := newTestServer(t)
	userID := uuid.New()
	s.sellers.On("GetByUserID", mock.Anything, userID).Return(&entity.SellerProfile{ID: uuid.New()}, nil)

	rec, env := s.do(t, http.MethodGet, "/api/v1/admin/users", s.token(t, userID, enum.UserRoleSeller), nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, apperror.KindForbidden, env.Kind)
}

func TestAdminPlatformAnalyticsReversedRange(t *testing.T) {
	s := newTestServer(t)
	path := "/api/v1/admin/analytics/platform?start_date=2024-06-01&end_date=2024-05-01"

	rec, env := s.do(t, http.MethodGet, path, s.token(t, uuid.New(), enum.UserRoleAdmin), nil)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, apperror.KindValidation, env.Kind)
}

func TestSellerCannotUpdateAnotherSellersProduct(t *testing.T) {
	s := newTestServer(t)
	userID := uuid.New()
	s.sellers.On("GetByUserID", mock.Anything, userID).Return(&entity.SellerProfile{ID: uuid.New()}, nil)

	product := &entity.Product{ID: uuid.New(), SellerID: uuid.New(), Name: "Lamp"}
	s.products.On("GetByID", mock.Anything, product.ID).Return(product, nil)

	rec, env := s.do(t, http.MethodPut, "/api/v1/seller/products/"+product.ID.String(),
		s.token(t, userID, enum.UserRoleSeller), map[string]any{"name": "Stolen Lamp"})

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, apperror.KindNotFound, env.Kind)
	s.products.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestSellerWithoutProfile(t *testing.T) {
	s := newTestServer(t)
	userID := uuid.New()
	s.sellers.On("GetByUserID", mock.Anything, userID).Return(nil, nil)

	rec, env := s.do(t, http.MethodGet, "/api/v1/seller/analytics/sales", s.token(t, userID, enum.UserRoleSeller), nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, apperror.KindForbidden, env.Kind)
}

func TestSellerMalformedProductID(t *testing.T) {
	s := newTestServer(t)
	userID := uuid.New()
	s.sellers.On("GetByUserID", mock.Anything, userID).Return(&entity.SellerProfile{ID: uuid.New()}, nil)

	rec, env := s.do(t, http.MethodGet, "/api/v1/seller/products/42", s.token(t, userID, enum.UserRoleSeller), nil)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, apperror.KindValidation, env.Kind)
}

func TestShopProductsAnonymous(t *testing.T) {
	s := newTestServer(t)
	s.products.On("List", mock.Anything, mock.Anything).Return([]entity.Product{
		{ID: uuid.New(), Name: "Lamp", Status: enum.ProductStatusActive},
	}, int64(1), nil)

	rec, env := s.do(t, http.MethodGet, "/api/v1/shop/products?limit=5", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)

	var conn struct {
		TotalCount int64 `json:"total_count"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &conn))
	assert.Equal(t, int64(1), conn.TotalCount)
}

func TestShopMeRequiresToken(t *testing.T) {
	s := newTestServer(t)

	rec, env := s.do(t, http.MethodGet, "/api/v1/shop/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, apperror.KindAuthenticationRequired, env.Kind)
}

func TestShopOrderOfAnotherCustomer(t *testing.T) {
	s := newTestServer(t)
	order := &entity.Order{ID: uuid.New(), UserID: uuid.New(), Status: enum.OrderStatusPending}
	s.orders.On("GetWithItems", mock.Anything, order.ID).Return(order, nil)

	rec, env := s.do(t, http.MethodGet, "/api/v1/shop/orders/"+order.ID.String(),
		s.token(t, uuid.New(), enum.UserRoleCustomer), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, apperror.KindNotFound, env.Kind)
}

func TestShopReviewRatingOutOfRange(t *testing.T) {
	s := newTestServer(t)
	productID := uuid.New()

	rec, env := s.do(t, http.MethodPost, "/api/v1/shop/products/"+productID.String()+"/reviews",
		s.token(t, uuid.New(), enum.UserRoleCustomer), map[string]any{"rating": 6})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, apperror.KindValidation, env.Kind)
	s.reviews.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
